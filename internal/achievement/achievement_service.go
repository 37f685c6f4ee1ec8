package achievement

import (
	"context"
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/DhavalSuthar-24/schoolsports/internal/enrollment"
	"github.com/DhavalSuthar-24/schoolsports/internal/sport"
	"github.com/DhavalSuthar-24/schoolsports/internal/store"
	"github.com/DhavalSuthar-24/schoolsports/internal/tournament"
	"github.com/DhavalSuthar-24/schoolsports/pkg/apperrors"
	"github.com/DhavalSuthar-24/schoolsports/pkg/pagination"
)

const domain = "achievement"

// Participation certificate thresholds.
const (
	MinAttendancePercentage = 50
	MinSessions             = 5
)

var (
	validTypes  = []Type{TypeMedal, TypeTrophy, TypeCertificate, TypeRank, TypeRecord, TypeRecognition}
	validLevels = []Level{LevelSchool, LevelInterSchool, LevelDistrict, LevelZonal, LevelState, LevelNational, LevelInternational}
	validMedals = []Medal{MedalGold, MedalSilver, MedalBronze}
)

// CreateInput carries a new achievement.
type CreateInput struct {
	SportID         uint      `json:"sport_id" binding:"required"`
	StudentID       uint      `json:"student_id" binding:"required"`
	TeamID          *uint     `json:"team_id"`
	TournamentID    *uint     `json:"tournament_id"`
	Title           string    `json:"title" binding:"required,min=2,max=200"`
	Description     string    `json:"description" binding:"omitempty,max=5000"`
	Type            Type      `json:"type" binding:"required"`
	Level           Level     `json:"level" binding:"required"`
	Position        *int      `json:"position"`
	Medal           *Medal    `json:"medal"`
	RecordType      *string   `json:"record_type"`
	RecordValue     *string   `json:"record_value"`
	AchievementDate time.Time `json:"achievement_date"`
}

// ValidateAchievementData checks the enums and the fields each type requires:
// a medal needs its colour, a record its type and value, a rank its position.
func ValidateAchievementData(in *CreateInput) error {
	const op = "ValidateAchievementData"
	if !slices.Contains(validTypes, in.Type) {
		return apperrors.Validation(domain, op, "unknown achievement type %q", in.Type)
	}
	if !slices.Contains(validLevels, in.Level) {
		return apperrors.Validation(domain, op, "unknown achievement level %q", in.Level)
	}
	if in.Medal != nil && !slices.Contains(validMedals, *in.Medal) {
		return apperrors.Validation(domain, op, "medal must be gold, silver or bronze")
	}

	switch in.Type {
	case TypeMedal:
		if in.Medal == nil {
			return apperrors.Validation(domain, op, "medal type is required for medal achievements")
		}
	case TypeRecord:
		if blank(in.RecordType) || blank(in.RecordValue) {
			return apperrors.Validation(domain, op, "record type and record value are required for record achievements")
		}
	case TypeRank:
		if in.Position == nil {
			return apperrors.Validation(domain, op, "position is required for rank achievements")
		}
	}
	if in.Position != nil && *in.Position < 1 {
		return apperrors.Validation(domain, op, "position must be 1 or more")
	}
	return nil
}

func blank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}

// Eligibility is the answer of IsEligibleForParticipationCertificate.
type Eligibility struct {
	Eligible bool   `json:"eligible"`
	Reason   string `json:"reason"`
}

// Service records achievements and builds certificate and CV payloads.
type Service struct {
	achievements AchievementRepository
	enrollments  enrollment.EnrollmentRepository
	sports       sport.SportRepository
	tournaments  tournament.TournamentRepository
	now          func() time.Time
}

func NewService(achievements AchievementRepository, enrollments enrollment.EnrollmentRepository,
	sports sport.SportRepository, tournaments tournament.TournamentRepository) *Service {
	return &Service{
		achievements: achievements,
		enrollments:  enrollments,
		sports:       sports,
		tournaments:  tournaments,
		now:          time.Now,
	}
}

// Create validates and stores an achievement. The sport must exist, and so must
// the tournament when one is referenced.
func (s *Service) Create(ctx context.Context, in CreateInput) (*SportsAchievement, error) {
	if err := ValidateAchievementData(&in); err != nil {
		return nil, err
	}
	sp, err := s.sports.GetSportByID(ctx, in.SportID)
	if err != nil {
		return nil, fmt.Errorf("load sport %d: %w", in.SportID, err)
	}
	if sp == nil {
		return nil, apperrors.NotFound(domain, "Create", "sport %d not found", in.SportID)
	}
	if in.TournamentID != nil {
		t, err := s.tournaments.GetTournamentByID(ctx, *in.TournamentID)
		if err != nil {
			return nil, fmt.Errorf("load tournament %d: %w", *in.TournamentID, err)
		}
		if t == nil {
			return nil, apperrors.NotFound(domain, "Create", "tournament %d not found", *in.TournamentID)
		}
		if t.SportID != sp.ID {
			return nil, apperrors.Validation(domain, "Create", "tournament %s is not a %s tournament", t.Name, sp.Name)
		}
	}

	date := in.AchievementDate
	if date.IsZero() {
		date = s.now()
	}
	a := &SportsAchievement{
		SportID:         in.SportID,
		StudentID:       in.StudentID,
		TeamID:          in.TeamID,
		TournamentID:    in.TournamentID,
		Title:           in.Title,
		Description:     in.Description,
		Type:            in.Type,
		Level:           in.Level,
		Position:        in.Position,
		Medal:           in.Medal,
		RecordType:      in.RecordType,
		RecordValue:     in.RecordValue,
		AchievementDate: date,
	}
	if err := s.achievements.CreateAchievement(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) Get(ctx context.Context, id uint) (*SportsAchievement, error) {
	a, err := s.achievements.GetAchievementByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, apperrors.NotFound(domain, "Get", "achievement %d not found", id)
	}
	return a, nil
}

func (s *Service) ListByStudent(ctx context.Context, studentID uint, p pagination.Params) (*store.Page[SportsAchievement], error) {
	return s.achievements.GetStudentAchievements(ctx, studentID, p)
}

// IsEligibleForParticipationCertificate checks, in order, that the enrollment
// exists, is not withdrawn, has at least 50% attendance and at least 5 sessions.
func (s *Service) IsEligibleForParticipationCertificate(ctx context.Context, enrollmentID uint) (Eligibility, error) {
	e, err := s.enrollments.GetByID(ctx, enrollmentID)
	if err != nil {
		return Eligibility{}, err
	}
	return eligibility(e), nil
}

func eligibility(e *enrollment.SportsEnrollment) Eligibility {
	switch {
	case e == nil:
		return Eligibility{Reason: "Enrollment not found"}
	case e.Status == enrollment.StatusWithdrawn:
		return Eligibility{Reason: "Student has withdrawn from this sport"}
	case e.AttendancePercentage() < MinAttendancePercentage:
		return Eligibility{Reason: fmt.Sprintf("Minimum %d%% attendance required (current: %d%%)",
			MinAttendancePercentage, e.AttendancePercentage())}
	case e.TotalSessions < MinSessions:
		return Eligibility{Reason: fmt.Sprintf("Minimum %d sessions required for certificate eligibility", MinSessions)}
	}
	return Eligibility{Eligible: true, Reason: "Eligible for participation certificate"}
}

// SportInfo is the sport block of certificate payloads.
type SportInfo struct {
	ID       uint           `json:"id"`
	Name     string         `json:"name"`
	Category sport.Category `json:"category"`
}

// ParticipationCertificate is the data printed on a participation certificate.
type ParticipationCertificate struct {
	EnrollmentID         uint              `json:"enrollment_id"`
	StudentID            uint              `json:"student_id"`
	TeamID               *uint             `json:"team_id,omitempty"`
	Sport                SportInfo         `json:"sport"`
	Status               enrollment.Status `json:"status"`
	EnrollmentDate       time.Time         `json:"enrollment_date"`
	CompletionDate       *time.Time        `json:"completion_date,omitempty"`
	AttendanceCount      int               `json:"attendance_count"`
	TotalSessions        int               `json:"total_sessions"`
	AttendancePercentage int               `json:"attendance_percentage"`
	AcademicYear         string            `json:"academic_year"`
	Eligibility          Eligibility       `json:"eligibility"`
	IssuedAt             time.Time         `json:"issued_at"`
}

// GenerateParticipationCertificateData assembles the certificate payload of an enrollment.
// Withdrawn enrollments get no certificate.
func (s *Service) GenerateParticipationCertificateData(ctx context.Context, enrollmentID uint) (*ParticipationCertificate, error) {
	const op = "GenerateParticipationCertificateData"
	e, err := s.enrollments.GetByID(ctx, enrollmentID)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, apperrors.NotFound(domain, op, "enrollment %d not found", enrollmentID)
	}
	if e.Status == enrollment.StatusWithdrawn {
		return nil, apperrors.BusinessRule(domain, op, "no participation certificate for withdrawn enrollment %d", e.ID)
	}
	sp, err := s.sportOf(ctx, op, e.SportID)
	if err != nil {
		return nil, err
	}

	cert := &ParticipationCertificate{
		EnrollmentID:         e.ID,
		StudentID:            e.StudentID,
		TeamID:               e.TeamID,
		Sport:                SportInfo{ID: sp.ID, Name: sp.Name, Category: sp.Category},
		Status:               e.Status,
		EnrollmentDate:       e.EnrollmentDate,
		AttendanceCount:      e.AttendanceCount,
		TotalSessions:        e.TotalSessions,
		AttendancePercentage: e.AttendancePercentage(),
		AcademicYear:         AcademicYear(e.EnrollmentDate),
		Eligibility:          eligibility(e),
		IssuedAt:             s.now(),
	}
	if e.Status == enrollment.StatusCompleted {
		completed := e.UpdatedAt
		cert.CompletionDate = &completed
	}
	return cert, nil
}

// TournamentInfo is the tournament block of an achievement certificate.
type TournamentInfo struct {
	ID        uint            `json:"id"`
	Name      string          `json:"name"`
	Type      tournament.Type `json:"type"`
	StartDate time.Time       `json:"start_date"`
	EndDate   time.Time       `json:"end_date"`
	Venue     string          `json:"venue,omitempty"`
}

// AchievementCertificate is the data printed on an achievement certificate.
type AchievementCertificate struct {
	AchievementID   uint            `json:"achievement_id"`
	StudentID       uint            `json:"student_id"`
	TeamID          *uint           `json:"team_id,omitempty"`
	Title           string          `json:"title"`
	Description     string          `json:"description,omitempty"`
	Type            Type            `json:"type"`
	Level           Level           `json:"level"`
	Position        *int            `json:"position,omitempty"`
	Medal           *Medal          `json:"medal,omitempty"`
	RecordType      *string         `json:"record_type,omitempty"`
	RecordValue     *string         `json:"record_value,omitempty"`
	AchievementDate time.Time       `json:"achievement_date"`
	AcademicYear    string          `json:"academic_year"`
	Sport           SportInfo       `json:"sport"`
	Tournament      *TournamentInfo `json:"tournament,omitempty"`
	IssuedAt        time.Time       `json:"issued_at"`
}

// GenerateAchievementCertificateData assembles the certificate payload of an
// achievement with its sport and, when linked, its tournament.
func (s *Service) GenerateAchievementCertificateData(ctx context.Context, achievementID uint) (*AchievementCertificate, error) {
	const op = "GenerateAchievementCertificateData"
	a, err := s.achievements.GetAchievementByID(ctx, achievementID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, apperrors.NotFound(domain, op, "achievement %d not found", achievementID)
	}
	sp, err := s.sportOf(ctx, op, a.SportID)
	if err != nil {
		return nil, err
	}

	cert := &AchievementCertificate{
		AchievementID:   a.ID,
		StudentID:       a.StudentID,
		TeamID:          a.TeamID,
		Title:           a.Title,
		Description:     a.Description,
		Type:            a.Type,
		Level:           a.Level,
		Position:        a.Position,
		Medal:           a.Medal,
		RecordType:      a.RecordType,
		RecordValue:     a.RecordValue,
		AchievementDate: a.AchievementDate,
		AcademicYear:    AcademicYear(a.AchievementDate),
		Sport:           SportInfo{ID: sp.ID, Name: sp.Name, Category: sp.Category},
		IssuedAt:        s.now(),
	}
	if a.TournamentID != nil {
		t, err := s.tournaments.GetTournamentByID(ctx, *a.TournamentID)
		if err != nil {
			return nil, err
		}
		if t != nil {
			cert.Tournament = &TournamentInfo{
				ID: t.ID, Name: t.Name, Type: t.Type,
				StartDate: t.StartDate, EndDate: t.EndDate, Venue: t.Venue,
			}
		}
	}
	return cert, nil
}

func (s *Service) sportOf(ctx context.Context, op string, sportID uint) (*sport.Sport, error) {
	sp, err := s.sports.GetSportByID(ctx, sportID)
	if err != nil {
		return nil, fmt.Errorf("load sport %d: %w", sportID, err)
	}
	if sp == nil {
		return nil, apperrors.NotFound(domain, op, "sport %d not found", sportID)
	}
	return sp, nil
}

// CVParticipation is one enrollment on a sports CV.
type CVParticipation struct {
	EnrollmentID         uint              `json:"enrollment_id"`
	SportID              uint              `json:"sport_id"`
	SportName            string            `json:"sport_name"`
	Category             sport.Category    `json:"category"`
	TeamID               *uint             `json:"team_id,omitempty"`
	Status               enrollment.Status `json:"status"`
	EnrollmentDate       time.Time         `json:"enrollment_date"`
	Duration             string            `json:"duration"`
	AttendancePercentage int               `json:"attendance_percentage"`
}

// CVAchievement is one achievement on a sports CV.
type CVAchievement struct {
	ID              uint      `json:"id"`
	SportName       string    `json:"sport_name"`
	Title           string    `json:"title"`
	Type            Type      `json:"type"`
	Level           Level     `json:"level"`
	Position        *int      `json:"position,omitempty"`
	Medal           *Medal    `json:"medal,omitempty"`
	AchievementDate time.Time `json:"achievement_date"`
	AcademicYear    string    `json:"academic_year"`
}

type MedalCount struct {
	Gold   int `json:"gold"`
	Silver int `json:"silver"`
	Bronze int `json:"bronze"`
}

type CVSummary struct {
	TotalSports           int        `json:"total_sports"`
	TotalAchievements     int        `json:"total_achievements"`
	HighLevelAchievements int        `json:"high_level_achievements"`
	MedalCount            MedalCount `json:"medal_count"`
	RecordsSet            int        `json:"records_set"`
	AverageAttendance     int        `json:"average_attendance"`
}

type SportsCV struct {
	StudentID      uint              `json:"student_id"`
	Participations []CVParticipation `json:"participations"`
	Achievements   []CVAchievement   `json:"achievements"`
	Summary        CVSummary         `json:"summary"`
}

// GetStudentSportsForCV builds the sports section of a student's CV.
func (s *Service) GetStudentSportsForCV(ctx context.Context, studentID uint) (*SportsCV, error) {
	enrollments, err := s.enrollments.ListAll(ctx, enrollment.Filter{StudentID: studentID})
	if err != nil {
		return nil, fmt.Errorf("list enrollments of student %d: %w", studentID, err)
	}
	achievements, err := s.achievements.ListStudentAchievements(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("list achievements of student %d: %w", studentID, err)
	}

	sports := map[uint]*sport.Sport{}
	lookupSport := func(id uint) (*sport.Sport, error) {
		if sp, ok := sports[id]; ok {
			return sp, nil
		}
		sp, err := s.sports.GetSportByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if sp == nil {
			sp = &sport.Sport{Name: "Unknown sport"}
		}
		sports[id] = sp
		return sp, nil
	}

	cv := &SportsCV{
		StudentID:      studentID,
		Participations: make([]CVParticipation, 0, len(enrollments)),
		Achievements:   make([]CVAchievement, 0, len(achievements)),
	}
	distinct := map[uint]struct{}{}
	totalPct := 0
	for i := range enrollments {
		e := &enrollments[i]
		sp, err := lookupSport(e.SportID)
		if err != nil {
			return nil, err
		}
		distinct[e.SportID] = struct{}{}
		pct := e.AttendancePercentage()
		totalPct += pct
		cv.Participations = append(cv.Participations, CVParticipation{
			EnrollmentID:         e.ID,
			SportID:              e.SportID,
			SportName:            sp.Name,
			Category:             sp.Category,
			TeamID:               e.TeamID,
			Status:               e.Status,
			EnrollmentDate:       e.EnrollmentDate,
			Duration:             FormatDuration(e.EnrollmentDate, e.UpdatedAt),
			AttendancePercentage: pct,
		})
	}

	for i := range achievements {
		a := &achievements[i]
		sp, err := lookupSport(a.SportID)
		if err != nil {
			return nil, err
		}
		cv.Achievements = append(cv.Achievements, CVAchievement{
			ID:              a.ID,
			SportName:       sp.Name,
			Title:           a.Title,
			Type:            a.Type,
			Level:           a.Level,
			Position:        a.Position,
			Medal:           a.Medal,
			AchievementDate: a.AchievementDate,
			AcademicYear:    AcademicYear(a.AchievementDate),
		})
		if a.Level.IsHighLevel() {
			cv.Summary.HighLevelAchievements++
		}
		if a.Type == TypeRecord {
			cv.Summary.RecordsSet++
		}
		if a.Medal != nil {
			switch *a.Medal {
			case MedalGold:
				cv.Summary.MedalCount.Gold++
			case MedalSilver:
				cv.Summary.MedalCount.Silver++
			case MedalBronze:
				cv.Summary.MedalCount.Bronze++
			}
		}
	}

	cv.Summary.TotalSports = len(distinct)
	cv.Summary.TotalAchievements = len(achievements)
	if len(enrollments) > 0 {
		cv.Summary.AverageAttendance = int(math.Round(float64(totalPct) / float64(len(enrollments))))
	}
	return cv, nil
}

// FormatDuration expresses the time between from and to in whole months (30-day
// months, rounded), written as years and months.
func FormatDuration(from, to time.Time) string {
	days := to.Sub(from).Hours() / 24
	months := int(math.Round(days / 30))
	if months <= 0 {
		return "Less than a month"
	}
	years, rest := months/12, months%12
	var parts []string
	if years > 0 {
		parts = append(parts, plural(years, "year"))
	}
	if rest > 0 {
		parts = append(parts, plural(rest, "month"))
	}
	return strings.Join(parts, " ")
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
