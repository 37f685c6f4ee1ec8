package enrollment

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/DhavalSuthar-24/schoolsports/internal/audit"
	"github.com/DhavalSuthar-24/schoolsports/internal/metrics"
	"github.com/DhavalSuthar-24/schoolsports/internal/sport"
	"github.com/DhavalSuthar-24/schoolsports/internal/store"
	"github.com/DhavalSuthar-24/schoolsports/internal/team"
	"github.com/DhavalSuthar-24/schoolsports/pkg/apperrors"
	"github.com/DhavalSuthar-24/schoolsports/pkg/batch"
	"github.com/DhavalSuthar-24/schoolsports/pkg/pagination"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	domain     = "enrollment"
	auditName  = "SportsEnrollment"
	errMissing = "enrollment %d not found"
)

// EnrollInput carries the arguments of Enroll. A nil EnrollmentDate means today.
type EnrollInput struct {
	SportID        uint       `json:"sport_id" binding:"required"`
	StudentID      uint       `json:"student_id" binding:"required"`
	TeamID         *uint      `json:"team_id"`
	EnrollmentDate *time.Time `json:"enrollment_date"`
	Remarks        string     `json:"remarks" binding:"omitempty,max=2000"`
}

// AttendanceMark is one item of BulkMarkAttendance.
type AttendanceMark struct {
	EnrollmentID uint `json:"enrollment_id" binding:"required"`
	Present      bool `json:"present"`
}

// Eligibility is the answer of CanEnroll.
type Eligibility struct {
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason"`
}

// Manager owns the enrollment lifecycle and keeps team rosters in step with it.
// Every mutation runs in one transaction; the audit trail is written after commit.
type Manager struct {
	tx          *store.Transactor
	enrollments EnrollmentRepository
	sports      sport.SportRepository
	teams       team.TeamRepository
	roster      *team.Roster
	audit       audit.Recorder
	log         *zap.Logger
	now         func() time.Time
}

// Option configures a Manager.
type Option func(*Manager)

// WithClock overrides the clock used for default enrollment dates.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// WithRecorder sets the audit collaborator. The default discards entries.
func WithRecorder(r audit.Recorder) Option {
	return func(m *Manager) { m.audit = r }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.log = l
		}
	}
}

func NewManager(db *gorm.DB, sports sport.SportRepository, teams team.TeamRepository, opts ...Option) *Manager {
	enrollments := NewEnrollmentRepository(db)
	m := &Manager{
		tx:          store.NewTransactor(db),
		enrollments: enrollments,
		sports:      sports,
		teams:       teams,
		roster:      team.NewRoster(teams, enrollments),
		audit:       audit.Nop{},
		log:         zap.NewNop(),
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Roster exposes the roster helper bound to this manager's enrollments.
func (m *Manager) Roster() *team.Roster {
	return m.roster
}

// Transactor exposes the manager's transaction runner.
func (m *Manager) Transactor() *store.Transactor {
	return m.tx
}

// Enroll registers a student in a sport, optionally straight onto a team.
func (m *Manager) Enroll(ctx context.Context, in EnrollInput) (*SportsEnrollment, error) {
	var created *SportsEnrollment
	err := m.tx.WithTransaction(ctx, func(tx *gorm.DB) error {
		if err := m.checkEnrollable(ctx, tx, "Enroll", in.SportID, in.StudentID); err != nil {
			return err
		}
		if in.TeamID != nil {
			if _, err := m.loadTeamFor(ctx, tx, "Enroll", *in.TeamID, in.SportID, in.StudentID); err != nil {
				return err
			}
		}

		date := m.now()
		if in.EnrollmentDate != nil {
			date = *in.EnrollmentDate
		}
		e := &SportsEnrollment{
			SportID:        in.SportID,
			StudentID:      in.StudentID,
			TeamID:         in.TeamID,
			EnrollmentDate: date,
			Status:         StatusActive,
			Remarks:        in.Remarks,
		}
		if err := m.enrollments.WithTx(tx).Create(ctx, e); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperrors.BusinessRule(domain, "Enroll",
					"student %d already has an active enrollment in sport %d", in.StudentID, in.SportID)
			}
			return err
		}
		if in.TeamID != nil {
			if err := m.roster.WithTx(tx).AddMember(ctx, *in.TeamID, in.StudentID); err != nil {
				return err
			}
		}
		created = e
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.EnrollmentTransitions.WithLabelValues(string(StatusActive)).Inc()
	m.logCreate(ctx, created)
	return created, nil
}

// AssignToTeam moves an active enrollment onto teamID, leaving any previous team.
func (m *Manager) AssignToTeam(ctx context.Context, enrollmentID, teamID uint) (*SportsEnrollment, error) {
	var before, after SportsEnrollment
	err := m.tx.WithTransaction(ctx, func(tx *gorm.DB) error {
		repo := m.enrollments.WithTx(tx)
		e, err := m.loadForUpdate(ctx, repo, "AssignToTeam", enrollmentID)
		if err != nil {
			return err
		}
		if !e.IsActive() {
			return apperrors.InvalidTransition(domain, "AssignToTeam",
				"enrollment %d is %s; only active enrollments can be assigned to a team", e.ID, e.Status)
		}
		if _, err := m.loadTeamFor(ctx, tx, "AssignToTeam", teamID, e.SportID, e.StudentID); err != nil {
			return err
		}
		before = *e

		roster := m.roster.WithTx(tx)
		if e.TeamID != nil && *e.TeamID != teamID {
			if err := roster.RemoveMember(ctx, *e.TeamID, e.StudentID); err != nil {
				return err
			}
		}
		if err := roster.AddMember(ctx, teamID, e.StudentID); err != nil {
			return err
		}
		if err := repo.Update(ctx, e.ID, map[string]interface{}{"team_id": teamID}); err != nil {
			return fmt.Errorf("assign enrollment %d: %w", e.ID, err)
		}
		e.TeamID = &teamID
		after = *e
		return nil
	})
	if err != nil {
		return nil, err
	}
	m.logUpdate(ctx, &before, &after)
	return &after, nil
}

// WithdrawStudent ends an active enrollment and takes the student off its team.
func (m *Manager) WithdrawStudent(ctx context.Context, enrollmentID uint, remarks string) (*SportsEnrollment, error) {
	return m.finish(ctx, "WithdrawStudent", enrollmentID, StatusWithdrawn, remarks)
}

// CompleteEnrollment closes an active enrollment as completed.
func (m *Manager) CompleteEnrollment(ctx context.Context, enrollmentID uint) (*SportsEnrollment, error) {
	return m.finish(ctx, "CompleteEnrollment", enrollmentID, StatusCompleted, "")
}

// finish moves an enrollment into a terminal status. The team id stays on the
// record for history; membership follows the status.
func (m *Manager) finish(ctx context.Context, op string, enrollmentID uint, to Status, remarks string) (*SportsEnrollment, error) {
	var before, after SportsEnrollment
	err := m.tx.WithTransaction(ctx, func(tx *gorm.DB) error {
		repo := m.enrollments.WithTx(tx)
		e, err := m.loadForUpdate(ctx, repo, op, enrollmentID)
		if err != nil {
			return err
		}
		if err := Transitions.Check(op, e.Status, to); err != nil {
			return err
		}
		before = *e

		if e.TeamID != nil {
			if err := m.roster.WithTx(tx).RemoveMember(ctx, *e.TeamID, e.StudentID); err != nil {
				return err
			}
		}
		changes := map[string]interface{}{"status": to}
		if remarks != "" {
			changes["remarks"] = remarks
			e.Remarks = remarks
		}
		if err := repo.Update(ctx, e.ID, changes); err != nil {
			return fmt.Errorf("%s enrollment %d: %w", to, e.ID, err)
		}
		e.Status = to
		after = *e
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.EnrollmentTransitions.WithLabelValues(string(to)).Inc()
	m.logUpdate(ctx, &before, &after)
	return &after, nil
}

// MarkAttendance records one session for an active enrollment. Both counters move
// in a single UPDATE so attendance_count never exceeds total_sessions.
func (m *Manager) MarkAttendance(ctx context.Context, enrollmentID uint, present bool) (*SportsEnrollment, error) {
	var before, after *SportsEnrollment
	err := m.tx.WithTransaction(ctx, func(tx *gorm.DB) error {
		repo := m.enrollments.WithTx(tx)
		e, err := m.loadForUpdate(ctx, repo, "MarkAttendance", enrollmentID)
		if err != nil {
			return err
		}
		if !e.IsActive() {
			return apperrors.InvalidTransition(domain, "MarkAttendance",
				"enrollment %d is %s; attendance can only be marked for active enrollments", e.ID, e.Status)
		}
		before = e

		attended := 0
		if present {
			attended = 1
		}
		if err := repo.Update(ctx, e.ID, map[string]interface{}{
			"total_sessions":   gorm.Expr("total_sessions + ?", 1),
			"attendance_count": gorm.Expr("attendance_count + ?", attended),
		}); err != nil {
			return fmt.Errorf("mark attendance for enrollment %d: %w", e.ID, err)
		}
		after, err = repo.GetByID(ctx, e.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	metrics.AttendanceMarks.WithLabelValues(strconv.FormatBool(present)).Inc()
	m.logUpdate(ctx, before, after)
	return after, nil
}

// BulkMarkAttendance applies MarkAttendance to every item, each in its own
// transaction. Failed items are logged and skipped; only updated enrollments are returned.
func (m *Manager) BulkMarkAttendance(ctx context.Context, marks []AttendanceMark) []SportsEnrollment {
	updated, _ := batch.Run(marks, batch.ContinueOnError,
		func(mark AttendanceMark) (SportsEnrollment, error) {
			e, err := m.MarkAttendance(ctx, mark.EnrollmentID, mark.Present)
			if err != nil {
				return SportsEnrollment{}, err
			}
			return *e, nil
		},
		func(ie batch.ItemError) {
			metrics.BulkAttendanceFailures.Inc()
			m.log.Warn("skipping attendance mark",
				zap.Int("index", ie.Index),
				zap.Uint("enrollment_id", marks[ie.Index].EnrollmentID),
				zap.Error(ie.Err),
			)
		},
	)
	return updated
}

// CanEnroll runs Enroll's checks without writing. The error is reserved for store failures.
func (m *Manager) CanEnroll(ctx context.Context, sportID, studentID uint) (Eligibility, error) {
	err := m.checkEnrollable(ctx, nil, "CanEnroll", sportID, studentID)
	var de *apperrors.DomainError
	switch {
	case err == nil:
		return Eligibility{Allowed: true, Reason: "Student can enroll"}, nil
	case errors.As(err, &de):
		return Eligibility{Allowed: false, Reason: de.Message}, nil
	default:
		return Eligibility{}, err
	}
}

// GetAttendancePercentage loads the enrollment and returns its attendance percentage.
func (m *Manager) GetAttendancePercentage(ctx context.Context, enrollmentID uint) (int, error) {
	e, err := m.Get(ctx, enrollmentID)
	if err != nil {
		return 0, err
	}
	return e.AttendancePercentage(), nil
}

func (m *Manager) Get(ctx context.Context, enrollmentID uint) (*SportsEnrollment, error) {
	e, err := m.enrollments.GetByID(ctx, enrollmentID)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, apperrors.NotFound(domain, "Get", errMissing, enrollmentID)
	}
	return e, nil
}

func (m *Manager) List(ctx context.Context, filter Filter, p pagination.Params) (*store.Page[SportsEnrollment], error) {
	return m.enrollments.List(ctx, filter, p)
}

// checkEnrollable holds the rules shared by Enroll and CanEnroll. tx may be nil.
func (m *Manager) checkEnrollable(ctx context.Context, tx *gorm.DB, op string, sportID, studentID uint) error {
	sports, enrollments := m.sports, m.enrollments
	if tx != nil {
		sports, enrollments = sports.WithTx(tx), enrollments.WithTx(tx)
	}

	s, err := sports.GetSportByID(ctx, sportID)
	if err != nil {
		return fmt.Errorf("load sport %d: %w", sportID, err)
	}
	if s == nil {
		return apperrors.NotFound(domain, op, "sport %d not found", sportID)
	}
	if !s.IsActive() {
		return apperrors.BusinessRule(domain, op, "sport %s is not active", s.Name)
	}

	existing, err := enrollments.FindActive(ctx, sportID, studentID)
	if err != nil {
		return fmt.Errorf("check active enrollment: %w", err)
	}
	if existing != nil {
		return apperrors.BusinessRule(domain, op,
			"student %d already has an active enrollment in %s", studentID, s.Name)
	}
	return nil
}

// loadTeamFor locks teamID and checks it can take studentID for sportID.
func (m *Manager) loadTeamFor(ctx context.Context, tx *gorm.DB, op string, teamID, sportID, studentID uint) (*team.Team, error) {
	t, err := m.teams.WithTx(tx).GetTeamByIDForUpdate(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("load team %d: %w", teamID, err)
	}
	if t == nil {
		return nil, apperrors.NotFound(domain, op, "team %d not found", teamID)
	}
	if !t.IsActive() {
		return nil, apperrors.BusinessRule(domain, op, "team %s is not active", t.Name)
	}
	if t.SportID != sportID {
		return nil, apperrors.Validation(domain, op, "team %s does not belong to sport %d", t.Name, sportID)
	}
	if !t.HasRoomFor(studentID) {
		return nil, apperrors.Validation(domain, op, "team %s is full (%d members)", t.Name, t.MaxMembers)
	}
	return t, nil
}

func (m *Manager) loadForUpdate(ctx context.Context, repo EnrollmentRepository, op string, id uint) (*SportsEnrollment, error) {
	e, err := repo.GetByIDForUpdate(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load enrollment %d: %w", id, err)
	}
	if e == nil {
		return nil, apperrors.NotFound(domain, op, errMissing, id)
	}
	return e, nil
}

func (m *Manager) logCreate(ctx context.Context, e *SportsEnrollment) {
	if err := m.audit.LogCreate(ctx, auditName, e.ID, e); err != nil {
		m.log.Warn("audit create failed", zap.Uint("enrollment_id", e.ID), zap.Error(err))
	}
}

func (m *Manager) logUpdate(ctx context.Context, before, after *SportsEnrollment) {
	if err := m.audit.LogUpdate(ctx, auditName, after.ID, before, after); err != nil {
		m.log.Warn("audit update failed", zap.Uint("enrollment_id", after.ID), zap.Error(err))
	}
}
