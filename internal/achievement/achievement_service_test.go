package achievement

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DhavalSuthar-24/schoolsports/internal/enrollment"
	"github.com/DhavalSuthar-24/schoolsports/internal/sport"
	"github.com/DhavalSuthar-24/schoolsports/internal/testutil"
	"github.com/DhavalSuthar-24/schoolsports/internal/tournament"
	"github.com/DhavalSuthar-24/schoolsports/pkg/apperrors"
	"github.com/DhavalSuthar-24/schoolsports/pkg/pagination"
)

var issued = time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

type fixture struct {
	service     *Service
	enrollments enrollment.EnrollmentRepository
	tournaments tournament.TournamentRepository
	athletics   *sport.Sport
	chess       *sport.Sport
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	db := testutil.NewDB(t, &sport.Sport{}, &enrollment.SportsEnrollment{}, &tournament.Tournament{}, &SportsAchievement{})
	sports := sport.NewSportRepository(db)
	f := &fixture{
		enrollments: enrollment.NewEnrollmentRepository(db),
		tournaments: tournament.NewTournamentRepository(db),
		athletics:   &sport.Sport{Name: "Athletics", Category: sport.CategoryIndividual, Status: sport.StatusActive},
		chess:       &sport.Sport{Name: "Chess", Category: sport.CategoryIndividual, Status: sport.StatusActive},
	}
	require.NoError(t, sports.CreateSport(ctx, f.athletics))
	require.NoError(t, sports.CreateSport(ctx, f.chess))
	f.service = NewService(NewAchievementRepository(db), f.enrollments, sports, f.tournaments)
	f.service.now = func() time.Time { return issued }
	return f
}

func (f *fixture) enrollment(t *testing.T, sportID, studentID uint, status enrollment.Status, attended, total int) *enrollment.SportsEnrollment {
	t.Helper()
	e := &enrollment.SportsEnrollment{
		SportID:         sportID,
		StudentID:       studentID,
		EnrollmentDate:  time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		Status:          status,
		AttendanceCount: attended,
		TotalSessions:   total,
	}
	require.NoError(t, f.enrollments.Create(context.Background(), e))
	return e
}

func medal(m Medal) *Medal { return &m }

func TestValidateAchievementData(t *testing.T) {
	base := func() CreateInput {
		return CreateInput{SportID: 1, StudentID: 1, Title: "Sprint", Type: TypeCertificate, Level: LevelSchool}
	}
	assert.NoError(t, ValidateAchievementData(testutil.Ptr(base())))

	cases := map[string]func(*CreateInput){
		"unknown type":          func(in *CreateInput) { in.Type = "plaque" },
		"unknown level":         func(in *CreateInput) { in.Level = "galactic" },
		"medal without colour":  func(in *CreateInput) { in.Type = TypeMedal },
		"unknown medal":         func(in *CreateInput) { in.Medal = medal("platinum") },
		"record without value":  func(in *CreateInput) { in.Type = TypeRecord; in.RecordType = testutil.Ptr("100m") },
		"blank record type":     func(in *CreateInput) { in.Type = TypeRecord; in.RecordType = testutil.Ptr(" "); in.RecordValue = testutil.Ptr("11.2s") },
		"rank without position": func(in *CreateInput) { in.Type = TypeRank },
		"position below one":    func(in *CreateInput) { in.Position = testutil.Ptr(0) },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			in := base()
			mutate(&in)
			assert.ErrorIs(t, ValidateAchievementData(&in), apperrors.ErrValidation)
		})
	}

	in := base()
	in.Type, in.Medal = TypeMedal, medal(MedalGold)
	assert.NoError(t, ValidateAchievementData(&in))
	in = base()
	in.Type, in.RecordType, in.RecordValue = TypeRecord, testutil.Ptr("100m"), testutil.Ptr("11.2s")
	assert.NoError(t, ValidateAchievementData(&in))
}

func TestCreateAndCertificate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tr := &tournament.Tournament{
		SportID: f.athletics.ID, Name: "District Meet", Type: tournament.TypeDistrict,
		StartDate: time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC), EndDate: time.Date(2025, 11, 2, 0, 0, 0, 0, time.UTC),
		Status: tournament.StatusCompleted, Venue: "City Stadium",
	}
	require.NoError(t, f.tournaments.CreateTournament(ctx, tr))

	a, err := f.service.Create(ctx, CreateInput{
		SportID: f.athletics.ID, StudentID: 9, TournamentID: &tr.ID,
		Title: "100m Gold", Type: TypeMedal, Level: LevelDistrict, Medal: medal(MedalGold), Position: testutil.Ptr(1),
		AchievementDate: time.Date(2025, 11, 2, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	cert, err := f.service.GenerateAchievementCertificateData(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "100m Gold", cert.Title)
	assert.Equal(t, "2025-26", cert.AcademicYear)
	assert.Equal(t, "Athletics", cert.Sport.Name)
	require.NotNil(t, cert.Tournament)
	assert.Equal(t, "District Meet", cert.Tournament.Name)
	assert.Equal(t, "City Stadium", cert.Tournament.Venue)
	assert.Equal(t, issued, cert.IssuedAt)

	_, err = f.service.Create(ctx, CreateInput{
		SportID: f.chess.ID, StudentID: 9, TournamentID: &tr.ID,
		Title: "Chess win", Type: TypeCertificate, Level: LevelSchool,
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation, "tournament of another sport")

	_, err = f.service.Create(ctx, CreateInput{SportID: 999, StudentID: 9, Title: "Ghost", Type: TypeCertificate, Level: LevelSchool})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	noDate, err := f.service.Create(ctx, CreateInput{SportID: f.chess.ID, StudentID: 9, Title: "Fair play", Type: TypeRecognition, Level: LevelSchool})
	require.NoError(t, err)
	assert.Equal(t, issued, noDate.AchievementDate)

	_, err = f.service.GenerateAchievementCertificateData(ctx, 999)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	page, err := f.service.ListByStudent(ctx, 9, pagination.Params{})
	require.NoError(t, err)
	assert.EqualValues(t, 2, page.Meta.Total)
}

func TestParticipationCertificateEligibility(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	fourSessions := f.enrollment(t, f.athletics.ID, 1, enrollment.StatusActive, 4, 4)
	fiveSessions := f.enrollment(t, f.athletics.ID, 2, enrollment.StatusActive, 4, 5)
	lowAttendance := f.enrollment(t, f.athletics.ID, 3, enrollment.StatusActive, 2, 10)
	withdrawn := f.enrollment(t, f.athletics.ID, 4, enrollment.StatusWithdrawn, 10, 10)

	got, err := f.service.IsEligibleForParticipationCertificate(ctx, fourSessions.ID)
	require.NoError(t, err)
	assert.Equal(t, Eligibility{Reason: "Minimum 5 sessions required for certificate eligibility"}, got)

	got, err = f.service.IsEligibleForParticipationCertificate(ctx, fiveSessions.ID)
	require.NoError(t, err)
	assert.True(t, got.Eligible)

	halfAttendance := f.enrollment(t, f.athletics.ID, 5, enrollment.StatusActive, 5, 10)
	got, err = f.service.IsEligibleForParticipationCertificate(ctx, halfAttendance.ID)
	require.NoError(t, err)
	assert.True(t, got.Eligible, "half attendance is enough")

	got, err = f.service.IsEligibleForParticipationCertificate(ctx, lowAttendance.ID)
	require.NoError(t, err)
	assert.Equal(t, "Minimum 50% attendance required (current: 20%)", got.Reason)

	got, err = f.service.IsEligibleForParticipationCertificate(ctx, withdrawn.ID)
	require.NoError(t, err)
	assert.Equal(t, "Student has withdrawn from this sport", got.Reason)

	got, err = f.service.IsEligibleForParticipationCertificate(ctx, 999)
	require.NoError(t, err)
	assert.Equal(t, Eligibility{Reason: "Enrollment not found"}, got)

	cert, err := f.service.GenerateParticipationCertificateData(ctx, fiveSessions.ID)
	require.NoError(t, err)
	assert.Equal(t, 80, cert.AttendancePercentage)
	assert.Equal(t, "2025-26", cert.AcademicYear)
	assert.True(t, cert.Eligibility.Eligible)
	assert.Nil(t, cert.CompletionDate)

	_, err = f.service.GenerateParticipationCertificateData(ctx, withdrawn.ID)
	assert.ErrorIs(t, err, apperrors.ErrBusinessRule)
	_, err = f.service.GenerateParticipationCertificateData(ctx, 999)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestStudentSportsCV(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.enrollment(t, f.athletics.ID, 5, enrollment.StatusActive, 3, 4)
	f.enrollment(t, f.chess.ID, 5, enrollment.StatusCompleted, 9, 10)
	f.enrollment(t, f.chess.ID, 6, enrollment.StatusActive, 1, 1)

	for _, in := range []CreateInput{
		{SportID: f.athletics.ID, StudentID: 5, Title: "State gold", Type: TypeMedal, Level: LevelState, Medal: medal(MedalGold)},
		{SportID: f.athletics.ID, StudentID: 5, Title: "School bronze", Type: TypeMedal, Level: LevelSchool, Medal: medal(MedalBronze)},
		{SportID: f.athletics.ID, StudentID: 5, Title: "Long jump record", Type: TypeRecord, Level: LevelNational,
			RecordType: testutil.Ptr("long jump"), RecordValue: testutil.Ptr("6.1m")},
	} {
		_, err := f.service.Create(ctx, in)
		require.NoError(t, err)
	}

	cv, err := f.service.GetStudentSportsForCV(ctx, 5)
	require.NoError(t, err)
	assert.Len(t, cv.Participations, 2)
	assert.Len(t, cv.Achievements, 3)
	assert.Equal(t, CVSummary{
		TotalSports:           2,
		TotalAchievements:     3,
		HighLevelAchievements: 2,
		MedalCount:            MedalCount{Gold: 1, Bronze: 1},
		RecordsSet:            1,
		AverageAttendance:     83,
	}, cv.Summary)

	empty, err := f.service.GetStudentSportsForCV(ctx, 404)
	require.NoError(t, err)
	assert.Empty(t, empty.Participations)
	assert.Zero(t, empty.Summary.AverageAttendance)
}

func TestFormatDuration(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	cases := []struct {
		days int
		want string
	}{
		{0, "Less than a month"},
		{14, "Less than a month"},
		{15, "1 month"},
		{75, "3 months"},
		{360, "1 year"},
		{400, "1 year 1 month"},
		{800, "2 years 3 months"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatDuration(start, start.AddDate(0, 0, tc.days)), "%d days", tc.days)
	}
}

func TestAcademicYear(t *testing.T) {
	assert.Equal(t, "2024-25", AcademicYear(time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2025-26", AcademicYear(time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "1999-00", AcademicYear(time.Date(1999, 12, 1, 0, 0, 0, 0, time.UTC)))
}

func TestIsHighLevel(t *testing.T) {
	assert.True(t, LevelInternational.IsHighLevel())
	assert.False(t, LevelZonal.IsHighLevel())
}
