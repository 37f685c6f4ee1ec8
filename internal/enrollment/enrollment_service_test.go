package enrollment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/schoolsports/internal/models"
	"github.com/DhavalSuthar-24/schoolsports/internal/sport"
	"github.com/DhavalSuthar-24/schoolsports/internal/team"
	"github.com/DhavalSuthar-24/schoolsports/internal/testutil"
	"github.com/DhavalSuthar-24/schoolsports/pkg/apperrors"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type recordedEntry struct {
	action string
	id     uint
}

type fakeRecorder struct {
	entries []recordedEntry
	err     error
}

func (r *fakeRecorder) LogCreate(_ context.Context, _ string, id uint, _ any) error {
	r.entries = append(r.entries, recordedEntry{"create", id})
	return r.err
}

func (r *fakeRecorder) LogUpdate(_ context.Context, _ string, id uint, _, _ any) error {
	r.entries = append(r.entries, recordedEntry{"update", id})
	return r.err
}

type fixture struct {
	db       *gorm.DB
	manager  *Manager
	teams    team.TeamRepository
	sports   sport.SportRepository
	recorder *fakeRecorder
	football *sport.Sport
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutil.NewDB(t, &sport.Sport{}, &team.Team{}, &SportsEnrollment{})
	f := &fixture{
		db:       db,
		sports:   sport.NewSportRepository(db),
		teams:    team.NewTeamRepository(db),
		recorder: &fakeRecorder{},
	}
	f.manager = NewManager(db, f.sports, f.teams,
		WithRecorder(f.recorder),
		WithClock(func() time.Time { return time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC) }),
	)
	f.football = f.sport(t, "Football", sport.StatusActive)
	return f
}

func (f *fixture) sport(t *testing.T, name string, status sport.Status) *sport.Sport {
	t.Helper()
	s := &sport.Sport{Name: name, Category: sport.CategoryTeam, Status: status}
	require.NoError(t, f.sports.CreateSport(context.Background(), s))
	return s
}

func (f *fixture) team(t *testing.T, name string, sportID uint, maxMembers int) *team.Team {
	t.Helper()
	tm := &team.Team{Name: name, SportID: sportID, MaxMembers: maxMembers, Members: models.IDSet{}, Status: team.StatusActive}
	require.NoError(t, f.teams.CreateTeam(context.Background(), tm))
	return tm
}

func (f *fixture) members(t *testing.T, teamID uint) models.IDSet {
	t.Helper()
	tm, err := f.teams.GetTeamByID(context.Background(), teamID)
	require.NoError(t, err)
	require.NotNil(t, tm)
	return tm.Members
}

func (f *fixture) enroll(t *testing.T, studentID uint, teamID *uint) *SportsEnrollment {
	t.Helper()
	e, err := f.manager.Enroll(context.Background(), EnrollInput{SportID: f.football.ID, StudentID: studentID, TeamID: teamID})
	require.NoError(t, err)
	return e
}

func TestEnroll(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	e := f.enroll(t, 7, nil)
	assert.Equal(t, StatusActive, e.Status)
	assert.Equal(t, 0, e.AttendanceCount)
	assert.Equal(t, 0, e.TotalSessions)
	assert.Nil(t, e.TeamID)
	assert.Equal(t, time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC), e.EnrollmentDate)
	assert.Equal(t, []recordedEntry{{"create", e.ID}}, f.recorder.entries)

	t.Run("duplicate active enrollment", func(t *testing.T) {
		_, err := f.manager.Enroll(ctx, EnrollInput{SportID: f.football.ID, StudentID: 7})
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrBusinessRule)
		assert.Equal(t, "student 7 already has an active enrollment in Football", apperrors.Message(err))
	})

	t.Run("unknown sport", func(t *testing.T) {
		_, err := f.manager.Enroll(ctx, EnrollInput{SportID: 999, StudentID: 7})
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("inactive sport", func(t *testing.T) {
		chess := f.sport(t, "Chess", sport.StatusInactive)
		_, err := f.manager.Enroll(ctx, EnrollInput{SportID: chess.ID, StudentID: 7})
		assert.ErrorIs(t, err, apperrors.ErrBusinessRule)
	})

	t.Run("re-enroll after withdrawal", func(t *testing.T) {
		_, err := f.manager.WithdrawStudent(ctx, e.ID, "moved school")
		require.NoError(t, err)
		again := f.enroll(t, 7, nil)
		assert.NotEqual(t, e.ID, again.ID)
	})
}

func TestEnrollOntoTeam(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	seniors := f.team(t, "Seniors", f.football.ID, 2)

	e := f.enroll(t, 1, &seniors.ID)
	require.NotNil(t, e.TeamID)
	assert.Equal(t, models.IDSet{1}, f.members(t, seniors.ID))

	f.enroll(t, 2, &seniors.ID)
	_, err := f.manager.Enroll(ctx, EnrollInput{SportID: f.football.ID, StudentID: 3, TeamID: &seniors.ID})
	assert.ErrorIs(t, err, apperrors.ErrValidation, "team is full")

	cricket := f.sport(t, "Cricket", sport.StatusActive)
	other := f.team(t, "Cricket XI", cricket.ID, 0)
	_, err = f.manager.Enroll(ctx, EnrollInput{SportID: f.football.ID, StudentID: 4, TeamID: &other.ID})
	assert.ErrorIs(t, err, apperrors.ErrValidation, "team of another sport")

	var count int64
	require.NoError(t, f.db.Model(&SportsEnrollment{}).Count(&count).Error)
	assert.EqualValues(t, 2, count, "rejected enrollments are rolled back")
}

func TestRosterFollowsEnrollmentLifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	juniors := f.team(t, "Juniors", f.football.ID, 0)
	seniors := f.team(t, "Seniors", f.football.ID, 0)

	a := f.enroll(t, 10, nil)
	b := f.enroll(t, 11, nil)

	assigned, err := f.manager.AssignToTeam(ctx, a.ID, juniors.ID)
	require.NoError(t, err)
	assert.Equal(t, juniors.ID, *assigned.TeamID)
	_, err = f.manager.AssignToTeam(ctx, b.ID, juniors.ID)
	require.NoError(t, err)
	assert.Equal(t, models.IDSet{10, 11}, f.members(t, juniors.ID))

	_, err = f.manager.AssignToTeam(ctx, a.ID, seniors.ID)
	require.NoError(t, err)
	assert.Equal(t, models.IDSet{11}, f.members(t, juniors.ID))
	assert.Equal(t, models.IDSet{10}, f.members(t, seniors.ID))

	withdrawn, err := f.manager.WithdrawStudent(ctx, b.ID, "injury")
	require.NoError(t, err)
	assert.Equal(t, StatusWithdrawn, withdrawn.Status)
	assert.Equal(t, "injury", withdrawn.Remarks)
	assert.Equal(t, juniors.ID, *withdrawn.TeamID, "team id is kept for history")
	assert.Empty(t, f.members(t, juniors.ID))

	completed, err := f.manager.CompleteEnrollment(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, completed.Status)
	assert.Empty(t, f.members(t, seniors.ID))

	_, err = f.manager.AssignToTeam(ctx, a.ID, juniors.ID)
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)

	for _, id := range []uint{juniors.ID, seniors.ID} {
		derived, err := f.manager.Roster().Members(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, f.members(t, id), derived)
	}
}

func TestTerminalStatuses(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	e := f.enroll(t, 5, nil)

	_, err := f.manager.WithdrawStudent(ctx, e.ID, "")
	require.NoError(t, err)

	_, err = f.manager.WithdrawStudent(ctx, e.ID, "")
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
	_, err = f.manager.CompleteEnrollment(ctx, e.ID)
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
	_, err = f.manager.CompleteEnrollment(ctx, 999)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestMarkAttendance(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	e := f.enroll(t, 3, nil)

	for _, present := range []bool{true, true, false, true} {
		_, err := f.manager.MarkAttendance(ctx, e.ID, present)
		require.NoError(t, err)
	}
	got, err := f.manager.Get(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.AttendanceCount)
	assert.Equal(t, 4, got.TotalSessions)
	assert.LessOrEqual(t, got.AttendanceCount, got.TotalSessions)

	pct, err := f.manager.GetAttendancePercentage(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, 75, pct)

	_, err = f.manager.WithdrawStudent(ctx, e.ID, "")
	require.NoError(t, err)
	_, err = f.manager.MarkAttendance(ctx, e.ID, true)
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)

	_, err = f.manager.MarkAttendance(ctx, 404, true)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestBulkMarkAttendanceSkipsFailures(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := f.enroll(t, 1, nil)
	b := f.enroll(t, 2, nil)
	c := f.enroll(t, 3, nil)
	_, err := f.manager.WithdrawStudent(ctx, c.ID, "")
	require.NoError(t, err)

	updated := f.manager.BulkMarkAttendance(ctx, []AttendanceMark{
		{EnrollmentID: a.ID, Present: true},
		{EnrollmentID: 999, Present: true},
		{EnrollmentID: c.ID, Present: true},
		{EnrollmentID: b.ID, Present: false},
	})
	require.Len(t, updated, 2)
	assert.Equal(t, a.ID, updated[0].ID)
	assert.Equal(t, 1, updated[0].AttendanceCount)
	assert.Equal(t, b.ID, updated[1].ID)
	assert.Equal(t, 0, updated[1].AttendanceCount)
	assert.Equal(t, 1, updated[1].TotalSessions)

	assert.Empty(t, f.manager.BulkMarkAttendance(ctx, nil))
}

func TestCanEnroll(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	got, err := f.manager.CanEnroll(ctx, f.football.ID, 8)
	require.NoError(t, err)
	assert.Equal(t, Eligibility{Allowed: true, Reason: "Student can enroll"}, got)

	f.enroll(t, 8, nil)
	got, err = f.manager.CanEnroll(ctx, f.football.ID, 8)
	require.NoError(t, err)
	assert.False(t, got.Allowed)
	assert.Equal(t, "student 8 already has an active enrollment in Football", got.Reason)

	got, err = f.manager.CanEnroll(ctx, 999, 8)
	require.NoError(t, err)
	assert.False(t, got.Allowed)
	assert.Equal(t, "sport 999 not found", got.Reason)
}

func TestAuditFailureDoesNotFailMutation(t *testing.T) {
	f := newFixture(t)
	f.recorder.err = errors.New("audit store down")

	e := f.enroll(t, 4, nil)
	_, err := f.manager.MarkAttendance(context.Background(), e.ID, true)
	require.NoError(t, err)
	assert.Equal(t, []recordedEntry{{"create", e.ID}, {"update", e.ID}}, f.recorder.entries)
}

func TestListFilters(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.enroll(t, 1, nil)
	e := f.enroll(t, 2, nil)
	_, err := f.manager.WithdrawStudent(ctx, e.ID, "")
	require.NoError(t, err)

	page, err := f.manager.List(ctx, Filter{Status: StatusActive}, paginationAll)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, uint(1), page.Items[0].StudentID)
	assert.EqualValues(t, 1, page.Meta.Total)
}
