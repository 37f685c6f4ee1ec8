package stats

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DhavalSuthar-24/schoolsports/internal/achievement"
	"github.com/DhavalSuthar-24/schoolsports/internal/enrollment"
	"github.com/DhavalSuthar-24/schoolsports/internal/models"
	"github.com/DhavalSuthar-24/schoolsports/internal/sport"
	"github.com/DhavalSuthar-24/schoolsports/internal/team"
	"github.com/DhavalSuthar-24/schoolsports/internal/testutil"
	"github.com/DhavalSuthar-24/schoolsports/internal/tournament"
	"github.com/DhavalSuthar-24/schoolsports/pkg/apperrors"
)

type fixture struct {
	aggregator   *Aggregator
	enrollments  enrollment.EnrollmentRepository
	achievements achievement.AchievementRepository
	tournaments  tournament.TournamentRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutil.NewDB(t, &sport.Sport{}, &team.Team{}, &enrollment.SportsEnrollment{},
		&tournament.Tournament{}, &achievement.SportsAchievement{})
	f := &fixture{
		enrollments:  enrollment.NewEnrollmentRepository(db),
		achievements: achievement.NewAchievementRepository(db),
		tournaments:  tournament.NewTournamentRepository(db),
	}
	scheduler := tournament.NewScheduler(db, sport.NewSportRepository(db), team.NewTeamRepository(db))
	f.aggregator = NewAggregator(f.enrollments, f.achievements, scheduler)
	return f
}

func (f *fixture) enroll(t *testing.T, sportID, studentID uint, teamID *uint, status enrollment.Status, attended, total int) {
	t.Helper()
	require.NoError(t, f.enrollments.Create(context.Background(), &enrollment.SportsEnrollment{
		SportID:         sportID,
		StudentID:       studentID,
		TeamID:          teamID,
		EnrollmentDate:  time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		Status:          status,
		AttendanceCount: attended,
		TotalSessions:   total,
	}))
}

func TestGetEnrollmentStats(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	teamID := uint(4)

	f.enroll(t, 1, 100, &teamID, enrollment.StatusActive, 3, 4)
	f.enroll(t, 1, 101, &teamID, enrollment.StatusCompleted, 4, 5)
	f.enroll(t, 2, 100, nil, enrollment.StatusWithdrawn, 9, 10)
	f.enroll(t, 2, 102, nil, enrollment.StatusActive, 0, 0)

	got, err := f.aggregator.GetEnrollmentStats(ctx, Filter{})
	require.NoError(t, err)
	assert.Equal(t, &EnrollmentStats{
		Total:     4,
		Active:    2,
		Withdrawn: 1,
		Completed: 1,
		BySport: []SportCount{
			{SportID: 1, Active: 1, Total: 2},
			{SportID: 2, Active: 1, Total: 2},
		},
		TotalSessions:     19,
		TotalAttended:     16,
		AverageAttendance: 81.67,
	}, got)

	got, err = f.aggregator.GetEnrollmentStats(ctx, Filter{TeamID: teamID})
	require.NoError(t, err)
	assert.Equal(t, 2, got.Total)
	assert.Equal(t, 77.5, got.AverageAttendance)

	got, err = f.aggregator.GetEnrollmentStats(ctx, Filter{SportID: 99})
	require.NoError(t, err)
	assert.Zero(t, got.Total)
	assert.Empty(t, got.BySport)
	assert.Zero(t, got.AverageAttendance)
}

func TestGetStudentParticipationSummary(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.enroll(t, 1, 7, nil, enrollment.StatusActive, 3, 4)
	f.enroll(t, 2, 7, nil, enrollment.StatusActive, 0, 0)
	f.enroll(t, 3, 7, nil, enrollment.StatusCompleted, 2, 3)
	require.NoError(t, f.achievements.CreateAchievement(ctx, &achievement.SportsAchievement{
		SportID: 1, StudentID: 7, Title: "Captain", Type: achievement.TypeRecognition,
		Level: achievement.LevelSchool, AchievementDate: time.Now(),
	}))

	got, err := f.aggregator.GetStudentParticipationSummary(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, &ParticipationSummary{
		StudentID:         7,
		TotalSports:       3,
		Active:            2,
		Completed:         1,
		TotalSessions:     7,
		TotalAttended:     5,
		Achievements:      1,
		AverageAttendance: 47.33,
	}, got)

	empty, err := f.aggregator.GetStudentParticipationSummary(ctx, 8)
	require.NoError(t, err)
	assert.Zero(t, empty.AverageAttendance)
	assert.Zero(t, empty.TotalSports)
}

func TestGetTournamentStatistics(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	one, two, three := uint(1), uint(2), uint(3)
	score := func(s string) *string { return &s }

	tr := &tournament.Tournament{
		SportID:      1,
		Name:         "Chess Open",
		Type:         tournament.TypeInterSchool,
		StartDate:    time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Status:       tournament.StatusOngoing,
		Participants: models.NewIDSet(1, 2, 3),
		Schedule: tournament.Schedule{
			{MatchID: "r1", Participant1ID: &one, Participant2ID: &two, WinnerID: &one},
			{MatchID: "r2", Participant1ID: &two, Participant2ID: &three, Score1: score("0.5"), Score2: score("0.5")},
			{MatchID: "r3", Participant1ID: &one, Participant2ID: &three},
		},
	}
	require.NoError(t, f.tournaments.CreateTournament(ctx, tr))

	got, err := f.aggregator.GetTournamentStatistics(ctx, tr.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Participants)
	assert.Equal(t, 3, got.TotalMatches)
	assert.Equal(t, 2, got.CompletedMatches)
	assert.Equal(t, 1, got.DecidedMatches)
	assert.Equal(t, 1, got.Draws)
	assert.Equal(t, 1, got.PendingMatches)
	assert.Len(t, got.Tallies, 3)

	players, err := f.aggregator.GetPlayerStatistics(ctx, tr.ID)
	require.NoError(t, err)
	assert.Equal(t, got.Tallies, players)

	_, err = f.aggregator.GetTournamentStatistics(ctx, 999)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestAverageAttendanceRules(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.enroll(t, 10, 1, nil, enrollment.StatusActive, 8, 10)
	f.enroll(t, 10, 2, nil, enrollment.StatusActive, 7, 10)
	f.enroll(t, 10, 3, nil, enrollment.StatusActive, 0, 0)
	got, err := f.aggregator.GetEnrollmentStats(ctx, Filter{SportID: 10})
	require.NoError(t, err)
	assert.Equal(t, 75.0, got.AverageAttendance)

	f.enroll(t, 11, 9, nil, enrollment.StatusActive, 8, 10)
	f.enroll(t, 12, 9, nil, enrollment.StatusActive, 3, 4)
	f.enroll(t, 13, 9, nil, enrollment.StatusCompleted, 9, 10)
	summary, err := f.aggregator.GetStudentParticipationSummary(ctx, 9)
	require.NoError(t, err)
	assert.Equal(t, 81.67, summary.AverageAttendance)
}
