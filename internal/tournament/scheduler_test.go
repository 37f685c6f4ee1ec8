package tournament

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DhavalSuthar-24/schoolsports/internal/models"
	"github.com/DhavalSuthar-24/schoolsports/internal/sport"
	"github.com/DhavalSuthar-24/schoolsports/internal/team"
	"github.com/DhavalSuthar-24/schoolsports/internal/testutil"
	"github.com/DhavalSuthar-24/schoolsports/pkg/apperrors"
)

func day(d int) time.Time {
	return time.Date(2025, 3, d, 10, 0, 0, 0, time.UTC)
}

type fixture struct {
	scheduler *Scheduler
	sportID   uint
	teamA     uint
	teamB     uint
	foreign   uint
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	db := testutil.NewDB(t, &sport.Sport{}, &team.Team{}, &Tournament{})
	sports := sport.NewSportRepository(db)
	teams := team.NewTeamRepository(db)

	football := &sport.Sport{Name: "Football", Category: sport.CategoryTeam, Status: sport.StatusActive}
	require.NoError(t, sports.CreateSport(ctx, football))
	chess := &sport.Sport{Name: "Chess", Category: sport.CategoryIndividual, Status: sport.StatusActive}
	require.NoError(t, sports.CreateSport(ctx, chess))

	newTeam := func(name string, sportID uint) uint {
		tm := &team.Team{Name: name, SportID: sportID, Members: models.IDSet{}, Status: team.StatusActive}
		require.NoError(t, teams.CreateTeam(ctx, tm))
		return tm.ID
	}
	f := &fixture{
		sportID: football.ID,
		teamA:   newTeam("Red House", football.ID),
		teamB:   newTeam("Blue House", football.ID),
		foreign: newTeam("Chess Club", chess.ID),
	}
	f.scheduler = NewScheduler(db, sports, teams,
		WithClock(func() time.Time { return time.Date(2025, 2, 20, 8, 0, 0, 0, time.UTC) }))
	return f
}

func (f *fixture) create(t *testing.T) *Tournament {
	t.Helper()
	tr, err := f.scheduler.CreateTournament(context.Background(), CreateInput{
		SportID:   f.sportID,
		Name:      "Inter-House Cup",
		Type:      TypeIntraSchool,
		StartDate: day(1),
		EndDate:   day(10),
	})
	require.NoError(t, err)
	return tr
}

func TestCreateTournament(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tr := f.create(t)
	assert.Equal(t, StatusScheduled, tr.Status)
	assert.Empty(t, tr.Teams)
	assert.Empty(t, tr.Participants)
	assert.Empty(t, tr.Schedule)

	stored, err := f.scheduler.Get(ctx, tr.ID)
	require.NoError(t, err)
	assert.Equal(t, "Inter-House Cup", stored.Name)
	assert.NotNil(t, stored.Schedule)

	cases := []struct {
		name string
		in   CreateInput
		kind error
	}{
		{"end before start", CreateInput{SportID: f.sportID, Name: "X", Type: TypeDistrict, StartDate: day(5), EndDate: day(4)}, apperrors.ErrValidation},
		{"start in the past", CreateInput{SportID: f.sportID, Name: "X", Type: TypeDistrict, StartDate: time.Date(2025, 2, 19, 0, 0, 0, 0, time.UTC), EndDate: day(4)}, apperrors.ErrValidation},
		{"unknown type", CreateInput{SportID: f.sportID, Name: "X", Type: "galactic", StartDate: day(1), EndDate: day(2)}, apperrors.ErrValidation},
		{"unknown sport", CreateInput{SportID: 999, Name: "X", Type: TypeDistrict, StartDate: day(1), EndDate: day(2)}, apperrors.ErrNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.scheduler.CreateTournament(ctx, tc.in)
			assert.ErrorIs(t, err, tc.kind)
		})
	}

	t.Run("start today", func(t *testing.T) {
		_, err := f.scheduler.CreateTournament(ctx, CreateInput{
			SportID: f.sportID, Name: "Same day", Type: TypeZonal,
			StartDate: time.Date(2025, 2, 20, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2025, 2, 20, 0, 0, 0, 0, time.UTC),
		})
		assert.NoError(t, err)
	})
}

func TestAddTeams(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	tr := f.create(t)

	got, err := f.scheduler.AddTeams(ctx, tr.ID, []uint{f.teamB, f.teamA, f.teamA})
	require.NoError(t, err)
	assert.Equal(t, models.IDSet{f.teamA, f.teamB}, got.Teams)

	_, err = f.scheduler.AddTeams(ctx, tr.ID, []uint{f.teamA, f.foreign})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	_, err = f.scheduler.AddTeams(ctx, tr.ID, []uint{999})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	stored, err := f.scheduler.Get(ctx, tr.ID)
	require.NoError(t, err)
	assert.Equal(t, models.IDSet{f.teamA, f.teamB}, stored.Teams, "failed batches leave the roster untouched")

	got, err = f.scheduler.AddParticipants(ctx, tr.ID, []uint{30, 20, 30})
	require.NoError(t, err)
	assert.Equal(t, models.IDSet{20, 30}, got.Participants)
}

func TestMatchDatesAndRoster(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	tr := f.create(t)

	_, err := f.scheduler.CreateMatchSchedule(ctx, tr.ID, []Match{
		{Date: day(15), Team1ID: &f.teamA, Team2ID: &f.teamB},
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	match := Match{MatchID: "opener", Date: day(5), Team1ID: &f.teamA, Team2ID: &f.teamB}
	_, err = f.scheduler.CreateMatchSchedule(ctx, tr.ID, []Match{match})
	assert.ErrorIs(t, err, apperrors.ErrValidation, "teams not yet in the tournament")

	_, err = f.scheduler.AddTeams(ctx, tr.ID, []uint{f.teamA, f.teamB})
	require.NoError(t, err)
	got, err := f.scheduler.CreateMatchSchedule(ctx, tr.ID, []Match{match})
	require.NoError(t, err)
	require.Len(t, got.Schedule, 1)
	assert.Equal(t, "opener", got.Schedule[0].MatchID)

	_, err = f.scheduler.CreateMatchSchedule(ctx, tr.ID, []Match{
		{Date: day(6), Participant1ID: testutil.Ptr(uint(1)), Participant2ID: testutil.Ptr(uint(2))},
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation, "participants not registered")
}

func TestDatesUseTheEnteredCalendarDay(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ist := time.FixedZone("IST", 5*60*60+30*60)

	tr, err := f.scheduler.CreateTournament(ctx, CreateInput{
		SportID:   f.sportID,
		Name:      "Zonal Cup",
		Type:      TypeZonal,
		StartDate: time.Date(2025, 3, 1, 0, 0, 0, 0, ist),
		EndDate:   time.Date(2025, 3, 10, 0, 0, 0, 0, ist),
	})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), tr.StartDate)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), tr.EndDate)
	_, err = f.scheduler.AddTeams(ctx, tr.ID, []uint{f.teamA, f.teamB})
	require.NoError(t, err)

	late := time.Date(2025, 3, 10, 18, 0, 0, 0, ist)
	got, err := f.scheduler.CreateMatchSchedule(ctx, tr.ID, []Match{
		{MatchID: "late", Date: late, Team1ID: &f.teamA, Team2ID: &f.teamB},
		{MatchID: "early", Date: time.Date(2025, 3, 1, 1, 0, 0, 0, ist), Team1ID: &f.teamB, Team2ID: &f.teamA},
	})
	require.NoError(t, err)
	assert.Equal(t, late.UTC(), got.Schedule[0].Date)

	stored, err := f.scheduler.Get(ctx, tr.ID)
	require.NoError(t, err)
	assert.True(t, stored.Schedule[0].Date.Equal(late))

	_, err = f.scheduler.CreateMatchSchedule(ctx, tr.ID, []Match{
		{Date: time.Date(2025, 3, 11, 0, 30, 0, 0, ist), Team1ID: &f.teamA, Team2ID: &f.teamB},
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation, "the day after the tournament ends")
}

func TestMatchScheduleAndResults(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	tr := f.create(t)
	_, err := f.scheduler.AddTeams(ctx, tr.ID, []uint{f.teamA, f.teamB})
	require.NoError(t, err)

	got, err := f.scheduler.CreateMatchSchedule(ctx, tr.ID, []Match{
		{MatchID: "final", Date: day(5), Round: "Final", Team1ID: &f.teamA, Team2ID: &f.teamB},
		{Date: day(3), Round: "Friendly", Team1ID: &f.teamB, Team2ID: &f.teamA},
	})
	require.NoError(t, err)
	require.Len(t, got.Schedule, 2)
	assert.Equal(t, "final", got.Schedule[0].MatchID)
	assert.NotEmpty(t, got.Schedule[1].MatchID)

	t.Run("rejected schedules change nothing", func(t *testing.T) {
		invalid := [][]Match{
			{{Date: day(11), Team1ID: &f.teamA, Team2ID: &f.teamB}},
			{{MatchID: "final", Date: day(5), Team1ID: &f.teamA, Team2ID: &f.teamB}},
			{{Date: day(5), Team1ID: &f.teamA, Team2ID: &f.teamA}},
			{{Date: day(5), Team1ID: &f.teamA, Team2ID: &f.foreign}},
			{{Date: day(5), Team1ID: &f.teamA}},
			{{Date: day(5), Team1ID: &f.teamA, Team2ID: &f.teamB, Participant1ID: testutil.Ptr(uint(1))}},
			{{Date: day(5), Team1ID: &f.teamA, Team2ID: &f.teamB, WinnerID: testutil.Ptr(uint(77))}},
			{
				{MatchID: "ok", Date: day(6), Team1ID: &f.teamA, Team2ID: &f.teamB},
				{Date: day(0), Team1ID: &f.teamA, Team2ID: &f.teamB},
			},
		}
		for i, matches := range invalid {
			_, err := f.scheduler.CreateMatchSchedule(ctx, tr.ID, matches)
			assert.ErrorIs(t, err, apperrors.ErrValidation, "case %d", i)
		}
		stored, err := f.scheduler.Get(ctx, tr.ID)
		require.NoError(t, err)
		assert.Len(t, stored.Schedule, 2)
	})

	m, err := f.scheduler.RecordMatchResult(ctx, tr.ID, "final", MatchResult{
		Score1:   testutil.Ptr("3"),
		Score2:   testutil.Ptr("1"),
		WinnerID: &f.teamA,
	})
	require.NoError(t, err)
	assert.Equal(t, f.teamA, *m.WinnerID)

	_, err = f.scheduler.RecordMatchResult(ctx, tr.ID, "final", MatchResult{WinnerID: testutil.Ptr(uint(999))})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	_, err = f.scheduler.RecordMatchResult(ctx, tr.ID, "missing", MatchResult{})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	stored, err := f.scheduler.Get(ctx, tr.ID)
	require.NoError(t, err)
	require.Len(t, stored.Schedule, 2)
	final := stored.Schedule[0]
	assert.Equal(t, "final", final.MatchID)
	assert.Equal(t, "3", *final.Score1)
	assert.Equal(t, "1", *final.Score2)
	assert.Equal(t, f.teamA, *final.WinnerID)
	assert.Equal(t, "Final", final.Round)
	assert.Nil(t, stored.Schedule[1].WinnerID, "other matches are untouched")

	_, err = f.scheduler.RecordMatchResult(ctx, tr.ID, stored.Schedule[1].MatchID, MatchResult{
		Score1: testutil.Ptr("2"), Score2: testutil.Ptr("2"), Remarks: testutil.Ptr("rain delay"),
	})
	require.NoError(t, err)

	tallies, err := f.scheduler.GetPlayerStatistics(ctx, tr.ID)
	require.NoError(t, err)
	assert.Equal(t, []Tally{
		{ID: f.teamA, Kind: KindTeam, MatchesPlayed: 2, Wins: 1, Draws: 1},
		{ID: f.teamB, Kind: KindTeam, MatchesPlayed: 2, Losses: 1, Draws: 1},
	}, tallies)
}

func TestTournamentStatus(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tr := f.create(t)
	_, err := f.scheduler.UpdateTournamentStatus(ctx, tr.ID, StatusCompleted)
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)

	got, err := f.scheduler.UpdateTournamentStatus(ctx, tr.ID, StatusOngoing)
	require.NoError(t, err)
	assert.Equal(t, StatusOngoing, got.Status)
	_, err = f.scheduler.UpdateTournamentStatus(ctx, tr.ID, StatusCompleted)
	require.NoError(t, err)

	for _, s := range []Status{StatusScheduled, StatusOngoing, StatusCancelled, StatusCompleted} {
		_, err = f.scheduler.UpdateTournamentStatus(ctx, tr.ID, s)
		assert.ErrorIs(t, err, apperrors.ErrInvalidTransition, "completed -> %s", s)
	}
	assert.ErrorIs(t, f.scheduler.DeleteTournament(ctx, tr.ID), apperrors.ErrInvalidTransition)

	_, err = f.scheduler.UpdateTournamentStatus(ctx, tr.ID, "postponed")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	cancelled := f.create(t)
	_, err = f.scheduler.UpdateTournamentStatus(ctx, cancelled.ID, StatusCancelled)
	require.NoError(t, err)
	_, err = f.scheduler.UpdateTournamentStatus(ctx, cancelled.ID, StatusOngoing)
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)

	require.NoError(t, f.scheduler.DeleteTournament(ctx, cancelled.ID))
	_, err = f.scheduler.Get(ctx, cancelled.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestMediaUploads(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	tr := f.create(t)

	_, err := f.scheduler.UploadPhotos(ctx, tr.ID, []string{"https://cdn.example/a.jpg"})
	require.NoError(t, err)
	got, err := f.scheduler.UploadPhotos(ctx, tr.ID, []string{"https://cdn.example/b.jpg"})
	require.NoError(t, err)
	assert.Equal(t, models.StringSlice{"https://cdn.example/a.jpg", "https://cdn.example/b.jpg"}, got.Photos)

	got, err = f.scheduler.UploadVideos(ctx, tr.ID, []string{"https://cdn.example/final.mp4"})
	require.NoError(t, err)
	assert.Len(t, got.Videos, 1)
	assert.Len(t, got.Photos, 2)
}
