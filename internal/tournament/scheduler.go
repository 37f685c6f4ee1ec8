package tournament

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/DhavalSuthar-24/schoolsports/internal/metrics"
	"github.com/DhavalSuthar-24/schoolsports/internal/models"
	"github.com/DhavalSuthar-24/schoolsports/internal/sport"
	"github.com/DhavalSuthar-24/schoolsports/internal/store"
	"github.com/DhavalSuthar-24/schoolsports/internal/team"
	"github.com/DhavalSuthar-24/schoolsports/pkg/apperrors"
	"github.com/DhavalSuthar-24/schoolsports/pkg/batch"
	"github.com/DhavalSuthar-24/schoolsports/pkg/pagination"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const domain = "tournament"

var validTypes = []Type{
	TypeIntraSchool, TypeInterSchool, TypeDistrict, TypeZonal, TypeState, TypeNational, TypeInternational,
}

var validStatuses = []Status{StatusScheduled, StatusOngoing, StatusCompleted, StatusCancelled}

// CreateInput carries the fields of a new tournament.
type CreateInput struct {
	SportID     uint      `json:"sport_id" binding:"required"`
	Name        string    `json:"name" binding:"required,min=2,max=200"`
	Description string    `json:"description" binding:"omitempty,max=5000"`
	Type        Type      `json:"type" binding:"required,oneof=intra_school inter_school district zonal state national international"`
	StartDate   time.Time `json:"start_date" binding:"required"`
	EndDate     time.Time `json:"end_date" binding:"required"`
	Venue       string    `json:"venue" binding:"omitempty,max=200"`
	Organizer   string    `json:"organizer" binding:"omitempty,max=200"`
}

// Scheduler creates tournaments, manages their rosters and schedules, and
// governs their status.
type Scheduler struct {
	tx          *store.Transactor
	tournaments TournamentRepository
	sports      sport.SportRepository
	teams       team.TeamRepository
	log         *zap.Logger
	now         func() time.Time
}

type Option func(*Scheduler)

// WithClock overrides the clock that decides what "today" is.
func WithClock(now func() time.Time) Option {
	return func(s *Scheduler) { s.now = now }
}

func WithLogger(l *zap.Logger) Option {
	return func(s *Scheduler) {
		if l != nil {
			s.log = l
		}
	}
}

func NewScheduler(db *gorm.DB, sports sport.SportRepository, teams team.TeamRepository, opts ...Option) *Scheduler {
	s := &Scheduler{
		tx:          store.NewTransactor(db),
		tournaments: NewTournamentRepository(db),
		sports:      sports,
		teams:       teams,
		log:         zap.NewNop(),
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateTournament validates the dates and stores a scheduled tournament with
// an empty roster and schedule.
func (s *Scheduler) CreateTournament(ctx context.Context, in CreateInput) (*Tournament, error) {
	if !slices.Contains(validTypes, in.Type) {
		return nil, apperrors.Validation(domain, "CreateTournament", "unknown tournament type %q", in.Type)
	}
	sp, err := s.sports.GetSportByID(ctx, in.SportID)
	if err != nil {
		return nil, fmt.Errorf("load sport %d: %w", in.SportID, err)
	}
	if sp == nil {
		return nil, apperrors.NotFound(domain, "CreateTournament", "sport %d not found", in.SportID)
	}
	start, end := dateOnly(in.StartDate), dateOnly(in.EndDate)
	if end.Before(start) {
		return nil, apperrors.Validation(domain, "CreateTournament", "end date cannot be before start date")
	}
	if start.Before(dateOnly(s.now())) {
		return nil, apperrors.Validation(domain, "CreateTournament", "start date cannot be in the past")
	}

	t := &Tournament{
		SportID:      sp.ID,
		Name:         in.Name,
		Description:  in.Description,
		Type:         in.Type,
		StartDate:    start,
		EndDate:      end,
		Venue:        in.Venue,
		Organizer:    in.Organizer,
		Status:       StatusScheduled,
		Teams:        models.IDSet{},
		Participants: models.IDSet{},
		Schedule:     Schedule{},
		Photos:       models.StringSlice{},
		Videos:       models.StringSlice{},
	}
	if err := s.tournaments.CreateTournament(ctx, t); err != nil {
		return nil, err
	}
	metrics.TournamentTransitions.WithLabelValues(string(StatusScheduled)).Inc()
	s.log.Info("tournament created", zap.Uint("tournament_id", t.ID), zap.Uint("sport_id", t.SportID))
	return t, nil
}

// AddTeams registers teams of the tournament's sport. The batch is all-or-nothing:
// the first missing or foreign team aborts it and nothing is saved. Re-adding a team is a no-op.
func (s *Scheduler) AddTeams(ctx context.Context, tournamentID uint, teamIDs []uint) (*Tournament, error) {
	return s.mutate(ctx, "AddTeams", tournamentID, func(tx *gorm.DB, t *Tournament) (map[string]interface{}, error) {
		teams := s.teams.WithTx(tx)
		members := slices.Clone(t.Teams)
		_, err := batch.Run(teamIDs, batch.FailFast, func(id uint) (uint, error) {
			tm, err := teams.GetTeamByID(ctx, id)
			if err != nil {
				return 0, fmt.Errorf("load team %d: %w", id, err)
			}
			if tm == nil {
				return 0, apperrors.NotFound(domain, "AddTeams", "team %d not found", id)
			}
			if tm.SportID != t.SportID {
				return 0, apperrors.Validation(domain, "AddTeams",
					"team %s does not belong to the tournament's sport", tm.Name)
			}
			members = members.Add(id)
			return id, nil
		}, nil)
		if err != nil {
			return nil, err
		}
		t.Teams = members
		return map[string]interface{}{"teams": members}, nil
	})
}

// AddParticipants registers individual students.
func (s *Scheduler) AddParticipants(ctx context.Context, tournamentID uint, studentIDs []uint) (*Tournament, error) {
	return s.mutate(ctx, "AddParticipants", tournamentID, func(_ *gorm.DB, t *Tournament) (map[string]interface{}, error) {
		members := slices.Clone(t.Participants)
		for _, id := range studentIDs {
			members = members.Add(id)
		}
		t.Participants = members
		return map[string]interface{}{"participants": members}, nil
	})
}

// CreateMatchSchedule appends matches in the given order. Every match must fall
// within the tournament dates and pair registered teams or participants; the first
// invalid match aborts the batch.
func (s *Scheduler) CreateMatchSchedule(ctx context.Context, tournamentID uint, matches []Match) (*Tournament, error) {
	return s.mutate(ctx, "CreateMatchSchedule", tournamentID, func(_ *gorm.DB, t *Tournament) (map[string]interface{}, error) {
		schedule := slices.Clone(t.Schedule)
		_, err := batch.Run(matches, batch.FailFast, func(m Match) (string, error) {
			if m.MatchID == "" {
				m.MatchID = uuid.NewString()
			}
			if schedule.Find(m.MatchID) >= 0 {
				return "", apperrors.Validation(domain, "CreateMatchSchedule",
					"match %s is already scheduled", m.MatchID)
			}
			if err := validateMatch(t, &m); err != nil {
				return "", err
			}
			m.Date = m.Date.UTC()
			schedule = append(schedule, m)
			return m.MatchID, nil
		}, nil)
		if err != nil {
			return nil, err
		}
		t.Schedule = schedule
		return map[string]interface{}{"schedule": schedule}, nil
	})
}

func validateMatch(t *Tournament, m *Match) error {
	const op = "CreateMatchSchedule"
	day := dateOnly(m.Date)
	start, end := dateOnly(t.StartDate.UTC()), dateOnly(t.EndDate.UTC())
	if day.Before(start) || day.After(end) {
		return apperrors.Validation(domain, op, "match %s date %s is outside the tournament dates %s to %s",
			m.MatchID, day.Format(time.DateOnly), start.Format(time.DateOnly), end.Format(time.DateOnly))
	}
	if m.IsTeamMatch() == m.IsParticipantMatch() {
		return apperrors.Validation(domain, op, "match %s must pair either two teams or two participants", m.MatchID)
	}
	a, b, ok := m.Sides()
	if !ok {
		return apperrors.Validation(domain, op, "match %s needs both sides", m.MatchID)
	}
	if a == b {
		return apperrors.Validation(domain, op, "match %s pairs %d against itself", m.MatchID, a)
	}

	roster, kind := t.Participants, "participant"
	if m.IsTeamMatch() {
		roster, kind = t.Teams, "team"
	}
	for _, id := range []uint{a, b} {
		if !roster.Contains(id) {
			return apperrors.Validation(domain, op, "%s %d is not part of the tournament", kind, id)
		}
	}
	if m.WinnerID != nil && *m.WinnerID != a && *m.WinnerID != b {
		return apperrors.Validation(domain, op, "winner %d is not a side of match %s", *m.WinnerID, m.MatchID)
	}
	return nil
}

// UpdateTournamentStatus moves the tournament along its lifecycle.
func (s *Scheduler) UpdateTournamentStatus(ctx context.Context, tournamentID uint, status Status) (*Tournament, error) {
	const op = "UpdateTournamentStatus"
	if !slices.Contains(validStatuses, status) {
		return nil, apperrors.Validation(domain, op, "unknown tournament status %q", status)
	}
	t, err := s.mutate(ctx, op, tournamentID, func(_ *gorm.DB, t *Tournament) (map[string]interface{}, error) {
		if err := Transitions.Check(op, t.Status, status); err != nil {
			return nil, err
		}
		t.Status = status
		return map[string]interface{}{"status": status}, nil
	})
	if err != nil {
		return nil, err
	}
	metrics.TournamentTransitions.WithLabelValues(string(status)).Inc()
	return t, nil
}

// DeleteTournament soft-deletes a tournament that has not been completed.
func (s *Scheduler) DeleteTournament(ctx context.Context, tournamentID uint) error {
	return s.tx.WithTransaction(ctx, func(tx *gorm.DB) error {
		repo := s.tournaments.WithTx(tx)
		t, err := s.load(ctx, repo, "DeleteTournament", tournamentID)
		if err != nil {
			return err
		}
		if t.Status == StatusCompleted {
			return apperrors.InvalidTransition(domain, "DeleteTournament",
				"completed tournament %d cannot be deleted", t.ID)
		}
		return repo.DeleteTournament(ctx, t.ID)
	})
}

// UploadPhotos appends photo URLs.
func (s *Scheduler) UploadPhotos(ctx context.Context, tournamentID uint, urls []string) (*Tournament, error) {
	return s.mutate(ctx, "UploadPhotos", tournamentID, func(_ *gorm.DB, t *Tournament) (map[string]interface{}, error) {
		t.Photos = append(slices.Clone(t.Photos), urls...)
		return map[string]interface{}{"photos": t.Photos}, nil
	})
}

// UploadVideos appends video URLs.
func (s *Scheduler) UploadVideos(ctx context.Context, tournamentID uint, urls []string) (*Tournament, error) {
	return s.mutate(ctx, "UploadVideos", tournamentID, func(_ *gorm.DB, t *Tournament) (map[string]interface{}, error) {
		t.Videos = append(slices.Clone(t.Videos), urls...)
		return map[string]interface{}{"videos": t.Videos}, nil
	})
}

func (s *Scheduler) Get(ctx context.Context, tournamentID uint) (*Tournament, error) {
	return s.load(ctx, s.tournaments, "Get", tournamentID)
}

func (s *Scheduler) List(ctx context.Context, filter Filter, p pagination.Params) (*store.Page[Tournament], error) {
	return s.tournaments.GetTournaments(ctx, filter, p)
}

// mutate loads the tournament for update, applies fn and persists the columns it returns,
// all in one transaction.
func (s *Scheduler) mutate(ctx context.Context, op string, tournamentID uint,
	fn func(tx *gorm.DB, t *Tournament) (map[string]interface{}, error)) (*Tournament, error) {
	var result *Tournament
	err := s.tx.WithTransaction(ctx, func(tx *gorm.DB) error {
		repo := s.tournaments.WithTx(tx)
		t, err := repo.GetTournamentByIDForUpdate(ctx, tournamentID)
		if err != nil {
			return fmt.Errorf("load tournament %d: %w", tournamentID, err)
		}
		if t == nil {
			return apperrors.NotFound(domain, op, "tournament %d not found", tournamentID)
		}
		changes, err := fn(tx, t)
		if err != nil {
			return err
		}
		if len(changes) > 0 {
			if err := repo.UpdateTournament(ctx, t.ID, changes); err != nil {
				return fmt.Errorf("%s: save tournament %d: %w", op, t.ID, err)
			}
		}
		result = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *Scheduler) load(ctx context.Context, repo TournamentRepository, op string, id uint) (*Tournament, error) {
	t, err := repo.GetTournamentByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load tournament %d: %w", id, err)
	}
	if t == nil {
		return nil, apperrors.NotFound(domain, op, "tournament %d not found", id)
	}
	return t, nil
}

// dateOnly drops the time of day, keeping the calendar date of t in its own
// location. Tournament dates are stored this way, as UTC midnight.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
