package tournament

import (
	"context"

	"github.com/DhavalSuthar-24/schoolsports/internal/store"
	"github.com/DhavalSuthar-24/schoolsports/pkg/pagination"
	"gorm.io/gorm"
)

// TournamentRepository defines the data operations on tournaments.
type TournamentRepository interface {
	CreateTournament(ctx context.Context, t *Tournament) error
	GetTournamentByID(ctx context.Context, id uint) (*Tournament, error) // (nil, nil) when not found
	GetTournamentByIDForUpdate(ctx context.Context, id uint) (*Tournament, error)
	GetTournaments(ctx context.Context, filter Filter, p pagination.Params) (*store.Page[Tournament], error)
	UpdateTournament(ctx context.Context, id uint, changes map[string]interface{}) error
	DeleteTournament(ctx context.Context, id uint) error
	WithTx(tx *gorm.DB) TournamentRepository
}

// Filter narrows GetTournaments. Zero fields are ignored.
type Filter struct {
	SportID uint   `form:"sport_id"`
	Status  Status `form:"status" binding:"omitempty,oneof=scheduled ongoing completed cancelled"`
	Type    Type   `form:"type"`
}

type tournamentRepository struct {
	tournaments *store.Store[Tournament]
}

func NewTournamentRepository(db *gorm.DB) TournamentRepository {
	return &tournamentRepository{tournaments: store.New[Tournament](db)}
}

func (r *tournamentRepository) WithTx(tx *gorm.DB) TournamentRepository {
	return &tournamentRepository{tournaments: r.tournaments.WithTx(tx)}
}

func (r *tournamentRepository) CreateTournament(ctx context.Context, t *Tournament) error {
	return r.tournaments.Create(ctx, t)
}

func (r *tournamentRepository) GetTournamentByID(ctx context.Context, id uint) (*Tournament, error) {
	return r.tournaments.FindByID(ctx, id)
}

func (r *tournamentRepository) GetTournamentByIDForUpdate(ctx context.Context, id uint) (*Tournament, error) {
	return r.tournaments.FindByIDForUpdate(ctx, id)
}

func (r *tournamentRepository) GetTournaments(ctx context.Context, filter Filter, p pagination.Params) (*store.Page[Tournament], error) {
	f := store.Filter{}
	if filter.SportID != 0 {
		f["sport_id"] = filter.SportID
	}
	if filter.Status != "" {
		f["status"] = filter.Status
	}
	if filter.Type != "" {
		f["type"] = filter.Type
	}
	return r.tournaments.FindAll(ctx, f, "start_date desc, id desc", p)
}

func (r *tournamentRepository) UpdateTournament(ctx context.Context, id uint, changes map[string]interface{}) error {
	return r.tournaments.Update(ctx, id, changes)
}

// DeleteTournament soft-deletes the tournament.
func (r *tournamentRepository) DeleteTournament(ctx context.Context, id uint) error {
	return r.tournaments.Destroy(ctx, id)
}
