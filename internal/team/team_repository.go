package team

import (
	"context"

	"github.com/DhavalSuthar-24/schoolsports/internal/models"
	"github.com/DhavalSuthar-24/schoolsports/internal/store"
	"github.com/DhavalSuthar-24/schoolsports/pkg/pagination"
	"gorm.io/gorm"
)

// TeamRepository defines the interface for team data operations
type TeamRepository interface {
	CreateTeam(ctx context.Context, team *Team) error
	GetTeamByID(ctx context.Context, id uint) (*Team, error) // (nil, nil) when not found
	GetTeamByIDForUpdate(ctx context.Context, id uint) (*Team, error)
	GetAllTeams(ctx context.Context, filter Filter, p pagination.Params) (*store.Page[Team], error)
	UpdateTeam(ctx context.Context, id uint, changes map[string]interface{}) error
	SetMembers(ctx context.Context, id uint, members models.IDSet) error
	WithTx(tx *gorm.DB) TeamRepository
}

// Filter narrows GetAllTeams. Zero fields are ignored.
type Filter struct {
	SportID uint   `form:"sport_id"`
	Status  Status `form:"status"`
}

type teamRepository struct {
	teams *store.Store[Team]
}

// NewTeamRepository creates a new instance of TeamRepository
func NewTeamRepository(db *gorm.DB) TeamRepository {
	return &teamRepository{teams: store.New[Team](db)}
}

func (r *teamRepository) WithTx(tx *gorm.DB) TeamRepository {
	return &teamRepository{teams: r.teams.WithTx(tx)}
}

func (r *teamRepository) CreateTeam(ctx context.Context, team *Team) error {
	if team.Members == nil {
		team.Members = models.IDSet{}
	}
	return r.teams.Create(ctx, team)
}

func (r *teamRepository) GetTeamByID(ctx context.Context, id uint) (*Team, error) {
	return r.teams.FindByID(ctx, id)
}

func (r *teamRepository) GetTeamByIDForUpdate(ctx context.Context, id uint) (*Team, error) {
	return r.teams.FindByIDForUpdate(ctx, id)
}

func (r *teamRepository) GetAllTeams(ctx context.Context, filter Filter, p pagination.Params) (*store.Page[Team], error) {
	f := store.Filter{}
	if filter.SportID != 0 {
		f["sport_id"] = filter.SportID
	}
	if filter.Status != "" {
		f["status"] = filter.Status
	}
	return r.teams.FindAll(ctx, f, "name asc", p)
}

func (r *teamRepository) UpdateTeam(ctx context.Context, id uint, changes map[string]interface{}) error {
	return r.teams.Update(ctx, id, changes)
}

func (r *teamRepository) SetMembers(ctx context.Context, id uint, members models.IDSet) error {
	return r.teams.Update(ctx, id, map[string]interface{}{"members": members})
}
