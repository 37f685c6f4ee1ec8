package sport

import (
	"context"

	"github.com/DhavalSuthar-24/schoolsports/internal/store"
	"github.com/DhavalSuthar-24/schoolsports/pkg/pagination"
	"gorm.io/gorm"
)

type SportRepository interface {
	CreateSport(ctx context.Context, sport *Sport) error
	GetSportByID(ctx context.Context, id uint) (*Sport, error) // (nil, nil) when not found
	FindSportByName(ctx context.Context, name string) (*Sport, error)
	GetAllSports(ctx context.Context, filter Filter, p pagination.Params) (*store.Page[Sport], error)
	UpdateSport(ctx context.Context, id uint, changes map[string]interface{}) error
	WithTx(tx *gorm.DB) SportRepository
}

// Filter narrows GetAllSports. Empty fields are ignored.
type Filter struct {
	Category Category `form:"category"`
	Status   Status   `form:"status"`
}

func (f Filter) toStore() store.Filter {
	filter := store.Filter{}
	if f.Category != "" {
		filter["category"] = f.Category
	}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	return filter
}

type sportRepository struct {
	sports *store.Store[Sport]
}

// NewSportRepository creates a new instance of SportRepository.
func NewSportRepository(db *gorm.DB) SportRepository {
	return &sportRepository{sports: store.New[Sport](db)}
}

func (r *sportRepository) WithTx(tx *gorm.DB) SportRepository {
	return &sportRepository{sports: r.sports.WithTx(tx)}
}

func (r *sportRepository) CreateSport(ctx context.Context, sport *Sport) error {
	return r.sports.Create(ctx, sport)
}

func (r *sportRepository) GetSportByID(ctx context.Context, id uint) (*Sport, error) {
	return r.sports.FindByID(ctx, id)
}

func (r *sportRepository) FindSportByName(ctx context.Context, name string) (*Sport, error) {
	return r.sports.FindOne(ctx, store.Filter{"name": name})
}

func (r *sportRepository) GetAllSports(ctx context.Context, filter Filter, p pagination.Params) (*store.Page[Sport], error) {
	return r.sports.FindAll(ctx, filter.toStore(), "name asc", p)
}

func (r *sportRepository) UpdateSport(ctx context.Context, id uint, changes map[string]interface{}) error {
	return r.sports.Update(ctx, id, changes)
}
