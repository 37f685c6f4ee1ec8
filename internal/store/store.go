// Package store is the generic gorm-backed entity store the sports services are built on.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/DhavalSuthar-24/schoolsports/pkg/pagination"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Filter is an equality filter on column names.
type Filter map[string]interface{}

// Page is one page of a findAll result.
type Page[T any] struct {
	Items []T             `json:"items"`
	Meta  pagination.Meta `json:"pagination"`
}

// Store offers create/findById/findOne/findAll/count/update/destroy for one entity type.
type Store[T any] struct {
	db *gorm.DB
}

// New creates a store for T on db.
func New[T any](db *gorm.DB) *Store[T] {
	return &Store[T]{db: db}
}

// DB returns the underlying handle bound to ctx.
func (s *Store[T]) DB(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx)
}

// WithTx returns a store that runs on tx.
func (s *Store[T]) WithTx(tx *gorm.DB) *Store[T] {
	return &Store[T]{db: tx}
}

func (s *Store[T]) Create(ctx context.Context, entity *T) error {
	if err := s.DB(ctx).Create(entity).Error; err != nil {
		return fmt.Errorf("create %T: %w", entity, err)
	}
	return nil
}

// FindByID returns (nil, nil) when no row matches.
func (s *Store[T]) FindByID(ctx context.Context, id uint) (*T, error) {
	return s.first(s.DB(ctx), id)
}

// FindByIDForUpdate loads the row and locks it until the surrounding transaction ends.
// SQLite has no row locks; its single writer already serialises the transaction.
func (s *Store[T]) FindByIDForUpdate(ctx context.Context, id uint) (*T, error) {
	q := s.DB(ctx)
	if q.Dialector.Name() == "postgres" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return s.first(q, id)
}

func (s *Store[T]) first(q *gorm.DB, id uint) (*T, error) {
	var entity T
	if err := q.First(&entity, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

// FindOne returns the first row matching filter, or (nil, nil).
func (s *Store[T]) FindOne(ctx context.Context, filter Filter) (*T, error) {
	var entity T
	if err := s.DB(ctx).Where(map[string]interface{}(filter)).First(&entity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

// FindAll returns one page of rows matching filter ordered by sort ("id asc" when empty).
func (s *Store[T]) FindAll(ctx context.Context, filter Filter, sort string, p pagination.Params) (*Page[T], error) {
	p = p.Normalize()
	if sort == "" {
		sort = "id asc"
	}
	var total int64
	query := s.DB(ctx).Model(new(T))
	if len(filter) > 0 {
		query = query.Where(map[string]interface{}(filter))
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}
	items := make([]T, 0, p.Limit)
	if err := query.Order(sort).Offset(p.Offset()).Limit(p.Limit).Find(&items).Error; err != nil {
		return nil, err
	}
	return &Page[T]{Items: items, Meta: pagination.NewMeta(p, total)}, nil
}

// List returns every row matching filter ordered by sort.
func (s *Store[T]) List(ctx context.Context, filter Filter, sort string) ([]T, error) {
	if sort == "" {
		sort = "id asc"
	}
	var items []T
	query := s.DB(ctx)
	if len(filter) > 0 {
		query = query.Where(map[string]interface{}(filter))
	}
	if err := query.Order(sort).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store[T]) Count(ctx context.Context, filter Filter) (int64, error) {
	var total int64
	query := s.DB(ctx).Model(new(T))
	if len(filter) > 0 {
		query = query.Where(map[string]interface{}(filter))
	}
	if err := query.Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// Update applies a partial update to the row with id.
func (s *Store[T]) Update(ctx context.Context, id uint, partial map[string]interface{}) error {
	res := s.DB(ctx).Model(new(T)).Where("id = ?", id).Updates(partial)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Save writes every field of entity.
func (s *Store[T]) Save(ctx context.Context, entity *T) error {
	return s.DB(ctx).Save(entity).Error
}

// Destroy soft-deletes the row with id.
func (s *Store[T]) Destroy(ctx context.Context, id uint) error {
	return s.DB(ctx).Delete(new(T), id).Error
}

// Transactor runs a function inside one database transaction.
type Transactor struct {
	db *gorm.DB
}

func NewTransactor(db *gorm.DB) *Transactor {
	return &Transactor{db: db}
}

// WithTransaction commits when fn returns nil and rolls back otherwise.
func (t *Transactor) WithTransaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return t.db.WithContext(ctx).Transaction(fn)
}
