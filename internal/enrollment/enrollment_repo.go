package enrollment

import (
	"context"

	"github.com/DhavalSuthar-24/schoolsports/internal/store"
	"github.com/DhavalSuthar-24/schoolsports/internal/team"
	"github.com/DhavalSuthar-24/schoolsports/pkg/pagination"
	"gorm.io/gorm"
)

// EnrollmentRepository defines the data operations on sports enrollments.
type EnrollmentRepository interface {
	Create(ctx context.Context, e *SportsEnrollment) error
	GetByID(ctx context.Context, id uint) (*SportsEnrollment, error) // (nil, nil) when not found
	GetByIDForUpdate(ctx context.Context, id uint) (*SportsEnrollment, error)
	FindActive(ctx context.Context, sportID, studentID uint) (*SportsEnrollment, error)
	Update(ctx context.Context, id uint, changes map[string]interface{}) error
	List(ctx context.Context, filter Filter, p pagination.Params) (*store.Page[SportsEnrollment], error)
	ListAll(ctx context.Context, filter Filter) ([]SportsEnrollment, error)
	ActiveStudentIDs(ctx context.Context, teamID uint) ([]uint, error)
	SourceWithTx(tx *gorm.DB) team.MembershipSource
	WithTx(tx *gorm.DB) EnrollmentRepository
}

// Filter narrows enrollment listings. Zero fields are ignored.
type Filter struct {
	SportID   uint   `form:"sport_id"`
	StudentID uint   `form:"student_id"`
	TeamID    uint   `form:"team_id"`
	Status    Status `form:"status" binding:"omitempty,oneof=active withdrawn completed"`
}

func (f Filter) toStore() store.Filter {
	filter := store.Filter{}
	if f.SportID != 0 {
		filter["sport_id"] = f.SportID
	}
	if f.StudentID != 0 {
		filter["student_id"] = f.StudentID
	}
	if f.TeamID != 0 {
		filter["team_id"] = f.TeamID
	}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	return filter
}

type enrollmentRepository struct {
	enrollments *store.Store[SportsEnrollment]
}

// NewEnrollmentRepository creates a gorm-backed EnrollmentRepository.
func NewEnrollmentRepository(db *gorm.DB) EnrollmentRepository {
	return &enrollmentRepository{enrollments: store.New[SportsEnrollment](db)}
}

func (r *enrollmentRepository) WithTx(tx *gorm.DB) EnrollmentRepository {
	return &enrollmentRepository{enrollments: r.enrollments.WithTx(tx)}
}

func (r *enrollmentRepository) SourceWithTx(tx *gorm.DB) team.MembershipSource {
	return r.WithTx(tx)
}

func (r *enrollmentRepository) Create(ctx context.Context, e *SportsEnrollment) error {
	return r.enrollments.Create(ctx, e)
}

func (r *enrollmentRepository) GetByID(ctx context.Context, id uint) (*SportsEnrollment, error) {
	return r.enrollments.FindByID(ctx, id)
}

func (r *enrollmentRepository) GetByIDForUpdate(ctx context.Context, id uint) (*SportsEnrollment, error) {
	return r.enrollments.FindByIDForUpdate(ctx, id)
}

func (r *enrollmentRepository) FindActive(ctx context.Context, sportID, studentID uint) (*SportsEnrollment, error) {
	return r.enrollments.FindOne(ctx, store.Filter{
		"sport_id":   sportID,
		"student_id": studentID,
		"status":     StatusActive,
	})
}

func (r *enrollmentRepository) Update(ctx context.Context, id uint, changes map[string]interface{}) error {
	return r.enrollments.Update(ctx, id, changes)
}

func (r *enrollmentRepository) List(ctx context.Context, filter Filter, p pagination.Params) (*store.Page[SportsEnrollment], error) {
	return r.enrollments.FindAll(ctx, filter.toStore(), "enrollment_date desc, id desc", p)
}

func (r *enrollmentRepository) ListAll(ctx context.Context, filter Filter) ([]SportsEnrollment, error) {
	return r.enrollments.List(ctx, filter.toStore(), "id asc")
}

func (r *enrollmentRepository) ActiveStudentIDs(ctx context.Context, teamID uint) ([]uint, error) {
	var ids []uint
	err := r.enrollments.DB(ctx).Model(&SportsEnrollment{}).
		Where("team_id = ? AND status = ?", teamID, StatusActive).
		Order("student_id asc").
		Pluck("student_id", &ids).Error
	return ids, err
}
