package achievement

import (
	"context"

	"github.com/DhavalSuthar-24/schoolsports/internal/store"
	"github.com/DhavalSuthar-24/schoolsports/pkg/pagination"
	"gorm.io/gorm"
)

type AchievementRepository interface {
	CreateAchievement(ctx context.Context, a *SportsAchievement) error
	GetAchievementByID(ctx context.Context, id uint) (*SportsAchievement, error) // (nil, nil) when not found
	GetStudentAchievements(ctx context.Context, studentID uint, p pagination.Params) (*store.Page[SportsAchievement], error)
	ListStudentAchievements(ctx context.Context, studentID uint) ([]SportsAchievement, error)
	CountStudentAchievements(ctx context.Context, studentID uint) (int64, error)
}

type achievementRepository struct {
	achievements *store.Store[SportsAchievement]
}

func NewAchievementRepository(db *gorm.DB) AchievementRepository {
	return &achievementRepository{achievements: store.New[SportsAchievement](db)}
}

func (r *achievementRepository) CreateAchievement(ctx context.Context, a *SportsAchievement) error {
	return r.achievements.Create(ctx, a)
}

func (r *achievementRepository) GetAchievementByID(ctx context.Context, id uint) (*SportsAchievement, error) {
	return r.achievements.FindByID(ctx, id)
}

func (r *achievementRepository) GetStudentAchievements(ctx context.Context, studentID uint, p pagination.Params) (*store.Page[SportsAchievement], error) {
	return r.achievements.FindAll(ctx, store.Filter{"student_id": studentID}, "achievement_date desc, id desc", p)
}

func (r *achievementRepository) ListStudentAchievements(ctx context.Context, studentID uint) ([]SportsAchievement, error) {
	return r.achievements.List(ctx, store.Filter{"student_id": studentID}, "achievement_date desc, id desc")
}

func (r *achievementRepository) CountStudentAchievements(ctx context.Context, studentID uint) (int64, error) {
	return r.achievements.Count(ctx, store.Filter{"student_id": studentID})
}
