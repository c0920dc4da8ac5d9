package repository

import (
	"Marafon/internal/model"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AchievementRepo interface {
	GetEarnedIDs(ctx context.Context, userID uint64) ([]string, error)
	// SaveEarned 幂等写入：同一 (user, achievement) 已存在时静默跳过
	SaveEarned(ctx context.Context, earned []*model.UserAchievement) error
}

type achievementRepoImpl struct {
	db *gorm.DB
}

func NewAchievementRepo(db *gorm.DB) AchievementRepo {
	return &achievementRepoImpl{db: db}
}

func (s *achievementRepoImpl) GetEarnedIDs(ctx context.Context, userID uint64) ([]string, error) {
	ids := make([]string, 0)
	err := s.db.WithContext(ctx).
		Model(&model.UserAchievement{}).
		Where("user_id = ?", userID).
		Pluck("achievement_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (s *achievementRepoImpl) SaveEarned(ctx context.Context, earned []*model.UserAchievement) error {
	if len(earned) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "achievement_id"}},
		DoNothing: true,
	}).Create(earned).Error
}
