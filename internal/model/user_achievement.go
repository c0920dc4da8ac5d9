package model

import "time"

// UserAchievement 已授予的成就，只增不减
type UserAchievement struct {
	ID            uint64    `gorm:"primaryKey"`
	UserID        uint64    `gorm:"not null;uniqueIndex:idx_user_achievement"`
	AchievementID string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_user_achievement;column:achievement_id"`
	EarnedAt      time.Time `gorm:"not null"`
}

func (UserAchievement) TableName() string {
	return "user_achievements"
}
