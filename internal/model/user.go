package model

import (
	"time"
)

// User 挑战赛参与者，主键为聊天平台下发的用户 id
type User struct {
	ID         uint64  `gorm:"primaryKey;autoIncrement:false"`
	Username   *string `gorm:"type:varchar(50);uniqueIndex:idx_username"`
	IsApproved bool    `gorm:"type:tinyint(1);default:0"`
	IsDelete   bool    `gorm:"type:tinyint(1);default:0"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Profile      UserProfile       `gorm:"foreignKey:UserID;references:ID"`
	Achievements []UserAchievement `gorm:"foreignKey:UserID;references:ID"`
}

func (User) TableName() string {
	return "users"
}
