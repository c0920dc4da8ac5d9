package model

import "time"

// Account 运营侧凭据（管理员、机器人网关），与参与者 users 表分开
type Account struct {
	ID        uint64 `gorm:"primaryKey"`
	Username  string `gorm:"type:varchar(50);not null;uniqueIndex:idx_account_username"`
	Password  string `gorm:"type:varchar(255);not null"`
	Role      string `gorm:"type:varchar(20);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Account) TableName() string {
	return "accounts"
}
