package dto

import "time"

// RegisterUserDTO 参与者注册（由机器人网关转发首次联系）
type RegisterUserDTO struct {
	UserID   uint64  `json:"user_id" binding:"required" validate:"required,gt=0"`
	Username *string `json:"username"`
	FullName string  `json:"full_name" binding:"required" validate:"required,min=1,max=100"`
	Timezone string  `json:"timezone"`
}

// UserDTO 参与者信息
type UserDTO struct {
	UserID       uint64     `json:"user_id"`
	Username     *string    `json:"username,omitempty"`
	FullName     string     `json:"full_name"`
	AvatarURL    string     `json:"avatar_url"`
	Timezone     string     `json:"timezone,omitempty"`
	IsApproved   bool       `json:"is_approved"`
	Achievements []string   `json:"achievements"`
	CreatedAt    *time.Time `json:"created_at,omitempty"`
}

// UpdateUserDTO 参与者资料变更（姓名或偏好时区）
type UpdateUserDTO struct {
	FullName string `json:"full_name" validate:"omitempty,min=1,max=100"`
	Timezone string `json:"timezone" validate:"omitempty,max=64"`
}

// CredentialDTO 运营账号登录凭证
type CredentialDTO struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
