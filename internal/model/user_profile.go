package model

type UserProfile struct {
	UserID    uint64 `gorm:"primaryKey"`
	FullName  string `gorm:"type:varchar(100);not null"`
	AvatarURL string `gorm:"type:varchar(512);column:avatar_url;default:'default_avatar.png'"`
	// Timezone 用户偏好时区，提交时未携带 timezone 参数则回退到这里
	Timezone string `gorm:"type:varchar(64);default:''"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}
