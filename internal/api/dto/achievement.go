package dto

// AchievementProgressDTO 单个成就的进度条数据
// Current 与解锁判定使用同一套谓词/阈值，保证进度与解锁时刻一致
type AchievementProgressDTO struct {
	AchievementID string  `json:"achievement_id"`
	Title         string  `json:"title"`
	Current       float64 `json:"current"`
	Max           float64 `json:"max"`
	Earned        bool    `json:"earned"`
}
