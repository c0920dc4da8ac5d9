package dto

// WeekStatsDTO 本周统计，DailyPoints 固定 7 个元素，周一在前
type WeekStatsDTO struct {
	DailyPoints []int  `json:"daily_points"`
	TotalPoints int    `json:"total_points"`
	Monday      string `json:"monday"`
	Sunday      string `json:"sunday"`
	TodayIndex  int    `json:"today_index"`
}

// AllTimeStatsDTO 全程统计
type AllTimeStatsDTO struct {
	TotalPoints   int     `json:"total_points"`
	TotalPages    int     `json:"total_pages"`
	TotalDistance float64 `json:"total_distance"`
	ActiveDays    int     `json:"active_days"`
	CurrentStreak int     `json:"current_streak"`
}

// StatsDTO 今日/本周/全程三段汇总
type StatsDTO struct {
	UserID   uint64           `json:"user_id"`
	Today    *ProgressDTO     `json:"today"`
	ThisWeek *WeekStatsDTO    `json:"this_week"`
	AllTime  *AllTimeStatsDTO `json:"all_time"`
}
