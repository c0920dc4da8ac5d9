package dto

// LeaderboardQueryDTO 排行榜查询参数
type LeaderboardQueryDTO struct {
	Period      string  `form:"period" validate:"required,oneof=daily weekly all_time"`
	Metric      string  `form:"metric" validate:"required,oneof=overall reading distance"`
	Limit       int     `form:"limit" validate:"min=0,max=100"`
	FocusUserID *uint64 `form:"focus_user_id"`
	Timezone    string  `form:"timezone"`
}

// LeaderboardEntryDTO 排行榜条目
type LeaderboardEntryDTO struct {
	Rank      int     `json:"rank"`
	UserID    uint64  `json:"user_id"`
	FullName  string  `json:"full_name"`
	AvatarURL string  `json:"avatar_url"`
	Score     float64 `json:"score"`
	InTopList bool    `json:"in_top_list"`
}

// LeaderboardDTO 排行榜返回
type LeaderboardDTO struct {
	Period            string                 `json:"period"`
	Metric            string                 `json:"metric"`
	Entries           []*LeaderboardEntryDTO `json:"entries"`
	TotalParticipants int                    `json:"total_participants"`
	FocusUser         *LeaderboardEntryDTO   `json:"focus_user,omitempty"`
}
