package consts

const (
	// TaskCount 每日固定任务数量
	TaskCount = 10
	// MaxDailyPoints 单日积分上限（十个任务各 1 分）
	MaxDailyPoints = 10

	// MaxPagesRead 单日阅读页数上限，超出视为脏数据
	MaxPagesRead = 10000
	// MaxDistanceKm 单日里程上限（公里）
	MaxDistanceKm = 1000
)

const (
	// StreakHistoryDays 连续打卡回溯窗口（天）
	StreakHistoryDays = 90
)

const (
	DefaultAvatarURL = "default_avatar.png"

	AvatarThumbnailSize = 256
)

const (
	RoleAdmin = "ADMIN"
	RoleBot   = "BOT"
)
