package consts

const (
	LeaderboardCacheKey = "leaderboard:board:"
)

const (
	ProgressUpsertLock = "lock:progress:upsert:"
	AvatarRefreshLock  = "lock:avatar:refresh"
)
