package api

import "Marafon/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	AuthHandler        *handler.AuthHandler
	UserHandler        *handler.UserHandler
	ProgressHandler    *handler.ProgressHandler
	StatsHandler       *handler.StatsHandler
	LeaderboardHandler *handler.LeaderboardHandler
}
