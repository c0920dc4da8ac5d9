package api

import (
	"Marafon/internal/api/middleware"
	"Marafon/internal/pkg/consts"
	"Marafon/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		authGroup := apiGroup.Group("/auth")
		{
			authGroup.POST("/login", group.AuthHandler.Login)
			authGroup.POST("/logout", middleware.AuthMiddleware(), group.AuthHandler.Logout)
		}

		// 机器人网关接口，所有业务路由都要求 BOT 或 ADMIN 身份
		userGroup := apiGroup.Group("/users")
		userGroup.Use(middleware.AuthMiddleware(), middleware.CheckRoles(consts.RoleBot, consts.RoleAdmin))
		{
			userGroup.POST("", group.UserHandler.Register)
			userGroup.GET("/:user_id", group.UserHandler.GetUserInfo)
			userGroup.PUT("/:user_id", group.UserHandler.UpdateUser)
			userGroup.GET("/:user_id/achievements", group.UserHandler.GetAchievements)

			// 审批类接口仅限运营角色
			adminGroup := userGroup.Group("")
			adminGroup.Use(middleware.CheckRoles(consts.RoleAdmin))
			{
				adminGroup.GET("/pending", group.UserHandler.ListPending)
				adminGroup.POST("/:user_id/approve", group.UserHandler.ApproveUser)
				adminGroup.DELETE("/:user_id", group.UserHandler.RejectUser)
				adminGroup.POST("/:user_id/avatar/refresh", group.UserHandler.RefreshAvatar)
			}
		}

		progressGroup := apiGroup.Group("/progress")
		progressGroup.Use(middleware.AuthMiddleware(), middleware.CheckRoles(consts.RoleBot, consts.RoleAdmin))
		{
			progressGroup.POST("", group.ProgressHandler.Submit)
			progressGroup.GET("/:user_id/today", group.ProgressHandler.GetToday)
		}

		statsGroup := apiGroup.Group("/stats")
		statsGroup.Use(middleware.AuthMiddleware(), middleware.CheckRoles(consts.RoleBot, consts.RoleAdmin))
		{
			statsGroup.GET("/:user_id", group.StatsHandler.GetStats)
		}

		leaderboardGroup := apiGroup.Group("/leaderboard")
		leaderboardGroup.Use(middleware.AuthMiddleware(), middleware.CheckRoles(consts.RoleBot, consts.RoleAdmin))
		{
			leaderboardGroup.GET("", group.LeaderboardHandler.Rank)
		}
	}

	return r
}
