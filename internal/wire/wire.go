package wire

import (
	"Marafon/internal/api"
	"Marafon/internal/api/config"
	"Marafon/internal/api/handler"
	"Marafon/internal/job"
	"Marafon/internal/pkg/cron"
	"Marafon/internal/pkg/kafka"
	"Marafon/internal/pkg/telegram"
	"Marafon/internal/repository"
	"Marafon/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router   *gin.Engine
	DB       *gorm.DB
	CronMgr  *cron.Manager
	Producer *kafka.Producer
}

func BuildApplication(db *gorm.DB, cfg *config.Config) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo(db)
	progressRepo := repository.NewProgressRepo(db)
	achievementRepo := repository.NewAchievementRepo(db)
	accountRepo := repository.NewAccountRepo(db)

	producer, err := kafka.NewProducer(cfg)
	if err != nil {
		return nil, err
	}

	achievementService := service.NewAchievementService(achievementRepo, progressRepo, producer)
	progressService := service.NewProgressService(progressRepo, userRepo, achievementService)
	statsService := service.NewStatsService(progressRepo, userRepo)
	leaderboardService := service.NewLeaderboardService(progressRepo, userRepo)
	userService := service.NewUserService(userRepo)
	accountService := service.NewAccountService(accountRepo)

	tgClient := telegram.NewClient(cfg)
	avatarJob := job.NewAvatarRefreshJob(userRepo, tgClient)

	handlers := &api.HandlersGroup{
		AuthHandler:        handler.NewAuthHandler(accountService),
		UserHandler:        handler.NewUserHandler(userService, achievementService, avatarJob),
		ProgressHandler:    handler.NewProgressHandler(progressService),
		StatsHandler:       handler.NewStatsHandler(statsService),
		LeaderboardHandler: handler.NewLeaderboardHandler(leaderboardService),
	}

	router := api.SetupRouter(handlers)

	cronMgr := cron.NewCronManager(avatarJob)

	return &ApplicationContainer{
		Router:   router,
		DB:       db,
		CronMgr:  cronMgr,
		Producer: producer,
	}, nil
}
