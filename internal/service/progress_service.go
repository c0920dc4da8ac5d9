package service

import (
	"Marafon/internal/api/dto"
	"Marafon/internal/model"
	"Marafon/internal/pkg/consts"
	"Marafon/internal/pkg/dateutil"
	"Marafon/internal/pkg/redis"
	"Marafon/internal/pkg/util"
	"Marafon/internal/repository"
	"context"
	"fmt"
	log "log/slog"
	"time"

	"github.com/google/uuid"
)

type ProgressService interface {
	// Submit 当日打卡：同一 (用户, 日历日) 重复提交整行覆盖，以最后一次为准
	Submit(ctx context.Context, submitDTO *dto.SubmitProgressDTO) (*dto.SubmitResultDTO, error)
	GetToday(ctx context.Context, userID uint64, timezone string) (*dto.ProgressDTO, error)
}

type progressServiceImpl struct {
	progressRepo   repository.ProgressRepo
	userRepo       repository.UserRepo
	achievementSvc AchievementService
}

func NewProgressService(progressRepo repository.ProgressRepo, userRepo repository.UserRepo, achievementSvc AchievementService) ProgressService {
	return &progressServiceImpl{
		progressRepo:   progressRepo,
		userRepo:       userRepo,
		achievementSvc: achievementSvc,
	}
}

func (s *progressServiceImpl) Submit(ctx context.Context, submitDTO *dto.SubmitProgressDTO) (*dto.SubmitResultDTO, error) {
	user, err := s.userRepo.GetUserById(ctx, submitDTO.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if !user.IsApproved {
		return nil, ErrUserNotApproved
	}
	if submitDTO.PagesRead < 0 || submitDTO.PagesRead > consts.MaxPagesRead ||
		submitDTO.DistanceKm < 0 || submitDTO.DistanceKm > consts.MaxDistanceKm {
		return nil, ErrParamInvalid
	}

	timezone := s.resolveTimezone(submitDTO.Timezone, user)
	today := dateutil.Today(timezone)

	// 串行化同一用户同一天的并发提交，保证整行覆盖不交错
	lockKey := fmt.Sprintf("%s%d:%s", consts.ProgressUpsertLock, user.ID, dateutil.FormatDay(today))
	lockValue := uuid.NewString()
	locked, err := redis.TryLock(ctx, lockKey, lockValue, 5*time.Second, 3)
	if err != nil {
		return nil, err
	}
	if !locked {
		return nil, UnExpectedError
	}
	defer redis.UnLock(ctx, lockKey, lockValue)

	record := &model.DailyProgress{
		UserID:     user.ID,
		RecordDate: today,
		PagesRead:  submitDTO.PagesRead,
		DistanceKm: util.Round2(submitDTO.DistanceKm),
	}
	tasks := submitDTO.Tasks()
	record.SetTasks(tasks)

	total := 0
	for _, flag := range tasks {
		total += int(flag)
	}
	record.TotalPoints = total

	if err = s.progressRepo.Upsert(ctx, record); err != nil {
		return nil, err
	}

	// 成就计算失败只降级为"本次无新成就"，打卡本身已经成功
	newAchievements, err := s.achievementSvc.Evaluate(ctx, user.ID, timezone)
	if err != nil {
		log.WarnContext(ctx, "achievement evaluation degraded", "user_id", user.ID, "err", err)
		newAchievements = []string{}
	}

	stored, err := s.progressRepo.GetByDate(ctx, user.ID, today)
	if err != nil || stored == nil {
		stored = record
	}

	return &dto.SubmitResultDTO{
		Progress:        toProgressDTO(stored),
		NewAchievements: newAchievements,
	}, nil
}

func (s *progressServiceImpl) GetToday(ctx context.Context, userID uint64, timezone string) (*dto.ProgressDTO, error) {
	user, err := s.userRepo.GetUserById(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	today := dateutil.Today(s.resolveTimezone(timezone, user))
	record, err := s.progressRepo.GetByDate(ctx, userID, today)
	if err != nil {
		return nil, err
	}
	if record == nil {
		// 当日未打卡按全零返回，而不是 404
		return emptyProgressDTO(today), nil
	}
	return toProgressDTO(record), nil
}

// resolveTimezone 时区取值顺序：请求参数 > 用户档案 > 系统默认
func (s *progressServiceImpl) resolveTimezone(requested string, user *model.User) string {
	if requested != "" {
		return requested
	}
	return user.Profile.Timezone
}

func toProgressDTO(record *model.DailyProgress) *dto.ProgressDTO {
	tasks := record.Tasks()
	return &dto.ProgressDTO{
		Date:        dateutil.FormatDay(record.RecordDate),
		Tasks:       tasks[:],
		PagesRead:   record.PagesRead,
		DistanceKm:  record.DistanceKm,
		TotalPoints: record.TotalPoints,
	}
}

func emptyProgressDTO(day time.Time) *dto.ProgressDTO {
	return &dto.ProgressDTO{
		Date:  dateutil.FormatDay(day),
		Tasks: make([]uint8, consts.TaskCount),
	}
}
