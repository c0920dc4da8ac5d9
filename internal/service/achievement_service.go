package service

import (
	"Marafon/internal/api/dto"
	"Marafon/internal/model"
	"Marafon/internal/pkg/consts"
	"Marafon/internal/pkg/dateutil"
	"Marafon/internal/pkg/kafka"
	"Marafon/internal/repository"
	"context"
	log "log/slog"
	"time"
)

type AchievementService interface {
	// Evaluate 计算并落库用户新解锁的成就，返回本次新增的成就 id
	Evaluate(ctx context.Context, userID uint64, timezone string) ([]string, error)
	// Progress 返回目录中每个成就的当前进度，进度值与解锁判定同源
	Progress(ctx context.Context, userID uint64, timezone string) ([]*dto.AchievementProgressDTO, error)
}

type achievementServiceImpl struct {
	achievementRepo repository.AchievementRepo
	progressRepo    repository.ProgressRepo
	producer        *kafka.Producer
}

func NewAchievementService(achievementRepo repository.AchievementRepo, progressRepo repository.ProgressRepo, producer *kafka.Producer) AchievementService {
	return &achievementServiceImpl{
		achievementRepo: achievementRepo,
		progressRepo:    progressRepo,
		producer:        producer,
	}
}

func (s *achievementServiceImpl) Evaluate(ctx context.Context, userID uint64, timezone string) ([]string, error) {
	earnedIDs, err := s.achievementRepo.GetEarnedIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	earnedSet := make(map[string]struct{}, len(earnedIDs))
	for _, id := range earnedIDs {
		earnedSet[id] = struct{}{}
	}

	today := dateutil.Today(timezone)
	history, err := s.loadStreakWindow(ctx, userID, today)
	if err != nil {
		return nil, err
	}

	newIDs := make([]string, 0)
	newRows := make([]*model.UserAchievement, 0)
	now := time.Now()

	for _, def := range Catalogue {
		if _, ok := earnedSet[def.ID]; ok {
			continue
		}

		qualified, err := s.qualifies(ctx, userID, today, history, def)
		if err != nil {
			return nil, err
		}
		if !qualified {
			continue
		}

		newIDs = append(newIDs, def.ID)
		newRows = append(newRows, &model.UserAchievement{
			UserID:        userID,
			AchievementID: def.ID,
			EarnedAt:      now,
		})
	}

	if len(newRows) == 0 {
		return newIDs, nil
	}

	if err = s.achievementRepo.SaveEarned(ctx, newRows); err != nil {
		return nil, err
	}

	// 成就事件只是通知，失败不影响授予结果
	for _, id := range newIDs {
		if err = s.producer.PublishAchievementEarned(ctx, userID, id); err != nil {
			log.WarnContext(ctx, "publish achievement event failed", "user_id", userID, "achievement_id", id, "err", err)
		}
	}

	return newIDs, nil
}

func (s *achievementServiceImpl) Progress(ctx context.Context, userID uint64, timezone string) ([]*dto.AchievementProgressDTO, error) {
	earnedIDs, err := s.achievementRepo.GetEarnedIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	earnedSet := make(map[string]struct{}, len(earnedIDs))
	for _, id := range earnedIDs {
		earnedSet[id] = struct{}{}
	}

	today := dateutil.Today(timezone)
	history, err := s.loadStreakWindow(ctx, userID, today)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.AchievementProgressDTO, 0, len(Catalogue))
	for _, def := range Catalogue {
		current, err := s.currentValue(ctx, userID, today, history, def)
		if err != nil {
			return nil, err
		}
		if current > def.Threshold {
			current = def.Threshold
		}

		_, earned := earnedSet[def.ID]
		result = append(result, &dto.AchievementProgressDTO{
			AchievementID: def.ID,
			Title:         def.Title,
			Current:       current,
			Max:           def.Threshold,
			Earned:        earned,
		})
	}
	return result, nil
}

func (s *achievementServiceImpl) loadStreakWindow(ctx context.Context, userID uint64, today time.Time) ([]*model.DailyProgress, error) {
	from := today.AddDate(0, 0, -(consts.StreakHistoryDays - 1))
	return s.progressRepo.Range(ctx, userID, from, today)
}

func (s *achievementServiceImpl) qualifies(ctx context.Context, userID uint64, today time.Time, history []*model.DailyProgress, def AchievementDef) (bool, error) {
	current, err := s.currentValue(ctx, userID, today, history, def)
	if err != nil {
		return false, err
	}
	return current >= def.Threshold, nil
}

// currentValue 成就的当前进度：连续类为当前连续天数，累计类为历史总和
func (s *achievementServiceImpl) currentValue(ctx context.Context, userID uint64, today time.Time, history []*model.DailyProgress, def AchievementDef) (float64, error) {
	switch def.Kind {
	case RuleStreak:
		streak := ConsecutiveStreak(history, today, def.Predicate, int(def.Threshold))
		return float64(streak), nil
	case RuleCumulative:
		return s.progressRepo.SumColumn(ctx, userID, def.Column)
	default:
		return 0, UnExpectedError
	}
}
