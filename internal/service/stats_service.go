package service

import (
	"Marafon/internal/api/dto"
	"Marafon/internal/pkg/consts"
	"Marafon/internal/pkg/dateutil"
	"Marafon/internal/repository"
	"context"
	"time"
)

type StatsService interface {
	// Summarize 今日 / 本周 / 全程三段汇总
	Summarize(ctx context.Context, userID uint64, timezone string) (*dto.StatsDTO, error)
}

type statsServiceImpl struct {
	progressRepo repository.ProgressRepo
	userRepo     repository.UserRepo
}

func NewStatsService(progressRepo repository.ProgressRepo, userRepo repository.UserRepo) StatsService {
	return &statsServiceImpl{
		progressRepo: progressRepo,
		userRepo:     userRepo,
	}
}

func (s *statsServiceImpl) Summarize(ctx context.Context, userID uint64, timezone string) (*dto.StatsDTO, error) {
	user, err := s.userRepo.GetUserById(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if timezone == "" {
		timezone = user.Profile.Timezone
	}

	today := dateutil.Today(timezone)

	todayRecord, err := s.progressRepo.GetByDate(ctx, userID, today)
	if err != nil {
		return nil, err
	}
	todayDTO := emptyProgressDTO(today)
	if todayRecord != nil {
		todayDTO = toProgressDTO(todayRecord)
	}

	weekDTO, err := s.weekStats(ctx, userID, timezone)
	if err != nil {
		return nil, err
	}

	allTimeDTO, err := s.allTimeStats(ctx, userID, today)
	if err != nil {
		return nil, err
	}

	return &dto.StatsDTO{
		UserID:   userID,
		Today:    todayDTO,
		ThisWeek: weekDTO,
		AllTime:  allTimeDTO,
	}, nil
}

// weekStats 本周每日积分，数组固定 7 个元素，周一在前，缺勤日补 0
func (s *statsServiceImpl) weekStats(ctx context.Context, userID uint64, timezone string) (*dto.WeekStatsDTO, error) {
	monday, sunday, todayIdx := dateutil.WeekBounds(timezone)

	records, err := s.progressRepo.Range(ctx, userID, monday, sunday)
	if err != nil {
		return nil, err
	}

	daily := make([]int, 7)
	total := 0
	for _, record := range records {
		idx := int(record.RecordDate.Sub(monday).Hours() / 24)
		if idx < 0 || idx > 6 {
			continue
		}
		daily[idx] = record.TotalPoints
		total += record.TotalPoints
	}

	return &dto.WeekStatsDTO{
		DailyPoints: daily,
		TotalPoints: total,
		Monday:      dateutil.FormatDay(monday),
		Sunday:      dateutil.FormatDay(sunday),
		TodayIndex:  todayIdx,
	}, nil
}

func (s *statsServiceImpl) allTimeStats(ctx context.Context, userID uint64, today time.Time) (*dto.AllTimeStatsDTO, error) {
	totalPoints, err := s.progressRepo.SumColumn(ctx, userID, "total_points")
	if err != nil {
		return nil, err
	}
	totalPages, err := s.progressRepo.SumColumn(ctx, userID, "pages_read")
	if err != nil {
		return nil, err
	}
	totalDistance, err := s.progressRepo.SumColumn(ctx, userID, "distance_km")
	if err != nil {
		return nil, err
	}
	activeDays, err := s.progressRepo.CountActiveDays(ctx, userID)
	if err != nil {
		return nil, err
	}

	from := today.AddDate(0, 0, -(consts.StreakHistoryDays - 1))
	history, err := s.progressRepo.Range(ctx, userID, from, today)
	if err != nil {
		return nil, err
	}
	streak := ConsecutiveStreak(history, today, AnyActivity, consts.StreakHistoryDays)

	return &dto.AllTimeStatsDTO{
		TotalPoints:   int(totalPoints),
		TotalPages:    int(totalPages),
		TotalDistance: totalDistance,
		ActiveDays:    int(activeDays),
		CurrentStreak: streak,
	}, nil
}
