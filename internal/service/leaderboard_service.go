package service

import (
	"Marafon/internal/api/dto"
	"Marafon/internal/pkg/consts"
	"Marafon/internal/pkg/dateutil"
	"Marafon/internal/pkg/redis"
	"Marafon/internal/repository"
	"context"
	"fmt"
	log "log/slog"
	"time"

	"github.com/goccy/go-json"
)

const (
	PeriodDaily   = "daily"
	PeriodWeekly  = "weekly"
	PeriodAllTime = "all_time"

	MetricOverall  = "overall"
	MetricReading  = "reading"
	MetricDistance = "distance"
)

const (
	defaultLeaderboardLimit = 10
	leaderboardCacheTTL     = time.Minute
)

// metricColumns 指标到聚合列的静态映射，兼做列名白名单
var metricColumns = map[string]string{
	MetricOverall:  "total_points",
	MetricReading:  "pages_read",
	MetricDistance: "distance_km",
}

type LeaderboardService interface {
	Rank(ctx context.Context, query *dto.LeaderboardQueryDTO) (*dto.LeaderboardDTO, error)
}

type leaderboardServiceImpl struct {
	progressRepo repository.ProgressRepo
	userRepo     repository.UserRepo
}

func NewLeaderboardService(progressRepo repository.ProgressRepo, userRepo repository.UserRepo) LeaderboardService {
	return &leaderboardServiceImpl{
		progressRepo: progressRepo,
		userRepo:     userRepo,
	}
}

func (s *leaderboardServiceImpl) Rank(ctx context.Context, query *dto.LeaderboardQueryDTO) (*dto.LeaderboardDTO, error) {
	column, ok := metricColumns[query.Metric]
	if !ok {
		return nil, ErrMetricInvalid
	}

	from, to, err := s.periodRange(query.Period, query.Timezone)
	if err != nil {
		return nil, err
	}

	limit := query.Limit
	if limit <= 0 {
		limit = defaultLeaderboardLimit
	}

	board, err := s.loadBoard(ctx, query.Period, query.Metric, column, from, to, limit)
	if err != nil {
		return nil, err
	}

	if query.FocusUserID != nil {
		focus, err := s.focusEntry(ctx, *query.FocusUserID, column, from, to, board.Entries)
		if err != nil {
			return nil, err
		}
		board.FocusUser = focus
	}

	return board, nil
}

// periodRange 周期对应的日期闭区间；all_time 返回 nil 表示不限
func (s *leaderboardServiceImpl) periodRange(period, timezone string) (*time.Time, *time.Time, error) {
	switch period {
	case PeriodDaily:
		today := dateutil.Today(timezone)
		return &today, &today, nil
	case PeriodWeekly:
		monday, sunday, _ := dateutil.WeekBounds(timezone)
		return &monday, &sunday, nil
	case PeriodAllTime:
		return nil, nil, nil
	default:
		return nil, nil, ErrPeriodInvalid
	}
}

// boardCacheKey 榜单缓存键；日期区间参与键值，不同时区折算出的窗口互不串缓存
func boardCacheKey(period, metric string, from, to *time.Time, limit int) string {
	window := "all"
	if from != nil && to != nil {
		window = dateutil.FormatDay(*from) + "_" + dateutil.FormatDay(*to)
	}
	return fmt.Sprintf("%s%s:%s:%s:%d", consts.LeaderboardCacheKey, period, metric, window, limit)
}

func (s *leaderboardServiceImpl) loadBoard(ctx context.Context, period, metric, column string, from, to *time.Time, limit int) (*dto.LeaderboardDTO, error) {
	cacheKey := boardCacheKey(period, metric, from, to, limit)
	if cached, err := redis.GetValue(ctx, cacheKey); err == nil && cached != "" {
		board := &dto.LeaderboardDTO{}
		if err = json.Unmarshal([]byte(cached), board); err == nil {
			return board, nil
		}
	}

	rows, err := s.progressRepo.TopScores(ctx, column, from, to, limit)
	if err != nil {
		return nil, err
	}

	total, err := s.progressRepo.CountParticipants(ctx, column, from, to)
	if err != nil {
		return nil, err
	}

	entries, err := s.buildEntries(ctx, rows)
	if err != nil {
		return nil, err
	}

	board := &dto.LeaderboardDTO{
		Period:            period,
		Metric:            metric,
		Entries:           entries,
		TotalParticipants: int(total),
	}

	if payload, err := json.Marshal(board); err == nil {
		if err = redis.SetWithExpiration(ctx, cacheKey, payload, leaderboardCacheTTL); err != nil {
			log.WarnContext(ctx, "cache leaderboard failed", "key", cacheKey, "err", err)
		}
	}

	return board, nil
}

func (s *leaderboardServiceImpl) buildEntries(ctx context.Context, rows []*repository.ScoreRow) ([]*dto.LeaderboardEntryDTO, error) {
	entries := make([]*dto.LeaderboardEntryDTO, 0, len(rows))
	if len(rows) == 0 {
		return entries, nil
	}

	ids := make([]uint64, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.UserID)
	}
	profiles, err := s.userRepo.GetUserSimpleInfoByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	profileByID := make(map[uint64]string, len(profiles))
	avatarByID := make(map[uint64]string, len(profiles))
	for _, p := range profiles {
		profileByID[p.UserID] = p.FullName
		avatarByID[p.UserID] = p.AvatarURL
	}

	for i, row := range rows {
		entries = append(entries, &dto.LeaderboardEntryDTO{
			Rank:      i + 1,
			UserID:    row.UserID,
			FullName:  profileByID[row.UserID],
			AvatarURL: avatarByID[row.UserID],
			Score:     row.Score,
			InTopList: true,
		})
	}
	return entries, nil
}

// focusEntry 指定用户的精确名次：榜内直接复用条目，榜外按"严格高分人数 + 1"计算
func (s *leaderboardServiceImpl) focusEntry(ctx context.Context, userID uint64, column string, from, to *time.Time, entries []*dto.LeaderboardEntryDTO) (*dto.LeaderboardEntryDTO, error) {
	for _, entry := range entries {
		if entry.UserID == userID {
			focus := *entry
			return &focus, nil
		}
	}

	score, err := s.progressRepo.UserScore(ctx, userID, column, from, to)
	if err != nil {
		return nil, err
	}
	if score <= 0 {
		// 零分用户不参与排行，也没有名次
		return nil, nil
	}

	greater, err := s.progressRepo.CountScoresGreaterThan(ctx, column, from, to, score)
	if err != nil {
		return nil, err
	}

	profiles, err := s.userRepo.GetUserSimpleInfoByIds(ctx, []uint64{userID})
	if err != nil {
		return nil, err
	}
	fullName := ""
	avatarURL := ""
	if len(profiles) > 0 {
		fullName = profiles[0].FullName
		avatarURL = profiles[0].AvatarURL
	}

	return &dto.LeaderboardEntryDTO{
		Rank:      int(greater) + 1,
		UserID:    userID,
		FullName:  fullName,
		AvatarURL: avatarURL,
		Score:     score,
		InTopList: false,
	}, nil
}
