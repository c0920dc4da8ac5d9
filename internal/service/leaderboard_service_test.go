package service

import (
	"Marafon/internal/api/dto"
	"Marafon/internal/pkg/dateutil"
	"Marafon/internal/repository"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankOrdersByScoreThenUserID(t *testing.T) {
	db := newTestDB(t)
	progressRepo := repository.NewProgressRepo(db)
	svc := NewLeaderboardService(progressRepo, repository.NewUserRepo(db))
	createUser(t, db, 7, true)
	createUser(t, db, 3, true)
	createUser(t, db, 9, true)

	today := dateutil.Today("UTC")
	upsertDay(t, progressRepo, 7, today.AddDate(0, 0, -30), allTasks(), 0, 0)
	upsertDay(t, progressRepo, 7, today.AddDate(0, 0, -31), allTasks(), 0, 0)
	upsertDay(t, progressRepo, 3, today.AddDate(0, 0, -30), allTasks(), 0, 0)
	upsertDay(t, progressRepo, 3, today.AddDate(0, 0, -31), allTasks(), 0, 0)
	upsertDay(t, progressRepo, 9, today.AddDate(0, 0, -30), allTasks(), 0, 0)

	board, err := svc.Rank(context.Background(), &dto.LeaderboardQueryDTO{
		Period: PeriodAllTime,
		Metric: MetricOverall,
	})
	require.NoError(t, err)
	require.Len(t, board.Entries, 3)

	// 7 和 3 同为 20 分，id 小者在前
	assert.Equal(t, uint64(3), board.Entries[0].UserID)
	assert.Equal(t, 1, board.Entries[0].Rank)
	assert.Equal(t, uint64(7), board.Entries[1].UserID)
	assert.Equal(t, 2, board.Entries[1].Rank)
	assert.Equal(t, uint64(9), board.Entries[2].UserID)
	assert.Equal(t, 3, board.Entries[2].Rank)
	assert.Equal(t, 3, board.TotalParticipants)
	assert.True(t, board.Entries[0].InTopList)
}

func TestRankDailyWindowExcludesPastDays(t *testing.T) {
	db := newTestDB(t)
	progressRepo := repository.NewProgressRepo(db)
	svc := NewLeaderboardService(progressRepo, repository.NewUserRepo(db))
	createUser(t, db, 1, true)
	createUser(t, db, 2, true)

	today := dateutil.Today("UTC")
	upsertDay(t, progressRepo, 1, today, [10]uint8{1, 1, 1}, 0, 0)
	upsertDay(t, progressRepo, 2, today.AddDate(0, 0, -1), allTasks(), 0, 0)

	board, err := svc.Rank(context.Background(), &dto.LeaderboardQueryDTO{
		Period:   PeriodDaily,
		Metric:   MetricOverall,
		Timezone: "UTC",
	})
	require.NoError(t, err)
	require.Len(t, board.Entries, 1)
	assert.Equal(t, uint64(1), board.Entries[0].UserID)
	assert.Equal(t, float64(3), board.Entries[0].Score)
}

func TestRankReadingMetricUsesPages(t *testing.T) {
	db := newTestDB(t)
	progressRepo := repository.NewProgressRepo(db)
	svc := NewLeaderboardService(progressRepo, repository.NewUserRepo(db))
	createUser(t, db, 1, true)
	createUser(t, db, 2, true)

	today := dateutil.Today("UTC")
	upsertDay(t, progressRepo, 1, today, [10]uint8{0, 1}, 10, 0)
	upsertDay(t, progressRepo, 2, today, [10]uint8{0, 1}, 90, 0)

	board, err := svc.Rank(context.Background(), &dto.LeaderboardQueryDTO{
		Period: PeriodAllTime,
		Metric: MetricReading,
	})
	require.NoError(t, err)
	require.Len(t, board.Entries, 2)
	assert.Equal(t, uint64(2), board.Entries[0].UserID)
	assert.Equal(t, float64(90), board.Entries[0].Score)
}

func TestRankFocusUserOutsideTopList(t *testing.T) {
	db := newTestDB(t)
	progressRepo := repository.NewProgressRepo(db)
	svc := NewLeaderboardService(progressRepo, repository.NewUserRepo(db))
	createUser(t, db, 1, true)
	createUser(t, db, 2, true)
	createUser(t, db, 3, true)

	today := dateutil.Today("UTC")
	upsertDay(t, progressRepo, 1, today, allTasks(), 0, 0)
	upsertDay(t, progressRepo, 2, today, [10]uint8{1, 1, 1, 1, 1}, 0, 0)
	upsertDay(t, progressRepo, 3, today, [10]uint8{1}, 0, 0)

	focusID := uint64(3)
	board, err := svc.Rank(context.Background(), &dto.LeaderboardQueryDTO{
		Period:      PeriodAllTime,
		Metric:      MetricOverall,
		Limit:       1,
		FocusUserID: &focusID,
	})
	require.NoError(t, err)
	require.Len(t, board.Entries, 1)
	assert.Equal(t, uint64(1), board.Entries[0].UserID)

	require.NotNil(t, board.FocusUser)
	assert.Equal(t, uint64(3), board.FocusUser.UserID)
	assert.Equal(t, 3, board.FocusUser.Rank)
	assert.False(t, board.FocusUser.InTopList)
}

func TestRankFocusUserWithoutScoreHasNoRank(t *testing.T) {
	db := newTestDB(t)
	progressRepo := repository.NewProgressRepo(db)
	svc := NewLeaderboardService(progressRepo, repository.NewUserRepo(db))
	createUser(t, db, 1, true)
	createUser(t, db, 2, true)

	today := dateutil.Today("UTC")
	upsertDay(t, progressRepo, 1, today, allTasks(), 0, 0)

	focusID := uint64(2)
	board, err := svc.Rank(context.Background(), &dto.LeaderboardQueryDTO{
		Period:      PeriodAllTime,
		Metric:      MetricOverall,
		FocusUserID: &focusID,
	})
	require.NoError(t, err)
	assert.Nil(t, board.FocusUser)
}

func TestBoardCacheKeyVariesWithDateWindow(t *testing.T) {
	d1 := dateutil.Today("UTC")
	d2 := d1.AddDate(0, 0, -1)

	k1 := boardCacheKey(PeriodDaily, MetricOverall, &d1, &d1, 10)
	k2 := boardCacheKey(PeriodDaily, MetricOverall, &d2, &d2, 10)
	assert.NotEqual(t, k1, k2)
	assert.Equal(t, k1, boardCacheKey(PeriodDaily, MetricOverall, &d1, &d1, 10))
	assert.NotEqual(t, k1, boardCacheKey(PeriodAllTime, MetricOverall, nil, nil, 10))
}

func TestRankFocusUnapprovedUserHasNoRank(t *testing.T) {
	db := newTestDB(t)
	progressRepo := repository.NewProgressRepo(db)
	svc := NewLeaderboardService(progressRepo, repository.NewUserRepo(db))
	createUser(t, db, 1, true)
	createUser(t, db, 2, false)

	today := dateutil.Today("UTC")
	upsertDay(t, progressRepo, 1, today, [10]uint8{1, 1, 1}, 0, 0)
	upsertDay(t, progressRepo, 2, today, allTasks(), 0, 0)

	// 未审核用户即便有打卡也不参与排行，指定为焦点用户同样无名次
	focusID := uint64(2)
	board, err := svc.Rank(context.Background(), &dto.LeaderboardQueryDTO{
		Period:      PeriodAllTime,
		Metric:      MetricOverall,
		FocusUserID: &focusID,
	})
	require.NoError(t, err)
	require.Len(t, board.Entries, 1)
	assert.Equal(t, uint64(1), board.Entries[0].UserID)
	assert.Nil(t, board.FocusUser)
}

func TestRankRejectsInvalidPeriodAndMetric(t *testing.T) {
	db := newTestDB(t)
	svc := NewLeaderboardService(repository.NewProgressRepo(db), repository.NewUserRepo(db))

	_, err := svc.Rank(context.Background(), &dto.LeaderboardQueryDTO{Period: "monthly", Metric: MetricOverall})
	assert.ErrorIs(t, err, ErrPeriodInvalid)

	_, err = svc.Rank(context.Background(), &dto.LeaderboardQueryDTO{Period: PeriodDaily, Metric: "steps"})
	assert.ErrorIs(t, err, ErrMetricInvalid)
}
