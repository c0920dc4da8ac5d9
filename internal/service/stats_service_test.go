package service

import (
	"Marafon/internal/pkg/dateutil"
	"Marafon/internal/repository"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeNewUserHasAllZeros(t *testing.T) {
	db := newTestDB(t)
	svc := NewStatsService(repository.NewProgressRepo(db), repository.NewUserRepo(db))
	createUser(t, db, 1, true)

	stats, err := svc.Summarize(context.Background(), 1, "UTC")
	require.NoError(t, err)

	assert.Equal(t, 0, stats.Today.TotalPoints)

	require.Len(t, stats.ThisWeek.DailyPoints, 7)
	for _, points := range stats.ThisWeek.DailyPoints {
		assert.Equal(t, 0, points)
	}
	assert.Equal(t, 0, stats.ThisWeek.TotalPoints)

	assert.Equal(t, 0, stats.AllTime.TotalPoints)
	assert.Equal(t, 0, stats.AllTime.ActiveDays)
	assert.Equal(t, 0, stats.AllTime.CurrentStreak)
}

func TestSummarizeUnknownUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewStatsService(repository.NewProgressRepo(db), repository.NewUserRepo(db))

	_, err := svc.Summarize(context.Background(), 404, "UTC")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestSummarizePlacesTodayInWeekSlot(t *testing.T) {
	db := newTestDB(t)
	progressRepo := repository.NewProgressRepo(db)
	svc := NewStatsService(progressRepo, repository.NewUserRepo(db))
	createUser(t, db, 1, true)

	today := dateutil.Today("UTC")
	upsertDay(t, progressRepo, 1, today, [10]uint8{1, 1, 1, 1, 1}, 40, 2.5)
	// 远在本周与连续窗口之外的一条旧记录
	upsertDay(t, progressRepo, 1, today.AddDate(0, 0, -60), allTasks(), 100, 10)

	stats, err := svc.Summarize(context.Background(), 1, "UTC")
	require.NoError(t, err)

	assert.Equal(t, 5, stats.Today.TotalPoints)
	assert.Equal(t, 40, stats.Today.PagesRead)

	require.Len(t, stats.ThisWeek.DailyPoints, 7)
	assert.Equal(t, 5, stats.ThisWeek.DailyPoints[stats.ThisWeek.TodayIndex])
	assert.Equal(t, dateutil.FormatDay(today), stats.Today.Date)

	assert.Equal(t, 15, stats.AllTime.TotalPoints)
	assert.Equal(t, 140, stats.AllTime.TotalPages)
	assert.Equal(t, 12.5, stats.AllTime.TotalDistance)
	assert.Equal(t, 2, stats.AllTime.ActiveDays)
	// 昨天缺勤，连续天数只有今天
	assert.Equal(t, 1, stats.AllTime.CurrentStreak)
}
