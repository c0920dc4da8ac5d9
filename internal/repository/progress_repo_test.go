package repository

import (
	"Marafon/internal/model"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.UserProfile{},
		&model.DailyProgress{},
		&model.UserAchievement{},
		&model.Account{},
	))
	return db
}

func day(offset int) time.Time {
	base := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	return base.AddDate(0, 0, offset)
}

func seedUser(t *testing.T, db *gorm.DB, id uint64, approved bool) {
	t.Helper()
	repo := NewUserRepo(db)
	err := repo.CreateUser(context.Background(), &model.User{ID: id}, &model.UserProfile{UserID: id, FullName: "user"})
	require.NoError(t, err)
	if approved {
		_, err = repo.UpdateUserIsApproved(context.Background(), id, true)
		require.NoError(t, err)
	}
}

func seedProgress(t *testing.T, repo ProgressRepo, userID uint64, date time.Time, points, pages int, km float64) {
	t.Helper()
	record := &model.DailyProgress{
		UserID:      userID,
		RecordDate:  date,
		TotalPoints: points,
		PagesRead:   pages,
		DistanceKm:  km,
	}
	require.NoError(t, repo.Upsert(context.Background(), record))
}

func TestUpsertOverwritesSameDay(t *testing.T) {
	db := newTestDB(t)
	repo := NewProgressRepo(db)
	ctx := context.Background()
	seedUser(t, db, 1, true)

	first := &model.DailyProgress{UserID: 1, RecordDate: day(0), PagesRead: 30, TotalPoints: 4}
	first.SetTasks([10]uint8{1, 1, 1, 1, 0, 0, 0, 0, 0, 0})
	require.NoError(t, repo.Upsert(ctx, first))

	second := &model.DailyProgress{UserID: 1, RecordDate: day(0), PagesRead: 0, DistanceKm: 5.5, TotalPoints: 2}
	second.SetTasks([10]uint8{0, 0, 0, 0, 0, 0, 0, 0, 1, 1})
	require.NoError(t, repo.Upsert(ctx, second))

	var count int64
	require.NoError(t, db.Model(&model.DailyProgress{}).Where("user_id = ?", 1).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	stored, err := repo.GetByDate(ctx, 1, day(0))
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, 2, stored.TotalPoints)
	assert.Equal(t, 0, stored.PagesRead)
	assert.Equal(t, 5.5, stored.DistanceKm)
	assert.Equal(t, [10]uint8{0, 0, 0, 0, 0, 0, 0, 0, 1, 1}, stored.Tasks())
}

func TestUpsertRejectsUnknownUser(t *testing.T) {
	db := newTestDB(t)
	repo := NewProgressRepo(db)

	record := &model.DailyProgress{UserID: 424242, RecordDate: day(0), TotalPoints: 5}
	require.Error(t, repo.Upsert(context.Background(), record))

	var count int64
	require.NoError(t, db.Model(&model.DailyProgress{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestGetByDateMissingReturnsNil(t *testing.T) {
	db := newTestDB(t)
	repo := NewProgressRepo(db)

	stored, err := repo.GetByDate(context.Background(), 42, day(0))
	require.NoError(t, err)
	assert.Nil(t, stored)
}

func TestRangeReturnsDescendingWithoutGapFilling(t *testing.T) {
	db := newTestDB(t)
	repo := NewProgressRepo(db)
	seedUser(t, db, 1, true)

	seedProgress(t, repo, 1, day(-4), 3, 0, 0)
	seedProgress(t, repo, 1, day(-1), 5, 0, 0)
	seedProgress(t, repo, 1, day(0), 7, 0, 0)

	records, err := repo.Range(context.Background(), 1, day(-6), day(0))
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, 7, records[0].TotalPoints)
	assert.Equal(t, 5, records[1].TotalPoints)
	assert.Equal(t, 3, records[2].TotalPoints)
}

func TestSumColumnAndActiveDays(t *testing.T) {
	db := newTestDB(t)
	repo := NewProgressRepo(db)
	ctx := context.Background()
	seedUser(t, db, 1, true)

	seedProgress(t, repo, 1, day(-2), 6, 100, 2.5)
	seedProgress(t, repo, 1, day(-1), 8, 150, 3.25)

	points, err := repo.SumColumn(ctx, 1, "total_points")
	require.NoError(t, err)
	assert.Equal(t, float64(14), points)

	pages, err := repo.SumColumn(ctx, 1, "pages_read")
	require.NoError(t, err)
	assert.Equal(t, float64(250), pages)

	km, err := repo.SumColumn(ctx, 1, "distance_km")
	require.NoError(t, err)
	assert.Equal(t, 5.75, km)

	days, err := repo.CountActiveDays(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), days)
}

func TestSumColumnEmptyIsZero(t *testing.T) {
	db := newTestDB(t)
	repo := NewProgressRepo(db)

	sum, err := repo.SumColumn(context.Background(), 99, "total_points")
	require.NoError(t, err)
	assert.Equal(t, float64(0), sum)
}

func TestTopScoresTieBrokenByUserID(t *testing.T) {
	db := newTestDB(t)
	repo := NewProgressRepo(db)
	ctx := context.Background()

	seedUser(t, db, 7, true)
	seedUser(t, db, 3, true)
	seedUser(t, db, 9, true)

	seedProgress(t, repo, 7, day(-1), 25, 0, 0)
	seedProgress(t, repo, 7, day(0), 25, 0, 0)
	seedProgress(t, repo, 3, day(0), 50, 0, 0)
	seedProgress(t, repo, 9, day(0), 30, 0, 0)

	rows, err := repo.TopScores(ctx, "total_points", nil, nil, 10)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	// 同分 50：id 小的 3 排在 7 前面
	assert.Equal(t, uint64(3), rows[0].UserID)
	assert.Equal(t, uint64(7), rows[1].UserID)
	assert.Equal(t, uint64(9), rows[2].UserID)
	assert.Equal(t, float64(50), rows[0].Score)
	assert.Equal(t, float64(50), rows[1].Score)
	assert.Equal(t, float64(30), rows[2].Score)
}

func TestScoreQueryExcludesZeroAndUnapproved(t *testing.T) {
	db := newTestDB(t)
	repo := NewProgressRepo(db)
	ctx := context.Background()

	seedUser(t, db, 1, true)
	seedUser(t, db, 2, true)
	seedUser(t, db, 3, false)

	seedProgress(t, repo, 1, day(0), 5, 0, 0)
	seedProgress(t, repo, 2, day(0), 0, 0, 0) // 零分
	seedProgress(t, repo, 3, day(0), 9, 0, 0) // 未审核

	rows, err := repo.TopScores(ctx, "total_points", nil, nil, 10)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, uint64(1), rows[0].UserID)

	total, err := repo.CountParticipants(ctx, "total_points", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestTopScoresRespectsDateWindow(t *testing.T) {
	db := newTestDB(t)
	repo := NewProgressRepo(db)
	ctx := context.Background()

	seedUser(t, db, 1, true)
	seedUser(t, db, 2, true)

	seedProgress(t, repo, 1, day(-10), 100, 0, 0) // 窗口外
	seedProgress(t, repo, 2, day(0), 3, 0, 0)

	from, to := day(-6), day(0)
	rows, err := repo.TopScores(ctx, "total_points", &from, &to, 10)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, uint64(2), rows[0].UserID)
}

func TestUserScoreAndGreaterCount(t *testing.T) {
	db := newTestDB(t)
	repo := NewProgressRepo(db)
	ctx := context.Background()

	seedUser(t, db, 1, true)
	seedUser(t, db, 2, true)
	seedUser(t, db, 3, true)

	seedProgress(t, repo, 1, day(0), 50, 0, 0)
	seedProgress(t, repo, 2, day(0), 40, 0, 0)
	seedProgress(t, repo, 3, day(0), 30, 0, 0)

	score, err := repo.UserScore(ctx, 3, "total_points", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, float64(30), score)

	greater, err := repo.CountScoresGreaterThan(ctx, "total_points", nil, nil, score)
	require.NoError(t, err)
	assert.Equal(t, int64(2), greater)
}

func TestUserScoreExcludesUnapproved(t *testing.T) {
	db := newTestDB(t)
	repo := NewProgressRepo(db)
	ctx := context.Background()

	seedUser(t, db, 1, false)
	seedProgress(t, repo, 1, day(0), 8, 0, 0)

	score, err := repo.UserScore(ctx, 1, "total_points", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, float64(0), score)
}
