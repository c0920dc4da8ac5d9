package service

import (
	"Marafon/internal/api/dto"
	"Marafon/internal/model"
	"Marafon/internal/repository"
	"context"
	"testing"
	"time"

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

func createUser(t *testing.T, db *gorm.DB, id uint64, approved bool) {
	t.Helper()
	repo := repository.NewUserRepo(db)
	err := repo.CreateUser(context.Background(), &model.User{ID: id}, &model.UserProfile{
		UserID:   id,
		FullName: "user",
	})
	require.NoError(t, err)
	if approved {
		_, err = repo.UpdateUserIsApproved(context.Background(), id, true)
		require.NoError(t, err)
	}
}

func upsertDay(t *testing.T, repo repository.ProgressRepo, userID uint64, date time.Time, tasks [10]uint8, pages int, km float64) {
	t.Helper()
	record := &model.DailyProgress{
		UserID:     userID,
		RecordDate: date,
		PagesRead:  pages,
		DistanceKm: km,
	}
	record.SetTasks(tasks)
	total := 0
	for _, flag := range tasks {
		total += int(flag)
	}
	record.TotalPoints = total
	require.NoError(t, repo.Upsert(context.Background(), record))
}

func allTasks() [10]uint8 {
	return [10]uint8{1, 1, 1, 1, 1, 1, 1, 1, 1, 1}
}

func submitDTO(userID uint64, tasks [10]uint8, pages int, km float64) *dto.SubmitProgressDTO {
	flags := make([]*uint8, 10)
	for i := range tasks {
		v := tasks[i]
		flags[i] = &v
	}
	return &dto.SubmitProgressDTO{
		UserID: userID,
		Task1:  flags[0], Task2: flags[1], Task3: flags[2], Task4: flags[3], Task5: flags[4],
		Task6: flags[5], Task7: flags[6], Task8: flags[7], Task9: flags[8], Task10: flags[9],
		PagesRead:  pages,
		DistanceKm: km,
		Timezone:   "UTC",
	}
}
