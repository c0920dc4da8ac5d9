package repository

import (
	"Marafon/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ScoreRow 排行榜聚合行：用户与其在所选周期/指标下的总分
type ScoreRow struct {
	UserID uint64
	Score  float64
}

type ProgressRepo interface {
	// Upsert 以 (user_id, record_date) 为键写入打卡记录，重复提交整行覆盖
	Upsert(ctx context.Context, progress *model.DailyProgress) error
	GetByDate(ctx context.Context, userID uint64, date time.Time) (*model.DailyProgress, error)
	// Range 返回区间内的记录，按日期倒序；缺勤日不补零行
	Range(ctx context.Context, userID uint64, from, to time.Time) ([]*model.DailyProgress, error)
	SumColumn(ctx context.Context, userID uint64, column string) (float64, error)
	CountActiveDays(ctx context.Context, userID uint64) (int64, error)

	TopScores(ctx context.Context, column string, from, to *time.Time, limit int) ([]*ScoreRow, error)
	CountParticipants(ctx context.Context, column string, from, to *time.Time) (int64, error)
	UserScore(ctx context.Context, userID uint64, column string, from, to *time.Time) (float64, error)
	CountScoresGreaterThan(ctx context.Context, column string, from, to *time.Time, score float64) (int64, error)
}

type progressRepoImpl struct {
	db *gorm.DB
}

func NewProgressRepo(db *gorm.DB) ProgressRepo {
	return &progressRepoImpl{db: db}
}

func (s *progressRepoImpl) Upsert(ctx context.Context, progress *model.DailyProgress) error {
	// 行级原子覆盖，并发提交同一天不会交错出混合记录
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "record_date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"task_1", "task_2", "task_3", "task_4", "task_5",
			"task_6", "task_7", "task_8", "task_9", "task_10",
			"pages_read", "distance_km", "total_points", "updated_at",
		}),
	}).Create(progress).Error
}

func (s *progressRepoImpl) GetByDate(ctx context.Context, userID uint64, date time.Time) (*model.DailyProgress, error) {
	var progress model.DailyProgress
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND record_date = ?", userID, date).
		First(&progress).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &progress, nil
}

func (s *progressRepoImpl) Range(ctx context.Context, userID uint64, from, to time.Time) ([]*model.DailyProgress, error) {
	records := make([]*model.DailyProgress, 0)
	result := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("record_date BETWEEN ? AND ?", from, to).
		Order("record_date DESC").
		Find(&records)
	if result.Error != nil {
		return nil, result.Error
	}
	return records, nil
}

func (s *progressRepoImpl) SumColumn(ctx context.Context, userID uint64, column string) (float64, error) {
	var sum *float64
	err := s.db.WithContext(ctx).
		Model(&model.DailyProgress{}).
		Select("SUM(" + column + ")").
		Where("user_id = ?", userID).
		Scan(&sum).Error
	if err != nil {
		return 0, err
	}
	if sum == nil {
		return 0, nil
	}
	return *sum, nil
}

func (s *progressRepoImpl) CountActiveDays(ctx context.Context, userID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&model.DailyProgress{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

// scoreQuery 聚合子查询：每个合格用户在所选区间内某指标列的总分
// 仅统计已通过审核且未注销的用户，总分为 0 的用户不参与排行
func (s *progressRepoImpl) scoreQuery(ctx context.Context, column string, from, to *time.Time) *gorm.DB {
	query := s.db.WithContext(ctx).
		Table("daily_progress p").
		Select("p.user_id AS user_id, SUM(p."+column+") AS score").
		Joins("JOIN users u ON u.id = p.user_id").
		Where("u.is_approved = ? AND u.is_delete = ?", true, false).
		Group("p.user_id").
		Having("SUM(p." + column + ") > 0")

	if from != nil && to != nil {
		query = query.Where("p.record_date BETWEEN ? AND ?", *from, *to)
	}
	return query
}

func (s *progressRepoImpl) TopScores(ctx context.Context, column string, from, to *time.Time, limit int) ([]*ScoreRow, error) {
	rows := make([]*ScoreRow, 0)
	err := s.scoreQuery(ctx, column, from, to).
		Order("score DESC, user_id ASC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *progressRepoImpl) CountParticipants(ctx context.Context, column string, from, to *time.Time) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Table("(?) AS t", s.scoreQuery(ctx, column, from, to)).
		Count(&count).Error
	return count, err
}

// UserScore 与 scoreQuery 同一套合格性口径，未审核或已注销用户得分为 0
func (s *progressRepoImpl) UserScore(ctx context.Context, userID uint64, column string, from, to *time.Time) (float64, error) {
	var sum *float64
	err := s.db.WithContext(ctx).
		Table("(?) AS t", s.scoreQuery(ctx, column, from, to)).
		Select("t.score").
		Where("t.user_id = ?", userID).
		Scan(&sum).Error
	if err != nil {
		return 0, err
	}
	if sum == nil {
		return 0, nil
	}
	return *sum, nil
}

func (s *progressRepoImpl) CountScoresGreaterThan(ctx context.Context, column string, from, to *time.Time, score float64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Table("(?) AS t", s.scoreQuery(ctx, column, from, to)).
		Where("t.score > ?", score).
		Count(&count).Error
	return count, err
}
