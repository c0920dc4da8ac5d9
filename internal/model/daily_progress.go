package model

import (
	"time"
)

// DailyProgress 每用户每日历日唯一的一条打卡记录
// RecordDate 统一存为 UTC 零点，日历日由提交者时区折算（见 dateutil）
type DailyProgress struct {
	ID         uint64    `gorm:"primaryKey"`
	UserID     uint64    `gorm:"not null;uniqueIndex:idx_user_date"`
	RecordDate time.Time `gorm:"type:date;not null;uniqueIndex:idx_user_date;column:record_date"`

	Task1  uint8 `gorm:"type:tinyint(1);not null;default:0;column:task_1"`
	Task2  uint8 `gorm:"type:tinyint(1);not null;default:0;column:task_2"`
	Task3  uint8 `gorm:"type:tinyint(1);not null;default:0;column:task_3"`
	Task4  uint8 `gorm:"type:tinyint(1);not null;default:0;column:task_4"`
	Task5  uint8 `gorm:"type:tinyint(1);not null;default:0;column:task_5"`
	Task6  uint8 `gorm:"type:tinyint(1);not null;default:0;column:task_6"`
	Task7  uint8 `gorm:"type:tinyint(1);not null;default:0;column:task_7"`
	Task8  uint8 `gorm:"type:tinyint(1);not null;default:0;column:task_8"`
	Task9  uint8 `gorm:"type:tinyint(1);not null;default:0;column:task_9"`
	Task10 uint8 `gorm:"type:tinyint(1);not null;default:0;column:task_10"`

	PagesRead  int     `gorm:"type:int;not null;default:0"`
	DistanceKm float64 `gorm:"type:decimal(8,2);not null;default:0"`

	// TotalPoints 在写入时由应用层计算（Σ task_i），不接受外部赋值
	TotalPoints int `gorm:"type:tinyint;not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time

	// 归属用户；库层外键约束，用户不存在的行直接拒绝落库
	User *User `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

func (DailyProgress) TableName() string {
	return "daily_progress"
}

// Tasks 按顺序返回十个任务标志
func (p *DailyProgress) Tasks() [10]uint8 {
	return [10]uint8{p.Task1, p.Task2, p.Task3, p.Task4, p.Task5, p.Task6, p.Task7, p.Task8, p.Task9, p.Task10}
}

// SetTasks 写入十个任务标志
func (p *DailyProgress) SetTasks(tasks [10]uint8) {
	p.Task1, p.Task2, p.Task3, p.Task4, p.Task5 = tasks[0], tasks[1], tasks[2], tasks[3], tasks[4]
	p.Task6, p.Task7, p.Task8, p.Task9, p.Task10 = tasks[5], tasks[6], tasks[7], tasks[8], tasks[9]
}
