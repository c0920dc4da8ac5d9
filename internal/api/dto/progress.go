package dto

// SubmitProgressDTO 每日打卡提交
// 十个任务标志只接受 0/1，指标超出上限视为脏数据直接拒绝
type SubmitProgressDTO struct {
	UserID uint64 `json:"user_id" binding:"required" validate:"required,gt=0"`

	Task1  *uint8 `json:"task_1" binding:"required" validate:"required,max=1"`
	Task2  *uint8 `json:"task_2" binding:"required" validate:"required,max=1"`
	Task3  *uint8 `json:"task_3" binding:"required" validate:"required,max=1"`
	Task4  *uint8 `json:"task_4" binding:"required" validate:"required,max=1"`
	Task5  *uint8 `json:"task_5" binding:"required" validate:"required,max=1"`
	Task6  *uint8 `json:"task_6" binding:"required" validate:"required,max=1"`
	Task7  *uint8 `json:"task_7" binding:"required" validate:"required,max=1"`
	Task8  *uint8 `json:"task_8" binding:"required" validate:"required,max=1"`
	Task9  *uint8 `json:"task_9" binding:"required" validate:"required,max=1"`
	Task10 *uint8 `json:"task_10" binding:"required" validate:"required,max=1"`

	PagesRead  int     `json:"pages_read" validate:"min=0,max=10000"`
	DistanceKm float64 `json:"distance_km" validate:"min=0,max=1000"`

	// Timezone 可选，缺省时回退到用户档案时区，再回退到系统默认时区
	Timezone string `json:"timezone"`
}

// Tasks 按顺序取出十个任务标志
func (d *SubmitProgressDTO) Tasks() [10]uint8 {
	return [10]uint8{
		*d.Task1, *d.Task2, *d.Task3, *d.Task4, *d.Task5,
		*d.Task6, *d.Task7, *d.Task8, *d.Task9, *d.Task10,
	}
}

// ProgressDTO 单日打卡记录
type ProgressDTO struct {
	Date        string  `json:"date"`
	Tasks       []uint8 `json:"tasks"`
	PagesRead   int     `json:"pages_read"`
	DistanceKm  float64 `json:"distance_km"`
	TotalPoints int     `json:"total_points"`
}

// SubmitResultDTO 打卡结果：落库记录 + 本次新解锁的成就
type SubmitResultDTO struct {
	Progress        *ProgressDTO `json:"progress"`
	NewAchievements []string     `json:"new_achievements"`
}
