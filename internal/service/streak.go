package service

import (
	"Marafon/internal/model"
	"Marafon/internal/pkg/consts"
	"Marafon/internal/pkg/dateutil"
	"time"
)

// ProgressPredicate 判定某一日的打卡记录是否满足某条规则
type ProgressPredicate func(*model.DailyProgress) bool

// AnyActivity 当日拿到至少 1 分
func AnyActivity(p *model.DailyProgress) bool {
	return p.TotalPoints > 0
}

// PerfectDay 当日十个任务全部完成
func PerfectDay(p *model.DailyProgress) bool {
	return p.TotalPoints == consts.MaxDailyPoints
}

// WakeUpDone 当日完成早起任务（第 9 项）
func WakeUpDone(p *model.DailyProgress) bool {
	return p.Task9 == 1
}

// ConsecutiveStreak 从 today 起向过去逐日回溯，统计连续满足谓词的天数
//
// 某日没有记录、或有记录但谓词不成立，立即停止——缺勤日不会被跳过。
// 连续天数必须包含今天：今天没打卡则返回 0，即使昨天及更早全部达标。
// 达到 cap 后提前停止，调用方传入不小于最大成就阈值的 cap 即可。
func ConsecutiveStreak(history []*model.DailyProgress, today time.Time, predicate ProgressPredicate, cap int) int {
	byDay := make(map[string]*model.DailyProgress, len(history))
	for _, record := range history {
		byDay[dateutil.FormatDay(record.RecordDate)] = record
	}

	streak := 0
	day := today
	for streak < cap {
		record, ok := byDay[dateutil.FormatDay(day)]
		if !ok || !predicate(record) {
			break
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}
