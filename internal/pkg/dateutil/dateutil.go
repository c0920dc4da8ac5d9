package dateutil

import (
	"time"
)

// DefaultTimezone 兜底时区，配置缺失或时区标识非法时使用
var DefaultTimezone = "UTC"

// LoadLocation 解析 IANA 时区标识，非法标识降级为默认时区
//
// 下游所有按日计算都依赖这里"永远能拿到一个时区"的保证，所以不返回错误。
func LoadLocation(tz string) *time.Location {
	if tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}
	if loc, err := time.LoadLocation(DefaultTimezone); err == nil {
		return loc
	}
	return time.UTC
}

// DayOf 把某一时刻按给定时区折算成日历日
// 返回值统一表示为 UTC 零点，作为数据库里稳定的日期键
func DayOf(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}

// Today 当前时刻在给定时区下的日历日
func Today(tz string) time.Time {
	return DayOf(time.Now(), LoadLocation(tz))
}

// WeekBoundsOf 给定时刻所在的周一到周日区间，以及该日在周内的下标
// 周一为 0，周日为 6
func WeekBoundsOf(t time.Time, loc *time.Location) (monday, sunday time.Time, todayIdx int) {
	day := DayOf(t, loc)

	todayIdx = int(day.Weekday()+6) % 7
	monday = day.AddDate(0, 0, -todayIdx)
	sunday = monday.AddDate(0, 0, 6)
	return monday, sunday, todayIdx
}

// WeekBounds 当前周的周一、周日和今天在周内的下标
func WeekBounds(tz string) (time.Time, time.Time, int) {
	return WeekBoundsOf(time.Now(), LoadLocation(tz))
}

// FormatDay 日期键的展示格式
func FormatDay(t time.Time) string {
	return t.Format(time.DateOnly)
}
