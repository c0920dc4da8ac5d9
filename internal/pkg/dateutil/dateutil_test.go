package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDayOfResolvesCalendarDayPerTimezone(t *testing.T) {
	// 2026-01-07 22:00 UTC 在 UTC 还是 1 月 7 日，在塔什干（UTC+5）已是 1 月 8 日
	moment := time.Date(2026, 1, 7, 22, 0, 0, 0, time.UTC)

	utcDay := DayOf(moment, time.UTC)
	assert.Equal(t, "2026-01-07", FormatDay(utcDay))

	tashkent := LoadLocation("Asia/Tashkent")
	assert.Equal(t, "2026-01-08", FormatDay(DayOf(moment, tashkent)))

	// 日期键统一为 UTC 零点
	assert.Equal(t, time.UTC, utcDay.Location())
	assert.Equal(t, 0, utcDay.Hour())
}

func TestLoadLocationFallsBackOnInvalidTimezone(t *testing.T) {
	assert.Equal(t, time.UTC, LoadLocation("Not/AZone"))
	assert.Equal(t, time.UTC, LoadLocation(""))
}

func TestWeekBoundsMondayFirst(t *testing.T) {
	// 2026-01-07 是周三
	wednesday := time.Date(2026, 1, 7, 12, 0, 0, 0, time.UTC)
	monday, sunday, idx := WeekBoundsOf(wednesday, time.UTC)

	assert.Equal(t, "2026-01-05", FormatDay(monday))
	assert.Equal(t, "2026-01-11", FormatDay(sunday))
	assert.Equal(t, 2, idx)
}

func TestWeekBoundsSundayIsLastDay(t *testing.T) {
	sundayNoon := time.Date(2026, 1, 11, 12, 0, 0, 0, time.UTC)
	monday, sunday, idx := WeekBoundsOf(sundayNoon, time.UTC)

	assert.Equal(t, "2026-01-05", FormatDay(monday))
	assert.Equal(t, "2026-01-11", FormatDay(sunday))
	assert.Equal(t, 6, idx)
}

func TestWeekBoundsMondayIsFirstDay(t *testing.T) {
	mondayMorning := time.Date(2026, 1, 5, 0, 30, 0, 0, time.UTC)
	monday, _, idx := WeekBoundsOf(mondayMorning, time.UTC)

	assert.Equal(t, "2026-01-05", FormatDay(monday))
	assert.Equal(t, 0, idx)
}
