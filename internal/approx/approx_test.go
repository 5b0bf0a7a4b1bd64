package approx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/iftarbd/ramadan-api/internal/model"
)

func TestAdjustTimeZeroOffsetIsIdentity(t *testing.T) {
	assert.Equal(t, "5:11 AM", AdjustTime("5:11 AM", 0))
	assert.Equal(t, "5:58 PM", AdjustTime("5:58 PM", 0))
	assert.Equal(t, "12:00 AM", AdjustTime("12:00 AM", 0))
	assert.Equal(t, "12:00 PM", AdjustTime("12:00 PM", 0))
}

func TestAdjustTimeWrapsMidnight(t *testing.T) {
	assert.Equal(t, "12:01 AM", AdjustTime("11:59 PM", 2))
	assert.Equal(t, "11:58 PM", AdjustTime("12:01 AM", -3))
}

func TestAdjustTimeNoonBoundary(t *testing.T) {
	assert.Equal(t, "12:01 PM", AdjustTime("11:59 AM", 2))
	assert.Equal(t, "11:59 AM", AdjustTime("12:01 PM", -2))
}

func TestAdjustTimeFractionalMinutesTruncate(t *testing.T) {
	// 5:11 AM + 0.75 min = 311.75 min since midnight; minutes truncate.
	assert.Equal(t, "5:11 AM", AdjustTime("5:11 AM", 0.75))
	assert.Equal(t, "5:12 AM", AdjustTime("5:11 AM", 1.25))
}

func TestAdjustTimeMalformedInputUnchanged(t *testing.T) {
	for _, s := range []string{"garbage", "", "5:11", "five eleven AM", "5:xx AM", "5 11 AM"} {
		assert.Equal(t, s, AdjustTime(s, 30))
	}
}

func TestDayAtReferenceLatitudeKeepsBaseTimes(t *testing.T) {
	dhaka := model.District{ID: "dhaka", Lat: 23.8103}
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	day := Day(dhaka, "2026-03-02", now)
	assert.Equal(t, "5:11 AM", day.Suhoor)
	assert.Equal(t, "5:58 PM", day.Iftaar)
	assert.Equal(t, day.Suhoor, day.Seheri)
	assert.Equal(t, day.Iftaar, day.Iftar)
	assert.True(t, day.IsToday)
}

func TestDayNorthernDistrictShiftsAsymmetrically(t *testing.T) {
	// Panchagarh is ~2.53 degrees north of Dhaka: Suhoor moves earlier
	// by the full offset, Iftar later by 40% of it.
	panchagarh := model.District{ID: "panchagarh", Lat: 26.3411}
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	day := Day(panchagarh, "2026-03-05", now)
	assert.Equal(t, "5:09 AM", day.Suhoor)
	assert.Equal(t, "5:58 PM", day.Iftaar)
	assert.False(t, day.IsToday)
}

func TestDayWeekdayNames(t *testing.T) {
	d := model.District{Lat: 23.8103}
	now := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	// 2026-03-02 is a Monday; the Bangla table is Saturday-first and
	// indexed by Monday-first weekday, so Monday reads শনিবার.
	day := Day(d, "2026-03-02", now)
	assert.Equal(t, "Monday", day.DayEn)
	assert.Equal(t, "শনিবার", day.Day)
}

func TestDayMalformedDateFallsBack(t *testing.T) {
	d := model.District{Lat: 23.8103}
	now := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	day := Day(d, "bogus", now)
	assert.Equal(t, "শুক্রবার", day.Day)
	assert.Equal(t, "Friday", day.DayEn)
	assert.Equal(t, "২ রমজান, ১৪৪৬ হিজরী", day.IslamicDate)
}

func TestDayLabels(t *testing.T) {
	d := model.District{Lat: 23.8103}
	now := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	day := Day(d, "2026-03-09", now)
	assert.Equal(t, "9 রমজান, ১৪৪৬ হিজরী", day.IslamicDate)
	assert.Equal(t, "9 ফাল্গুন, ১৪৩২", day.BanglaDate)
	assert.Equal(t, "03 09", day.Date)
}
