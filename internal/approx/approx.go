// Package approx synthesizes best-effort Seheri/Iftar schedules from a
// district's latitude when the upstream time-service is unreachable.
// The model is deliberately crude: a linear latitude offset from the
// Dhaka reference times, a placeholder lunar-date label, and no real
// solar computation. Callers mark every result as approximate.
package approx

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/iftarbd/ramadan-api/internal/model"
)

const (
	// Dhaka reference values.
	baseSuhoor   = "5:11 AM"
	baseIftar    = "5:58 PM"
	referenceLat = 23.8103

	dateLayout = "2006-01-02"
)

// Bangla weekday names in the locally customary Saturday-first order,
// indexed by Monday-first weekday number.
var banglaWeekdays = []string{
	"শনিবার", "রবিবার", "সোমবার", "মঙ্গলবার", "বুধবার", "বৃহস্পতিবার", "শুক্রবার",
}

// AdjustTime shifts a 12-hour "H:MM AM/PM" clock string by the given
// number of minutes, wrapping across midnight. Malformed input is
// returned unchanged.
func AdjustTime(timeStr string, minutes float64) string {
	clock, period, ok := splitClock(timeStr)
	if !ok {
		return timeStr
	}
	hour, minute, ok := splitHourMinute(clock)
	if !ok {
		return timeStr
	}

	total := float64(hour*60+minute) + minutes
	if period == "PM" && hour != 12 {
		total += 12 * 60
	} else if period == "AM" && hour == 12 {
		total -= 12 * 60
	}

	total = math.Mod(total, 24*60)
	if total < 0 {
		total += 24 * 60
	}

	newHour := int(total/60) % 12
	if newHour == 0 {
		newHour = 12
	}
	newMinute := int(math.Mod(total, 60))
	newPeriod := "PM"
	if total < 12*60 {
		newPeriod = "AM"
	}

	return fmt.Sprintf("%d:%02d %s", newHour, newMinute, newPeriod)
}

func splitClock(s string) (clock, period string, ok bool) {
	parts := strings.Split(s, " ")
	if len(parts) != 2 {
		return "", "", false
	}
	return parts[0], parts[1], true
}

func splitHourMinute(clock string) (hour, minute int, ok bool) {
	parts := strings.Split(clock, ":")
	if len(parts) != 2 {
		return 0, 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, false
	}
	return h, m, true
}

// Day builds an approximate schedule entry for a district on the given
// ISO date. now supplies the wall clock for the isToday flag.
func Day(district model.District, dateStr string, now time.Time) model.ApproxDay {
	offset := (district.Lat - referenceLat) * 0.5

	suhoor := AdjustTime(baseSuhoor, -offset)
	iftar := AdjustTime(baseIftar, offset*0.4)

	dayBn := "শুক্রবার"
	dayEn := "Friday"
	if t, err := time.Parse(dateLayout, dateStr); err == nil {
		// Monday-first weekday number, matching the table's indexing.
		dayBn = banglaWeekdays[(int(t.Weekday())+6)%7]
		dayEn = t.Weekday().String()
	}

	islamicDate := "২ রমজান, ১৪৪৬ হিজরী"
	banglaDate := "২ ফাল্গুন, ১৪৩২"
	displayDate := dateStr
	if dom, ok := dayOfMonth(dateStr); ok {
		islamicDate = fmt.Sprintf("%d রমজান, ১৪৪৬ হিজরী", dom)
		banglaDate = fmt.Sprintf("%d ফাল্গুন, ১৪৩২", dom)
	}
	if len(dateStr) >= 10 {
		displayDate = strings.ReplaceAll(dateStr[5:10], "-", " ")
	}

	return model.ApproxDay{
		Date:        displayDate,
		IslamicDate: islamicDate,
		BanglaDate:  banglaDate,
		Day:         dayBn,
		DayEn:       dayEn,
		Suhoor:      suhoor,
		Iftaar:      iftar,
		IsToday:     dateStr == now.Format(dateLayout),
		Seheri:      suhoor,
		Iftar:       iftar,
	}
}

func dayOfMonth(dateStr string) (int, bool) {
	if len(dateStr) < 10 {
		return 0, false
	}
	dom, err := strconv.Atoi(dateStr[8:10])
	if err != nil {
		return 0, false
	}
	return dom, true
}
