// Package schedule orchestrates the cache-or-fetch-or-approximate flow
// behind the today, calendar and countdown endpoints.
package schedule

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/iftarbd/ramadan-api/internal/approx"
	"github.com/iftarbd/ramadan-api/internal/cache"
	"github.com/iftarbd/ramadan-api/internal/districts"
	"github.com/iftarbd/ramadan-api/internal/model"
)

const (
	dateLayout = "2006-01-02"

	defaultSuhoor      = "5:11 AM"
	defaultIftar       = "5:58 PM"
	defaultDay         = "শুক্রবার"
	defaultIslamicDate = "২ রমজান, ১৪৪৬ হিজরী"

	approxMessage = "Using approximate calculation (API unavailable)"
)

// Fetcher is the outbound dependency on the upstream time-service,
// abstracted so tests and the approximation fallback can stand in.
type Fetcher interface {
	Fetch(ctx context.Context, date, districtID string) ([]byte, error)
}

// Service combines the district registry, the payload cache and the
// upstream client. The clock is injectable for deterministic tests.
type Service struct {
	registry *districts.Registry
	store    cache.Store
	fetcher  Fetcher
	now      func() time.Time
}

func NewService(registry *districts.Registry, store cache.Store, fetcher Fetcher) *Service {
	return &Service{
		registry: registry,
		store:    store,
		fetcher:  fetcher,
		now:      time.Now,
	}
}

// TodayResult is the outcome of a today lookup. Exactly one of the
// authoritative fields (Suhoor..IslamicDate, FastTracker) or ApproxDay
// is meaningful, selected by Approximate.
type TodayResult struct {
	Date     string
	District model.District

	Approximate bool
	Message     string

	Suhoor      string
	Iftaar      string
	DisplayDate string
	Day         string
	IslamicDate string
	FastTracker map[string]any

	ApproxDay *model.ApproxDay
}

// CalendarResult is a 30-day calendar. Days holds upstream day objects
// and/or synthesized ApproxDay values. TotalDays reports the list
// length before truncation to 30.
type CalendarResult struct {
	District    model.District
	StartDate   string
	TotalDays   int
	Days        []any
	Approximate bool
	Message     string
}

// CountdownResult is the time remaining until the next Iftar.
type CountdownResult struct {
	District     model.District
	Date         string
	IftarTime    string
	Hours        int
	Minutes      int
	Seconds      int
	TotalSeconds int
	Formatted    string
	Message      string
}

// Today resolves today's schedule for a district, preferring the cache,
// then the upstream, then the approximation.
func (s *Service) Today(ctx context.Context, districtID string) (*TodayResult, error) {
	id := s.registry.Validate(districtID)
	district, _ := s.registry.ByID(id)
	today := s.now().Format(dateLayout)

	payload, ok := s.loadPayload(ctx, today, id)
	if !ok {
		day := approx.Day(district, today, s.now())
		return &TodayResult{
			Date:        today,
			District:    district,
			Approximate: true,
			Message:     approxMessage,
			ApproxDay:   &day,
		}, nil
	}

	todayInfo := findToday(payload)

	return &TodayResult{
		Date:        today,
		District:    district,
		Suhoor:      getString(todayInfo, "Suhoor", defaultSuhoor),
		Iftaar:      getString(todayInfo, "Iftaar", defaultIftar),
		DisplayDate: getString(todayInfo, "Date", today[5:10]),
		Day:         getString(todayInfo, "Day", defaultDay),
		IslamicDate: getString(todayInfo, "islamicDate", defaultIslamicDate),
		FastTracker: fastTracker(payload),
	}, nil
}

// Calendar resolves a 30-day calendar starting at startDate (invalid or
// empty dates normalize to today). The response always carries exactly
// 30 entries: short upstream lists are padded with approximate days for
// the trailing dates, long lists are truncated.
func (s *Service) Calendar(ctx context.Context, districtID, startDate string) (*CalendarResult, error) {
	id := s.registry.Validate(districtID)
	district, _ := s.registry.ByID(id)
	start := s.normalizeDate(startDate)
	startT, _ := time.Parse(dateLayout, start)

	payload, ok := s.loadPayload(ctx, start, id)
	if !ok {
		days := make([]any, 0, 30)
		for i := 0; i < 30; i++ {
			day := approx.Day(district, startT.AddDate(0, 0, i).Format(dateLayout), s.now())
			day.Ordinal = i + 1
			days = append(days, day)
		}
		return &CalendarResult{
			District:    district,
			StartDate:   start,
			TotalDays:   len(days),
			Days:        days,
			Approximate: true,
			Message:     approxMessage,
		}, nil
	}

	days := make([]any, 0, len(payload.Data.FastTime))
	for _, day := range payload.Data.FastTime {
		days = append(days, day)
	}
	for i := len(days); i < 30; i++ {
		dateStr := startT.AddDate(0, 0, i).Format(dateLayout)
		days = append(days, approx.Day(district, dateStr, s.now()))
	}

	total := len(days)
	if len(days) > 30 {
		days = days[:30]
	}

	return &CalendarResult{
		District:  district,
		StartDate: start,
		TotalDays: total,
		Days:      days,
	}, nil
}

// Countdown computes the time remaining until the next Iftar for a
// district. Parsing failures degrade to a fixed default countdown.
func (s *Service) Countdown(ctx context.Context, districtID string) (*CountdownResult, error) {
	id := s.registry.Validate(districtID)
	district, _ := s.registry.ByID(id)
	now := s.now()
	today := now.Format(dateLayout)

	iftarStr := defaultIftar
	if todayRes, err := s.Today(ctx, districtID); err == nil {
		if todayRes.Approximate {
			if todayRes.ApproxDay.Iftar != "" {
				iftarStr = todayRes.ApproxDay.Iftar
			}
		} else if todayRes.Iftaar != "" {
			iftarStr = todayRes.Iftaar
		}
	}

	hour, minute, ok := parseClock12(iftarStr)
	if !ok {
		log.Error().Str("iftar_time", iftarStr).Msg("could not parse iftar time, returning default countdown")
		return &CountdownResult{
			District:     district,
			Date:         today,
			IftarTime:    defaultIftar,
			Hours:        8,
			Minutes:      30,
			Seconds:      0,
			TotalSeconds: 30600,
			Formatted:    "08:30:00",
			Message:      "Approximate countdown",
		}, nil
	}

	iftarAt := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if now.After(iftarAt) {
		iftarAt = iftarAt.Add(24 * time.Hour)
	}

	total := int(iftarAt.Sub(now).Seconds())
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	message := "Iftar time has passed"
	if total > 0 {
		message = "Time remaining until Iftar"
	}

	return &CountdownResult{
		District:     district,
		Date:         today,
		IftarTime:    iftarStr,
		Hours:        hours,
		Minutes:      minutes,
		Seconds:      seconds,
		TotalSeconds: total,
		Formatted:    fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds),
		Message:      message,
	}, nil
}

// loadPayload serves the raw payload from cache or a fresh fetch,
// storing fresh results. ok=false means the caller must approximate.
func (s *Service) loadPayload(ctx context.Context, date, districtID string) (*model.SchedulePayload, bool) {
	key := cache.Key(date, districtID)

	if raw, hit := s.store.Get(ctx, key); hit {
		if payload, err := model.ParseSchedulePayload(raw); err == nil {
			return payload, true
		}
		log.Warn().Str("key", key).Msg("discarding unparseable cache entry")
	}

	raw, err := s.fetcher.Fetch(ctx, date, districtID)
	if err != nil {
		log.Warn().Err(err).Str("district", districtID).Msg("upstream fetch failed, using approximation")
		return nil, false
	}
	payload, err := model.ParseSchedulePayload(raw)
	if err != nil {
		log.Warn().Err(err).Str("district", districtID).Msg("unparseable upstream payload, using approximation")
		return nil, false
	}

	s.store.Set(ctx, key, raw)
	return payload, true
}

func (s *Service) normalizeDate(dateStr string) string {
	if _, err := time.Parse(dateLayout, dateStr); err == nil {
		return dateStr
	}
	return s.now().Format(dateLayout)
}

func findToday(payload *model.SchedulePayload) map[string]any {
	for _, day := range payload.Data.FastTime {
		if isToday, _ := day["isToday"].(bool); isToday {
			return day
		}
	}
	return payload.Data.FastTracker
}

func fastTracker(payload *model.SchedulePayload) map[string]any {
	if payload.Data.FastTracker == nil {
		return map[string]any{}
	}
	return payload.Data.FastTracker
}

func getString(m map[string]any, key, fallback string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return fallback
}

// parseClock12 reads "H:MM AM/PM" into a 24-hour clock. A missing
// period defaults to PM, matching how bare iftar times are read.
func parseClock12(s string) (hour, minute int, ok bool) {
	parts := strings.Fields(s)
	if len(parts) == 0 {
		return 0, 0, false
	}
	period := "PM"
	if len(parts) > 1 {
		period = parts[1]
	}

	clock := strings.Split(parts[0], ":")
	if len(clock) != 2 {
		return 0, 0, false
	}
	h, err := strconv.Atoi(clock[0])
	if err != nil {
		return 0, 0, false
	}
	m, err := strconv.Atoi(clock[1])
	if err != nil {
		return 0, 0, false
	}

	if period == "PM" && h != 12 {
		h += 12
	} else if period == "AM" && h == 12 {
		h = 0
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, 0, false
	}
	return h, m, true
}
