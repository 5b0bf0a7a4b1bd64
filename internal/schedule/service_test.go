package schedule

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iftarbd/ramadan-api/internal/cache"
	"github.com/iftarbd/ramadan-api/internal/districts"
	"github.com/iftarbd/ramadan-api/internal/model"
	"github.com/iftarbd/ramadan-api/internal/upstream"
)

type fakeFetcher struct {
	payload []byte
	err     error
	calls   int
}

func (f *fakeFetcher) Fetch(ctx context.Context, date, districtID string) ([]byte, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.payload, nil
}

func payloadWithDays(n int, todayIndex int) []byte {
	days := make([]map[string]any, 0, n)
	for i := 0; i < n; i++ {
		days = append(days, map[string]any{
			"Suhoor":      "5:05 AM",
			"Iftaar":      "6:02 PM",
			"Date":        fmt.Sprintf("03 %02d", i+2),
			"Day":         "সোমবার",
			"islamicDate": fmt.Sprintf("%d রমজান, ১৪৪৬ হিজরী", i+1),
			"isToday":     i == todayIndex,
		})
	}
	raw, _ := json.Marshal(map[string]any{
		"Data": map[string]any{
			"FastTime":    days,
			"FastTracker": map[string]any{"Suhoor": "5:06 AM", "Iftaar": "6:01 PM"},
		},
	})
	return raw
}

func newTestService(f Fetcher) *Service {
	svc := NewService(districts.NewRegistry(), cache.NewMemory(time.Hour, 200), f)
	svc.now = func() time.Time {
		return time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	}
	return svc
}

func TestTodayUsesMarkedUpstreamDay(t *testing.T) {
	f := &fakeFetcher{payload: payloadWithDays(30, 3)}
	svc := newTestService(f)

	res, err := svc.Today(context.Background(), "sylhet")
	require.NoError(t, err)

	assert.False(t, res.Approximate)
	assert.Equal(t, "sylhet", res.District.ID)
	assert.Equal(t, "5:05 AM", res.Suhoor)
	assert.Equal(t, "6:02 PM", res.Iftaar)
	assert.Equal(t, "4 রমজান, ১৪৪৬ হিজরী", res.IslamicDate)
	assert.Equal(t, "2026-03-02", res.Date)
	assert.NotNil(t, res.FastTracker)
}

func TestTodayFallsBackToFastTracker(t *testing.T) {
	f := &fakeFetcher{payload: payloadWithDays(5, -1)}
	svc := newTestService(f)

	res, err := svc.Today(context.Background(), "dhaka")
	require.NoError(t, err)

	assert.False(t, res.Approximate)
	assert.Equal(t, "5:06 AM", res.Suhoor)
	assert.Equal(t, "6:01 PM", res.Iftaar)
}

func TestTodayDefaultsWhenPayloadEmpty(t *testing.T) {
	f := &fakeFetcher{payload: []byte(`{"Data":{}}`)}
	svc := newTestService(f)

	res, err := svc.Today(context.Background(), "dhaka")
	require.NoError(t, err)

	assert.False(t, res.Approximate)
	assert.Equal(t, "5:11 AM", res.Suhoor)
	assert.Equal(t, "5:58 PM", res.Iftaar)
	assert.Equal(t, "03-02", res.DisplayDate)
}

func TestTodayApproximatesOnUpstreamFailure(t *testing.T) {
	f := &fakeFetcher{err: errors.Wrap(upstream.ErrUnavailable, "boom")}
	svc := newTestService(f)

	res, err := svc.Today(context.Background(), "sylhet")
	require.NoError(t, err)

	assert.True(t, res.Approximate)
	require.NotNil(t, res.ApproxDay)
	assert.NotEmpty(t, res.ApproxDay.Suhoor)
	assert.NotEmpty(t, res.ApproxDay.Iftaar)
	assert.True(t, res.ApproxDay.IsToday)
	assert.Equal(t, "Using approximate calculation (API unavailable)", res.Message)
}

func TestTodayUnknownDistrictNormalizesToDhaka(t *testing.T) {
	f := &fakeFetcher{payload: payloadWithDays(30, 0)}
	svc := newTestService(f)

	res, err := svc.Today(context.Background(), "nowhere")
	require.NoError(t, err)
	assert.Equal(t, "dhaka", res.District.ID)
}

func TestTodaySecondCallServedFromCache(t *testing.T) {
	f := &fakeFetcher{payload: payloadWithDays(30, 0)}
	svc := newTestService(f)

	_, err := svc.Today(context.Background(), "dhaka")
	require.NoError(t, err)
	_, err = svc.Today(context.Background(), "dhaka")
	require.NoError(t, err)

	assert.Equal(t, 1, f.calls)
}

func TestCalendarAlwaysThirtyDays(t *testing.T) {
	for _, upstreamDays := range []int{0, 5, 30, 40} {
		f := &fakeFetcher{payload: payloadWithDays(upstreamDays, -1)}
		svc := newTestService(f)

		res, err := svc.Calendar(context.Background(), "dhaka", "2026-03-02")
		require.NoError(t, err)

		assert.Len(t, res.Days, 30, "upstream returned %d days", upstreamDays)
		assert.False(t, res.Approximate)
		if upstreamDays > 30 {
			assert.Equal(t, upstreamDays, res.TotalDays)
		} else {
			assert.Equal(t, 30, res.TotalDays)
		}
	}
}

func TestCalendarPadsTrailingDatesWithApproximation(t *testing.T) {
	f := &fakeFetcher{payload: payloadWithDays(5, -1)}
	svc := newTestService(f)

	res, err := svc.Calendar(context.Background(), "dhaka", "2026-03-02")
	require.NoError(t, err)
	require.Len(t, res.Days, 30)

	// First five entries come from the upstream payload.
	_, isMap := res.Days[0].(map[string]any)
	assert.True(t, isMap)

	sixth, isApprox := res.Days[5].(model.ApproxDay)
	require.True(t, isApprox)
	// Padding continues from start_date + 5 days.
	assert.Equal(t, "03 07", sixth.Date)
}

func TestCalendarFullyApproximateOnFailure(t *testing.T) {
	f := &fakeFetcher{err: errors.Wrap(upstream.ErrUnavailable, "down")}
	svc := newTestService(f)

	res, err := svc.Calendar(context.Background(), "sylhet", "2026-03-02")
	require.NoError(t, err)

	assert.True(t, res.Approximate)
	assert.Equal(t, 30, res.TotalDays)
	require.Len(t, res.Days, 30)
	first := res.Days[0].(model.ApproxDay)
	last := res.Days[29].(model.ApproxDay)
	assert.Equal(t, 1, first.Ordinal)
	assert.Equal(t, 30, last.Ordinal)
	assert.Equal(t, "03 31", last.Date)
}

func TestCalendarInvalidStartDateNormalizesToToday(t *testing.T) {
	f := &fakeFetcher{err: errors.Wrap(upstream.ErrUnavailable, "down")}
	svc := newTestService(f)

	res, err := svc.Calendar(context.Background(), "dhaka", "not-a-date")
	require.NoError(t, err)
	assert.Equal(t, "2026-03-02", res.StartDate)
}

func TestCountdownFutureIftarExactSeconds(t *testing.T) {
	// Clock is 10:00:00; iftar at 18:02:00 is 8h2m0s away.
	f := &fakeFetcher{payload: payloadWithDays(30, 0)}
	svc := newTestService(f)

	res, err := svc.Countdown(context.Background(), "dhaka")
	require.NoError(t, err)

	assert.Equal(t, "6:02 PM", res.IftarTime)
	assert.Equal(t, 8*3600+2*60, res.TotalSeconds)
	assert.Equal(t, 8, res.Hours)
	assert.Equal(t, 2, res.Minutes)
	assert.Equal(t, 0, res.Seconds)
	assert.Equal(t, "08:02:00", res.Formatted)
	assert.Equal(t, "Time remaining until Iftar", res.Message)
}

func TestCountdownPastIftarRollsToTomorrow(t *testing.T) {
	f := &fakeFetcher{payload: payloadWithDays(30, 0)}
	svc := newTestService(f)
	svc.now = func() time.Time {
		return time.Date(2026, 3, 2, 20, 0, 0, 0, time.UTC)
	}

	res, err := svc.Countdown(context.Background(), "dhaka")
	require.NoError(t, err)

	// 20:00 today to 18:02 tomorrow.
	assert.Equal(t, 22*3600+2*60, res.TotalSeconds)
	assert.GreaterOrEqual(t, res.TotalSeconds, 0)
}

func TestCountdownMalformedIftarReturnsDefault(t *testing.T) {
	raw, _ := json.Marshal(map[string]any{
		"Data": map[string]any{
			"FastTime": []map[string]any{{
				"isToday": true,
				"Iftaar":  "garbage",
			}},
		},
	})
	f := &fakeFetcher{payload: raw}
	svc := newTestService(f)

	res, err := svc.Countdown(context.Background(), "dhaka")
	require.NoError(t, err)

	assert.Equal(t, 30600, res.TotalSeconds)
	assert.Equal(t, "08:30:00", res.Formatted)
	assert.Equal(t, "Approximate countdown", res.Message)
}
