package endpoints

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/iftarbd/ramadan-api/internal/districts"
	"github.com/iftarbd/ramadan-api/internal/http/api"
	"github.com/iftarbd/ramadan-api/internal/http/api/ramadan/packets"
	"github.com/iftarbd/ramadan-api/internal/schedule"
	"github.com/iftarbd/ramadan-api/internal/upstream"
)

type RamadanController struct {
	svc      *schedule.Service
	registry *districts.Registry
}

func NewRamadanController(svc *schedule.Service, registry *districts.Registry) *RamadanController {
	return &RamadanController{svc: svc, registry: registry}
}

func RamadanModule(svc *schedule.Service, registry *districts.Registry) api.Module {
	ctl := NewRamadanController(svc, registry)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/ramadan/today", ctl.today)
		c.GET("/ramadan/today/:district_id", ctl.today)
		c.GET("/ramadan/calendar", ctl.calendar)
		c.GET("/ramadan/calendar/:district_id", ctl.calendar)
		c.GET("/ramadan/countdown", ctl.countdown)
		c.GET("/ramadan/countdown/:district_id", ctl.countdown)
		c.GET("/ramadan/search", ctl.search)
		c.GET("/ramadan/nearby", ctl.nearby)
	})
}

// districtParam reads the optional :district_id path segment, defaulting
// to the fallback district.
func districtParam(ctx *gin.Context) string {
	if id := ctx.Param("district_id"); id != "" {
		return id
	}
	return districts.FallbackID
}

func (r *RamadanController) today(ctx *gin.Context) (any, *api.APIError) {
	res, err := r.svc.Today(ctx.Request.Context(), districtParam(ctx))
	if err != nil {
		return nil, classify(err)
	}

	if res.Approximate {
		day := res.ApproxDay
		return packets.ApproxTodayResponse{
			Success:  true,
			Date:     res.Date,
			District: res.District,
			Data: packets.ApproxTodayData{
				Suhoor: day.Suhoor,
				Iftaar: day.Iftaar,
				Seheri: day.Seheri,
				Iftar:  day.Iftar,
				Day:    day.Day,
				Date:   day.Date,
			},
			IsApproximate: true,
			Message:       res.Message,
		}, nil
	}

	return packets.TodayResponse{
		Success:  true,
		Date:     res.Date,
		District: res.District,
		Data: packets.TodayData{
			Suhoor:      res.Suhoor,
			Iftaar:      res.Iftaar,
			Date:        res.DisplayDate,
			Day:         res.Day,
			IslamicDate: res.IslamicDate,
		},
		FastTracker:   res.FastTracker,
		IsApproximate: false,
	}, nil
}

func (r *RamadanController) calendar(ctx *gin.Context) (any, *api.APIError) {
	startDate := ctx.Query("start_date")
	res, err := r.svc.Calendar(ctx.Request.Context(), districtParam(ctx), startDate)
	if err != nil {
		return nil, classify(err)
	}

	return packets.CalendarResponse{
		Success:       true,
		District:      res.District,
		StartDate:     res.StartDate,
		TotalDays:     res.TotalDays,
		Calendar:      res.Days,
		IsApproximate: res.Approximate,
		Message:       res.Message,
	}, nil
}

func (r *RamadanController) countdown(ctx *gin.Context) (any, *api.APIError) {
	res, err := r.svc.Countdown(ctx.Request.Context(), districtParam(ctx))
	if err != nil {
		return nil, classify(err)
	}

	return packets.CountdownResponse{
		Success:   true,
		District:  res.District,
		Date:      res.Date,
		IftarTime: res.IftarTime,
		Countdown: packets.Countdown{
			Hours:        res.Hours,
			Minutes:      res.Minutes,
			Seconds:      res.Seconds,
			TotalSeconds: res.TotalSeconds,
			Formatted:    res.Formatted,
		},
		Message: res.Message,
	}, nil
}

func (r *RamadanController) search(ctx *gin.Context) (any, *api.APIError) {
	query := strings.ToLower(strings.TrimSpace(ctx.Query("q")))
	if query == "" {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "Search query required"}
	}

	results := r.registry.Search(query)
	return packets.SearchResponse{
		Success: true,
		Query:   query,
		Count:   len(results),
		Results: results,
	}, nil
}

func (r *RamadanController) nearby(ctx *gin.Context) (any, *api.APIError) {
	lat, err := parseFloatDefault(ctx.Query("lat"), 23.8103)
	if err != nil {
		return nil, nearbyInputError(err)
	}
	lon, err := parseFloatDefault(ctx.Query("lon"), 90.4125)
	if err != nil {
		return nil, nearbyInputError(err)
	}
	radius, err := parseFloatDefault(ctx.Query("radius"), 100)
	if err != nil {
		return nil, nearbyInputError(err)
	}

	matches := r.registry.Nearby(lat, lon, radius)
	return packets.NearbyResponse{
		Success:   true,
		Lat:       lat,
		Lon:       lon,
		Radius:    radius,
		Count:     len(matches),
		Districts: matches,
	}, nil
}

func nearbyInputError(err error) *api.APIError {
	return &api.APIError{
		Code:    http.StatusBadRequest,
		Message: "Error finding nearby districts",
		Err:     err,
	}
}

func parseFloatDefault(raw string, def float64) (float64, error) {
	if raw == "" {
		return def, nil
	}
	return strconv.ParseFloat(raw, 64)
}

// classify maps service failures to response codes: upstream outages
// surfaced without a fallback become 503, the rest 500.
func classify(err error) *api.APIError {
	if errors.Is(err, upstream.ErrUnavailable) {
		log.Error().Err(err).Msg("upstream request error")
		return &api.APIError{
			Code:    http.StatusServiceUnavailable,
			Message: "Failed to fetch data from external API",
			Err:     err,
		}
	}
	log.Error().Err(err).Msg("internal server error")
	return &api.APIError{
		Code:    http.StatusInternalServerError,
		Message: "Internal server error",
		Err:     err,
	}
}
