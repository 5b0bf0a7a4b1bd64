package packets

import "github.com/iftarbd/ramadan-api/internal/model"

type HealthResponse struct {
	Status         string `json:"status"`
	Timestamp      string `json:"timestamp"`
	Service        string `json:"service"`
	Version        string `json:"version"`
	DistrictsCount int    `json:"districts_count"`
}

type DuaResponse struct {
	Success bool      `json:"success"`
	Dua     model.Dua `json:"dua"`
}

type DuasResponse struct {
	Success bool        `json:"success"`
	Count   int         `json:"count"`
	Duas    []model.Dua `json:"duas"`
}

// DistrictItem is the language-projected district listing entry.
type DistrictItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Division string  `json:"division"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
}

type DistrictsResponse struct {
	Success   bool           `json:"success"`
	Count     int            `json:"count"`
	Districts []DistrictItem `json:"districts"`
}

type DivisionsResponse struct {
	Success   bool     `json:"success"`
	Count     int      `json:"count"`
	Divisions []string `json:"divisions"`
}

// TodayData is the authoritative day block, field names as published by
// the upstream.
type TodayData struct {
	Suhoor      string `json:"Suhoor"`
	Iftaar      string `json:"Iftaar"`
	Date        string `json:"Date"`
	Day         string `json:"Day"`
	IslamicDate string `json:"islamicDate"`
}

type TodayResponse struct {
	Success       bool           `json:"success"`
	Date          string         `json:"date"`
	District      model.District `json:"district"`
	Data          TodayData      `json:"data"`
	FastTracker   map[string]any `json:"fast_tracker"`
	IsApproximate bool           `json:"is_approximate"`
}

// ApproxTodayData is the shorter day block the approximate path returns.
type ApproxTodayData struct {
	Suhoor string `json:"Suhoor"`
	Iftaar string `json:"Iftaar"`
	Seheri string `json:"seheri"`
	Iftar  string `json:"iftar"`
	Day    string `json:"Day"`
	Date   string `json:"Date"`
}

type ApproxTodayResponse struct {
	Success       bool            `json:"success"`
	Date          string          `json:"date"`
	District      model.District  `json:"district"`
	Data          ApproxTodayData `json:"data"`
	IsApproximate bool            `json:"is_approximate"`
	Message       string          `json:"message"`
}

type CalendarResponse struct {
	Success       bool           `json:"success"`
	District      model.District `json:"district"`
	StartDate     string         `json:"start_date"`
	TotalDays     int            `json:"total_days"`
	Calendar      []any          `json:"calendar"`
	IsApproximate bool           `json:"is_approximate"`
	Message       string         `json:"message,omitempty"`
}

type Countdown struct {
	Hours        int    `json:"hours"`
	Minutes      int    `json:"minutes"`
	Seconds      int    `json:"seconds"`
	TotalSeconds int    `json:"total_seconds"`
	Formatted    string `json:"formatted"`
}

type CountdownResponse struct {
	Success   bool           `json:"success"`
	District  model.District `json:"district"`
	Date      string         `json:"date"`
	IftarTime string         `json:"iftar_time"`
	Countdown Countdown      `json:"countdown"`
	Message   string         `json:"message"`
}

type SearchResponse struct {
	Success bool             `json:"success"`
	Query   string           `json:"query"`
	Count   int              `json:"count"`
	Results []model.District `json:"results"`
}

type NearbyResponse struct {
	Success   bool                     `json:"success"`
	Lat       float64                  `json:"lat"`
	Lon       float64                  `json:"lon"`
	Radius    float64                  `json:"radius"`
	Count     int                      `json:"count"`
	Districts []model.DistrictDistance `json:"districts"`
}
