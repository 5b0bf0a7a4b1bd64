package model

import "encoding/json"

// SchedulePayload mirrors the upstream time-service response. Day entries
// stay open maps because the upstream schema drifts; callers read fields
// with fail-soft defaults.
type SchedulePayload struct {
	Data struct {
		FastTime    []map[string]any `json:"FastTime"`
		FastTracker map[string]any   `json:"FastTracker"`
	} `json:"Data"`
}

// ParseSchedulePayload decodes a raw upstream response body.
func ParseSchedulePayload(raw []byte) (*SchedulePayload, error) {
	var p SchedulePayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// ApproxDay is a synthesized schedule entry for one date, produced when
// the upstream is unreachable. Field names follow the upstream's wire
// convention so approximate and authoritative calendars interleave.
type ApproxDay struct {
	Date        string `json:"Date"`
	IslamicDate string `json:"islamicDate"`
	BanglaDate  string `json:"banglaDate"`
	Day         string `json:"Day"`
	DayEn       string `json:"Day_en"`
	Suhoor      string `json:"Suhoor"`
	Iftaar      string `json:"Iftaar"`
	IsToday     bool   `json:"isToday"`
	Seheri      string `json:"seheri"`
	Iftar       string `json:"iftar"`
	// Ordinal is 1-based and only set on fully approximate calendars.
	Ordinal int `json:"day,omitempty"`
}
