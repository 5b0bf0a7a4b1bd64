package model

// District is one of the 64 administrative districts schedules are served
// for. The registry loads these once at startup; they are never mutated.
type District struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	NameEn   string  `json:"name_en"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
	Division string  `json:"division"`
}

// DistrictDistance annotates a District with the great-circle distance
// in kilometres from a query point.
type DistrictDistance struct {
	District
	Distance float64 `json:"distance"`
}
