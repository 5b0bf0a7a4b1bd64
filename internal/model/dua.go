package model

// Dua is a devotional quote served verbatim from a fixed list.
type Dua struct {
	Arabic    string `json:"arabic"`
	Bangla    string `json:"bangla"`
	English   string `json:"english"`
	Reference string `json:"reference"`
}
