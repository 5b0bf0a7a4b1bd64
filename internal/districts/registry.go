// Package districts holds the static registry of Bangladesh districts
// and the lookup, search and proximity operations over it.
package districts

import (
	"math"
	"sort"
	"strings"

	"github.com/iftarbd/ramadan-api/internal/geo"
	"github.com/iftarbd/ramadan-api/internal/model"
)

// FallbackID is the district every unrecognized input resolves to.
const FallbackID = "dhaka"

// Registry serves the fixed district list. It is immutable after
// construction and safe for concurrent use.
type Registry struct {
	districts []model.District
	byID      map[string]model.District
}

// NewRegistry builds the registry from the built-in district table.
func NewRegistry() *Registry {
	byID := make(map[string]model.District, len(bangladeshDistricts))
	for _, d := range bangladeshDistricts {
		byID[d.ID] = d
	}
	return &Registry{districts: bangladeshDistricts, byID: byID}
}

// Validate lower-cases and trims the input and returns it if it names a
// known district, otherwise the fallback id. It never fails.
func (r *Registry) Validate(input string) string {
	id := strings.ToLower(strings.TrimSpace(input))
	if _, ok := r.byID[id]; ok {
		return id
	}
	return FallbackID
}

// ByID returns the district for an exact id match.
func (r *Registry) ByID(id string) (model.District, bool) {
	d, ok := r.byID[id]
	return d, ok
}

// Count returns the number of registered districts.
func (r *Registry) Count() int {
	return len(r.districts)
}

// List returns districts in registry order, restricted to a division
// when one is given.
func (r *Registry) List(division string) []model.District {
	out := make([]model.District, 0, len(r.districts))
	for _, d := range r.districts {
		if division != "" && d.Division != division {
			continue
		}
		out = append(out, d)
	}
	return out
}

// Divisions returns the deduplicated division names, sorted.
func (r *Registry) Divisions() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, d := range r.districts {
		if _, ok := seen[d.Division]; ok {
			continue
		}
		seen[d.Division] = struct{}{}
		out = append(out, d.Division)
	}
	sort.Strings(out)
	return out
}

// Search returns districts whose Bangla name, English name or division
// contains the query, case-insensitively. Callers must reject empty
// queries before calling.
func (r *Registry) Search(query string) []model.District {
	q := strings.ToLower(query)
	out := []model.District{}
	for _, d := range r.districts {
		if strings.Contains(strings.ToLower(d.Name), q) ||
			strings.Contains(strings.ToLower(d.NameEn), q) ||
			strings.Contains(strings.ToLower(d.Division), q) {
			out = append(out, d)
		}
	}
	return out
}

// Nearby returns every district within radiusKM of the query point,
// sorted by ascending haversine distance. Distances are rounded to two
// decimals.
func (r *Registry) Nearby(lat, lon, radiusKM float64) []model.DistrictDistance {
	out := []model.DistrictDistance{}
	for _, d := range r.districts {
		dist := geo.Haversine(lat, lon, d.Lat, d.Lon)
		if dist <= radiusKM {
			out = append(out, model.DistrictDistance{
				District: d,
				Distance: math.Round(dist*100) / 100,
			})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Distance < out[j].Distance })
	return out
}
