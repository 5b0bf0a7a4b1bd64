package endpoints

import (
	"github.com/gin-gonic/gin"

	"github.com/iftarbd/ramadan-api/internal/districts"
	"github.com/iftarbd/ramadan-api/internal/http/api"
	"github.com/iftarbd/ramadan-api/internal/http/api/ramadan/packets"
)

type DistrictController struct {
	registry *districts.Registry
}

func NewDistrictController(registry *districts.Registry) *DistrictController {
	return &DistrictController{registry: registry}
}

func DistrictModule(registry *districts.Registry) api.Module {
	ctl := NewDistrictController(registry)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/districts", ctl.listDistricts)
		c.GET("/divisions", ctl.listDivisions)
	})
}

func (d *DistrictController) listDistricts(ctx *gin.Context) (any, *api.APIError) {
	language := ctx.DefaultQuery("lang", "bn")
	division := ctx.Query("division")

	list := d.registry.List(division)
	items := make([]packets.DistrictItem, 0, len(list))
	for _, district := range list {
		name := district.Name
		if language != "bn" {
			name = district.NameEn
		}
		items = append(items, packets.DistrictItem{
			ID:       district.ID,
			Name:     name,
			Division: district.Division,
			Lat:      district.Lat,
			Lon:      district.Lon,
		})
	}

	return packets.DistrictsResponse{
		Success:   true,
		Count:     len(items),
		Districts: items,
	}, nil
}

func (d *DistrictController) listDivisions(ctx *gin.Context) (any, *api.APIError) {
	divisions := d.registry.Divisions()
	return packets.DivisionsResponse{
		Success:   true,
		Count:     len(divisions),
		Divisions: divisions,
	}, nil
}
