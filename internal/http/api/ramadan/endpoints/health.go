package endpoints

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/iftarbd/ramadan-api/internal/districts"
	"github.com/iftarbd/ramadan-api/internal/http/api"
	"github.com/iftarbd/ramadan-api/internal/http/api/ramadan/packets"
)

const (
	serviceName    = "Iftar Time API"
	serviceVersion = "1.0.0"
)

type HealthController struct {
	registry *districts.Registry
}

func HealthModule(registry *districts.Registry) api.Module {
	ctl := &HealthController{registry: registry}
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/health", ctl.health)
	})
}

func (h *HealthController) health(ctx *gin.Context) (any, *api.APIError) {
	return packets.HealthResponse{
		Status:         "healthy",
		Timestamp:      time.Now().Format(time.RFC3339),
		Service:        serviceName,
		Version:        serviceVersion,
		DistrictsCount: h.registry.Count(),
	}, nil
}
