package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/iftarbd/ramadan-api/internal/districts"
	"github.com/iftarbd/ramadan-api/internal/http/api"
	"github.com/iftarbd/ramadan-api/internal/http/api/ramadan/endpoints"
	"github.com/iftarbd/ramadan-api/internal/schedule"
)

// RegisterRoutes sets up all application routes
func RegisterRoutes(r *gin.Engine, registry *districts.Registry, svc *schedule.Service) {
	// CORS
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool { return true },
		AllowMethods: []string{
			"GET",
			"OPTIONS",
			"HEAD",
		},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Accept",
		},
		ExposeHeaders: []string{
			"Content-Length",
		},
		AllowCredentials: false,
	}))

	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api",
	},
		endpoints.HealthModule(registry),
		endpoints.DuaModule(),
		endpoints.DistrictModule(registry),
		endpoints.RamadanModule(svc, registry),
	)
}
