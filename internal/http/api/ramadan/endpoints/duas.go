package endpoints

import (
	"github.com/gin-gonic/gin"

	"github.com/iftarbd/ramadan-api/internal/duas"
	"github.com/iftarbd/ramadan-api/internal/http/api"
	"github.com/iftarbd/ramadan-api/internal/http/api/ramadan/packets"
)

func DuaModule() api.Module {
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/duas", listDuas)
		c.GET("/duas/random", randomDua)
	})
}

func listDuas(ctx *gin.Context) (any, *api.APIError) {
	all := duas.All()
	return packets.DuasResponse{
		Success: true,
		Count:   len(all),
		Duas:    all,
	}, nil
}

func randomDua(ctx *gin.Context) (any, *api.APIError) {
	return packets.DuaResponse{
		Success: true,
		Dua:     duas.Random(),
	}, nil
}
