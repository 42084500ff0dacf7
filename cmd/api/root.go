package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RootResponse describes the API for clients hitting the bare host.
type RootResponse struct {
	Message   string   `json:"message" example:"Powdercast API"`
	Version   string   `json:"version" example:"1.0.0"`
	Endpoints []string `json:"endpoints"`
}

// handleRoot godoc
// @Summary API index
// @Description List the available endpoints
// @Tags meta
// @Produce json
// @Success 200 {object} RootResponse
// @Router / [get]
func (app *App) handleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, RootResponse{
		Message: "Powdercast API",
		Version: "1.0.0",
		Endpoints: []string{
			"/resorts - List all resorts",
			"/weather/{resort_id} - Get weather forecast for a resort",
		},
	})
}
