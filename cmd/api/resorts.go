package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ResortSummary is one catalog entry in the listing.
type ResortSummary struct {
	Id       string `json:"id" example:"sunshine_village"`
	Name     string `json:"name" example:"Sunshine Village"`
	Location string `json:"location" example:"Banff, Canada"`
}

// ResortsResponse wraps the resort listing.
type ResortsResponse struct {
	Resorts []ResortSummary `json:"resorts"`
}

// handleListResorts godoc
// @Summary List resorts
// @Description List all resorts available for forecasts, in catalog order
// @Tags resorts
// @Produce json
// @Success 200 {object} ResortsResponse
// @Router /resorts [get]
func (app *App) handleListResorts(c *gin.Context) {
	list := app.catalog.List()

	resorts := make([]ResortSummary, 0, len(list))
	for _, r := range list {
		resorts = append(resorts, ResortSummary{
			Id:       r.Id,
			Name:     r.Name,
			Location: r.Location,
		})
	}

	c.JSON(http.StatusOK, ResortsResponse{Resorts: resorts})
}
