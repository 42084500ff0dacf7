package main

import (
	"errors"
	"net/http"
	"time"

	"powdercast/internal/forecast"
	"powdercast/internal/metrics"
	"powdercast/internal/resort"

	"github.com/gin-gonic/gin"
)

// LayerResponse is one altitude band's reading within a forecast period.
type LayerResponse struct {
	Level         string  `json:"level" example:"Top"`
	Altitude      int     `json:"altitude" example:"2730"`     // meters
	Temperature   float64 `json:"temperature" example:"-7"`    // °C
	Precipitation float64 `json:"precipitation" example:"2.5"` // mm
	Condition     string  `json:"condition" example:"Powder"`
	Icon          string  `json:"icon" example:"❄️"`
}

// ForecastEntryResponse groups the three layers for one timestamp.
type ForecastEntryResponse struct {
	Timestamp string          `json:"timestamp" example:"2026-03-14T09:00:00Z"`
	Layers    []LayerResponse `json:"layers"`
}

// CoordinatesResponse is a lat/lon pair in decimal degrees.
type CoordinatesResponse struct {
	Lat float64 `json:"lat" example:"51.1164"`
	Lon float64 `json:"lon" example:"-115.7631"`
}

// WeatherResponse is the full forecast payload for a resort.
type WeatherResponse struct {
	ResortName  string                  `json:"resort_name" example:"Sunshine Village"`
	Location    string                  `json:"location" example:"Banff, Canada"`
	Coordinates CoordinatesResponse     `json:"coordinates"`
	Forecasts   []ForecastEntryResponse `json:"forecasts"`
}

// handleGetWeather godoc
// @Summary Get resort weather forecast
// @Description Retrieve the elevation-stratified forecast for a resort: one entry per 3-hour period, with Top/Mid/Bot layer temperatures derived from the base series and classified into snow conditions
// @Tags weather
// @Produce json
// @Param resort_id path string true "Resort identifier" example(sunshine_village)
// @Success 200 {object} WeatherResponse
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /weather/{resort_id} [get]
func (app *App) handleGetWeather(c *gin.Context) {
	resortId := c.Param("resort_id")

	// Resolve the resort before touching the forecast pipeline
	rst, err := app.catalog.Get(resortId)
	if err != nil {
		if errors.Is(err, resort.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "resort not found"})
			return
		}
		app.logger.Error("failed to resolve resort", "resort_id", resortId, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve resort"})
		return
	}

	fc, err := app.forecastService.GetForecast(rst)
	if err != nil {
		app.logger.Error("failed to generate forecast", "resort_id", resortId, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate forecast"})
		return
	}

	metrics.RecordForecastGenerated(rst.Id)

	c.JSON(http.StatusOK, mapResortForecast(fc))
}

// mapResortForecast translates the domain forecast into the wire payload.
func mapResortForecast(fc *forecast.ResortForecast) WeatherResponse {
	entries := make([]ForecastEntryResponse, 0, len(fc.Points))
	for _, point := range fc.Points {
		layers := make([]LayerResponse, 0, len(point.Layers))
		for _, layer := range point.Layers {
			layers = append(layers, LayerResponse{
				Level:         string(layer.Level),
				Altitude:      layer.AltitudeMeters,
				Temperature:   layer.TemperatureC,
				Precipitation: layer.PrecipitationMm,
				Condition:     layer.Condition.String(),
				Icon:          layer.Condition.Icon(),
			})
		}

		entries = append(entries, ForecastEntryResponse{
			Timestamp: point.Timestamp.Format(time.RFC3339),
			Layers:    layers,
		})
	}

	return WeatherResponse{
		ResortName: fc.Resort.Name,
		Location:   fc.Resort.Location,
		Coordinates: CoordinatesResponse{
			Lat: fc.Resort.Coordinates.Latitude,
			Lon: fc.Resort.Coordinates.Longitude,
		},
		Forecasts: entries,
	}
}
