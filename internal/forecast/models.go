package forecast

import (
	"time"

	"powdercast/internal/resort"
)

// LayerLevel names the altitude band a reading belongs to.
type LayerLevel string

const (
	LevelTop LayerLevel = "Top"
	LevelMid LayerLevel = "Mid"
	LevelBot LayerLevel = "Bot"
)

// Layer is one altitude band's derived reading within a forecast point.
type Layer struct {
	Level           LayerLevel
	AltitudeMeters  int
	TemperatureC    float64
	PrecipitationMm float64
	Condition       SnowCondition
}

// ForecastPoint holds the Top, Mid and Bot layer readings for one instant.
type ForecastPoint struct {
	Timestamp time.Time
	Layers    []Layer
}

// ResortForecast is the full generated forecast for one resort.
type ResortForecast struct {
	Resort      resort.Resort
	GeneratedAt time.Time
	Points      []ForecastPoint
}
