package forecast

import (
	"math"
	"time"

	"powdercast/internal/providers/mockwx"
	"powdercast/internal/resort"
)

const (
	// LapseRatePer1000m is the assumed temperature drop in °C per 1000 m of
	// altitude gain.
	LapseRatePer1000m = 6.5

	// PeriodInterval is the spacing between consecutive forecast points.
	PeriodInterval = 3 * time.Hour
)

// Generate derives one ForecastPoint per base sample, timestamped at
// anchor + i * PeriodInterval. The bottom-band temperature comes straight
// from the sample; mid and top are cooled by the lapse rate scaled to each
// band's altitude delta above the base, then rounded to one decimal.
// Layers are ordered Top, Mid, Bot.
func Generate(rst resort.Resort, series []mockwx.Sample, anchor time.Time) []ForecastPoint {
	points := make([]ForecastPoint, 0, len(series))

	for i, sample := range series {
		tBot := sample.TemperatureC
		tMid := roundTenth(tBot - lapseCooling(rst.Altitudes.Mid-rst.Altitudes.Bot))
		tTop := roundTenth(tBot - lapseCooling(rst.Altitudes.Top-rst.Altitudes.Bot))

		layers := []Layer{
			{Level: LevelTop, AltitudeMeters: rst.Altitudes.Top, TemperatureC: tTop},
			{Level: LevelMid, AltitudeMeters: rst.Altitudes.Mid, TemperatureC: tMid},
			{Level: LevelBot, AltitudeMeters: rst.Altitudes.Bot, TemperatureC: tBot},
		}
		for j := range layers {
			layers[j].PrecipitationMm = sample.PrecipitationMm
			layers[j].Condition = Classify(layers[j].TemperatureC, sample.PrecipitationMm)
		}

		points = append(points, ForecastPoint{
			Timestamp: anchor.Add(time.Duration(i) * PeriodInterval),
			Layers:    layers,
		})
	}

	return points
}

// lapseCooling returns the temperature drop for a band deltaMeters above the
// base elevation.
func lapseCooling(deltaMeters int) float64 {
	return float64(deltaMeters) / 1000 * LapseRatePer1000m
}

// roundTenth rounds to one decimal place, halves away from zero.
func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
