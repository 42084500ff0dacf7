package mockwx

import "log/slog"

// Sample is one base-series period: precipitation over the period and the
// temperature at the resort's bottom elevation.
type Sample struct {
	PrecipitationMm float64
	TemperatureC    float64
}

// basePattern is a spring-skiing scenario: the bottom-elevation temperature
// warms across the 0°C line while a storm moves through.
var basePattern = []Sample{
	{PrecipitationMm: 0.0, TemperatureC: -1.0},
	{PrecipitationMm: 2.5, TemperatureC: 0.0},
	{PrecipitationMm: 5.0, TemperatureC: 1.5},
	{PrecipitationMm: 1.5, TemperatureC: 2.5},
	{PrecipitationMm: 0.0, TemperatureC: 1.0},
}

// Client is a synthetic stand-in for a real weather feed.
type Client struct {
	logger *slog.Logger
}

// NewClient creates a new synthetic weather client.
func NewClient(logger *slog.Logger) *Client {
	return &Client{
		logger: logger.With("component", "mockwx-client"),
	}
}

// GetBaseSeries returns the requested number of forecast periods, cycling the
// sample pattern. A non-positive period count yields an empty series.
func (c *Client) GetBaseSeries(periods int) ([]Sample, error) {
	if periods <= 0 {
		return []Sample{}, nil
	}

	series := make([]Sample, periods)
	for i := range series {
		series[i] = basePattern[i%len(basePattern)]
	}

	c.logger.Debug("generated base series", "periods", periods)

	return series, nil
}
