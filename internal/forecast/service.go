package forecast

import (
	"fmt"
	"log/slog"
	"time"

	"powdercast/internal/config"
	"powdercast/internal/providers/mockwx"
	"powdercast/internal/resort"
)

// BaseSeriesProvider supplies the bottom-elevation temperature and
// precipitation series the generator derives layers from.
type BaseSeriesProvider interface {
	GetBaseSeries(periods int) ([]mockwx.Sample, error)
}

// Service produces elevation-stratified forecasts for resorts.
type Service interface {
	GetForecast(rst resort.Resort) (*ResortForecast, error)
}

const (
	minForecastPeriods = 1
	maxForecastPeriods = 12
)

type forecastService struct {
	provider BaseSeriesProvider
	cfg      *config.Config
	logger   *slog.Logger
}

// NewForecastService creates a forecast service backed by the synthetic
// weather feed.
func NewForecastService(cfg *config.Config, logger *slog.Logger) Service {
	return NewForecastServiceWithProvider(mockwx.NewClient(logger), cfg, logger)
}

// NewForecastServiceWithProvider creates a forecast service with a custom
// base series provider. This is useful for testing with mock providers.
func NewForecastServiceWithProvider(
	provider BaseSeriesProvider,
	cfg *config.Config,
	logger *slog.Logger,
) Service {
	return &forecastService{
		provider: provider,
		cfg:      cfg,
		logger:   logger.With("component", "forecast-service"),
	}
}

// GetForecast fetches the base series and derives the layered forecast,
// anchored at the current UTC time.
func (s *forecastService) GetForecast(rst resort.Resort) (*ResortForecast, error) {
	periods := clampPeriods(s.cfg.App.ForecastPeriods)

	series, err := s.provider.GetBaseSeries(periods)
	if err != nil {
		s.logger.Error("failed to get base series",
			"resort_id", rst.Id,
			"error", err,
		)
		return nil, fmt.Errorf("failed to get base series: %w", err)
	}

	anchor := time.Now().UTC()
	points := Generate(rst, series, anchor)

	s.logger.Debug("generated forecast",
		"resort_id", rst.Id,
		"periods", len(points),
		"anchor", anchor,
	)

	return &ResortForecast{
		Resort:      rst,
		GeneratedAt: anchor,
		Points:      points,
	}, nil
}

// clampPeriods bounds the configured period count to 1..12.
func clampPeriods(periods int) int {
	if periods < minForecastPeriods {
		return minForecastPeriods
	}
	if periods > maxForecastPeriods {
		return maxForecastPeriods
	}
	return periods
}
