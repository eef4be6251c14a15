package external

import (
	"context"
	"time"

	"weatheractivity.app/internal/ports"
)

// ForecastProviderLoggingDecorator decorates forecast providers with structured logging
type ForecastProviderLoggingDecorator struct {
	provider ports.ForecastProvider
	logger   ports.Logger
}

// NewForecastProviderLoggingDecorator creates a new logging decorator for forecast providers
func NewForecastProviderLoggingDecorator(provider ports.ForecastProvider, logger ports.Logger) ports.ForecastProvider {
	return &ForecastProviderLoggingDecorator{
		provider: provider,
		logger:   logger,
	}
}

// GetForecast wraps the provider call with structured logging
func (d *ForecastProviderLoggingDecorator) GetForecast(ctx context.Context, query string) (*ports.ForecastReport, error) {
	providerName := d.provider.GetProviderName()

	d.logger.Info("Weather API request started",
		ports.F("provider", providerName),
		ports.F("query", query),
		ports.F("event", "request"))

	startTime := time.Now()
	report, err := d.provider.GetForecast(ctx, query)
	duration := time.Since(startTime)

	if err != nil {
		d.logger.Error("Weather API request failed",
			ports.F("provider", providerName),
			ports.F("query", query),
			ports.F("event", "error"),
			ports.F("duration_ms", duration.Milliseconds()),
			ports.F("error", err.Error()))
		return nil, err
	}

	d.logger.Info("Weather API request completed",
		ports.F("provider", providerName),
		ports.F("query", query),
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("location", report.LocationName),
		ports.F("temperature", report.Current.TemperatureC),
		ports.F("condition", report.Current.Condition.Text),
		ports.F("forecast_days", len(report.Days)))

	return report, nil
}

// GetProviderName returns the name of the wrapped provider with logging indication
func (d *ForecastProviderLoggingDecorator) GetProviderName() string {
	return "logged(" + d.provider.GetProviderName() + ")"
}

// ForecastProviderMetricsDecorator records latency and success of every provider call
type ForecastProviderMetricsDecorator struct {
	provider ports.ForecastProvider
	metrics  ports.LookupMetrics
}

// NewForecastProviderMetricsDecorator creates a new metrics decorator for forecast providers
func NewForecastProviderMetricsDecorator(provider ports.ForecastProvider, metrics ports.LookupMetrics) ports.ForecastProvider {
	return &ForecastProviderMetricsDecorator{
		provider: provider,
		metrics:  metrics,
	}
}

// GetForecast times the wrapped call
func (d *ForecastProviderMetricsDecorator) GetForecast(ctx context.Context, query string) (*ports.ForecastReport, error) {
	startTime := time.Now()
	report, err := d.provider.GetForecast(ctx, query)
	d.metrics.RecordProviderCall(d.provider.GetProviderName(), err == nil, time.Since(startTime))
	return report, err
}

// GetProviderName delegates to the wrapped provider
func (d *ForecastProviderMetricsDecorator) GetProviderName() string {
	return d.provider.GetProviderName()
}
