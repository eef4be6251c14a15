package weather

import (
	"context"
	stderrors "errors"
	"time"

	"weatheractivity.app/internal/ports"
	"weatheractivity.app/pkg/errors"
)

// User-facing messages returned by the gateway
const (
	MsgAPIKeyMissing    = "Weather API key is not configured"
	MsgLocationRequired = "Location or coordinates are required"
	MsgLocationNotFound = "Location not found. Please check the city name or zip code."
	MsgFetchFailed      = "Failed to fetch weather data"
	MsgInvalidResponse  = "Invalid response from weather API"
)

const lookupOutcomeSucceeded = "success"

// UseCase is the weather gateway: it validates a lookup, performs exactly one
// provider call and normalizes the result. It holds no mutable state.
type UseCase struct {
	provider ports.ForecastProvider
	config   ports.ConfigProvider
	logger   ports.Logger
	metrics  ports.LookupMetrics
}

type UseCaseDependencies struct {
	Provider ports.ForecastProvider
	Config   ports.ConfigProvider
	Logger   ports.Logger
	Metrics  ports.LookupMetrics
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Provider == nil {
		return nil, errors.NewValidationError("forecast provider is required")
	}
	if deps.Config == nil {
		return nil, errors.NewValidationError("config is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if deps.Metrics == nil {
		return nil, errors.NewValidationError("metrics is required")
	}

	return &UseCase{
		provider: deps.Provider,
		config:   deps.Config,
		logger:   deps.Logger,
		metrics:  deps.Metrics,
	}, nil
}

// Lookup resolves a request into a Snapshot. Errors are *errors.AppError:
// Configuration, Validation, NotFound, ExternalAPI or MalformedResponse.
func (uc *UseCase) Lookup(ctx context.Context, request LookupRequest) (*Snapshot, error) {
	start := time.Now()
	snapshot, err := uc.lookup(ctx, request)

	kind := "none"
	if request != nil {
		kind = request.Kind()
	}
	uc.metrics.RecordLookup(kind, lookupOutcome(err), time.Since(start))

	return snapshot, err
}

// CheckConfigured reports the configuration error a lookup would fail with.
// Callers that parse raw input run it first so a missing key wins over bad input.
func (uc *UseCase) CheckConfigured() error {
	if !uc.config.GetWeatherConfig().APIKeyConfigured {
		uc.logger.Error("Weather API key is not configured")
		return errors.NewConfigurationError(MsgAPIKeyMissing, nil)
	}
	return nil
}

func (uc *UseCase) lookup(ctx context.Context, request LookupRequest) (*Snapshot, error) {
	if err := uc.CheckConfigured(); err != nil {
		return nil, err
	}
	if request == nil {
		return nil, errors.NewValidationError(MsgLocationRequired)
	}

	query := request.ProviderQuery()
	uc.logger.Debug("Looking up weather",
		ports.F("kind", request.Kind()),
		ports.F("query", query))

	report, err := uc.provider.GetForecast(ctx, query)
	if err != nil {
		appErr := classifyProviderError(err)
		uc.logger.Error("Weather API error",
			ports.F("query", query),
			ports.F("type", appErr.Type.String()),
			ports.F("error", err))
		return nil, appErr
	}

	snapshot := normalize(report)
	uc.logger.Debug("Weather lookup succeeded",
		ports.F("query", query),
		ports.F("location", snapshot.Location),
		ports.F("forecast_days", len(snapshot.Forecast)))
	return snapshot, nil
}

// classifyProviderError maps the error variant of a provider call onto the gateway taxonomy
func classifyProviderError(err error) *errors.AppError {
	var failure *ports.ProviderFailure
	if stderrors.As(err, &failure) {
		switch {
		case failure.IsLocationNotFound():
			return errors.Wrap(errors.NotFoundError, MsgLocationNotFound, err)
		case failure.Message != "":
			return errors.NewExternalAPIError(failure.Message, err)
		default:
			return errors.NewExternalAPIError(MsgFetchFailed, err)
		}
	}

	if stderrors.Is(err, ports.ErrIncompleteReport) {
		return errors.NewMalformedResponseError(MsgInvalidResponse, err)
	}

	return errors.NewExternalAPIError(MsgFetchFailed, err)
}

func normalize(report *ports.ForecastReport) *Snapshot {
	forecast := make([]ForecastDay, 0, len(report.Days))
	for _, day := range report.Days {
		forecast = append(forecast, ForecastDay{
			Date:         ShortWeekday(day.Date),
			TemperatureC: day.AvgTemperatureC,
			Condition:    day.Condition.Text,
			Icon:         day.Condition.Icon,
		})
	}

	var pressure *float64
	if report.Current.PressureMb != nil {
		p := *report.Current.PressureMb
		pressure = &p
	}

	return &Snapshot{
		Location:     report.LocationName,
		TemperatureC: report.Current.TemperatureC,
		FeelsLikeC:   report.Current.FeelsLikeC,
		Condition:    report.Current.Condition.Text,
		Icon:         report.Current.Condition.Icon,
		WindSpeedKph: report.Current.WindKph,
		HumidityPct:  report.Current.Humidity,
		PressureMb:   pressure,
		Forecast:     forecast,
	}
}

// ShortWeekday formats a calendar date as an English three-letter weekday.
// The date's own calendar day is used, independent of the server time zone.
func ShortWeekday(date time.Time) string {
	return date.Weekday().String()[:3]
}

func lookupOutcome(err error) string {
	if err == nil {
		return lookupOutcomeSucceeded
	}
	switch {
	case errors.IsConfigurationError(err):
		return "configuration_error"
	case errors.IsValidationError(err):
		return "bad_request"
	case errors.IsNotFoundError(err):
		return "location_not_found"
	case errors.IsMalformedResponseError(err):
		return "malformed_response"
	default:
		return "provider_error"
	}
}
