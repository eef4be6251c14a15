package ports

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ProviderCodeLocationNotFound is the provider error code for an unknown place
const ProviderCodeLocationNotFound = 1006

// ErrIncompleteReport is returned when a response carries no error envelope but
// lacks the current, location or forecast section.
var ErrIncompleteReport = errors.New("provider response is missing current, location or forecast data")

// Condition is a textual sky condition with its icon URL as sent by the provider
type Condition struct {
	Text string
	Icon string
}

// CurrentConditions holds the provider's current reading. PressureMb is nil when
// the provider omitted it.
type CurrentConditions struct {
	TemperatureC float64
	FeelsLikeC   float64
	Condition    Condition
	WindKph      float64
	Humidity     float64
	PressureMb   *float64
}

// ForecastDayReport is one day of the provider forecast
type ForecastDayReport struct {
	Date            time.Time
	AvgTemperatureC float64
	Condition       Condition
}

// ForecastReport is the success variant of a provider response
type ForecastReport struct {
	LocationName string
	Country      string
	Current      CurrentConditions
	Days         []ForecastDayReport
}

// ProviderFailure is the error variant of a provider response: either a non-2xx
// status or an error envelope inside the body. Code is zero when the body had none.
type ProviderFailure struct {
	StatusCode int
	Code       int
	Message    string
}

func (f *ProviderFailure) Error() string {
	if f.Code != 0 {
		return fmt.Sprintf("provider error %d (status %d): %s", f.Code, f.StatusCode, f.Message)
	}
	return fmt.Sprintf("provider returned status %d", f.StatusCode)
}

// IsLocationNotFound reports whether the provider could not resolve the query
func (f *ProviderFailure) IsLocationNotFound() bool {
	return f.Code == ProviderCodeLocationNotFound
}

// ForecastProvider performs a single forecast request for a provider query string
// ("London", "SW1", "51.5,-0.12").
type ForecastProvider interface {
	GetForecast(ctx context.Context, query string) (*ForecastReport, error)
	GetProviderName() string
}
