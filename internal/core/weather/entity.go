package weather

import (
	"fmt"
	"strconv"
	"strings"

	"weatheractivity.app/pkg/errors"
	"weatheractivity.app/pkg/validation"
)

const (
	// LookupKindName marks a place-name or postal-code lookup
	LookupKindName = "name"
	// LookupKindCoordinates marks a latitude/longitude lookup
	LookupKindCoordinates = "coordinates"
)

// LookupRequest identifies the place to look up. It is either ByName or ByCoordinates;
// a nil LookupRequest means neither was supplied.
type LookupRequest interface {
	Kind() string
	ProviderQuery() string
}

// ByName looks up a place name or postal code
type ByName struct {
	Query string
}

// Kind implements LookupRequest
func (r ByName) Kind() string {
	return LookupKindName
}

// ProviderQuery returns the query as typed; URL encoding happens at the transport.
func (r ByName) ProviderQuery() string {
	return r.Query
}

// ByCoordinates looks up a latitude/longitude pair. Ranges are not validated.
type ByCoordinates struct {
	Latitude  float64
	Longitude float64
}

// Kind implements LookupRequest
func (r ByCoordinates) Kind() string {
	return LookupKindCoordinates
}

// ProviderQuery serializes the pair as "{lat},{lon}"
func (r ByCoordinates) ProviderQuery() string {
	return formatCoordinate(r.Latitude) + "," + formatCoordinate(r.Longitude)
}

func formatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ParseLookupRequest builds a request from raw query parameters. A non-blank
// location wins over coordinates. It returns a nil request when neither form is present.
func ParseLookupRequest(location, lat, lon string) (LookupRequest, error) {
	if name, ok := validation.TrimAndValidate(location); ok {
		return ByName{Query: name}, nil
	}

	if !validation.IsNotEmpty(lat) || !validation.IsNotEmpty(lon) {
		return nil, nil
	}

	latitude, ok := validation.ParseCoordinate(lat)
	if !ok {
		return nil, errors.NewValidationError(fmt.Sprintf("Invalid latitude: %s", strings.TrimSpace(lat)))
	}
	longitude, ok := validation.ParseCoordinate(lon)
	if !ok {
		return nil, errors.NewValidationError(fmt.Sprintf("Invalid longitude: %s", strings.TrimSpace(lon)))
	}

	return ByCoordinates{Latitude: latitude, Longitude: longitude}, nil
}

// Snapshot is a normalized, fully populated weather reading plus forecast.
// PressureMb is nil when the provider did not report it.
type Snapshot struct {
	Location     string
	TemperatureC float64
	FeelsLikeC   float64
	Condition    string
	Icon         string
	WindSpeedKph float64
	HumidityPct  float64
	PressureMb   *float64
	Forecast     []ForecastDay
}

// ForecastDay is one forecast entry; Date is a short English weekday ("Mon").
type ForecastDay struct {
	Date         string
	TemperatureC float64
	Condition    string
	Icon         string
}

// String returns a string representation of the snapshot
func (s *Snapshot) String() string {
	return fmt.Sprintf("%s: %.1f°C, %.1f%% humidity, %s",
		s.Location, s.TemperatureC, s.HumidityPct, s.Condition)
}
