// Package external provides adapters for external services: the forecast
// provider and the favorites stores.
package external

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"weatheractivity.app/internal/ports"
)

const (
	weatherAPIProviderName = "weatherapi"
	weatherAPIForecastPath = "/forecast.json"
	weatherAPIDateLayout   = "2006-01-02"
	forecastDays           = 5
)

// HTTPClient interface for HTTP requests (for testing)
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// WeatherAPIProviderAdapter implements ForecastProvider for WeatherAPI.com
type WeatherAPIProviderAdapter struct {
	apiKey  string
	baseURL string
	client  HTTPClient
	logger  ports.Logger
}

// WeatherAPIProviderParams holds parameters for creating WeatherAPI provider.
// Client is optional; a plain http.Client with Timeout is used when nil.
type WeatherAPIProviderParams struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
	Client  HTTPClient
	Logger  ports.Logger
}

// weatherAPIForecastResponse mirrors forecast.json. The optional sections are
// pointers so a missing section can be told apart from a zero one.
type weatherAPIForecastResponse struct {
	Error    *weatherAPIError    `json:"error"`
	Location *weatherAPILocation `json:"location"`
	Current  *weatherAPICurrent  `json:"current"`
	Forecast *weatherAPIForecast `json:"forecast"`
}

type weatherAPIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type weatherAPILocation struct {
	Name    string `json:"name"`
	Country string `json:"country"`
}

type weatherAPICondition struct {
	Text string `json:"text"`
	Icon string `json:"icon"`
}

type weatherAPICurrent struct {
	TempC      float64             `json:"temp_c"`
	FeelsLikeC float64             `json:"feelslike_c"`
	WindKph    float64             `json:"wind_kph"`
	Humidity   float64             `json:"humidity"`
	PressureMb *float64            `json:"pressure_mb"`
	Condition  weatherAPICondition `json:"condition"`
}

type weatherAPIForecast struct {
	ForecastDay []weatherAPIForecastDay `json:"forecastday"`
}

type weatherAPIForecastDay struct {
	Date string `json:"date"`
	Day  struct {
		AvgTempC  float64             `json:"avgtemp_c"`
		Condition weatherAPICondition `json:"condition"`
	} `json:"day"`
}

// NewWeatherAPIProviderAdapter creates a new WeatherAPI provider adapter
func NewWeatherAPIProviderAdapter(params WeatherAPIProviderParams) *WeatherAPIProviderAdapter {
	client := params.Client
	if client == nil {
		client = &http.Client{Timeout: params.Timeout}
	}

	return &WeatherAPIProviderAdapter{
		apiKey:  params.APIKey,
		baseURL: strings.TrimRight(params.BaseURL, "/"),
		client:  client,
		logger:  params.Logger,
	}
}

// GetForecast performs one forecast.json request. Errors are *ports.ProviderFailure
// for provider-reported failures, ports.ErrIncompleteReport for a body without the
// expected sections, and a wrapped transport or decode error otherwise.
func (p *WeatherAPIProviderAdapter) GetForecast(ctx context.Context, query string) (*ports.ForecastReport, error) {
	params := url.Values{}
	params.Set("key", p.apiKey)
	params.Set("q", query)
	params.Set("days", strconv.Itoa(forecastDays))
	params.Set("aqi", "no")
	params.Set("alerts", "no")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+weatherAPIForecastPath+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build forecast request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call WeatherAPI: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			p.logger.Warn("Failed to close WeatherAPI response body", ports.F("error", closeErr))
		}
	}()

	var body weatherAPIForecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		if !isSuccessStatus(resp.StatusCode) {
			return nil, &ports.ProviderFailure{StatusCode: resp.StatusCode}
		}
		return nil, fmt.Errorf("decode WeatherAPI response: %w", err)
	}

	if body.Error != nil {
		return nil, &ports.ProviderFailure{
			StatusCode: resp.StatusCode,
			Code:       body.Error.Code,
			Message:    body.Error.Message,
		}
	}
	if !isSuccessStatus(resp.StatusCode) {
		return nil, &ports.ProviderFailure{StatusCode: resp.StatusCode}
	}

	return body.toReport()
}

// GetProviderName returns the name of this weather provider
func (p *WeatherAPIProviderAdapter) GetProviderName() string {
	return weatherAPIProviderName
}

func (r *weatherAPIForecastResponse) toReport() (*ports.ForecastReport, error) {
	if r.Location == nil || r.Current == nil || r.Forecast == nil {
		return nil, ports.ErrIncompleteReport
	}

	days := make([]ports.ForecastDayReport, 0, len(r.Forecast.ForecastDay))
	for _, fd := range r.Forecast.ForecastDay {
		date, err := time.Parse(weatherAPIDateLayout, fd.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: forecast date %q", ports.ErrIncompleteReport, fd.Date)
		}
		days = append(days, ports.ForecastDayReport{
			Date:            date,
			AvgTemperatureC: fd.Day.AvgTempC,
			Condition:       ports.Condition{Text: fd.Day.Condition.Text, Icon: fd.Day.Condition.Icon},
		})
	}

	return &ports.ForecastReport{
		LocationName: r.Location.Name,
		Country:      r.Location.Country,
		Current: ports.CurrentConditions{
			TemperatureC: r.Current.TempC,
			FeelsLikeC:   r.Current.FeelsLikeC,
			Condition:    ports.Condition{Text: r.Current.Condition.Text, Icon: r.Current.Condition.Icon},
			WindKph:      r.Current.WindKph,
			Humidity:     r.Current.Humidity,
			PressureMb:   r.Current.PressureMb,
		},
		Days: days,
	}, nil
}

func isSuccessStatus(code int) bool {
	return code >= http.StatusOK && code < http.StatusMultipleChoices
}
