package api

import (
	"net/http"

	"log/slog"

	"github.com/gin-gonic/gin"
	"weatheractivity.app/internal/core/activity"
	"weatheractivity.app/internal/core/weather"
)

// LookupQuery is the query string accepted by the weather and activity endpoints
type LookupQuery struct {
	Location string `form:"location"`
	Lat      string `form:"lat"`
	Lon      string `form:"lon"`
}

// WeatherResponse represents the HTTP response for weather data
type WeatherResponse struct {
	Location    string                `json:"location"`
	Temperature float64               `json:"temperature"`
	Condition   string                `json:"condition"`
	Icon        string                `json:"icon"`
	Humidity    float64               `json:"humidity"`
	WindSpeed   float64               `json:"windSpeed"`
	Description string                `json:"description"`
	FeelsLike   float64               `json:"feelsLike"`
	Pressure    *float64              `json:"pressure,omitempty"`
	Forecast    []ForecastDayResponse `json:"forecast"`
}

// ForecastDayResponse is one entry of WeatherResponse.Forecast
type ForecastDayResponse struct {
	Date        string  `json:"date"`
	Temperature float64 `json:"temperature"`
	Condition   string  `json:"condition"`
	Icon        string  `json:"icon"`
}

// ActivityResponse pairs a snapshot with its suggestion and share text
type ActivityResponse struct {
	Weather    WeatherResponse     `json:"weather"`
	Suggestion activity.Suggestion `json:"suggestion"`
	Share      string              `json:"share"`
}

func newWeatherResponse(s *weather.Snapshot) WeatherResponse {
	forecast := make([]ForecastDayResponse, 0, len(s.Forecast))
	for _, day := range s.Forecast {
		forecast = append(forecast, ForecastDayResponse{
			Date:        day.Date,
			Temperature: day.TemperatureC,
			Condition:   day.Condition,
			Icon:        day.Icon,
		})
	}

	return WeatherResponse{
		Location:    s.Location,
		Temperature: s.TemperatureC,
		Condition:   s.Condition,
		Icon:        s.Icon,
		Humidity:    s.HumidityPct,
		WindSpeed:   s.WindSpeedKph,
		Description: s.Condition,
		FeelsLike:   s.FeelsLikeC,
		Pressure:    s.PressureMb,
		Forecast:    forecast,
	}
}

// lookup binds the query and runs the gateway; on failure it has already written the response.
// A missing API key is reported before the query is validated.
func (s *HTTPServerAdapter) lookup(c *gin.Context) (*weather.Snapshot, bool) {
	if err := s.weatherUseCase.CheckConfigured(); err != nil {
		s.handleLookupError(c, err)
		return nil, false
	}

	var query LookupQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		slog.Debug("Lookup query rejected", "error", err, "request_id", requestID(c))
		s.handleLookupError(c, bindingError(err))
		return nil, false
	}

	request, err := weather.ParseLookupRequest(query.Location, query.Lat, query.Lon)
	if err != nil {
		s.handleLookupError(c, err)
		return nil, false
	}

	snapshot, err := s.weatherUseCase.Lookup(c.Request.Context(), request)
	if err != nil {
		slog.Error("Weather use case error", "error", err, "request_id", requestID(c))
		s.handleLookupError(c, err)
		return nil, false
	}

	return snapshot, true
}

// getWeather handles GET /api/weather requests
func (s *HTTPServerAdapter) getWeather(c *gin.Context) {
	snapshot, ok := s.lookup(c)
	if !ok {
		return
	}

	slog.Debug("Weather result", "location", snapshot.Location, "request_id", requestID(c))
	c.JSON(http.StatusOK, newWeatherResponse(snapshot))
}

// getActivity handles GET /api/activity requests
func (s *HTTPServerAdapter) getActivity(c *gin.Context) {
	snapshot, ok := s.lookup(c)
	if !ok {
		return
	}

	suggestion := activity.Suggest(snapshot)
	rule := activity.RuleName(activity.FromSnapshot(snapshot))
	s.metricsCollector.RecordSuggestion(rule)
	slog.Debug("Activity suggested", "location", snapshot.Location, "rule", rule, "request_id", requestID(c))

	c.JSON(http.StatusOK, ActivityResponse{
		Weather:    newWeatherResponse(snapshot),
		Suggestion: suggestion,
		Share:      activity.ShareText(snapshot, suggestion),
	})
}
