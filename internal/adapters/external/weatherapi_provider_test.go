package external

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"weatheractivity.app/internal/mocks"
	"weatheractivity.app/internal/ports"
)

const forecastFixture = `{
	"location": {"name": "London", "country": "United Kingdom"},
	"current": {
		"temp_c": 15.5,
		"feelslike_c": 14.2,
		"wind_kph": 11.2,
		"humidity": 76,
		"pressure_mb": 1012.0,
		"condition": {"text": "Partly cloudy", "icon": "//cdn.weatherapi.com/weather/64x64/day/116.png"}
	},
	"forecast": {"forecastday": [
		{"date": "2024-01-15", "day": {"avgtemp_c": 10.1, "condition": {"text": "Sunny", "icon": "//cdn/113.png"}}},
		{"date": "2024-01-16", "day": {"avgtemp_c": 11.2, "condition": {"text": "Overcast", "icon": "//cdn/122.png"}}},
		{"date": "2024-01-17", "day": {"avgtemp_c": 9.3, "condition": {"text": "Patchy rain possible", "icon": "//cdn/176.png"}}},
		{"date": "2024-01-18", "day": {"avgtemp_c": 7.4, "condition": {"text": "Light snow", "icon": "//cdn/326.png"}}},
		{"date": "2024-01-19", "day": {"avgtemp_c": 6.5, "condition": {"text": "Mist", "icon": "//cdn/143.png"}}}
	]}
}`

func setupLoggerMockWeatherAPI(t *testing.T) *mocks.Logger {
	mockLogger := mocks.NewLogger(t)
	mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	return mockLogger
}

func newTestProvider(t *testing.T, handler http.HandlerFunc) *WeatherAPIProviderAdapter {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewWeatherAPIProviderAdapter(WeatherAPIProviderParams{
		APIKey:  "test-api-key",
		BaseURL: server.URL + "/",
		Timeout: 5 * time.Second,
		Logger:  setupLoggerMockWeatherAPI(t),
	})
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err := w.Write([]byte(body))
	assert.NoError(t, err)
}

func TestWeatherAPIProvider_GetForecast_Success(t *testing.T) {
	provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/forecast.json", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "test-api-key", q.Get("key"))
		assert.Equal(t, "London", q.Get("q"))
		assert.Equal(t, "5", q.Get("days"))
		assert.Equal(t, "no", q.Get("aqi"))
		assert.Equal(t, "no", q.Get("alerts"))
		writeJSON(t, w, http.StatusOK, forecastFixture)
	})

	report, err := provider.GetForecast(context.Background(), "London")

	require.NoError(t, err)
	assert.Equal(t, "London", report.LocationName)
	assert.Equal(t, "United Kingdom", report.Country)
	assert.Equal(t, 15.5, report.Current.TemperatureC)
	assert.Equal(t, 14.2, report.Current.FeelsLikeC)
	assert.Equal(t, 11.2, report.Current.WindKph)
	assert.Equal(t, 76.0, report.Current.Humidity)
	require.NotNil(t, report.Current.PressureMb)
	assert.Equal(t, 1012.0, *report.Current.PressureMb)
	assert.Equal(t, "Partly cloudy", report.Current.Condition.Text)

	require.Len(t, report.Days, 5)
	assert.Equal(t, time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC), report.Days[0].Date)
	assert.Equal(t, "Patchy rain possible", report.Days[2].Condition.Text)
	assert.Equal(t, "//cdn/176.png", report.Days[2].Condition.Icon)
	assert.Equal(t, 9.3, report.Days[2].AvgTemperatureC)
}

func TestWeatherAPIProvider_GetForecast_QueryEncoding(t *testing.T) {
	var rawQuery string
	provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		rawQuery = r.URL.RawQuery
		assert.Equal(t, "São Paulo & Co", r.URL.Query().Get("q"))
		writeJSON(t, w, http.StatusOK, forecastFixture)
	})

	_, err := provider.GetForecast(context.Background(), "São Paulo & Co")

	require.NoError(t, err)
	assert.NotContains(t, rawQuery, " ")
	assert.Contains(t, rawQuery, "q=S%C3%A3o+Paulo+%26+Co")
}

func TestWeatherAPIProvider_GetForecast_MissingPressure(t *testing.T) {
	provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, `{
			"location": {"name": "Oslo"},
			"current": {"temp_c": -3, "condition": {"text": "Snow"}},
			"forecast": {"forecastday": []}
		}`)
	})

	report, err := provider.GetForecast(context.Background(), "Oslo")

	require.NoError(t, err)
	assert.Nil(t, report.Current.PressureMb)
	assert.Empty(t, report.Days)
}

func TestWeatherAPIProvider_GetForecast_ErrorEnvelope(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   ports.ProviderFailure
	}{
		{
			name:   "unknown location",
			status: http.StatusBadRequest,
			body:   `{"error": {"code": 1006, "message": "No matching location found."}}`,
			want:   ports.ProviderFailure{StatusCode: 400, Code: 1006, Message: "No matching location found."},
		},
		{
			name:   "envelope inside a 200 body",
			status: http.StatusOK,
			body:   `{"error": {"code": 9999, "message": "Internal application error."}}`,
			want:   ports.ProviderFailure{StatusCode: 200, Code: 9999, Message: "Internal application error."},
		},
		{
			name:   "bad status without envelope",
			status: http.StatusServiceUnavailable,
			body:   `{}`,
			want:   ports.ProviderFailure{StatusCode: 503},
		},
		{
			name:   "bad status with unparsable body",
			status: http.StatusBadGateway,
			body:   `<html>Bad Gateway</html>`,
			want:   ports.ProviderFailure{StatusCode: 502},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
				writeJSON(t, w, tt.status, tt.body)
			})

			report, err := provider.GetForecast(context.Background(), "Atlantis")

			assert.Nil(t, report)
			var failure *ports.ProviderFailure
			require.True(t, errors.As(err, &failure))
			assert.Equal(t, tt.want, *failure)
		})
	}
}

func TestWeatherAPIProvider_GetForecast_IncompleteBody(t *testing.T) {
	bodies := map[string]string{
		"no location":  `{"current": {"temp_c": 1}, "forecast": {"forecastday": []}}`,
		"no current":   `{"location": {"name": "X"}, "forecast": {"forecastday": []}}`,
		"no forecast":  `{"location": {"name": "X"}, "current": {"temp_c": 1}}`,
		"bad day date": `{"location": {"name": "X"}, "current": {}, "forecast": {"forecastday": [{"date": "15/01/2024"}]}}`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
				writeJSON(t, w, http.StatusOK, body)
			})

			_, err := provider.GetForecast(context.Background(), "X")

			assert.ErrorIs(t, err, ports.ErrIncompleteReport)
		})
	}
}

func TestWeatherAPIProvider_GetForecast_InvalidJSON(t *testing.T) {
	provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, `{"location":`)
	})

	_, err := provider.GetForecast(context.Background(), "London")

	require.Error(t, err)
	var failure *ports.ProviderFailure
	assert.False(t, errors.As(err, &failure))
	assert.NotErrorIs(t, err, ports.ErrIncompleteReport)
}

func TestWeatherAPIProvider_GetForecast_TransportError(t *testing.T) {
	provider := NewWeatherAPIProviderAdapter(WeatherAPIProviderParams{
		APIKey:  "test-api-key",
		BaseURL: "http://weather.invalid",
		Client:  failingHTTPClient{err: errors.New("connection refused")},
		Logger:  setupLoggerMockWeatherAPI(t),
	})

	_, err := provider.GetForecast(context.Background(), "London")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestWeatherAPIProvider_GetForecast_ContextCanceled(t *testing.T) {
	provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, forecastFixture)
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := provider.GetForecast(ctx, "London")

	assert.ErrorIs(t, err, context.Canceled)
}

func TestWeatherAPIProvider_GetProviderName(t *testing.T) {
	provider := NewWeatherAPIProviderAdapter(WeatherAPIProviderParams{Logger: mocks.NewLogger(t)})
	assert.Equal(t, "weatherapi", provider.GetProviderName())
}

type failingHTTPClient struct {
	err error
}

func (c failingHTTPClient) Do(*http.Request) (*http.Response, error) {
	return nil, c.err
}
