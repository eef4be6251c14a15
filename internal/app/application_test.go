package app

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatheractivity.app/internal/config"
)

const londonForecast = `{
  "location": {"name": "London", "country": "United Kingdom"},
  "current": {
    "temp_c": 15.5, "feelslike_c": 14.2, "wind_kph": 11.2, "humidity": 76, "pressure_mb": 1012,
    "condition": {"text": "Partly cloudy", "icon": "//cdn.weatherapi.com/weather/64x64/day/116.png"}
  },
  "forecast": {"forecastday": [
    {"date": "2024-01-15", "day": {"avgtemp_c": 10, "condition": {"text": "Sunny", "icon": "//cdn/113.png"}}},
    {"date": "2024-01-16", "day": {"avgtemp_c": 11, "condition": {"text": "Overcast", "icon": "//cdn/122.png"}}},
    {"date": "2024-01-17", "day": {"avgtemp_c": 12, "condition": {"text": "Light rain", "icon": "//cdn/296.png"}}},
    {"date": "2024-01-18", "day": {"avgtemp_c": 13, "condition": {"text": "Cloudy", "icon": "//cdn/119.png"}}},
    {"date": "2024-01-19", "day": {"avgtemp_c": 14, "condition": {"text": "Mist", "icon": "//cdn/143.png"}}}
  ]}
}`

func newFakeProvider(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Path != "/forecast.json" || r.URL.Query().Get("key") != "test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			fmt.Fprint(w, `{"error":{"code":2006,"message":"API key provided is invalid"}}`)
			return
		}
		switch r.URL.Query().Get("q") {
		case "London", "51.5,-0.12":
			fmt.Fprint(w, londonForecast)
		default:
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprint(w, `{"error":{"code":1006,"message":"No matching location found."}}`)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func testConfig(baseURL string) *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Port: 8080},
		Weather: config.WeatherConfig{
			APIKey:             "test-key",
			BaseURL:            baseURL,
			HTTPTimeoutSeconds: 5,
			EnableLogging:      true,
		},
		Favorites: config.FavoritesConfig{
			Store: config.StoreTypeMemory,
			Key:   "favoriteLocations",
		},
		Geolocation: config.GeolocationConfig{Latitude: "51.5", Longitude: "-0.12"},
		Logging:     config.LoggingConfig{Level: "error"},
	}
}

func newTestApplication(t *testing.T, cfg *config.Config) *Application {
	t.Helper()
	require.NoError(t, cfg.Validate())

	deps, err := NewDependencyContainer(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = deps.Cleanup() })

	app, err := NewApplicationWithDependencies(cfg, deps)
	require.NoError(t, err)
	return app
}

func serve(app *Application, method, target, body, contentType string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", contentType)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	w := httptest.NewRecorder()
	app.GetRouter().ServeHTTP(w, req)
	return w
}

func TestApplication_WeatherLookup(t *testing.T) {
	provider := newFakeProvider(t)
	app := newTestApplication(t, testConfig(provider.URL))

	w := serve(app, http.MethodGet, "/api/weather?location=London", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "London", body["location"])
	forecast := body["forecast"].([]interface{})
	require.Len(t, forecast, 5)
	days := make([]string, 0, len(forecast))
	for _, d := range forecast {
		days = append(days, d.(map[string]interface{})["date"].(string))
	}
	assert.Equal(t, []string{"Mon", "Tue", "Wed", "Thu", "Fri"}, days)

	w = serve(app, http.MethodGet, "/api/weather?location=Atlantis", "", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Location not found. Please check the city name or zip code."}`, w.Body.String())

	w = serve(app, http.MethodGet, "/api/weather", "", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Location or coordinates are required"}`, w.Body.String())

	w = serve(app, http.MethodGet, "/metrics", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `weather_lookups_total{kind="name",outcome="location_not_found"}`)
	assert.Contains(t, w.Body.String(), `weather_provider_requests_total{provider="weatherapi",success="true"}`)
}

func TestApplication_MissingAPIKey(t *testing.T) {
	provider := newFakeProvider(t)
	cfg := testConfig(provider.URL)
	cfg.Weather.APIKey = ""
	app := newTestApplication(t, cfg)

	w := serve(app, http.MethodGet, "/api/weather?location=London", "", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Weather API key is not configured"}`, w.Body.String())

	w = serve(app, http.MethodGet, "/api/health", "", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestApplication_DashboardFlow(t *testing.T) {
	provider := newFakeProvider(t)
	app := newTestApplication(t, testConfig(provider.URL))

	w := serve(app, http.MethodGet, "/?locate=1", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Showing weather for your current location")
	assert.Contains(t, w.Body.String(), "Mild Weather Fun")

	w = serve(app, http.MethodPost, "/favorites", "location=London", "application/x-www-form-urlencoded")
	require.Equal(t, http.StatusSeeOther, w.Code)

	w = serve(app, http.MethodGet, "/?location=London", "", "")
	assert.Contains(t, w.Body.String(), "Location Saved")

	w = serve(app, http.MethodGet, "/api/favorites", "", "")
	assert.JSONEq(t, `{"favorites":["London"]}`, w.Body.String())
}

func TestApplication_FileLogging(t *testing.T) {
	provider := newFakeProvider(t)
	cfg := testConfig(provider.URL)
	cfg.Weather.LogFilePath = filepath.Join(t.TempDir(), "logs", "weather.log")
	cfg.Logging.Level = "info"
	app := newTestApplication(t, cfg)

	w := serve(app, http.MethodGet, "/api/weather?location=London", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	data, err := os.ReadFile(cfg.Weather.LogFilePath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Weather API request completed")
}

func TestApplication_SQLiteFavoritesPersist(t *testing.T) {
	provider := newFakeProvider(t)
	cfg := testConfig(provider.URL)
	cfg.Favorites.Store = config.StoreTypeSQLite
	cfg.Favorites.SQLitePath = filepath.Join(t.TempDir(), "favorites.db")

	first := newTestApplication(t, cfg)
	w := serve(first, http.MethodPost, "/api/favorites", `{"location":"Paris"}`, "application/json")
	require.Equal(t, http.StatusOK, w.Code)
	serve(first, http.MethodPost, "/api/favorites", `{"location":"Tokyo"}`, "application/json")
	require.NoError(t, first.deps.Cleanup())

	second := newTestApplication(t, cfg)
	w = serve(second, http.MethodGet, "/api/favorites", "", "")
	assert.JSONEq(t, `{"favorites":["Paris","Tokyo"]}`, w.Body.String())
}

func TestApplication_RedisFavorites(t *testing.T) {
	provider := newFakeProvider(t)
	mr := miniredis.RunT(t)

	cfg := testConfig(provider.URL)
	cfg.Favorites.Store = config.StoreTypeRedis
	cfg.Favorites.Redis = config.RedisConfig{Addr: mr.Addr(), DialTimeout: 1, ReadTimeout: 1, WriteTimeout: 1}
	app := newTestApplication(t, cfg)

	w := serve(app, http.MethodPost, "/api/favorites", `{"location":"Berlin"}`, "application/json")
	require.Equal(t, http.StatusOK, w.Code)

	stored, err := mr.Get("favoriteLocations")
	require.NoError(t, err)
	assert.JSONEq(t, `["Berlin"]`, stored)

	w = serve(app, http.MethodGet, "/api/health", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"store":"redis"`)
}

func TestNewDependencyContainer_RedisUnavailable(t *testing.T) {
	cfg := testConfig("http://localhost")
	cfg.Favorites.Store = config.StoreTypeRedis
	cfg.Favorites.Redis = config.RedisConfig{Addr: "127.0.0.1:1", DialTimeout: 1, ReadTimeout: 1, WriteTimeout: 1}

	_, err := NewDependencyContainer(cfg)
	assert.ErrorContains(t, err, "create favorites store")
}
