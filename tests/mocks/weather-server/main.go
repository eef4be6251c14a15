package main

import (
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

type ForecastResponse struct {
	Location Location `json:"location"`
	Current  Current  `json:"current"`
	Forecast Forecast `json:"forecast"`
}

type Location struct {
	Name    string `json:"name"`
	Country string `json:"country"`
}

type Current struct {
	TempC      float64   `json:"temp_c"`
	FeelsLikeC float64   `json:"feelslike_c"`
	WindKph    float64   `json:"wind_kph"`
	Humidity   float64   `json:"humidity"`
	PressureMb float64   `json:"pressure_mb"`
	Condition  Condition `json:"condition"`
}

type Condition struct {
	Text string `json:"text"`
	Icon string `json:"icon"`
}

type Forecast struct {
	ForecastDay []ForecastDay `json:"forecastday"`
}

type ForecastDay struct {
	Date string `json:"date"`
	Day  Day    `json:"day"`
}

type Day struct {
	AvgTempC  float64   `json:"avgtemp_c"`
	Condition Condition `json:"condition"`
}

type place struct {
	name      string
	country   string
	tempC     float64
	humidity  float64
	wind      float64
	condition string
	iconCode  string
}

var places = map[string]place{
	"london": {"London", "United Kingdom", 15.0, 76.0, 11.2, "Partly cloudy", "116"},
	"paris":  {"Paris", "France", 24.0, 48.0, 9.0, "Sunny", "113"},
	"berlin": {"Berlin", "Germany", 12.0, 82.0, 14.4, "Light rain", "296"},
	"oslo":   {"Oslo", "Norway", -3.0, 90.0, 7.0, "Light snow", "326"},
}

// coordinate queries resolve to London
const coordinatePlace = "london"

func icon(code string) string {
	return "//cdn.weatherapi.com/weather/64x64/day/" + code + ".png"
}

func forecastFor(p place, days int) ForecastResponse {
	start := time.Now().UTC()
	forecast := make([]ForecastDay, 0, days)
	for i := 0; i < days; i++ {
		forecast = append(forecast, ForecastDay{
			Date: start.AddDate(0, 0, i).Format("2006-01-02"),
			Day: Day{
				AvgTempC:  p.tempC + float64(i%3) - 1,
				Condition: Condition{Text: p.condition, Icon: icon(p.iconCode)},
			},
		})
	}

	return ForecastResponse{
		Location: Location{Name: p.name, Country: p.country},
		Current: Current{
			TempC:      p.tempC,
			FeelsLikeC: p.tempC - 1.5,
			WindKph:    p.wind,
			Humidity:   p.humidity,
			PressureMb: 1013,
			Condition:  Condition{Text: p.condition, Icon: icon(p.iconCode)},
		},
		Forecast: Forecast{ForecastDay: forecast},
	}
}

func providerError(c *gin.Context, status, code int, message string) {
	c.JSON(status, gin.H{"error": gin.H{"code": code, "message": message}})
}

func main() {
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/forecast.json", func(c *gin.Context) {
		query := strings.ToLower(strings.TrimSpace(c.Query("q")))

		if c.Query("key") == "" {
			providerError(c, http.StatusUnauthorized, 1002, "API key is invalid or not provided.")
			return
		}

		if query == "" {
			providerError(c, http.StatusBadRequest, 1003, "Parameter q is missing.")
			return
		}

		switch query {
		case "servererror":
			c.String(http.StatusInternalServerError, "<html>Internal Server Error</html>")
			return
		case "malformed":
			c.JSON(http.StatusOK, gin.H{"location": gin.H{"name": "Malformed"}})
			return
		case "timeout":
			time.Sleep(30 * time.Second)
			c.AbortWithStatus(http.StatusGatewayTimeout)
			return
		}

		key := query
		if strings.Contains(query, ",") {
			key = coordinatePlace
		}

		p, exists := places[key]
		if !exists {
			providerError(c, http.StatusBadRequest, 1006, "No matching location found.")
			return
		}

		c.JSON(http.StatusOK, forecastFor(p, 5))
	})

	slog.Info("Mock WeatherAPI server starting on :8080")
	if err := r.Run(":8080"); err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}
