// Package activity maps a weather snapshot onto a themed set of suggested activities.
package activity

import (
	"fmt"
	"strconv"
	"strings"

	"weatheractivity.app/internal/core/weather"
)

// Icon is a symbolic identifier for a suggestion's pictogram. Rendering is up to the caller.
type Icon string

const (
	IconGamepad      Icon = "gamepad"
	IconUmbrella     Icon = "umbrella"
	IconSnowman      Icon = "snowman"
	IconSwimmingPool Icon = "swimming-pool"
	IconBeach        Icon = "umbrella-beach"
	IconHiking       Icon = "hiking"
	IconSun          Icon = "sun"
	IconCoffee       Icon = "coffee"
	IconWind         Icon = "wind"
	IconCloud        Icon = "cloud"
	IconPalette      Icon = "palette"
)

// Suggestion is a themed group of four activities
type Suggestion struct {
	Icon        Icon     `json:"icon"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Activities  []string `json:"activities"`
}

// Conditions are the inputs the rules read from a snapshot
type Conditions struct {
	Text         string
	TemperatureC float64
	WindSpeedKph float64
}

type rule struct {
	name    string
	matches func(c Conditions, text string) bool
	result  Suggestion
}

func containsAny(text string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

// rules are evaluated in order; the first match wins. text is the lower-cased condition.
var rules = []rule{
	{
		name: "storm",
		matches: func(_ Conditions, text string) bool {
			return containsAny(text, "thunderstorm", "storm")
		},
		result: Suggestion{
			Icon:        IconGamepad,
			Title:       "Indoor Safety",
			Description: "Stay safe indoors during the storm!",
			Activities:  []string{"Video games", "Board games", "Movie marathon", "Indoor exercises"},
		},
	},
	{
		name: "rain",
		matches: func(_ Conditions, text string) bool {
			return containsAny(text, "rain", "drizzle")
		},
		result: Suggestion{
			Icon:        IconUmbrella,
			Title:       "Rainy Day Activities",
			Description: "Enjoy these cozy indoor activities while it rains!",
			Activities:  []string{"Read a book", "Watch movies", "Cook comfort food", "Visit a museum"},
		},
	},
	{
		name: "snow",
		matches: func(_ Conditions, text string) bool {
			return containsAny(text, "snow", "blizzard")
		},
		result: Suggestion{
			Icon:        IconSnowman,
			Title:       "Winter Wonderland",
			Description: "Make the most of the snowy weather!",
			Activities:  []string{"Build a snowman", "Sledding", "Hot chocolate", "Snow photography"},
		},
	},
	{
		name: "extreme_heat",
		matches: func(c Conditions, _ string) bool {
			return c.TemperatureC >= 35
		},
		result: Suggestion{
			Icon:        IconSwimmingPool,
			Title:       "Beat the Extreme Heat",
			Description: "Stay cool and hydrated!",
			Activities:  []string{"Indoor pool", "Visit mall", "Ice cream break", "Water park"},
		},
	},
	{
		name: "hot_clear",
		matches: func(c Conditions, text string) bool {
			return c.TemperatureC >= 28 && containsAny(text, "clear", "sun")
		},
		result: Suggestion{
			Icon:        IconBeach,
			Title:       "Beach & Water Fun",
			Description: "Perfect weather for water activities!",
			Activities:  []string{"Beach visit", "Swimming", "Water sports", "Ice cream"},
		},
	},
	{
		name: "warm_clear",
		matches: func(c Conditions, text string) bool {
			return c.TemperatureC >= 20 && c.TemperatureC < 28 && containsAny(text, "clear", "sun")
		},
		result: Suggestion{
			Icon:        IconHiking,
			Title:       "Outdoor Adventure",
			Description: "Ideal weather for outdoor activities!",
			Activities:  []string{"Hiking", "Cycling", "Picnic", "Sports"},
		},
	},
	{
		name: "mild",
		matches: func(c Conditions, _ string) bool {
			return c.TemperatureC >= 15 && c.TemperatureC < 20
		},
		result: Suggestion{
			Icon:        IconSun,
			Title:       "Mild Weather Fun",
			Description: "Great temperature for various activities!",
			Activities:  []string{"City walk", "Photography", "Café visit", "Shopping"},
		},
	},
	{
		name: "cool",
		matches: func(c Conditions, _ string) bool {
			return c.TemperatureC >= 5 && c.TemperatureC < 15
		},
		result: Suggestion{
			Icon:        IconCoffee,
			Title:       "Cool Weather Activities",
			Description: "Enjoy these comfortable indoor/outdoor activities!",
			Activities:  []string{"Coffee shop", "Museum visit", "Shopping", "Indoor sports"},
		},
	},
	{
		name: "cold",
		matches: func(c Conditions, _ string) bool {
			return c.TemperatureC < 5
		},
		result: Suggestion{
			Icon:        IconSnowman,
			Title:       "Cold Weather Activities",
			Description: "Stay warm with these activities!",
			Activities:  []string{"Indoor sports", "Hot drinks", "Movie theater", "Indoor games"},
		},
	},
	// Bands above swallow everything below 20°C, so the rules below only see
	// a NaN temperature or [20, 35) without a clear or sunny sky.
	{
		name: "windy",
		matches: func(c Conditions, _ string) bool {
			return c.WindSpeedKph > 20
		},
		result: Suggestion{
			Icon:        IconWind,
			Title:       "Windy Day Activities",
			Description: "Choose sheltered activities on this windy day!",
			Activities:  []string{"Indoor café", "Shopping mall", "Museum visit", "Cinema"},
		},
	},
	{
		name: "cloudy",
		matches: func(_ Conditions, text string) bool {
			return containsAny(text, "cloud", "overcast")
		},
		result: Suggestion{
			Icon:        IconCloud,
			Title:       "Cloudy Day Activities",
			Description: "Perfect for these engaging activities!",
			Activities:  []string{"Art gallery", "Indoor market", "Café hopping", "Shopping"},
		},
	},
}

var fallback = Suggestion{
	Icon:        IconPalette,
	Title:       "General Activities",
	Description: "Enjoy these versatile activities!",
	Activities:  []string{"City exploration", "Photography", "Café visit", "Shopping"},
}

// Recommend returns the first suggestion whose rule matches. It is total:
// every input yields exactly one suggestion.
func Recommend(c Conditions) Suggestion {
	_, s := recommend(c)
	return s
}

func recommend(c Conditions) (string, Suggestion) {
	text := strings.ToLower(c.Text)
	for _, r := range rules {
		if r.matches(c, text) {
			return r.name, r.result.clone()
		}
	}
	return "general", fallback.clone()
}

// Suggest recommends activities for a snapshot's current conditions
func Suggest(s *weather.Snapshot) Suggestion {
	return Recommend(FromSnapshot(s))
}

// RuleName reports which rule matched, for logging and metrics labels
func RuleName(c Conditions) string {
	name, _ := recommend(c)
	return name
}

// FromSnapshot extracts rule inputs from a snapshot
func FromSnapshot(s *weather.Snapshot) Conditions {
	return Conditions{
		Text:         s.Condition,
		TemperatureC: s.TemperatureC,
		WindSpeedKph: s.WindSpeedKph,
	}
}

func (s Suggestion) clone() Suggestion {
	s.Activities = append([]string(nil), s.Activities...)
	return s
}

// ShareText renders the text offered to a share sheet or clipboard. The
// temperature is the reported reading, not the rounded display value.
func ShareText(s *weather.Snapshot, suggestion Suggestion) string {
	return fmt.Sprintf("Current weather in %s: %s°C, %s. Suggested activity: %s - %s",
		s.Location, strconv.FormatFloat(s.TemperatureC, 'f', -1, 64), s.Condition, suggestion.Title, suggestion.Description)
}
