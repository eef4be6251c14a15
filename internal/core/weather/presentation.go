package weather

import (
	"math"
	"strconv"
	"strings"
)

// DefaultPressureMb is shown when the provider did not report pressure
const DefaultPressureMb = 1013.0

// Pressure returns the reported pressure, or DefaultPressureMb when it is absent or zero
func (s *Snapshot) Pressure() float64 {
	if s.PressureMb == nil || *s.PressureMb == 0 {
		return DefaultPressureMb
	}
	return *s.PressureMb
}

// EnsureHTTPS makes a provider icon URL protocol-complete:
// "//host/x.png" and "host/x.png" both become "https://host/x.png".
func EnsureHTTPS(url string) string {
	if url == "" {
		return ""
	}
	if strings.HasPrefix(url, "//") {
		return "https:" + url
	}
	if !strings.HasPrefix(url, "http") {
		return "https://" + url
	}
	return url
}

// Round formats a reading as a whole number, rounding halves up; NaN and
// infinities render as "N/A".
func Round(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "N/A"
	}
	r := math.Floor(v + 0.5)
	if r == 0 {
		r = 0 // drop negative zero
	}
	return strconv.FormatFloat(r, 'f', 0, 64)
}
