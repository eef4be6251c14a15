package infrastructure

import (
	"context"

	"weatheractivity.app/internal/config"
	"weatheractivity.app/internal/ports"
	"weatheractivity.app/pkg/validation"
)

// StaticPositionSource reports a position fixed in configuration. Without one
// every request fails as unsupported.
type StaticPositionSource struct {
	coords  ports.Coordinates
	enabled bool
}

// NewStaticPositionSource builds a source from GEO_LATITUDE and GEO_LONGITUDE.
// The config is expected to have passed Validate.
func NewStaticPositionSource(cfg config.GeolocationConfig) *StaticPositionSource {
	if !cfg.Enabled() {
		return &StaticPositionSource{}
	}

	lat, latOK := validation.ParseCoordinate(cfg.Latitude)
	lon, lonOK := validation.ParseCoordinate(cfg.Longitude)
	return &StaticPositionSource{
		coords:  ports.Coordinates{Latitude: lat, Longitude: lon},
		enabled: latOK && lonOK,
	}
}

// CurrentPosition implements ports.PositionSource
func (s *StaticPositionSource) CurrentPosition(ctx context.Context) (ports.Coordinates, error) {
	if err := ctx.Err(); err != nil {
		return ports.Coordinates{}, &ports.PositionError{Code: ports.PositionTimeout}
	}
	if !s.enabled {
		return ports.Coordinates{}, &ports.PositionError{Code: ports.PositionUnsupported}
	}
	return s.coords, nil
}
