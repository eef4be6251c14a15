package ports

import "context"

// Coordinates is a latitude/longitude pair in decimal degrees
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// PositionErrorCode classifies why a position could not be obtained
type PositionErrorCode int

const (
	PositionUnknown PositionErrorCode = iota
	PositionPermissionDenied
	PositionUnavailable
	PositionTimeout
	PositionUnsupported
)

// PositionError is returned by a PositionSource that cannot report a position
type PositionError struct {
	Code PositionErrorCode
}

func (e *PositionError) Error() string {
	switch e.Code {
	case PositionPermissionDenied:
		return "Location access was denied. Please enable location services or search for a location manually."
	case PositionUnavailable:
		return "Location information is unavailable. Please try searching for a location manually."
	case PositionTimeout:
		return "Location request timed out. Please try again or search for a location manually."
	case PositionUnsupported:
		return "Geolocation is not supported by your browser. Please search for a location manually."
	default:
		return "An error occurred while getting your location. Please search for a location manually."
	}
}

// PositionSource reports the caller's current position
type PositionSource interface {
	CurrentPosition(ctx context.Context) (Coordinates, error)
}
