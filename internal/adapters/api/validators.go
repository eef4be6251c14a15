package api

import (
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"weatheractivity.app/pkg/validation"
)

var registerOnce sync.Once

// RegisterValidators installs the custom rules on gin's shared validator engine.
// Safe to call more than once.
func RegisterValidators() {
	registerOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			v.RegisterStructValidation(validateLookupQuery, LookupQuery{})
		}
	})
}

// validateLookupQuery reports lat/lon that are not decimal numbers under the
// "coordinate" tag. A non-blank location takes precedence, so coordinates are
// only checked when it is absent.
func validateLookupQuery(sl validator.StructLevel) {
	q := sl.Current().Interface().(LookupQuery)
	if validation.IsNotEmpty(q.Location) {
		return
	}
	if !validation.IsCoordinate(q.Lat) {
		sl.ReportError(q.Lat, "Lat", "lat", "coordinate", "")
	}
	if !validation.IsCoordinate(q.Lon) {
		sl.ReportError(q.Lon, "Lon", "lon", "coordinate", "")
	}
}
