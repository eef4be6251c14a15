package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrimAndValidate(t *testing.T) {
	trimmed, ok := TrimAndValidate("  Paris ")
	assert.True(t, ok)
	assert.Equal(t, "Paris", trimmed)

	_, ok = TrimAndValidate("   ")
	assert.False(t, ok)
	assert.False(t, IsNotEmpty("\t"))
}

func TestParseCoordinate(t *testing.T) {
	tests := []struct {
		input string
		value float64
		ok    bool
	}{
		{"51.5", 51.5, true},
		{"-0.12", -0.12, true},
		{" 200 ", 200, true},
		{"abc", 0, false},
		{"", 0, false},
		{"NaN", 0, false},
		{"Inf", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v, ok := ParseCoordinate(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.value, v)
		})
	}
}

func TestIsCoordinate(t *testing.T) {
	assert.True(t, IsCoordinate(""))
	assert.True(t, IsCoordinate("-33.86"))
	assert.False(t, IsCoordinate("north"))
}
