package knapp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckCondition(t *testing.T) {
	tests := []struct {
		name      string
		condition string
		closeness float64
		want      bool
	}{
		{"greater true", "closeness > 0.7", 0.8, true},
		{"greater false at boundary", "closeness > 0.7", 0.7, false},
		{"greater equal at boundary", "closeness >= 0.7", 0.7, true},
		{"less true", "closeness < 0.3", 0.2, true},
		{"less equal", "closeness <= 0.3", 0.3, true},
		{"equal within tolerance", "closeness == 0.5", 0.505, true},
		{"equal outside tolerance", "closeness == 0.5", 0.52, false},
		{"not equal", "closeness != 0.5", 0.6, true},
		{"not equal within tolerance", "closeness != 0.5", 0.509, false},
		{"whitespace tolerated", "  closeness>0.7  ", 0.9, true},
		{"unknown dimension", "trust > 0.5", 0.9, false},
		{"garbage threshold", "closeness > high", 0.9, false},
		{"no operator", "closeness", 0.9, false},
		{"empty", "", 0.9, false},
		{"threshold above one clamps", "closeness > 1.5", 1.0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, checkCondition(tt.condition, tt.closeness))
		})
	}
}

func TestNormalizeDelta(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0.3, 0.3},
		{-0.25, -0.25},
		{1, 1},
		{3, 0.3},
		{-3, -0.3},
		{5, 0.5},
		{25, 0.25},
		{-40, -0.4},
		{100, 1},
		{250, 1},
		{-999, -1},
		{0, 0},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, normalizeDelta(tt.in), 1e-9, "normalizeDelta(%v)", tt.in)
	}
}
