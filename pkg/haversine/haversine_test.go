package haversine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance_Zero(t *testing.T) {
	assert.Zero(t, Distance(50.7897, 2.5947, 50.7897, 2.5947))
}

func TestDistance_Symmetric(t *testing.T) {
	d1 := Distance(50.7897, 2.5947, 50.7859, 2.6743)
	d2 := Distance(50.7859, 2.6743, 50.7897, 2.5947)
	assert.InDelta(t, d1, d2, 1e-9)
}

func TestDistance_KnownPoints(t *testing.T) {
	// Bavinchove — Méteren, около 5.6 км по прямой
	d := Distance(50.7897, 2.5947, 50.7859, 2.6743)
	assert.InDelta(t, 5.6, d, 0.2)

	// Paris — Lille, около 204 км
	d = Distance(48.8566, 2.3522, 50.6292, 3.0573)
	assert.InDelta(t, 204, d, 5)
}

func TestDistance_NonNegative(t *testing.T) {
	d := Distance(-33.8688, 151.2093, 40.7128, -74.0060)
	assert.Positive(t, d)
}
