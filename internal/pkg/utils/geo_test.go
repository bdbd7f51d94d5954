package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateGeofenceAtCenter(t *testing.T) {
	distance, within := ValidateGeofence(10.762622, 106.660172, 10.762622, 106.660172, 100)

	assert.Zero(t, distance)
	assert.True(t, within)
}

func TestValidateGeofenceInside(t *testing.T) {
	// Roughly 55m north of the center.
	distance, within := ValidateGeofence(10.763122, 106.660172, 10.762622, 106.660172, 100)

	assert.True(t, within)
	assert.Greater(t, distance, 0.0)
	assert.Less(t, distance, 100.0)
}

func TestValidateGeofenceBoundaryInclusive(t *testing.T) {
	distance, _ := ValidateGeofence(10.763522, 106.660172, 10.762622, 106.660172, 100)

	// Exactly at the rounded distance the point is still within.
	_, within := ValidateGeofence(10.763522, 106.660172, 10.762622, 106.660172, int(distance)+1)
	assert.True(t, within)
}

func TestValidateGeofenceOutside(t *testing.T) {
	// Roughly 1.1km away.
	distance, within := ValidateGeofence(10.772622, 106.660172, 10.762622, 106.660172, 100)

	assert.False(t, within)
	assert.Greater(t, distance, 1000.0)
}

func TestValidateGeofenceDistanceRounded(t *testing.T) {
	distance, _ := ValidateGeofence(10.763122, 106.660172, 10.762622, 106.660172, 100)

	assert.InDelta(t, distance, Round2(distance), 1e-9)
}

func TestRound2(t *testing.T) {
	assert.InDelta(t, 7.13, Round2(7.125), 1e-9)
	assert.InDelta(t, 0.0, Round2(0.001), 1e-9)
	assert.InDelta(t, 8.0, Round2(8.0), 1e-9)
}
