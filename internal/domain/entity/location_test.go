package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocation_HasCoordinates(t *testing.T) {
	lat, lon := 39.1, -94.6

	tests := []struct {
		name     string
		location Location
		want     bool
	}{
		{name: "both set", location: Location{Latitude: &lat, Longitude: &lon}, want: true},
		{name: "latitude only", location: Location{Latitude: &lat}, want: true},
		{name: "longitude only", location: Location{Longitude: &lon}, want: true},
		{name: "neither set", location: Location{}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.location.HasCoordinates())
		})
	}
}
