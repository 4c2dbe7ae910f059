package forecast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForecastRequest_IsValid(t *testing.T) {
	tests := []struct {
		name        string
		city        string
		expectError bool
	}{
		{name: "ValidCity", city: "Moscow", expectError: false},
		{name: "EmptyCity", city: "", expectError: true},
		{name: "WhitespaceCity", city: "   ", expectError: true},
		{name: "MixedCasePreserved", city: "nEw yOrk", expectError: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := ForecastRequest{City: tt.city}
			err := request.IsValid()

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				// The city is never normalized; validation must not touch it.
				assert.Equal(t, tt.city, request.City)
			}
		})
	}
}

func TestForecast_IsValid(t *testing.T) {
	valid := Forecast{
		City:        "Moscow",
		Coordinates: Coordinates{Latitude: "55.75222", Longitude: "37.61556"},
		Samples:     []TemperatureSample{{Time: "12:00", Value: 15.5}},
	}
	assert.NoError(t, valid.IsValid())

	noSamples := valid
	noSamples.Samples = nil
	assert.Error(t, noSamples.IsValid(), "an empty series is a failure, not a success")

	noCoords := valid
	noCoords.Coordinates = Coordinates{}
	assert.Error(t, noCoords.IsValid())

	noCity := valid
	noCity.City = ""
	assert.Error(t, noCity.IsValid())
}
