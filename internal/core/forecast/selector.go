package forecast

import (
	"fmt"
	"time"
)

// NearestSample picks the sample whose "HH:MM" label is closest to the
// wall-clock time of ref, measured as a plain minute difference. The
// comparison is strict, so the first of two equidistant samples wins.
//
// Differences are linear, not wrapped modulo 24h: with ref at 00:10 a 23:50
// sample is 1420 minutes away, not 20. The labels carry no date, so there
// is nothing reliable to wrap against.
func NearestSample(samples []TemperatureSample, ref time.Time) (TemperatureSample, error) {
	if len(samples) == 0 {
		return TemperatureSample{}, fmt.Errorf("samples cannot be empty")
	}

	refMinutes := ref.Hour()*60 + ref.Minute()

	var nearest TemperatureSample
	minDiff := -1
	for _, sample := range samples {
		t, err := time.Parse("15:04", sample.Time)
		if err != nil {
			return TemperatureSample{}, fmt.Errorf("parse sample time %q: %w", sample.Time, err)
		}

		diff := refMinutes - (t.Hour()*60 + t.Minute())
		if diff < 0 {
			diff = -diff
		}
		if minDiff < 0 || diff < minDiff {
			minDiff = diff
			nearest = sample
		}
	}

	return nearest, nil
}
