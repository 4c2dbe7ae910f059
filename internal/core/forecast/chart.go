package forecast

// ChartPoint is one ordered (label, value) pair consumable by a charting
// collaborator.
type ChartPoint struct {
	Label string
	Value float64
}

const maxLabelLen = 5

// ChartPoints projects the series into chart data, one point per sample in
// input order. Labels are truncated to "HH:MM" length; duplicate labels are
// emitted as distinct points, never merged.
func ChartPoints(samples []TemperatureSample) []ChartPoint {
	points := make([]ChartPoint, 0, len(samples))
	for _, sample := range samples {
		label := sample.Time
		if len(label) > maxLabelLen {
			label = label[:maxLabelLen]
		}
		points = append(points, ChartPoint{Label: label, Value: sample.Value})
	}
	return points
}
