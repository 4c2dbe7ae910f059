package api

import (
	"fmt"
	"strings"

	"weatherview.app/internal/core/forecast"
)

// Chart geometry. The visual styling is presentation-only; the data
// contract with the core is the ordered (label, value) sequence.
const (
	chartWidth   = 800
	chartHeight  = 400
	chartPadding = 50
	pointRadius  = 3
	maxXLabels   = 24
)

// renderTemperatureChartSVG draws the temperature series as an SVG line
// chart. Points are placed in input order; duplicate labels get their own
// positions.
func renderTemperatureChartSVG(points []forecast.ChartPoint) string {
	if len(points) == 0 {
		return ""
	}

	minVal, maxVal := points[0].Value, points[0].Value
	for _, p := range points {
		if p.Value < minVal {
			minVal = p.Value
		}
		if p.Value > maxVal {
			maxVal = p.Value
		}
	}
	valueRange := maxVal - minVal
	if valueRange == 0 {
		valueRange = 1
	}

	plotWidth := float64(chartWidth - 2*chartPadding)
	plotHeight := float64(chartHeight - 2*chartPadding)

	xAt := func(i int) float64 {
		if len(points) == 1 {
			return chartPadding + plotWidth/2
		}
		return chartPadding + plotWidth*float64(i)/float64(len(points)-1)
	}
	yAt := func(v float64) float64 {
		return chartPadding + plotHeight*(1-(v-minVal)/valueRange)
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`,
		chartWidth, chartHeight, chartWidth, chartHeight)
	fmt.Fprintf(&b, `<rect width="%d" height="%d" fill="#f5f5f5"/>`, chartWidth, chartHeight)

	// Horizontal gridlines with temperature labels
	for i := 0; i <= 4; i++ {
		v := minVal + valueRange*float64(i)/4
		y := yAt(v)
		fmt.Fprintf(&b, `<line x1="%d" y1="%.1f" x2="%d" y2="%.1f" stroke="#dcdcdc"/>`,
			chartPadding, y, chartWidth-chartPadding, y)
		fmt.Fprintf(&b, `<text x="%d" y="%.1f" font-size="10" text-anchor="end" fill="#333">%.1f</text>`,
			chartPadding-6, y+3, v)
	}

	// Series polyline
	var coords []string
	for i, p := range points {
		coords = append(coords, fmt.Sprintf("%.1f,%.1f", xAt(i), yAt(p.Value)))
	}
	fmt.Fprintf(&b, `<polyline fill="none" stroke="#4682b4" stroke-width="3" points="%s"/>`,
		strings.Join(coords, " "))

	// Data points and a subset of x-axis labels
	labelStep := 1
	if len(points) > maxXLabels {
		labelStep = (len(points) + maxXLabels - 1) / maxXLabels
	}
	for i, p := range points {
		fmt.Fprintf(&b, `<circle cx="%.1f" cy="%.1f" r="%d" fill="#4682b4"/>`, xAt(i), yAt(p.Value), pointRadius)
		if i%labelStep == 0 {
			fmt.Fprintf(&b, `<text x="%.1f" y="%d" font-size="9" text-anchor="middle" fill="#333">%s</text>`,
				xAt(i), chartHeight-chartPadding+16, p.Label)
		}
	}

	b.WriteString(`</svg>`)
	return b.String()
}
