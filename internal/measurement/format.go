package measurement

import (
	"fmt"
	"math"
	"strconv"
)

// NotAvailable is shown for absent measurements
const NotAvailable = "N/A"

// NoData is shown when a measurement has no values at all
const NoData = "No measurement data available"

const (
	metersPerKilometer        = 1000.0
	squareMetersPerKilometer2 = 1000000.0
)

// FormatLength formats meters as "12.34 m" below one kilometer and "1.23 km" above
func FormatLength(meters *float64) string {
	if meters == nil {
		return NotAvailable
	}
	if *meters < metersPerKilometer {
		return fmt.Sprintf("%.2f m", *meters)
	}
	return fmt.Sprintf("%.2f km", *meters/metersPerKilometer)
}

// FormatArea formats square meters as "12.34 m²" below one km² and "1.23 km²" above
func FormatArea(squareMeters *float64) string {
	if squareMeters == nil {
		return NotAvailable
	}
	if *squareMeters < squareMetersPerKilometer2 {
		return fmt.Sprintf("%.2f m²", *squareMeters)
	}
	return fmt.Sprintf("%.2f km²", *squareMeters/squareMetersPerKilometer2)
}

// DualLength formats meters in both units, e.g. "1500 m | 1.50 km"
func DualLength(meters *float64) string {
	if meters == nil {
		return NotAvailable
	}
	return fmt.Sprintf("%s m | %.2f km", wholeNumber(*meters), *meters/metersPerKilometer)
}

// DualArea formats square meters in both units, e.g. "3141593 m² | 3.14 km²"
func DualArea(squareMeters *float64) string {
	if squareMeters == nil {
		return NotAvailable
	}
	return fmt.Sprintf("%s m² | %.2f km²", wholeNumber(*squareMeters), *squareMeters/squareMetersPerKilometer2)
}

// wholeNumber rounds half away from zero
func wholeNumber(v float64) string {
	return strconv.FormatFloat(math.Round(v), 'f', 0, 64)
}

// Line is one labelled row of a presented measurement
type Line struct {
	Label string
	Value string
}

// String returns "Label: Value"
func (l Line) String() string {
	if l.Label == "" {
		return l.Value
	}
	return l.Label + ": " + l.Value
}

// Present turns a measurement into display lines, skipping absent values
func Present(m Measurement) []Line {
	if m.Empty() {
		return []Line{{Value: NoData}}
	}

	var lines []Line
	if m.Radius != nil {
		lines = append(lines, Line{Label: "Radius", Value: DualLength(m.Radius)})
	}
	if m.Area != nil {
		lines = append(lines, Line{Label: "Area", Value: DualArea(m.Area)})
	}
	if m.Perimeter != nil {
		lines = append(lines, Line{Label: "Perimeter", Value: DualLength(m.Perimeter)})
	}
	if m.TotalDistance != nil {
		lines = append(lines, Line{Label: "Total distance", Value: DualLength(m.TotalDistance)})
	}
	return lines
}
