package revenue

import "storefront/internal/models"

// DefaultPalette is the dashboard pie palette, cycled when there are more
// labels than colors.
var DefaultPalette = []string{"#DACBFF", "#9D7FEA", "#5434A7", "#301E5F"}

const noDataColor = "#E0E0E0"

// Chart is the payload handed to the c3 renderer.
type Chart struct {
	Type    string            `json:"type"`
	Columns [][]any           `json:"columns"`
	Colors  map[string]string `json:"colors"`
}

// Palette assigns a color to every bucket label.
func Palette(buckets []models.RevenueBucket) map[string]string {
	colors := make(map[string]string, len(buckets))
	for i, b := range buckets {
		if b.Label == NoDataLabel {
			colors[b.Label] = noDataColor
			continue
		}
		colors[b.Label] = DefaultPalette[i%len(DefaultPalette)]
	}
	return colors
}

// PieChart builds a pie chart from buckets.
func PieChart(buckets []models.RevenueBucket) Chart {
	columns := make([][]any, 0, len(buckets))
	for _, b := range buckets {
		columns = append(columns, []any{b.Label, b.Revenue})
	}
	return Chart{
		Type:    "pie",
		Columns: columns,
		Colors:  Palette(buckets),
	}
}
