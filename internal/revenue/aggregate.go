// Package revenue reduces order line items into chartable revenue buckets.
package revenue

import (
	"fmt"
	"sort"
	"strings"

	"storefront/internal/models"
)

// GroupBy selects the bucket key.
type GroupBy string

const (
	ByProduct  GroupBy = "product"
	ByCategory GroupBy = "category"
)

const (
	// UncategorizedLabel replaces an empty category.
	UncategorizedLabel = "uncategorized"
	// NoDataLabel and NoDataValue form the placeholder slice drawn when there
	// is nothing to aggregate.
	NoDataLabel = "no data"
	NoDataValue = 1.0
	// OtherLabel is the default tail bucket for TopN.
	OtherLabel = "其他"
)

// ParseGroupBy accepts "product" or "category"; empty means product.
func ParseGroupBy(value string) (GroupBy, error) {
	switch GroupBy(strings.ToLower(strings.TrimSpace(value))) {
	case "", ByProduct:
		return ByProduct, nil
	case ByCategory:
		return ByCategory, nil
	default:
		return "", fmt.Errorf("unknown groupBy %q", value)
	}
}

func labelFor(item models.LineItem, by GroupBy) string {
	if by == ByCategory {
		if strings.TrimSpace(item.Category) == "" {
			return UncategorizedLabel
		}
		return item.Category
	}
	return item.Title
}

// LineRevenue is price times quantity, with a missing quantity counted as 1.
func LineRevenue(item models.LineItem) float64 {
	quantity := item.Quantity
	if quantity == 0 {
		quantity = 1
	}
	return item.Price * float64(quantity)
}

// Aggregate sums line revenue per label across all orders and returns the
// buckets sorted by revenue, highest first. Ties keep first-seen order.
func Aggregate(orders []models.Order, by GroupBy) []models.RevenueBucket {
	totals := make(map[string]float64)
	labels := make([]string, 0)

	for _, order := range orders {
		for _, item := range order.Products {
			label := labelFor(item, by)
			if _, ok := totals[label]; !ok {
				labels = append(labels, label)
			}
			totals[label] += LineRevenue(item)
		}
	}

	if len(labels) == 0 {
		return []models.RevenueBucket{{Label: NoDataLabel, Revenue: NoDataValue}}
	}

	buckets := make([]models.RevenueBucket, 0, len(labels))
	for _, label := range labels {
		buckets = append(buckets, models.RevenueBucket{Label: label, Revenue: totals[label]})
	}
	sort.SliceStable(buckets, func(i, j int) bool {
		return buckets[i].Revenue > buckets[j].Revenue
	})
	return buckets
}

// TopN keeps the first n buckets and folds the rest into one bucket named
// other. The total is unchanged.
func TopN(buckets []models.RevenueBucket, n int, other string) []models.RevenueBucket {
	if n <= 0 || len(buckets) <= n {
		out := make([]models.RevenueBucket, len(buckets))
		copy(out, buckets)
		return out
	}

	out := make([]models.RevenueBucket, 0, n+1)
	out = append(out, buckets[:n]...)

	rest := models.RevenueBucket{Label: other}
	for _, b := range buckets[n:] {
		rest.Revenue += b.Revenue
	}
	return append(out, rest)
}

// Total sums bucket revenue.
func Total(buckets []models.RevenueBucket) float64 {
	var sum float64
	for _, b := range buckets {
		sum += b.Revenue
	}
	return sum
}
