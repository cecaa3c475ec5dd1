package models

// RevenueBucket is a derived (label, revenue) pair used for charting.
type RevenueBucket struct {
	Label   string  `json:"label"`
	Revenue float64 `json:"revenue"`
}
