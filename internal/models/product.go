package models

// Product is the catalogue entry served by the commerce API.
type Product struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Category    string  `json:"category"`
	Images      string  `json:"images"`
	Price       float64 `json:"price"`
	OriginPrice float64 `json:"origin_price"`
	Description string  `json:"description,omitempty"`
}

// OnSale reports whether the current price undercuts the original price.
func (p Product) OnSale() bool {
	return p.OriginPrice > 0 && p.Price > 0 && p.Price < p.OriginPrice
}

// EffectivePrice is the price a line is charged at.
func (p Product) EffectivePrice() float64 {
	if p.Price <= 0 && p.OriginPrice > 0 {
		return p.OriginPrice
	}
	return p.Price
}
