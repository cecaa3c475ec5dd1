package models

// CartItem ties a product snapshot to a quantity. ID is assigned by the
// remote service and is unrelated to Product.ID.
type CartItem struct {
	ID       string  `json:"id"`
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Cart is the remote cart listing.
type Cart struct {
	Items      []CartItem `json:"carts"`
	Total      float64    `json:"total"`
	FinalTotal float64    `json:"finalTotal"`
}

// IsEmpty reports whether the cart has no items.
func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}
