package models

// OrderUser captures the customer contact details submitted at checkout.
type OrderUser struct {
	Name    string `json:"name"`
	Tel     string `json:"tel"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Payment string `json:"payment"`
}

// LineItem is a product snapshot embedded in a placed order.
type LineItem struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Category    string  `json:"category"`
	Images      string  `json:"images,omitempty"`
	Price       float64 `json:"price"`
	OriginPrice float64 `json:"origin_price"`
	Quantity    int     `json:"quantity"`
}

// Order defines an order as returned by the admin API. CreatedAt and
// UpdatedAt are unix seconds.
type Order struct {
	ID        string     `json:"id"`
	CreatedAt int64      `json:"createdAt"`
	UpdatedAt int64      `json:"updatedAt"`
	User      OrderUser  `json:"user"`
	Paid      bool       `json:"paid"`
	Total     float64    `json:"total"`
	Products  []LineItem `json:"products"`
}

// ItemTitles lists the line item titles in order.
func (o Order) ItemTitles() []string {
	titles := make([]string, 0, len(o.Products))
	for _, item := range o.Products {
		titles = append(titles, item.Title)
	}
	return titles
}
