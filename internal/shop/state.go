// Package shop holds the storefront and dashboard state and the dispatcher
// that applies user intents to it through the commerce API.
package shop

import (
	"storefront/internal/models"
)

// AllCategories selects every product in FilterProducts.
const AllCategories = "全部"

// State is the working copy of remote data for one session step. Fetch
// results replace whole slices; nothing is patched in place.
type State struct {
	Products []models.Product
	Cart     models.Cart
	Orders   []models.Order
	Category string
}

// WithProducts returns st with the product list replaced.
func (st State) WithProducts(products []models.Product) State {
	st.Products = products
	return st
}

// WithCart returns st with the cart replaced.
func (st State) WithCart(cart models.Cart) State {
	st.Cart = cart
	return st
}

// WithOrders returns st with the order list replaced.
func (st State) WithOrders(orders []models.Order) State {
	st.Orders = orders
	return st
}

// WithCategory returns st with the category filter set.
func (st State) WithCategory(category string) State {
	st.Category = category
	return st
}

// VisibleProducts applies the category filter.
func (st State) VisibleProducts() []models.Product {
	return FilterProducts(st.Products, st.Category)
}

// FindOrder returns the order with id.
func (st State) FindOrder(id string) (models.Order, bool) {
	for _, order := range st.Orders {
		if order.ID == id {
			return order, true
		}
	}
	return models.Order{}, false
}

// FilterProducts keeps products in category; empty or AllCategories keeps all.
func FilterProducts(products []models.Product, category string) []models.Product {
	if category == "" || category == AllCategories {
		return products
	}
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// Categories lists distinct categories in first-seen order.
func Categories(products []models.Product) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0)
	for _, p := range products {
		if p.Category == "" {
			continue
		}
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}
