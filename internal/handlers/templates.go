package handlers

import (
	"encoding/json"
	"html/template"
	"time"

	"storefront/internal/cart"
	"storefront/internal/format"
	"storefront/internal/models"
)

// TemplateFuncs returns the helpers available to every template. Dates
// are rendered in loc.
func TemplateFuncs(loc *time.Location) template.FuncMap {
	return template.FuncMap{
		"price":     format.Price,
		"paidLabel": format.PaidLabel,
		"orderDate": func(unix int64) string { return format.OrderDate(unix, loc) },
		"subtotal":  func(items []models.CartItem) float64 { return cart.Subtotal(items) },
		"itemCount": func(items []models.CartItem) int { return cart.Count(items) },
		"lineTotal": func(item models.CartItem) float64 { return item.Product.EffectivePrice() * float64(item.Quantity) },
		"toJSON": func(v any) template.JS {
			raw, err := json.Marshal(v)
			if err != nil {
				return template.JS("null")
			}
			return template.JS(raw)
		},
	}
}
