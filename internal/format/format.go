// Package format renders prices and dates for the storefront and dashboard.
package format

import (
	"fmt"
	"math"
	"strings"
	"time"
	_ "time/tzdata"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// CurrencyPrefix is prepended to every formatted price.
const CurrencyPrefix = "NT$"

var printer = message.NewPrinter(language.TraditionalChinese)

// Price renders v with the currency prefix and thousands separators.
// Fractions are kept to two places with trailing zeros dropped.
func Price(v float64) string {
	if v == math.Trunc(v) {
		return CurrencyPrefix + printer.Sprintf("%d", int64(v))
	}
	s := printer.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	return CurrencyPrefix + s
}

// OrderDate renders a unix timestamp (seconds) as YYYY/M/D in loc.
func OrderDate(unixSeconds int64, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	t := time.Unix(unixSeconds, 0).In(loc)
	return fmt.Sprintf("%d/%d/%d", t.Year(), int(t.Month()), t.Day())
}

// LoadZone resolves a display zone, falling back to UTC+8 when name is
// unknown.
func LoadZone(name string) *time.Location {
	if name == "" {
		name = "Asia/Taipei"
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.FixedZone("UTC+8", 8*60*60)
	}
	return loc
}

// PaidLabel is the order status text shown on the dashboard.
func PaidLabel(paid bool) string {
	if paid {
		return "已處理"
	}
	return "未處理"
}
