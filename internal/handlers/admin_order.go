package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"storefront/internal/models"
	"storefront/internal/revenue"
	"storefront/internal/shop"
)

const ordersPage = "/admin/orders"

type orderRow struct {
	models.Order
	Items string
}

// AdminOrdersPage renders the order table with the revenue chart.
func AdminOrdersPage(remote shop.Remote) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer handlePanic(c, "GET /admin/orders")

		page, limit, err := parsePaginationParams(c.Query("page"), c.Query("limit"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, "GET /admin/orders", "invalid pagination params")
			return
		}

		s := newSession(c, remote)
		st, _ := s.dispatcher.Dispatch(c.Request.Context(), shop.State{}, shop.RefreshOrders{})

		start, end, pages := pageWindow(len(st.Orders), page, limit)
		rows := make([]orderRow, 0, end-start)
		for _, o := range st.Orders[start:end] {
			rows = append(rows, orderRow{Order: o, Items: strings.Join(o.ItemTitles(), ", ")})
		}

		buckets := revenue.TopN(revenue.Aggregate(st.Orders, revenue.ByCategory), 3, revenue.OtherLabel)

		c.HTML(http.StatusOK, "orders.html", gin.H{
			"Orders":  rows,
			"Total":   len(st.Orders),
			"Page":    page,
			"Pages":   pages,
			"Limit":   limit,
			"Chart":   revenue.PieChart(buckets),
			"Flashes": append(popFlash(c), s.flash.messages...),
		})
	}
}

// runOrderIntent applies intent to a freshly fetched order list and
// returns to the order page.
func runOrderIntent(c *gin.Context, remote shop.Remote, intent shop.Intent) {
	s := newSession(c, remote)

	st, err := s.dispatcher.Dispatch(c.Request.Context(), shop.State{}, shop.RefreshOrders{})
	if err == nil {
		_, _ = s.dispatcher.Dispatch(c.Request.Context(), st, intent)
	}
	s.finish(c, ordersPage)
}

// ToggleOrderPaid flips an order between paid and unpaid.
func ToggleOrderPaid(remote shop.Remote) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer handlePanic(c, "POST /admin/orders/:id/paid")
		runOrderIntent(c, remote, shop.ToggleOrderPaid{OrderID: c.Param("id")})
	}
}

// DeleteOrder removes one order after confirmation.
func DeleteOrder(remote shop.Remote) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer handlePanic(c, "POST /admin/orders/:id/delete")
		runOrderIntent(c, remote, shop.DeleteOrder{OrderID: c.Param("id")})
	}
}

// DeleteAllOrders removes every order after confirmation.
func DeleteAllOrders(remote shop.Remote) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer handlePanic(c, "POST /admin/orders/delete-all")
		runOrderIntent(c, remote, shop.DeleteAllOrders{})
	}
}
