package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"storefront/internal/revenue"
	"storefront/internal/shop"
)

const defaultTopN = 3

// RevenueChart answers the c3 pie chart data for the dashboard.
// Query: groupBy=product|category, top=N (0 keeps every bucket).
func RevenueChart(remote shop.Remote) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer handlePanic(c, "GET /admin/api/chart")

		by, err := revenue.ParseGroupBy(c.Query("groupBy"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, "GET /admin/api/chart", err.Error())
			return
		}

		top := defaultTopN
		if raw := c.Query("top"); raw != "" {
			top, err = strconv.Atoi(raw)
			if err != nil || top < 0 {
				respondWithError(c, http.StatusBadRequest, "GET /admin/api/chart", "invalid top")
				return
			}
		}

		orders, err := remote.ListOrders(c.Request.Context())
		if err != nil {
			respondWithError(c, http.StatusBadGateway, "GET /admin/api/chart", "could not load orders")
			return
		}

		buckets := revenue.Aggregate(orders, by)
		if top > 0 {
			buckets = revenue.TopN(buckets, top, revenue.OtherLabel)
		}

		c.JSON(http.StatusOK, gin.H{
			"groupBy": string(by),
			"total":   revenue.Total(buckets),
			"buckets": buckets,
			"chart":   revenue.PieChart(buckets),
		})
	}
}
