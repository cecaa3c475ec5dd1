package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"storefront/internal/models"
)

var errRemote = errors.New("remote unavailable")

type remoteCall struct {
	Method   string
	ID       string
	Quantity int
	Paid     bool
}

// stubRemote serves canned data and records every call.
type stubRemote struct {
	products []models.Product
	cart     models.Cart
	orders   []models.Order
	calls    []remoteCall
	failOn   map[string]error
	created  models.OrderUser
}

func newStubRemote() *stubRemote {
	return &stubRemote{failOn: map[string]error{}}
}

func (s *stubRemote) record(c remoteCall) error {
	s.calls = append(s.calls, c)
	return s.failOn[c.Method]
}

func (s *stubRemote) count(method string) int {
	n := 0
	for _, c := range s.calls {
		if c.Method == method {
			n++
		}
	}
	return n
}

func (s *stubRemote) find(method string) (remoteCall, bool) {
	for _, c := range s.calls {
		if c.Method == method {
			return c, true
		}
	}
	return remoteCall{}, false
}

func (s *stubRemote) ListProducts(context.Context) ([]models.Product, error) {
	return s.products, s.record(remoteCall{Method: "ListProducts"})
}

func (s *stubRemote) ListCart(context.Context) (models.Cart, error) {
	return s.cart, s.record(remoteCall{Method: "ListCart"})
}

func (s *stubRemote) AddCartItem(_ context.Context, productID string, quantity int) error {
	return s.record(remoteCall{Method: "AddCartItem", ID: productID, Quantity: quantity})
}

func (s *stubRemote) UpdateCartItem(_ context.Context, id string, quantity int) error {
	return s.record(remoteCall{Method: "UpdateCartItem", ID: id, Quantity: quantity})
}

func (s *stubRemote) DeleteCartItem(_ context.Context, id string) error {
	return s.record(remoteCall{Method: "DeleteCartItem", ID: id})
}

func (s *stubRemote) ClearCart(context.Context) error {
	return s.record(remoteCall{Method: "ClearCart"})
}

func (s *stubRemote) CreateOrder(_ context.Context, user models.OrderUser) (models.Order, error) {
	s.created = user
	return models.Order{ID: "order-new", User: user}, s.record(remoteCall{Method: "CreateOrder"})
}

func (s *stubRemote) ListOrders(context.Context) ([]models.Order, error) {
	return s.orders, s.record(remoteCall{Method: "ListOrders"})
}

func (s *stubRemote) SetOrderPaid(_ context.Context, id string, paid bool) error {
	return s.record(remoteCall{Method: "SetOrderPaid", ID: id, Paid: paid})
}

func (s *stubRemote) DeleteOrder(_ context.Context, id string) error {
	return s.record(remoteCall{Method: "DeleteOrder", ID: id})
}

func (s *stubRemote) DeleteAllOrders(context.Context) error {
	return s.record(remoteCall{Method: "DeleteAllOrders"})
}

/* =========================
   HTTP HELPERS
========================= */

var testSessionSecret = []byte("test-session-secret")

const flashReadPath = "/test/flashes"

func newTestEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(FlashSessions(testSessionSecret))
	r.SetFuncMap(TemplateFuncs(time.UTC))
	r.LoadHTMLGlob("../../templates/**/*")
	r.GET(flashReadPath, func(c *gin.Context) {
		c.JSON(http.StatusOK, popFlash(c))
	})
	return r
}

func postForm(r http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

// flashesFrom replays the session cookies set on w and returns the
// pending flash messages.
func flashesFrom(t *testing.T, w *httptest.ResponseRecorder) []flashMessage {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, flashReadPath, nil)
	for _, c := range w.Result().Cookies() {
		req.AddCookie(c)
	}
	read := httptest.NewRecorder()
	newTestEngine().ServeHTTP(read, req)
	require.Equal(t, http.StatusOK, read.Code)

	var messages []flashMessage
	require.NoError(t, json.Unmarshal(read.Body.Bytes(), &messages))
	return messages
}

func sampleProducts() []models.Product {
	return []models.Product{
		{ID: "p1", Title: "Antony 雙人床墊", Category: "床架", Price: 9000, OriginPrice: 12000},
		{ID: "p2", Title: "Charles 系列儲物組合", Category: "收納", Price: 2000, OriginPrice: 2000},
	}
}

func sampleCart() models.Cart {
	items := []models.CartItem{
		{ID: "c1", Product: sampleProducts()[0], Quantity: 2},
	}
	return models.Cart{Items: items, Total: 24000, FinalTotal: 18000}
}

func sampleOrders() []models.Order {
	return []models.Order{
		{
			ID:        "o1",
			CreatedAt: 1700000000,
			User:      models.OrderUser{Name: "王小明", Tel: "0912345678", Email: "a@b.co", Address: "台北市"},
			Products: []models.LineItem{
				{Title: "Antony 雙人床墊", Category: "床架", Price: 9000, Quantity: 1},
				{Title: "Charles 系列儲物組合", Category: "收納", Price: 2000, Quantity: 3},
			},
		},
		{
			ID:        "o2",
			CreatedAt: 1700086400,
			Paid:      true,
			User:      models.OrderUser{Name: "陳美美"},
			Products:  []models.LineItem{{Title: "Jordan 雙人床架", Category: "床架", Price: 3000, Quantity: 2}},
		},
	}
}
