// Package integration provides integration testing for the Storely backend
// API. This file covers the HTTP surface against a real database.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	catalogapp "github.com/storely/backend/internal/application/catalog"
	checkoutapp "github.com/storely/backend/internal/application/checkout"
	clientapp "github.com/storely/backend/internal/application/client"
	invoiceapp "github.com/storely/backend/internal/application/invoice"
	paymentapp "github.com/storely/backend/internal/application/payment"
	"github.com/storely/backend/internal/infrastructure/persistence"
	"github.com/storely/backend/internal/interfaces/http/handler"
	"github.com/storely/backend/internal/interfaces/http/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestServer wraps the test database and HTTP engine for API testing
type TestServer struct {
	DB     *TestDB
	Engine *gin.Engine
}

// NewTestServer wires the full HTTP stack against a containerized database
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	gin.SetMode(gin.TestMode)
	testDB := NewTestDB(t)

	clientRepo := persistence.NewGormClientRepository(testDB.DB)
	productRepo := persistence.NewGormProductRepository(testDB.DB)
	transactionRepo := persistence.NewGormTransactionRepository(testDB.DB)
	invoiceRepo := persistence.NewGormInvoiceRepository(testDB.DB)

	clientService := clientapp.NewClientService(clientRepo)
	productService := catalogapp.NewProductService(productRepo)
	paymentService := paymentapp.NewPaymentService(transactionRepo, decimal.NewFromInt(100))
	invoiceService := invoiceapp.NewInvoiceService(invoiceRepo)
	checkoutService := checkoutapp.NewService(clientService, productService, paymentService, invoiceService)

	engine := gin.New()
	r := router.NewRouter(engine)
	r.Register(handler.NewCheckoutHandler(checkoutService)).
		Register(handler.NewInvoiceHandler(invoiceService)).
		Register(handler.NewClientHandler(clientService)).
		Register(handler.NewProductHandler(productService))
	r.Setup()

	return &TestServer{
		DB:     testDB,
		Engine: engine,
	}
}

// Request makes an HTTP request to the test server
func (ts *TestServer) Request(method, path string, body any) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(jsonBody)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	ts.Engine.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestAPI_OrderLifecycle(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ts := NewTestServer(t)

	t.Run("Register client", func(t *testing.T) {
		w := ts.Request(http.MethodPost, "/clients", map[string]any{
			"id":       "1c",
			"name":     "Lucian",
			"email":    "lucian@xpto.com",
			"document": "1234-5678",
			"address": map[string]any{
				"street":     "Rua 123",
				"number":     "99",
				"complement": "Casa Verde",
				"city":       "Criciúma",
				"state":      "SC",
				"zipCode":    "88888-888",
			},
		})

		require.Equal(t, http.StatusCreated, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "Client created", body["message"])
	})

	t.Run("Register products", func(t *testing.T) {
		for _, p := range []map[string]any{
			{"id": "1p", "name": "Notebook", "description": "Portable computer", "purchasePrice": 50.0, "salesPrice": 100.0, "stock": 10},
			{"id": "2p", "name": "Mouse", "description": "Wireless mouse", "purchasePrice": 20.0, "salesPrice": 55.50, "stock": 5},
		} {
			w := ts.Request(http.MethodPost, "/products", p)
			require.Equal(t, http.StatusCreated, w.Code)
		}
	})

	var invoiceID string

	t.Run("Place order above threshold", func(t *testing.T) {
		w := ts.Request(http.MethodPost, "/checkout", map[string]any{
			"clientId": "1c",
			"products": []map[string]any{{"productId": "1p"}, {"productId": "2p"}},
		})

		require.Equal(t, http.StatusCreated, w.Code)
		body := decodeBody(t, w)
		assert.NotEmpty(t, body["id"])
		assert.InDelta(t, 155.50, body["total"].(float64), 0.0001)

		invoice, ok := body["invoice"].(map[string]any)
		require.True(t, ok, "approved order should carry an invoice reference")
		invoiceID = invoice["id"].(string)
		require.NotEmpty(t, invoiceID)
	})

	t.Run("Fetch generated invoice", func(t *testing.T) {
		w := ts.Request(http.MethodGet, "/invoice/"+invoiceID, nil)

		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "Lucian", body["name"])

		items, ok := body["items"].([]any)
		require.True(t, ok)
		require.Len(t, items, 2)
		first := items[0].(map[string]any)
		assert.InDelta(t, 100, first["price"].(float64), 0.0001)
		second := items[1].(map[string]any)
		assert.InDelta(t, 55.50, second["price"].(float64), 0.0001)
	})

	t.Run("Declined order omits invoice", func(t *testing.T) {
		w := ts.Request(http.MethodPost, "/checkout", map[string]any{
			"clientId": "1c",
			"products": []map[string]any{{"productId": "2p"}},
		})

		require.Equal(t, http.StatusCreated, w.Code)
		body := decodeBody(t, w)
		_, hasInvoice := body["invoice"]
		assert.False(t, hasInvoice)
	})

	t.Run("Unknown invoice returns 404", func(t *testing.T) {
		w := ts.Request(http.MethodGet, "/invoice/missing", nil)

		require.Equal(t, http.StatusNotFound, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "Invoice not found", body["error"])
	})

	t.Run("Empty product selection rejected", func(t *testing.T) {
		w := ts.Request(http.MethodPost, "/checkout", map[string]any{
			"clientId": "1c",
			"products": []map[string]any{},
		})

		require.Equal(t, http.StatusBadRequest, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "No products selected", body["error"])
	})
}
