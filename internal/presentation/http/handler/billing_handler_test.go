package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/meditrack/pharmacy-pos-api/internal/application/service"
	"github.com/meditrack/pharmacy-pos-api/internal/infrastructure/ledger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := ledger.NewMemoryLedger()
	pricing := service.NewPricingService(decimal.NewFromInt(5))
	billing := NewBillingHandler(service.NewBillingService(pricing, store))
	payments := NewPaymentHandler(service.NewPaymentService(store))

	router := gin.New()
	router.POST("/billing", billing.Create)
	router.GET("/billing", billing.List)
	router.GET("/billing/:id", billing.Get)
	router.POST("/billing/calculate-total", billing.CalculateTotal)
	router.POST("/billing/process-payment", payments.Process)
	return router
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Errors  json.RawMessage `json:"errors"`
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec, env
}

const createBillBody = `{
	"customerName": "Asha Verma",
	"customerPhone": "9876543210",
	"items": [
		{"medicineId": 1, "name": "Paracetamol", "quantity": 2, "price": "10.00"},
		{"medicineId": 2, "name": "Amoxicillin", "quantity": 1, "price": "5.00"}
	],
	"discountType": "percentage",
	"discountValue": "10",
	"paymentMethod": "cash"
}`

func TestBillingCreate(t *testing.T) {
	router := newTestRouter(t)

	rec, env := doJSON(t, router, http.MethodPost, "/billing", createBillBody)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, env.Success)

	var bill struct {
		ID          int64  `json:"id"`
		BillNumber  string `json:"billNumber"`
		Subtotal    string `json:"subtotal"`
		TotalAmount string `json:"totalAmount"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &bill))
	assert.Equal(t, int64(1), bill.ID)
	assert.True(t, strings.HasPrefix(bill.BillNumber, "BILL-"))
	assert.Equal(t, "25", bill.Subtotal)
	assert.Equal(t, "23.63", bill.TotalAmount)
}

func TestBillingCreate_MissingFields(t *testing.T) {
	router := newTestRouter(t)

	rec, env := doJSON(t, router, http.MethodPost, "/billing", `{"customerName": "Asha Verma"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, env.Success)

	// Binding failures itemize the offending fields.
	var fields []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(env.Errors, &fields))
	require.NotEmpty(t, fields)
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, f.Field)
	}
	assert.Contains(t, names, "CustomerPhone")
	assert.Contains(t, names, "Items")
	assert.Contains(t, names, "PaymentMethod")
}

func TestBillingCreate_InvalidDiscount(t *testing.T) {
	router := newTestRouter(t)

	body := strings.Replace(createBillBody, `"discountValue": "10"`, `"discountValue": "150"`, 1)
	rec, env := doJSON(t, router, http.MethodPost, "/billing", body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, env.Success)
}

func TestBillingGet(t *testing.T) {
	router := newTestRouter(t)
	_, _ = doJSON(t, router, http.MethodPost, "/billing", createBillBody)

	rec, env := doJSON(t, router, http.MethodGet, "/billing/1", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)

	rec, env = doJSON(t, router, http.MethodGet, "/billing/99", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, env.Success)

	rec, _ = doJSON(t, router, http.MethodGet, "/billing/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBillingList(t *testing.T) {
	router := newTestRouter(t)
	for i := 0; i < 3; i++ {
		_, _ = doJSON(t, router, http.MethodPost, "/billing", createBillBody)
	}

	rec, env := doJSON(t, router, http.MethodGet, "/billing?page=1&limit=2", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var page struct {
		Count       int   `json:"count"`
		Total       int64 `json:"total"`
		CurrentPage int   `json:"currentPage"`
		TotalPages  int   `json:"totalPages"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &page))
	assert.Equal(t, 2, page.Count)
	assert.Equal(t, int64(3), page.Total)
	assert.Equal(t, 1, page.CurrentPage)
	assert.Equal(t, 2, page.TotalPages)
}

func TestCalculateTotal(t *testing.T) {
	router := newTestRouter(t)

	body := `{
		"items": [
			{"medicineId": 1, "quantity": 2, "price": "10.00"},
			{"medicineId": 2, "quantity": 1, "price": "5.00"}
		],
		"discountType": "percentage",
		"discountValue": "10"
	}`
	rec, env := doJSON(t, router, http.MethodPost, "/billing/calculate-total", body)

	assert.Equal(t, http.StatusOK, rec.Code)

	var totals struct {
		Subtotal       string `json:"subtotal"`
		DiscountAmount string `json:"discountAmount"`
		TaxAmount      string `json:"taxAmount"`
		TotalAmount    string `json:"totalAmount"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &totals))
	assert.Equal(t, "25", totals.Subtotal)
	assert.Equal(t, "2.5", totals.DiscountAmount)
	assert.Equal(t, "1.13", totals.TaxAmount)
	assert.Equal(t, "23.63", totals.TotalAmount)

	// Previews never issue bills.
	_, listEnv := doJSON(t, router, http.MethodGet, "/billing", "")
	var page struct {
		Total int64 `json:"total"`
	}
	require.NoError(t, json.Unmarshal(listEnv.Data, &page))
	assert.Zero(t, page.Total)
}

func TestProcessPayment(t *testing.T) {
	router := newTestRouter(t)
	_, _ = doJSON(t, router, http.MethodPost, "/billing", createBillBody)

	rec, env := doJSON(t, router, http.MethodPost, "/billing/process-payment", `{
		"billId": 1,
		"paymentMethod": "cash",
		"amount": "23.63"
	}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	var receipt struct {
		TransactionID string `json:"transactionId"`
		Outcome       string `json:"outcome"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &receipt))
	assert.True(t, strings.HasPrefix(receipt.TransactionID, "TXN-"))
	assert.Equal(t, "approved", receipt.Outcome)

	rec, env = doJSON(t, router, http.MethodPost, "/billing/process-payment", `{
		"billId": 99,
		"paymentMethod": "cash",
		"amount": "5.00"
	}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, env.Success)

	rec, _ = doJSON(t, router, http.MethodPost, "/billing/process-payment", `{
		"paymentMethod": "card",
		"amount": "5.00",
		"cardDetails": {"number": "4111111111111111", "expiry": "12/27"}
	}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
