package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/meditrack/pharmacy-pos-api/internal/application/service"
	"github.com/meditrack/pharmacy-pos-api/internal/domain/repository"
	"github.com/meditrack/pharmacy-pos-api/internal/presentation/http/dto/request"
	"github.com/meditrack/pharmacy-pos-api/internal/presentation/http/dto/response"
	"github.com/meditrack/pharmacy-pos-api/pkg/pagination"
)

// BillingHandler handles bill-related HTTP requests
type BillingHandler struct {
	billingService *service.BillingService
}

// NewBillingHandler creates a new billing handler
func NewBillingHandler(billingService *service.BillingService) *BillingHandler {
	return &BillingHandler{billingService: billingService}
}

// Create handles creating a bill
func (h *BillingHandler) Create(c *gin.Context) {
	var req request.CreateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	bill, err := h.billingService.CreateBill(c.Request.Context(), &service.CreateBillInput{
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		Items:         request.Lines(req.Items),
		Discount: service.DiscountInput{
			Type:  req.DiscountType,
			Value: req.DiscountValue,
		},
		PaymentMethod: req.PaymentMethod,
		Insurance:     req.InsuranceInfo(),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Bill created successfully", bill)
}

// Get handles getting a single bill
func (h *BillingHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid bill ID")
		return
	}

	bill, err := h.billingService.GetBill(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bill retrieved successfully", bill)
}

// List handles listing bills with pagination and optional phone filter
func (h *BillingHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	params := &repository.BillFilterParams{
		Pagination: &pagination.Params{
			Page:  page,
			Limit: limit,
		},
		CustomerPhone: c.Query("customer_phone"),
	}

	result, err := h.billingService.ListBills(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bills retrieved successfully", result)
}

// CalculateTotal handles previewing bill totals without creating a bill
func (h *BillingHandler) CalculateTotal(c *gin.Context) {
	var req request.CalculateTotalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	totals, err := h.billingService.PreviewTotals(request.Lines(req.Items), service.DiscountInput{
		Type:  req.DiscountType,
		Value: req.DiscountValue,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Totals calculated successfully", totals)
}
