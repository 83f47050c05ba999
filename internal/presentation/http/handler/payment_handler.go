package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/meditrack/pharmacy-pos-api/internal/application/service"
	"github.com/meditrack/pharmacy-pos-api/internal/presentation/http/dto/request"
	"github.com/meditrack/pharmacy-pos-api/internal/presentation/http/dto/response"
)

// PaymentHandler handles payment HTTP requests
type PaymentHandler struct {
	paymentService *service.PaymentService
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentService *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// Process handles validating a payment and issuing a receipt
func (h *PaymentHandler) Process(c *gin.Context) {
	var req request.ProcessPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	receipt, err := h.paymentService.ProcessPayment(c.Request.Context(), &service.ProcessPaymentInput{
		BillID:      req.BillID,
		Method:      req.PaymentMethod,
		Amount:      req.Amount,
		CardDetails: req.Card(),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment processed successfully", receipt)
}
