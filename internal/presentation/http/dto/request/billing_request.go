package request

import (
	"github.com/meditrack/pharmacy-pos-api/internal/application/service"
	"github.com/meditrack/pharmacy-pos-api/internal/domain/entity"
	"github.com/meditrack/pharmacy-pos-api/internal/domain/enum"
	"github.com/shopspring/decimal"
)

// BillItemRequest is one line of a create/preview request. Quantity must be
// at least 1 here even though the calculator itself accepts zero; a stored
// bill never carries an empty line.
type BillItemRequest struct {
	MedicineID int64           `json:"medicineId" binding:"required"`
	Name       string          `json:"name"`
	Quantity   int             `json:"quantity" binding:"required,gte=1"`
	Price      decimal.Decimal `json:"price"`
}

// InsuranceRequest is the optional insurance reference on a bill
type InsuranceRequest struct {
	Provider     string `json:"provider"`
	PolicyNumber string `json:"policyNumber"`
}

// CreateBillRequest is the create-bill payload
type CreateBillRequest struct {
	CustomerName  string            `json:"customerName" binding:"required"`
	CustomerPhone string            `json:"customerPhone" binding:"required"`
	Items         []BillItemRequest `json:"items" binding:"required"`
	DiscountType  enum.DiscountType `json:"discountType"`
	DiscountValue decimal.Decimal   `json:"discountValue"`
	PaymentMethod string            `json:"paymentMethod" binding:"required"`
	Insurance     *InsuranceRequest `json:"insuranceInfo"`
}

// CalculateTotalRequest previews totals without issuing a bill
type CalculateTotalRequest struct {
	Items         []BillItemRequest `json:"items" binding:"required"`
	DiscountType  enum.DiscountType `json:"discountType"`
	DiscountValue decimal.Decimal   `json:"discountValue"`
}

// CardDetailsRequest carries card fields for a card payment
type CardDetailsRequest struct {
	Number string `json:"number"`
	Expiry string `json:"expiry"`
	CVV    string `json:"cvv"`
}

// ProcessPaymentRequest is the process-payment payload
type ProcessPaymentRequest struct {
	BillID        *int64              `json:"billId"`
	PaymentMethod string              `json:"paymentMethod" binding:"required"`
	Amount        decimal.Decimal     `json:"amount" binding:"required"`
	CardDetails   *CardDetailsRequest `json:"cardDetails"`
}

// Lines converts request items to service line item inputs
func Lines(items []BillItemRequest) []service.LineItemInput {
	out := make([]service.LineItemInput, len(items))
	for i, item := range items {
		out[i] = service.LineItemInput{
			MedicineID: item.MedicineID,
			Name:       item.Name,
			Quantity:   item.Quantity,
			UnitPrice:  item.Price,
		}
	}
	return out
}

// Insurance converts the optional insurance block to its entity form
func (r *CreateBillRequest) InsuranceInfo() *entity.InsuranceInfo {
	if r.Insurance == nil {
		return nil
	}
	return &entity.InsuranceInfo{
		Provider:     r.Insurance.Provider,
		PolicyNumber: r.Insurance.PolicyNumber,
	}
}

// Card converts the optional card block to its entity form
func (r *ProcessPaymentRequest) Card() *entity.CardDetails {
	if r.CardDetails == nil {
		return nil
	}
	return &entity.CardDetails{
		Number: r.CardDetails.Number,
		Expiry: r.CardDetails.Expiry,
		CVV:    r.CardDetails.CVV,
	}
}
