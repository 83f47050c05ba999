package service

import (
	"context"

	"github.com/meditrack/pharmacy-pos-api/internal/domain/entity"
	"github.com/meditrack/pharmacy-pos-api/internal/domain/enum"
	"github.com/meditrack/pharmacy-pos-api/internal/domain/repository"
	"github.com/meditrack/pharmacy-pos-api/pkg/apperror"
	"github.com/meditrack/pharmacy-pos-api/pkg/pagination"
)

// BillingService issues bills into the ledger and answers bill queries
type BillingService struct {
	pricing *PricingService
	ledger  repository.BillRepository
}

// NewBillingService creates a new billing service
func NewBillingService(pricing *PricingService, ledger repository.BillRepository) *BillingService {
	return &BillingService{
		pricing: pricing,
		ledger:  ledger,
	}
}

// CreateBillInput represents the create bill input
type CreateBillInput struct {
	CustomerName  string
	CustomerPhone string
	Items         []LineItemInput
	Discount      DiscountInput
	PaymentMethod string
	Insurance     *entity.InsuranceInfo
}

// CreateBill prices the items and appends the resulting bill to the ledger.
// Identity (id, bill number) and issue time are assigned by the ledger in
// the same atomic step as the append; the bill is immutable from then on.
func (s *BillingService) CreateBill(ctx context.Context, input *CreateBillInput) (*entity.Bill, error) {
	quote, err := s.pricing.Compute(input.Items, input.Discount)
	if err != nil {
		return nil, err
	}

	bill := &entity.Bill{
		Customer: entity.CustomerInfo{
			Name:  input.CustomerName,
			Phone: input.CustomerPhone,
		},
		Items:          quote.Items,
		Subtotal:       quote.Totals.Subtotal,
		DiscountAmount: quote.Totals.DiscountAmount,
		TaxAmount:      quote.Totals.TaxAmount,
		TotalAmount:    quote.Totals.TotalAmount,
		DiscountType:   input.Discount.Type,
		PaymentMethod:  input.PaymentMethod,
		Insurance:      input.Insurance,
		Status:         enum.BillStatusCompleted,
	}

	return s.ledger.Append(ctx, bill)
}

// GetBill retrieves a bill by its ledger id
func (s *BillingService) GetBill(ctx context.Context, id int64) (*entity.Bill, error) {
	bill, err := s.ledger.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, apperror.NewNotFoundError("Bill")
	}
	return bill, nil
}

// ListBills lists ledger bills in insertion order, optionally filtered by
// exact customer phone match
func (s *BillingService) ListBills(ctx context.Context, params *repository.BillFilterParams) (*pagination.Result[entity.Bill], error) {
	if params.Pagination == nil {
		params.Pagination = pagination.Default()
	}
	params.Pagination.Validate()
	bills, total, err := s.ledger.List(ctx, params)
	if err != nil {
		return nil, err
	}
	return pagination.NewResult(bills, params.Pagination, total), nil
}

// PreviewTotals computes the figures a bill would carry without touching
// the ledger
func (s *BillingService) PreviewTotals(items []LineItemInput, discount DiscountInput) (*Totals, error) {
	quote, err := s.pricing.Compute(items, discount)
	if err != nil {
		return nil, err
	}
	return &quote.Totals, nil
}
