package service

import (
	"fmt"

	"github.com/meditrack/pharmacy-pos-api/internal/domain/entity"
	"github.com/meditrack/pharmacy-pos-api/internal/domain/enum"
	"github.com/meditrack/pharmacy-pos-api/pkg/apperror"
	"github.com/shopspring/decimal"
)

var (
	hundred           = decimal.NewFromInt(100)
	seniorCitizenRate = decimal.NewFromInt(10) // flat 10%, any supplied value is ignored
)

// LineItemInput is one unpriced medicine line as submitted by the caller
type LineItemInput struct {
	MedicineID int64
	Name       string
	Quantity   int
	UnitPrice  decimal.Decimal
}

// DiscountInput is the discount policy tag plus its value, if the tag
// takes one. Tags are mutually exclusive and never compose.
type DiscountInput struct {
	Type  enum.DiscountType
	Value decimal.Decimal
}

// Totals holds the computed figures of a bill, rounded to 2 decimal places
type Totals struct {
	Subtotal       decimal.Decimal `json:"subtotal"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	TaxAmount      decimal.Decimal `json:"taxAmount"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
}

// Quote is a priced set of line items with its totals
type Quote struct {
	Items  []entity.BillItem
	Totals Totals
}

// PricingService turns line items and a discount policy into bill totals.
// Compute is pure: same inputs, same figures, no side effects.
type PricingService struct {
	taxRatePercent decimal.Decimal
}

// NewPricingService creates a calculator applying the given tax rate
// (a percentage, e.g. 5 for 5% GST) to the post-discount amount
func NewPricingService(taxRatePercent decimal.Decimal) *PricingService {
	return &PricingService{taxRatePercent: taxRatePercent}
}

// Compute prices each line, resolves the discount, applies tax and returns
// the quote. All arithmetic stays in fixed-point decimals, rounded 2 dp
// half-up at each published figure. Line totals are rounded before the
// subtotal sums them, so the stored subtotal always equals the sum of the
// stored line totals even for sub-cent unit prices. An empty item list is
// valid and yields all-zero totals.
func (s *PricingService) Compute(items []LineItemInput, discount DiscountInput) (*Quote, error) {
	priced := make([]entity.BillItem, 0, len(items))
	subtotal := decimal.Zero

	for i, item := range items {
		if item.Quantity < 0 {
			return nil, apperror.NewValidationError(fmt.Sprintf("line item %d: quantity must not be negative", i))
		}
		if item.UnitPrice.IsNegative() {
			return nil, apperror.NewValidationError(fmt.Sprintf("line item %d: unit price must not be negative", i))
		}

		lineTotal := item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))).Round(2)
		subtotal = subtotal.Add(lineTotal)

		priced = append(priced, entity.BillItem{
			MedicineID: item.MedicineID,
			Name:       item.Name,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice.Round(2),
			LineTotal:  lineTotal,
		})
	}

	discountAmount, err := resolveDiscount(subtotal, discount)
	if err != nil {
		return nil, err
	}
	discountAmount = discountAmount.Round(2)

	taxable := subtotal.Sub(discountAmount)
	taxAmount := taxable.Mul(s.taxRatePercent).Div(hundred).Round(2)
	totalAmount := taxable.Add(taxAmount)

	return &Quote{
		Items: priced,
		Totals: Totals{
			Subtotal:       subtotal.Round(2),
			DiscountAmount: discountAmount,
			TaxAmount:      taxAmount,
			TotalAmount:    totalAmount.Round(2),
		},
	}, nil
}

// resolveDiscount dispatches on the policy tag. The result is always within
// [0, subtotal]: percentage values are bounded, fixed amounts are capped.
func resolveDiscount(subtotal decimal.Decimal, discount DiscountInput) (decimal.Decimal, error) {
	switch discount.Type {
	case enum.DiscountNone:
		return decimal.Zero, nil
	case enum.DiscountPercentage:
		if discount.Value.IsNegative() || discount.Value.GreaterThan(hundred) {
			return decimal.Zero, apperror.NewValidationError("percentage discount must be between 0 and 100")
		}
		return subtotal.Mul(discount.Value).Div(hundred), nil
	case enum.DiscountFixed:
		if discount.Value.IsNegative() {
			return decimal.Zero, apperror.NewValidationError("fixed discount must not be negative")
		}
		if discount.Value.GreaterThan(subtotal) {
			return subtotal, nil
		}
		return discount.Value, nil
	case enum.DiscountSeniorCitizen:
		return subtotal.Mul(seniorCitizenRate).Div(hundred), nil
	default:
		return decimal.Zero, apperror.NewValidationError("unknown discount type")
	}
}
