package service

import (
	"context"
	"time"

	"github.com/meditrack/pharmacy-pos-api/internal/domain/entity"
	"github.com/meditrack/pharmacy-pos-api/internal/domain/repository"
	"github.com/meditrack/pharmacy-pos-api/pkg/apperror"
	"github.com/meditrack/pharmacy-pos-api/pkg/sequence"
	"github.com/shopspring/decimal"
)

const transactionPrefix = "TXN"

// PaymentService validates payment details and issues receipts. It never
// moves funds and keeps no storage of its own; the ledger is consulted only
// to reject receipts against bills that do not exist.
type PaymentService struct {
	ledger       repository.BillRepository
	transactions *sequence.TokenGenerator
	now          func() time.Time
}

// NewPaymentService creates a new payment service
func NewPaymentService(ledger repository.BillRepository) *PaymentService {
	return &PaymentService{
		ledger:       ledger,
		transactions: sequence.NewTokenGenerator(transactionPrefix),
		now:          time.Now,
	}
}

// ProcessPaymentInput represents a payment request
type ProcessPaymentInput struct {
	BillID      *int64
	Method      string
	Amount      decimal.Decimal
	CardDetails *entity.CardDetails
}

// ProcessPayment validates the payment and issues a receipt with a unique
// transaction id. Card payments require complete card details. The amount
// is not matched against the referenced bill's total; split payments across
// several receipts are allowed.
func (s *PaymentService) ProcessPayment(ctx context.Context, input *ProcessPaymentInput) (*entity.PaymentReceipt, error) {
	if input.Method == "" {
		return nil, apperror.NewValidationError("payment method is required")
	}
	if !input.Amount.IsPositive() {
		return nil, apperror.NewValidationError("payment amount must be positive")
	}
	if input.Method == "card" && !input.CardDetails.Complete() {
		return nil, apperror.NewValidationError("card payments require number, expiry and cvv")
	}

	if input.BillID != nil {
		bill, err := s.ledger.GetByID(ctx, *input.BillID)
		if err != nil {
			return nil, err
		}
		if bill == nil {
			return nil, apperror.NewNotFoundError("Bill")
		}
	}

	return &entity.PaymentReceipt{
		TransactionID: s.transactions.Next(),
		BillID:        input.BillID,
		Method:        input.Method,
		Amount:        input.Amount.Round(2),
		Timestamp:     s.now(),
		Outcome:       "approved",
	}, nil
}
