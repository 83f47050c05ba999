package service

import (
	"context"
	"testing"

	"github.com/meditrack/pharmacy-pos-api/internal/domain/entity"
	"github.com/meditrack/pharmacy-pos-api/internal/infrastructure/ledger"
	"github.com/meditrack/pharmacy-pos-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessPayment_CashApproved(t *testing.T) {
	svc := NewPaymentService(ledger.NewMemoryLedger())

	receipt, err := svc.ProcessPayment(context.Background(), &ProcessPaymentInput{
		Method: "cash",
		Amount: dec("23.63"),
	})
	require.NoError(t, err)

	assert.Equal(t, "approved", receipt.Outcome)
	assert.Equal(t, "cash", receipt.Method)
	assert.Equal(t, "23.63", receipt.Amount.StringFixed(2))
	assert.Nil(t, receipt.BillID)
	assert.NotEmpty(t, receipt.TransactionID)
	assert.False(t, receipt.Timestamp.IsZero())
}

func TestProcessPayment_ValidationFailures(t *testing.T) {
	tests := []struct {
		name  string
		input *ProcessPaymentInput
	}{
		{"missing method", &ProcessPaymentInput{Amount: dec("5.00")}},
		{"zero amount", &ProcessPaymentInput{Method: "cash", Amount: dec("0")}},
		{"negative amount", &ProcessPaymentInput{Method: "cash", Amount: dec("-1.00")}},
		{"card without details", &ProcessPaymentInput{Method: "card", Amount: dec("5.00")}},
		{"card missing cvv", &ProcessPaymentInput{
			Method: "card",
			Amount: dec("5.00"),
			CardDetails: &entity.CardDetails{
				Number: "4111111111111111",
				Expiry: "12/27",
			},
		}},
	}

	svc := NewPaymentService(ledger.NewMemoryLedger())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			receipt, err := svc.ProcessPayment(context.Background(), tt.input)
			require.Error(t, err)
			assert.Nil(t, receipt)
			assert.True(t, apperror.IsValidation(err), "expected a validation error, got %v", err)
		})
	}
}

func TestProcessPayment_CompleteCardApproved(t *testing.T) {
	svc := NewPaymentService(ledger.NewMemoryLedger())

	receipt, err := svc.ProcessPayment(context.Background(), &ProcessPaymentInput{
		Method: "card",
		Amount: dec("10.00"),
		CardDetails: &entity.CardDetails{
			Number: "4111111111111111",
			Expiry: "12/27",
			CVV:    "123",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "approved", receipt.Outcome)
}

func TestProcessPayment_UnknownBillRejected(t *testing.T) {
	svc := NewPaymentService(ledger.NewMemoryLedger())

	missing := int64(99)
	receipt, err := svc.ProcessPayment(context.Background(), &ProcessPaymentInput{
		BillID: &missing,
		Method: "cash",
		Amount: dec("5.00"),
	})
	require.Error(t, err)
	assert.Nil(t, receipt)
	assert.True(t, apperror.IsNotFound(err))
}

func TestProcessPayment_AgainstExistingBill(t *testing.T) {
	store := ledger.NewMemoryLedger()
	billing := NewBillingService(newPricing(t), store)
	payments := NewPaymentService(store)
	ctx := context.Background()

	bill, err := billing.CreateBill(ctx, sampleInput())
	require.NoError(t, err)

	// Two partial receipts against the same bill; amounts are not matched
	// against the bill total.
	first, err := payments.ProcessPayment(ctx, &ProcessPaymentInput{
		BillID: &bill.ID,
		Method: "cash",
		Amount: dec("10.00"),
	})
	require.NoError(t, err)
	second, err := payments.ProcessPayment(ctx, &ProcessPaymentInput{
		BillID: &bill.ID,
		Method: "cash",
		Amount: dec("13.63"),
	})
	require.NoError(t, err)

	require.NotNil(t, first.BillID)
	assert.Equal(t, bill.ID, *first.BillID)
	assert.NotEqual(t, first.TransactionID, second.TransactionID)
}
