package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CardDetails carries the card fields required for a card payment.
// Values are validated for presence only; nothing is stored or settled.
type CardDetails struct {
	Number string `json:"number"`
	Expiry string `json:"expiry"`
	CVV    string `json:"cvv"`
}

// Complete reports whether all required card fields are present
func (c *CardDetails) Complete() bool {
	return c != nil && c.Number != "" && c.Expiry != "" && c.CVV != ""
}

// PaymentReceipt confirms a validated payment attempt. It is issued
// independently of ledger storage and never linked back into bill status.
type PaymentReceipt struct {
	TransactionID string          `json:"transactionId"`
	BillID        *int64          `json:"billId,omitempty"`
	Method        string          `json:"method"`
	Amount        decimal.Decimal `json:"amount"`
	Timestamp     time.Time       `json:"timestamp"`
	Outcome       string          `json:"outcome"`
}
