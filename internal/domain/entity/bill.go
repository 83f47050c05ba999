package entity

import (
	"time"

	"github.com/meditrack/pharmacy-pos-api/internal/domain/enum"
	"github.com/shopspring/decimal"
)

// CustomerInfo is the customer snapshot frozen into a bill at creation time
type CustomerInfo struct {
	Name  string `gorm:"size:255;column:customer_name" json:"name"`
	Phone string `gorm:"size:50;column:customer_phone;index" json:"phone"`
}

// InsuranceInfo is an optional insurance reference attached to a bill
type InsuranceInfo struct {
	Provider     string `gorm:"size:255;column:insurance_provider" json:"provider"`
	PolicyNumber string `gorm:"size:100;column:insurance_policy_number" json:"policyNumber"`
}

// Bill is an immutable record of a completed sale with computed totals.
// Once appended to the ledger it is never mutated.
type Bill struct {
	ID             int64             `gorm:"primaryKey;autoIncrement" json:"id"`
	BillNumber     string            `gorm:"size:64;unique;not null" json:"billNumber"`
	IssuedAt       time.Time         `gorm:"not null;index" json:"issuedAt"`
	Customer       CustomerInfo      `gorm:"embedded" json:"customer"`
	Items          []BillItem        `gorm:"foreignKey:BillID;constraint:OnDelete:CASCADE" json:"items"`
	Subtotal       decimal.Decimal   `gorm:"type:numeric(12,2)" json:"subtotal"`
	DiscountAmount decimal.Decimal   `gorm:"type:numeric(12,2)" json:"discountAmount"`
	TaxAmount      decimal.Decimal   `gorm:"type:numeric(12,2)" json:"taxAmount"`
	TotalAmount    decimal.Decimal   `gorm:"type:numeric(12,2)" json:"totalAmount"`
	DiscountType   enum.DiscountType `gorm:"default:0" json:"discountType"`
	PaymentMethod  string            `gorm:"size:50" json:"paymentMethod"`
	Insurance      *InsuranceInfo    `gorm:"embedded" json:"insurance,omitempty"`
	Status         enum.BillStatus   `gorm:"default:0" json:"status"`
}

// TableName returns the table name for the Bill model
func (Bill) TableName() string {
	return "bills"
}

// Clone returns a deep copy so ledger internals never escape to callers
func (b *Bill) Clone() *Bill {
	out := *b
	out.Items = make([]BillItem, len(b.Items))
	copy(out.Items, b.Items)
	if b.Insurance != nil {
		ins := *b.Insurance
		out.Insurance = &ins
	}
	return &out
}

// BillItem is one priced medicine line within a bill
type BillItem struct {
	ID         int64           `gorm:"primaryKey;autoIncrement" json:"-"`
	BillID     int64           `gorm:"index" json:"-"`
	MedicineID int64           `gorm:"not null" json:"medicineId"`
	Name       string          `gorm:"size:255" json:"name"`
	Quantity   int             `gorm:"not null" json:"quantity"`
	UnitPrice  decimal.Decimal `gorm:"type:numeric(12,2)" json:"unitPrice"`
	LineTotal  decimal.Decimal `gorm:"type:numeric(12,2)" json:"lineTotal"`
}

// TableName returns the table name for the BillItem model
func (BillItem) TableName() string {
	return "bill_items"
}
