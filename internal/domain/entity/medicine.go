package entity

import "github.com/shopspring/decimal"

// Medicine is a catalog entry. The catalog is a read-only data source for
// the billing core; stock bookkeeping lives outside this service.
type Medicine struct {
	ID                   int64           `json:"id"`
	Name                 string          `json:"name"`
	Brand                string          `json:"brand"`
	Generic              string          `json:"generic"`
	Strength             string          `json:"strength"`
	Form                 string          `json:"form"`
	Price                decimal.Decimal `json:"price"`
	Stock                int             `json:"stock"`
	Category             string          `json:"category"`
	PrescriptionRequired bool            `json:"prescription_required"`
	Barcode              string          `json:"barcode"`
	ExpiryDate           string          `json:"expiry_date"`
	Manufacturer         string          `json:"manufacturer"`
	SideEffects          string          `json:"side_effects"`
	Contraindications    string          `json:"contraindications"`
}

// Interaction describes a known interaction between two catalog medicines
type Interaction struct {
	Severity       string `json:"severity"`
	Description    string `json:"description"`
	Recommendation string `json:"recommendation"`
}
