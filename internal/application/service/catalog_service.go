package service

import (
	"strings"

	"github.com/meditrack/pharmacy-pos-api/internal/domain/entity"
	"github.com/meditrack/pharmacy-pos-api/pkg/apperror"
	"github.com/shopspring/decimal"
)

// CatalogService serves the medicine catalog. It is a read-only data source
// for the billing core: bills snapshot prices from it but never write back.
type CatalogService struct {
	medicines    []entity.Medicine
	interactions map[[2]int64]entity.Interaction
}

// CatalogFilter narrows a catalog listing
type CatalogFilter struct {
	Search               string
	Category             string
	PrescriptionRequired *bool
}

// NewCatalogService creates a catalog over the given medicines
func NewCatalogService(medicines []entity.Medicine) *CatalogService {
	return &CatalogService{
		medicines:    medicines,
		interactions: knownInteractions(),
	}
}

// List returns catalog entries matching the filter
func (s *CatalogService) List(filter *CatalogFilter) []entity.Medicine {
	out := make([]entity.Medicine, 0, len(s.medicines))
	search := strings.ToLower(filter.Search)

	for _, med := range s.medicines {
		if search != "" &&
			!strings.Contains(strings.ToLower(med.Name), search) &&
			!strings.Contains(strings.ToLower(med.Brand), search) &&
			!strings.Contains(strings.ToLower(med.Generic), search) {
			continue
		}
		if filter.Category != "" && !strings.EqualFold(med.Category, filter.Category) {
			continue
		}
		if filter.PrescriptionRequired != nil && med.PrescriptionRequired != *filter.PrescriptionRequired {
			continue
		}
		out = append(out, med)
	}
	return out
}

// GetByID returns the medicine with the given id
func (s *CatalogService) GetByID(id int64) (*entity.Medicine, error) {
	for i := range s.medicines {
		if s.medicines[i].ID == id {
			return &s.medicines[i], nil
		}
	}
	return nil, apperror.NewNotFoundError("Medicine")
}

// GetByBarcode returns the medicine carrying the given barcode
func (s *CatalogService) GetByBarcode(barcode string) (*entity.Medicine, error) {
	for i := range s.medicines {
		if s.medicines[i].Barcode == barcode {
			return &s.medicines[i], nil
		}
	}
	return nil, apperror.NewNotFoundError("Medicine")
}

// CheckInteractions returns known interactions among all pairs of the given
// medicine ids
func (s *CatalogService) CheckInteractions(medicineIDs []int64) []entity.Interaction {
	out := make([]entity.Interaction, 0)
	for i := 0; i < len(medicineIDs); i++ {
		for j := i + 1; j < len(medicineIDs); j++ {
			a, b := medicineIDs[i], medicineIDs[j]
			if a > b {
				a, b = b, a
			}
			if interaction, ok := s.interactions[[2]int64{a, b}]; ok {
				out = append(out, interaction)
			}
		}
	}
	return out
}

func knownInteractions() map[[2]int64]entity.Interaction {
	return map[[2]int64]entity.Interaction{
		{1, 2}: {
			Severity:       "moderate",
			Description:    "Paracetamol and Amoxicillin may cause increased risk of liver toxicity",
			Recommendation: "Monitor liver function, consider alternative pain relief",
		},
		{3, 4}: {
			Severity:       "high",
			Description:    "Ibuprofen and Aspirin together raise the risk of gastrointestinal bleeding",
			Recommendation: "Avoid combining; prefer a single anti-inflammatory",
		},
	}
}

// DefaultMedicines seeds the catalog served when no external inventory
// system is wired in
func DefaultMedicines() []entity.Medicine {
	return []entity.Medicine{
		{
			ID: 1, Name: "Paracetamol", Brand: "Crocin", Generic: "Paracetamol",
			Strength: "500mg", Form: "Tablet", Price: decimal.RequireFromString("2.50"),
			Stock: 100, Category: "Pain Relief", PrescriptionRequired: false,
			Barcode: "1234567890123", ExpiryDate: "2025-12-31", Manufacturer: "GSK",
			SideEffects:       "Nausea, dizziness, skin rash",
			Contraindications: "Liver disease, alcohol dependency",
		},
		{
			ID: 2, Name: "Amoxicillin", Brand: "Augmentin", Generic: "Amoxicillin",
			Strength: "250mg", Form: "Capsule", Price: decimal.RequireFromString("15.75"),
			Stock: 50, Category: "Antibiotic", PrescriptionRequired: true,
			Barcode: "2345678901234", ExpiryDate: "2025-08-15", Manufacturer: "Pfizer",
			SideEffects:       "Stomach upset, diarrhea, allergic reactions",
			Contraindications: "Penicillin allergy, kidney disease",
		},
		{
			ID: 3, Name: "Ibuprofen", Brand: "Brufen", Generic: "Ibuprofen",
			Strength: "400mg", Form: "Tablet", Price: decimal.RequireFromString("4.20"),
			Stock: 80, Category: "Pain Relief", PrescriptionRequired: false,
			Barcode: "3456789012345", ExpiryDate: "2026-03-31", Manufacturer: "Abbott",
			SideEffects:       "Heartburn, stomach pain, dizziness",
			Contraindications: "Peptic ulcer, severe heart failure",
		},
		{
			ID: 4, Name: "Aspirin", Brand: "Disprin", Generic: "Acetylsalicylic acid",
			Strength: "325mg", Form: "Tablet", Price: decimal.RequireFromString("1.80"),
			Stock: 120, Category: "Pain Relief", PrescriptionRequired: false,
			Barcode: "4567890123456", ExpiryDate: "2026-06-30", Manufacturer: "Bayer",
			SideEffects:       "Stomach irritation, bleeding risk",
			Contraindications: "Bleeding disorders, children under 16",
		},
		{
			ID: 5, Name: "Cetirizine", Brand: "Zyrtec", Generic: "Cetirizine",
			Strength: "10mg", Form: "Tablet", Price: decimal.RequireFromString("3.10"),
			Stock: 60, Category: "Antihistamine", PrescriptionRequired: false,
			Barcode: "5678901234567", ExpiryDate: "2026-01-31", Manufacturer: "UCB",
			SideEffects:       "Drowsiness, dry mouth",
			Contraindications: "Severe kidney disease",
		},
	}
}
