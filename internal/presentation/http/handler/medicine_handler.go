package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/meditrack/pharmacy-pos-api/internal/application/service"
	"github.com/meditrack/pharmacy-pos-api/internal/presentation/http/dto/response"
)

// MedicineHandler handles medicine catalog HTTP requests
type MedicineHandler struct {
	catalogService *service.CatalogService
}

// NewMedicineHandler creates a new medicine handler
func NewMedicineHandler(catalogService *service.CatalogService) *MedicineHandler {
	return &MedicineHandler{catalogService: catalogService}
}

// List handles listing/searching the catalog
func (h *MedicineHandler) List(c *gin.Context) {
	filter := &service.CatalogFilter{
		Search:   c.Query("search"),
		Category: c.Query("category"),
	}
	if prStr := c.Query("prescription_required"); prStr != "" {
		pr := prStr == "true"
		filter.PrescriptionRequired = &pr
	}

	medicines := h.catalogService.List(filter)
	response.OK(c, "Medicines retrieved successfully", gin.H{
		"count": len(medicines),
		"items": medicines,
	})
}

// Get handles getting a medicine by id
func (h *MedicineHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid medicine ID")
		return
	}

	medicine, err := h.catalogService.GetByID(id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Medicine retrieved successfully", medicine)
}

// GetByBarcode handles barcode lookup
func (h *MedicineHandler) GetByBarcode(c *gin.Context) {
	medicine, err := h.catalogService.GetByBarcode(c.Param("barcode"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Medicine retrieved successfully", medicine)
}

// CheckInteractions handles pairwise interaction checks
func (h *MedicineHandler) CheckInteractions(c *gin.Context) {
	var req struct {
		MedicineIDs []int64 `json:"medicineIds" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	interactions := h.catalogService.CheckInteractions(req.MedicineIDs)
	response.OK(c, "Interaction check complete", gin.H{
		"interactions":     interactions,
		"has_interactions": len(interactions) > 0,
	})
}
