package handler

import (
	"github.com/gin-gonic/gin"

	"gstinvoice/internal/domain"
	"gstinvoice/internal/service"
)

// CatalogHandler handles the saved item catalog endpoints.
type CatalogHandler struct {
	catalogService service.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// List handles GET /api/v1/catalog
func (h *CatalogHandler) List(c *gin.Context) {
	items, err := h.catalogService.List(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondList(c, items, len(items))
}

// Create handles POST /api/v1/catalog
func (h *CatalogHandler) Create(c *gin.Context) {
	var input domain.SavedItem
	if !bindJSON(c, &input) {
		return
	}
	input.ID = ""

	item, err := h.catalogService.Save(c.Request.Context(), &input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, item)
}

// Update handles PUT /api/v1/catalog/:id
func (h *CatalogHandler) Update(c *gin.Context) {
	var input domain.SavedItem
	if !bindJSON(c, &input) {
		return
	}
	input.ID = c.Param("id")

	item, err := h.catalogService.Save(c.Request.Context(), &input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, item)
}

// Delete handles DELETE /api/v1/catalog/:id
func (h *CatalogHandler) Delete(c *gin.Context) {
	if err := h.catalogService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, MessageResponse{Message: "item deleted"})
}

// NewLineRequest asks for a blank invoice line, optionally prefilled from the catalog.
type NewLineRequest struct {
	CatalogID string `json:"catalogId"`
	Position  int    `json:"position" binding:"gte=0"`
}

// NewLine handles POST /api/v1/invoice-lines
func (h *CatalogHandler) NewLine(c *gin.Context) {
	var input NewLineRequest
	if !bindJSON(c, &input) {
		return
	}

	line, err := h.catalogService.NewLine(c.Request.Context(), input.CatalogID, input.Position)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, line)
}
