package handler

import (
	"github.com/gin-gonic/gin"

	"gstinvoice/internal/domain"
	"gstinvoice/internal/service"
)

// CompanyHandler handles the company profile endpoints.
type CompanyHandler struct {
	companyService service.CompanyService
}

// NewCompanyHandler creates a new CompanyHandler.
func NewCompanyHandler(companyService service.CompanyService) *CompanyHandler {
	return &CompanyHandler{companyService: companyService}
}

// Get handles GET /api/v1/company
// @Summary Get company details
// @Tags company
// @Produce json
// @Success 200 {object} Response{data=domain.CompanyDetails}
// @Failure 404 {object} ErrorResponseBody "Company not set"
// @Security BearerAuth
// @Router /company [get]
func (h *CompanyHandler) Get(c *gin.Context) {
	company, err := h.companyService.Get(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, company)
}

// Update handles PUT /api/v1/company
// @Summary Save company details
// @Tags company
// @Accept json
// @Produce json
// @Param request body domain.CompanyDetails true "Company details"
// @Success 200 {object} Response{data=domain.CompanyDetails}
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Security BearerAuth
// @Router /company [put]
func (h *CompanyHandler) Update(c *gin.Context) {
	var input domain.CompanyDetails
	if !bindJSON(c, &input) {
		return
	}

	company, err := h.companyService.Save(c.Request.Context(), &input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, company)
}
