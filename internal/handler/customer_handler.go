package handler

import (
	"github.com/gin-gonic/gin"

	"gstinvoice/internal/domain"
	"gstinvoice/internal/service"
)

// CustomerHandler handles customer endpoints.
type CustomerHandler struct {
	customerService service.CustomerService
}

// NewCustomerHandler creates a new CustomerHandler.
func NewCustomerHandler(customerService service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// List handles GET /api/v1/customers
// @Summary List customers
// @Tags customers
// @Produce json
// @Success 200 {object} Response{data=[]domain.CustomerDetails,meta=ListMeta}
// @Security BearerAuth
// @Router /customers [get]
func (h *CustomerHandler) List(c *gin.Context) {
	customers, err := h.customerService.List(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondList(c, customers, len(customers))
}

// Create handles POST /api/v1/customers
// @Summary Add a customer
// @Tags customers
// @Accept json
// @Produce json
// @Param request body domain.CustomerDetails true "Customer"
// @Success 201 {object} Response{data=domain.CustomerDetails}
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Security BearerAuth
// @Router /customers [post]
func (h *CustomerHandler) Create(c *gin.Context) {
	var input domain.CustomerDetails
	if !bindJSON(c, &input) {
		return
	}
	input.ID = ""

	customer, err := h.customerService.Save(c.Request.Context(), &input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, customer)
}

// Update handles PUT /api/v1/customers/:id
// @Summary Update a customer
// @Description An unknown id stores the customer under a new id
// @Tags customers
// @Accept json
// @Produce json
// @Param id path string true "Customer ID"
// @Param request body domain.CustomerDetails true "Customer"
// @Success 200 {object} Response{data=domain.CustomerDetails}
// @Security BearerAuth
// @Router /customers/{id} [put]
func (h *CustomerHandler) Update(c *gin.Context) {
	var input domain.CustomerDetails
	if !bindJSON(c, &input) {
		return
	}
	input.ID = c.Param("id")

	customer, err := h.customerService.Save(c.Request.Context(), &input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, customer)
}

// Delete handles DELETE /api/v1/customers/:id
// @Summary Delete a customer
// @Tags customers
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {object} Response{data=MessageResponse}
// @Security BearerAuth
// @Router /customers/{id} [delete]
func (h *CustomerHandler) Delete(c *gin.Context) {
	if err := h.customerService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, MessageResponse{Message: "customer deleted"})
}
