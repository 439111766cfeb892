package handler

import (
	"github.com/gin-gonic/gin"

	"gstinvoice/internal/service"
)

// NumberingHandler hands out invoice numbers.
type NumberingHandler struct {
	numberingService service.NumberingService
}

// NewNumberingHandler creates a new NumberingHandler.
func NewNumberingHandler(numberingService service.NumberingService) *NumberingHandler {
	return &NumberingHandler{numberingService: numberingService}
}

// Next handles POST /api/v1/invoice-numbers/next
// @Summary Draw the next invoice number
// @Description Every call consumes a number, e.g. "24-25/007"
// @Tags invoices
// @Produce json
// @Success 200 {object} Response{data=InvoiceNumberResponse}
// @Failure 409 {object} ErrorResponseBody "Counter busy"
// @Security BearerAuth
// @Router /invoice-numbers/next [post]
func (h *NumberingHandler) Next(c *gin.Context) {
	no, err := h.numberingService.Next(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, InvoiceNumberResponse{InvoiceNo: no})
}
