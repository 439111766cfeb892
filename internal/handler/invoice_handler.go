package handler

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"gstinvoice/internal/domain"
	"gstinvoice/internal/service"
)

// InvoiceHandler handles invoice preview, history, PDF and delivery endpoints.
type InvoiceHandler struct {
	invoiceService service.InvoiceService
}

// NewInvoiceHandler creates a new InvoiceHandler.
func NewInvoiceHandler(invoiceService service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid invoice ID")
		return uuid.Nil, false
	}
	return id, true
}

func sendPDF(c *gin.Context, pdf *service.RenderedPDF) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", pdf.FileName))
	c.Data(http.StatusOK, "application/pdf", pdf.Content)
}

// Preview handles POST /api/v1/invoices/preview
// @Summary Compute invoice totals
// @Description Totals, tax breakdown and amounts in words for an unsaved invoice
// @Tags invoices
// @Accept json
// @Produce json
// @Param request body domain.InvoiceData true "Invoice"
// @Success 200 {object} Response{data=invoicemath.Summary}
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Security BearerAuth
// @Router /invoices/preview [post]
func (h *InvoiceHandler) Preview(c *gin.Context) {
	var input domain.InvoiceData
	if !bindJSON(c, &input) {
		return
	}
	RespondOK(c, h.invoiceService.Preview(&input))
}

// DraftPDF handles POST /api/v1/invoices/pdf
// @Summary Render an unsaved invoice as PDF
// @Tags invoices
// @Accept json
// @Produce application/pdf
// @Param request body domain.InvoiceData true "Invoice"
// @Success 200 {file} binary
// @Failure 422 {object} ErrorResponseBody "Company, customer or items missing"
// @Security BearerAuth
// @Router /invoices/pdf [post]
func (h *InvoiceHandler) DraftPDF(c *gin.Context) {
	var input domain.InvoiceData
	if !bindJSON(c, &input) {
		return
	}
	pdf, err := h.invoiceService.RenderDraftPDF(&input)
	if err != nil {
		HandleError(c, err)
		return
	}
	sendPDF(c, pdf)
}

// List handles GET /api/v1/invoices
// @Summary List saved invoices
// @Description Newest first; search matches invoice number or customer name
// @Tags invoices
// @Produce json
// @Param search query string false "Search text"
// @Success 200 {object} Response{data=[]domain.SavedInvoice,meta=ListMeta}
// @Security BearerAuth
// @Router /invoices [get]
func (h *InvoiceHandler) List(c *gin.Context) {
	invoices, err := h.invoiceService.List(c.Request.Context(), c.Query("search"))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondList(c, invoices, len(invoices))
}

// Create handles POST /api/v1/invoices
// @Summary Save a new invoice
// @Description Draws an invoice number when invoiceNo is empty
// @Tags invoices
// @Accept json
// @Produce json
// @Param request body domain.InvoiceData true "Invoice"
// @Success 201 {object} Response{data=domain.SavedInvoice}
// @Failure 422 {object} ErrorResponseBody "Company, customer or items missing"
// @Security BearerAuth
// @Router /invoices [post]
func (h *InvoiceHandler) Create(c *gin.Context) {
	var input domain.InvoiceData
	if !bindJSON(c, &input) {
		return
	}
	invoice, err := h.invoiceService.Save(c.Request.Context(), nil, input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, invoice)
}

// GetByID handles GET /api/v1/invoices/:id
// @Summary Get a saved invoice
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} Response{data=domain.SavedInvoice}
// @Failure 404 {object} ErrorResponseBody "Not found"
// @Security BearerAuth
// @Router /invoices/{id} [get]
func (h *InvoiceHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	invoice, err := h.invoiceService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, invoice)
}

// Update handles PUT /api/v1/invoices/:id
// @Summary Update a saved invoice
// @Tags invoices
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID"
// @Param request body domain.InvoiceData true "Invoice"
// @Success 200 {object} Response{data=domain.SavedInvoice}
// @Security BearerAuth
// @Router /invoices/{id} [put]
func (h *InvoiceHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input domain.InvoiceData
	if !bindJSON(c, &input) {
		return
	}
	invoice, err := h.invoiceService.Save(c.Request.Context(), &id, input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, invoice)
}

// Delete handles DELETE /api/v1/invoices/:id
// @Summary Delete a saved invoice
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} Response{data=MessageResponse}
// @Security BearerAuth
// @Router /invoices/{id} [delete]
func (h *InvoiceHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.invoiceService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, MessageResponse{Message: "invoice deleted"})
}

// PDF handles GET /api/v1/invoices/:id/pdf
// @Summary Download a saved invoice as PDF
// @Tags invoices
// @Produce application/pdf
// @Param id path string true "Invoice ID"
// @Success 200 {file} binary
// @Security BearerAuth
// @Router /invoices/{id}/pdf [get]
func (h *InvoiceHandler) PDF(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	pdf, err := h.invoiceService.RenderPDF(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	sendPDF(c, pdf)
}

// Send handles POST /api/v1/invoices/:id/send
// @Summary E-mail an invoice to its customer
// @Description Archives the PDF and mails the customer a download link
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} Response{data=service.SendResult}
// @Failure 422 {object} ErrorResponseBody "Customer has no email"
// @Failure 503 {object} ErrorResponseBody "Archive not configured"
// @Security BearerAuth
// @Router /invoices/{id}/send [post]
func (h *InvoiceHandler) Send(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	result, err := h.invoiceService.Send(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, result)
}

// ExportCSV handles GET /api/v1/invoices/export.csv
// @Summary Export the invoice register
// @Tags invoices
// @Produce text/csv
// @Success 200 {file} binary
// @Security BearerAuth
// @Router /invoices/export.csv [get]
func (h *InvoiceHandler) ExportCSV(c *gin.Context) {
	var buf bytes.Buffer
	name, err := h.invoiceService.ExportCSV(c.Request.Context(), &buf)
	if err != nil {
		HandleError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}
