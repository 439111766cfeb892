package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"gstinvoice/internal/domain"
	"gstinvoice/internal/validator/invoice"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := invoice.Register(v); err != nil {
			panic(err)
		}
	}
}

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
	Meta    *ListMeta   `json:"meta,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ListMeta holds list metadata.
type ListMeta struct {
	Total int `json:"total"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondCreated sends a 201 success response.
func RespondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{Success: true, Data: data})
}

// RespondList sends a 200 success response with the item count.
func RespondList(c *gin.Context, data interface{}, total int) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data, Meta: &ListMeta{Total: total}})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code, msg string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND", "resource not found"
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, "UNAUTHORIZED", "unauthorized"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "INVALID_CREDENTIALS", "invalid credentials"
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, "VALIDATION_ERROR", err.Error()
	case errors.Is(err, domain.ErrCompanyMissing):
		return http.StatusUnprocessableEntity, "COMPANY_MISSING", "please fill in company details first"
	case errors.Is(err, domain.ErrCustomerMissing):
		return http.StatusUnprocessableEntity, "CUSTOMER_MISSING", "please select a customer"
	case errors.Is(err, domain.ErrNoItems):
		return http.StatusUnprocessableEntity, "NO_ITEMS", "please add at least one item"
	case errors.Is(err, domain.ErrCustomerEmailMissing):
		return http.StatusUnprocessableEntity, "CUSTOMER_EMAIL_MISSING", "customer has no email address"
	case errors.Is(err, domain.ErrArchiveDisabled):
		return http.StatusServiceUnavailable, "ARCHIVE_DISABLED", "invoice archive storage is not configured"
	case errors.Is(err, domain.ErrStoreBusy):
		return http.StatusConflict, "STORE_BUSY", "record is being updated, please retry"
	case errors.Is(err, domain.ErrInvalidRecord):
		return http.StatusInternalServerError, "INVALID_RECORD", "stored record is malformed"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	if status >= 500 {
		requestID, _ := c.Get("request_id")
		logrus.WithFields(logrus.Fields{
			"request_id": requestID,
			"path":       c.Request.URL.Path,
		}).WithError(err).Error("internal error")
	}
	RespondError(c, status, code, msg)
}

// bindJSON decodes and validates the request body into dst, writing a 400
// response on failure.
func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return false
	}
	return true
}
