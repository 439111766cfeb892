package handler_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"gstinvoice/internal/domain"
	"gstinvoice/internal/handler"
	"gstinvoice/mocks"
)

func TestCompanyHandler_Get_NotSet(t *testing.T) {
	svc := new(mocks.MockCompanyService)
	h := handler.NewCompanyHandler(svc)
	svc.On("Get", mock.Anything).Return(nil, domain.ErrNotFound)

	c, w := newContext(t, http.MethodGet, "/api/v1/company", nil)
	h.Get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCompanyHandler_Update_InvalidGSTIN(t *testing.T) {
	svc := new(mocks.MockCompanyService)
	h := handler.NewCompanyHandler(svc)

	c, w := newContext(t, http.MethodPut, "/api/v1/company", map[string]string{
		"name":    "Acme Traders",
		"address": "1 MG Road",
		"gstin":   "27AAPFU0939",
	})
	h.Update(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCompanyHandler_Update_Success(t *testing.T) {
	svc := new(mocks.MockCompanyService)
	h := handler.NewCompanyHandler(svc)

	saved := &domain.CompanyDetails{Name: "Acme Traders", Address: "1 MG Road", GSTIN: "27AAPFU0939F1ZV"}
	svc.On("Save", mock.Anything, mock.MatchedBy(func(in *domain.CompanyDetails) bool {
		return in.GSTIN == "27aapfu0939f1zv"
	})).Return(saved, nil)

	c, w := newContext(t, http.MethodPut, "/api/v1/company", map[string]string{
		"name":     "Acme Traders",
		"address":  "1 MG Road",
		"gstin":    "27aapfu0939f1zv",
		"ifscCode": "HDFC0001234",
	})
	h.Update(c)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestCustomerHandler_Create_IgnoresClientID(t *testing.T) {
	svc := new(mocks.MockCustomerService)
	h := handler.NewCustomerHandler(svc)

	svc.On("Save", mock.Anything, mock.MatchedBy(func(in *domain.CustomerDetails) bool {
		return in.ID == "" && in.Name == "Globex"
	})).Return(&domain.CustomerDetails{ID: "new-id", Name: "Globex"}, nil)

	c, w := newContext(t, http.MethodPost, "/api/v1/customers", map[string]string{
		"id":   "client-chosen",
		"name": "Globex",
	})
	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	svc.AssertExpectations(t)
}

func TestCustomerHandler_Create_InvalidEmail(t *testing.T) {
	svc := new(mocks.MockCustomerService)
	h := handler.NewCustomerHandler(svc)

	c, w := newContext(t, http.MethodPost, "/api/v1/customers", map[string]string{
		"name":  "Globex",
		"email": "not-an-email",
	})
	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCustomerHandler_Update_UsesPathID(t *testing.T) {
	svc := new(mocks.MockCustomerService)
	h := handler.NewCustomerHandler(svc)

	svc.On("Save", mock.Anything, mock.MatchedBy(func(in *domain.CustomerDetails) bool {
		return in.ID == "cust-1"
	})).Return(&domain.CustomerDetails{ID: "cust-1", Name: "Globex"}, nil)

	c, w := newContext(t, http.MethodPut, "/api/v1/customers/cust-1",
		map[string]string{"name": "Globex"}, gin.Param{Key: "id", Value: "cust-1"})
	h.Update(c)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestCustomerHandler_List(t *testing.T) {
	svc := new(mocks.MockCustomerService)
	h := handler.NewCustomerHandler(svc)
	svc.On("List", mock.Anything).Return([]domain.CustomerDetails{{ID: "1", Name: "A"}, {ID: "2", Name: "B"}}, nil)

	c, w := newContext(t, http.MethodGet, "/api/v1/customers", nil)
	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	assert.Equal(t, 2, resp.Meta.Total)
}

func TestCustomerHandler_Delete(t *testing.T) {
	svc := new(mocks.MockCustomerService)
	h := handler.NewCustomerHandler(svc)
	svc.On("Delete", mock.Anything, "cust-1").Return(nil)

	c, w := newContext(t, http.MethodDelete, "/api/v1/customers/cust-1", nil, gin.Param{Key: "id", Value: "cust-1"})
	h.Delete(c)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestCatalogHandler_Create_InvalidGSTRate(t *testing.T) {
	svc := new(mocks.MockCatalogService)
	h := handler.NewCatalogHandler(svc)

	c, w := newContext(t, http.MethodPost, "/api/v1/catalog", map[string]interface{}{
		"description": "Bolt",
		"gstRate":     7,
		"rate":        10,
	})
	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCatalogHandler_Create_Success(t *testing.T) {
	svc := new(mocks.MockCatalogService)
	h := handler.NewCatalogHandler(svc)
	svc.On("Save", mock.Anything, mock.AnythingOfType("*domain.SavedItem")).
		Return(&domain.SavedItem{ID: "item-1", Description: "Bolt", HSNSAC: "7318", GSTRate: 18, Rate: 10}, nil)

	c, w := newContext(t, http.MethodPost, "/api/v1/catalog", map[string]interface{}{
		"description": "Bolt",
		"hsnSac":      "7318",
		"gstRate":     18,
		"rate":        10,
	})
	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	svc.AssertExpectations(t)
}

func TestCatalogHandler_NewLine(t *testing.T) {
	svc := new(mocks.MockCatalogService)
	h := handler.NewCatalogHandler(svc)
	svc.On("NewLine", mock.Anything, "item-1", 2).
		Return(&domain.InvoiceItem{ID: "line-1", SlNo: 3, Description: "Bolt", GSTRate: 18, Quantity: 1, Rate: 10, Amount: 10}, nil)

	c, w := newContext(t, http.MethodPost, "/api/v1/invoice-lines", map[string]interface{}{
		"catalogId": "item-1",
		"position":  2,
	})
	h.NewLine(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, decode(t, w).Success)
	svc.AssertExpectations(t)
}

func TestCatalogHandler_NewLine_Errors(t *testing.T) {
	svc := new(mocks.MockCatalogService)
	h := handler.NewCatalogHandler(svc)
	svc.On("NewLine", mock.Anything, "missing", 0).Return(nil, domain.ErrNotFound)

	c, w := newContext(t, http.MethodPost, "/api/v1/invoice-lines", map[string]interface{}{"position": -1})
	h.NewLine(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	c, w = newContext(t, http.MethodPost, "/api/v1/invoice-lines", map[string]interface{}{"catalogId": "missing"})
	h.NewLine(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNumberingHandler_Next(t *testing.T) {
	svc := new(mocks.MockNumberingService)
	h := handler.NewNumberingHandler(svc)
	svc.On("Next", mock.Anything).Return("24-25/007", nil)

	c, w := newContext(t, http.MethodPost, "/api/v1/invoice-numbers/next", nil)
	h.Next(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "24-25/007", decode(t, w).Data.(map[string]interface{})["invoiceNo"])
}

func TestNumberingHandler_Next_Busy(t *testing.T) {
	svc := new(mocks.MockNumberingService)
	h := handler.NewNumberingHandler(svc)
	svc.On("Next", mock.Anything).Return("", domain.ErrStoreBusy)

	c, w := newContext(t, http.MethodPost, "/api/v1/invoice-numbers/next", nil)
	h.Next(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}
