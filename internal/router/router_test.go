package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"gstinvoice/internal/handler"
	"gstinvoice/internal/repository/memory"
	"gstinvoice/internal/router"
	"gstinvoice/internal/service"
	"gstinvoice/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fixture struct {
	engine   *gin.Engine
	auth     *mocks.MockAuthService
	invoices *mocks.MockInvoiceService
}

func newFixture() *fixture {
	auth := new(mocks.MockAuthService)
	invoices := new(mocks.MockInvoiceService)
	engine := router.Setup(auth, router.Handlers{
		Auth:      handler.NewAuthHandler(auth),
		Company:   handler.NewCompanyHandler(new(mocks.MockCompanyService)),
		Customer:  handler.NewCustomerHandler(new(mocks.MockCustomerService)),
		Catalog:   handler.NewCatalogHandler(new(mocks.MockCatalogService)),
		Numbering: handler.NewNumberingHandler(new(mocks.MockNumberingService)),
		Invoice:   handler.NewInvoiceHandler(invoices),
		Health:    handler.NewHealthHandler(memory.NewKVStore()),
	}, []string{"http://localhost:5173"})
	return &fixture{engine: engine, auth: auth, invoices: invoices}
}

func (f *fixture) do(method, path, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, http.NoBody)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	f.engine.ServeHTTP(w, req)
	return w
}

func TestRouter_HealthIsPublic(t *testing.T) {
	f := newFixture()
	assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/healthz", "").Code)
	assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/readyz", "").Code)
}

func TestRouter_ProtectedRoutesNeedToken(t *testing.T) {
	f := newFixture()
	for _, path := range []string{"/api/v1/company", "/api/v1/customers", "/api/v1/catalog", "/api/v1/invoices"} {
		assert.Equal(t, http.StatusUnauthorized, f.do(http.MethodGet, path, "").Code, path)
	}
}

func TestRouter_ExportRouteIsNotAnID(t *testing.T) {
	f := newFixture()
	f.auth.On("ValidateToken", mock.Anything, "tok").Return(&service.Claims{Username: "admin"}, nil)
	f.invoices.On("ExportCSV", mock.Anything, mock.Anything).Return("gst_invoices_2024-01-05.csv", "", nil)

	w := f.do(http.MethodGet, "/api/v1/invoices/export.csv", "tok")

	assert.Equal(t, http.StatusOK, w.Code)
	f.invoices.AssertExpectations(t)
}

func TestRouter_RequestIDHeader(t *testing.T) {
	f := newFixture()
	w := f.do(http.MethodGet, "/healthz", "")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRouter_NewInvoiceLine(t *testing.T) {
	f := newFixture()
	assert.Equal(t, http.StatusUnauthorized, f.do(http.MethodPost, "/api/v1/invoice-lines", "").Code)
}
