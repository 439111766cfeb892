package kvstore_test

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gstinvoice/internal/domain"
	"gstinvoice/internal/invoicemath"
	"gstinvoice/internal/port"
	"gstinvoice/internal/repository/kvstore"
	"gstinvoice/internal/repository/memory"
)

func TestCompanyRepo_GetUnset(t *testing.T) {
	repo := kvstore.NewCompanyRepo(memory.NewKVStore())

	company, err := repo.Get(context.Background())

	assert.Nil(t, company)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCompanyRepo_SaveAndGet(t *testing.T) {
	ctx := context.Background()
	repo := kvstore.NewCompanyRepo(memory.NewKVStore())

	require.NoError(t, repo.Save(ctx, &domain.CompanyDetails{Name: "Acme Traders", GSTIN: "27AAPFU0939F1ZV"}))

	company, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Acme Traders", company.Name)
	assert.Equal(t, "27AAPFU0939F1ZV", company.GSTIN)
}

func TestCustomerRepo_SaveAssignsIDAndUpserts(t *testing.T) {
	ctx := context.Background()
	repo := kvstore.NewCustomerRepo(memory.NewKVStore())

	empty, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	c := &domain.CustomerDetails{Name: "Bharat Stores"}
	require.NoError(t, repo.Save(ctx, c))
	require.NotEmpty(t, c.ID)

	c.Address = "Pune"
	require.NoError(t, repo.Save(ctx, c))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Pune", list[0].Address)
}

func TestCustomerRepo_SaveUnknownIDAppendsWithFreshID(t *testing.T) {
	ctx := context.Background()
	repo := kvstore.NewCustomerRepo(memory.NewKVStore())

	c := &domain.CustomerDetails{ID: "stale", Name: "Bharat Stores"}
	require.NoError(t, repo.Save(ctx, c))

	assert.NotEqual(t, "stale", c.ID)
}

func TestCustomerRepo_Delete(t *testing.T) {
	ctx := context.Background()
	repo := kvstore.NewCustomerRepo(memory.NewKVStore())

	a := &domain.CustomerDetails{Name: "A"}
	b := &domain.CustomerDetails{Name: "B"}
	require.NoError(t, repo.Save(ctx, a))
	require.NoError(t, repo.Save(ctx, b))

	require.NoError(t, repo.Delete(ctx, a.ID))
	require.NoError(t, repo.Delete(ctx, "missing"))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "B", list[0].Name)
}

func TestCatalogRepo_SaveListDelete(t *testing.T) {
	ctx := context.Background()
	repo := kvstore.NewCatalogRepo(memory.NewKVStore())

	item := &domain.SavedItem{Description: "Steel bracket", HSNSAC: "7326", GSTRate: 18, Rate: 120}
	require.NoError(t, repo.Save(ctx, item))

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, item.ID, items[0].ID)

	require.NoError(t, repo.Delete(ctx, item.ID))
	items, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestInvoiceRepo_SaveGetDelete(t *testing.T) {
	ctx := context.Background()
	repo := kvstore.NewInvoiceRepo(memory.NewKVStore())

	inv := &domain.SavedInvoice{ID: uuid.New(), InvoiceData: domain.InvoiceData{InvoiceNo: "24-25/001"}}
	require.NoError(t, repo.Save(ctx, inv))

	inv.InvoiceData.InvoiceNo = "24-25/002"
	require.NoError(t, repo.Save(ctx, inv))

	got, err := repo.GetByID(ctx, inv.ID)
	require.NoError(t, err)
	assert.Equal(t, "24-25/002", got.InvoiceData.InvoiceNo)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, repo.Delete(ctx, inv.ID))
	assert.ErrorIs(t, repo.Delete(ctx, inv.ID), domain.ErrNotFound)

	_, err = repo.GetByID(ctx, inv.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCounterRepo_AdvanceAndReset(t *testing.T) {
	ctx := context.Background()
	repo := kvstore.NewCounterRepo(memory.NewKVStore())

	first, err := repo.Advance(ctx, "24-25")
	require.NoError(t, err)
	assert.Equal(t, domain.InvoiceCounter{FiscalYear: "24-25", Counter: 1}, first)

	second, err := repo.Advance(ctx, "24-25")
	require.NoError(t, err)
	assert.Equal(t, 2, second.Counter)

	reset, err := repo.Advance(ctx, "25-26")
	require.NoError(t, err)
	assert.Equal(t, domain.InvoiceCounter{FiscalYear: "25-26", Counter: 1}, reset)
}

func TestCounterRepo_MalformedRecord(t *testing.T) {
	ctx := context.Background()
	store := memory.NewKVStore()
	require.NoError(t, store.Set(ctx, port.KeyCounter, json.RawMessage(`"garbage"`)))

	_, err := kvstore.NewCounterRepo(store).Advance(ctx, "24-25")

	assert.ErrorIs(t, err, domain.ErrInvalidRecord)
}

func TestCounterRepo_ConcurrentAdvanceIsUnique(t *testing.T) {
	ctx := context.Background()
	repo := kvstore.NewCounterRepo(memory.NewKVStore())

	const n = 50
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		seen = make(map[string]bool, n)
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c, err := repo.Advance(ctx, "24-25")
			assert.NoError(t, err)
			mu.Lock()
			seen[invoicemath.FormatInvoiceNumber(c)] = true
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Len(t, seen, n)
	assert.True(t, seen["24-25/050"])
}

func TestSessionRepo(t *testing.T) {
	ctx := context.Background()
	repo := kvstore.NewSessionRepo(memory.NewKVStore())

	ok, err := repo.IsAuthenticated(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, repo.SetAuthenticated(ctx, true))
	ok, err = repo.IsAuthenticated(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
}
