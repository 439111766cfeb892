package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gstinvoice/internal/domain"
	"gstinvoice/internal/repository/kvstore"
	"gstinvoice/internal/repository/memory"
	"gstinvoice/internal/service"
	"gstinvoice/mocks"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestNumberingService_Next_Sequence(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	counters := kvstore.NewCounterRepo(memory.NewKVStore())
	svc := service.NewNumberingService(counters, false, fixedClock(now))

	first, err := svc.Next(ctx)
	require.NoError(t, err)
	second, err := svc.Next(ctx)
	require.NoError(t, err)

	assert.Equal(t, "24-25/001", first)
	assert.Equal(t, "24-25/002", second)
}

func TestNumberingService_Next_ResetsOnNewYear(t *testing.T) {
	ctx := context.Background()
	clock := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	counters := kvstore.NewCounterRepo(memory.NewKVStore())
	svc := service.NewNumberingService(counters, false, func() time.Time { return clock })

	_, err := svc.Next(ctx)
	require.NoError(t, err)
	_, err = svc.Next(ctx)
	require.NoError(t, err)

	clock = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	no, err := svc.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, "25-26/001", no)
}

func TestNumberingService_Next_AprilCutover(t *testing.T) {
	counters := new(mocks.MockCounterRepo)
	counters.On("Advance", mock.Anything, "24-25").Return(domain.InvoiceCounter{FiscalYear: "24-25", Counter: 41}, nil)
	svc := service.NewNumberingService(counters, true, fixedClock(time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC)))

	no, err := svc.Next(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "24-25/041", no)
	counters.AssertExpectations(t)
}

func TestNumberingService_Next_StoreError(t *testing.T) {
	counters := new(mocks.MockCounterRepo)
	counters.On("Advance", mock.Anything, mock.Anything).Return(domain.InvoiceCounter{}, domain.ErrStoreBusy)
	svc := service.NewNumberingService(counters, false, nil)

	_, err := svc.Next(context.Background())
	assert.True(t, errors.Is(err, domain.ErrStoreBusy))
}
