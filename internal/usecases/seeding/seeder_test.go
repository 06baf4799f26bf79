package seeding

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ecommerce-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/ecommerce-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ecommerce-dashboard-api/internal/domain"
	"github.com/vfg2006/ecommerce-dashboard-api/pkg/log"
	"go.uber.org/mock/gomock"
)

var seededAt = time.Date(2025, 4, 15, 12, 0, 0, 0, time.UTC)

func TestDefaultDataset(t *testing.T) {
	d := DefaultDataset(seededAt)

	assert.Len(t, d.KPIs, 1)
	assert.Len(t, d.Revenue, 10)
	assert.Len(t, d.Products, 5)
	assert.Len(t, d.MarketingChannels, 6)
	assert.Len(t, d.States, 6)
	assert.Len(t, d.Devices, 3)

	assert.Equal(t, 268277.0, d.KPIs[0].EcommerceRevenue)
	assert.Equal(t, seededAt, d.KPIs[0].CreatedAt)
	assert.Equal(t, "2025-06-05", d.Revenue[9].Date.Format("2006-01-02"))
}

func TestSeeder_Run(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockMetricRepository(ctrl)

	for _, collection := range repository.Collections {
		repo.EXPECT().DeleteAll(gomock.Any(), collection).Return(int64(2), nil)
	}

	inserted := map[string][]any{}
	record := func(_ context.Context, collection string, docs ...any) error {
		inserted[collection] = docs
		return nil
	}

	gomock.InOrder(
		repo.EXPECT().Insert(gomock.Any(), repository.KPICollection, gomock.Any()).DoAndReturn(record),
		repo.EXPECT().Insert(gomock.Any(), repository.RevenueCollection, gomock.Any()).DoAndReturn(record),
		repo.EXPECT().Insert(gomock.Any(), repository.ProductCollection, gomock.Any()).DoAndReturn(record),
		repo.EXPECT().Insert(gomock.Any(), repository.MarketingChannelCollection, gomock.Any()).DoAndReturn(record),
		repo.EXPECT().Insert(gomock.Any(), repository.StateCollection, gomock.Any()).DoAndReturn(record),
		repo.EXPECT().Insert(gomock.Any(), repository.DeviceCollection, gomock.Any()).DoAndReturn(record),
	)

	err := NewSeeder(repo, DefaultDataset(seededAt)).Run(context.Background())

	require.NoError(t, err)
	assert.Len(t, inserted[repository.RevenueCollection], 10)
	require.Len(t, inserted[repository.DeviceCollection], 3)

	desktop, ok := inserted[repository.DeviceCollection][0].(*domain.DeviceMetric)
	require.True(t, ok)
	assert.Equal(t, domain.DeviceDesktop, desktop.Device)
}

func TestSeeder_Run_InvalidRecordAbortsBeforeClearing(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockMetricRepository(ctrl)

	dataset := DefaultDataset(seededAt)
	dataset.Devices[2].Device = "Watch"

	err := NewSeeder(repo, dataset).Run(context.Background())

	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, err.Error(), "Device performance[2]")
}

func TestSeeder_Run_StopsOnInsertFailure(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockMetricRepository(ctrl)

	repo.EXPECT().DeleteAll(gomock.Any(), gomock.Any()).Return(int64(0), nil).Times(len(repository.Collections))
	repo.EXPECT().Insert(gomock.Any(), repository.KPICollection, gomock.Any()).Return(errors.New("write conflict"))

	err := NewSeeder(repo, DefaultDataset(seededAt)).Run(context.Background())

	assert.ErrorContains(t, err, "seed KPIs")
}

func TestSeeder_Clear(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockMetricRepository(ctrl)
	repo.EXPECT().DeleteAll(gomock.Any(), gomock.Any()).Return(int64(3), nil).Times(len(repository.Collections))

	total, err := NewSeeder(repo, Dataset{}).Clear(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(3*len(repository.Collections)), total)
}
