package dashboard

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ecommerce-dashboard-api/internal/dashboard/mocks"
	"github.com/vfg2006/ecommerce-dashboard-api/internal/domain"
	"github.com/vfg2006/ecommerce-dashboard-api/pkg/log"
	"go.uber.org/mock/gomock"
)

func fill[T any](value T) func(context.Context, domain.Category, url.Values, any) error {
	return func(_ context.Context, _ domain.Category, _ url.Values, out any) error {
		*(out.(*T)) = value
		return nil
	}
}

func TestStore_FetchAll(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	fetcher := mocks.NewMockFetcher(ctrl)

	filters := NewFilters()

	fetcher.EXPECT().Fetch(gomock.Any(), domain.CategoryKPIs, filters.Params(domain.CategoryKPIs), gomock.Any()).
		DoAndReturn(fill(domain.KPISnapshot{EcommerceRevenue: 268277}))
	fetcher.EXPECT().Fetch(gomock.Any(), domain.CategoryRevenue, gomock.Any(), gomock.Any()).
		DoAndReturn(fill([]domain.RevenuePoint{{Revenue: 5000}}))
	fetcher.EXPECT().Fetch(gomock.Any(), domain.CategoryProducts, url.Values{"sortBy": {"revenue"}, "order": {"desc"}}, gomock.Any()).
		DoAndReturn(fill([]domain.ProductMetric{{Product: "Product 5", Revenue: 77044}}))
	fetcher.EXPECT().Fetch(gomock.Any(), domain.CategoryMarketing, gomock.Any(), gomock.Any()).
		Return(&FetchError{Status: 500, Message: "Server error while fetching marketing data"})
	fetcher.EXPECT().Fetch(gomock.Any(), domain.CategoryStates, gomock.Any(), gomock.Any()).
		DoAndReturn(fill([]domain.StateMetric{{State: "California", Revenue: 72000}}))
	fetcher.EXPECT().Fetch(gomock.Any(), domain.CategoryDevices, gomock.Any(), gomock.Any()).
		DoAndReturn(fill([]domain.DeviceMetric{{Device: domain.DeviceDesktop, Revenue: 118971}}))

	store := NewStore(fetcher, nil)
	store.FetchAll(context.Background(), filters)

	snapshot := store.Cache().Snapshot()

	marketing := snapshot[domain.CategoryMarketing]
	assert.False(t, marketing.IsLoading)
	assert.Equal(t, "Server error while fetching marketing data", marketing.ErrorMessage)
	assert.Nil(t, marketing.Data)

	for _, category := range []domain.Category{
		domain.CategoryKPIs, domain.CategoryRevenue, domain.CategoryProducts,
		domain.CategoryStates, domain.CategoryDevices,
	} {
		slot := snapshot[category]
		assert.False(t, slot.IsLoading, category)
		assert.False(t, slot.HasError(), category)
		assert.NotNil(t, slot.Data, category)
	}

	require.NotNil(t, KPIs(snapshot[domain.CategoryKPIs]))
	assert.Equal(t, 268277.0, KPIs(snapshot[domain.CategoryKPIs]).EcommerceRevenue)
	assert.Equal(t, "Product 5", Products(snapshot[domain.CategoryProducts])[0].Product)
	assert.Equal(t, "California", States(snapshot[domain.CategoryStates])[0].State)
	assert.Equal(t, domain.DeviceDesktop, Devices(snapshot[domain.CategoryDevices])[0].Device)
	assert.Len(t, RevenuePoints(snapshot[domain.CategoryRevenue]), 1)
	assert.Empty(t, MarketingChannels(snapshot[domain.CategoryMarketing]))
}

func TestStore_FetchUsesFilterParams(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	fetcher := mocks.NewMockFetcher(ctrl)

	start, end := date(2025, 4, 1), date(2025, 4, 30)
	filters := NewFilters().WithDateRange(&start, &end)

	fetcher.EXPECT().
		Fetch(gomock.Any(), domain.CategoryRevenue, url.Values{"startDate": {"2025-04-01"}, "endDate": {"2025-04-30"}}, gomock.Any()).
		Return(nil)

	store := NewStore(fetcher, NewCache())
	store.Fetch(context.Background(), domain.CategoryRevenue, filters)

	slot := store.Cache().Get(domain.CategoryRevenue)
	assert.Equal(t, []domain.RevenuePoint{}, slot.Data, "resposta vazia vira lista vazia")
}

func TestStore_FetchUnknownCategory(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	store := NewStore(mocks.NewMockFetcher(ctrl), nil)

	store.Fetch(context.Background(), domain.Category("orders"), NewFilters())

	assert.Contains(t, store.Cache().Get("orders").ErrorMessage, "orders")
}
