package metrics

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
	"go.uber.org/mock/gomock"
)

func float64Ptr(v float64) *float64 { return &v }
func int64Ptr(v int64) *int64       { return &v }

func TestMetricService_List(t *testing.T) {
	start := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 4, 3, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		category   domain.Category
		params     domain.ListParams
		collection string
		wantQuery  domain.ListQuery
	}{
		{
			name:       "products default to revenue desc",
			category:   domain.CategoryProducts,
			collection: repository.ProductCollection,
			wantQuery:  domain.ListQuery{SortField: "revenue", Order: domain.SortDesc},
		},
		{
			name:       "products honour sortBy, order and limit",
			category:   domain.CategoryProducts,
			params:     domain.ListParams{SortBy: "conversionRate", Order: "asc", Limit: 5},
			collection: repository.ProductCollection,
			wantQuery:  domain.ListQuery{SortField: "conversionRate", Order: domain.SortAsc, Limit: 5},
		},
		{
			name:       "any order other than desc sorts ascending",
			category:   domain.CategoryStates,
			params:     domain.ListParams{Order: "DESC"},
			collection: repository.StateCollection,
			wantQuery:  domain.ListQuery{SortField: "revenue", Order: domain.SortAsc},
		},
		{
			name:       "limit is ignored outside products",
			category:   domain.CategoryMarketing,
			params:     domain.ListParams{Limit: 2},
			collection: repository.MarketingChannelCollection,
			wantQuery:  domain.ListQuery{SortField: "revenue", Order: domain.SortDesc},
		},
		{
			name:       "unknown sort field passes through",
			category:   domain.CategoryDevices,
			params:     domain.ListParams{SortBy: "bogus", Order: "desc"},
			collection: repository.DeviceCollection,
			wantQuery:  domain.ListQuery{SortField: "bogus", Order: domain.SortDesc},
		},
		{
			name:     "revenue applies the date window only with both bounds",
			category: domain.CategoryRevenue,
			params: domain.ListParams{
				SortBy:    "revenue",
				DateRange: domain.DateRange{Start: &start, End: &end},
			},
			collection: repository.RevenueCollection,
			wantQuery: domain.ListQuery{
				SortField: "date",
				Order:     domain.SortAsc,
				DateField: "date",
				DateRange: domain.DateRange{Start: &start, End: &end},
			},
		},
		{
			name:       "revenue ignores a single bound",
			category:   domain.CategoryRevenue,
			params:     domain.ListParams{DateRange: domain.DateRange{Start: &start}},
			collection: repository.RevenueCollection,
			wantQuery:  domain.ListQuery{SortField: "date", Order: domain.SortAsc, DateField: "date"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mocks.NewMockMetricRepository(ctrl)
			repo.EXPECT().
				Find(gomock.Any(), tt.collection, tt.wantQuery, gomock.Any()).
				Return(nil)

			service := NewService(repo)
			records, err := service.List(context.Background(), tt.category, tt.params)

			require.NoError(t, err)
			assert.NotNil(t, records)
		})
	}
}

func TestMetricService_List_EmptyCollection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockMetricRepository(ctrl)
	repo.EXPECT().Find(gomock.Any(), repository.StateCollection, gomock.Any(), gomock.Any()).Return(nil)

	records, err := NewService(repo).List(context.Background(), domain.CategoryStates, domain.ListParams{})

	require.NoError(t, err)
	states, ok := records.(*[]domain.StateMetric)
	require.True(t, ok)
	assert.NotNil(t, *states)
	assert.Empty(t, *states)
}

func TestMetricService_List_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockMetricRepository(ctrl)
	service := NewService(repo)

	_, err := service.List(context.Background(), domain.Category("orders"), domain.ListParams{})
	assert.ErrorIs(t, err, domain.ErrUnknownCategory)

	storeErr := errors.New("connection reset")
	repo.EXPECT().Find(gomock.Any(), repository.DeviceCollection, gomock.Any(), gomock.Any()).Return(storeErr)

	_, err = service.List(context.Background(), domain.CategoryDevices, domain.ListParams{})
	assert.ErrorIs(t, err, storeErr)
}

func TestMetricService_MostRecentKPI(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)

	t.Run("retorna o snapshot mais recente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockMetricRepository(ctrl)
		repo.EXPECT().
			FindOne(gomock.Any(), repository.KPICollection, domain.ListQuery{
				SortField: "createdAt",
				Order:     domain.SortDesc,
				DateField: "createdAt",
				DateRange: domain.DateRange{Start: &start, End: &end},
			}, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _ domain.ListQuery, out any) error {
				out.(*domain.KPISnapshot).EcommerceRevenue = 268277
				return nil
			})

		snapshot, err := NewService(repo).MostRecentKPI(context.Background(), domain.DateRange{Start: &start, End: &end})

		require.NoError(t, err)
		assert.Equal(t, 268277.0, snapshot.EcommerceRevenue)
	})

	t.Run("sem snapshots devolve ErrNotFound", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockMetricRepository(ctrl)
		repo.EXPECT().FindOne(gomock.Any(), repository.KPICollection, gomock.Any(), gomock.Any()).Return(domain.ErrNotFound)

		snapshot, err := NewService(repo).MostRecentKPI(context.Background(), domain.DateRange{})

		assert.Nil(t, snapshot)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestMetricService_CreateKPI(t *testing.T) {
	now := time.Date(2025, 4, 15, 12, 0, 0, 0, time.UTC)

	valid := domain.KPISnapshotInput{
		EcommerceRevenue:        float64Ptr(268277),
		NewCustomers:            int64Ptr(198),
		RepeatPurchaseRate:      float64Ptr(67.54),
		AverageOrderValue:       float64Ptr(402.21),
		EcommerceConversionRate: float64Ptr(0),
	}

	t.Run("persiste e devolve o registro com _id e createdAt", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockMetricRepository(ctrl)
		repo.EXPECT().Insert(gomock.Any(), repository.KPICollection, gomock.Any()).Return(nil)

		service := &MetricService{repo: repo, now: func() time.Time { return now }}
		snapshot, err := service.CreateKPI(context.Background(), valid)

		require.NoError(t, err)
		assert.False(t, snapshot.ID.IsZero())
		assert.Equal(t, now, snapshot.CreatedAt)
		assert.Equal(t, int64(198), snapshot.NewCustomers)
		assert.Equal(t, 0.0, snapshot.EcommerceConversionRate)
	})

	t.Run("campo obrigatório ausente não chega ao store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockMetricRepository(ctrl)

		input := valid
		input.AverageOrderValue = nil

		snapshot, err := NewService(repo).CreateKPI(context.Background(), input)

		assert.Nil(t, snapshot)
		var validationErr *domain.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "averageOrderValue", validationErr.Field)
		assert.ErrorIs(t, err, domain.ErrInvalidPayload)
	})
}

func TestMetricService_Bindings(t *testing.T) {
	bindings := NewService(nil).Bindings()

	require.Len(t, bindings, len(domain.Categories))
	for i, category := range domain.Categories {
		assert.Equal(t, category, bindings[i].Category)
	}

	bindings[0].Collection = "mutated"
	b, _ := Lookup(domain.CategoryKPIs)
	assert.Equal(t, repository.KPICollection, b.Collection)
}
