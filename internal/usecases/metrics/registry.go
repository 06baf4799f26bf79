package metrics

import (
	"github.com/vfg2006/ecommerce-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/ecommerce-dashboard-api/internal/domain"
)

// Binding descreve como uma categoria é lida do store
type Binding struct {
	Category         domain.Category
	Collection       string
	DefaultSortField string
	DefaultOrder     domain.SortOrder
	DateField        string
	Sortable         bool
	Limitable        bool

	newList func() any
}

// NewList devolve um ponteiro para um slice vazio do tipo de registro da categoria
func (b Binding) NewList() any {
	return b.newList()
}

// Query resolve os parâmetros do cliente contra os defaults da categoria
func (b Binding) Query(params domain.ListParams) domain.ListQuery {
	query := domain.ListQuery{
		SortField: b.DefaultSortField,
		Order:     b.DefaultOrder,
	}

	if b.Sortable {
		if params.SortBy != "" {
			query.SortField = params.SortBy
		}
		if params.Order != "" {
			query.Order = domain.ParseSortOrder(params.Order)
		}
	}

	if b.Limitable && params.Limit > 0 {
		query.Limit = int64(params.Limit)
	}

	// DateField acompanha a consulta mesmo sem janela: o store precisa saber
	// que ordenar por ele é ordenar por tempo
	if b.DateField != "" {
		query.DateField = b.DateField
		if params.DateRange.Complete() {
			query.DateRange = params.DateRange
		}
	}

	return query
}

var registry = []Binding{
	{
		Category:         domain.CategoryKPIs,
		Collection:       repository.KPICollection,
		DefaultSortField: "createdAt",
		DefaultOrder:     domain.SortDesc,
		DateField:        "createdAt",
		newList:          func() any { return &[]domain.KPISnapshot{} },
	},
	{
		Category:         domain.CategoryRevenue,
		Collection:       repository.RevenueCollection,
		DefaultSortField: "date",
		DefaultOrder:     domain.SortAsc,
		DateField:        "date",
		newList:          func() any { return &[]domain.RevenuePoint{} },
	},
	{
		Category:         domain.CategoryProducts,
		Collection:       repository.ProductCollection,
		DefaultSortField: "revenue",
		DefaultOrder:     domain.SortDesc,
		Sortable:         true,
		Limitable:        true,
		newList:          func() any { return &[]domain.ProductMetric{} },
	},
	{
		Category:         domain.CategoryMarketing,
		Collection:       repository.MarketingChannelCollection,
		DefaultSortField: "revenue",
		DefaultOrder:     domain.SortDesc,
		Sortable:         true,
		newList:          func() any { return &[]domain.MarketingChannelMetric{} },
	},
	{
		Category:         domain.CategoryStates,
		Collection:       repository.StateCollection,
		DefaultSortField: "revenue",
		DefaultOrder:     domain.SortDesc,
		Sortable:         true,
		newList:          func() any { return &[]domain.StateMetric{} },
	},
	{
		Category:         domain.CategoryDevices,
		Collection:       repository.DeviceCollection,
		DefaultSortField: "revenue",
		DefaultOrder:     domain.SortDesc,
		Sortable:         true,
		newList:          func() any { return &[]domain.DeviceMetric{} },
	},
}

// Lookup retorna o binding de uma categoria
func Lookup(category domain.Category) (Binding, bool) {
	for _, b := range registry {
		if b.Category == category {
			return b, true
		}
	}
	return Binding{}, false
}
