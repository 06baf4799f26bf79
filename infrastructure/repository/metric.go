package repository

import (
	"context"

	"github.com/vfg2006/ecommerce-dashboard-api/internal/domain"
)

// Nomes das coleções, um por entidade
const (
	KPICollection              = "kpis"
	RevenueCollection          = "revenueovertimes"
	ProductCollection          = "productperformances"
	MarketingChannelCollection = "marketingchannels"
	StateCollection            = "stateperformances"
	DeviceCollection           = "deviceperformances"
)

// Collections lista todas as coleções conhecidas
var Collections = []string{
	KPICollection,
	RevenueCollection,
	ProductCollection,
	MarketingChannelCollection,
	StateCollection,
	DeviceCollection,
}

//go:generate mockgen -source=metric.go -destination=mocks/metric.go -package=mocks

// MetricRepository é o acesso genérico às coleções de métricas.
// out deve ser um ponteiro para slice em Find e um ponteiro para struct em FindOne.
type MetricRepository interface {
	Find(ctx context.Context, collection string, query domain.ListQuery, out any) error
	FindOne(ctx context.Context, collection string, query domain.ListQuery, out any) error
	Insert(ctx context.Context, collection string, docs ...any) error
	DeleteAll(ctx context.Context, collection string) (int64, error)
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

func ensureIDs(docs []any) {
	for _, doc := range docs {
		if d, ok := doc.(domain.Identifiable); ok {
			d.EnsureID()
		}
	}
}
