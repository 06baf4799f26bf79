package dashboard

import (
	"context"
	"fmt"
	"net/url"

	"github.com/vfg2006/ecommerce-dashboard-api/internal/domain"
	"github.com/vfg2006/ecommerce-dashboard-api/pkg/log"
	"golang.org/x/sync/errgroup"
)

// Store dispara as buscas e grava cada resultado no seu slot do cache
type Store struct {
	fetcher Fetcher
	cache   *Cache
}

func NewStore(fetcher Fetcher, cache *Cache) *Store {
	if cache == nil {
		cache = NewCache()
	}
	return &Store{fetcher: fetcher, cache: cache}
}

func (s *Store) Cache() *Cache {
	return s.cache
}

// FetchAll busca as seis categorias em paralelo. Cada busca atualiza só o
// próprio slot; a falha de uma não interrompe as demais.
func (s *Store) FetchAll(ctx context.Context, filters Filters) {
	var g errgroup.Group
	for _, category := range domain.Categories {
		category := category
		g.Go(func() error {
			s.Fetch(ctx, category, filters)
			return nil
		})
	}
	_ = g.Wait()
}

// Fetch busca uma categoria. Não há retry: a falha fica registrada no slot.
func (s *Store) Fetch(ctx context.Context, category domain.Category, filters Filters) {
	logger := log.ForContext(ctx).WithField("category", category.String())

	s.cache.Begin(category)

	data, err := s.fetch(ctx, category, filters)
	if err != nil {
		logger.WithError(err).Warn("dashboard: fetch failed")
		s.cache.Reject(category, err.Error())
		return
	}

	logger.Debug("dashboard: fetch completed")
	s.cache.Resolve(category, data)
}

func (s *Store) fetch(ctx context.Context, category domain.Category, filters Filters) (any, error) {
	params := filters.Params(category)

	switch category {
	case domain.CategoryKPIs:
		var out domain.KPISnapshot
		if err := s.fetcher.Fetch(ctx, category, params, &out); err != nil {
			return nil, err
		}
		return &out, nil
	case domain.CategoryRevenue:
		return fetchList[domain.RevenuePoint](ctx, s.fetcher, category, params)
	case domain.CategoryProducts:
		return fetchList[domain.ProductMetric](ctx, s.fetcher, category, params)
	case domain.CategoryMarketing:
		return fetchList[domain.MarketingChannelMetric](ctx, s.fetcher, category, params)
	case domain.CategoryStates:
		return fetchList[domain.StateMetric](ctx, s.fetcher, category, params)
	case domain.CategoryDevices:
		return fetchList[domain.DeviceMetric](ctx, s.fetcher, category, params)
	}

	return nil, fmt.Errorf("%w: %s", domain.ErrUnknownCategory, category)
}

func fetchList[T any](ctx context.Context, fetcher Fetcher, category domain.Category, params url.Values) ([]T, error) {
	out := []T{}
	if err := fetcher.Fetch(ctx, category, params, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

// Typed accessors usados pelas views

func KPIs(slot Slot) *domain.KPISnapshot {
	v, _ := slot.Data.(*domain.KPISnapshot)
	return v
}

func RevenuePoints(slot Slot) []domain.RevenuePoint {
	v, _ := slot.Data.([]domain.RevenuePoint)
	return v
}

func Products(slot Slot) []domain.ProductMetric {
	v, _ := slot.Data.([]domain.ProductMetric)
	return v
}

func MarketingChannels(slot Slot) []domain.MarketingChannelMetric {
	v, _ := slot.Data.([]domain.MarketingChannelMetric)
	return v
}

func States(slot Slot) []domain.StateMetric {
	v, _ := slot.Data.([]domain.StateMetric)
	return v
}

func Devices(slot Slot) []domain.DeviceMetric {
	v, _ := slot.Data.([]domain.DeviceMetric)
	return v
}
