package metrics

import (
	"context"
	"fmt"
	"time"

	"github.com/vfg2006/ecommerce-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/ecommerce-dashboard-api/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

type Service interface {
	List(ctx context.Context, category domain.Category, params domain.ListParams) (any, error)
	MostRecentKPI(ctx context.Context, dateRange domain.DateRange) (*domain.KPISnapshot, error)
	CreateKPI(ctx context.Context, input domain.KPISnapshotInput) (*domain.KPISnapshot, error)
	Bindings() []Binding
}

type MetricService struct {
	repo repository.MetricRepository
	now  func() time.Time
}

func NewService(repo repository.MetricRepository) Service {
	return &MetricService{
		repo: repo,
		now:  time.Now,
	}
}

// List devolve sempre um slice não nulo com os registros da categoria
func (s *MetricService) List(ctx context.Context, category domain.Category, params domain.ListParams) (any, error) {
	binding, ok := Lookup(category)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownCategory, category)
	}

	records := binding.NewList()
	if err := s.repo.Find(ctx, binding.Collection, binding.Query(params), records); err != nil {
		return nil, fmt.Errorf("list %s: %w", category, err)
	}

	return records, nil
}

func (s *MetricService) MostRecentKPI(ctx context.Context, dateRange domain.DateRange) (*domain.KPISnapshot, error) {
	binding, _ := Lookup(domain.CategoryKPIs)

	snapshot := &domain.KPISnapshot{}
	err := s.repo.FindOne(ctx, binding.Collection, binding.Query(domain.ListParams{DateRange: dateRange}), snapshot)
	if err != nil {
		return nil, err
	}

	return snapshot, nil
}

func (s *MetricService) CreateKPI(ctx context.Context, input domain.KPISnapshotInput) (*domain.KPISnapshot, error) {
	if err := Validate(input); err != nil {
		return nil, err
	}

	snapshot := input.ToSnapshot(s.now().UTC())
	snapshot.EnsureID()

	if err := s.repo.Insert(ctx, repository.KPICollection, snapshot); err != nil {
		return nil, fmt.Errorf("create kpi: %w", err)
	}

	return snapshot, nil
}

func (s *MetricService) Bindings() []Binding {
	bindings := make([]Binding, len(registry))
	copy(bindings, registry)
	return bindings
}
