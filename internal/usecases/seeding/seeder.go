package seeding

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ecommerce-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/ecommerce-dashboard-api/internal/usecases/metrics"
)

// batch é uma coleção e os documentos que ela recebe
type batch struct {
	collection string
	label      string
	docs       []any
}

type Seeder struct {
	repo    repository.MetricRepository
	dataset Dataset
}

func NewSeeder(repo repository.MetricRepository, dataset Dataset) *Seeder {
	return &Seeder{
		repo:    repo,
		dataset: dataset,
	}
}

// Run valida todo o dataset, limpa cada coleção e insere na ordem fixa
func (s *Seeder) Run(ctx context.Context) error {
	batches := s.batches()

	for _, b := range batches {
		for i, doc := range b.docs {
			if err := metrics.Validate(doc); err != nil {
				return fmt.Errorf("%s[%d]: %w", b.label, i, err)
			}
		}
	}

	if _, err := s.Clear(ctx); err != nil {
		return err
	}

	for _, b := range batches {
		start := time.Now()
		if err := s.repo.Insert(ctx, b.collection, b.docs...); err != nil {
			return fmt.Errorf("seed %s: %w", b.label, err)
		}

		logrus.WithFields(logrus.Fields{
			"collection": b.collection,
			"count":      len(b.docs),
			"duration":   time.Since(start).String(),
		}).Infof("%s seeded", b.label)
	}

	logrus.Info("Database seeded successfully")
	return nil
}

// Clear remove todos os documentos das coleções conhecidas
func (s *Seeder) Clear(ctx context.Context) (int64, error) {
	var total int64
	for _, collection := range repository.Collections {
		deleted, err := s.repo.DeleteAll(ctx, collection)
		if err != nil {
			return total, fmt.Errorf("clear %s: %w", collection, err)
		}
		total += deleted
	}

	logrus.WithField("deleted", total).Info("Cleared existing data")
	return total, nil
}

func (s *Seeder) batches() []batch {
	d := s.dataset

	return []batch{
		{collection: repository.KPICollection, label: "KPIs", docs: pointers(d.KPIs)},
		{collection: repository.RevenueCollection, label: "Revenue over time", docs: pointers(d.Revenue)},
		{collection: repository.ProductCollection, label: "Product performance", docs: pointers(d.Products)},
		{collection: repository.MarketingChannelCollection, label: "Marketing channels", docs: pointers(d.MarketingChannels)},
		{collection: repository.StateCollection, label: "State performance", docs: pointers(d.States)},
		{collection: repository.DeviceCollection, label: "Device performance", docs: pointers(d.Devices)},
	}
}

// pointers devolve ponteiros para os itens, para que o _id atribuído fique no registro
func pointers[T any](items []T) []any {
	out := make([]any, 0, len(items))
	for i := range items {
		out = append(out, &items[i])
	}
	return out
}
