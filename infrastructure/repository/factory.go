package repository

import (
	"context"
	"fmt"

	"github.com/vfg2006/ecommerce-dashboard-api/infrastructure/database/mongodb"
	"github.com/vfg2006/ecommerce-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/ecommerce-dashboard-api/internal/config"
)

// NewMetricRepositoryFromConfig escolhe o backend conforme DATABASE_DRIVER
func NewMetricRepositoryFromConfig(ctx context.Context, cfg *config.Config) (MetricRepository, error) {
	switch cfg.Database.Driver {
	case "", config.DriverMongoDB:
		conn, err := mongodb.NewConnection(ctx, cfg.MongoDB)
		if err != nil {
			return nil, err
		}
		return NewMongoMetricRepository(conn), nil
	case config.DriverPostgres:
		conn, err := postgres.NewConnection(cfg.Database)
		if err != nil {
			return nil, err
		}
		return NewPostgresMetricRepository(conn), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
}
