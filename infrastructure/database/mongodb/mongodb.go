package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/vfg2006/ecommerce-dashboard-api/internal/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const defaultConnectTimeout = 10 * time.Second

type Connection struct {
	Client   *mongo.Client
	Database *mongo.Database
}

// NewConnection cria o client do MongoDB. mongo.Connect não exige o servidor
// disponível, então a verificação de conectividade fica a cargo de Ping.
func NewConnection(ctx context.Context, cfg config.MongoDB) (*Connection, error) {
	if cfg.URI == "" {
		return nil, fmt.Errorf("mongodb connection URI is empty")
	}

	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = defaultConnectTimeout
	}

	clientOptions := options.Client().ApplyURI(cfg.URI).
		SetConnectTimeout(timeout).
		SetServerSelectionTimeout(timeout)
	if cfg.MaxPoolSize > 0 {
		clientOptions.SetMaxPoolSize(cfg.MaxPoolSize)
	}
	if cfg.MinPoolSize > 0 {
		clientOptions.SetMinPoolSize(cfg.MinPoolSize)
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	return &Connection{
		Client:   client,
		Database: client.Database(cfg.Database),
	}, nil
}

func (c *Connection) Collection(name string) *mongo.Collection {
	return c.Database.Collection(name)
}

func (c *Connection) Ping(ctx context.Context) error {
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	return c.Client.Ping(pingCtx, readpref.Primary())
}

func (c *Connection) Close(ctx context.Context) error {
	return c.Client.Disconnect(ctx)
}
