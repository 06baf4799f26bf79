package repository

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/ecommerce-dashboard-api/infrastructure/database/mongodb"
	"github.com/vfg2006/ecommerce-dashboard-api/internal/domain"
	"github.com/vfg2006/ecommerce-dashboard-api/internal/metrics"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoMetricRepository struct {
	conn *mongodb.Connection
}

func NewMongoMetricRepository(conn *mongodb.Connection) MetricRepository {
	return &mongoMetricRepository{
		conn: conn,
	}
}

func (m *mongoMetricRepository) Find(ctx context.Context, collection string, query domain.ListQuery, out any) (err error) {
	defer record(collection, "find", time.Now(), &err)

	filter, opts := buildMongoFind(query)

	cursor, err := m.conn.Collection(collection).Find(ctx, filter, opts)
	if err != nil {
		return errors.Wrapf(err, "find on %s", collection)
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, out); err != nil {
		return errors.Wrapf(err, "decode %s", collection)
	}

	return nil
}

func (m *mongoMetricRepository) FindOne(ctx context.Context, collection string, query domain.ListQuery, out any) (err error) {
	defer record(collection, "find_one", time.Now(), &err)

	filter, findOpts := buildMongoFind(query)
	opts := options.FindOne().SetSort(findOpts.Sort)

	err = m.conn.Collection(collection).FindOne(ctx, filter, opts).Decode(out)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.ErrNotFound
		}
		return errors.Wrapf(err, "find one on %s", collection)
	}

	return nil
}

func (m *mongoMetricRepository) Insert(ctx context.Context, collection string, docs ...any) (err error) {
	if len(docs) == 0 {
		return nil
	}
	defer record(collection, "insert", time.Now(), &err)

	ensureIDs(docs)

	if _, err = m.conn.Collection(collection).InsertMany(ctx, docs); err != nil {
		return errors.Wrapf(err, "insert into %s", collection)
	}

	return nil
}

func (m *mongoMetricRepository) DeleteAll(ctx context.Context, collection string) (deleted int64, err error) {
	defer record(collection, "delete", time.Now(), &err)

	result, err := m.conn.Collection(collection).DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, errors.Wrapf(err, "delete from %s", collection)
	}

	return result.DeletedCount, nil
}

func (m *mongoMetricRepository) Ping(ctx context.Context) error {
	return m.conn.Ping(ctx)
}

func (m *mongoMetricRepository) Close(ctx context.Context) error {
	return m.conn.Close(ctx)
}

// buildMongoFind traduz a ListQuery para filtro e opções do driver.
// O desempate por _id mantém a ordem de inserção entre valores iguais.
func buildMongoFind(query domain.ListQuery) (bson.M, *options.FindOptions) {
	filter := bson.M{}
	if query.HasDateWindow() {
		filter[query.DateField] = bson.M{
			"$gte": *query.DateRange.Start,
			"$lte": *query.DateRange.End,
		}
	}

	var sort bson.D
	switch query.SortField {
	case "":
		sort = bson.D{{Key: "_id", Value: 1}}
	case "_id":
		sort = bson.D{{Key: "_id", Value: direction(query.Order)}}
	default:
		sort = bson.D{{Key: query.SortField, Value: direction(query.Order)}, {Key: "_id", Value: 1}}
	}

	opts := options.Find().SetSort(sort)
	if query.Limit > 0 {
		opts.SetLimit(query.Limit)
	}

	return filter, opts
}

func direction(order domain.SortOrder) int {
	if order == domain.SortDesc {
		return -1
	}
	return 1
}

func record(collection, operation string, start time.Time, err *error) {
	var opErr error
	if err != nil && *err != nil && !errors.Is(*err, domain.ErrNotFound) {
		opErr = *err
	}
	metrics.RecordStoreQuery(collection, operation, time.Since(start), opErr)
}
