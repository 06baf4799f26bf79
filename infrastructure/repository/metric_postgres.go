package repository

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/vfg2006/ecommerce-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/ecommerce-dashboard-api/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// undefined_table
const pqUndefinedTable = "42P01"

type postgresMetricRepository struct {
	conn postgres.Conn
}

// NewPostgresMetricRepository armazena cada coleção como uma tabela de documentos JSONB
func NewPostgresMetricRepository(conn postgres.Conn) MetricRepository {
	return &postgresMetricRepository{
		conn: conn,
	}
}

// CreateTableSQL retorna o DDL da tabela de uma coleção
func CreateTableSQL(collection string) string {
	return fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
	seq BIGSERIAL PRIMARY KEY,
	id TEXT NOT NULL UNIQUE,
	doc JSONB NOT NULL,
	inserted_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`, pq.QuoteIdentifier(collection))
}

// EnsureTable cria a tabela da coleção caso ainda não exista
func EnsureTable(ctx context.Context, q postgres.Queryer, collection string) error {
	if _, err := q.Exec(ctx, CreateTableSQL(collection)); err != nil {
		return errors.Wrapf(err, "create table %s", collection)
	}
	return nil
}

func (p *postgresMetricRepository) Find(ctx context.Context, collection string, query domain.ListQuery, out any) (err error) {
	defer record(collection, "find", time.Now(), &err)

	findSQL, args, err := buildFindQuery(collection, query).ToSql()
	if err != nil {
		return err
	}

	rows, err := p.conn.Query(ctx, findSQL, args...)
	if err != nil {
		if isUndefinedTable(err) {
			// coleção ainda não populada
			return json.Unmarshal([]byte("[]"), out)
		}
		return errors.Wrapf(err, "find on %s", collection)
	}
	defer rows.Close()

	// os documentos são concatenados em um array JSON e decodificados de uma vez
	var buf bytes.Buffer
	buf.WriteByte('[')
	first := true
	for rows.Next() {
		var doc []byte
		if err = rows.Scan(&doc); err != nil {
			return errors.Wrapf(err, "scan %s", collection)
		}
		if !first {
			buf.WriteByte(',')
		}
		buf.Write(doc)
		first = false
	}
	if err = rows.Err(); err != nil {
		return errors.Wrapf(err, "iterate %s", collection)
	}
	buf.WriteByte(']')

	if err = json.Unmarshal(buf.Bytes(), out); err != nil {
		return errors.Wrapf(err, "decode %s", collection)
	}

	return nil
}

func (p *postgresMetricRepository) FindOne(ctx context.Context, collection string, query domain.ListQuery, out any) (err error) {
	defer record(collection, "find_one", time.Now(), &err)

	query.Limit = 1
	findSQL, args, err := buildFindQuery(collection, query).ToSql()
	if err != nil {
		return err
	}

	var doc []byte
	err = p.conn.QueryRow(ctx, findSQL, args...).Scan(&doc)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || isUndefinedTable(err) {
			return domain.ErrNotFound
		}
		return errors.Wrapf(err, "find one on %s", collection)
	}

	if err = json.Unmarshal(doc, out); err != nil {
		return errors.Wrapf(err, "decode %s", collection)
	}

	return nil
}

func (p *postgresMetricRepository) Insert(ctx context.Context, collection string, docs ...any) (err error) {
	if len(docs) == 0 {
		return nil
	}
	defer record(collection, "insert", time.Now(), &err)

	ensureIDs(docs)

	insert := squirrel.
		Insert(pq.QuoteIdentifier(collection)).
		Columns("id", "doc").
		PlaceholderFormat(squirrel.Dollar)

	for _, doc := range docs {
		raw, err := json.Marshal(doc)
		if err != nil {
			return errors.Wrapf(err, "encode document for %s", collection)
		}
		insert = insert.Values(documentID(doc), string(raw))
	}

	insertSQL, args, err := insert.ToSql()
	if err != nil {
		return err
	}

	return p.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, CreateTableSQL(collection)); err != nil {
			return errors.Wrapf(err, "create table %s", collection)
		}
		if _, err := tx.ExecContext(ctx, insertSQL, args...); err != nil {
			return errors.Wrapf(err, "insert into %s", collection)
		}
		return nil
	})
}

func (p *postgresMetricRepository) DeleteAll(ctx context.Context, collection string) (deleted int64, err error) {
	defer record(collection, "delete", time.Now(), &err)

	deleteSQL, args, err := squirrel.
		Delete(pq.QuoteIdentifier(collection)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, err
	}

	result, err := p.conn.Exec(ctx, deleteSQL, args...)
	if err != nil {
		if isUndefinedTable(err) {
			return 0, nil
		}
		return 0, errors.Wrapf(err, "delete from %s", collection)
	}

	return result.RowsAffected()
}

func (p *postgresMetricRepository) Ping(ctx context.Context) error {
	return p.conn.Ping(ctx)
}

func (p *postgresMetricRepository) Close(_ context.Context) error {
	return p.conn.Close()
}

// buildFindQuery monta o SELECT de uma ListQuery. O campo de ordenação vai como
// parâmetro e seq desempata na ordem de inserção.
func buildFindQuery(collection string, query domain.ListQuery) squirrel.SelectBuilder {
	builder := squirrel.
		Select("doc").
		From(pq.QuoteIdentifier(collection)).
		PlaceholderFormat(squirrel.Dollar)

	if query.HasDateWindow() {
		builder = builder.Where(
			squirrel.Expr("(doc->>?::text)::timestamptz BETWEEN ? AND ?",
				query.DateField, *query.DateRange.Start, *query.DateRange.End),
		)
	}

	if query.SortField != "" {
		dir := "ASC"
		if query.Order == domain.SortDesc {
			dir = "DESC"
		}
		// campo de data ordena como instante, não como texto do JSON
		orderExpr := "doc -> ?::text "
		if query.DateField != "" && query.SortField == query.DateField {
			orderExpr = "(doc->>?::text)::timestamptz "
		}
		builder = builder.OrderByClause(orderExpr+dir, query.SortField)
	}
	builder = builder.OrderBy("seq ASC")

	if query.Limit > 0 {
		builder = builder.Limit(uint64(query.Limit))
	}

	return builder
}

func documentID(doc any) string {
	if d, ok := doc.(domain.Identifiable); ok {
		return d.EnsureID().Hex()
	}
	return primitive.NewObjectID().Hex()
}

func isUndefinedTable(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pqUndefinedTable
}
