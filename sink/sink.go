package sink

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/mohorko/zeeklog/core"
)

type loaderConfig struct {
	logger core.Logger
}

type LoaderOption func(*loaderConfig)

func WithLogger(logger core.Logger) LoaderOption {
	return func(c *loaderConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Loader streams scan batches into a destination table, creating the table
// from the scan schema first.
type Loader struct {
	db      *sql.DB
	dialect Dialect
	table   string
	log     core.Logger
}

// NewLoader opens a connection to the given target database.
func NewLoader(target, dsn, table string, opts ...LoaderOption) (*Loader, error) {
	dialect, err := Get(target)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(dialect.Driver(), dsn)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to %s database: %w", dialect.Name(), err)
	}

	return NewLoaderWithDB(db, dialect, table, opts...), nil
}

// NewLoaderWithDB wraps an existing database handle. The loader takes
// ownership: Close closes the handle.
func NewLoaderWithDB(db *sql.DB, dialect Dialect, table string, opts ...LoaderOption) *Loader {
	config := &loaderConfig{logger: noopLogger{}}
	for _, opt := range opts {
		opt(config)
	}

	return &Loader{
		db:      db,
		dialect: dialect,
		table:   table,
		log:     config.logger,
	}
}

func (l *Loader) Close() error {
	return l.db.Close()
}

// Load creates the destination table from the scanner's schema and inserts
// every row the scanner produces. Scanning and inserting run in a small
// pipeline: the scanner stays a single sequential cursor while inserts
// overlap with decoding. Returns the number of rows loaded.
func (l *Loader) Load(ctx context.Context, scanner *core.Scanner) (int64, error) {
	schema := scanner.Schema()

	if err := l.createTable(ctx, schema); err != nil {
		return 0, err
	}

	batches := make(chan *core.Batch, 1)
	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		defer close(batches)
		for {
			batch, err := scanner.NextBatch()
			if err != nil {
				return err
			}
			if batch.IsEmpty() {
				return nil
			}
			select {
			case batches <- batch:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	})

	var total int64
	group.Go(func() error {
		for batch := range batches {
			if err := l.insertBatch(ctx, schema, batch); err != nil {
				return err
			}
			total += int64(batch.Len())
		}
		return nil
	})

	if err := group.Wait(); err != nil {
		return total, err
	}

	l.log.Infof("loaded %d rows into %s.%s", total, l.dialect.Name(), l.table)
	return total, nil
}

func (l *Loader) createTable(ctx context.Context, schema core.Schema) error {
	columns := make([]string, len(schema))
	for i, col := range schema {
		columns[i] = l.dialect.QuoteIdent(col.Name) + " " + l.dialect.ColumnType(col.Type)
	}

	ddl := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)%s",
		l.dialect.QuoteIdent(l.table),
		strings.Join(columns, ", "),
		l.dialect.CreateTableSuffix(),
	)

	if _, err := l.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create table %s: %w", l.table, err)
	}
	return nil
}

// insertBatch writes one batch inside a transaction through a prepared
// statement, the insert shape every supported driver accepts (clickhouse-go
// in particular only batches this way).
func (l *Loader) insertBatch(ctx context.Context, schema core.Schema, batch *core.Batch) error {
	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, l.insertStatement(schema))
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, row := range batch.Rows {
		args, err := bindRow(row)
		if err != nil {
			return err
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return fmt.Errorf("insert row: %w", err)
		}
	}

	return tx.Commit()
}

func (l *Loader) insertStatement(schema core.Schema) string {
	columns := make([]string, len(schema))
	placeholders := make([]string, len(schema))
	for i, col := range schema {
		columns[i] = l.dialect.QuoteIdent(col.Name)
		placeholders[i] = l.dialect.Placeholder(i + 1)
	}

	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		l.dialect.QuoteIdent(l.table),
		strings.Join(columns, ", "),
		strings.Join(placeholders, ", "),
	)
}

// bindRow converts decoded values into driver-bindable arguments. Lists are
// stored as their JSON encoding.
func bindRow(row core.Row) ([]any, error) {
	args := make([]any, len(row))
	for i, val := range row {
		list, ok := val.([]any)
		if !ok {
			args[i] = val
			continue
		}
		encoded, err := json.Marshal(list)
		if err != nil {
			return nil, fmt.Errorf("encode list value: %w", err)
		}
		args[i] = string(encoded)
	}
	return args, nil
}

type noopLogger struct{}

func (noopLogger) Debug(string)          {}
func (noopLogger) Debugf(string, ...any) {}
func (noopLogger) Info(string)           {}
func (noopLogger) Infof(string, ...any)  {}
func (noopLogger) Warn(string)           {}
func (noopLogger) Warnf(string, ...any)  {}
func (noopLogger) Error(string)          {}
func (noopLogger) Errorf(string, ...any) {}
