package sink_test

import (
	"context"
	"io"
	"io/fs"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/mohorko/zeeklog/core"
	"github.com/mohorko/zeeklog/sink"
)

type fakeOpener map[string]string

func (o fakeOpener) Open(path string) (io.ReadCloser, error) {
	content, ok := o[path]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return io.NopCloser(strings.NewReader(content)), nil
}

func testScanner(t *testing.T) *core.Scanner {
	t.Helper()

	content := strings.Join([]string{
		"#fields\tuid\tn\tports",
		"#types\tstring\tcount\tset[count]",
		"C1\t1\t80,443",
		"-\t2\t(empty)",
	}, "\n") + "\n"

	scanner, err := core.NewScanner([]string{"conn.log"}, fakeOpener{"conn.log": content})
	require.NoError(t, err)
	return scanner
}

func TestLoader_Load(t *testing.T) {
	r := require.New(t)

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	r.NoError(err)

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS "conn" ("uid" TEXT, "n" INTEGER, "ports" TEXT)`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectBegin()
	prepared := mock.ExpectPrepare(`INSERT INTO "conn" ("uid", "n", "ports") VALUES (?, ?, ?)`)
	prepared.ExpectExec().
		WithArgs("C1", int64(1), "[80,443]").
		WillReturnResult(sqlmock.NewResult(1, 1))
	prepared.ExpectExec().
		WithArgs(nil, int64(2), "[]").
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	loader := sink.NewLoaderWithDB(db, &sink.SQLite{}, "conn")
	defer loader.Close()

	scanner := testScanner(t)
	defer scanner.Close()

	total, err := loader.Load(context.Background(), scanner)
	r.NoError(err)
	r.Equal(int64(2), total)

	r.NoError(mock.ExpectationsWereMet())
}

func TestLoader_CreateTableError(t *testing.T) {
	r := require.New(t)

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	r.NoError(err)

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS "conn" ("uid" TEXT, "n" INTEGER, "ports" TEXT)`).
		WillReturnError(fs.ErrPermission)

	loader := sink.NewLoaderWithDB(db, &sink.SQLite{}, "conn")
	defer loader.Close()

	scanner := testScanner(t)
	defer scanner.Close()

	_, err = loader.Load(context.Background(), scanner)
	r.ErrorIs(err, fs.ErrPermission)
}

func TestNewLoader_UnknownTarget(t *testing.T) {
	_, err := sink.NewLoader("cassandra", "dsn", "conn")
	require.ErrorIs(t, err, sink.ErrUnsupportedTarget)
}

func TestTargets(t *testing.T) {
	r := require.New(t)

	targets := sink.Targets()
	for _, expected := range []string{"sqlite", "postgres", "mysql", "clickhouse"} {
		r.Contains(targets, expected)
	}
}

func TestDialect_Postgres(t *testing.T) {
	r := require.New(t)

	var dialect sink.Postgres
	r.Equal("$3", dialect.Placeholder(3))
	r.Equal(`"weird""name"`, dialect.QuoteIdent(`weird"name`))
	r.Equal("NUMERIC(20)", dialect.ColumnType(core.TypeFromZeek("count")))
	r.Equal("JSONB", dialect.ColumnType(core.TypeFromZeek("set[addr]")))
}
