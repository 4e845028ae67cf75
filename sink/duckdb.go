//go:build cgo && ((darwin && (amd64 || arm64)) || (linux && (amd64 || arm64 || riscv64)))

package sink

import (
	"strings"

	_ "github.com/marcboeker/go-duckdb"

	"github.com/mohorko/zeeklog/core"
)

// Register target
func init() {
	_ = register(&Duck{}, "duck", "duckdb")
}

var _ Dialect = (*Duck)(nil)

type Duck struct{}

func (*Duck) Name() string {
	return "duckdb"
}

func (*Duck) Driver() string {
	return "duckdb"
}

func (*Duck) QuoteIdent(ident string) string {
	return `"` + strings.ReplaceAll(ident, `"`, `""`) + `"`
}

func (*Duck) Placeholder(int) string {
	return "?"
}

func (*Duck) ColumnType(typ *core.ColumnType) string {
	switch typ.Kind {
	case core.KindTimestamp:
		return "TIMESTAMP"
	case core.KindFloat64:
		return "DOUBLE"
	case core.KindUInt64:
		return "UBIGINT"
	case core.KindInt64:
		return "BIGINT"
	case core.KindBoolean:
		return "BOOLEAN"
	default:
		return "VARCHAR"
	}
}

func (*Duck) CreateTableSuffix() string {
	return ""
}
