package sink

import (
	"strings"

	_ "modernc.org/sqlite"

	"github.com/mohorko/zeeklog/core"
)

// Register target
func init() {
	_ = register(&SQLite{}, "sqlite", "sqlite3")
}

var _ Dialect = (*SQLite)(nil)

type SQLite struct{}

func (*SQLite) Name() string {
	return "sqlite"
}

func (*SQLite) Driver() string {
	return "sqlite"
}

func (*SQLite) QuoteIdent(ident string) string {
	return `"` + strings.ReplaceAll(ident, `"`, `""`) + `"`
}

func (*SQLite) Placeholder(int) string {
	return "?"
}

func (*SQLite) ColumnType(typ *core.ColumnType) string {
	switch typ.Kind {
	case core.KindTimestamp:
		return "TEXT"
	case core.KindFloat64:
		return "REAL"
	case core.KindUInt64, core.KindInt64, core.KindBoolean:
		return "INTEGER"
	default:
		return "TEXT"
	}
}

func (*SQLite) CreateTableSuffix() string {
	return ""
}
