package sink

import (
	"strconv"
	"strings"

	_ "github.com/lib/pq"

	"github.com/mohorko/zeeklog/core"
)

// Register target
func init() {
	_ = register(&Postgres{}, "postgres", "postgresql", "pg")
}

var _ Dialect = (*Postgres)(nil)

type Postgres struct{}

func (*Postgres) Name() string {
	return "postgres"
}

func (*Postgres) Driver() string {
	return "postgres"
}

func (*Postgres) QuoteIdent(ident string) string {
	return `"` + strings.ReplaceAll(ident, `"`, `""`) + `"`
}

func (*Postgres) Placeholder(position int) string {
	return "$" + strconv.Itoa(position)
}

func (*Postgres) ColumnType(typ *core.ColumnType) string {
	switch typ.Kind {
	case core.KindTimestamp:
		return "TIMESTAMPTZ"
	case core.KindFloat64:
		return "DOUBLE PRECISION"
	case core.KindUInt64:
		// counts can exceed the signed 64-bit range
		return "NUMERIC(20)"
	case core.KindInt64:
		return "BIGINT"
	case core.KindBoolean:
		return "BOOLEAN"
	case core.KindList:
		return "JSONB"
	default:
		return "TEXT"
	}
}

func (*Postgres) CreateTableSuffix() string {
	return ""
}
