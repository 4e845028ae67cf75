package sink

import (
	"strings"

	_ "github.com/ClickHouse/clickhouse-go/v2"

	"github.com/mohorko/zeeklog/core"
)

// Register target
func init() {
	_ = register(&ClickHouse{}, "clickhouse", "ch")
}

var _ Dialect = (*ClickHouse)(nil)

type ClickHouse struct{}

func (*ClickHouse) Name() string {
	return "clickhouse"
}

func (*ClickHouse) Driver() string {
	return "clickhouse"
}

func (*ClickHouse) QuoteIdent(ident string) string {
	return "`" + strings.ReplaceAll(ident, "`", "\\`") + "`"
}

func (*ClickHouse) Placeholder(int) string {
	return "?"
}

func (*ClickHouse) ColumnType(typ *core.ColumnType) string {
	switch typ.Kind {
	case core.KindTimestamp:
		return "Nullable(DateTime64(6))"
	case core.KindFloat64:
		return "Nullable(Float64)"
	case core.KindUInt64:
		return "Nullable(UInt64)"
	case core.KindInt64:
		return "Nullable(Int64)"
	case core.KindBoolean:
		return "Bool"
	case core.KindList:
		// lists arrive JSON-encoded
		return "String"
	default:
		return "Nullable(String)"
	}
}

func (*ClickHouse) CreateTableSuffix() string {
	return " ENGINE = MergeTree ORDER BY tuple()"
}
