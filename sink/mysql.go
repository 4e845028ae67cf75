package sink

import (
	"strings"

	_ "github.com/go-sql-driver/mysql"

	"github.com/mohorko/zeeklog/core"
)

// Register target
func init() {
	_ = register(&MySQL{}, "mysql", "mariadb")
}

var _ Dialect = (*MySQL)(nil)

type MySQL struct{}

func (*MySQL) Name() string {
	return "mysql"
}

func (*MySQL) Driver() string {
	return "mysql"
}

func (*MySQL) QuoteIdent(ident string) string {
	return "`" + strings.ReplaceAll(ident, "`", "``") + "`"
}

func (*MySQL) Placeholder(int) string {
	return "?"
}

func (*MySQL) ColumnType(typ *core.ColumnType) string {
	switch typ.Kind {
	case core.KindTimestamp:
		return "DATETIME(6)"
	case core.KindFloat64:
		return "DOUBLE"
	case core.KindUInt64:
		return "BIGINT UNSIGNED"
	case core.KindInt64:
		return "BIGINT"
	case core.KindBoolean:
		return "BOOLEAN"
	case core.KindList:
		return "JSON"
	default:
		return "TEXT"
	}
}

func (*MySQL) CreateTableSuffix() string {
	return ""
}
