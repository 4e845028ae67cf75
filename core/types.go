package core

import "strings"

type (
	// Row is a single decoded log record. A nil element is a SQL-style NULL.
	Row []any

	// Column is a named output column with its resolved type.
	Column struct {
		Name string
		Type *ColumnType
	}

	// Schema is the ordered output shape of a scan.
	Schema []Column
)

// Names returns the column names in schema order.
func (s Schema) Names() []string {
	names := make([]string, len(s))
	for i, col := range s {
		names[i] = col.Name
	}
	return names
}

type ColumnKind int

const (
	KindString ColumnKind = iota
	KindBoolean
	KindInt64
	KindUInt64
	KindFloat64
	KindTimestamp
	KindList
)

func (k ColumnKind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindBoolean:
		return "boolean"
	case KindInt64:
		return "int64"
	case KindUInt64:
		return "uint64"
	case KindFloat64:
		return "float64"
	case KindTimestamp:
		return "timestamp"
	case KindList:
		return "list"
	default:
		return ""
	}
}

// ColumnType is the resolved type of a single column. Elem is set only for
// KindList and describes the element type, recursively.
type ColumnType struct {
	Kind ColumnKind
	Elem *ColumnType
}

func (t *ColumnType) String() string {
	if t.Kind == KindList {
		var b strings.Builder
		b.WriteString("list<")
		b.WriteString(t.Elem.String())
		b.WriteString(">")
		return b.String()
	}
	return t.Kind.String()
}

// Batch is a fixed-capacity group of decoded rows returned per scan request.
// An empty batch signals end of data.
type Batch struct {
	Rows []Row
}

func (b *Batch) Len() int {
	return len(b.Rows)
}

func (b *Batch) IsEmpty() bool {
	return len(b.Rows) == 0
}

// Logger is the minimal logging interface the scanner reports through.
type Logger interface {
	Debug(msg string)
	Debugf(format string, args ...any)
	Info(msg string)
	Infof(format string, args ...any)
	Warn(msg string)
	Warnf(format string, args ...any)
	Error(msg string)
	Errorf(format string, args ...any)
}

var _ Logger = (*noopLogger)(nil)

type noopLogger struct{}

func (*noopLogger) Debug(string)          {}
func (*noopLogger) Debugf(string, ...any) {}
func (*noopLogger) Info(string)           {}
func (*noopLogger) Infof(string, ...any)  {}
func (*noopLogger) Warn(string)           {}
func (*noopLogger) Warnf(string, ...any)  {}
func (*noopLogger) Error(string)          {}
func (*noopLogger) Errorf(string, ...any) {}
