package core

import (
	"strconv"
	"strings"
	"time"
)

// decoder turns raw data lines into rows using a bound header and the column
// types resolved from it. It is built once per scan and holds no per-line
// state, so decoding never mutates shared data.
type decoder struct {
	header *Header
	types  []*ColumnType
}

func newDecoder(header *Header, types []*ColumnType) *decoder {
	return &decoder{
		header: header,
		types:  types,
	}
}

// decodeLine splits a data line on the field separator and decodes one value
// per declared column. Missing trailing fields decode to NULL; extra fields
// beyond the declared columns are ignored. Content problems never produce an
// error, they degrade to NULL (or false, or an empty list).
func (d *decoder) decodeLine(line string) Row {
	fields := strings.Split(line, string(d.header.Separator))

	row := make(Row, len(d.types))
	for i, typ := range d.types {
		if i >= len(fields) {
			continue
		}
		row[i] = d.decodeField(fields[i], typ)
	}
	return row
}

// decodeField decodes a single raw field. The unset and empty markers decode
// to NULL for scalars and to an empty list for collections.
func (d *decoder) decodeField(raw string, typ *ColumnType) any {
	if typ.Kind == KindList {
		return d.decodeList(raw, typ.Elem)
	}
	if raw == d.header.UnsetField || raw == d.header.EmptyField {
		return nil
	}
	return decodeScalar(raw, typ.Kind)
}

// decodeList splits a collection field on the set separator and decodes each
// element, checking the unset/empty markers per element. A malformed element
// becomes a NULL entry inside the list, never a failure of the whole field.
func (d *decoder) decodeList(raw string, elem *ColumnType) []any {
	if raw == d.header.UnsetField || raw == d.header.EmptyField {
		return []any{}
	}

	parts := strings.Split(raw, string(d.header.SetSeparator))
	values := make([]any, len(parts))
	for i, part := range parts {
		values[i] = d.decodeField(part, elem)
	}
	return values
}

// decodeScalar parses a raw field as the given scalar kind, returning nil on
// any parse failure. Booleans have no NULL path: anything other than "T" or
// "true" is false.
func decodeScalar(raw string, kind ColumnKind) any {
	switch kind {
	case KindFloat64:
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			return v
		}
		return nil
	case KindUInt64:
		if v, err := strconv.ParseUint(raw, 10, 64); err == nil {
			return v
		}
		return nil
	case KindInt64:
		if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return v
		}
		return nil
	case KindBoolean:
		return raw == "T" || raw == "true"
	case KindTimestamp:
		// Zeek timestamps are decimal seconds since the epoch. Convert
		// to microsecond resolution, truncating toward zero.
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			return time.UnixMicro(int64(v * 1e6)).UTC()
		}
		return nil
	default:
		return raw
	}
}
