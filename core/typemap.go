package core

import "strings"

// TypeFromZeek resolves a Zeek type name to a column type. Collection types
// (vector[T], set[T]) resolve their element type recursively; any name
// without a mapping resolves to string rather than failing.
func TypeFromZeek(zeekType string) *ColumnType {
	switch zeekType {
	case "time":
		return &ColumnType{Kind: KindTimestamp}
	case "interval", "double":
		return &ColumnType{Kind: KindFloat64}
	case "count":
		return &ColumnType{Kind: KindUInt64}
	case "int":
		return &ColumnType{Kind: KindInt64}
	case "bool":
		return &ColumnType{Kind: KindBoolean}
	case "string", "addr", "subnet", "port", "enum":
		return &ColumnType{Kind: KindString}
	}

	if strings.HasPrefix(zeekType, "vector[") || strings.HasPrefix(zeekType, "set[") {
		return &ColumnType{
			Kind: KindList,
			Elem: TypeFromZeek(innerType(zeekType)),
		}
	}

	return &ColumnType{Kind: KindString}
}

// innerType extracts the element type name between the first '[' and the
// last ']' of a collection type name, defaulting to string when the
// brackets are malformed.
func innerType(zeekType string) string {
	start := strings.IndexByte(zeekType, '[')
	end := strings.LastIndexByte(zeekType, ']')
	if start >= 0 && end > start {
		return zeekType[start+1 : end]
	}
	return "string"
}
