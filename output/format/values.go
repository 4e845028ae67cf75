package format

import (
	"fmt"
	"strings"
	"time"
)

const timestampLayout = "2006-01-02T15:04:05.000000Z07:00"

// render returns the textual form of a decoded value; nullAs is the text a
// NULL renders to. Booleans render the way Zeek prints them and list values
// join their elements with a comma.
func render(val any, nullAs string) string {
	switch v := val.(type) {
	case nil:
		return nullAs
	case bool:
		if v {
			return "T"
		}
		return "F"
	case time.Time:
		return v.Format(timestampLayout)
	case []any:
		parts := make([]string, len(v))
		for i, elem := range v {
			parts[i] = render(elem, nullAs)
		}
		return strings.Join(parts, ",")
	default:
		return fmt.Sprint(v)
	}
}
