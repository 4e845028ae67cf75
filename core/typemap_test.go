package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mohorko/zeeklog/core"
)

func TestTypeFromZeek_Scalars(t *testing.T) {
	testCases := []struct {
		zeekType string
		expected core.ColumnKind
	}{
		{zeekType: "time", expected: core.KindTimestamp},
		{zeekType: "interval", expected: core.KindFloat64},
		{zeekType: "double", expected: core.KindFloat64},
		{zeekType: "count", expected: core.KindUInt64},
		{zeekType: "int", expected: core.KindInt64},
		{zeekType: "bool", expected: core.KindBoolean},
		{zeekType: "string", expected: core.KindString},
		{zeekType: "addr", expected: core.KindString},
		{zeekType: "subnet", expected: core.KindString},
		{zeekType: "port", expected: core.KindString},
		{zeekType: "enum", expected: core.KindString},
		// unknown names fail open to string
		{zeekType: "pattern", expected: core.KindString},
		{zeekType: "", expected: core.KindString},
	}

	for _, tc := range testCases {
		t.Run(tc.zeekType, func(t *testing.T) {
			r := require.New(t)

			typ := core.TypeFromZeek(tc.zeekType)
			r.Equal(tc.expected, typ.Kind)
			r.Nil(typ.Elem)
		})
	}
}

func TestTypeFromZeek_Collections(t *testing.T) {
	r := require.New(t)

	vector := core.TypeFromZeek("vector[count]")
	r.Equal(core.KindList, vector.Kind)
	r.Equal(core.KindUInt64, vector.Elem.Kind)

	set := core.TypeFromZeek("set[count]")
	r.Equal(vector, set)

	nested := core.TypeFromZeek("vector[vector[double]]")
	r.Equal(core.KindList, nested.Kind)
	r.Equal(core.KindList, nested.Elem.Kind)
	r.Equal(core.KindFloat64, nested.Elem.Elem.Kind)

	// malformed brackets default the element type to string
	malformed := core.TypeFromZeek("set[")
	r.Equal(core.KindList, malformed.Kind)
	r.Equal(core.KindString, malformed.Elem.Kind)
}

func TestTypeFromZeek_Idempotent(t *testing.T) {
	r := require.New(t)

	for _, name := range []string{"time", "count", "vector[int]", "set[set[addr]]", "bogus"} {
		r.Equal(core.TypeFromZeek(name), core.TypeFromZeek(name))
	}
}

func TestColumnTypeString(t *testing.T) {
	r := require.New(t)

	r.Equal("uint64", core.TypeFromZeek("count").String())
	r.Equal("list<list<float64>>", core.TypeFromZeek("vector[vector[double]]").String())
}
