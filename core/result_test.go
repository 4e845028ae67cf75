package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mohorko/zeeklog/core"
)

func TestResultStream_DrainsScanner(t *testing.T) {
	r := require.New(t)

	opener := fakeOpener{
		"conn.log": connLog(
			"1.0\tC1\t1",
			"2.0\tC2\t2",
			"3.0\tC3\t3",
		),
	}

	scanner, err := core.NewScanner([]string{"conn.log"}, opener, core.WithBatchSize(2))
	r.NoError(err)

	stream := core.NewResultStream(scanner)
	defer stream.Close()

	r.Equal([]string{"ts", "uid", "orig_bytes"}, stream.Schema().Names())

	var uids []any
	for stream.HasNext() {
		row, err := stream.Next()
		r.NoError(err)
		uids = append(uids, row[1])
	}
	r.Equal([]any{"C1", "C2", "C3"}, uids)

	r.False(stream.HasNext())
	_, err = stream.Next()
	r.ErrorIs(err, core.ErrNoNextRow)
}

func TestResultStreamBuilder(t *testing.T) {
	r := require.New(t)

	rows := []core.Row{{"a"}, {"b"}}
	closed := false

	next, hasNext := core.NextSlice(rows)
	stream := core.NewResultStreamBuilder().
		WithSchema(core.Schema{{Name: "col", Type: core.TypeFromZeek("string")}}).
		WithNextFunc(next, hasNext).
		WithCloseFunc(func() { closed = true }).
		Build()

	var got []core.Row
	for stream.HasNext() {
		row, err := stream.Next()
		r.NoError(err)
		got = append(got, row)
	}
	r.Equal(rows, got)

	stream.Close()
	r.True(closed)
}
