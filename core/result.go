package core

import "errors"

var ErrNoNextRow = errors.New("no next row")

// ResultStream is a row iterator over a scan (or anything row-shaped).
type ResultStream interface {
	Schema() Schema
	Next() (Row, error)
	HasNext() bool
	Close()
}

var _ ResultStream = (*scanStream)(nil)

// scanStream adapts a Scanner into a ResultStream, draining it one batch at
// a time.
type scanStream struct {
	scanner *Scanner
	batch   *Batch
	index   int
	done    bool
	err     error
}

// NewResultStream returns a row iterator over the scanner. Closing the
// stream closes the scanner.
func NewResultStream(scanner *Scanner) ResultStream {
	return &scanStream{scanner: scanner}
}

func (s *scanStream) Schema() Schema {
	return s.scanner.Schema()
}

func (s *scanStream) HasNext() bool {
	if s.err != nil {
		// surface the pending error from Next
		return true
	}
	for !s.done && (s.batch == nil || s.index >= s.batch.Len()) {
		batch, err := s.scanner.NextBatch()
		if err != nil {
			s.err = err
			return true
		}
		if batch.IsEmpty() {
			s.done = true
			return false
		}
		s.batch = batch
		s.index = 0
	}
	return !s.done
}

func (s *scanStream) Next() (Row, error) {
	if !s.HasNext() {
		return nil, ErrNoNextRow
	}
	if s.err != nil {
		err := s.err
		s.err = nil
		s.done = true
		return nil, err
	}
	row := s.batch.Rows[s.index]
	s.index++
	return row, nil
}

func (s *scanStream) Close() {
	s.done = true
	_ = s.scanner.Close()
}

var _ ResultStream = (*builtStream)(nil)

// builtStream fills the ResultStream interface from plain functions.
type builtStream struct {
	schema  Schema
	next    func() (Row, error)
	hasNext func() bool
	close   func()
}

func (s *builtStream) Schema() Schema     { return s.schema }
func (s *builtStream) Next() (Row, error) { return s.next() }
func (s *builtStream) HasNext() bool      { return s.hasNext() }
func (s *builtStream) Close()             { s.close() }

// ResultStreamBuilder builds ad-hoc result streams, mostly for tests and
// fixed results.
type ResultStreamBuilder struct {
	schema  Schema
	next    func() (Row, error)
	hasNext func() bool
	close   func()
}

func NewResultStreamBuilder() *ResultStreamBuilder {
	return &ResultStreamBuilder{
		next:    func() (Row, error) { return nil, ErrNoNextRow },
		hasNext: func() bool { return false },
		close:   func() {},
	}
}

func (b *ResultStreamBuilder) WithSchema(schema Schema) *ResultStreamBuilder {
	b.schema = schema
	return b
}

func (b *ResultStreamBuilder) WithNextFunc(next func() (Row, error), hasNext func() bool) *ResultStreamBuilder {
	b.next = next
	b.hasNext = hasNext
	return b
}

func (b *ResultStreamBuilder) WithCloseFunc(close func()) *ResultStreamBuilder {
	b.close = close
	return b
}

func (b *ResultStreamBuilder) Build() ResultStream {
	return &builtStream{
		schema:  b.schema,
		next:    b.next,
		hasNext: b.hasNext,
		close:   b.close,
	}
}

// NextSlice creates next and hasNext functions over a slice of rows.
func NextSlice(rows []Row) (func() (Row, error), func() bool) {
	index := 0

	hasNext := func() bool {
		return index < len(rows)
	}

	next := func() (Row, error) {
		if !hasNext() {
			return nil, ErrNoNextRow
		}
		row := rows[index]
		index++
		return row, nil
	}

	return next, hasNext
}
