// Package sink loads decoded scan batches into SQL databases. Targets
// register themselves in their init functions so the binary builds without
// drivers unsupported on the current os/arch.
package sink

import (
	"errors"
	"sort"

	"github.com/mohorko/zeeklog/core"
)

var (
	errNoValidTargetAliases = errors.New("no valid target aliases provided")
	ErrUnsupportedTarget    = errors.New("no dialect registered for provided target")
)

// Dialect describes how one database spells identifiers, placeholders and
// column types.
type Dialect interface {
	Name() string
	// Driver is the database/sql driver name to open connections with.
	Driver() string
	QuoteIdent(ident string) string
	// Placeholder returns the parameter marker for a 1-based position.
	Placeholder(position int) string
	ColumnType(typ *core.ColumnType) string
	// CreateTableSuffix is appended to generated DDL (engine clauses and
	// the like); empty for most databases.
	CreateTableSuffix() string
}

// registeredDialects holds implemented targets - specific dialects register
// themselves in their init functions.
var registeredDialects = make(map[string]Dialect)

func register(dialect Dialect, aliases ...string) error {
	if len(aliases) < 1 {
		return errNoValidTargetAliases
	}

	invalidCount := 0
	for _, alias := range aliases {
		if alias == "" {
			invalidCount++
			continue
		}
		registeredDialects[alias] = dialect
	}

	if invalidCount == len(aliases) {
		return errNoValidTargetAliases
	}

	return nil
}

// Get returns the dialect registered under the given target alias.
func Get(target string) (Dialect, error) {
	dialect, ok := registeredDialects[target]
	if !ok {
		return nil, ErrUnsupportedTarget
	}
	return dialect, nil
}

// Targets returns the registered target aliases, sorted.
func Targets() []string {
	targets := make([]string, 0, len(registeredDialects))
	for alias := range registeredDialects {
		targets = append(targets, alias)
	}
	sort.Strings(targets)
	return targets
}
