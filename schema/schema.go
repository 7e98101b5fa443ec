// Package schema provides table and column identity for the insert mapping
// layer. Tables are type-level tags, columns carry a phantom SQL type, and
// multi-column sets fuse their column types in declaration order.
package schema

import (
	"strings"

	"github.com/go-openapi/inflect"
)

// Table is the type-level tag identifying a database relation. A table type
// carries no state beyond its name; it exists so that a record mapping and a
// column-set can be checked, at compile time, to target the same table.
type Table interface {
	TableName() string
}

// Label normalizes an entity label to its database form (snake_case).
func Label(name string) string {
	return inflect.Underscore(name)
}

// TableOf derives the conventional table name for an entity label,
// e.g. "UserProfile" becomes "user_profiles".
func TableOf(name string) string {
	words := strings.Split(inflect.Underscore(name), "_")
	words[len(words)-1] = inflect.Pluralize(words[len(words)-1])
	return strings.Join(words, "_")
}
