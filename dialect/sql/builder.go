package sql

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/quillsql/quill/dialect"
)

// ErrArgLimit is returned when a statement accumulates more bound arguments
// than the dialect's placeholder limit allows.
var ErrArgLimit = errors.New("dialect/sql: argument limit exceeded")

// maxArgs is the placeholder cap shared by the mysql and postgres wire
// protocols (16-bit parameter count).
const maxArgs = 1 << 16 - 1

// validIdentifierRe validates SQL identifiers (alphanumeric, underscores, dots for schema.name)
var validIdentifierRe = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_.]*$`)

// isValidIdentifier checks if the string is a valid SQL identifier.
func isValidIdentifier(s string) bool {
	return s != "" && len(s) <= 128 && validIdentifierRe.MatchString(s)
}

// Builder is the low-level SQL string accumulator. It collects the statement
// text, the bound arguments, and any error raised while rendering. Rendering
// errors are sticky: once recorded, Query and Err surface them.
type Builder struct {
	sb      strings.Builder
	dialect string
	args    []any
	err     error
}

// Dialect returns a new Builder for the given dialect.
func Dialect(name string) *Builder {
	return &Builder{dialect: name}
}

// Dialect returns the dialect of the builder.
func (b *Builder) Dialect() string {
	return b.dialect
}

// WriteString appends raw SQL text.
func (b *Builder) WriteString(s string) *Builder {
	b.sb.WriteString(s)
	return b
}

// WriteByte appends a single byte of SQL text.
func (b *Builder) WriteByte(c byte) *Builder {
	b.sb.WriteByte(c)
	return b
}

// Ident appends a quoted SQL identifier. Invalid identifiers record an error
// on the builder instead of emitting unquotable text.
func (b *Builder) Ident(s string) *Builder {
	if !isValidIdentifier(s) {
		b.AddError(fmt.Errorf("dialect/sql: invalid identifier %q", s))
		return b
	}
	quote := "`"
	if b.dialect == dialect.Postgres {
		quote = `"`
	}
	b.sb.WriteString(quote)
	b.sb.WriteString(s)
	b.sb.WriteString(quote)
	return b
}

// Comma appends a comma-space separator.
func (b *Builder) Comma() *Builder {
	return b.WriteString(", ")
}

// Pad appends a single space.
func (b *Builder) Pad() *Builder {
	return b.WriteByte(' ')
}

// Wrap writes the output of f parenthesized.
func (b *Builder) Wrap(f func(*Builder)) *Builder {
	b.WriteByte('(')
	f(b)
	return b.WriteByte(')')
}

// Arg appends an argument placeholder for v and collects v for binding.
// Postgres placeholders are numbered; other dialects use "?". Exceeding the
// dialect's placeholder limit fails with ErrArgLimit.
func (b *Builder) Arg(v any) error {
	if len(b.args) >= maxArgs {
		err := fmt.Errorf("%w: %d arguments", ErrArgLimit, len(b.args)+1)
		b.AddError(err)
		return err
	}
	b.args = append(b.args, v)
	if b.dialect == dialect.Postgres {
		b.sb.WriteByte('$')
		b.sb.WriteString(strconv.Itoa(len(b.args)))
	} else {
		b.sb.WriteByte('?')
	}
	return nil
}

// Args appends a placeholder for each of the given arguments.
func (b *Builder) Args(vs ...any) error {
	for i, v := range vs {
		if i > 0 {
			b.Comma()
		}
		if err := b.Arg(v); err != nil {
			return err
		}
	}
	return nil
}

// TotalArgs returns the number of arguments bound so far.
func (b *Builder) TotalArgs() int {
	return len(b.args)
}

// AddError records a rendering error on the builder.
func (b *Builder) AddError(err error) *Builder {
	if b.err == nil {
		b.err = err
	}
	return b
}

// Err returns the first error recorded while rendering, if any.
func (b *Builder) Err() error {
	return b.err
}

// String returns the accumulated SQL text.
func (b *Builder) String() string {
	return b.sb.String()
}

// Query returns the accumulated SQL text and its bound arguments.
func (b *Builder) Query() (string, []any) {
	return b.sb.String(), b.args
}
