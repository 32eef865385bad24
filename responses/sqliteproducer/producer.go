// Package sqliteproducer streams fragments rendered from the rows of a sqlite query, one row at a
// time.
package sqliteproducer

import (
	"context"
	"io"

	"github.com/pkg/errors"
	"zombiezen.com/go/sqlite"

	"github.com/sargassum-world/turboresponse/responses"
	"github.com/sargassum-world/turboresponse/turbostreams"
)

// RowRenderer renders the statement's current row into a fragment.
type RowRenderer func(s *sqlite.Stmt) (string, error)

// Producer is a [responses.Producer] which steps through the results of a prepared statement,
// rendering each row as it's pulled. The statement's cursor stays open until the producer is
// closed.
type Producer struct {
	stmt   *sqlite.Stmt
	render RowRenderer
	done   bool
}

var _ responses.Producer = (*Producer)(nil)

// New creates a [Producer] for the statement, which should already have its parameters bound.
// The statement is borrowed, not owned: closing the producer resets the statement and clears its
// bindings but doesn't finalize it.
func New(stmt *sqlite.Stmt, render RowRenderer) *Producer {
	return &Producer{
		stmt:   stmt,
		render: render,
	}
}

// Messages creates a [Producer] rendering each row as a Turbo Stream message.
func Messages(
	stmt *sqlite.Stmt, message func(s *sqlite.Stmt) (turbostreams.Message, error),
) *Producer {
	return New(stmt, func(s *sqlite.Stmt) (string, error) {
		m, err := message(s)
		if err != nil {
			return "", err
		}
		return m.Render()
	})
}

func (p *Producer) Next(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if p.done {
		return "", io.EOF
	}
	hasRow, err := p.stmt.Step()
	if err != nil {
		return "", errors.Wrap(err, "couldn't step to the next row")
	}
	if !hasRow {
		p.done = true
		return "", io.EOF
	}
	return p.render(p.stmt)
}

func (p *Producer) Close() error {
	p.done = true
	if err := p.stmt.Reset(); err != nil {
		return errors.Wrap(err, "couldn't reset statement")
	}
	return errors.Wrap(p.stmt.ClearBindings(), "couldn't clear statement bindings")
}

// Bind binds named parameters (such as "$id") of the statement.
func Bind(stmt *sqlite.Stmt, params map[string]interface{}) error {
	for name, value := range params {
		switch v := value.(type) {
		default:
			return errors.Errorf("unsupported type %T for parameter %s", value, name)
		case nil:
			stmt.SetNull(name)
		case string:
			stmt.SetText(name, v)
		case []byte:
			stmt.SetBytes(name, v)
		case bool:
			stmt.SetBool(name, v)
		case int:
			stmt.SetInt64(name, int64(v))
		case int64:
			stmt.SetInt64(name, v)
		case float64:
			stmt.SetFloat(name, v)
		}
	}
	return nil
}
