package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// fakeQuerier answers queries by matching a fragment of the SQL text.
type fakeQuerier struct {
	results []fakeResult
	calls   []fakeCall
}

type fakeResult struct {
	contains string
	rows     [][]any
	err      error
}

type fakeCall struct {
	sql  string
	args []any
}

func (f *fakeQuerier) on(contains string, rows ...[]any) *fakeQuerier {
	f.results = append(f.results, fakeResult{contains: contains, rows: rows})
	return f
}

func (f *fakeQuerier) fail(contains string, err error) *fakeQuerier {
	f.results = append(f.results, fakeResult{contains: contains, err: err})
	return f
}

func (f *fakeQuerier) match(sql string, args []any) fakeResult {
	f.calls = append(f.calls, fakeCall{sql: sql, args: args})
	for _, r := range f.results {
		if strings.Contains(sql, r.contains) {
			return r
		}
	}
	return fakeResult{}
}

func (f *fakeQuerier) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	r := f.match(sql, args)
	if r.err != nil {
		return nil, r.err
	}
	return &fakeRows{rows: r.rows, idx: -1}, nil
}

func (f *fakeQuerier) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	r := f.match(sql, args)
	return fakeRow{rows: r.rows, err: r.err}
}

type fakeRow struct {
	rows [][]any
	err  error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if len(r.rows) == 0 {
		return pgx.ErrNoRows
	}
	return assign(r.rows[0], dest)
}

type fakeRows struct {
	rows [][]any
	idx  int
}

func (r *fakeRows) Close()                                       {}
func (r *fakeRows) Err() error                                   { return nil }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Values() ([]any, error)                       { return r.rows[r.idx], nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeRows) Next() bool {
	r.idx++
	return r.idx < len(r.rows)
}

func (r *fakeRows) Scan(dest ...any) error {
	return assign(r.rows[r.idx], dest)
}

func assign(src []any, dest []any) error {
	if len(src) != len(dest) {
		return fmt.Errorf("scan: %d values into %d targets", len(src), len(dest))
	}
	for i, v := range src {
		switch d := dest[i].(type) {
		case *string:
			*d = v.(string)
		case *int:
			*d = v.(int)
		default:
			return fmt.Errorf("scan: unsupported target %T", dest[i])
		}
	}
	return nil
}
