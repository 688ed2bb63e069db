// Package sql provides stream adapters for database/sql: queries become
// sources and statements become per-item transformers.
package sql

import (
	"context"
	"database/sql"

	"github.com/lguimbarda/lambda-basics/flow/core"
)

// Scanner is a function that scans the current row into a value.
type Scanner[T any] func(*sql.Rows) (T, error)

// Query creates a Stream that executes query on every emission and emits
// one value per row. Query and scan failures become error results.
func Query[T any](db *sql.DB, query string, scanner Scanner[T], args ...any) core.Stream[T] {
	return core.Emit(func(ctx context.Context) <-chan core.Result[T] {
		out := make(chan core.Result[T], core.DefaultBufferSize)
		go func() {
			defer close(out)
			send := func(res core.Result[T]) bool {
				select {
				case <-ctx.Done():
					return false
				case out <- res:
					return true
				}
			}

			rows, err := db.QueryContext(ctx, query, args...)
			if err != nil {
				send(core.Err[T](err))
				return
			}
			defer rows.Close()

			for rows.Next() {
				value, err := scanner(rows)
				res := core.Ok(value)
				if err != nil {
					res = core.Err[T](err)
				}
				if !send(res) {
					return
				}
			}
			if err := rows.Err(); err != nil {
				send(core.Err[T](err))
			}
		}()
		return out
	})
}

// ExecResult contains the result of an exec operation.
type ExecResult struct {
	LastInsertId int64
	RowsAffected int64
}

// Exec creates a Stream that executes a statement and emits its result.
func Exec(db *sql.DB, query string, args ...any) core.Stream[ExecResult] {
	return core.Emit(func(ctx context.Context) <-chan core.Result[ExecResult] {
		out := make(chan core.Result[ExecResult], 1)
		out <- exec(ctx, db, query, args)
		close(out)
		return out
	})
}

// ExecMany creates a Transformer that executes a statement for each input value.
// The binder function converts the input value to query arguments.
func ExecMany[T any](db *sql.DB, query string, binder func(T) []any) core.Transformer[T, ExecResult] {
	return core.Transmit(func(ctx context.Context, in <-chan core.Result[T]) <-chan core.Result[ExecResult] {
		out := make(chan core.Result[ExecResult], core.DefaultBufferSize)
		go func() {
			defer close(out)
			for res := range in {
				var next core.Result[ExecResult]
				switch {
				case res.IsError():
					next = core.Err[ExecResult](res.Error())
				case res.IsSentinel():
					next = core.Sentinel[ExecResult](res.Sentinel())
				default:
					next = exec(ctx, db, query, binder(res.Value()))
				}
				select {
				case <-ctx.Done():
					return
				case out <- next:
				}
			}
		}()
		return out
	})
}

func exec(ctx context.Context, db *sql.DB, query string, args []any) core.Result[ExecResult] {
	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return core.Err[ExecResult](err)
	}
	lastID, _ := result.LastInsertId()
	rowsAffected, _ := result.RowsAffected()
	return core.Ok(ExecResult{LastInsertId: lastID, RowsAffected: rowsAffected})
}
