package points

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/lguimbarda/lambda-basics/flow"
	flowsql "github.com/lguimbarda/lambda-basics/flow/sql"
)

const schema = `CREATE TABLE IF NOT EXISTS points (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	x  INTEGER NOT NULL,
	y  INTEGER NOT NULL
)`

// Store keeps a dataset in a sqlite points table. Insertion order is the
// dataset order.
type Store struct {
	db *sql.DB
}

// OpenStore opens (creating if needed) the sqlite database at path and
// ensures the points table exists.
func OpenStore(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open points db: %w", err)
	}
	// :memory: databases exist per connection.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create points table: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Append inserts pts after the existing rows.
func (s *Store) Append(ctx context.Context, pts []Point) error {
	insert := flowsql.ExecMany(s.db, "INSERT INTO points (x, y) VALUES (?, ?)", func(p Point) []any {
		return []any{p.X, p.Y}
	})
	if err := flow.Run(ctx, insert.Apply(ctx, flow.FromSlice(pts))); err != nil {
		return fmt.Errorf("insert points: %w", err)
	}
	return nil
}

// Load returns the stored points in insertion order.
func (s *Store) Load(ctx context.Context) ([]Point, error) {
	pts, err := flow.Slice(ctx, flowsql.Query(s.db, "SELECT x, y FROM points ORDER BY id", scanPoint))
	if err != nil {
		return nil, fmt.Errorf("load points: %w", err)
	}
	if pts == nil {
		pts = Empty()
	}
	return pts, nil
}

// LoadOrSeed returns the stored points, first writing Sample into an
// empty table.
func (s *Store) LoadOrSeed(ctx context.Context) ([]Point, error) {
	pts, err := s.Load(ctx)
	if err != nil || len(pts) > 0 {
		return pts, err
	}
	if err := s.Append(ctx, Sample()); err != nil {
		return nil, err
	}
	return s.Load(ctx)
}

func scanPoint(rows *sql.Rows) (Point, error) {
	var p Point
	err := rows.Scan(&p.X, &p.Y)
	return p, err
}
