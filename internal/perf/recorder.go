package perf

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/lguimbarda/lambda-basics/flow"
	flowsql "github.com/lguimbarda/lambda-basics/flow/sql"
)

const recorderSchema = `CREATE TABLE IF NOT EXISTS measurements (
	run_id           TEXT    NOT NULL,
	position         INTEGER NOT NULL,
	label            TEXT    NOT NULL,
	iterations       INTEGER NOT NULL,
	total_ns         INTEGER NOT NULL,
	per_iteration_ns INTEGER NOT NULL,
	error            TEXT    NOT NULL DEFAULT '',
	recorded_at      TEXT    NOT NULL,
	PRIMARY KEY (run_id, position)
)`

// Recorder stores the measurements of timing runs in sqlite.
type Recorder struct {
	db  *sql.DB
	now func() time.Time
}

// OpenRecorder opens (creating if needed) the sqlite database at path.
func OpenRecorder(ctx context.Context, path string) (*Recorder, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open results db: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, recorderSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create measurements table: %w", err)
	}
	return &Recorder{db: db, now: time.Now}, nil
}

// Close closes the underlying database.
func (r *Recorder) Close() error {
	return r.db.Close()
}

type row struct {
	position int
	m        Measurement
}

// Save stores ms under a new run id and returns it.
func (r *Recorder) Save(ctx context.Context, ms []Measurement) (string, error) {
	runID := uuid.NewString()
	recordedAt := r.now().UTC().Format(time.RFC3339Nano)

	rows := make([]row, len(ms))
	for i, m := range ms {
		rows[i] = row{position: i, m: m}
	}

	insert := flowsql.ExecMany(r.db,
		`INSERT INTO measurements (run_id, position, label, iterations, total_ns, per_iteration_ns, error, recorded_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		func(rw row) []any {
			var errText string
			if rw.m.Err != nil {
				errText = rw.m.Err.Error()
			}
			return []any{runID, rw.position, rw.m.Label, rw.m.Iterations,
				int64(rw.m.Total), int64(rw.m.PerIteration), errText, recordedAt}
		})
	if err := flow.Run(ctx, insert.Apply(ctx, flow.FromSlice(rows))); err != nil {
		return "", fmt.Errorf("save run %s: %w", runID, err)
	}
	return runID, nil
}

// Load returns the measurements of a run in their original order. A failed
// case's error comes back as a plain error carrying the saved text.
func (r *Recorder) Load(ctx context.Context, runID string) ([]Measurement, error) {
	query := flowsql.Query(r.db,
		`SELECT label, iterations, total_ns, per_iteration_ns, error
		 FROM measurements WHERE run_id = ? ORDER BY position`,
		scanMeasurement, runID)

	ms, err := flow.Slice(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("load run %s: %w", runID, err)
	}
	return ms, nil
}

func scanMeasurement(rows *sql.Rows) (Measurement, error) {
	var (
		m          Measurement
		total, per int64
		errText    string
	)
	if err := rows.Scan(&m.Label, &m.Iterations, &total, &per, &errText); err != nil {
		return m, err
	}
	m.Total = time.Duration(total)
	m.PerIteration = time.Duration(per)
	if errText != "" {
		m.Err = errors.New(errText)
	}
	return m, nil
}
