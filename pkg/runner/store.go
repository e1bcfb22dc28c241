package runner

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/evoknap/evoknap/pkg/core"
	"github.com/evoknap/evoknap/pkg/errors"
)

// Store persists trial records to SQLite so batches survive process exits
// and can be analysed later. Scores are stored as a (feasible, value) pair,
// keeping Overloaded distinguishable from every Feasible value.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the results database at path. ":memory:"
// yields an in-memory store.
func NewStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, errors.WithFields(
			errors.Wrap(err, errors.StoreFailed, "opening results database"),
			errors.Fields{"path": path},
		)
	}

	s := &Store{db: db}
	if err := s.init(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) init() error {
	// WAL mode so a reader can inspect results mid-batch.
	if _, err := s.db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		return errors.Wrap(err, errors.StoreFailed, "enabling WAL mode")
	}

	query := `
	CREATE TABLE IF NOT EXISTS trials (
		id TEXT PRIMARY KEY,
		instance TEXT NOT NULL,
		tournament_size INTEGER NOT NULL,
		seed INTEGER NOT NULL,
		best_ever_feasible INTEGER,
		best_ever_value INTEGER,
		final_best_feasible INTEGER,
		final_best_value INTEGER,
		generations INTEGER NOT NULL,
		evaluations INTEGER NOT NULL,
		duration_ms INTEGER NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_trials_instance ON trials(instance);
	`
	if _, err := s.db.Exec(query); err != nil {
		return errors.Wrap(err, errors.StoreFailed, "initialising results schema")
	}
	return nil
}

// SaveTrial inserts one trial record.
func (s *Store) SaveTrial(ctx context.Context, rec TrialResult) error {
	bestFeasible, bestValue := scoreColumns(rec.BestEver)
	finalFeasible, finalValue := scoreColumns(rec.FinalBest)

	_, err := s.db.ExecContext(ctx, `
	INSERT INTO trials (
		id, instance, tournament_size, seed,
		best_ever_feasible, best_ever_value,
		final_best_feasible, final_best_value,
		generations, evaluations, duration_ms
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Instance, rec.TournamentSize, rec.Seed,
		bestFeasible, bestValue,
		finalFeasible, finalValue,
		rec.Generations, rec.Evaluations, rec.Duration.Milliseconds(),
	)
	if err != nil {
		return errors.WithFields(
			errors.Wrap(err, errors.StoreFailed, "saving trial"),
			errors.Fields{"trial": rec.ID},
		)
	}
	return nil
}

// Trials returns the stored records for an instance, oldest first.
func (s *Store) Trials(ctx context.Context, instance string) ([]TrialResult, error) {
	rows, err := s.db.QueryContext(ctx, `
	SELECT id, instance, tournament_size, seed,
		best_ever_feasible, best_ever_value,
		final_best_feasible, final_best_value,
		generations, evaluations, duration_ms
	FROM trials WHERE instance = ? ORDER BY created_at, id`, instance)
	if err != nil {
		return nil, errors.Wrap(err, errors.StoreFailed, "querying trials")
	}
	defer rows.Close()

	var out []TrialResult
	for rows.Next() {
		var rec TrialResult
		var bestFeasible, bestValue, finalFeasible, finalValue sql.NullInt64
		var durationMs int64
		if err := rows.Scan(
			&rec.ID, &rec.Instance, &rec.TournamentSize, &rec.Seed,
			&bestFeasible, &bestValue,
			&finalFeasible, &finalValue,
			&rec.Generations, &rec.Evaluations, &durationMs,
		); err != nil {
			return nil, errors.Wrap(err, errors.StoreFailed, "scanning trial row")
		}
		rec.BestEver = scoreFromColumns(bestFeasible, bestValue)
		rec.FinalBest = scoreFromColumns(finalFeasible, finalValue)
		rec.Duration = time.Duration(durationMs) * time.Millisecond
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, errors.StoreFailed, "iterating trial rows")
	}
	return out, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func scoreColumns(score *core.Score) (feasible, value sql.NullInt64) {
	if score == nil {
		return
	}
	if v, ok := score.Value(); ok {
		return sql.NullInt64{Int64: 1, Valid: true}, sql.NullInt64{Int64: int64(v), Valid: true}
	}
	return sql.NullInt64{Int64: 0, Valid: true}, sql.NullInt64{Valid: false}
}

func scoreFromColumns(feasible, value sql.NullInt64) *core.Score {
	if !feasible.Valid {
		return nil
	}
	var score core.Score
	if feasible.Int64 == 1 {
		score = core.Feasible(uint64(value.Int64))
	} else {
		score = core.Overloaded()
	}
	return &score
}
