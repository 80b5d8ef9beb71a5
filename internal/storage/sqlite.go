package storage

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"roomba/internal/core"
	"roomba/internal/monitoring"
	"roomba/internal/sims/roomba"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

type SQLiteStore struct {
	path string

	mu sync.RWMutex
	db *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

func (s *SQLiteStore) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.path == "" {
		return errors.New("sqlite path is required")
	}
	if s.db != nil {
		return nil
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return err
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return err
	}
	if err := migrateUp(db); err != nil {
		_ = db.Close()
		return err
	}

	s.db = db
	return nil
}

// migrateUp applies the embedded migrations. The migrate instance is not
// closed because that would close db.
func migrateUp(db *sql.DB) error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("load migrations: %w", err)
	}
	driver, err := sqlite.WithInstance(db, &sqlite.Config{})
	if err != nil {
		return fmt.Errorf("failed to create sqlite driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	m.Log = migrateLogger{}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration up failed: %w", err)
	}
	return nil
}

type migrateLogger struct{}

func (migrateLogger) Printf(format string, v ...any) {
	monitoring.Logger().Debugf("[migrate] "+format, v...)
}

func (migrateLogger) Verbose() bool { return false }

type moveRecord struct {
	ID    int `json:"id"`
	Moves int `json:"moves"`
}

func encodeMoves(moves []roomba.CleanerMoves) (string, error) {
	records := make([]moveRecord, len(moves))
	for i, m := range moves {
		records[i] = moveRecord{ID: int(m.ID), Moves: m.Moves}
	}
	raw, err := json.Marshal(records)
	return string(raw), err
}

func decodeMoves(raw string) ([]roomba.CleanerMoves, error) {
	var records []moveRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, err
	}
	moves := make([]roomba.CleanerMoves, len(records))
	for i, r := range records {
		moves[i] = roomba.CleanerMoves{ID: core.AgentID(r.ID), Moves: r.Moves}
	}
	return moves, nil
}

func (s *SQLiteStore) SaveRun(ctx context.Context, run roomba.Summary) error {
	db, err := s.getDB()
	if err != nil {
		return err
	}

	moves, err := encodeMoves(run.Moves)
	if err != nil {
		return fmt.Errorf("encode moves: %w", err)
	}

	res, err := db.ExecContext(ctx, `
		INSERT INTO runs (run_id, seed, cleaners, width, height, dirty_percent,
			time_limit_ns, reason, ticks, elapsed_ns, final_clean, moves)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(run_id) DO NOTHING
	`, run.RunID.String(), run.Seed, run.Cleaners, run.Width, run.Height, run.DirtyPercent,
		int64(run.TimeLimit), int(run.Reason), run.Ticks, int64(run.Elapsed), run.FinalClean, moves)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrDuplicateRun
	}
	return nil
}

const selectRuns = `
	SELECT run_id, seed, cleaners, width, height, dirty_percent,
		time_limit_ns, reason, ticks, elapsed_ns, final_clean, moves
	FROM runs`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (roomba.Summary, error) {
	var (
		run       roomba.Summary
		id        string
		limit     int64
		reason    int
		elapsed   int64
		movesJSON string
	)
	if err := row.Scan(&id, &run.Seed, &run.Cleaners, &run.Width, &run.Height, &run.DirtyPercent,
		&limit, &reason, &run.Ticks, &elapsed, &run.FinalClean, &movesJSON); err != nil {
		return roomba.Summary{}, err
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return roomba.Summary{}, fmt.Errorf("decode run id %q: %w", id, err)
	}
	moves, err := decodeMoves(movesJSON)
	if err != nil {
		return roomba.Summary{}, fmt.Errorf("decode moves of %s: %w", id, err)
	}
	run.RunID = parsed
	run.TimeLimit = time.Duration(limit)
	run.Reason = roomba.StopReason(reason)
	run.Elapsed = time.Duration(elapsed)
	run.Moves = moves
	return run, nil
}

func (s *SQLiteStore) GetRun(ctx context.Context, id uuid.UUID) (roomba.Summary, bool, error) {
	db, err := s.getDB()
	if err != nil {
		return roomba.Summary{}, false, err
	}

	run, err := scanRun(db.QueryRowContext(ctx, selectRuns+` WHERE run_id = ?`, id.String()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return roomba.Summary{}, false, nil
		}
		return roomba.Summary{}, false, err
	}
	return run, true, nil
}

func (s *SQLiteStore) ListRuns(ctx context.Context) ([]roomba.Summary, error) {
	db, err := s.getDB()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, selectRuns+` ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []roomba.Summary
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *SQLiteStore) getDB() (*sql.DB, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return nil, errors.New("store is not initialized")
	}
	return s.db, nil
}
