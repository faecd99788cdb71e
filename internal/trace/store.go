package trace

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/arraykit/arraykit/internal/override"
	"github.com/arraykit/arraykit/internal/typesystem"
)

const schema = `
CREATE TABLE IF NOT EXISTS traces (
	id           TEXT PRIMARY KEY,
	op           TEXT NOT NULL,
	method       TEXT NOT NULL,
	started_at   INTEGER NOT NULL,
	has_override INTEGER NOT NULL,
	result       TEXT NOT NULL DEFAULT '',
	err          TEXT NOT NULL DEFAULT '',
	candidates   TEXT NOT NULL DEFAULT '[]'
);
CREATE TABLE IF NOT EXISTS rounds (
	trace_id TEXT NOT NULL REFERENCES traces(id) ON DELETE CASCADE,
	seq      INTEGER NOT NULL,
	pos      INTEGER NOT NULL,
	type_id  TEXT NOT NULL,
	outcome  INTEGER NOT NULL,
	result   TEXT NOT NULL DEFAULT '',
	err      TEXT NOT NULL DEFAULT '',
	PRIMARY KEY (trace_id, seq)
);
`

// Store provides SQLite-backed persistence for resolution traces.
type Store struct {
	sqlDB *sql.DB
}

// OpenStore opens (and if needed initializes) a trace store at path.
func OpenStore(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("trace store path is required")
	}

	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open trace store: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping trace store: %w", err)
	}
	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("init trace store schema: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Save persists one trace and its rounds.
func (s *Store) Save(tr *Trace) error {
	candidates, err := json.Marshal(tr.Candidates)
	if err != nil {
		return fmt.Errorf("marshal candidates: %w", err)
	}

	tx, err := s.sqlDB.Begin()
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.Exec(
		`INSERT INTO traces (id, op, method, started_at, has_override, result, err, candidates)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		tr.ID.String(), tr.Op, tr.Method, tr.StartedAt.UnixMilli(),
		boolToInt(tr.HasOverride), tr.Result, tr.Err, string(candidates),
	)
	if err != nil {
		return fmt.Errorf("insert trace: %w", err)
	}
	for seq, round := range tr.Rounds {
		_, err = tx.Exec(
			`INSERT INTO rounds (trace_id, seq, pos, type_id, outcome, result, err)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			tr.ID.String(), seq, round.Pos, string(round.TypeID), int(round.Outcome), round.Result, round.Err,
		)
		if err != nil {
			return fmt.Errorf("insert round %d: %w", seq, err)
		}
	}
	return tx.Commit()
}

// Recent returns up to n traces, most recent first.
func (s *Store) Recent(n int) ([]*Trace, error) {
	rows, err := s.sqlDB.Query(
		`SELECT id, op, method, started_at, has_override, result, err, candidates
		 FROM traces ORDER BY started_at DESC, id LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("query traces: %w", err)
	}
	defer rows.Close()

	var traces []*Trace
	for rows.Next() {
		tr, err := scanTraceRow(rows)
		if err != nil {
			return nil, err
		}
		traces = append(traces, tr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate traces: %w", err)
	}

	for _, tr := range traces {
		if err := s.loadRounds(tr); err != nil {
			return nil, err
		}
	}
	return traces, nil
}

func scanTraceRow(rows *sql.Rows) (*Trace, error) {
	var (
		id          string
		startedAt   int64
		hasOverride int
		candidates  string
		tr          Trace
	)
	if err := rows.Scan(&id, &tr.Op, &tr.Method, &startedAt, &hasOverride, &tr.Result, &tr.Err, &candidates); err != nil {
		return nil, fmt.Errorf("scan trace: %w", err)
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("parse trace id %q: %w", id, err)
	}
	tr.ID = parsed
	tr.StartedAt = time.UnixMilli(startedAt).UTC()
	tr.HasOverride = hasOverride != 0
	if err := json.Unmarshal([]byte(candidates), &tr.Candidates); err != nil {
		return nil, fmt.Errorf("unmarshal candidates: %w", err)
	}
	return &tr, nil
}

func (s *Store) loadRounds(tr *Trace) error {
	rows, err := s.sqlDB.Query(
		`SELECT pos, type_id, outcome, result, err FROM rounds
		 WHERE trace_id = ? ORDER BY seq`, tr.ID.String())
	if err != nil {
		return fmt.Errorf("query rounds: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			round   Round
			typeID  string
			outcome int
		)
		if err := rows.Scan(&round.Pos, &typeID, &outcome, &round.Result, &round.Err); err != nil {
			return fmt.Errorf("scan round: %w", err)
		}
		round.TypeID = typesystem.TypeID(typeID)
		round.Outcome = override.OutcomeKind(outcome)
		tr.Rounds = append(tr.Rounds, round)
	}
	return rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
