// Package save persists runs, the progression ledger, and the run history in
// a SQLite database.
package save

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/lixenwraith/penumbra/progression"
)

// ErrNoSave is returned when the requested slot holds no run.
var ErrNoSave = errors.New("no saved run in slot")

// Store wraps the SQLite database holding all persistent state.
type Store struct {
	db      *sql.DB
	entropy *rand.Rand
}

// Open opens or creates the database at path and applies the schema.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(wal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &Store{
		db:      db,
		entropy: rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

func (s *Store) newID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), s.entropy).String()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS saves (
		slot       INTEGER PRIMARY KEY,
		snapshot   TEXT NOT NULL,
		class      TEXT NOT NULL,
		saved_at   TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS runs (
		id             TEXT PRIMARY KEY,
		finished_at    TEXT NOT NULL,
		class          TEXT NOT NULL,
		victory        INTEGER NOT NULL,
		turns          INTEGER NOT NULL,
		enemies_killed INTEGER NOT NULL,
		rooms_cleared  INTEGER NOT NULL,
		level          INTEGER NOT NULL,
		death_cause    TEXT,
		seed           TEXT NOT NULL,
		essence        INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_runs_finished ON runs(finished_at DESC);

	CREATE TABLE IF NOT EXISTS ledger (
		id      INTEGER PRIMARY KEY CHECK (id = 1),
		data    TEXT NOT NULL
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// SaveRun writes a snapshot into slot, replacing any previous save there.
func (s *Store) SaveRun(ctx context.Context, slot int, class string, snapshot []byte) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO saves (slot, snapshot, class, saved_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(slot) DO UPDATE SET snapshot = excluded.snapshot,
		 class = excluded.class, saved_at = excluded.saved_at`,
		slot, string(snapshot), class, now)
	if err != nil {
		return fmt.Errorf("save run: %w", err)
	}
	return nil
}

// LoadRun reads the snapshot stored in slot.
func (s *Store) LoadRun(ctx context.Context, slot int) ([]byte, error) {
	var snapshot string
	err := s.db.QueryRowContext(ctx,
		`SELECT snapshot FROM saves WHERE slot = ?`, slot).Scan(&snapshot)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("slot %d: %w", slot, ErrNoSave)
	}
	if err != nil {
		return nil, fmt.Errorf("load run: %w", err)
	}
	return []byte(snapshot), nil
}

// DeleteRun clears slot, typically after the run ends.
func (s *Store) DeleteRun(ctx context.Context, slot int) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM saves WHERE slot = ?`, slot)
	return err
}

// RecordRun appends a finished run to the history and returns its id.
func (s *Store) RecordRun(ctx context.Context, rec progression.Record) (string, error) {
	id := rec.ID
	if id == "" {
		id = s.newID()
	}
	finished := rec.FinishedAt
	if finished.IsZero() {
		finished = time.Now().UTC()
	}

	var deathCause *string
	if rec.DeathCause != "" {
		deathCause = &rec.DeathCause
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, finished_at, class, victory, turns, enemies_killed,
		                   rooms_cleared, level, death_cause, seed, essence)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, finished.Format(time.RFC3339), rec.Class, boolInt(rec.Victory),
		rec.Turns, rec.EnemiesKilled, rec.RoomsCleared, rec.Level,
		deathCause, fmt.Sprintf("%d", rec.Seed), rec.Essence)
	if err != nil {
		return "", fmt.Errorf("record run: %w", err)
	}
	return id, nil
}

// Runs lists the most recent finished runs, newest first.
func (s *Store) Runs(ctx context.Context, limit int) ([]progression.Record, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, finished_at, class, victory, turns, enemies_killed,
		        rooms_cleared, level, death_cause, seed, essence
		 FROM runs ORDER BY finished_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []progression.Record
	for rows.Next() {
		var rec progression.Record
		var finished, seed string
		var victory int
		var deathCause sql.NullString
		if err := rows.Scan(&rec.ID, &finished, &rec.Class, &victory, &rec.Turns,
			&rec.EnemiesKilled, &rec.RoomsCleared, &rec.Level, &deathCause,
			&seed, &rec.Essence); err != nil {
			return nil, err
		}
		rec.FinishedAt, _ = time.Parse(time.RFC3339, finished)
		rec.Victory = victory != 0
		if deathCause.Valid {
			rec.DeathCause = deathCause.String
		}
		rec.Seed, err = strconv.ParseUint(seed, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("run %s: bad seed %q: %w", rec.ID, seed, err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// SaveLedger writes the progression ledger as the database singleton.
func (s *Store) SaveLedger(ctx context.Context, p *progression.Progression) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal ledger: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO ledger (id, data) VALUES (1, ?)
		 ON CONFLICT(id) DO UPDATE SET data = excluded.data`, string(data))
	if err != nil {
		return fmt.Errorf("save ledger: %w", err)
	}
	return nil
}

// LoadLedger reads the progression ledger, returning a fresh one when the
// database has none yet.
func (s *Store) LoadLedger(ctx context.Context) (*progression.Progression, error) {
	var data string
	err := s.db.QueryRowContext(ctx, `SELECT data FROM ledger WHERE id = 1`).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return progression.New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load ledger: %w", err)
	}

	p := progression.New()
	if err := json.Unmarshal([]byte(data), p); err != nil {
		return nil, fmt.Errorf("decode ledger: %w", err)
	}
	if p.Upgrades == nil {
		p.Upgrades = make(map[progression.UpgradeKind]int)
	}
	return p, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
