// Package sqlite persists exported engine snapshots in a SQLite file.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation
// that requires no CGO, enabling easy cross-compilation. Snapshots are
// write-once: the engine dumps its state here so operators can inspect
// or diff it later, and nothing is ever read back into the live index.
//
// By default, the database is stored at ~/.scout/data/snapshots.db
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/probe-labs/scout-cli/internal/core/domain"
	"github.com/probe-labs/scout-cli/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.SnapshotStore = (*Store)(nil)

const schema = `
	CREATE TABLE IF NOT EXISTS snapshots (
		id TEXT PRIMARY KEY,
		created_at DATETIME NOT NULL,
		record_count INTEGER NOT NULL,
		body TEXT NOT NULL
	)
`

// Store is a SQLite-backed implementation of driven.SnapshotStore.
// Each snapshot row carries the full JSON dump plus the columns the
// listing needs, so List never deserialises bodies.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a snapshot store at the specified data directory.
// If dataDir is empty, defaults to ~/.scout/data/snapshots.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".scout", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "snapshots.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating snapshots table: %w", err)
	}

	return &Store{db: db, path: dbPath}, nil
}

// Save persists a snapshot. Snapshot IDs are unique per export, so a
// conflicting ID is an input error rather than an upsert.
func (s *Store) Save(ctx context.Context, snapshot *domain.Snapshot) error {
	if snapshot == nil || snapshot.ID == "" {
		return domain.ErrInvalidInput
	}

	body, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("encoding snapshot %s: %w", snapshot.ID, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO snapshots (id, created_at, record_count, body)
		VALUES (?, ?, ?, ?)
	`, snapshot.ID, snapshot.CreatedAt.UTC().Format(time.RFC3339Nano),
		len(snapshot.Records), string(body))
	if err != nil {
		return fmt.Errorf("saving snapshot %s: %w", snapshot.ID, err)
	}
	return nil
}

// Get retrieves a snapshot by ID.
func (s *Store) Get(ctx context.Context, id string) (*domain.Snapshot, error) {
	var body string
	err := s.db.QueryRowContext(ctx,
		`SELECT body FROM snapshots WHERE id = ?`, id).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying snapshot %s: %w", id, err)
	}

	var snapshot domain.Snapshot
	if err := json.Unmarshal([]byte(body), &snapshot); err != nil {
		return nil, fmt.Errorf("decoding snapshot %s: %w", id, err)
	}
	return &snapshot, nil
}

// List returns snapshot summaries, newest first.
func (s *Store) List(ctx context.Context) ([]driven.SnapshotInfo, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, created_at, record_count
		FROM snapshots
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("querying snapshots: %w", err)
	}
	defer rows.Close()

	infos := make([]driven.SnapshotInfo, 0)
	for rows.Next() {
		var info driven.SnapshotInfo
		if err := rows.Scan(&info.ID, &info.CreatedAt, &info.Records); err != nil {
			return nil, fmt.Errorf("scanning snapshot row: %w", err)
		}
		infos = append(infos, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating snapshots: %w", err)
	}
	return infos, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}
