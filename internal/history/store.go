// Package history persists executed commands and their outcomes in SQLite.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/relay-tools/slashcmd/internal/domain"
	"github.com/relay-tools/slashcmd/internal/history/migrations"
	"github.com/relay-tools/slashcmd/internal/paths"
)

// Store wraps a SQLite database connection for command history.
// It implements the domain.HistoryStore interface.
type Store struct {
	db   *sql.DB
	path string
}

// DBPath returns the default location of the history database.
func DBPath() string {
	return filepath.Join(paths.AppDataDir(), "history.db")
}

// New creates a new Store with the given database path.
// Runs migrations automatically.
func New(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	setDBPermissions(path)

	if err = migrations.Run(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// NewWithDB creates a Store from an existing database connection.
// Useful for testing with pre-configured databases.
func NewWithDB(db *sql.DB) *Store {
	return &Store{db: db}
}

// DB returns the underlying database connection.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// setDBPermissions sets restrictive file permissions on the database and its
// WAL/SHM files.
func setDBPermissions(path string) {
	if path == ":memory:" {
		return
	}
	_ = os.Chmod(path, 0600)
	_ = os.Chmod(path+"-wal", 0600)
	_ = os.Chmod(path+"-shm", 0600)
}

// Insert adds a history entry. A missing ID or timestamp is filled in.
func (s *Store) Insert(entry domain.HistoryEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.Exec(
		`INSERT INTO command_history
		 (id, command, call_path, response, succeeded, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		entry.ID,
		entry.Command,
		entry.CallPath,
		entry.Response,
		boolToInt(entry.Succeeded),
		entry.CreatedAt.Format(time.RFC3339Nano),
	)
	return err
}

// List returns entries matching the given filter, newest first.
func (s *Store) List(filter domain.HistoryFilter) ([]domain.HistoryEntry, error) {
	query := `
		SELECT id, command, call_path, response, succeeded, created_at
		FROM command_history
	`

	var (
		clauses []string
		args    []any
	)

	if filter.OnlyFailed {
		clauses = append(clauses, "succeeded = 0")
	}

	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}

	query += " ORDER BY created_at DESC"

	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.HistoryEntry

	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}

	return out, rows.Err()
}

func scanEntry(rows *sql.Rows) (domain.HistoryEntry, error) {
	var (
		e         domain.HistoryEntry
		succeeded int
		ts        string
	)

	if err := rows.Scan(&e.ID, &e.Command, &e.CallPath, &e.Response, &succeeded, &ts); err != nil {
		return domain.HistoryEntry{}, err
	}

	t, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		return domain.HistoryEntry{}, err
	}

	e.Succeeded = succeeded != 0
	e.CreatedAt = t

	return e, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Verify Store implements domain.HistoryStore
var _ domain.HistoryStore = (*Store)(nil)
