package task

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// Store provides access to the task database at a single SQLite file.
// Every public operation runs in its own exclusive critical section and
// commits before returning.
type Store struct {
	mu          sync.Mutex
	db          *sql.DB
	path        string
	prompter    Prompter
	invalidator Invalidator
}

// Invalidator is notified after every successful mutation.
type Invalidator interface {
	Invalidate()
}

// Prompter is used to ask the user for confirmation.
type Prompter interface {
	// Confirm asks the user a yes/no question and returns true if they say yes.
	Confirm(message string) (bool, error)
}

// StdioPrompter implements Prompter using stdin/stdout.
type StdioPrompter struct{}

// Confirm asks the user a yes/no question via stdin/stdout.
func (p StdioPrompter) Confirm(message string) (bool, error) {
	fmt.Printf("%s [y/n]: ", message)
	var response string
	_, err := fmt.Scanln(&response)
	if err != nil {
		return false, err
	}
	return response == "y" || response == "Y" || response == "yes" || response == "Yes", nil
}

// OpenOptions configures how the store is opened.
type OpenOptions struct {
	// Prompter is used for user confirmation. If nil, StdioPrompter is used.
	Prompter Prompter
}

var schemaStatements = []string{
	`PRAGMA foreign_keys = ON;`,
	`CREATE TABLE IF NOT EXISTS tasks (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		description TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'ACTIVE',
		parent_id INTEGER NULL REFERENCES tasks(id),
		started_at TEXT NOT NULL,
		finished_at TEXT NULL
	);`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_parent_id ON tasks(parent_id);`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_status ON tasks(status);`,
}

// Open opens the task database at path, creating the file and its parent
// directories as needed.
func Open(path string, opts OpenOptions) (*Store, error) {
	if opts.Prompter == nil {
		opts.Prompter = StdioPrompter{}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	db.SetMaxOpenConns(1)

	store := &Store{
		db:       db,
		path:     path,
		prompter: opts.Prompter,
	}
	if err := store.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the location of the database file.
func (s *Store) Path() string {
	return s.path
}

// SetInvalidator registers a collaborator to notify after each mutation.
func (s *Store) SetInvalidator(invalidator Invalidator) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.invalidator = invalidator
}

func (s *Store) migrate() error {
	for _, statement := range schemaStatements {
		if _, err := s.db.Exec(statement); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}

// notifyMutation must be called with s.mu held, after a successful commit.
func (s *Store) notifyMutation() {
	if s.invalidator != nil {
		s.invalidator.Invalidate()
	}
}

const taskColumns = "id, description, status, parent_id, started_at, finished_at"

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(scanner rowScanner) (Task, error) {
	var t Task
	var parentID sql.NullInt64
	var startedAt string
	var finishedAt sql.NullString

	err := scanner.Scan(
		&t.ID,
		&t.Description,
		&t.Status,
		&parentID,
		&startedAt,
		&finishedAt,
	)
	if err != nil {
		return Task{}, err
	}

	if parentID.Valid {
		t.ParentID = &parentID.Int64
	}
	started, err := parseTimestamp(startedAt)
	if err != nil {
		return Task{}, err
	}
	t.StartedAt = started
	if finishedAt.Valid {
		finished, err := parseTimestamp(finishedAt.String)
		if err != nil {
			return Task{}, err
		}
		t.FinishedAt = &finished
	}
	return t, nil
}

func getTaskTx(tx *sql.Tx, id int64) (Task, error) {
	row := tx.QueryRow(`SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id)
	t, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Task{}, fmt.Errorf("%w: %d", ErrTaskNotFound, id)
	}
	if err != nil {
		return Task{}, err
	}
	return t, nil
}

func nowTimestamp() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

func parseTimestamp(value string) (time.Time, error) {
	parsed, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", value, err)
	}
	return parsed, nil
}
