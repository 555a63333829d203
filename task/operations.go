package task

import (
	"database/sql"
	"errors"
	"fmt"
)

// CreateOptions configures a new task.
type CreateOptions struct {
	// ParentID is the parent task ID. The parent must exist and be ACTIVE
	// at creation time. Nil creates a root task.
	ParentID *int64
}

// Create adds a new ACTIVE task with the given description.
func (s *Store) Create(description string, opts CreateOptions) (*Task, error) {
	description, err := normalizeDescriptionInput(description)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if opts.ParentID != nil {
		var parentStatus Status
		err := tx.QueryRow(`SELECT status FROM tasks WHERE id = ?`, *opts.ParentID).Scan(&parentStatus)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %d", ErrParentNotFound, *opts.ParentID)
		}
		if err != nil {
			return nil, err
		}
		if parentStatus != StatusActive {
			return nil, fmt.Errorf("%w: %d is %s", ErrParentNotActive, *opts.ParentID, parentStatus)
		}
	}

	result, err := tx.Exec(
		`INSERT INTO tasks(description, status, parent_id, started_at, finished_at)
		 VALUES(?, ?, ?, ?, NULL)`,
		description,
		StatusActive,
		opts.ParentID,
		nowTimestamp(),
	)
	if err != nil {
		return nil, fmt.Errorf("insert task: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	created, err := getTaskTx(tx, id)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	s.notifyMutation()
	return &created, nil
}

// UpdateStatus sets the status of the task with the given ID. Moving a
// task out of ACTIVE stamps FinishedAt; moving it back to ACTIVE clears
// it. The task's children are never modified. Returns the updated task.
func (s *Store) UpdateStatus(id int64, status Status) (*Task, error) {
	normalized, err := normalizeStatusInput(status)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	var finishedAt any
	if normalized.IsFinished() {
		finishedAt = nowTimestamp()
	}

	result, err := tx.Exec(
		`UPDATE tasks SET status = ?, finished_at = ? WHERE id = ?`,
		normalized,
		finishedAt,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return nil, fmt.Errorf("%w: %d", ErrTaskNotFound, id)
	}

	updated, err := getTaskTx(tx, id)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	s.notifyMutation()
	return &updated, nil
}

// Complete marks a task COMPLETED.
func (s *Store) Complete(id int64) (*Task, error) {
	return s.UpdateStatus(id, StatusCompleted)
}

// Abandon marks a task ABANDONED.
func (s *Store) Abandon(id int64) (*Task, error) {
	return s.UpdateStatus(id, StatusAbandoned)
}

// Clear marks a task CLEAR, hiding it from day-to-day listings.
func (s *Store) Clear(id int64) (*Task, error) {
	return s.UpdateStatus(id, StatusClear)
}

// Reactivate returns a task to ACTIVE.
func (s *Store) Reactivate(id int64) (*Task, error) {
	return s.UpdateStatus(id, StatusActive)
}

// Get returns the task with the given ID.
func (s *Store) Get(id int64) (*Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row := s.db.QueryRow(`SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id)
	t, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %d", ErrTaskNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// All returns every task in depth-first order: each task directly after
// its parent, siblings ordered by ascending ID.
func (s *Store) All() ([]Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks, err := s.readAll()
	if err != nil {
		return nil, err
	}
	return orderForest(tasks), nil
}

func (s *Store) readAll() ([]Task, error) {
	rows, err := s.db.Query(`SELECT ` + taskColumns + ` FROM tasks ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("read tasks: %w", err)
	}
	defer rows.Close()

	tasks := make([]Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// Count returns the total number of tasks.
func (s *Store) Count() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM tasks`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count tasks: %w", err)
	}
	return count, nil
}

// Counts returns the number of tasks per status. Statuses with no tasks
// are absent from the result.
func (s *Store) Counts() (map[Status]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query(`SELECT status, COUNT(*) FROM tasks GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("count tasks: %w", err)
	}
	defer rows.Close()

	counts := make(map[Status]int)
	for rows.Next() {
		var status Status
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}
	return counts, rows.Err()
}
