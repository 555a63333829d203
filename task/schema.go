package task

import "fmt"

// ColumnSchema describes one column of a database table.
type ColumnSchema struct {
	Name       string `json:"name"`
	Type       string `json:"type"`
	NotNull    bool   `json:"not_null"`
	PrimaryKey bool   `json:"primary_key"`
}

// TableSchema describes one table in the database.
type TableSchema struct {
	Name    string         `json:"name"`
	SQL     string         `json:"sql"`
	Columns []ColumnSchema `json:"columns"`
}

// Schema reports the database schema for inspection.
func (s *Store) Schema() ([]TableSchema, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tables, err := s.readTables()
	if err != nil {
		return nil, err
	}

	for i := range tables {
		columns, err := s.readColumns(tables[i].Name)
		if err != nil {
			return nil, err
		}
		tables[i].Columns = columns
	}

	return tables, nil
}

func (s *Store) readTables() ([]TableSchema, error) {
	rows, err := s.db.Query(
		`SELECT name, sql FROM sqlite_master
		 WHERE type = 'table' AND name NOT LIKE 'sqlite_%'
		 ORDER BY name ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("read schema: %w", err)
	}
	defer rows.Close()

	tables := make([]TableSchema, 0)
	for rows.Next() {
		var table TableSchema
		if err := rows.Scan(&table.Name, &table.SQL); err != nil {
			return nil, err
		}
		tables = append(tables, table)
	}
	return tables, rows.Err()
}

func (s *Store) readColumns(table string) ([]ColumnSchema, error) {
	// Identifiers cannot be bound as parameters; table names come from
	// sqlite_master, not user input.
	rows, err := s.db.Query(fmt.Sprintf(`PRAGMA table_info(%q)`, table))
	if err != nil {
		return nil, fmt.Errorf("read columns for %s: %w", table, err)
	}
	defer rows.Close()

	columns := make([]ColumnSchema, 0)
	for rows.Next() {
		var (
			cid          int
			name         string
			columnType   string
			notNull      int
			defaultValue any
			primaryKey   int
		)
		if err := rows.Scan(&cid, &name, &columnType, &notNull, &defaultValue, &primaryKey); err != nil {
			return nil, err
		}
		columns = append(columns, ColumnSchema{
			Name:       name,
			Type:       columnType,
			NotNull:    notNull != 0,
			PrimaryKey: primaryKey > 0,
		})
	}
	return columns, rows.Err()
}

// ResetOptions configures Reset.
type ResetOptions struct {
	// Force skips the confirmation prompt.
	Force bool
}

// Reset deletes every task and recreates an empty schema. Unless Force
// is set, the configured Prompter must confirm first. Returns true when
// the reset ran. Task IDs restart from 1 after a reset.
func (s *Store) Reset(opts ResetOptions) (bool, error) {
	if !opts.Force {
		confirmed, err := s.prompter.Confirm("Delete all tasks? This cannot be undone.")
		if err != nil {
			return false, fmt.Errorf("prompt: %w", err)
		}
		if !confirmed {
			return false, nil
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec(`DROP TABLE IF EXISTS tasks`); err != nil {
		return false, fmt.Errorf("drop tasks: %w", err)
	}
	if err := s.migrate(); err != nil {
		return false, err
	}

	s.notifyMutation()
	return true, nil
}
