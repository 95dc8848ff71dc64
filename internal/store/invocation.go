package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Invocation is one recorded command invocation. Flag values are never
// stored, only the flag names that were provided.
type Invocation struct {
	ID         string
	Command    string
	Flags      []string
	ExitCode   int
	DurationMS int64
	StartedAt  time.Time
}

// Filter narrows List results. Zero values mean no constraint.
type Filter struct {
	Command string
	Limit   int
}

// Insert adds an invocation record. An empty ID gets a fresh UUID.
func (s *Store) Insert(inv Invocation) error {
	if inv.ID == "" {
		inv.ID = uuid.NewString()
	}

	_, err := s.db.Exec(
		`INSERT INTO invocations (id, command, flags, exit_code, duration_ms, started_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		inv.ID,
		inv.Command,
		strings.Join(inv.Flags, " "),
		inv.ExitCode,
		inv.DurationMS,
		inv.StartedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert invocation: %w", err)
	}
	return nil
}

// List returns invocations matching the filter, most recent first.
func (s *Store) List(filter Filter) ([]Invocation, error) {
	query := `SELECT id, command, flags, exit_code, duration_ms, started_at
		FROM invocations`
	var args []any

	if filter.Command != "" {
		query += " WHERE command = ?"
		args = append(args, filter.Command)
	}

	query += " ORDER BY started_at DESC"

	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list invocations: %w", err)
	}
	defer rows.Close()

	var out []Invocation
	for rows.Next() {
		var inv Invocation
		var flags, startedAt string

		if err := rows.Scan(&inv.ID, &inv.Command, &flags, &inv.ExitCode, &inv.DurationMS, &startedAt); err != nil {
			return nil, fmt.Errorf("scan invocation: %w", err)
		}

		if flags != "" {
			inv.Flags = strings.Split(flags, " ")
		}

		ts, err := time.Parse(time.RFC3339Nano, startedAt)
		if err != nil {
			return nil, fmt.Errorf("parse started_at: %w", err)
		}
		inv.StartedAt = ts

		out = append(out, inv)
	}

	return out, rows.Err()
}

// Count returns the total number of recorded invocations.
func (s *Store) Count() (int64, error) {
	var n int64
	if err := s.db.QueryRow("SELECT COUNT(*) FROM invocations").Scan(&n); err != nil {
		return 0, fmt.Errorf("count invocations: %w", err)
	}
	return n, nil
}
