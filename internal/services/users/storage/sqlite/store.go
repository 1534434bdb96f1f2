// Package sqlite provides a SQLite-backed users storage implementation.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/louisbranch/staffbook/internal/directory"
	"github.com/louisbranch/staffbook/internal/platform/storage/sqlmigrate"
	"github.com/louisbranch/staffbook/internal/platform/timeouts"
	"github.com/louisbranch/staffbook/internal/services/users/storage"
	"github.com/louisbranch/staffbook/internal/services/users/storage/sqlite/migrations"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

// Store persists users in SQLite.
type Store struct {
	sqlDB *sql.DB
}

// Open opens a SQLite users store at path and applies embedded migrations.
// The special path ":memory:" opens a private in-memory database.
func Open(ctx context.Context, path string) (*Store, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	name := path
	if name != ":memory:" {
		name = filepath.Clean(name)
	}
	dsn := fmt.Sprintf("%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(%d)&_pragma=synchronous(NORMAL)",
		name, timeouts.SQLiteBusy.Milliseconds())
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if path == ":memory:" {
		// Each connection to :memory: is its own database.
		sqlDB.SetMaxOpenConns(1)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlmigrate.Apply(ctx, sqlDB, sqlmigrate.SQLite, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// ListUsers returns every user in insertion order.
func (s *Store) ListUsers(ctx context.Context) ([]directory.Record, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT id, full_name, address, phone_number, email
		   FROM users
		  ORDER BY seq ASC`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	records := []directory.Record{}
	for rows.Next() {
		var record directory.Record
		if err := rows.Scan(&record.ID, &record.FullName, &record.Address, &record.PhoneNumber, &record.Email); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return records, nil
}

// GetUser returns one user by id.
func (s *Store) GetUser(ctx context.Context, id string) (directory.Record, error) {
	if err := s.ready(ctx); err != nil {
		return directory.Record{}, err
	}
	var record directory.Record
	err := s.sqlDB.QueryRowContext(ctx,
		`SELECT id, full_name, address, phone_number, email
		   FROM users
		  WHERE id = ?`,
		strings.TrimSpace(id),
	).Scan(&record.ID, &record.FullName, &record.Address, &record.PhoneNumber, &record.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return directory.Record{}, storage.ErrNotFound
		}
		return directory.Record{}, fmt.Errorf("get user: %w", err)
	}
	return record, nil
}

// CreateUser appends one user.
func (s *Store) CreateUser(ctx context.Context, record directory.Record) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	return insertUser(ctx, s.sqlDB, record)
}

// SeedUsers appends records atomically.
func (s *Store) SeedUsers(ctx context.Context, records []directory.Record) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed: %w", err)
	}
	defer func() { _ = tx.Rollback() }()
	for _, record := range records {
		if err := insertUser(ctx, tx, record); err != nil {
			return fmt.Errorf("seed user %s: %w", record.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed: %w", err)
	}
	return nil
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func insertUser(ctx context.Context, db execer, record directory.Record) error {
	id := strings.TrimSpace(record.ID)
	if id == "" {
		return fmt.Errorf("user id is required")
	}
	_, err := db.ExecContext(ctx,
		`INSERT INTO users (id, full_name, address, phone_number, email, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		id, record.FullName, record.Address, record.PhoneNumber, record.Email,
		time.Now().UTC().UnixMilli(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return storage.ErrAlreadyExists
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// DeleteUser removes one user by id.
func (s *Store) DeleteUser(ctx context.Context, id string) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	result, err := s.sqlDB.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, strings.TrimSpace(id))
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete user rows affected: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// CountUsers returns the number of stored users.
func (s *Store) CountUsers(ctx context.Context) (int, error) {
	if err := s.ready(ctx); err != nil {
		return 0, err
	}
	var n int
	if err := s.sqlDB.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

func (s *Store) ready(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}

var _ storage.UserStore = (*Store)(nil)
