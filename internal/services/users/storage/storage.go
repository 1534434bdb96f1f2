// Package storage defines persistence contracts for the users service.
package storage

import (
	"context"
	"errors"

	"github.com/louisbranch/staffbook/internal/directory"
)

var (
	// ErrNotFound indicates a requested user record is missing.
	ErrNotFound = errors.New("record not found")
	// ErrAlreadyExists indicates a user with the same id already exists.
	ErrAlreadyExists = errors.New("record already exists")
)

// UserStore persists employee records in insertion order.
type UserStore interface {
	ListUsers(ctx context.Context) ([]directory.Record, error)
	GetUser(ctx context.Context, id string) (directory.Record, error)
	CreateUser(ctx context.Context, record directory.Record) error
	// SeedUsers appends records in one transaction: all or none are stored.
	SeedUsers(ctx context.Context, records []directory.Record) error
	DeleteUser(ctx context.Context, id string) error
	CountUsers(ctx context.Context) (int, error)
	Close() error
}
