package database

import (
	"context"
	"errors"
)

var (
	ErrNotFound   = errors.New("record not found")
	ErrConnection = errors.New("database connection error")
	ErrQuery      = errors.New("query error")
)

// Records reads and writes single records by parameterized SurrealQL
type Records interface {
	Ping(ctx context.Context) error

	// QueryOne returns the first record of the first statement, or ErrNotFound
	QueryOne(ctx context.Context, query string, vars map[string]interface{}) (interface{}, error)

	// Execute runs a mutation and discards its result
	Execute(ctx context.Context, query string, vars map[string]interface{}) error
}

// Database is a SurrealDB connection with its lifecycle
type Database interface {
	Records

	Connect(ctx context.Context) error
	Close() error

	// Query returns one {status, result} map per statement
	Query(ctx context.Context, query string, vars map[string]interface{}) ([]interface{}, error)
}

var _ Database = (*SurrealDB)(nil)

// Config holds SurrealDB configuration
type Config struct {
	Host      string
	Port      string
	User      string
	Password  string
	Namespace string
	Database  string
}
