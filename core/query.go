package core

import (
	"context"
)

// QueryRunner executes named catalog queries against a loaded table.
type QueryRunner interface {
	// Run executes the query with the given identifier and returns its
	// result payload.
	Run(ctx context.Context, query string) (any, error)

	// Close releases resources
	Close() error
}
