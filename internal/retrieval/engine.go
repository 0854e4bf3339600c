// Package retrieval defines the journal-retrieval interface the coaching
// flow will eventually use to ground replies in past entries. Only the
// interface and a no-op engine exist today; embedding and vector storage are
// out of scope.
package retrieval

import "context"

// Document is one retrieved piece of journal context.
type Document struct {
	Text     string
	Metadata map[string]string
}

// Engine ingests journal text and retrieves relevant entries for a query.
type Engine interface {
	Ingest(ctx context.Context, text string, metadata map[string]string) error
	Retrieve(ctx context.Context, query string, k int) ([]Document, error)
}

// NoopEngine satisfies Engine without storing anything.
type NoopEngine struct{}

func NewNoopEngine() *NoopEngine { return &NoopEngine{} }

func (NoopEngine) Ingest(ctx context.Context, text string, metadata map[string]string) error {
	return nil
}

func (NoopEngine) Retrieve(ctx context.Context, query string, k int) ([]Document, error) {
	return nil, nil
}
