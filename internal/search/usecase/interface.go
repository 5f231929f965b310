package usecase

import (
	"context"

	searchdomain "discal-backend/internal/search/domain"
)

// VectorIndex is the vector-store surface the search flow depends on. Query
// returns matched ids and their distances, nearest first.
type VectorIndex interface {
	Add(ctx context.Context, id, content string, metadata map[string]any) error
	Query(ctx context.Context, query string, limit int, contentType string) ([]string, []float64, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
	Name() string
}

// Match is one ranked search result. Content and metadata come from the
// Mongo mirror, the distance from the vector store.
type Match struct {
	VectorID    string         `json:"id"`
	Content     string         `json:"content"`
	ContentType string         `json:"content_type,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	Distance    float64        `json:"distance"`
}

// SearchResult distinguishes a failed search from a genuinely empty one:
// Failed is true when the vector store errored and Matches says nothing
// about the corpus.
type SearchResult struct {
	Matches []Match
	Failed  bool
}

// CollectionInfo describes the live vector collection.
type CollectionInfo struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type SearchUsecase interface {
	AddDocument(ctx context.Context, id, content string, metadata map[string]any) (*searchdomain.VectorRecord, error)
	SearchSimilar(ctx context.Context, query string, limit int, contentType string) *SearchResult
	DeleteDocument(ctx context.Context, vectorID string) error
	CollectionInfo(ctx context.Context) (*CollectionInfo, error)
}
