package repository

import (
	"context"

	searchdomain "discal-backend/internal/search/domain"
)

// VectorRecordRepository persists the Mongo mirror of the vector store.
// FindByVectorID returns (nil, nil) when no record matches.
type VectorRecordRepository interface {
	Insert(ctx context.Context, record *searchdomain.VectorRecord) error
	FindByVectorID(ctx context.Context, vectorID string) (*searchdomain.VectorRecord, error)
	FindByVectorIDs(ctx context.Context, vectorIDs []string) ([]*searchdomain.VectorRecord, error)
	DeleteByVectorID(ctx context.Context, vectorID string) (bool, error)
}
