package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"discal-backend/internal/apperr"
	searchdomain "discal-backend/internal/search/domain"
	"discal-backend/internal/search/repository"
)

const defaultSearchLimit = 10

var errIndexUnavailable = errors.New("vector index not configured")

type searchUsecase struct {
	index      VectorIndex
	vectorRepo repository.VectorRecordRepository
}

func NewSearchUsecase(index VectorIndex, vectorRepo repository.VectorRecordRepository) SearchUsecase {
	return &searchUsecase{
		index:      index,
		vectorRepo: vectorRepo,
	}
}

// AddDocument embeds content into the vector store and mirrors a record into
// Mongo. The two writes are not transactional: a mirror failure after a
// successful embed leaves the vector orphaned until the next delete.
func (u *searchUsecase) AddDocument(ctx context.Context, id, content string, metadata map[string]any) (*searchdomain.VectorRecord, error) {
	if content == "" {
		return nil, apperr.Validation("content must not be empty")
	}
	if id == "" {
		id = uuid.NewString()
	}
	if metadata == nil {
		metadata = map[string]any{}
	}
	if u.index == nil {
		return nil, apperr.External("vector store", errIndexUnavailable)
	}

	if err := u.index.Add(ctx, id, content, metadata); err != nil {
		return nil, apperr.External("vector store", err)
	}

	record := &searchdomain.VectorRecord{
		Content:     content,
		ContentType: metaString(metadata, "type", "unknown"),
		SourceID:    metaString(metadata, "source_id", ""),
		VectorID:    id,
		Metadata:    metadata,
		CreatedAt:   time.Now(),
	}
	if err := u.vectorRepo.Insert(ctx, record); err != nil {
		return nil, apperr.Database(err)
	}
	return record, nil
}

// SearchSimilar runs a nearest-neighbour query and composes results from the
// Mongo mirror. A vector-store failure is reported through Failed rather
// than an error; callers decide how lossy to be.
func (u *searchUsecase) SearchSimilar(ctx context.Context, query string, limit int, contentType string) *SearchResult {
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	if u.index == nil {
		log.Printf("[Search] vector query skipped: %v", errIndexUnavailable)
		return &SearchResult{Matches: []Match{}, Failed: true}
	}

	ids, distances, err := u.index.Query(ctx, query, limit, contentType)
	if err != nil {
		log.Printf("[Search] vector query failed: %v", err)
		return &SearchResult{Matches: []Match{}, Failed: true}
	}
	if len(ids) == 0 {
		return &SearchResult{Matches: []Match{}}
	}

	records, err := u.vectorRepo.FindByVectorIDs(ctx, ids)
	if err != nil {
		log.Printf("[Search] mirror lookup failed: %v", err)
		return &SearchResult{Matches: []Match{}, Failed: true}
	}

	byVectorID := make(map[string]*searchdomain.VectorRecord, len(records))
	for _, rec := range records {
		byVectorID[rec.VectorID] = rec
	}

	matches := make([]Match, 0, len(ids))
	for i, id := range ids {
		m := Match{VectorID: id}
		if i < len(distances) {
			m.Distance = distances[i]
		}
		if rec := byVectorID[id]; rec != nil {
			m.Content = rec.Content
			m.ContentType = rec.ContentType
			m.Metadata = rec.Metadata
		}
		matches = append(matches, m)
	}

	return &SearchResult{Matches: matches}
}

// DeleteDocument removes the vector first, then the mirror. Same
// no-rollback caveat as AddDocument.
func (u *searchUsecase) DeleteDocument(ctx context.Context, vectorID string) error {
	if vectorID == "" {
		return apperr.Validation("vector id must not be empty")
	}

	record, err := u.vectorRepo.FindByVectorID(ctx, vectorID)
	if err != nil {
		return apperr.Database(err)
	}
	if record == nil {
		return apperr.NotFound("vector record", vectorID)
	}
	if u.index == nil {
		return apperr.External("vector store", errIndexUnavailable)
	}

	if err := u.index.Delete(ctx, vectorID); err != nil {
		return apperr.External("vector store", err)
	}
	if _, err := u.vectorRepo.DeleteByVectorID(ctx, vectorID); err != nil {
		return apperr.Database(err)
	}
	return nil
}

func (u *searchUsecase) CollectionInfo(ctx context.Context) (*CollectionInfo, error) {
	if u.index == nil {
		return nil, apperr.External("vector store", errIndexUnavailable)
	}

	count, err := u.index.Count(ctx)
	if err != nil {
		return nil, apperr.External("vector store", err)
	}
	return &CollectionInfo{
		Name:  u.index.Name(),
		Count: count,
	}, nil
}

func metaString(metadata map[string]any, key, fallback string) string {
	if v, ok := metadata[key].(string); ok && v != "" {
		return v
	}
	return fallback
}
