package domain

import "time"

// VectorRecord mirrors one embedded document into the vectors collection so
// search results can be composed without reading content back from the
// vector store. VectorID is the document's id in the vector store, unique.
type VectorRecord struct {
	ID          string         `bson:"_id,omitempty" json:"id"`
	Content     string         `bson:"content" json:"content"`
	ContentType string         `bson:"content_type" json:"content_type"`
	SourceID    string         `bson:"source_id,omitempty" json:"source_id,omitempty"`
	VectorID    string         `bson:"vector_id" json:"vector_id"`
	Metadata    map[string]any `bson:"metadata,omitempty" json:"metadata,omitempty"`
	CreatedAt   time.Time      `bson:"created_at" json:"created_at"`
}
