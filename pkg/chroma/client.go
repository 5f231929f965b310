package chroma

import (
	"context"
	"fmt"
	"log"
	"os"

	chroma "github.com/amikos-tech/chroma-go/pkg/api/v2"
	"github.com/amikos-tech/chroma-go/pkg/embeddings"
	"github.com/amikos-tech/chroma-go/pkg/embeddings/gemini"

	"discal-backend/pkg/config"
)

// Client wraps one Chroma collection with a Gemini embedding function. The
// collection is created once at startup and shared by all requests.
type Client struct {
	client     chroma.Client
	embedFunc  *gemini.GeminiEmbeddingFunction
	collection chroma.Collection
}

func NewClient(cfg *config.Config) (*Client, error) {
	if cfg.GeminiAPIKey != "" {
		os.Setenv("GEMINI_API_KEY", cfg.GeminiAPIKey)
	}

	embedFunc, err := gemini.NewGeminiEmbeddingFunction(
		gemini.WithEnvAPIKey(),
		gemini.WithDefaultModel(embeddings.EmbeddingModel(cfg.EmbeddingModel)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini embedding function: %w", err)
	}

	client, err := chroma.NewHTTPClient(
		chroma.WithBaseURL(cfg.ChromaURL),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Chroma client: %w", err)
	}

	ctx := context.Background()
	collection, err := client.GetOrCreateCollection(
		ctx,
		cfg.ChromaCollection,
		chroma.WithEmbeddingFunctionCreate(embedFunc),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create collection: %w", err)
	}

	log.Printf("[Chroma] initialized collection %q at %s", cfg.ChromaCollection, cfg.ChromaURL)

	return &Client{
		client:     client,
		embedFunc:  embedFunc,
		collection: collection,
	}, nil
}

// Add inserts one document. The collection's embedding function computes the
// vector from content.
func (c *Client) Add(ctx context.Context, id, content string, metadata map[string]any) error {
	meta, err := chroma.NewDocumentMetadataFromMap(metadata)
	if err != nil {
		return fmt.Errorf("failed to create metadata: %w", err)
	}

	err = c.collection.Add(
		ctx,
		chroma.WithIDs(chroma.DocumentID(id)),
		chroma.WithMetadatas(meta),
		chroma.WithTexts(content),
	)
	if err != nil {
		return fmt.Errorf("failed to add document: %w", err)
	}
	return nil
}

// Query embeds the query text and returns the nearest document ids with their
// distances. A non-empty contentType restricts results to that tag.
func (c *Client) Query(ctx context.Context, query string, limit int, contentType string) ([]string, []float64, error) {
	opts := []chroma.CollectionQueryOption{
		chroma.WithQueryTexts(query),
		chroma.WithNResults(limit),
	}
	if contentType != "" {
		opts = append(opts, chroma.WithWhereQuery(chroma.EqString("content_type", contentType)))
	}

	results, err := c.collection.Query(ctx, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query collection: %w", err)
	}
	if results == nil || results.CountGroups() == 0 {
		return []string{}, []float64{}, nil
	}

	idGroups := results.GetIDGroups()
	distanceGroups := results.GetDistancesGroups()
	if len(idGroups) == 0 || len(idGroups[0]) == 0 {
		return []string{}, []float64{}, nil
	}

	ids := make([]string, 0, len(idGroups[0]))
	for _, id := range idGroups[0] {
		ids = append(ids, string(id))
	}

	distances := make([]float64, 0, len(ids))
	if len(distanceGroups) > 0 {
		for _, d := range distanceGroups[0] {
			distances = append(distances, float64(d))
		}
	}

	return ids, distances, nil
}

func (c *Client) Delete(ctx context.Context, id string) error {
	err := c.collection.Delete(ctx, chroma.WithIDsDelete(chroma.DocumentID(id)))
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	return nil
}

func (c *Client) Count(ctx context.Context) (int, error) {
	count, err := c.collection.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count collection: %w", err)
	}
	return count, nil
}

func (c *Client) Name() string {
	return c.collection.Name()
}
