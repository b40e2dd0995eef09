package iris

import (
	"context"
	"encoding/json"

	"github.com/hashicorp/go-hclog"

	"github.com/iris-platform/iris-go/pkg/client"
)

// RAGResult is one retrieved chunk with its relevance score.
type RAGResult struct {
	DocumentID string  `json:"document_id"`
	Chunk      string  `json:"chunk"`
	Score      float64 `json:"score"`
	Source     string  `json:"source"`
}

// RAGService runs retrieval queries against a bloq's indexed documents.
type RAGService struct {
	client *client.Client
	logger hclog.Logger
}

// Query retrieves the topK most relevant chunks for a query from a bloq.
// A topK of zero lets the server pick its default.
func (s *RAGService) Query(ctx context.Context, bloqID, query string, topK int) ([]RAGResult, error) {
	body := map[string]any{"bloq_id": bloqID, "query": query}
	if topK > 0 {
		body["top_k"] = topK
	}

	var raw json.RawMessage
	if err := s.client.Post(ctx, apiPrefix+"/rag/query", body, &raw); err != nil {
		return nil, err
	}
	items, _, err := decodeList(raw)
	if err != nil {
		return nil, err
	}
	results := make([]RAGResult, 0, len(items))
	for _, item := range items {
		var result RAGResult
		if err := decodeModel(item, &result); err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}

// Search runs a keyword search over a bloq's documents. Unlike Query it
// matches document metadata rather than embedded chunks.
func (s *RAGService) Search(ctx context.Context, bloqID, term string) ([]RAGResult, error) {
	body := map[string]any{"bloq_id": bloqID, "term": term}

	var raw json.RawMessage
	if err := s.client.Post(ctx, apiPrefix+"/rag/search", body, &raw); err != nil {
		return nil, err
	}
	items, _, err := decodeList(raw)
	if err != nil {
		return nil, err
	}
	results := make([]RAGResult, 0, len(items))
	for _, item := range items {
		var result RAGResult
		if err := decodeModel(item, &result); err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}
