package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/elastic/go-elasticsearch/v9"

	"github.com/dailybudgetmart/backend/internal/models"
	"github.com/dailybudgetmart/backend/internal/repo"
	"github.com/dailybudgetmart/backend/pkg/logging"
)

const productIndex = "products"

// Service answers product text search. With an elasticsearch client it runs
// fuzzy full-text queries against the product index; without one it degrades
// to the store's case-insensitive substring match. A nil Service always
// takes the fallback path.
type Service struct {
	ES   *elasticsearch.Client
	Repo *repo.GormRepo
}

func NewClient(url, user, password string) (*elasticsearch.Client, error) {
	cfg := elasticsearch.Config{
		Addresses: []string{url},
		Username:  user,
		Password:  password,
	}

	client, err := elasticsearch.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("search: create client: %w", err)
	}

	res, err := client.Info()
	if err != nil {
		return nil, fmt.Errorf("search: elasticsearch unreachable: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return nil, fmt.Errorf("search: elasticsearch error: %s", res.Status())
	}
	return client, nil
}

// Index pushes a product document into the search index, best-effort.
func (s *Service) Index(ctx context.Context, p *models.Product) {
	if s == nil || s.ES == nil {
		return
	}

	doc, err := json.Marshal(p)
	if err != nil {
		return
	}
	res, err := s.ES.Index(
		productIndex,
		bytes.NewReader(doc),
		s.ES.Index.WithDocumentID(p.ID),
		s.ES.Index.WithContext(ctx),
	)
	if err != nil {
		logging.FromContext(ctx).Warn("search index failed", "product_id", p.ID, "error", err)
		return
	}
	res.Body.Close()
}

func (s *Service) Search(ctx context.Context, tenantID, query string, limit int) ([]models.Product, error) {
	if s == nil || s.ES == nil {
		return s.fallback(ctx, tenantID, query, limit)
	}

	body := map[string]interface{}{
		"query": map[string]interface{}{
			"bool": map[string]interface{}{
				"must": map[string]interface{}{
					"multi_match": map[string]interface{}{
						"query":     query,
						"fields":    []string{"title^2", "description"},
						"fuzziness": "AUTO",
					},
				},
				"filter": map[string]interface{}{
					"term": map[string]interface{}{"tenant_id": tenantID},
				},
			},
		},
		"size": limit,
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return nil, fmt.Errorf("search: encode query: %w", err)
	}

	res, err := s.ES.Search(
		s.ES.Search.WithContext(ctx),
		s.ES.Search.WithIndex(productIndex),
		s.ES.Search.WithBody(&buf),
	)
	if err != nil {
		return nil, fmt.Errorf("search: query: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return nil, fmt.Errorf("search: query: %s", res.Status())
	}

	var r struct {
		Hits struct {
			Hits []struct {
				Source models.Product `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return nil, err
	}

	products := make([]models.Product, len(r.Hits.Hits))
	for i, hit := range r.Hits.Hits {
		products[i] = hit.Source
	}
	return products, nil
}

func (s *Service) fallback(ctx context.Context, tenantID, query string, limit int) ([]models.Product, error) {
	if s == nil || s.Repo == nil {
		return nil, nil
	}
	return s.Repo.ListProducts(ctx, tenantID, query, limit)
}
