package iris

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/iris-platform/iris-go/pkg/client"
	"github.com/iris-platform/iris-go/pkg/nested"
)

// Page is a published site page. Content holds the component tree as the
// API serves it: a nested JSON structure addressed with dot paths like
// "sections.0.props.title".
type Page struct {
	ID        string         `json:"id"`
	Title     string         `json:"title"`
	Slug      string         `json:"slug"`
	Content   map[string]any `json:"content"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// Component reads a value from the page's component tree. The second return
// is false when the path does not resolve.
func (p *Page) Component(path string) (any, bool) {
	return nested.Get(p.Content, path)
}

// SetComponent writes a value into the component tree, auto-creating
// intermediate objects along the way.
func (p *Page) SetComponent(path string, value any) error {
	if p.Content == nil {
		p.Content = map[string]any{}
	}
	return nested.Set(p.Content, path, value)
}

// ApplyUpdates merges a partial update into the component tree. Dotted keys
// are treated as paths; plain keys whose values are objects get a shallow,
// single-level merge. The page's content is replaced with the merged tree.
func (p *Page) ApplyUpdates(updates map[string]any) error {
	merged, err := nested.MergeUpdates(p.Content, updates)
	if err != nil {
		return err
	}
	p.Content = merged
	return nil
}

// PagesService manages site pages and their component trees.
type PagesService struct {
	client *client.Client
	logger hclog.Logger
}

// List returns all pages.
func (s *PagesService) List(ctx context.Context) ([]Page, error) {
	var raw json.RawMessage
	if err := s.client.Get(ctx, apiPrefix+"/pages", nil, &raw); err != nil {
		return nil, err
	}
	items, _, err := decodeList(raw)
	if err != nil {
		return nil, err
	}
	pages := make([]Page, 0, len(items))
	for _, item := range items {
		var page Page
		if err := decodeModel(item, &page); err != nil {
			return nil, err
		}
		pages = append(pages, page)
	}
	return pages, nil
}

// Get fetches a single page with its component tree.
func (s *PagesService) Get(ctx context.Context, id string) (*Page, error) {
	var raw json.RawMessage
	if err := s.client.Get(ctx, fmt.Sprintf("%s/pages/%s", apiPrefix, id), nil, &raw); err != nil {
		return nil, err
	}
	return pageFromRaw(raw)
}

// Save pushes the page's current component tree back to the server.
func (s *PagesService) Save(ctx context.Context, page *Page) (*Page, error) {
	body := map[string]any{"content": page.Content}
	var raw json.RawMessage
	if err := s.client.Put(ctx, fmt.Sprintf("%s/pages/%s", apiPrefix, page.ID), body, &raw); err != nil {
		return nil, err
	}
	return pageFromRaw(raw)
}

func pageFromRaw(raw json.RawMessage) (*Page, error) {
	obj, err := decodeObject(raw)
	if err != nil {
		return nil, err
	}
	var page Page
	if err := decodeModel(obj, &page); err != nil {
		return nil, err
	}
	return &page, nil
}
