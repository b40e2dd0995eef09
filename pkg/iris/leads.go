package iris

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/hashicorp/go-hclog"

	"github.com/iris-platform/iris-go/pkg/client"
)

// Lead is a CRM contact captured by an agent or form.
type Lead struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Source    string    `json:"source"`
	Status    string    `json:"status"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateLeadRequest is the payload for LeadsService.Create.
type CreateLeadRequest struct {
	Name   string `json:"name"`
	Email  string `json:"email,omitempty"`
	Phone  string `json:"phone,omitempty"`
	Source string `json:"source,omitempty"`
}

func (r CreateLeadRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Email, validation.Length(0, 254)),
	)
}

// ListLeadsOptions filter and paginate LeadsService.List.
type ListLeadsOptions struct {
	Status string
	Page   int
}

// LeadsService manages CRM leads.
type LeadsService struct {
	client *client.Client
	logger hclog.Logger
}

// List returns leads, optionally filtered. Meta is nil when the server
// omits pagination info.
func (s *LeadsService) List(ctx context.Context, opts *ListLeadsOptions) ([]Lead, *Meta, error) {
	query := url.Values{}
	if opts != nil {
		if opts.Status != "" {
			query.Set("status", opts.Status)
		}
		if opts.Page > 0 {
			query.Set("page", strconv.Itoa(opts.Page))
		}
	}

	var raw json.RawMessage
	if err := s.client.Get(ctx, apiPrefix+"/leads", query, &raw); err != nil {
		return nil, nil, err
	}
	items, meta, err := decodeList(raw)
	if err != nil {
		return nil, nil, err
	}
	leads := make([]Lead, 0, len(items))
	for _, item := range items {
		var lead Lead
		if err := decodeModel(item, &lead); err != nil {
			return nil, nil, err
		}
		leads = append(leads, lead)
	}
	return leads, meta, nil
}

// Get fetches a single lead.
func (s *LeadsService) Get(ctx context.Context, id string) (*Lead, error) {
	var raw json.RawMessage
	if err := s.client.Get(ctx, fmt.Sprintf("%s/leads/%s", apiPrefix, id), nil, &raw); err != nil {
		return nil, err
	}
	return leadFromRaw(raw)
}

// Create captures a new lead.
func (s *LeadsService) Create(ctx context.Context, req CreateLeadRequest) (*Lead, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid create lead request: %w", err)
	}
	var raw json.RawMessage
	if err := s.client.Post(ctx, apiPrefix+"/leads", req, &raw); err != nil {
		return nil, err
	}
	return leadFromRaw(raw)
}

// Update applies a partial update to a lead.
func (s *LeadsService) Update(ctx context.Context, id string, updates map[string]any) (*Lead, error) {
	var raw json.RawMessage
	if err := s.client.Patch(ctx, fmt.Sprintf("%s/leads/%s", apiPrefix, id), updates, &raw); err != nil {
		return nil, err
	}
	return leadFromRaw(raw)
}

func leadFromRaw(raw json.RawMessage) (*Lead, error) {
	obj, err := decodeObject(raw)
	if err != nil {
		return nil, err
	}
	var lead Lead
	if err := decodeModel(obj, &lead); err != nil {
		return nil, err
	}
	return &lead, nil
}
