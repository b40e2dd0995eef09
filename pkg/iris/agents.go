package iris

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/hashicorp/go-hclog"

	"github.com/iris-platform/iris-go/pkg/client"
	"github.com/iris-platform/iris-go/pkg/templates"
)

// Agent is a conversational agent configured on the platform.
type Agent struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Status      string         `json:"status"`
	Settings    map[string]any `json:"settings"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// CreateAgentRequest is the payload for AgentsService.Create.
type CreateAgentRequest struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Settings    map[string]any `json:"settings,omitempty"`
}

// Validate checks the request before it goes on the wire.
func (r CreateAgentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 120)),
		validation.Field(&r.Description, validation.Length(0, 2000)),
	)
}

// AgentsService manages agents, including template-based creation.
type AgentsService struct {
	client    *client.Client
	logger    hclog.Logger
	templates *templates.Registry
}

// List returns all agents visible to the token.
func (s *AgentsService) List(ctx context.Context) ([]Agent, error) {
	var raw json.RawMessage
	if err := s.client.Get(ctx, apiPrefix+"/agents", nil, &raw); err != nil {
		return nil, err
	}
	items, _, err := decodeList(raw)
	if err != nil {
		return nil, err
	}
	agents := make([]Agent, 0, len(items))
	for _, item := range items {
		var agent Agent
		if err := decodeModel(item, &agent); err != nil {
			return nil, err
		}
		agents = append(agents, agent)
	}
	return agents, nil
}

// Get fetches a single agent by ID.
func (s *AgentsService) Get(ctx context.Context, id string) (*Agent, error) {
	var raw json.RawMessage
	if err := s.client.Get(ctx, fmt.Sprintf("%s/agents/%s", apiPrefix, id), nil, &raw); err != nil {
		return nil, err
	}
	return agentFromRaw(raw)
}

// Create registers a new agent.
func (s *AgentsService) Create(ctx context.Context, req CreateAgentRequest) (*Agent, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid create agent request: %w", err)
	}
	var raw json.RawMessage
	if err := s.client.Post(ctx, apiPrefix+"/agents", req, &raw); err != nil {
		return nil, err
	}
	return agentFromRaw(raw)
}

// CreateFromTemplate instantiates an agent from a named template,
// deep-merging customizations over the template's base configuration.
// Nested keys absent from customizations keep their template values.
func (s *AgentsService) CreateFromTemplate(
	ctx context.Context,
	templateName string,
	customizations map[string]any,
) (*Agent, error) {
	base, err := s.templates.Lookup(templateName)
	if err != nil {
		return nil, err
	}
	if customizations == nil {
		customizations = map[string]any{}
	}
	payload := templates.Resolve(base, customizations)

	s.logger.Debug("creating agent from template", "template", templateName)

	var raw json.RawMessage
	if err := s.client.Post(ctx, apiPrefix+"/agents", payload, &raw); err != nil {
		return nil, err
	}
	return agentFromRaw(raw)
}

// Update applies a partial update to an agent.
func (s *AgentsService) Update(ctx context.Context, id string, updates map[string]any) (*Agent, error) {
	var raw json.RawMessage
	if err := s.client.Patch(ctx, fmt.Sprintf("%s/agents/%s", apiPrefix, id), updates, &raw); err != nil {
		return nil, err
	}
	return agentFromRaw(raw)
}

// Delete removes an agent.
func (s *AgentsService) Delete(ctx context.Context, id string) error {
	return s.client.Delete(ctx, fmt.Sprintf("%s/agents/%s", apiPrefix, id), nil, nil)
}

// Templates exposes the registry backing CreateFromTemplate.
func (s *AgentsService) Templates() *templates.Registry {
	return s.templates
}

func agentFromRaw(raw json.RawMessage) (*Agent, error) {
	obj, err := decodeObject(raw)
	if err != nil {
		return nil, err
	}
	var agent Agent
	if err := decodeModel(obj, &agent); err != nil {
		return nil, err
	}
	return &agent, nil
}
