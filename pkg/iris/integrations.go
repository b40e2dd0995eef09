package iris

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/iris-platform/iris-go/pkg/client"
)

// Integration is a third-party connection (CRM, calendar, telephony, ...).
type Integration struct {
	ID        string    `json:"id"`
	Provider  string    `json:"provider"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// IntegrationsService manages third-party connections and exposes the
// Servis function proxy.
type IntegrationsService struct {
	client *client.Client
	logger hclog.Logger
	servis *ServisProxy
}

// List returns the account's connected integrations.
func (s *IntegrationsService) List(ctx context.Context) ([]Integration, error) {
	var raw json.RawMessage
	if err := s.client.Get(ctx, apiPrefix+"/integrations", nil, &raw); err != nil {
		return nil, err
	}
	items, _, err := decodeList(raw)
	if err != nil {
		return nil, err
	}
	integrations := make([]Integration, 0, len(items))
	for _, item := range items {
		var integration Integration
		if err := decodeModel(item, &integration); err != nil {
			return nil, err
		}
		integrations = append(integrations, integration)
	}
	return integrations, nil
}

// Connect links a provider to the account.
func (s *IntegrationsService) Connect(ctx context.Context, provider string, credentials map[string]any) (*Integration, error) {
	body := map[string]any{"provider": provider, "credentials": credentials}
	var raw json.RawMessage
	if err := s.client.Post(ctx, apiPrefix+"/integrations", body, &raw); err != nil {
		return nil, err
	}
	obj, err := decodeObject(raw)
	if err != nil {
		return nil, err
	}
	var integration Integration
	if err := decodeModel(obj, &integration); err != nil {
		return nil, err
	}
	return &integration, nil
}

// Disconnect removes a provider connection.
func (s *IntegrationsService) Disconnect(ctx context.Context, provider string) error {
	return s.client.Delete(ctx, fmt.Sprintf("%s/integrations/%s", apiPrefix, provider), nil, nil)
}

// Servis returns the function proxy for the Servis.ai integration.
func (s *IntegrationsService) Servis() *ServisProxy {
	if s.servis == nil {
		s.servis = &ServisProxy{client: s.client, logger: s.logger}
	}
	return s.servis
}
