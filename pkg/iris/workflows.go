package iris

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/iris-platform/iris-go/pkg/client"
)

// Workflow is an automation pipeline triggered by events or manually.
type Workflow struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Status     string         `json:"status"`
	Definition map[string]any `json:"definition"`
	CreatedAt  time.Time      `json:"created_at"`
}

// WorkflowsService manages automation workflows.
type WorkflowsService struct {
	client *client.Client
	logger hclog.Logger
}

func (s *WorkflowsService) List(ctx context.Context) ([]Workflow, error) {
	var raw json.RawMessage
	if err := s.client.Get(ctx, apiPrefix+"/workflows", nil, &raw); err != nil {
		return nil, err
	}
	items, _, err := decodeList(raw)
	if err != nil {
		return nil, err
	}
	workflows := make([]Workflow, 0, len(items))
	for _, item := range items {
		var workflow Workflow
		if err := decodeModel(item, &workflow); err != nil {
			return nil, err
		}
		workflows = append(workflows, workflow)
	}
	return workflows, nil
}

func (s *WorkflowsService) Get(ctx context.Context, id string) (*Workflow, error) {
	var raw json.RawMessage
	if err := s.client.Get(ctx, fmt.Sprintf("%s/workflows/%s", apiPrefix, id), nil, &raw); err != nil {
		return nil, err
	}
	return workflowFromRaw(raw)
}

func (s *WorkflowsService) Create(ctx context.Context, name string, definition map[string]any) (*Workflow, error) {
	body := map[string]any{"name": name, "definition": definition}
	var raw json.RawMessage
	if err := s.client.Post(ctx, apiPrefix+"/workflows", body, &raw); err != nil {
		return nil, err
	}
	return workflowFromRaw(raw)
}

// Trigger starts a workflow run with the given input and returns the run's
// response payload.
func (s *WorkflowsService) Trigger(ctx context.Context, id string, input map[string]any) (map[string]any, error) {
	if input == nil {
		input = map[string]any{}
	}
	var result map[string]any
	path := fmt.Sprintf("%s/workflows/%s/trigger", apiPrefix, id)
	if err := s.client.Post(ctx, path, map[string]any{"input": input}, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func workflowFromRaw(raw json.RawMessage) (*Workflow, error) {
	obj, err := decodeObject(raw)
	if err != nil {
		return nil, err
	}
	var workflow Workflow
	if err := decodeModel(obj, &workflow); err != nil {
		return nil, err
	}
	return &workflow, nil
}
