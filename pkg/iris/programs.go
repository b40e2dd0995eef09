package iris

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/iris-platform/iris-go/pkg/client"
)

// Program is a coaching or membership program offered on the platform.
type Program struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// ProgramsService manages programs. Pure pass-through CRUD.
type ProgramsService struct {
	client *client.Client
	logger hclog.Logger
}

func (s *ProgramsService) List(ctx context.Context) ([]Program, error) {
	var raw json.RawMessage
	if err := s.client.Get(ctx, apiPrefix+"/programs", nil, &raw); err != nil {
		return nil, err
	}
	items, _, err := decodeList(raw)
	if err != nil {
		return nil, err
	}
	programs := make([]Program, 0, len(items))
	for _, item := range items {
		var program Program
		if err := decodeModel(item, &program); err != nil {
			return nil, err
		}
		programs = append(programs, program)
	}
	return programs, nil
}

func (s *ProgramsService) Get(ctx context.Context, id string) (*Program, error) {
	var raw json.RawMessage
	if err := s.client.Get(ctx, fmt.Sprintf("%s/programs/%s", apiPrefix, id), nil, &raw); err != nil {
		return nil, err
	}
	obj, err := decodeObject(raw)
	if err != nil {
		return nil, err
	}
	var program Program
	if err := decodeModel(obj, &program); err != nil {
		return nil, err
	}
	return &program, nil
}

func (s *ProgramsService) Create(ctx context.Context, name, description string) (*Program, error) {
	body := map[string]any{"name": name, "description": description}
	var raw json.RawMessage
	if err := s.client.Post(ctx, apiPrefix+"/programs", body, &raw); err != nil {
		return nil, err
	}
	obj, err := decodeObject(raw)
	if err != nil {
		return nil, err
	}
	var program Program
	if err := decodeModel(obj, &program); err != nil {
		return nil, err
	}
	return &program, nil
}
