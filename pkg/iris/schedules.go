package iris

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/iris-platform/iris-go/pkg/client"
)

// Schedule is a bookable time slot owned by an agent or a human.
type Schedule struct {
	ID       string    `json:"id"`
	AgentID  string    `json:"agent_id"`
	Title    string    `json:"title"`
	StartsAt time.Time `json:"starts_at"`
	EndsAt   time.Time `json:"ends_at"`
	Timezone string    `json:"timezone"`
	Status   string    `json:"status"`
}

// SchedulesService manages bookable schedules. Pure pass-through CRUD; slot
// timestamps arrive in whatever layout the booking source used, so decoding
// relies on the flexible time hook.
type SchedulesService struct {
	client *client.Client
	logger hclog.Logger
}

func (s *SchedulesService) List(ctx context.Context) ([]Schedule, error) {
	var raw json.RawMessage
	if err := s.client.Get(ctx, apiPrefix+"/schedules", nil, &raw); err != nil {
		return nil, err
	}
	items, _, err := decodeList(raw)
	if err != nil {
		return nil, err
	}
	schedules := make([]Schedule, 0, len(items))
	for _, item := range items {
		var schedule Schedule
		if err := decodeModel(item, &schedule); err != nil {
			return nil, err
		}
		schedules = append(schedules, schedule)
	}
	return schedules, nil
}

func (s *SchedulesService) Get(ctx context.Context, id string) (*Schedule, error) {
	var raw json.RawMessage
	if err := s.client.Get(ctx, fmt.Sprintf("%s/schedules/%s", apiPrefix, id), nil, &raw); err != nil {
		return nil, err
	}
	obj, err := decodeObject(raw)
	if err != nil {
		return nil, err
	}
	var schedule Schedule
	if err := decodeModel(obj, &schedule); err != nil {
		return nil, err
	}
	return &schedule, nil
}

func (s *SchedulesService) Create(ctx context.Context, agentID, title string, startsAt, endsAt time.Time) (*Schedule, error) {
	body := map[string]any{
		"agent_id":  agentID,
		"title":     title,
		"starts_at": startsAt.Format(time.RFC3339),
		"ends_at":   endsAt.Format(time.RFC3339),
	}
	var raw json.RawMessage
	if err := s.client.Post(ctx, apiPrefix+"/schedules", body, &raw); err != nil {
		return nil, err
	}
	obj, err := decodeObject(raw)
	if err != nil {
		return nil, err
	}
	var schedule Schedule
	if err := decodeModel(obj, &schedule); err != nil {
		return nil, err
	}
	return &schedule, nil
}
