package iris

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/iris-platform/iris-go/pkg/client"
)

// Course is a structured learning course, optionally part of a program.
type Course struct {
	ID          string    `json:"id"`
	ProgramID   string    `json:"program_id"`
	Name        string    `json:"name"`
	LessonCount int       `json:"lesson_count"`
	Published   bool      `json:"published"`
	CreatedAt   time.Time `json:"created_at"`
}

// CoursesService manages courses. Pure pass-through CRUD.
type CoursesService struct {
	client *client.Client
	logger hclog.Logger
}

func (s *CoursesService) List(ctx context.Context) ([]Course, error) {
	var raw json.RawMessage
	if err := s.client.Get(ctx, apiPrefix+"/courses", nil, &raw); err != nil {
		return nil, err
	}
	items, _, err := decodeList(raw)
	if err != nil {
		return nil, err
	}
	courses := make([]Course, 0, len(items))
	for _, item := range items {
		var course Course
		if err := decodeModel(item, &course); err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}
	return courses, nil
}

func (s *CoursesService) Get(ctx context.Context, id string) (*Course, error) {
	var raw json.RawMessage
	if err := s.client.Get(ctx, fmt.Sprintf("%s/courses/%s", apiPrefix, id), nil, &raw); err != nil {
		return nil, err
	}
	obj, err := decodeObject(raw)
	if err != nil {
		return nil, err
	}
	var course Course
	if err := decodeModel(obj, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

func (s *CoursesService) Create(ctx context.Context, programID, name string) (*Course, error) {
	body := map[string]any{"program_id": programID, "name": name}
	var raw json.RawMessage
	if err := s.client.Post(ctx, apiPrefix+"/courses", body, &raw); err != nil {
		return nil, err
	}
	obj, err := decodeObject(raw)
	if err != nil {
		return nil, err
	}
	var course Course
	if err := decodeModel(obj, &course); err != nil {
		return nil, err
	}
	return &course, nil
}
