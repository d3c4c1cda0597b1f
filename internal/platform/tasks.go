package platform

import (
	"context"

	"github.com/bhr/crm-console/internal/model"
)

// Tasks exposes the task resource of the platform API.
type Tasks struct {
	api *Client
}

func NewTasks(api *Client) *Tasks {
	return &Tasks{api: api}
}

func (s *Tasks) Get(ctx context.Context, taskID string) Result[model.Task] {
	res, err := s.api.Get(ctx, joinPath(tasksBase, taskID))
	return Classify[model.Task](res, err)
}

func (s *Tasks) List(ctx context.Context) Result[[]model.Task] {
	res, err := s.api.Get(ctx, tasksBase)
	return Classify[[]model.Task](res, err)
}

func (s *Tasks) Register(ctx context.Context, req model.TaskRequest) Result[model.Task] {
	res, err := s.api.Post(ctx, tasksBase, req)
	return Classify[model.Task](res, err)
}

func (s *Tasks) Update(ctx context.Context, req model.TaskUpdateRequest) Result[model.Task] {
	res, err := s.api.Put(ctx, joinPath(tasksBase, req.ID), req)
	return Classify[model.Task](res, err)
}

func (s *Tasks) Delete(ctx context.Context, taskID string) Result[struct{}] {
	res, err := s.api.Delete(ctx, joinPath(tasksBase, taskID))
	return Classify[struct{}](res, err)
}
