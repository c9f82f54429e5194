package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/alt-7/task-management/internal/core/domain"
	"github.com/alt-7/task-management/internal/core/ports"
)

const (
	minLimit = 1
	maxLimit = 100
)

type TaskService struct {
	taskRepository ports.TaskRepository
}

func NewTaskService(taskRepository ports.TaskRepository) *TaskService {
	return &TaskService{taskRepository: taskRepository}
}

var _ ports.TaskService = (*TaskService)(nil)

// GetAllTasks clamps page and limit and rejects a status filter outside
// the valid set before touching the store.
func (s *TaskService) GetAllTasks(ctx context.Context, page, limit int, status *string) (domain.PaginatedResult, error) {
	var statusFilter *domain.TaskStatus
	if status != nil {
		value := domain.TaskStatus(*status)
		if !domain.IsValidStatus(value) {
			return domain.PaginatedResult{}, domain.NewValidationError("Invalid status filter", nil)
		}
		statusFilter = &value
	}

	if page < 1 {
		page = 1
	}
	if limit < minLimit {
		limit = minLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	return s.taskRepository.FindWithPagination(ctx, page, limit, statusFilter)
}

func (s *TaskService) GetTaskByID(ctx context.Context, id int64) (*domain.Task, error) {
	task, err := s.taskRepository.FindByID(ctx, id)
	if err != nil {
		if err == domain.ErrTaskNotFound {
			zap.L().Info("task not found", zap.Int64("id", id))
		}
		return nil, err
	}
	return task, nil
}

// CreateTask validates the input, then re-validates the constructed
// entity before persisting. The entity check is defense in depth against
// constraint violations the input check might miss.
func (s *TaskService) CreateTask(ctx context.Context, input domain.CreateTaskInput) (*domain.Task, error) {
	if violations := input.Validate(); len(violations) > 0 {
		return nil, domain.NewValidationError("Validation failed", violations)
	}

	task := &domain.Task{
		Title:       input.Title,
		Description: input.Description,
		Status:      input.Status,
		CreatedBy:   input.CreatedBy,
	}

	if violations := task.Validate(); len(violations) > 0 {
		return nil, domain.NewValidationError("Validation failed", violations)
	}

	if err := s.taskRepository.Create(ctx, task); err != nil {
		return nil, err
	}

	zap.L().Info("task created", zap.Int64("id", task.ID))
	return task, nil
}

// UpdateTask applies only the supplied fields, stamps UpdatedBy and
// re-validates the mutated entity before persisting. Nothing is written
// when validation fails.
func (s *TaskService) UpdateTask(ctx context.Context, id int64, input domain.UpdateTaskInput) (*domain.Task, error) {
	task, err := s.GetTaskByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !input.HasUpdates() {
		return nil, domain.NewValidationError("No fields to update provided", nil)
	}

	if violations := input.Validate(); len(violations) > 0 {
		return nil, domain.NewValidationError("Validation failed", violations)
	}

	if input.Title != nil {
		task.Title = *input.Title
	}
	if input.Description != nil {
		task.Description = input.Description
	}
	if input.Status != nil {
		if err := task.SetStatus(*input.Status); err != nil {
			return nil, err
		}
	}
	task.UpdatedBy = input.UpdatedBy

	if violations := task.Validate(); len(violations) > 0 {
		return nil, domain.NewValidationError("Validation failed", violations)
	}

	if err := s.taskRepository.Update(ctx, task); err != nil {
		return nil, err
	}

	zap.L().Info("task updated", zap.Int64("id", task.ID))
	return task, nil
}

// DeleteTask is a hard delete. Deleting an unknown or already-deleted id
// fails with ErrTaskNotFound rather than succeeding silently.
func (s *TaskService) DeleteTask(ctx context.Context, id int64) error {
	if _, err := s.GetTaskByID(ctx, id); err != nil {
		return err
	}

	if err := s.taskRepository.Delete(ctx, id); err != nil {
		return err
	}

	zap.L().Info("task deleted", zap.Int64("id", id))
	return nil
}
