package ports

import (
	"context"

	"github.com/alt-7/task-management/internal/core/domain"
)

type TaskRepository interface {
	// FindWithPagination expects page and limit pre-clamped by the caller.
	FindWithPagination(ctx context.Context, page, limit int, status *domain.TaskStatus) (domain.PaginatedResult, error)
	FindByID(ctx context.Context, id int64) (*domain.Task, error)
	Create(ctx context.Context, task *domain.Task) error
	Update(ctx context.Context, task *domain.Task) error
	Delete(ctx context.Context, id int64) error
}

type TaskService interface {
	GetAllTasks(ctx context.Context, page, limit int, status *string) (domain.PaginatedResult, error)
	GetTaskByID(ctx context.Context, id int64) (*domain.Task, error)
	CreateTask(ctx context.Context, input domain.CreateTaskInput) (*domain.Task, error)
	UpdateTask(ctx context.Context, id int64, input domain.UpdateTaskInput) (*domain.Task, error)
	DeleteTask(ctx context.Context, id int64) error
}
