package validation

import (
	"strings"

	"github.com/alt-7/task-management/internal/adapter/http/dto"
	"github.com/alt-7/task-management/internal/core/domain"
)

// BuildCreateTaskInput trims title and description before any length
// check runs and applies the pending default. The caller id comes from
// the security context, never from the payload.
func BuildCreateTaskInput(req dto.CreateTaskRequest, userID *int64) domain.CreateTaskInput {
	status := domain.TaskStatusPending
	if req.Status != nil {
		status = domain.TaskStatus(*req.Status)
	}

	return domain.CreateTaskInput{
		Title:       strings.TrimSpace(req.Title),
		Description: trimOptional(req.Description),
		Status:      status,
		CreatedBy:   userID,
	}
}

func BuildUpdateTaskInput(req dto.UpdateTaskRequest, userID *int64) domain.UpdateTaskInput {
	input := domain.UpdateTaskInput{
		Description: trimOptional(req.Description),
		UpdatedBy:   userID,
	}

	if req.Title != nil {
		value := strings.TrimSpace(*req.Title)
		input.Title = &value
	}
	if req.Status != nil {
		value := domain.TaskStatus(*req.Status)
		input.Status = &value
	}

	return input
}

// trimOptional normalizes an empty-after-trim description to absent.
func trimOptional(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
