package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

// ValidStatuses is the only legal set of task statuses. The status
// filter on listings is checked against this same set.
var ValidStatuses = []TaskStatus{TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted}

// Length limits count characters, not bytes; multibyte input must not
// hit them early.
const (
	titleMaxLength = 255
	// Single source of truth for the description limit (see DESIGN.md).
	descriptionMaxLength = 1000
)

type Task struct {
	ID          int64
	Title       string
	Description *string
	Status      TaskStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
	CreatedBy   *int64
	UpdatedBy   *int64
}

func IsValidStatus(status TaskStatus) bool {
	for _, s := range ValidStatuses {
		if s == status {
			return true
		}
	}
	return false
}

func statusList() string {
	values := make([]string, 0, len(ValidStatuses))
	for _, s := range ValidStatuses {
		values = append(values, string(s))
	}
	return strings.Join(values, ", ")
}

// SetStatus rejects any value outside ValidStatuses. Transitions between
// valid statuses are unrestricted in every direction.
func (t *Task) SetStatus(status TaskStatus) error {
	if !IsValidStatus(status) {
		return NewValidationError(
			fmt.Sprintf("Invalid status %q. Valid statuses are: %s", status, statusList()),
			map[string]string{"status": "Status must be one of: " + statusList()},
		)
	}
	t.Status = status
	return nil
}

func (t *Task) MarkAsPending() error    { return t.SetStatus(TaskStatusPending) }
func (t *Task) MarkAsInProgress() error { return t.SetStatus(TaskStatusInProgress) }
func (t *Task) MarkAsCompleted() error  { return t.SetStatus(TaskStatusCompleted) }

func (t *Task) IsPending() bool    { return t.Status == TaskStatusPending }
func (t *Task) IsInProgress() bool { return t.Status == TaskStatusInProgress }
func (t *Task) IsCompleted() bool  { return t.Status == TaskStatusCompleted }

// Validate checks every entity constraint and collects one message per
// offending field instead of stopping at the first violation.
func (t *Task) Validate() map[string]string {
	violations := make(map[string]string)

	if strings.TrimSpace(t.Title) == "" {
		violations["title"] = "Title cannot be blank"
	} else if utf8.RuneCountInString(t.Title) > titleMaxLength {
		violations["title"] = fmt.Sprintf("Title cannot be longer than %d characters", titleMaxLength)
	}

	if t.Description != nil && utf8.RuneCountInString(*t.Description) > descriptionMaxLength {
		violations["description"] = fmt.Sprintf("Description cannot be longer than %d characters", descriptionMaxLength)
	}

	if !IsValidStatus(t.Status) {
		violations["status"] = "Status must be one of: " + statusList()
	}

	return violations
}

// CreateTaskInput carries the fields of a create request. Title and
// Description arrive pre-trimmed: the HTTP adapter trims at construction
// time, before any length check.
type CreateTaskInput struct {
	Title       string
	Description *string
	Status      TaskStatus
	CreatedBy   *int64
}

func (in CreateTaskInput) Validate() map[string]string {
	violations := make(map[string]string)

	if in.Title == "" {
		violations["title"] = "Title is required"
	} else if utf8.RuneCountInString(in.Title) > titleMaxLength {
		violations["title"] = fmt.Sprintf("Title cannot be longer than %d characters", titleMaxLength)
	}

	if in.Description != nil && utf8.RuneCountInString(*in.Description) > descriptionMaxLength {
		violations["description"] = fmt.Sprintf("Description cannot be longer than %d characters", descriptionMaxLength)
	}

	if !IsValidStatus(in.Status) {
		violations["status"] = "Status must be one of: " + statusList()
	}

	return violations
}

// UpdateTaskInput carries the fields of a partial update. Nil means the
// field was not supplied and stays untouched.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Status      *TaskStatus
	UpdatedBy   *int64
}

// HasUpdates reports whether at least one updatable field was supplied.
func (in UpdateTaskInput) HasUpdates() bool {
	return in.Title != nil || in.Description != nil || in.Status != nil
}

func (in UpdateTaskInput) Validate() map[string]string {
	violations := make(map[string]string)

	if in.Title != nil {
		if *in.Title == "" {
			violations["title"] = "Title must be at least 1 character long"
		} else if utf8.RuneCountInString(*in.Title) > titleMaxLength {
			violations["title"] = fmt.Sprintf("Title cannot be longer than %d characters", titleMaxLength)
		}
	}

	if in.Description != nil && utf8.RuneCountInString(*in.Description) > descriptionMaxLength {
		violations["description"] = fmt.Sprintf("Description cannot be longer than %d characters", descriptionMaxLength)
	}

	if in.Status != nil && !IsValidStatus(*in.Status) {
		violations["status"] = "Status must be one of: " + statusList()
	}

	return violations
}
