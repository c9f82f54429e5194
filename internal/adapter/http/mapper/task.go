package mapper

import (
	"github.com/alt-7/task-management/internal/adapter/http/dto"
	"github.com/alt-7/task-management/internal/core/domain"
)

// Timestamps are second precision without a timezone, matching the
// DATETIME columns.
const timestampLayout = "2006-01-02 15:04:05"

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		ID:        task.ID,
		Title:     task.Title,
		Status:    string(task.Status),
		CreatedAt: task.CreatedAt.Format(timestampLayout),
		UpdatedAt: task.UpdatedAt.Format(timestampLayout),
	}

	if task.Description != nil {
		value := *task.Description
		item.Description = &value
	}
	if task.CreatedBy != nil {
		value := *task.CreatedBy
		item.CreatedBy = &value
	}
	if task.UpdatedBy != nil {
		value := *task.UpdatedBy
		item.UpdatedBy = &value
	}

	return item
}

func ToTaskListData(result domain.PaginatedResult) dto.TaskListData {
	return dto.TaskListData{
		Items: ToTaskItems(result.Items),
		Pagination: dto.Pagination{
			Total: result.Total,
			Page:  result.Page,
			Limit: result.Limit,
			Pages: result.Pages,
		},
	}
}
