package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/alt-7/task-management/internal/adapter/http/dto"
	"github.com/alt-7/task-management/internal/adapter/http/mapper"
	"github.com/alt-7/task-management/internal/adapter/http/middleware"
	"github.com/alt-7/task-management/internal/adapter/http/validation"
	"github.com/alt-7/task-management/internal/core/domain"
	"github.com/alt-7/task-management/internal/core/ports"
	"github.com/alt-7/task-management/pkg/apierrors"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

type TaskHandler struct {
	taskService ports.TaskService
}

func NewTaskHandler(taskService ports.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) ListTasks(c *gin.Context) {
	page := parseQueryInt(c, "page", defaultPage)
	if page < 1 {
		page = 1
	}

	limit := parseQueryInt(c, "limit", defaultLimit)
	if limit < 1 {
		limit = 1
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	// The status filter is passed through raw; the service enforces the
	// valid set.
	var status *string
	if value, ok := c.GetQuery("status"); ok {
		status = &value
	}

	result, err := h.taskService.GetAllTasks(c.Request.Context(), page, limit, status)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Task list", mapper.ToTaskListData(result))
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	id, ok := parseTaskID(c)
	if !ok {
		return
	}

	task, err := h.taskService.GetTaskByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Get task", mapper.ToTaskItem(*task))
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, domain.NewValidationError("Invalid JSON: "+err.Error(), nil))
		return
	}

	input := validation.BuildCreateTaskInput(req, middleware.GetUserID(c))

	task, err := h.taskService.CreateTask(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, "Task created successfully", mapper.ToTaskItem(*task))
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	id, ok := parseTaskID(c)
	if !ok {
		return
	}

	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, domain.NewValidationError("Invalid JSON: "+err.Error(), nil))
		return
	}

	input := validation.BuildUpdateTaskInput(req, middleware.GetUserID(c))

	task, err := h.taskService.UpdateTask(c.Request.Context(), id, input)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Task updated successfully", mapper.ToTaskItem(*task))
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	id, ok := parseTaskID(c)
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	// 204 responses carry no body in conforming HTTP; gin drops the
	// envelope here and only the status code reaches the client.
	respondSuccess(c, http.StatusNoContent, "Task deleted successfully", nil)
}

func parseTaskID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		lang := middleware.GetLang(c)
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskID, lang),
		)
		return 0, false
	}
	return id, true
}

func parseQueryInt(c *gin.Context, key string, fallback int) int {
	raw, ok := c.GetQuery(key)
	if !ok {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
