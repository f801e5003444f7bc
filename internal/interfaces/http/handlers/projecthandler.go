package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"flowdesk/internal/application/project/usecases"
	"flowdesk/internal/shared/errors"
	"flowdesk/internal/shared/logger"
	"flowdesk/internal/shared/utils"
)

type ProjectHandler struct {
	sprints *usecases.SprintUseCases
	tasks   *usecases.TaskUseCases
	logger  logger.Interface
}

func NewProjectHandler(sprints *usecases.SprintUseCases, tasks *usecases.TaskUseCases) *ProjectHandler {
	return &ProjectHandler{
		sprints: sprints,
		tasks:   tasks,
		logger:  logger.NewLogger(),
	}
}

type SprintRequest struct {
	Name      string     `json:"name" binding:"required,max=200"`
	Goal      string     `json:"goal"`
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
	Status    *string    `json:"status" binding:"omitempty,oneof=planned active completed"`
}

type TaskRequest struct {
	Title       string     `json:"title" binding:"required,max=200"`
	Description string     `json:"description"`
	SprintID    *uint      `json:"sprint_id"`
	AssigneeID  *uint      `json:"assignee_id"`
	DueDate     *time.Time `json:"due_date"`
	Status      *string    `json:"status" binding:"omitempty,oneof=todo in_progress done"`
}

// Sprints

func (h *ProjectHandler) ListSprints(c *gin.Context) {
	q := usecases.ListSprintsQuery{
		BaseFilter: parseBaseFilter(c),
		Status:     queryString(c, "status"),
	}

	result, err := h.sprints.List(c.Request.Context(), q)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Sprints, result.Total, q.Page, q.PageSize)
}

func (h *ProjectHandler) CreateSprint(c *gin.Context) {
	var req SprintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.sprints.Create(c.Request.Context(), usecases.CreateSprintCommand{
		Name:      req.Name,
		Goal:      req.Goal,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

func (h *ProjectHandler) UpdateSprint(c *gin.Context) {
	sprintID, err := utils.ParseIDParam(c, "sprint")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req SprintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.sprints.Update(c.Request.Context(), usecases.UpdateSprintCommand{
		SprintID:  sprintID,
		Name:      req.Name,
		Goal:      req.Goal,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Status:    req.Status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Sprint updated", result)
}

func (h *ProjectHandler) DeleteSprint(c *gin.Context) {
	sprintID, err := utils.ParseIDParam(c, "sprint")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.sprints.Delete(c.Request.Context(), usecases.DeleteSprintCommand{SprintID: sprintID}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// Tasks

func (h *ProjectHandler) ListTasks(c *gin.Context) {
	q := usecases.ListTasksQuery{
		BaseFilter: parseBaseFilter(c),
		Status:     queryString(c, "status"),
		SprintID:   queryUint(c, "sprint_id"),
		AssigneeID: queryUint(c, "assignee_id"),
	}

	result, err := h.tasks.List(c.Request.Context(), q)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Tasks, result.Total, q.Page, q.PageSize)
}

func (h *ProjectHandler) CreateTask(c *gin.Context) {
	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.tasks.Create(c.Request.Context(), usecases.CreateTaskCommand{
		Title:       req.Title,
		Description: req.Description,
		SprintID:    req.SprintID,
		AssigneeID:  req.AssigneeID,
		DueDate:     req.DueDate,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

func (h *ProjectHandler) UpdateTask(c *gin.Context) {
	taskID, err := utils.ParseIDParam(c, "task")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.tasks.Update(c.Request.Context(), usecases.UpdateTaskCommand{
		TaskID:      taskID,
		Title:       req.Title,
		Description: req.Description,
		SprintID:    req.SprintID,
		AssigneeID:  req.AssigneeID,
		DueDate:     req.DueDate,
		Status:      req.Status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Task updated", result)
}

func (h *ProjectHandler) DeleteTask(c *gin.Context) {
	taskID, err := utils.ParseIDParam(c, "task")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.tasks.Delete(c.Request.Context(), usecases.DeleteTaskCommand{TaskID: taskID}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
