package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"flowdesk/internal/application/board/usecases"
	"flowdesk/internal/shared/errors"
	"flowdesk/internal/shared/logger"
	"flowdesk/internal/shared/utils"
)

type BoardHandler struct {
	listColumnsUC  usecases.ListColumnsExecutor
	createColumnUC usecases.CreateColumnExecutor
	updateColumnUC usecases.UpdateColumnExecutor
	deleteColumnUC usecases.DeleteColumnExecutor
	logger         logger.Interface
}

func NewBoardHandler(
	listColumnsUC usecases.ListColumnsExecutor,
	createColumnUC usecases.CreateColumnExecutor,
	updateColumnUC usecases.UpdateColumnExecutor,
	deleteColumnUC usecases.DeleteColumnExecutor,
) *BoardHandler {
	return &BoardHandler{
		listColumnsUC:  listColumnsUC,
		createColumnUC: createColumnUC,
		updateColumnUC: updateColumnUC,
		deleteColumnUC: deleteColumnUC,
		logger:         logger.NewLogger(),
	}
}

type CreateColumnRequest struct {
	Title     string `json:"title" binding:"required,max=100"`
	Status    string `json:"status" binding:"required"`
	SortOrder int    `json:"sort_order"`
}

type UpdateColumnRequest struct {
	Title     *string `json:"title"`
	SortOrder *int    `json:"sort_order"`
}

func (h *BoardHandler) ListColumns(c *gin.Context) {
	result, err := h.listColumnsUC.Execute(c.Request.Context(), usecases.ListColumnsQuery{})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *BoardHandler) CreateColumn(c *gin.Context) {
	var req CreateColumnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.createColumnUC.Execute(c.Request.Context(), usecases.CreateColumnCommand{
		Title:     req.Title,
		Status:    req.Status,
		SortOrder: req.SortOrder,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

func (h *BoardHandler) UpdateColumn(c *gin.Context) {
	columnID, err := utils.ParseIDParam(c, "column")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateColumnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.updateColumnUC.Execute(c.Request.Context(), usecases.UpdateColumnCommand{
		ColumnID:  columnID,
		Title:     req.Title,
		SortOrder: req.SortOrder,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Column updated", result)
}

func (h *BoardHandler) DeleteColumn(c *gin.Context) {
	columnID, err := utils.ParseIDParam(c, "column")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteColumnUC.Execute(c.Request.Context(), usecases.DeleteColumnCommand{ColumnID: columnID}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
