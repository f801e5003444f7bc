package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"flowdesk/internal/application/user/usecases"
	"flowdesk/internal/shared/errors"
	"flowdesk/internal/shared/logger"
	"flowdesk/internal/shared/utils"
)

type UserHandler struct {
	getProfileUC  *usecases.GetProfileUseCase
	listUsersUC   *usecases.ListUsersUseCase
	updateUserUC  *usecases.UpdateUserUseCase
	deleteUserUC  *usecases.DeleteUserUseCase
	uploadPhotoUC *usecases.UploadPhotoUseCase
	logger        logger.Interface
}

func NewUserHandler(
	getProfileUC *usecases.GetProfileUseCase,
	listUsersUC *usecases.ListUsersUseCase,
	updateUserUC *usecases.UpdateUserUseCase,
	deleteUserUC *usecases.DeleteUserUseCase,
	uploadPhotoUC *usecases.UploadPhotoUseCase,
) *UserHandler {
	return &UserHandler{
		getProfileUC:  getProfileUC,
		listUsersUC:   listUsersUC,
		updateUserUC:  updateUserUC,
		deleteUserUC:  deleteUserUC,
		uploadPhotoUC: uploadPhotoUC,
		logger:        logger.NewLogger(),
	}
}

type UpdateUserRequest struct {
	Name *string `json:"name"`
	Role *string `json:"role" binding:"omitempty,oneof=admin user"`
}

func (h *UserHandler) Me(c *gin.Context) {
	result, err := h.getProfileUC.Execute(c.Request.Context(), usecases.GetProfileQuery{
		UserID: utils.CurrentUserID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *UserHandler) List(c *gin.Context) {
	q := usecases.ListUsersQuery{
		BaseFilter: parseBaseFilter(c),
		Role:       queryString(c, "role"),
		Search:     c.Query("search"),
	}

	result, err := h.listUsersUC.Execute(c.Request.Context(), q)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Users, result.Total, q.Page, q.PageSize)
}

func (h *UserHandler) Update(c *gin.Context) {
	userID, err := utils.ParseIDParam(c, "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.updateUserUC.Execute(c.Request.Context(), usecases.UpdateUserCommand{
		UserID:        userID,
		RequesterID:   utils.CurrentUserID(c),
		RequesterRole: currentRole(c),
		Name:          req.Name,
		Role:          req.Role,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "User updated", result)
}

func (h *UserHandler) Delete(c *gin.Context) {
	userID, err := utils.ParseIDParam(c, "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	err = h.deleteUserUC.Execute(c.Request.Context(), usecases.DeleteUserCommand{
		UserID:        userID,
		RequesterID:   utils.CurrentUserID(c),
		RequesterRole: currentRole(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func (h *UserHandler) UploadPhoto(c *gin.Context) {
	file, header, err := c.Request.FormFile("photo")
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("photo file is required"))
		return
	}
	defer file.Close()

	result, err := h.uploadPhotoUC.Execute(c.Request.Context(), usecases.UploadPhotoCommand{
		UserID:   utils.CurrentUserID(c),
		FileName: header.Filename,
		Reader:   file,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Photo uploaded", result)
}
