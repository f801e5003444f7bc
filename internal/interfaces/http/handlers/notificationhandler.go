package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"flowdesk/internal/application/notification/usecases"
	"flowdesk/internal/shared/errors"
	"flowdesk/internal/shared/logger"
	"flowdesk/internal/shared/utils"
)

type NotificationHandler struct {
	notifications *usecases.NotificationUseCases
	templates     *usecases.TemplateUseCases
	dispatchUC    *usecases.DispatchUseCase
	logger        logger.Interface
}

func NewNotificationHandler(
	notifications *usecases.NotificationUseCases,
	templates *usecases.TemplateUseCases,
	dispatchUC *usecases.DispatchUseCase,
) *NotificationHandler {
	return &NotificationHandler{
		notifications: notifications,
		templates:     templates,
		dispatchUC:    dispatchUC,
		logger:        logger.NewLogger(),
	}
}

type CreateNotificationRequest struct {
	UserID uint   `json:"user_id" binding:"required"`
	Title  string `json:"title" binding:"required,max=200"`
	Body   string `json:"body"`
}

type TemplateRequest struct {
	Name    string `json:"name" binding:"required,max=100"`
	Kind    string `json:"kind" binding:"required,oneof=email sms"`
	Subject string `json:"subject"`
	Body    string `json:"body" binding:"required,notblank"`
}

type UpdateTemplateRequest struct {
	Name    string `json:"name" binding:"required,max=100"`
	Subject string `json:"subject"`
	Body    string `json:"body" binding:"required"`
}

type RenderTemplateRequest struct {
	Data map[string]string `json:"data"`
}

type SendMessageRequest struct {
	TemplateName string            `json:"template_name" binding:"required"`
	Recipient    string            `json:"recipient" binding:"required"`
	Data         map[string]string `json:"data"`
}

// Notifications

func (h *NotificationHandler) List(c *gin.Context) {
	q := usecases.ListNotificationsQuery{
		BaseFilter: parseBaseFilter(c),
		UserID:     utils.CurrentUserID(c),
		Unread:     queryBool(c, "unread"),
	}

	result, err := h.notifications.List(c.Request.Context(), q)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Notifications, result.Total, q.Page, q.PageSize)
}

func (h *NotificationHandler) Create(c *gin.Context) {
	var req CreateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.notifications.Create(c.Request.Context(), usecases.CreateNotificationCommand{
		UserID: req.UserID,
		Title:  req.Title,
		Body:   req.Body,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	notificationID, err := utils.ParseIDParam(c, "notification")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.notifications.MarkRead(c.Request.Context(), usecases.MarkNotificationReadCommand{
		NotificationID: notificationID,
		RequesterID:    utils.CurrentUserID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Notification marked read", result)
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	count, err := h.notifications.MarkAllRead(c.Request.Context(), usecases.MarkAllNotificationsReadCommand{
		UserID: utils.CurrentUserID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Notifications marked read", gin.H{"count": count})
}

func (h *NotificationHandler) Delete(c *gin.Context) {
	notificationID, err := utils.ParseIDParam(c, "notification")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	err = h.notifications.Delete(c.Request.Context(), usecases.DeleteNotificationCommand{
		NotificationID: notificationID,
		RequesterID:    utils.CurrentUserID(c),
		RequesterRole:  currentRole(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// Templates

func (h *NotificationHandler) ListTemplates(c *gin.Context) {
	q := usecases.ListTemplatesQuery{
		BaseFilter: parseBaseFilter(c),
		Kind:       queryString(c, "kind"),
	}

	result, err := h.templates.List(c.Request.Context(), q)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Templates, result.Total, q.Page, q.PageSize)
}

func (h *NotificationHandler) CreateTemplate(c *gin.Context) {
	var req TemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.templates.Create(c.Request.Context(), usecases.CreateTemplateCommand{
		Name:    req.Name,
		Kind:    req.Kind,
		Subject: req.Subject,
		Body:    req.Body,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

func (h *NotificationHandler) UpdateTemplate(c *gin.Context) {
	templateID, err := utils.ParseIDParam(c, "template")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.templates.Update(c.Request.Context(), usecases.UpdateTemplateCommand{
		TemplateID: templateID,
		Name:       req.Name,
		Subject:    req.Subject,
		Body:       req.Body,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Template updated", result)
}

func (h *NotificationHandler) DeleteTemplate(c *gin.Context) {
	templateID, err := utils.ParseIDParam(c, "template")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.templates.Delete(c.Request.Context(), usecases.DeleteTemplateCommand{TemplateID: templateID}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func (h *NotificationHandler) RenderTemplate(c *gin.Context) {
	templateID, err := utils.ParseIDParam(c, "template")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req RenderTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.templates.Render(c.Request.Context(), usecases.RenderTemplateCommand{
		TemplateID: templateID,
		Data:       req.Data,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *NotificationHandler) SendMessage(c *gin.Context) {
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	err := h.dispatchUC.Execute(c.Request.Context(), usecases.SendMessageCommand{
		TemplateName: req.TemplateName,
		Recipient:    req.Recipient,
		Data:         req.Data,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Message sent", nil)
}
