package usecases

import (
	"context"

	"flowdesk/internal/domain/notification"
	"flowdesk/internal/shared/errors"
	"flowdesk/internal/shared/logger"
)

type SendMessageCommand struct {
	TemplateName string
	// Recipient is an email address for email templates, a phone number
	// for SMS templates.
	Recipient string
	Data      map[string]string
}

// DispatchUseCase sends a templated message through the gateway
// matching the template's kind.
type DispatchUseCase struct {
	templateRepo notification.TemplateRepository
	renderer     Renderer
	email        EmailGateway
	sms          SMSGateway
	logger       logger.Interface
}

func NewDispatchUseCase(
	templateRepo notification.TemplateRepository,
	renderer Renderer,
	email EmailGateway,
	sms SMSGateway,
	logger logger.Interface,
) *DispatchUseCase {
	return &DispatchUseCase{
		templateRepo: templateRepo,
		renderer:     renderer,
		email:        email,
		sms:          sms,
		logger:       logger,
	}
}

func (uc *DispatchUseCase) Execute(ctx context.Context, cmd SendMessageCommand) error {
	if cmd.TemplateName == "" {
		return errors.NewValidationError("template name is required")
	}
	if cmd.Recipient == "" {
		return errors.NewValidationError("recipient is required")
	}

	t, err := uc.templateRepo.GetByName(ctx, cmd.TemplateName)
	if err != nil {
		return err
	}

	body := substitute(t.Body(), cmd.Data)

	switch t.Kind() {
	case notification.TemplateKindEmail:
		html, err := uc.renderer.Render(body)
		if err != nil {
			uc.logger.Errorw("failed to render email body", "template", cmd.TemplateName, "error", err)
			return errors.NewInternalError("failed to render template")
		}
		subject := substitute(t.Subject(), cmd.Data)
		if err := uc.email.Send(cmd.Recipient, subject, html, body); err != nil {
			uc.logger.Errorw("failed to send email", "template", cmd.TemplateName, "error", err)
			return errors.NewInternalError("failed to send email")
		}
	case notification.TemplateKindSMS:
		if err := uc.sms.Send(ctx, cmd.Recipient, body); err != nil {
			uc.logger.Errorw("failed to send sms", "template", cmd.TemplateName, "error", err)
			return errors.NewInternalError("failed to send sms")
		}
	default:
		return errors.NewValidationError("unsupported template kind")
	}

	uc.logger.Infow("message dispatched", "template", cmd.TemplateName, "kind", t.Kind().String())
	return nil
}
