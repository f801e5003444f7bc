package usecases

import (
	"context"
	"strings"

	"flowdesk/internal/domain/notification"
	"flowdesk/internal/shared/errors"
	"flowdesk/internal/shared/logger"
	"flowdesk/internal/shared/query"
)

type ListTemplatesQuery struct {
	query.BaseFilter
	Kind *string
}

type ListTemplatesResult struct {
	Templates []*TemplateDTO `json:"templates"`
	Total     int64          `json:"total"`
}

type CreateTemplateCommand struct {
	Name    string
	Kind    string
	Subject string
	Body    string
}

type UpdateTemplateCommand struct {
	TemplateID uint
	Name       string
	Subject    string
	Body       string
}

type DeleteTemplateCommand struct {
	TemplateID uint
}

type RenderTemplateCommand struct {
	TemplateID uint
	// Data replaces {{key}} placeholders in the subject and body before
	// rendering.
	Data map[string]string
}

type RenderedTemplate struct {
	Subject string `json:"subject,omitempty"`
	HTML    string `json:"html"`
}

type TemplateUseCases struct {
	templateRepo notification.TemplateRepository
	renderer     Renderer
	logger       logger.Interface
}

func NewTemplateUseCases(
	templateRepo notification.TemplateRepository,
	renderer Renderer,
	logger logger.Interface,
) *TemplateUseCases {
	return &TemplateUseCases{
		templateRepo: templateRepo,
		renderer:     renderer,
		logger:       logger,
	}
}

func (uc *TemplateUseCases) List(ctx context.Context, q ListTemplatesQuery) (*ListTemplatesResult, error) {
	filter := notification.TemplateFilter{BaseFilter: q.BaseFilter}
	if q.Kind != nil {
		kind := notification.TemplateKind(*q.Kind)
		if !kind.IsValid() {
			return nil, errors.NewValidationError("invalid template kind")
		}
		filter.Kind = &kind
	}

	templates, total, err := uc.templateRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list templates", "error", err)
		return nil, err
	}

	dtos := make([]*TemplateDTO, len(templates))
	for i, t := range templates {
		dtos[i] = NewTemplateDTO(t)
	}
	return &ListTemplatesResult{Templates: dtos, Total: total}, nil
}

func (uc *TemplateUseCases) Create(ctx context.Context, cmd CreateTemplateCommand) (*TemplateDTO, error) {
	kind := notification.TemplateKind(cmd.Kind)
	if !kind.IsValid() {
		return nil, errors.NewValidationError("invalid template kind")
	}

	t, err := notification.NewTemplate(cmd.Name, kind, cmd.Subject, cmd.Body)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.templateRepo.Save(ctx, t); err != nil {
		uc.logger.Errorw("failed to create template", "name", cmd.Name, "error", err)
		return nil, err
	}

	uc.logger.Infow("template created", "template_id", t.ID(), "kind", kind.String())
	return NewTemplateDTO(t), nil
}

func (uc *TemplateUseCases) Update(ctx context.Context, cmd UpdateTemplateCommand) (*TemplateDTO, error) {
	if cmd.TemplateID == 0 {
		return nil, errors.NewValidationError("template ID is required")
	}

	t, err := uc.templateRepo.GetByID(ctx, cmd.TemplateID)
	if err != nil {
		return nil, err
	}

	if err := t.Update(cmd.Name, cmd.Subject, cmd.Body); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.templateRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update template", "template_id", cmd.TemplateID, "error", err)
		return nil, err
	}

	return NewTemplateDTO(t), nil
}

func (uc *TemplateUseCases) Delete(ctx context.Context, cmd DeleteTemplateCommand) error {
	if cmd.TemplateID == 0 {
		return errors.NewValidationError("template ID is required")
	}

	if _, err := uc.templateRepo.GetByID(ctx, cmd.TemplateID); err != nil {
		return err
	}

	if err := uc.templateRepo.Delete(ctx, cmd.TemplateID); err != nil {
		uc.logger.Errorw("failed to delete template", "template_id", cmd.TemplateID, "error", err)
		return err
	}

	uc.logger.Infow("template deleted", "template_id", cmd.TemplateID)
	return nil
}

// Render substitutes placeholders and converts the markdown body to
// sanitized HTML.
func (uc *TemplateUseCases) Render(ctx context.Context, cmd RenderTemplateCommand) (*RenderedTemplate, error) {
	if cmd.TemplateID == 0 {
		return nil, errors.NewValidationError("template ID is required")
	}

	t, err := uc.templateRepo.GetByID(ctx, cmd.TemplateID)
	if err != nil {
		return nil, err
	}

	html, err := uc.renderer.Render(substitute(t.Body(), cmd.Data))
	if err != nil {
		uc.logger.Errorw("failed to render template", "template_id", cmd.TemplateID, "error", err)
		return nil, errors.NewInternalError("failed to render template")
	}

	return &RenderedTemplate{
		Subject: substitute(t.Subject(), cmd.Data),
		HTML:    html,
	}, nil
}

func substitute(s string, data map[string]string) string {
	for key, value := range data {
		s = strings.ReplaceAll(s, "{{"+key+"}}", value)
	}
	return s
}
