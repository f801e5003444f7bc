package usecases

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flowdesk/internal/domain/notification"
	"flowdesk/internal/shared/errors"
	"flowdesk/internal/shared/logger"
)

type mockTemplateRepository struct {
	SaveFunc      func(ctx context.Context, t *notification.Template) error
	UpdateFunc    func(ctx context.Context, t *notification.Template) error
	DeleteFunc    func(ctx context.Context, templateID uint) error
	GetByIDFunc   func(ctx context.Context, templateID uint) (*notification.Template, error)
	GetByNameFunc func(ctx context.Context, name string) (*notification.Template, error)
	ListFunc      func(ctx context.Context, filter notification.TemplateFilter) ([]*notification.Template, int64, error)
}

func (m *mockTemplateRepository) Save(ctx context.Context, t *notification.Template) error {
	return m.SaveFunc(ctx, t)
}

func (m *mockTemplateRepository) Update(ctx context.Context, t *notification.Template) error {
	return m.UpdateFunc(ctx, t)
}

func (m *mockTemplateRepository) Delete(ctx context.Context, templateID uint) error {
	return m.DeleteFunc(ctx, templateID)
}

func (m *mockTemplateRepository) GetByID(ctx context.Context, templateID uint) (*notification.Template, error) {
	return m.GetByIDFunc(ctx, templateID)
}

func (m *mockTemplateRepository) GetByName(ctx context.Context, name string) (*notification.Template, error) {
	return m.GetByNameFunc(ctx, name)
}

func (m *mockTemplateRepository) List(ctx context.Context, filter notification.TemplateFilter) ([]*notification.Template, int64, error) {
	return m.ListFunc(ctx, filter)
}

type passthroughRenderer struct{}

func (passthroughRenderer) Render(markdown string) (string, error) {
	return "<p>" + markdown + "</p>", nil
}

type recordingEmailGateway struct {
	to, subject, html, plain string
	err                      error
	sent                     bool
}

func (g *recordingEmailGateway) Send(to, subject, htmlBody, plainBody string) error {
	g.sent = true
	g.to = to
	g.subject = subject
	g.html = htmlBody
	g.plain = plainBody
	return g.err
}

type recordingSMSGateway struct {
	to, message string
	err         error
	sent        bool
}

func (g *recordingSMSGateway) Send(_ context.Context, to, message string) error {
	g.sent = true
	g.to = to
	g.message = message
	return g.err
}

func testLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func reconstructTemplate(t *testing.T, id uint, name string, kind notification.TemplateKind, subject, body string) *notification.Template {
	t.Helper()
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	tpl, err := notification.ReconstructTemplate(id, name, kind, subject, body, now, now)
	require.NoError(t, err)
	return tpl
}

func TestDispatchUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("email templates go through the email gateway", func(t *testing.T) {
		repo := &mockTemplateRepository{
			GetByNameFunc: func(_ context.Context, name string) (*notification.Template, error) {
				assert.Equal(t, "welcome", name)
				return reconstructTemplate(t, 1, "welcome", notification.TemplateKindEmail,
					"Welcome, {{name}}!", "Hello {{name}}, your account is ready."), nil
			},
		}
		email := &recordingEmailGateway{}
		sms := &recordingSMSGateway{}

		uc := NewDispatchUseCase(repo, passthroughRenderer{}, email, sms, testLogger())
		err := uc.Execute(ctx, SendMessageCommand{
			TemplateName: "welcome",
			Recipient:    "dana@example.com",
			Data:         map[string]string{"name": "Dana"},
		})
		require.NoError(t, err)

		assert.True(t, email.sent)
		assert.False(t, sms.sent)
		assert.Equal(t, "dana@example.com", email.to)
		assert.Equal(t, "Welcome, Dana!", email.subject)
		assert.Contains(t, email.html, "Hello Dana")
		assert.Equal(t, "Hello Dana, your account is ready.", email.plain)
	})

	t.Run("sms templates go through the sms gateway", func(t *testing.T) {
		repo := &mockTemplateRepository{
			GetByNameFunc: func(_ context.Context, _ string) (*notification.Template, error) {
				return reconstructTemplate(t, 2, "otp", notification.TemplateKindSMS,
					"", "Your code is {{code}}"), nil
			},
		}
		email := &recordingEmailGateway{}
		sms := &recordingSMSGateway{}

		uc := NewDispatchUseCase(repo, passthroughRenderer{}, email, sms, testLogger())
		err := uc.Execute(ctx, SendMessageCommand{
			TemplateName: "otp",
			Recipient:    "+15551234567",
			Data:         map[string]string{"code": "482913"},
		})
		require.NoError(t, err)

		assert.True(t, sms.sent)
		assert.False(t, email.sent)
		assert.Equal(t, "+15551234567", sms.to)
		assert.Equal(t, "Your code is 482913", sms.message)
	})

	t.Run("gateway failure maps to internal error", func(t *testing.T) {
		repo := &mockTemplateRepository{
			GetByNameFunc: func(_ context.Context, _ string) (*notification.Template, error) {
				return reconstructTemplate(t, 2, "otp", notification.TemplateKindSMS, "", "code"), nil
			},
		}
		sms := &recordingSMSGateway{err: errors.NewInternalError("provider down")}

		uc := NewDispatchUseCase(repo, passthroughRenderer{}, &recordingEmailGateway{}, sms, testLogger())
		err := uc.Execute(ctx, SendMessageCommand{TemplateName: "otp", Recipient: "+15551234567"})
		require.Error(t, err)

		appErr := errors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrorTypeInternal, appErr.Type)
	})

	t.Run("unknown template is not found", func(t *testing.T) {
		repo := &mockTemplateRepository{
			GetByNameFunc: func(_ context.Context, _ string) (*notification.Template, error) {
				return nil, errors.NewNotFoundError("template not found")
			},
		}

		uc := NewDispatchUseCase(repo, passthroughRenderer{}, &recordingEmailGateway{}, &recordingSMSGateway{}, testLogger())
		err := uc.Execute(ctx, SendMessageCommand{TemplateName: "missing", Recipient: "dana@example.com"})
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("validation failures", func(t *testing.T) {
		uc := NewDispatchUseCase(&mockTemplateRepository{}, passthroughRenderer{}, &recordingEmailGateway{}, &recordingSMSGateway{}, testLogger())

		err := uc.Execute(ctx, SendMessageCommand{Recipient: "dana@example.com"})
		assert.True(t, errors.IsValidationError(err))

		err = uc.Execute(ctx, SendMessageCommand{TemplateName: "welcome"})
		assert.True(t, errors.IsValidationError(err))
	})
}

func TestTemplateUseCases_Render(t *testing.T) {
	ctx := context.Background()

	t.Run("substitutes placeholders in subject and body", func(t *testing.T) {
		repo := &mockTemplateRepository{
			GetByIDFunc: func(_ context.Context, _ uint) (*notification.Template, error) {
				return reconstructTemplate(t, 1, "welcome", notification.TemplateKindEmail,
					"Hi {{name}}", "Welcome aboard, {{name}}."), nil
			},
		}

		uc := NewTemplateUseCases(repo, passthroughRenderer{}, testLogger())
		rendered, err := uc.Render(ctx, RenderTemplateCommand{
			TemplateID: 1,
			Data:       map[string]string{"name": "Dana"},
		})
		require.NoError(t, err)
		assert.Equal(t, "Hi Dana", rendered.Subject)
		assert.Contains(t, rendered.HTML, "Welcome aboard, Dana.")
	})

	t.Run("unreplaced placeholders survive verbatim", func(t *testing.T) {
		repo := &mockTemplateRepository{
			GetByIDFunc: func(_ context.Context, _ uint) (*notification.Template, error) {
				return reconstructTemplate(t, 1, "welcome", notification.TemplateKindEmail,
					"Hi {{name}}", "Body"), nil
			},
		}

		uc := NewTemplateUseCases(repo, passthroughRenderer{}, testLogger())
		rendered, err := uc.Render(ctx, RenderTemplateCommand{TemplateID: 1})
		require.NoError(t, err)
		assert.Equal(t, "Hi {{name}}", rendered.Subject)
	})
}

func TestTemplateUseCases_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects email template without subject", func(t *testing.T) {
		uc := NewTemplateUseCases(&mockTemplateRepository{}, passthroughRenderer{}, testLogger())
		_, err := uc.Create(ctx, CreateTemplateCommand{Name: "welcome", Kind: "email", Body: "hi"})
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("rejects unknown kind", func(t *testing.T) {
		uc := NewTemplateUseCases(&mockTemplateRepository{}, passthroughRenderer{}, testLogger())
		_, err := uc.Create(ctx, CreateTemplateCommand{Name: "push", Kind: "push", Body: "hi"})
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("sms template needs no subject", func(t *testing.T) {
		repo := &mockTemplateRepository{
			SaveFunc: func(_ context.Context, tpl *notification.Template) error {
				return tpl.SetID(3)
			},
		}

		uc := NewTemplateUseCases(repo, passthroughRenderer{}, testLogger())
		dto, err := uc.Create(ctx, CreateTemplateCommand{Name: "otp", Kind: "sms", Body: "Your code is {{code}}"})
		require.NoError(t, err)
		assert.Equal(t, "sms", dto.Kind)
		assert.Empty(t, dto.Subject)
	})
}
