package usecases

import "context"

// Renderer converts a template's markdown body to sanitized HTML.
type Renderer interface {
	Render(markdown string) (string, error)
}

// EmailGateway delivers rendered email messages.
type EmailGateway interface {
	Send(to, subject, htmlBody, plainBody string) error
}

// SMSGateway delivers plain-text SMS messages.
type SMSGateway interface {
	Send(ctx context.Context, to, message string) error
}
