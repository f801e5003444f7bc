package notification

import (
	"fmt"
	"time"

	"flowdesk/internal/shared/biztime"
)

type TemplateKind string

const (
	TemplateKindEmail TemplateKind = "email"
	TemplateKindSMS   TemplateKind = "sms"
)

func (k TemplateKind) String() string {
	return string(k)
}

func (k TemplateKind) IsValid() bool {
	switch k {
	case TemplateKindEmail, TemplateKindSMS:
		return true
	}
	return false
}

// Template is a reusable message body with {{placeholder}} variables.
// Email templates carry a subject; SMS templates leave it empty.
type Template struct {
	id        uint
	name      string
	kind      TemplateKind
	subject   string
	body      string
	createdAt time.Time
	updatedAt time.Time
}

func NewTemplate(name string, kind TemplateKind, subject, body string) (*Template, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("name exceeds maximum length of 100 characters")
	}
	if !kind.IsValid() {
		return nil, fmt.Errorf("invalid template kind: %s", kind)
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("body is required")
	}
	if kind == TemplateKindEmail && len(subject) == 0 {
		return nil, fmt.Errorf("email templates require a subject")
	}

	now := biztime.NowUTC()
	return &Template{
		name:      name,
		kind:      kind,
		subject:   subject,
		body:      body,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructTemplate(
	id uint,
	name string,
	kind TemplateKind,
	subject, body string,
	createdAt, updatedAt time.Time,
) (*Template, error) {
	if id == 0 {
		return nil, fmt.Errorf("template ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if !kind.IsValid() {
		return nil, fmt.Errorf("invalid template kind")
	}

	return &Template{
		id:        id,
		name:      name,
		kind:      kind,
		subject:   subject,
		body:      body,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (t *Template) ID() uint { return t.id }

func (t *Template) Name() string { return t.name }

func (t *Template) Kind() TemplateKind { return t.kind }

func (t *Template) Subject() string { return t.subject }

func (t *Template) Body() string { return t.body }

func (t *Template) CreatedAt() time.Time { return t.createdAt }

func (t *Template) UpdatedAt() time.Time { return t.updatedAt }

func (t *Template) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("template ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("template ID cannot be zero")
	}
	t.id = id
	return nil
}

func (t *Template) Update(name, subject, body string) error {
	if len(name) == 0 {
		return fmt.Errorf("name cannot be empty")
	}
	if len(name) > 100 {
		return fmt.Errorf("name exceeds maximum length of 100 characters")
	}
	if len(body) == 0 {
		return fmt.Errorf("body cannot be empty")
	}
	if t.kind == TemplateKindEmail && len(subject) == 0 {
		return fmt.Errorf("email templates require a subject")
	}

	t.name = name
	t.subject = subject
	t.body = body
	t.updatedAt = biztime.NowUTC()
	return nil
}
