package ticket

import (
	"fmt"
	"time"

	"flowdesk/internal/shared/biztime"
)

type Comment struct {
	id        uint
	ticketID  uint
	authorID  uint
	content   string
	ctype     CommentType
	createdAt time.Time
	updatedAt time.Time
}

func NewComment(
	ticketID uint,
	authorID uint,
	content string,
	ctype CommentType,
) (*Comment, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("content cannot be empty")
	}
	if len(content) > 5000 {
		return nil, fmt.Errorf("content exceeds maximum length of 5000 characters")
	}
	if !ctype.IsValid() {
		return nil, fmt.Errorf("invalid comment type")
	}

	now := biztime.NowUTC()
	return &Comment{
		ticketID:  ticketID,
		authorID:  authorID,
		content:   content,
		ctype:     ctype,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructComment(
	id uint,
	ticketID uint,
	authorID uint,
	content string,
	ctype CommentType,
	createdAt, updatedAt time.Time,
) (*Comment, error) {
	if id == 0 {
		return nil, fmt.Errorf("comment ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}
	if !ctype.IsValid() {
		return nil, fmt.Errorf("invalid comment type")
	}

	return &Comment{
		id:        id,
		ticketID:  ticketID,
		authorID:  authorID,
		content:   content,
		ctype:     ctype,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (c *Comment) ID() uint {
	return c.id
}

func (c *Comment) TicketID() uint {
	return c.ticketID
}

func (c *Comment) AuthorID() uint {
	return c.authorID
}

func (c *Comment) Content() string {
	return c.content
}

func (c *Comment) Type() CommentType {
	return c.ctype
}

func (c *Comment) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Comment) UpdatedAt() time.Time {
	return c.updatedAt
}

func (c *Comment) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("comment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("comment ID cannot be zero")
	}
	c.id = id
	return nil
}

// Counted reports whether this comment contributes to the ticket's
// denormalized comment count.
func (c *Comment) Counted() bool {
	return c.ctype.Counted()
}

func (c *Comment) UpdateContent(content string) error {
	if len(content) == 0 {
		return fmt.Errorf("content cannot be empty")
	}
	if len(content) > 5000 {
		return fmt.Errorf("content exceeds maximum length of 5000 characters")
	}

	c.content = content
	c.updatedAt = biztime.NowUTC()
	return nil
}
