package board

import (
	"fmt"
	"time"

	"flowdesk/internal/shared/biztime"
)

type Column struct {
	id        uint
	title     string
	status    string
	sortOrder int
	createdAt time.Time
	updatedAt time.Time
}

func NewColumn(title, status string, sortOrder int) (*Column, error) {
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > 100 {
		return nil, fmt.Errorf("title exceeds maximum length of 100 characters")
	}
	if len(status) == 0 {
		return nil, fmt.Errorf("status is required")
	}
	if sortOrder < 0 {
		return nil, fmt.Errorf("sort order cannot be negative")
	}

	now := biztime.NowUTC()
	return &Column{
		title:     title,
		status:    status,
		sortOrder: sortOrder,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructColumn(
	id uint,
	title string,
	status string,
	sortOrder int,
	createdAt, updatedAt time.Time,
) (*Column, error) {
	if id == 0 {
		return nil, fmt.Errorf("column ID cannot be zero")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}

	return &Column{
		id:        id,
		title:     title,
		status:    status,
		sortOrder: sortOrder,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

// DefaultColumns returns the four columns seeded into an empty board.
func DefaultColumns() []*Column {
	now := biztime.NowUTC()
	defaults := []struct {
		title  string
		status string
	}{
		{"Todo", "todo"},
		{"InProgress", "in_progress"},
		{"Review", "review"},
		{"Done", "done"},
	}

	columns := make([]*Column, len(defaults))
	for i, d := range defaults {
		columns[i] = &Column{
			title:     d.title,
			status:    d.status,
			sortOrder: i,
			createdAt: now,
			updatedAt: now,
		}
	}
	return columns
}

func (c *Column) ID() uint {
	return c.id
}

func (c *Column) Title() string {
	return c.title
}

func (c *Column) Status() string {
	return c.status
}

func (c *Column) SortOrder() int {
	return c.sortOrder
}

func (c *Column) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Column) UpdatedAt() time.Time {
	return c.updatedAt
}

func (c *Column) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("column ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("column ID cannot be zero")
	}
	c.id = id
	return nil
}

func (c *Column) Rename(title string) error {
	if len(title) == 0 {
		return fmt.Errorf("title cannot be empty")
	}
	if len(title) > 100 {
		return fmt.Errorf("title exceeds maximum length of 100 characters")
	}
	c.title = title
	c.updatedAt = biztime.NowUTC()
	return nil
}

func (c *Column) SetSortOrder(sortOrder int) error {
	if sortOrder < 0 {
		return fmt.Errorf("sort order cannot be negative")
	}
	c.sortOrder = sortOrder
	c.updatedAt = biztime.NowUTC()
	return nil
}
