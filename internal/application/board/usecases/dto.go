package usecases

import (
	"time"

	"flowdesk/internal/domain/board"
)

type ColumnDTO struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Status    string    `json:"status"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewColumnDTO(c *board.Column) *ColumnDTO {
	return &ColumnDTO{
		ID:        c.ID(),
		Title:     c.Title(),
		Status:    c.Status(),
		SortOrder: c.SortOrder(),
		CreatedAt: c.CreatedAt(),
		UpdatedAt: c.UpdatedAt(),
	}
}
