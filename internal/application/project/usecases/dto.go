package usecases

import (
	"time"

	"flowdesk/internal/domain/project"
)

type SprintDTO struct {
	ID        uint       `json:"id"`
	Name      string     `json:"name"`
	Goal      string     `json:"goal,omitempty"`
	Status    string     `json:"status"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func NewSprintDTO(s *project.Sprint) *SprintDTO {
	return &SprintDTO{
		ID:        s.ID(),
		Name:      s.Name(),
		Goal:      s.Goal(),
		Status:    s.Status().String(),
		StartDate: s.StartDate(),
		EndDate:   s.EndDate(),
		CreatedAt: s.CreatedAt(),
		UpdatedAt: s.UpdatedAt(),
	}
}

type TaskDTO struct {
	ID          uint       `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Status      string     `json:"status"`
	SprintID    *uint      `json:"sprint_id,omitempty"`
	AssigneeID  *uint      `json:"assignee_id,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func NewTaskDTO(t *project.Task) *TaskDTO {
	return &TaskDTO{
		ID:          t.ID(),
		Title:       t.Title(),
		Description: t.Description(),
		Status:      t.Status().String(),
		SprintID:    t.SprintID(),
		AssigneeID:  t.AssigneeID(),
		DueDate:     t.DueDate(),
		CreatedAt:   t.CreatedAt(),
		UpdatedAt:   t.UpdatedAt(),
	}
}
