package usecases

import (
	"context"

	"flowdesk/internal/domain/ticket"
	"flowdesk/internal/shared/logger"
	"flowdesk/internal/shared/query"
)

type ListTicketsQuery struct {
	Status     string
	Priority   string
	CreatorID  *uint
	AssigneeID *uint
	Page       int
	PageSize   int
	SortBy     string
	SortOrder  string
}

type ListTicketsResult struct {
	Tickets []*TicketDTO
	Total   int64
}

type ListTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewListTicketsUseCase(ticketRepo ticket.TicketRepository, logger logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, q ListTicketsQuery) (*ListTicketsResult, error) {
	filter := ticket.TicketFilter{
		BaseFilter: query.BaseFilter{
			PageFilter: query.PageFilter{Page: q.Page, PageSize: q.PageSize},
			SortFilter: query.SortFilter{SortBy: q.SortBy, SortOrder: q.SortOrder},
		},
		CreatorID:  q.CreatorID,
		AssigneeID: q.AssigneeID,
	}

	if q.Status != "" {
		status := ticket.Status(q.Status)
		filter.Status = &status
	}
	if q.Priority != "" {
		priority := ticket.Priority(q.Priority)
		filter.Priority = &priority
	}

	tickets, total, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, err
	}

	dtos := make([]*TicketDTO, len(tickets))
	for i, t := range tickets {
		dtos[i] = NewTicketDTO(t)
	}

	return &ListTicketsResult{Tickets: dtos, Total: total}, nil
}
