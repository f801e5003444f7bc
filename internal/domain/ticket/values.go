package ticket

// Status mirrors the board column a ticket sits in.
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in_progress"
	StatusReview     Status = "review"
	StatusDone       Status = "done"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusReview, StatusDone:
		return true
	}
	return false
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

func (p Priority) String() string {
	return string(p)
}

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// CommentType distinguishes user-authored comments from system-generated ones.
// System comments never count toward a ticket's comment total.
type CommentType string

const (
	CommentTypeText   CommentType = "text"
	CommentTypeSystem CommentType = "system"
)

func (t CommentType) String() string {
	return string(t)
}

func (t CommentType) IsValid() bool {
	return t == CommentTypeText || t == CommentTypeSystem
}

// Counted reports whether comments of this type contribute to the
// denormalized comment count on the ticket.
func (t CommentType) Counted() bool {
	return t != CommentTypeSystem
}
