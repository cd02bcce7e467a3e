package domain

import "time"

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

type Note struct {
	ID        string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Todo struct {
	ID            string
	Title         string
	Description   *string
	Priority      Priority
	Completed     bool
	Tags          []string
	AssignedUsers []string
	Notes         []Note
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TodoInput is the canonical record produced by payload validation.
// Title is non-empty and trimmed, Priority is always one of the three
// known values.
type TodoInput struct {
	Title         string
	Description   *string
	Priority      Priority
	Completed     bool
	Tags          []string
	AssignedUsers []string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
