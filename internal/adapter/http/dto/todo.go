package dto

import "encoding/json"

// StringList tolerates any JSON shape: only an array of strings is
// kept, everything else coerces to an empty list.
type StringList []string

func (s *StringList) UnmarshalJSON(data []byte) error {
	var values []string
	if err := json.Unmarshal(data, &values); err != nil {
		*s = StringList{}
		return nil
	}
	*s = values
	return nil
}

type TodoRequest struct {
	Title         string     `json:"title"`
	Description   *string    `json:"description"`
	Priority      *string    `json:"priority"`
	Completed     *bool      `json:"completed"`
	Tags          StringList `json:"tags"`
	AssignedUsers StringList `json:"assignedUsers"`
}

type NoteRequest struct {
	Content string `json:"content"`
}

type NoteItem struct {
	ID        string `json:"_id"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

type TodoItem struct {
	ID            string     `json:"_id"`
	Title         string     `json:"title"`
	Description   *string    `json:"description,omitempty"`
	Priority      string     `json:"priority"`
	Completed     bool       `json:"completed"`
	Tags          []string   `json:"tags"`
	AssignedUsers []string   `json:"assignedUsers"`
	Notes         []NoteItem `json:"notes"`
	CreatedAt     string     `json:"createdAt"`
	UpdatedAt     string     `json:"updatedAt"`
}
