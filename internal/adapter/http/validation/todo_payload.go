package validation

import (
	"strings"
	"time"

	"todoboard/internal/adapter/http/dto"
	"todoboard/internal/core/domain"
	"todoboard/pkg/apierrors"
)

// BuildTodoInput normalizes a task payload into the canonical record.
// Violations are collected rather than short-circuited so the caller
// can report them all at once, title first, then priority.
func BuildTodoInput(req dto.TodoRequest) (domain.TodoInput, error) {
	var keys []string

	title := strings.TrimSpace(req.Title)
	if title == "" {
		keys = append(keys, apierrors.MsgTitleRequired)
	}

	priority := domain.PriorityMedium
	if req.Priority != nil && *req.Priority != "" {
		priority = domain.Priority(*req.Priority)
		if !priority.Valid() {
			keys = append(keys, apierrors.MsgInvalidPriority)
		}
	}

	if len(keys) > 0 {
		return domain.TodoInput{}, apierrors.NewValidationError(keys...)
	}

	var description *string
	if req.Description != nil {
		value := strings.TrimSpace(*req.Description)
		description = &value
	}

	completed := false
	if req.Completed != nil {
		completed = *req.Completed
	}

	tags := []string(req.Tags)
	if tags == nil {
		tags = []string{}
	}
	assignedUsers := []string(req.AssignedUsers)
	if assignedUsers == nil {
		assignedUsers = []string{}
	}

	now := time.Now().UTC()
	return domain.TodoInput{
		Title:         title,
		Description:   description,
		Priority:      priority,
		Completed:     completed,
		Tags:          tags,
		AssignedUsers: assignedUsers,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// NoteContent extracts and checks the note text.
func NoteContent(req dto.NoteRequest) (string, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return "", apierrors.NewValidationError(apierrors.MsgNoteContentRequired)
	}
	return content, nil
}
