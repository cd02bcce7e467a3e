package mapper

import (
	"time"

	"todoboard/internal/adapter/http/dto"
	"todoboard/internal/core/domain"
)

func ToTodoItems(todos []domain.Todo) []dto.TodoItem {
	items := make([]dto.TodoItem, 0, len(todos))
	for _, todo := range todos {
		items = append(items, ToTodoItem(todo))
	}
	return items
}

func ToTodoItem(todo domain.Todo) dto.TodoItem {
	item := dto.TodoItem{
		ID:            todo.ID,
		Title:         todo.Title,
		Priority:      string(todo.Priority),
		Completed:     todo.Completed,
		Tags:          todo.Tags,
		AssignedUsers: todo.AssignedUsers,
		CreatedAt:     todo.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     todo.UpdatedAt.Format(time.RFC3339),
	}

	if todo.Description != nil {
		value := *todo.Description
		item.Description = &value
	}

	// Keep lists serializable as [] rather than null.
	if item.Tags == nil {
		item.Tags = []string{}
	}
	if item.AssignedUsers == nil {
		item.AssignedUsers = []string{}
	}

	notes := make([]dto.NoteItem, 0, len(todo.Notes))
	for _, note := range todo.Notes {
		notes = append(notes, dto.NoteItem{
			ID:        note.ID,
			Content:   note.Content,
			CreatedAt: note.CreatedAt.Format(time.RFC3339),
			UpdatedAt: note.UpdatedAt.Format(time.RFC3339),
		})
	}
	item.Notes = notes

	return item
}
