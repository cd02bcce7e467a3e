package service

import (
	"context"

	"todoboard/internal/core/domain"
	"todoboard/internal/core/ports"
)

type TodoService struct {
	todoRepository ports.TodoRepository
}

func NewTodoService(todoRepository ports.TodoRepository) *TodoService {
	return &TodoService{todoRepository: todoRepository}
}

func (s *TodoService) List(ctx context.Context, query domain.TodoQuery) ([]domain.Todo, int64, error) {
	return s.todoRepository.List(ctx, query)
}

func (s *TodoService) GetByID(ctx context.Context, id string) (domain.Todo, error) {
	return s.todoRepository.GetByID(ctx, id)
}

func (s *TodoService) Create(ctx context.Context, input domain.TodoInput) (domain.Todo, error) {
	return s.todoRepository.Create(ctx, input)
}

func (s *TodoService) Update(ctx context.Context, id string, input domain.TodoInput) (domain.Todo, error) {
	return s.todoRepository.Update(ctx, id, input)
}

func (s *TodoService) Delete(ctx context.Context, id string) error {
	return s.todoRepository.Delete(ctx, id)
}

func (s *TodoService) AddNote(ctx context.Context, id string, content string) (domain.Todo, error) {
	return s.todoRepository.AddNote(ctx, id, content)
}

func (s *TodoService) Export(ctx context.Context, user *string) ([]domain.Todo, error) {
	return s.todoRepository.Export(ctx, user)
}

var _ ports.TodoService = (*TodoService)(nil)
