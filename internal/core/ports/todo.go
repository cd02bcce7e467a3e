package ports

import (
	"context"

	"todoboard/internal/core/domain"
)

type TodoRepository interface {
	List(ctx context.Context, query domain.TodoQuery) ([]domain.Todo, int64, error)
	GetByID(ctx context.Context, id string) (domain.Todo, error)
	Create(ctx context.Context, input domain.TodoInput) (domain.Todo, error)
	Update(ctx context.Context, id string, input domain.TodoInput) (domain.Todo, error)
	Delete(ctx context.Context, id string) error
	AddNote(ctx context.Context, id string, content string) (domain.Todo, error)
	Export(ctx context.Context, user *string) ([]domain.Todo, error)
}

type TodoService interface {
	List(ctx context.Context, query domain.TodoQuery) ([]domain.Todo, int64, error)
	GetByID(ctx context.Context, id string) (domain.Todo, error)
	Create(ctx context.Context, input domain.TodoInput) (domain.Todo, error)
	Update(ctx context.Context, id string, input domain.TodoInput) (domain.Todo, error)
	Delete(ctx context.Context, id string) error
	AddNote(ctx context.Context, id string, content string) (domain.Todo, error)
	Export(ctx context.Context, user *string) ([]domain.Todo, error)
}
