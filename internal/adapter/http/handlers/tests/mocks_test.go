package tests

import (
	"context"

	"todoboard/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

type todoServiceMock struct {
	mock.Mock
}

func (m *todoServiceMock) List(ctx context.Context, query domain.TodoQuery) ([]domain.Todo, int64, error) {
	args := m.Called(ctx, query)

	var todos []domain.Todo
	if value := args.Get(0); value != nil {
		todos = value.([]domain.Todo)
	}
	return todos, args.Get(1).(int64), args.Error(2)
}

func (m *todoServiceMock) GetByID(ctx context.Context, id string) (domain.Todo, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Todo), args.Error(1)
}

func (m *todoServiceMock) Create(ctx context.Context, input domain.TodoInput) (domain.Todo, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Todo), args.Error(1)
}

func (m *todoServiceMock) Update(ctx context.Context, id string, input domain.TodoInput) (domain.Todo, error) {
	args := m.Called(ctx, id, input)
	return args.Get(0).(domain.Todo), args.Error(1)
}

func (m *todoServiceMock) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *todoServiceMock) AddNote(ctx context.Context, id string, content string) (domain.Todo, error) {
	args := m.Called(ctx, id, content)
	return args.Get(0).(domain.Todo), args.Error(1)
}

func (m *todoServiceMock) Export(ctx context.Context, user *string) ([]domain.Todo, error) {
	args := m.Called(ctx, user)

	var todos []domain.Todo
	if value := args.Get(0); value != nil {
		todos = value.([]domain.Todo)
	}
	return todos, args.Error(1)
}

type userServiceMock struct {
	mock.Mock
}

func (m *userServiceMock) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)

	var users []domain.User
	if value := args.Get(0); value != nil {
		users = value.([]domain.User)
	}
	return users, args.Error(1)
}

func (m *userServiceMock) Create(ctx context.Context, input domain.UserInput) (domain.User, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.User), args.Error(1)
}
