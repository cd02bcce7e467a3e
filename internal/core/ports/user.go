package ports

import (
	"context"

	"todoboard/internal/core/domain"
)

type UserRepository interface {
	List(ctx context.Context) ([]domain.User, error)
	Create(ctx context.Context, input domain.UserInput) (domain.User, error)
}

type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	Create(ctx context.Context, input domain.UserInput) (domain.User, error)
}
