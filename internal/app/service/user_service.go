package service

import (
	"context"

	"todoboard/internal/core/domain"
	"todoboard/internal/core/ports"
)

type UserService struct {
	userRepository ports.UserRepository
}

func NewUserService(userRepository ports.UserRepository) *UserService {
	return &UserService{userRepository: userRepository}
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.userRepository.List(ctx)
}

func (s *UserService) Create(ctx context.Context, input domain.UserInput) (domain.User, error) {
	return s.userRepository.Create(ctx, input)
}

var _ ports.UserService = (*UserService)(nil)
