package domain

import "errors"

var (
	ErrTodoNotFound = errors.New("todo not found")
	ErrUserExists   = errors.New("user already exists")
)
