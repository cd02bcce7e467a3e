package domain

import "time"

type User struct {
	ID        string
	Username  string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type UserInput struct {
	Username  string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
