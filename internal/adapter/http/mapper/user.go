package mapper

import (
	"time"

	"todoboard/internal/adapter/http/dto"
	"todoboard/internal/core/domain"
)

func ToUserItems(users []domain.User) []dto.UserItem {
	items := make([]dto.UserItem, 0, len(users))
	for _, user := range users {
		items = append(items, ToUserItem(user))
	}
	return items
}

func ToUserItem(user domain.User) dto.UserItem {
	return dto.UserItem{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
		UpdatedAt: user.UpdatedAt.Format(time.RFC3339),
	}
}
