package validation

import (
	"strings"
	"time"

	"todoboard/internal/adapter/http/dto"
	"todoboard/internal/core/domain"
	"todoboard/pkg/apierrors"
)

func BuildUserInput(req dto.UserRequest) (domain.UserInput, error) {
	username := strings.TrimSpace(req.Username)
	email := strings.TrimSpace(req.Email)

	if username == "" || email == "" {
		return domain.UserInput{}, apierrors.NewValidationError(apierrors.MsgUserFieldsRequired)
	}

	now := time.Now().UTC()
	return domain.UserInput{
		Username:  username,
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}
