package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"todoboard/internal/adapter/http/dto"
	"todoboard/internal/adapter/http/mapper"
	"todoboard/internal/adapter/http/middleware"
	"todoboard/internal/adapter/http/validation"
	"todoboard/internal/core/domain"
	"todoboard/internal/core/ports"
	"todoboard/pkg/apierrors"
)

type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	lang := middleware.GetLang(c)

	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		zap.L().Error("failed to list users", zap.Error(err))
		respondError(c, http.StatusInternalServerError, apierrors.MsgFailListUsers, lang)
		return
	}

	respondSuccess(c, http.StatusOK, mapper.ToUserItems(users), "", lang)
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidPayload, lang)
		return
	}

	input, err := validation.BuildUserInput(req)
	if err != nil {
		var verr *apierrors.ValidationError
		if errors.As(err, &verr) {
			respondValidationError(c, verr, lang)
			return
		}
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidPayload, lang)
		return
	}

	user, err := h.userService.Create(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			respondError(c, http.StatusBadRequest, apierrors.MsgUserExists, lang)
			return
		}

		zap.L().Error("failed to create user", zap.Error(err))
		respondError(c, http.StatusInternalServerError, apierrors.MsgFailCreateUser, lang)
		return
	}

	respondSuccess(c, http.StatusCreated, mapper.ToUserItem(user), msgUserCreated, lang)
}
