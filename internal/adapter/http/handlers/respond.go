package handlers

import (
	"math"
	"net/http"

	"github.com/gin-gonic/gin"

	"todoboard/internal/adapter/http/dto"
	"todoboard/pkg/apierrors"
	"todoboard/pkg/translator"
)

// Success message keys, resolved through the translation bundle.
const (
	msgTodoCreated = "todoCreated"
	msgTodoUpdated = "todoUpdated"
	msgTodoDeleted = "todoDeleted"
	msgNoteAdded   = "noteAdded"
	msgUserCreated = "userCreated"
)

func respondSuccess(c *gin.Context, status int, data any, msgKey string, lang string) {
	resp := dto.SuccessResponse{Data: data}
	if msgKey != "" {
		resp.Message = translator.Localize(lang, msgKey)
	}
	c.JSON(status, resp)
}

func respondError(c *gin.Context, status int, msgKey string, lang string) {
	respondErrorMessage(c, status, translator.Localize(lang, msgKey))
}

func respondErrorMessage(c *gin.Context, status int, message string) {
	c.JSON(status, dto.ErrorResponse{Data: nil, Error: message})
}

func respondValidationError(c *gin.Context, verr *apierrors.ValidationError, lang string) {
	respondErrorMessage(c, http.StatusBadRequest, verr.Localize(lang))
}

func respondPaginated(c *gin.Context, data any, total int64, page, limit int) {
	totalPages := int(math.Ceil(float64(total) / float64(limit)))
	c.JSON(http.StatusOK, dto.PaginatedResponse{
		Data: data,
		Pagination: dto.Pagination{
			Total:      total,
			Page:       page,
			Limit:      limit,
			TotalPages: totalPages,
		},
	})
}
