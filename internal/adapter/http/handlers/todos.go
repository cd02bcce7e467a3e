package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

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

type TodoHandler struct {
	todoService ports.TodoService
}

func NewTodoHandler(todoService ports.TodoService) *TodoHandler {
	return &TodoHandler{todoService: todoService}
}

func (h *TodoHandler) ListTodos(c *gin.Context) {
	lang := middleware.GetLang(c)

	query := validation.ParseTodoQuery(c.Request.URL.Query())
	todos, total, err := h.todoService.List(c.Request.Context(), query)
	if err != nil {
		zap.L().Error("failed to list todos", zap.Error(err))
		respondError(c, http.StatusInternalServerError, apierrors.MsgFailListTodos, lang)
		return
	}

	respondPaginated(c, mapper.ToTodoItems(todos), total, query.PageOrDefault(), query.LimitOrDefault())
}

func (h *TodoHandler) CreateTodo(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.TodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidPayload, lang)
		return
	}

	input, err := validation.BuildTodoInput(req)
	if err != nil {
		var verr *apierrors.ValidationError
		if errors.As(err, &verr) {
			respondValidationError(c, verr, lang)
			return
		}
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidPayload, lang)
		return
	}

	todo, err := h.todoService.Create(c.Request.Context(), input)
	if err != nil {
		zap.L().Error("failed to create todo", zap.Error(err))
		respondError(c, http.StatusInternalServerError, apierrors.MsgFailCreateTodo, lang)
		return
	}

	respondSuccess(c, http.StatusCreated, mapper.ToTodoItem(todo), msgTodoCreated, lang)
}

func (h *TodoHandler) GetTodo(c *gin.Context) {
	lang := middleware.GetLang(c)

	todo, err := h.todoService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrTodoNotFound) {
			respondError(c, http.StatusNotFound, apierrors.MsgTodoNotFound, lang)
			return
		}

		zap.L().Error("failed to fetch todo", zap.String("todo_id", c.Param("id")), zap.Error(err))
		respondError(c, http.StatusInternalServerError, apierrors.MsgFailFetchTodo, lang)
		return
	}

	respondSuccess(c, http.StatusOK, mapper.ToTodoItem(todo), "", lang)
}

func (h *TodoHandler) UpdateTodo(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.TodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidPayload, lang)
		return
	}

	input, err := validation.BuildTodoInput(req)
	if err != nil {
		var verr *apierrors.ValidationError
		if errors.As(err, &verr) {
			respondValidationError(c, verr, lang)
			return
		}
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidPayload, lang)
		return
	}

	todo, err := h.todoService.Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		if errors.Is(err, domain.ErrTodoNotFound) {
			respondError(c, http.StatusNotFound, apierrors.MsgTodoNotFound, lang)
			return
		}

		zap.L().Error("failed to update todo", zap.String("todo_id", c.Param("id")), zap.Error(err))
		respondError(c, http.StatusInternalServerError, apierrors.MsgFailUpdateTodo, lang)
		return
	}

	respondSuccess(c, http.StatusOK, mapper.ToTodoItem(todo), msgTodoUpdated, lang)
}

func (h *TodoHandler) DeleteTodo(c *gin.Context) {
	lang := middleware.GetLang(c)

	if err := h.todoService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrTodoNotFound) {
			respondError(c, http.StatusNotFound, apierrors.MsgTodoNotFound, lang)
			return
		}

		zap.L().Error("failed to delete todo", zap.String("todo_id", c.Param("id")), zap.Error(err))
		respondError(c, http.StatusInternalServerError, apierrors.MsgFailDeleteTodo, lang)
		return
	}

	respondSuccess(c, http.StatusOK, nil, msgTodoDeleted, lang)
}

func (h *TodoHandler) AddNote(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidPayload, lang)
		return
	}

	content, err := validation.NoteContent(req)
	if err != nil {
		var verr *apierrors.ValidationError
		if errors.As(err, &verr) {
			respondValidationError(c, verr, lang)
			return
		}
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidPayload, lang)
		return
	}

	todo, err := h.todoService.AddNote(c.Request.Context(), c.Param("id"), content)
	if err != nil {
		if errors.Is(err, domain.ErrTodoNotFound) {
			respondError(c, http.StatusNotFound, apierrors.MsgTodoNotFound, lang)
			return
		}

		zap.L().Error("failed to add note", zap.String("todo_id", c.Param("id")), zap.Error(err))
		respondError(c, http.StatusInternalServerError, apierrors.MsgFailAddNote, lang)
		return
	}

	respondSuccess(c, http.StatusOK, mapper.ToTodoItem(todo), msgNoteAdded, lang)
}

func (h *TodoHandler) ExportTodos(c *gin.Context) {
	lang := middleware.GetLang(c)

	var user *string
	name := "all"
	if raw := c.Query("user"); raw != "" && raw != validation.AllUsers {
		user = &raw
		name = raw
	}

	todos, err := h.todoService.Export(c.Request.Context(), user)
	if err != nil {
		zap.L().Error("failed to export todos", zap.Error(err))
		respondError(c, http.StatusInternalServerError, apierrors.MsgFailExportTodos, lang)
		return
	}

	payload, err := json.MarshalIndent(mapper.ToTodoItems(todos), "", "  ")
	if err != nil {
		zap.L().Error("failed to serialize export", zap.Error(err))
		respondError(c, http.StatusInternalServerError, apierrors.MsgFailExportTodos, lang)
		return
	}

	filename := fmt.Sprintf("todos-%s-%s.json", name, time.Now().UTC().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/json", payload)
}
