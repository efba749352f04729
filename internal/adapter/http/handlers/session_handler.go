package handlers

import (
	"context"
	"errors"
	"net/http"

	request "plotsite/internal/adapter/http/dto/request"
	response "plotsite/internal/adapter/http/dto/response"
	"plotsite/internal/domain/selection"
	"plotsite/internal/usecase"
	"plotsite/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidSelectPayload = pkg.NewDomainErrorSimple("INVALID_SELECTION_INPUT", "Invalid selection payload", http.StatusBadRequest)
)

// SessionHandler exposes the per-visitor selection state.
type SessionHandler struct {
	usecase usecase.ISelectionUseCase
}

func NewSessionHandler(uc usecase.ISelectionUseCase) *SessionHandler {
	return &SessionHandler{usecase: uc}
}

func (h *SessionHandler) Create(c *gin.Context) {
	s, err := h.usecase.CreateSession(c.Request.Context())
	if err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromSession(s))
}

func (h *SessionHandler) Get(c *gin.Context) {
	h.respond(c, h.usecase.Get)
}

// Select toggles (or replaces) the selected plot. Selecting a sold plot
// leaves the state unchanged and still answers 200.
func (h *SessionHandler) Select(c *gin.Context) {
	var payload request.SelectParcelRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSelectPayload.HTTPStatus, errInvalidSelectPayload.ToHTTPError())
		return
	}

	s, err := h.usecase.SelectParcel(c.Request.Context(), c.Param("id"), payload.ParcelID)
	if err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSession(s))
}

func (h *SessionHandler) Clear(c *gin.Context) {
	h.respond(c, h.usecase.ClearSelection)
}

func (h *SessionHandler) OpenInquiry(c *gin.Context) {
	h.respond(c, h.usecase.OpenInquiry)
}

// CloseInquiry dismisses the dialog. The selected plot is kept.
func (h *SessionHandler) CloseInquiry(c *gin.Context) {
	h.respond(c, h.usecase.CloseInquiry)
}

func (h *SessionHandler) respond(c *gin.Context, op func(ctx context.Context, id string) (selection.Session, error)) {
	s, err := op(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSession(s))
}

func mapSessionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSessionID):
		return pkg.NewDomainErrorSimple("INVALID_SESSION_ID", "Invalid session id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Session not found", http.StatusNotFound)
	default:
		return mapCatalogError(err)
	}
}
