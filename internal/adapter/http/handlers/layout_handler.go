package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	response "plotsite/internal/adapter/http/dto/response"
	"plotsite/internal/domain/layout"
	"plotsite/internal/usecase"
	"plotsite/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidSelected = pkg.NewDomainErrorSimple("INVALID_SELECTED", "selected must be a plot number", http.StatusBadRequest)
)

// LayoutHandler serves the site plan as JSON shapes or as a drawing.
type LayoutHandler struct {
	usecase   usecase.ILayoutUseCase
	selection usecase.ISelectionUseCase
}

func NewLayoutHandler(uc usecase.ILayoutUseCase, selection usecase.ISelectionUseCase) *LayoutHandler {
	return &LayoutHandler{usecase: uc, selection: selection}
}

func (h *LayoutHandler) ListModes(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromModes(h.usecase.Modes()))
}

// GetLayout returns the computed shapes of one rendering mode.
func (h *LayoutHandler) GetLayout(c *gin.Context) {
	l, err := h.usecase.Compute(c.Request.Context(), c.Param("mode"))
	if err != nil {
		appErr := mapLayoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, l)
}

func (h *LayoutHandler) RenderSVG(c *gin.Context) {
	h.render(c, usecase.RenderFormatSVG)
}

func (h *LayoutHandler) RenderPNG(c *gin.Context) {
	h.render(c, usecase.RenderFormatPNG)
}

// render draws the plan with the parcel from ?selected= highlighted, or the
// one selected in ?session= when no explicit id is given.
func (h *LayoutHandler) render(c *gin.Context, format usecase.RenderFormat) {
	mode := c.Param("mode")
	selected, appErr := h.resolveSelected(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out, err := h.usecase.Render(c.Request.Context(), mode, format, selected)
	if err != nil {
		log.Printf("[layout][handler] render failed mode=%s format=%s err=%v", mode, format, err)
		appErr := mapLayoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, out.ContentType, out.Body)
}

func (h *LayoutHandler) resolveSelected(c *gin.Context) (*int, *pkg.AppError) {
	if raw := strings.TrimSpace(c.Query("selected")); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			return nil, errInvalidSelected
		}
		return &id, nil
	}

	sessionID := strings.TrimSpace(c.Query("session"))
	if sessionID == "" || h.selection == nil {
		return nil, nil
	}
	s, err := h.selection.Get(c.Request.Context(), sessionID)
	if err != nil {
		return nil, mapSessionError(err)
	}
	if id, ok := s.State.Selected(); ok {
		return &id, nil
	}
	return nil, nil
}

func mapLayoutError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, layout.ErrUnknownMode):
		return pkg.NewDomainErrorSimple("UNKNOWN_MODE", "Unknown layout mode", http.StatusNotFound)
	case errors.Is(err, usecase.ErrUnsupportedFormat):
		return pkg.NewDomainErrorSimple("UNSUPPORTED_FORMAT", "Unsupported render format", http.StatusBadRequest)
	default:
		return mapCatalogError(err)
	}
}
