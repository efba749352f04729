package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	request "plotsite/internal/adapter/http/dto/request"
	response "plotsite/internal/adapter/http/dto/response"
	"plotsite/internal/usecase"
	"plotsite/pkg"

	"github.com/gin-gonic/gin"
)

// InquiryFailureMessage is shown to the visitor whenever the lead could not
// be delivered.
const InquiryFailureMessage = "Something went wrong, please try again"

var (
	errInvalidInquiryPayload = pkg.NewDomainErrorSimple("INVALID_INQUIRY_INPUT", "Name and phone are required", http.StatusBadRequest)
)

// InquiryHandler accepts leads from the contact form.
type InquiryHandler struct {
	usecase   usecase.IInquiryUseCase
	selection usecase.ISelectionUseCase
}

func NewInquiryHandler(uc usecase.IInquiryUseCase, selection usecase.ISelectionUseCase) *InquiryHandler {
	return &InquiryHandler{usecase: uc, selection: selection}
}

// Submit stores and forwards one inquiry. When session_id is given the
// session's selected plot is used as a fallback for parcel_id, and the
// session's dialog is closed after the configured delay on success.
func (h *InquiryHandler) Submit(c *gin.Context) {
	var payload request.InquiryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[inquiry][handler] invalid payload err=%v", err)
		c.JSON(errInvalidInquiryPayload.HTTPStatus, errInvalidInquiryPayload.ToHTTPError())
		return
	}

	in := payload.ToInquiry()
	sessionID := payload.ResolveSessionID()
	if sessionID != "" && in.ParcelID == nil && h.selection != nil {
		if s, err := h.selection.Get(c.Request.Context(), sessionID); err == nil {
			if id, ok := s.State.Selected(); ok {
				in.ParcelID = &id
			}
		} else {
			log.Printf("[inquiry][handler] session lookup failed session_id=%s err=%v", sessionID, err)
		}
	}

	// A visitor closing the tab must not abort a lead half way through.
	ctx := context.WithoutCancel(c.Request.Context())
	res, err := h.usecase.Submit(ctx, in)
	if err != nil {
		appErr := mapInquiryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if sessionID != "" && h.selection != nil {
		h.selection.ScheduleAutoClose(sessionID, res.CloseAfter)
	}
	c.JSON(http.StatusCreated, response.FromSubmissionResult(res))
}

func mapInquiryError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInquiryName), errors.Is(err, usecase.ErrInvalidInquiryPhone):
		return errInvalidInquiryPayload
	case errors.Is(err, usecase.ErrInvalidInquiryEmail):
		return pkg.NewDomainErrorSimple("INVALID_EMAIL", "Invalid email address", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrParcelSold):
		return pkg.NewDomainErrorSimple("PARCEL_SOLD", "This plot has already been sold", http.StatusConflict)
	case errors.Is(err, usecase.ErrParcelNotFound), errors.Is(err, usecase.ErrInvalidParcelID):
		return mapCatalogError(err)
	case errors.Is(err, usecase.ErrNotificationFailed):
		return pkg.NewDomainError("INQUIRY_FAILED", InquiryFailureMessage, err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INQUIRY_FAILED", InquiryFailureMessage, err, http.StatusInternalServerError)
	}
}
