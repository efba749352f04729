package handlers

import (
	"errors"
	"net/http"
	"strconv"

	response "plotsite/internal/adapter/http/dto/response"
	"plotsite/internal/usecase"
	"plotsite/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidParcelID = pkg.NewDomainErrorSimple("INVALID_PARCEL_ID", "Invalid parcel id", http.StatusBadRequest)
)

// ParcelHandler serves the plot catalog.
type ParcelHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewParcelHandler(uc usecase.ICatalogUseCase) *ParcelHandler {
	return &ParcelHandler{usecase: uc}
}

// ListParcels returns every plot in ascending id order with its effective status.
func (h *ParcelHandler) ListParcels(c *gin.Context) {
	parcels, err := h.usecase.GetAllParcels(c.Request.Context())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromParcels(parcels))
}

func (h *ParcelHandler) GetParcel(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(errInvalidParcelID.HTTPStatus, errInvalidParcelID.ToHTTPError())
		return
	}

	parcel, err := h.usecase.GetParcel(c.Request.Context(), id)
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromParcel(parcel))
}

// GetSummary counts plots per status.
func (h *ParcelHandler) GetSummary(c *gin.Context) {
	summary, err := h.usecase.Summary(c.Request.Context())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCatalogSummary(summary))
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidParcelID):
		return errInvalidParcelID
	case errors.Is(err, usecase.ErrParcelNotFound):
		return pkg.NewDomainErrorSimple("PARCEL_NOT_FOUND", "Parcel not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidCatalog):
		return pkg.NewDomainError("INVALID_CATALOG", "The plot catalog is misconfigured", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
