package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"plotsite/internal/adapter/http/handlers/mocks"
	"plotsite/internal/domain/entities"
	"plotsite/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newParcelRouter(h *ParcelHandler) *gin.Engine {
	r := gin.New()
	r.GET("/v1/parcels", h.ListParcels)
	r.GET("/v1/parcels/summary", h.GetSummary)
	r.GET("/v1/parcels/:id", h.GetParcel)
	return r
}

func TestParcelHandler_ListParcels(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		uc.EXPECT().GetAllParcels(gomock.Any()).Return([]entities.Parcel{
			{ID: 1, Width: entities.DimensionFromFeet(50), Depth: entities.DimensionFromFeet(30), Status: entities.ParcelStatusSold},
			{ID: 3, Width: entities.MustParseDimension(`57'-6"`), Depth: entities.DimensionFromFeet(30), Status: entities.ParcelStatusAvailable},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/parcels", nil)
		w := httptest.NewRecorder()
		newParcelRouter(NewParcelHandler(uc)).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if len(body) != 2 || body[0]["status"] != "sold" || body[1]["width"] != `57'-6"` {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("usecase error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		uc.EXPECT().GetAllParcels(gomock.Any()).Return(nil, errors.New("db down"))

		req := httptest.NewRequest(http.MethodGet, "/v1/parcels", nil)
		w := httptest.NewRecorder()
		newParcelRouter(NewParcelHandler(uc)).ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestParcelHandler_GetParcel(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("non numeric id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)

		req := httptest.NewRequest(http.MethodGet, "/v1/parcels/abc", nil)
		w := httptest.NewRecorder()
		newParcelRouter(NewParcelHandler(uc)).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		uc.EXPECT().GetParcel(gomock.Any(), 99).Return(entities.Parcel{}, usecase.ErrParcelNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/parcels/99", nil)
		w := httptest.NewRecorder()
		newParcelRouter(NewParcelHandler(uc)).ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		uc.EXPECT().GetParcel(gomock.Any(), 9).Return(entities.Parcel{
			ID: 9, Width: entities.DimensionFromFeet(40), Depth: entities.DimensionFromFeet(60), Status: entities.ParcelStatusAvailable,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/parcels/9", nil)
		w := httptest.NewRecorder()
		newParcelRouter(NewParcelHandler(uc)).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["plot_number"] != "Plot #9" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestParcelHandler_GetSummary(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockICatalogUseCase(ctrl)
	uc.EXPECT().Summary(gomock.Any()).Return(usecase.CatalogSummary{Total: 25, Available: 23, Sold: 2}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/parcels/summary", nil)
	w := httptest.NewRecorder()
	newParcelRouter(NewParcelHandler(uc)).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]float64
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["total"] != 25 || body["sold"] != 2 {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}
