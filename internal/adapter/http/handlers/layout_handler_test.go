package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"plotsite/internal/adapter/http/handlers/mocks"
	"plotsite/internal/domain/layout"
	"plotsite/internal/domain/selection"
	"plotsite/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newLayoutRouter(h *LayoutHandler) *gin.Engine {
	r := gin.New()
	r.GET("/v1/layouts", h.ListModes)
	r.GET("/v1/layouts/:mode", h.GetLayout)
	r.GET("/v1/layouts/:mode/svg", h.RenderSVG)
	r.GET("/v1/layouts/:mode/png", h.RenderPNG)
	return r
}

func intPtr(v int) *int { return &v }

func TestLayoutHandler_ListModes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockILayoutUseCase(ctrl)
	uc.EXPECT().Modes().Return(layout.Modes())

	req := httptest.NewRequest(http.MethodGet, "/v1/layouts", nil)
	w := httptest.NewRecorder()
	newLayoutRouter(NewLayoutHandler(uc, nil)).ServeHTTP(w, req)

	var body struct {
		Modes []string `json:"modes"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || len(body.Modes) != 5 {
		t.Fatalf("unexpected body %s (err=%v)", w.Body.String(), err)
	}
}

func TestLayoutHandler_GetLayout(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown mode", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILayoutUseCase(ctrl)
		uc.EXPECT().Compute(gomock.Any(), "isometric").Return(layout.Layout{}, fmt.Errorf("%w: isometric", layout.ErrUnknownMode))

		req := httptest.NewRequest(http.MethodGet, "/v1/layouts/isometric", nil)
		w := httptest.NewRecorder()
		newLayoutRouter(NewLayoutHandler(uc, nil)).ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILayoutUseCase(ctrl)
		uc.EXPECT().Compute(gomock.Any(), "grid").Return(layout.Layout{
			Mode: layout.ModeGrid, Width: 800, Height: 600,
			Shapes: []layout.Shape{{Kind: layout.ShapeParcel, ParcelID: 1, X: 10, Y: 10, Width: 50, Height: 30}},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/layouts/grid", nil)
		w := httptest.NewRecorder()
		newLayoutRouter(NewLayoutHandler(uc, nil)).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body layout.Layout
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body.Mode != layout.ModeGrid || len(body.Shapes) != 1 || body.Shapes[0].ParcelID != 1 {
			t.Fatalf("unexpected layout: %+v", body)
		}
	})
}

func TestLayoutHandler_Render(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("svg with explicit selection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILayoutUseCase(ctrl)
		uc.EXPECT().Render(gomock.Any(), "topdown", usecase.RenderFormatSVG, intPtr(9)).
			Return(usecase.RenderedLayout{ContentType: "image/svg+xml", Body: []byte("<svg/>")}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/layouts/topdown/svg?selected=9", nil)
		w := httptest.NewRecorder()
		newLayoutRouter(NewLayoutHandler(uc, nil)).ServeHTTP(w, req)

		if w.Code != http.StatusOK || w.Header().Get("Content-Type") != "image/svg+xml" || w.Body.String() != "<svg/>" {
			t.Fatalf("unexpected response %d %q %q", w.Code, w.Header().Get("Content-Type"), w.Body.String())
		}
	})

	t.Run("invalid selected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILayoutUseCase(ctrl)

		req := httptest.NewRequest(http.MethodGet, "/v1/layouts/grid/svg?selected=nine", nil)
		w := httptest.NewRecorder()
		newLayoutRouter(NewLayoutHandler(uc, nil)).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("png uses session selection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILayoutUseCase(ctrl)
		sel := mocks.NewMockISelectionUseCase(ctrl)
		sel.EXPECT().Get(gomock.Any(), "s-1").Return(selection.Session{ID: "s-1", State: selection.State{SelectedParcelID: intPtr(4)}}, nil)
		uc.EXPECT().Render(gomock.Any(), "canvas", usecase.RenderFormatPNG, intPtr(4)).
			Return(usecase.RenderedLayout{ContentType: "image/png", Body: []byte{0x89, 'P', 'N', 'G'}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/layouts/canvas/png?session=s-1", nil)
		w := httptest.NewRecorder()
		newLayoutRouter(NewLayoutHandler(uc, sel)).ServeHTTP(w, req)

		if w.Code != http.StatusOK || w.Header().Get("Content-Type") != "image/png" {
			t.Fatalf("unexpected response %d %q", w.Code, w.Header().Get("Content-Type"))
		}
	})

	t.Run("unknown session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILayoutUseCase(ctrl)
		sel := mocks.NewMockISelectionUseCase(ctrl)
		sel.EXPECT().Get(gomock.Any(), "missing").Return(selection.Session{}, usecase.ErrSessionNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/layouts/canvas/png?session=missing", nil)
		w := httptest.NewRecorder()
		newLayoutRouter(NewLayoutHandler(uc, sel)).ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
