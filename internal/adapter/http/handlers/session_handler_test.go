package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"plotsite/internal/adapter/http/handlers/mocks"
	"plotsite/internal/domain/selection"
	"plotsite/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newSessionRouter(h *SessionHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/sessions", h.Create)
	r.GET("/v1/sessions/:id", h.Get)
	r.POST("/v1/sessions/:id/select", h.Select)
	r.DELETE("/v1/sessions/:id/selection", h.Clear)
	r.POST("/v1/sessions/:id/inquiry/open", h.OpenInquiry)
	r.POST("/v1/sessions/:id/inquiry/close", h.CloseInquiry)
	return r
}

func decodeSession(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return body
}

func TestSessionHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockISelectionUseCase(ctrl)
	uc.EXPECT().CreateSession(gomock.Any()).Return(selection.Session{ID: "s-1"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/sessions", nil)
	w := httptest.NewRecorder()
	newSessionRouter(NewSessionHandler(uc)).ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	body := decodeSession(t, w)
	if body["id"] != "s-1" || body["selected_parcel_id"] != nil || body["inquiry_open"] != false {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestSessionHandler_Select(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISelectionUseCase(ctrl)

		req := httptest.NewRequest(http.MethodPost, "/v1/sessions/s-1/select", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newSessionRouter(NewSessionHandler(uc)).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISelectionUseCase(ctrl)
		uc.EXPECT().SelectParcel(gomock.Any(), "s-1", 9).
			Return(selection.Session{ID: "s-1", State: selection.State{SelectedParcelID: intPtr(9)}}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/sessions/s-1/select", bytes.NewBufferString(`{"parcel_id":9}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newSessionRouter(NewSessionHandler(uc)).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body := decodeSession(t, w); body["selected_parcel_id"] != float64(9) {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("unknown parcel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISelectionUseCase(ctrl)
		uc.EXPECT().SelectParcel(gomock.Any(), "s-1", 99).Return(selection.Session{}, usecase.ErrParcelNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/sessions/s-1/select", bytes.NewBufferString(`{"parcel_id":99}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newSessionRouter(NewSessionHandler(uc)).ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestSessionHandler_Transitions(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockISelectionUseCase(ctrl)

	uc.EXPECT().Get(gomock.Any(), "missing").Return(selection.Session{}, usecase.ErrSessionNotFound)
	uc.EXPECT().ClearSelection(gomock.Any(), "s-1").Return(selection.Session{ID: "s-1"}, nil)
	uc.EXPECT().OpenInquiry(gomock.Any(), "s-1").
		Return(selection.Session{ID: "s-1", State: selection.State{SelectedParcelID: intPtr(3), InquiryOpen: true}}, nil)
	uc.EXPECT().CloseInquiry(gomock.Any(), "s-1").
		Return(selection.Session{ID: "s-1", State: selection.State{SelectedParcelID: intPtr(3)}}, nil)

	cases := []struct {
		name   string
		method string
		path   string
		status int
		check  func(map[string]any) bool
	}{
		{"get missing", http.MethodGet, "/v1/sessions/missing", http.StatusNotFound, nil},
		{"clear", http.MethodDelete, "/v1/sessions/s-1/selection", http.StatusOK, func(b map[string]any) bool { return b["selected_parcel_id"] == nil }},
		{"open", http.MethodPost, "/v1/sessions/s-1/inquiry/open", http.StatusOK, func(b map[string]any) bool { return b["inquiry_open"] == true }},
		{"close keeps selection", http.MethodPost, "/v1/sessions/s-1/inquiry/close", http.StatusOK, func(b map[string]any) bool {
			return b["inquiry_open"] == false && b["selected_parcel_id"] == float64(3)
		}},
	}

	r := newSessionRouter(NewSessionHandler(uc))
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, w.Code)
			}
			if tc.check != nil && !tc.check(decodeSession(t, w)) {
				t.Fatalf("unexpected body: %s", w.Body.String())
			}
		})
	}
}
