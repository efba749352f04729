package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"plotsite/docs"
	"plotsite/internal/domain/entities"
	"plotsite/internal/domain/selection"
	"plotsite/internal/infrastructure/bootstrap"
	"plotsite/internal/infrastructure/config"
	"plotsite/internal/usecase"

	"github.com/gin-gonic/gin"
)

func newTestRouter(t *testing.T) (*gin.Engine, *bootstrap.Container) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, err := bootstrap.New(context.Background(), config.Config{
		CatalogSource:   config.CatalogSourceStatic,
		StatusOverrides: entities.DefaultStatusOverrides,
		InquiryStore:    config.InquiryStoreSQLite,
		SQLitePath:      filepath.Join(t.TempDir(), "leads.db"),
		Notifier:        config.NotifierWeb3Forms,
		NotifierMock:    true,
		Submission:      usecase.DefaultSubmissionPolicy(),
		Selection:       selection.DefaultController(),
	})
	if err != nil {
		t.Fatalf("wire: %v", err)
	}
	t.Cleanup(c.Close)
	return NewRouter(c), c
}

func do(t *testing.T, r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRouter_Ping(t *testing.T) {
	r, _ := newTestRouter(t)
	w := do(t, r, http.MethodGet, "/v1/ping", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "pong") {
		t.Fatalf("unexpected ping response %d %s", w.Code, w.Body.String())
	}
}

func TestRouter_RecoversFromPanics(t *testing.T) {
	r, _ := newTestRouter(t)
	r.GET("/v1/boom", func(*gin.Context) { panic("boom") })

	if w := do(t, r, http.MethodGet, "/v1/boom", ""); w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if w := do(t, r, http.MethodGet, "/v1/ping", ""); w.Code != http.StatusOK {
		t.Fatalf("router must keep serving after a panic, got %d", w.Code)
	}
}

func TestRouter_SwaggerDocumentsEveryRoute(t *testing.T) {
	r, _ := newTestRouter(t)

	var doc struct {
		Paths map[string]map[string]json.RawMessage `json:"paths"`
	}
	if err := json.Unmarshal([]byte(docs.SwaggerInfo.ReadDoc()), &doc); err != nil {
		t.Fatalf("swagger template is not valid JSON: %v", err)
	}

	for _, route := range r.Routes() {
		if strings.HasPrefix(route.Path, "/swagger") {
			continue
		}
		path := strings.TrimPrefix(route.Path, docs.SwaggerInfo.BasePath)
		segments := strings.Split(path, "/")
		for i, seg := range segments {
			if strings.HasPrefix(seg, ":") {
				segments[i] = "{" + seg[1:] + "}"
			}
		}
		path = strings.Join(segments, "/")
		if _, ok := doc.Paths[path][strings.ToLower(route.Method)]; !ok {
			t.Errorf("route %s %s is not documented", route.Method, path)
		}
	}
}

func TestRouter_CatalogAndLayouts(t *testing.T) {
	r, _ := newTestRouter(t)

	w := do(t, r, http.MethodGet, "/v1/parcels", "")
	var parcels []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &parcels); err != nil || len(parcels) != 25 {
		t.Fatalf("expected 25 parcels, got %d (err=%v)", len(parcels), err)
	}
	if parcels[6]["status"] != "available" {
		t.Fatalf("plot 7 must be available after overrides, got %v", parcels[6]["status"])
	}

	if w := do(t, r, http.MethodGet, "/v1/parcels/summary", ""); w.Code != http.StatusOK {
		t.Fatalf("summary route shadowed: %d", w.Code)
	}

	for _, mode := range []string{"grid", "topdown", "perspective", "canvas", "precision"} {
		if w := do(t, r, http.MethodGet, "/v1/layouts/"+mode+"/svg?selected=9", ""); w.Code != http.StatusOK {
			t.Fatalf("%s svg: %d %s", mode, w.Code, w.Body.String())
		}
	}
	if w := do(t, r, http.MethodGet, "/v1/layouts/isometric", ""); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown mode, got %d", w.Code)
	}
}

func TestRouter_VisitorFlow(t *testing.T) {
	r, _ := newTestRouter(t)

	w := do(t, r, http.MethodPost, "/v1/sessions", "")
	if w.Code != http.StatusCreated {
		t.Fatalf("create session: %d", w.Code)
	}
	var sess struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &sess)

	if w := do(t, r, http.MethodPost, "/v1/sessions/"+sess.ID+"/select", `{"parcel_id":9}`); w.Code != http.StatusOK {
		t.Fatalf("select: %d %s", w.Code, w.Body.String())
	}

	w = do(t, r, http.MethodGet, "/v1/layouts/canvas/png?session="+sess.ID, "")
	if w.Code != http.StatusOK {
		t.Fatalf("png: %d %s", w.Code, w.Body.String())
	}
	if _, err := png.Decode(w.Body); err != nil {
		t.Fatalf("png decode: %v", err)
	}

	if w := do(t, r, http.MethodPost, "/v1/sessions/"+sess.ID+"/inquiry/open", ""); w.Code != http.StatusOK {
		t.Fatalf("open: %d", w.Code)
	}
	w = do(t, r, http.MethodPost, "/v1/inquiries", `{"name":"Asha","phone":"9876543210","session_id":"`+sess.ID+`"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("inquiry: %d %s", w.Code, w.Body.String())
	}

	if w := do(t, r, http.MethodPost, "/v1/inquiries", `{"name":"Asha","phone":"1","parcel_id":1}`); w.Code != http.StatusConflict {
		t.Fatalf("expected 409 for a sold plot, got %d", w.Code)
	}
}
