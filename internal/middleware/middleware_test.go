package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"lancontrol/internal/models"
)

func newRouter(detailed bool) *mux.Router {
	r := mux.NewRouter()
	r.Use(RequestID, Recoverer(func() bool { return detailed }), LoggerMW)
	r.HandleFunc("/ok", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(GetRequestID(r)))
	})
	r.HandleFunc("/boom", func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})
	return r
}

func TestRequestID_GeneratedAndEchoed(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	newRouter(false).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ok", nil))

	id := rec.Header().Get("X-Request-Id")
	require.Len(t, id, 36)
	require.Equal(t, id, rec.Body.String())
}

func TestRequestID_KeepsClientValue(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set("X-Request-Id", "abc-123")
	rec := httptest.NewRecorder()
	newRouter(false).ServeHTTP(rec, req)
	require.Equal(t, "abc-123", rec.Header().Get("X-Request-Id"))

	req = httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set("X-Request-Id", strings.Repeat("x", 500))
	rec = httptest.NewRecorder()
	newRouter(false).ServeHTTP(rec, req)
	require.Len(t, rec.Header().Get("X-Request-Id"), 36)
}

func TestRecoverer_Problem(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	newRouter(false).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))

	var p models.Problem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	require.Equal(t, "/boom", p.Instance)
	require.NotContains(t, p.Detail, "boom")
	require.Equal(t, rec.Header().Get("X-Request-Id"), p.Extra["reqid"])
	require.NotContains(t, p.Extra, "stack")
}

func TestRecoverer_DetailedInDebug(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	newRouter(true).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	var p models.Problem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	require.Equal(t, "boom", p.Detail)
	require.Contains(t, p.Extra, "stack")
}
