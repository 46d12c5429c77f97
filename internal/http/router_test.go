package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/multimedia/internal/database"
)

// setupTestDB creates a fresh SQLite catalog with the schema applied.
func setupTestDB(t *testing.T) *database.Database {
	t.Helper()
	db, err := database.NewDatabase(filepath.Join(t.TempDir(), "catalog.db"), database.Options{LogLevel: "silent"})
	require.NoError(t, err)
	require.NoError(t, db.InitSchema())
	t.Cleanup(func() { db.Close() })
	return db
}

func setupTestRouter(t *testing.T) (*gin.Engine, *database.Database) {
	t.Helper()
	db := setupTestDB(t)
	router := NewRouter(RouterConfig{
		Database:       db,
		AllowedOrigins: []string{"*"},
		Version:        "test",
	})
	return router, db
}

func doRequest(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeJSON[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestRouter_Welcome(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doRequest(router, http.MethodGet, "/", "")

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeJSON[MessageResponse](t, w)
	assert.Equal(t, "Bienvenido a Multimedia Manager API", body.Message)
}

func TestRouter_Health(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doRequest(router, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeJSON[HealthReport](t, w)
	assert.Equal(t, "up", body.Status)
	assert.Equal(t, "test", body.Version)
}

func TestRouter_UnknownRoute(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doRequest(router, http.MethodGet, "/comics/listAll", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	body := decodeJSON[ErrorResponse](t, w)
	assert.Equal(t, CodeNotFound, body.Code)
}

func TestRouter_IDsThatNameNoRow(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doRequest(router, http.MethodPost, "/books/addLibro", `{"titulo":"Dune","autor":"Herbert"}`)
	require.Equal(t, http.StatusOK, w.Code)

	ids := []string{"-1", "0", "4294967296", "9223372036854775807", "99999999999999999999", "-99999999999999999999"}
	for _, resource := range []struct{ get, del string }{
		{"/books/", "/books/deleteBook/"},
		{"/movies/", "/movies/deleteMovie/"},
		{"/series/", "/series/deleteSerie/"},
	} {
		for _, id := range ids {
			t.Run("GET "+resource.get+id, func(t *testing.T) {
				w := doRequest(router, http.MethodGet, resource.get+id, "")

				assert.Equal(t, http.StatusOK, w.Code)
				assert.Equal(t, "null", w.Body.String())
			})

			t.Run("DELETE "+resource.del+id, func(t *testing.T) {
				w := doRequest(router, http.MethodDelete, resource.del+id, "")

				assert.Equal(t, http.StatusNotFound, w.Code)
				assert.Equal(t, CodeNotFound, decodeJSON[ErrorResponse](t, w).Code)
			})
		}
	}

	w = doRequest(router, http.MethodGet, "/books/listAll", "")
	assert.Len(t, decodeJSON[[]map[string]any](t, w), 1)
}

func TestRouter_DatabaseClosed(t *testing.T) {
	router, db := setupTestRouter(t)
	require.NoError(t, db.Close())

	for _, path := range []string{"/books/listAll", "/movies/listAll", "/series/listAll", "/books/1"} {
		t.Run(path, func(t *testing.T) {
			w := doRequest(router, http.MethodGet, path, "")

			assert.Equal(t, http.StatusServiceUnavailable, w.Code)
			body := decodeJSON[ErrorResponse](t, w)
			assert.Equal(t, CodeUnavailable, body.Code)
		})
	}

	w := doRequest(router, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestRouter_ReleasesSessionAfterEveryRequest(t *testing.T) {
	router, db := setupTestRouter(t)
	sqlDB, err := db.DB.DB()
	require.NoError(t, err)

	requests := []struct {
		method, path, body string
	}{
		{http.MethodPost, "/books/addLibro", `{"titulo":"Dune","autor":"Herbert","isbn":"1"}`},
		{http.MethodPost, "/books/addLibro", `{"titulo":"Dune","autor":"Herbert","isbn":"1"}`},
		{http.MethodPost, "/books/addLibro", `{"titulo":`},
		{http.MethodGet, "/books/listAll", ""},
		{http.MethodGet, "/books/999", ""},
		{http.MethodDelete, "/books/deleteBook/999", ""},
		{http.MethodGet, "/movies/abc", ""},
	}
	for _, r := range requests {
		doRequest(router, r.method, r.path, r.body)
		assert.Equal(t, 0, sqlDB.Stats().InUse, "%s %s", r.method, r.path)
	}
}

func TestRouter_ConcurrentRequests(t *testing.T) {
	router, db := setupTestRouter(t)
	sqlDB, err := db.DB.DB()
	require.NoError(t, err)

	const workers = 8
	done := make(chan int, workers)
	for i := 0; i < workers; i++ {
		go func() {
			w := doRequest(router, http.MethodPost, "/movies/addMovie", `{"titulo":"Alien"}`)
			done <- w.Code
		}()
	}
	for i := 0; i < workers; i++ {
		assert.Equal(t, http.StatusOK, <-done)
	}

	w := doRequest(router, http.MethodGet, "/movies/listAll", "")
	movies := decodeJSON[[]map[string]any](t, w)
	assert.Len(t, movies, workers)
	assert.Equal(t, 0, sqlDB.Stats().InUse)
}
