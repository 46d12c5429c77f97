package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeriesController(t *testing.T) {
	router, _ := setupTestRouter(t)

	t.Run("adds series with and without synopsis", func(t *testing.T) {
		w := doRequest(router, http.MethodPost, "/series/addSerie",
			`{"titulo":"The Wire","sinopsis":"Baltimore, one institution at a time."}`)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"Serie agregada correctamente"}`, w.Body.String())

		w = doRequest(router, http.MethodPost, "/series/addSerie", `{"titulo":"Dark"}`)
		require.Equal(t, http.StatusOK, w.Code)

		w = doRequest(router, http.MethodGet, "/series/listAll", "")
		assert.JSONEq(t, `[
			{"id":1,"titulo":"The Wire","sinopsis":"Baltimore, one institution at a time."},
			{"id":2,"titulo":"Dark","sinopsis":null}
		]`, w.Body.String())
	})

	t.Run("rejects series without title", func(t *testing.T) {
		w := doRequest(router, http.MethodPost, "/series/addSerie", `{"sinopsis":"orphan"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "invalid series: missing required field titulo", decodeJSON[ErrorResponse](t, w).Error)
	})

	t.Run("gets by id", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/series/2", "")
		assert.JSONEq(t, `{"id":2,"titulo":"Dark","sinopsis":null}`, w.Body.String())

		w = doRequest(router, http.MethodGet, "/series/50", "")
		assert.Equal(t, "null", w.Body.String())

		w = doRequest(router, http.MethodGet, "/series/x", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("lists by title", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/series/serie_por_titulo/The%20Wire", "")

		series := decodeJSON[[]map[string]any](t, w)
		require.Len(t, series, 1)
		assert.Equal(t, float64(1), series[0]["id"])
	})

	t.Run("deletes", func(t *testing.T) {
		w := doRequest(router, http.MethodDelete, "/series/deleteSerie/2", "")
		assert.JSONEq(t, `{"message":"Serie eliminada correctamente"}`, w.Body.String())

		w = doRequest(router, http.MethodDelete, "/series/deleteSerie/2", "")
		assert.Equal(t, http.StatusNotFound, w.Code)

		w = doRequest(router, http.MethodGet, "/series/listAll", "")
		assert.Len(t, decodeJSON[[]map[string]any](t, w), 1)
	})
}
