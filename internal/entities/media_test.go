package entities

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBook_ReadingPercentage(t *testing.T) {
	tests := []struct {
		name       string
		pagesRead  int
		pagesTotal int
		want       float64
	}{
		{"half read", 200, 400, 50.0},
		{"nothing read", 0, 300, 0.0},
		{"finished", 320, 320, 100.0},
		{"rounds to two decimals", 1, 3, 33.33},
		{"rounds up", 2, 3, 66.67},
		{"zero total", 10, 0, 0.0},
		{"negative total", 10, -5, 0.0},
		{"read past the end is not clamped", 150, 100, 150.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			book := Book{PagesRead: tt.pagesRead, PagesTotal: tt.pagesTotal}
			assert.Equal(t, tt.want, book.ReadingPercentage())
		})
	}
}

func TestBook_ReadingPercentageFollowsPageChanges(t *testing.T) {
	book := Book{PagesRead: 100, PagesTotal: 400}
	assert.Equal(t, 25.0, book.ReadingPercentage())

	book.PagesRead = 300
	assert.Equal(t, 75.0, book.ReadingPercentage())

	book.PagesTotal = 0
	assert.Equal(t, 0.0, book.ReadingPercentage())
}

func TestBook_MarshalJSON(t *testing.T) {
	t.Run("includes stored fields and derived percentage", func(t *testing.T) {
		isbn := "978-0441013593"
		published := NewDate(1965, time.August, 1)
		book := Book{
			ID:              7,
			Title:           "Dune",
			ISBN:            &isbn,
			Author:          "Herbert",
			PagesRead:       200,
			PagesTotal:      400,
			PublicationDate: &published,
		}

		data, err := json.Marshal(book)
		require.NoError(t, err)

		var got map[string]any
		require.NoError(t, json.Unmarshal(data, &got))

		assert.Equal(t, float64(7), got["id"])
		assert.Equal(t, "Dune", got["titulo"])
		assert.Equal(t, isbn, got["isbn"])
		assert.Equal(t, "Herbert", got["autor"])
		assert.Equal(t, float64(200), got["paginas_leidas"])
		assert.Equal(t, float64(400), got["paginas_totales"])
		assert.Equal(t, "1965-08-01", got["fecha_publicacion"])
		assert.Equal(t, 50.0, got["porcentaje_leido"])
	})

	t.Run("optional fields serialize as null", func(t *testing.T) {
		data, err := json.Marshal(Book{Title: "Empty"})
		require.NoError(t, err)

		var got map[string]any
		require.NoError(t, json.Unmarshal(data, &got))

		assert.Contains(t, got, "isbn")
		assert.Nil(t, got["isbn"])
		assert.Nil(t, got["fecha_publicacion"])
		assert.Equal(t, 0.0, got["porcentaje_leido"])
	})

	t.Run("pointer and slice elements use the same encoding", func(t *testing.T) {
		data, err := json.Marshal([]*Book{{PagesRead: 1, PagesTotal: 4}})
		require.NoError(t, err)
		assert.Contains(t, string(data), `"porcentaje_leido":25`)
	})
}

func TestDate_JSON(t *testing.T) {
	t.Run("round trips calendar dates", func(t *testing.T) {
		var d Date
		require.NoError(t, json.Unmarshal([]byte(`"2001-02-03"`), &d))
		assert.Equal(t, "2001-02-03", d.String())

		data, err := json.Marshal(d)
		require.NoError(t, err)
		assert.Equal(t, `"2001-02-03"`, string(data))
	})

	t.Run("accepts RFC 3339 timestamps", func(t *testing.T) {
		var d Date
		require.NoError(t, json.Unmarshal([]byte(`"2001-02-03T10:00:00Z"`), &d))
		assert.Equal(t, "2001-02-03", d.String())
	})

	t.Run("rejects garbage", func(t *testing.T) {
		var d Date
		assert.Error(t, json.Unmarshal([]byte(`"not a date"`), &d))
		assert.Error(t, json.Unmarshal([]byte(`12`), &d))
	})

	t.Run("null leaves pointer unset", func(t *testing.T) {
		var payload struct {
			Date *Date `json:"date"`
		}
		require.NoError(t, json.Unmarshal([]byte(`{"date":null}`), &payload))
		assert.Nil(t, payload.Date)
	})
}

func TestTableNames(t *testing.T) {
	assert.Equal(t, "libro", Book{}.TableName())
	assert.Equal(t, "pelicula", Movie{}.TableName())
	assert.Equal(t, "serie", Series{}.TableName())
	assert.Len(t, All(), 3)
}
