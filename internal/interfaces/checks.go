package interfaces

// This file contains compile-time interface implementation checks.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/multimedia/internal/database"
	"github.com/mrlokans/multimedia/internal/database/books"
	"github.com/mrlokans/multimedia/internal/database/movies"
	"github.com/mrlokans/multimedia/internal/database/series"
	"github.com/mrlokans/multimedia/internal/http"
)

// =============================================================================
// Data Access Layer
// =============================================================================

var _ http.BookStore = (*books.Repository)(nil)
var _ http.MovieStore = (*movies.Repository)(nil)
var _ http.SeriesStore = (*series.Repository)(nil)

// =============================================================================
// Infrastructure
// =============================================================================

var _ http.SessionOpener = (*database.Database)(nil)
var _ http.Pinger = (*database.Database)(nil)
