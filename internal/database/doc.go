// Package database provides the data access layer for the catalog.
//
// # Architecture
//
//	database/
//	├── database.go      # Driver selection, connection setup, schema initialization
//	├── session.go       # Request-scoped sessions pinned to one pooled connection
//	├── errors.go        # Driver error classification (not found, conflict, unavailable)
//	├── books/           # Book operations
//	├── movies/          # Movie operations
//	└── series/          # Series operations
//
// # Sessions
//
// Handlers never touch the shared *gorm.DB. Each request gets a Session from
// OpenSession and releases it when the request finishes:
//
//	session, err := db.OpenSession(ctx)
//	if err != nil {
//		// errors.Is(err, database.ErrUnavailable)
//	}
//	defer session.Close()
//
//	repo := books.NewRepository(session.DB)
//	all, err := repo.ListAll()
//
// The HTTP layer wraps this in a middleware so individual handlers only see
// the injected session.
//
// # Errors
//
// Repositories return ErrNotFound for point lookups that match nothing and
// pass every other store error through Classify, so callers can rely on
// errors.Is(err, ErrUnavailable) and errors.As into a *ConflictError
// regardless of the driver in use.
package database
