// Package interfaces documents the core abstractions used throughout the application.
//
// # Interface Categories
//
// ## Data Access Interfaces
//
//   - BookStore: book catalog operations (internal/http/stores.go)
//   - MovieStore: movie catalog operations (internal/http/stores.go)
//   - SeriesStore: series catalog operations (internal/http/stores.go)
//
// ## Infrastructure Interfaces
//
//   - SessionOpener: request-scoped store sessions (internal/http/middleware.go)
//   - Pinger: store reachability for the health check (internal/http/stores.go)
//
// # Adding a New Media Type
//
// To catalog a new kind of media (e.g., podcasts):
//
//  1. Define the entity in internal/entities/ and append it to entities.All()
//     so InitSchema creates its table:
//
//     type Podcast struct {
//         ID    uint   `gorm:"primaryKey" json:"id"`
//         Title string `gorm:"column:titulo;not null;index" json:"titulo"`
//     }
//
//  2. Create sub-package internal/database/podcasts/ with a Repository
//     exposing ListAll, GetByID, ListByTitle, Create and Delete. Pass driver
//     errors through database.Classify and report missing rows with
//     database.ErrNotFound.
//
//  3. Declare PodcastStore in internal/http/stores.go, add a controller and
//     register its routes in router.go behind SessionMiddleware.
//
//  4. Add a compile-time check to checks.go:
//
//     var _ http.PodcastStore = (*podcasts.Repository)(nil)
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// See checks.go.
package interfaces
