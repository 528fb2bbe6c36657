// Package services holds the application services of the museum data
// layer. Each service is an interface with an unexported implementation
// built by a New...Service constructor; the composition root wires them
// from storage and the remote clients.
//
// # Overview
//
//   - SessionService: who is signed in (key "current_user").
//   - VenueListService: an ordered, identity-deduplicated venue list per
//     user; used for favorites.
//   - CustomVenueService: user-created venues (manual or imported).
//   - EnrichmentService: builds a venue from a Wikipedia article.
//   - CatalogService: merges custom and nearby venues for browsing.
//   - AuthService: local accounts, password checks and profile edits.
//   - LocationService: the saved search center.
//
// Corrupted list values are logged and read as empty; the next write
// replaces them.
package services
