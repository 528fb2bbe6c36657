// Package cli provides the interactive museums command-line client.
//
// It wires configuration, the SQLite store, the remote clients and the
// services into an App, then runs a REPL over them. It is a developer tool
// for exercising the data layer by hand.
//
// Key features:
//   - Register / Login / Logout / Whoami
//   - Nearby: browse custom and remote venues around the saved location
//   - Favorites: add, remove and list by listing index
//   - Import a venue from a Wikipedia article; add custom venues by hand
//   - Location: pick the search center among Brazilian cities
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
package cli
