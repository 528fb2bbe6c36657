// Package venues stores locally seeded and user-created museum rows in the
// venues table.
//
// # Overview
//
// Rows carry an autoincrement id and a stable id ("local_<unixms>_<rand>"
// unless the caller supplies one). Array fields (favorites, visits) are kept
// as JSON text and decoded on read. Lookups take a models.Key so callers say
// explicitly whether they address a row id or a stable id.
//
// Updates are partial: only the fields set in a Patch are written, and
// updated_at is re-stamped on every update.
package venues
