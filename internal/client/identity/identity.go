// Package identity resolves the single key under which a venue is
// deduplicated, whatever system produced it.
package identity

import "github.com/dmitrijs2005/museumkeeper/internal/client/models"

// Of returns the identity of v: the remote place id, then the local id,
// then the remote reference token, then the name (or title, the same field
// in the canonical shape). ok is false when none of them is set; such
// records cannot be deduplicated and are skipped by callers.
func Of(v models.Venue) (key string, ok bool) {
	switch {
	case v.PlaceID != nil && *v.PlaceID != "":
		return *v.PlaceID, true
	case v.ID != "":
		return v.ID, true
	case v.Reference != "":
		return v.Reference, true
	case v.Name != "":
		return v.Name, true
	case v.Title != "":
		return v.Title, true
	}
	return "", false
}

// Same reports whether a and b resolve to the same identity. Records
// without an identity are never the same as anything.
func Same(a, b models.Venue) bool {
	ka, ok := Of(a)
	if !ok {
		return false
	}
	kb, ok := Of(b)
	return ok && ka == kb
}
