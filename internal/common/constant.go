package common

// Fixed key-value store keys and collection names. Collection names are
// suffixed with the signed-in user id by the scoped store.
const (
	CollectionFavorites     = "favorites"
	CollectionCustomMuseums = "custom_museums"

	SessionKey  = "current_user"
	LocationKey = "museum_location"
)

// DefaultRating is assigned to venues whose source carries no rating.
const DefaultRating = 4.5
