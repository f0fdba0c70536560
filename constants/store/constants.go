package store_constants

// Flagged catalog sections (special offers, new releases, popular) never
// return more than this many games
const FlaggedListLimit = 4

// Session keys set on login/register
const (
	SessionUserID   = "UserID"
	SessionUsername = "Username"
)

const SessionCookieName = "gamestore_session"
const SessionMaxAge = 24 * 60 * 60 // seconds, 1 day

// Context key under which AuthRequired stores the verified identity
const IdentityContextKey = "identity"

// Catalog list kinds, used for cache keys and metrics labels
const (
	CatalogCategories    = "categories"
	CatalogAllGames      = "games"
	CatalogSpecialOffers = "special-offers"
	CatalogNewReleases   = "new-releases"
	CatalogPopular       = "popular"
	CatalogFeatured      = "featured"
)
