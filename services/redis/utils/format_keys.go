package utils

/**
 * This file contains utility functions to format the keys for Redis
 * (key, value) pairs. It avoids having to call "fmt.Sprintf(...)"
 * with the same format spec every time, potentially confusing the key format.
 */

import "fmt"

// CatalogPrefix is shared by every cached catalog list
const CatalogPrefix = "catalog:"

// FormatCatalogKey returns the cache key of a catalog list, optionally
// filtered by category
func FormatCatalogKey(kind string, categoryID *uint) string {
	if categoryID == nil {
		return fmt.Sprintf("%s%s:all", CatalogPrefix, kind)
	}
	return fmt.Sprintf("%s%s:category:%d", CatalogPrefix, kind, *categoryID)
}

func FormatCheckoutLockKey(userID uint) string {
	return fmt.Sprintf("checkout:%d:lock", userID)
}

func FormatRateLimitKey(route string, client string) string {
	return fmt.Sprintf("ratelimit:%s:%s", route, client)
}
