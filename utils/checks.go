package utils

import (
	"strconv"
	"strings"

	store_constants "Gamestore/constants/store"
	"Gamestore/services/store"

	"github.com/gin-gonic/gin"
)

// ParseID parses a positive decimal id
func ParseID(raw string) (uint, bool) {
	id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// OptionalCategoryID reads the categoryId query parameter. Absent or empty
// means no filter
func OptionalCategoryID(c *gin.Context) (*uint, error) {
	raw, ok := c.GetQuery("categoryId")
	if !ok || strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	id, valid := ParseID(raw)
	if !valid {
		return nil, store.Invalid("Invalid categoryId")
	}
	return &id, nil
}

// CurrentIdentity returns the identity stored by the auth middleware
func CurrentIdentity(c *gin.Context) (store.Identity, bool) {
	value, ok := c.Get(store_constants.IdentityContextKey)
	if !ok {
		return store.Identity{}, false
	}
	id, ok := value.(store.Identity)
	return id, ok
}
