package middleware

import (
	"strings"

	store_constants "Gamestore/constants/store"
	"Gamestore/services/store"
	"Gamestore/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// TokenParser verifies bearer tokens
type TokenParser interface {
	Parse(token string) (store.Identity, error)
}

// AuthRequired resolves the caller from the session cookie or, failing that,
// an "Authorization: Bearer" token. The identity is stored on the context
// for handlers to read with utils.CurrentIdentity
func AuthRequired(tokens TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		if id, ok := SessionIdentity(c); ok {
			c.Set(store_constants.IdentityContextKey, id)
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		if token, found := strings.CutPrefix(header, "Bearer "); found && tokens != nil {
			id, err := tokens.Parse(strings.TrimSpace(token))
			if err != nil {
				utils.Fail(c, err, "")
				return
			}
			c.Set(store_constants.IdentityContextKey, id)
			c.Next()
			return
		}

		// Abort the request with the appropriate error code
		utils.Fail(c, store.ErrAuthenticationRequired, "")
	}
}

// SessionIdentity reads the identity stored by StartSession
func SessionIdentity(c *gin.Context) (store.Identity, bool) {
	session := sessions.Default(c)
	userID, ok := session.Get(store_constants.SessionUserID).(uint)
	if !ok || userID == 0 {
		return store.Identity{}, false
	}
	username, _ := session.Get(store_constants.SessionUsername).(string)
	return store.Identity{UserID: userID, Username: username}, true
}

// StartSession logs the user in on this browser
func StartSession(c *gin.Context, id store.Identity) error {
	session := sessions.Default(c)
	session.Set(store_constants.SessionUserID, id.UserID)
	session.Set(store_constants.SessionUsername, id.Username)
	return session.Save()
}

// EndSession deletes the session keys and expires the cookie
func EndSession(c *gin.Context) error {
	session := sessions.Default(c)
	session.Clear()
	session.Options(sessions.Options{Path: "/", MaxAge: -1})
	return session.Save()
}
