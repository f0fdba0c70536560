package controllers

import (
	"errors"
	"net/http"
	"time"

	"Gamestore/middleware"
	"Gamestore/models/postgres"
	"Gamestore/services/auth"
	"Gamestore/services/store"
	"Gamestore/utils"

	"github.com/gin-gonic/gin"
)

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

func identityOf(user *postgres.User) store.Identity {
	return store.Identity{UserID: user.ID, Username: user.Username}
}

// @Summary Register
// @Description Creates an account and logs it in on this browser
// @Tags users
// @Accept json
// @Produce json
// @Param body body object{username=string,password=string,email=string} true "New account"
// @Success 201 {object} postgres.User
// @Failure 400 {object} object{message=string}
// @Failure 429 {object} object{message=string}
// @Failure 500 {object} object{message=string}
// @Router /api/register [post]
func Register(accounts Accounts) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req registerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.Fail(c, store.Invalid("Username, password and email are required"), "")
			return
		}
		user, err := accounts.Register(c.Request.Context(), auth.RegisterInput{
			Username: req.Username,
			Password: req.Password,
			Email:    req.Email,
		})
		if err != nil {
			utils.Fail(c, err, "Registration failed")
			return
		}
		if err := middleware.StartSession(c, identityOf(user)); err != nil {
			utils.Fail(c, err, "Registration failed")
			return
		}
		c.JSON(http.StatusCreated, user)
	}
}

// @Summary Login
// @Description Checks credentials and starts a session cookie
// @Tags users
// @Accept json
// @Produce json
// @Param body body object{username=string,password=string} true "Credentials"
// @Success 200 {object} postgres.User
// @Failure 401 {object} object{message=string}
// @Failure 429 {object} object{message=string}
// @Failure 500 {object} object{message=string}
// @Router /api/login [post]
func Login(accounts Accounts) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req credentials
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.Fail(c, store.ErrInvalidCredentials, "")
			return
		}
		user, err := accounts.Login(c.Request.Context(), req.Username, req.Password)
		if err != nil {
			utils.Fail(c, err, "Login failed")
			return
		}
		if err := middleware.StartSession(c, identityOf(user)); err != nil {
			utils.Fail(c, err, "Login failed")
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// Logout from server, deletes the session cookie
// @Summary Logout
// @Tags users
// @Produce json
// @Success 200 {object} object{message=string}
// @Failure 401 {object} object{message=string}
// @Failure 500 {object} object{message=string}
// @Router /api/logout [post]
func Logout(c *gin.Context) {
	if err := middleware.EndSession(c); err != nil {
		utils.Fail(c, err, "Logout failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// @Summary Current user
// @Description Returns the logged in account
// @Tags users
// @Produce json
// @Success 200 {object} postgres.User
// @Failure 401 {object} object{message=string}
// @Failure 500 {object} object{message=string}
// @Router /api/user [get]
func CurrentUser(accounts Accounts) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := utils.CurrentIdentity(c)
		if !ok {
			utils.Fail(c, store.ErrAuthenticationRequired, "")
			return
		}
		user, err := accounts.CurrentUser(c.Request.Context(), id)
		if errors.Is(err, store.ErrAuthenticationRequired) {
			_ = middleware.EndSession(c)
		}
		if err != nil {
			utils.Fail(c, err, "Failed to fetch user")
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// @Summary Issue API token
// @Description Exchanges credentials for a bearer token usable in the Authorization header
// @Tags users
// @Accept json
// @Produce json
// @Param body body object{username=string,password=string} true "Credentials"
// @Success 200 {object} object{token=string,expiresAt=string}
// @Failure 401 {object} object{message=string}
// @Failure 429 {object} object{message=string}
// @Failure 500 {object} object{message=string}
// @Router /api/token [post]
func IssueToken(accounts Accounts, tokens TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req credentials
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.Fail(c, store.ErrInvalidCredentials, "")
			return
		}
		user, err := accounts.Login(c.Request.Context(), req.Username, req.Password)
		if err != nil {
			utils.Fail(c, err, "Failed to issue token")
			return
		}
		token, expiresAt, err := tokens.Issue(identityOf(user))
		if err != nil {
			utils.Fail(c, err, "Failed to issue token")
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"token":     token,
			"expiresAt": expiresAt.UTC().Format(time.RFC3339),
		})
	}
}
