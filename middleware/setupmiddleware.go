package middleware

import (
	"net/http"

	"Gamestore/config"
	store_constants "Gamestore/constants/store"
	"Gamestore/metrics"
	"Gamestore/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

func SetUpMiddleware(r *gin.Engine, cfg *config.Config) {
	r.Use(utils.RequestLogger())
	r.Use(metrics.Middleware())

	store := cookie.NewStore([]byte(cfg.SessionKey))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   store_constants.SessionMaxAge,
		HttpOnly: true,
		Secure:   cfg.Prod,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions(store_constants.SessionCookieName, store))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", utils.RequestIDHeader},
		ExposeHeaders:    []string{utils.RequestIDHeader, "Content-Disposition"},
		AllowCredentials: true,
	}))
}
