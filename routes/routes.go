package routes

import (
	"Gamestore/controllers"
	"Gamestore/metrics"
	"Gamestore/middleware"
	"Gamestore/utils"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Tokens issues bearer tokens and verifies them on gated routes
type Tokens interface {
	controllers.TokenIssuer
	middleware.TokenParser
}

// Dependencies are the services behind the HTTP surface. *store.Store
// satisfies the first four
type Dependencies struct {
	Catalog     controllers.Catalog
	Cart        controllers.Cart
	Checkout    controllers.Checkout
	Library     controllers.Library
	Accounts    controllers.Accounts
	Tokens      Tokens
	AuthLimiter *middleware.RateLimiter
}

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, deps Dependencies) {
	// utils global
	router.Use(utils.ErrorHandler())

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/ping", controllers.Ping)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	// API routes group
	api := router.Group("/api")

	api.GET("/categories", controllers.GetCategories(deps.Catalog))
	api.GET("/games", controllers.GetGames(deps.Catalog))
	api.GET("/games/featured", controllers.GetFeaturedGame(deps.Catalog))
	api.GET("/games/special-offers", controllers.GetSpecialOffers(deps.Catalog))
	api.GET("/games/new-releases", controllers.GetNewReleases(deps.Catalog))
	api.GET("/games/popular", controllers.GetPopularGames(deps.Catalog))
	api.GET("/games/:id", controllers.GetGame(deps.Catalog))

	credentials := api.Group("")
	if deps.AuthLimiter != nil {
		credentials.Use(deps.AuthLimiter.Handler())
	}
	{
		credentials.POST("/register", controllers.Register(deps.Accounts))
		credentials.POST("/login", controllers.Login(deps.Accounts))
		credentials.POST("/token", controllers.IssueToken(deps.Accounts, deps.Tokens))
	}

	// Routes that require authentication
	authenticated := api.Group("")
	authenticated.Use(middleware.AuthRequired(deps.Tokens))
	{
		authenticated.POST("/logout", controllers.Logout)
		authenticated.GET("/user", controllers.CurrentUser(deps.Accounts))

		authenticated.GET("/cart", controllers.GetCart(deps.Cart))
		authenticated.POST("/cart/add", controllers.AddToCart(deps.Cart))
		authenticated.DELETE("/cart/:gameId", controllers.RemoveFromCart(deps.Cart))
		authenticated.DELETE("/cart", controllers.ClearCart(deps.Cart))

		authenticated.POST("/payment/process", controllers.ProcessPayment(deps.Checkout))

		authenticated.GET("/library", controllers.GetLibrary(deps.Library))
		authenticated.GET("/transactions", controllers.GetTransactions(deps.Library))
		authenticated.GET("/transactions/export", controllers.ExportTransactions(deps.Library))
	}
}
