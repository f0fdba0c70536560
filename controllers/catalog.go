package controllers

import (
	"context"
	"net/http"

	"Gamestore/services/store"
	"Gamestore/utils"

	"github.com/gin-gonic/gin"
)

// @Summary List categories
// @Description Returns every category ordered by name
// @Tags catalog
// @Produce json
// @Success 200 {array} postgres.Category
// @Failure 500 {object} object{message=string}
// @Router /api/categories [get]
func GetCategories(catalog Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := catalog.GetAllCategories(c.Request.Context())
		if err != nil {
			utils.Fail(c, err, "Failed to fetch categories")
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}

// @Summary List games
// @Description Returns every game, optionally filtered by category
// @Tags catalog
// @Produce json
// @Param categoryId query int false "Category filter"
// @Success 200 {array} store.GameDetails
// @Failure 400 {object} object{message=string}
// @Failure 500 {object} object{message=string}
// @Router /api/games [get]
func GetGames(catalog Catalog) gin.HandlerFunc {
	return gameList(catalog.GetAllGames, "Failed to fetch games")
}

// @Summary Special offers
// @Description Returns at most 4 games on special offer
// @Tags catalog
// @Produce json
// @Param categoryId query int false "Category filter"
// @Success 200 {array} store.GameDetails
// @Failure 400 {object} object{message=string}
// @Failure 500 {object} object{message=string}
// @Router /api/games/special-offers [get]
func GetSpecialOffers(catalog Catalog) gin.HandlerFunc {
	return gameList(catalog.GetSpecialOfferGames, "Failed to fetch special offers")
}

// @Summary New releases
// @Description Returns at most 4 newly released games
// @Tags catalog
// @Produce json
// @Param categoryId query int false "Category filter"
// @Success 200 {array} store.GameDetails
// @Failure 400 {object} object{message=string}
// @Failure 500 {object} object{message=string}
// @Router /api/games/new-releases [get]
func GetNewReleases(catalog Catalog) gin.HandlerFunc {
	return gameList(catalog.GetNewReleaseGames, "Failed to fetch new releases")
}

// @Summary Popular games
// @Description Returns at most 4 popular games
// @Tags catalog
// @Produce json
// @Param categoryId query int false "Category filter"
// @Success 200 {array} store.GameDetails
// @Failure 400 {object} object{message=string}
// @Failure 500 {object} object{message=string}
// @Router /api/games/popular [get]
func GetPopularGames(catalog Catalog) gin.HandlerFunc {
	return gameList(catalog.GetPopularGames, "Failed to fetch popular games")
}

// @Summary Featured game
// @Description Returns the featured game with screenshots, or null when none is featured
// @Tags catalog
// @Produce json
// @Success 200 {object} store.GameDetails
// @Failure 500 {object} object{message=string}
// @Router /api/games/featured [get]
func GetFeaturedGame(catalog Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		game, err := catalog.GetFeaturedGame(c.Request.Context())
		if err != nil {
			utils.Fail(c, err, "Failed to fetch featured game")
			return
		}
		// A nil game is written as null
		c.JSON(http.StatusOK, game)
	}
}

// @Summary Game details
// @Description Returns one game with its screenshots and categories
// @Tags catalog
// @Produce json
// @Param id path int true "Game ID"
// @Success 200 {object} store.GameDetails
// @Failure 404 {object} object{message=string}
// @Failure 500 {object} object{message=string}
// @Router /api/games/{id} [get]
func GetGame(catalog Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := utils.ParseID(c.Param("id"))
		if !ok {
			utils.Fail(c, store.ErrGameNotFound, "")
			return
		}
		game, err := catalog.GetGameByID(c.Request.Context(), id)
		if err != nil {
			utils.Fail(c, err, "Failed to fetch game details")
			return
		}
		c.JSON(http.StatusOK, game)
	}
}

type gameLister func(ctx context.Context, categoryID *uint) ([]store.GameDetails, error)

func gameList(list gameLister, failure string) gin.HandlerFunc {
	return func(c *gin.Context) {
		categoryID, err := utils.OptionalCategoryID(c)
		if err != nil {
			utils.Fail(c, err, failure)
			return
		}
		games, err := list(c.Request.Context(), categoryID)
		if err != nil {
			utils.Fail(c, err, failure)
			return
		}
		c.JSON(http.StatusOK, games)
	}
}
