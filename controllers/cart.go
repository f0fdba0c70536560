package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"Gamestore/services/store"
	"Gamestore/utils"

	"github.com/gin-gonic/gin"
)

// gameIDParam accepts the id as a JSON number or a numeric string
type gameIDParam uint

func (g *gameIDParam) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case float64:
		if v > 0 && v == float64(uint(v)) {
			*g = gameIDParam(v)
		}
	case string:
		if id, ok := utils.ParseID(v); ok {
			*g = gameIDParam(id)
		}
	}
	return nil
}

type addToCartRequest struct {
	GameID gameIDParam `json:"gameId"`
}

// @Summary Get cart
// @Description Returns the games in the caller's cart
// @Tags cart
// @Produce json
// @Success 200 {array} store.GameDetails
// @Failure 401 {object} object{message=string}
// @Failure 500 {object} object{message=string}
// @Router /api/cart [get]
func GetCart(cart Cart) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := utils.CurrentIdentity(c)
		games, err := cart.GetCartItems(c.Request.Context(), id)
		if err != nil {
			utils.Fail(c, err, "Failed to fetch cart items")
			return
		}
		c.JSON(http.StatusOK, games)
	}
}

// @Summary Add to cart
// @Description Adds a game to the caller's cart. Adding a game twice keeps one entry
// @Tags cart
// @Accept json
// @Produce json
// @Param body body object{gameId=integer} true "Game to add"
// @Success 201 {object} object{message=string}
// @Failure 400 {object} object{message=string}
// @Failure 401 {object} object{message=string}
// @Failure 404 {object} object{message=string}
// @Failure 500 {object} object{message=string}
// @Router /api/cart/add [post]
func AddToCart(cart Cart) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addToCartRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.GameID == 0 {
			utils.Fail(c, store.Invalid("Game ID is required"), "")
			return
		}
		id, _ := utils.CurrentIdentity(c)
		if _, err := cart.AddToCart(c.Request.Context(), id, uint(req.GameID)); err != nil {
			utils.Fail(c, err, "Failed to add game to cart")
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Game added to cart"})
	}
}

// @Summary Remove from cart
// @Description Removes a game from the caller's cart. Removing an absent game succeeds
// @Tags cart
// @Produce json
// @Param gameId path int true "Game ID"
// @Success 200 {object} object{message=string}
// @Failure 400 {object} object{message=string}
// @Failure 401 {object} object{message=string}
// @Failure 500 {object} object{message=string}
// @Router /api/cart/{gameId} [delete]
func RemoveFromCart(cart Cart) gin.HandlerFunc {
	return func(c *gin.Context) {
		gameID, err := strconv.ParseUint(c.Param("gameId"), 10, 64)
		if err != nil {
			utils.Fail(c, store.Invalid("Invalid game ID"), "")
			return
		}
		id, _ := utils.CurrentIdentity(c)
		if err := cart.RemoveFromCart(c.Request.Context(), id, uint(gameID)); err != nil {
			utils.Fail(c, err, "Failed to remove game from cart")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Game removed from cart"})
	}
}

// @Summary Clear cart
// @Description Removes every game from the caller's cart
// @Tags cart
// @Produce json
// @Success 200 {object} object{message=string}
// @Failure 401 {object} object{message=string}
// @Failure 500 {object} object{message=string}
// @Router /api/cart [delete]
func ClearCart(cart Cart) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := utils.CurrentIdentity(c)
		if err := cart.ClearCart(c.Request.Context(), id); err != nil {
			utils.Fail(c, err, "Failed to clear cart")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
