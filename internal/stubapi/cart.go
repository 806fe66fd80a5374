package stubapi

import (
	"net/http"

	"furnistore/internal/domain"

	"github.com/gin-gonic/gin"
)

func cartHandler(store *memoryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		a := currentAccount(c)
		c.JSON(http.StatusOK, gin.H{"items": store.cartItems(a.ID)})
	}
}

func cartAddHandler(store *memoryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			ProductID int64  `json:"product_id"`
			Quantity  int    `json:"quantity"`
			Color     string `json:"color"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body"})
			return
		}
		if req.Quantity <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "quantity must be positive"})
			return
		}
		product, ok := store.productByID(req.ProductID)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"detail": "product not found"})
			return
		}
		color := req.Color
		if color == "" {
			color = domain.DefaultColor
		}
		a := currentAccount(c)
		items := store.addCartItem(a.ID, product, req.Quantity, color)
		c.JSON(http.StatusOK, gin.H{"items": items})
	}
}

func cartRemoveHandler(store *memoryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			ItemID int64 `json:"item_id"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body"})
			return
		}
		a := currentAccount(c)
		// Removing an absent item is a no-op by design.
		items := store.removeCartItem(a.ID, req.ItemID)
		c.JSON(http.StatusOK, gin.H{"items": items})
	}
}
