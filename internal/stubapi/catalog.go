package stubapi

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

func listProductsHandler(store *memoryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, store.listProducts())
	}
}

func getProductHandler(store *memoryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, ok := store.productByID(pathID(c))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"detail": "product not found"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

func listCategoriesHandler(store *memoryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, store.listCategories())
	}
}

func subscribeHandler(store *memoryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Email string `json:"email"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body"})
			return
		}
		email := strings.TrimSpace(strings.ToLower(req.Email))
		if email == "" || !strings.Contains(email, "@") {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "valid email required"})
			return
		}
		c.JSON(http.StatusCreated, store.subscribe(email))
	}
}

func listSubscribersHandler(store *memoryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, store.listSubscribers())
	}
}

func patchSubscriberHandler(store *memoryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			IsActive *bool `json:"is_active"`
		}
		if err := c.ShouldBindJSON(&req); err != nil || req.IsActive == nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "is_active required"})
			return
		}
		if !store.setSubscriberActive(pathID(c), *req.IsActive) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "subscriber not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "updated"})
	}
}

func deleteSubscriberHandler(store *memoryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !store.deleteSubscriber(pathID(c)) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "subscriber not found"})
			return
		}
		c.Status(http.StatusNoContent)
	}
}
