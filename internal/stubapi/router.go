package stubapi

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const ctxAccountKey = "stubapi.account"

// buildRouter wires the API surface the storefront client consumes.
func buildRouter(logger *slog.Logger, store *memoryStore, tokens *tokenManager) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"http://localhost:5173", "http://localhost:3000"},
		AllowMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Authorization", "Content-Type"},
	}))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")

	accounts := api.Group("/accounts")
	accounts.POST("/token/", tokenHandler(store, tokens))
	accounts.POST("/token/refresh/", refreshHandler(tokens))
	accounts.POST("/register/", registerHandler(logger, store))
	accounts.GET("/me/", authRequired(store, tokens), meHandler())

	cart := api.Group("/cart", authRequired(store, tokens))
	cart.GET("/", cartHandler(store))
	cart.POST("/add/", cartAddHandler(store))
	cart.POST("/remove/", cartRemoveHandler(store))

	orders := api.Group("/orders", authRequired(store, tokens))
	orders.POST("/checkout/", checkoutHandler(logger, store))
	orders.GET("/", staffRequired(), listOrdersHandler(store))
	orders.GET("/:id/", staffRequired(), getOrderHandler(store))
	orders.POST("/:id/mark_paid/", staffRequired(), markOrderPaidHandler(store))
	orders.PATCH("/:id/", staffRequired(), updateOrderHandler(store))

	catalog := api.Group("/catalog")
	catalog.GET("/products/", listProductsHandler(store))
	catalog.GET("/products/:id/", getProductHandler(store))
	catalog.GET("/categories/", listCategoriesHandler(store))

	blogs := api.Group("/blogs")
	blogs.GET("/", authOptional(store, tokens), listBlogsHandler(store))
	blogs.GET("/:id/", authOptional(store, tokens), getBlogHandler(store))
	blogs.POST("/", authRequired(store, tokens), staffRequired(), createBlogHandler(store))
	blogs.PATCH("/:id/", authRequired(store, tokens), staffRequired(), updateBlogHandler(store))
	blogs.DELETE("/:id/", authRequired(store, tokens), staffRequired(), deleteBlogHandler(store))

	newsletter := api.Group("/newsletter")
	newsletter.POST("/subscribe/", subscribeHandler(store))
	newsletter.GET("/", authRequired(store, tokens), staffRequired(), listSubscribersHandler(store))
	newsletter.PATCH("/:id/", authRequired(store, tokens), staffRequired(), patchSubscriberHandler(store))
	newsletter.DELETE("/:id/", authRequired(store, tokens), staffRequired(), deleteSubscriberHandler(store))

	return router
}

// authRequired resolves the bearer token to an account or aborts with 401.
func authRequired(store *memoryStore, tokens *tokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "authentication required"})
			return
		}
		userID, valid := tokens.Validate(token, tokenKindAccess)
		if !valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "invalid or expired token"})
			return
		}
		a, found := store.accountByID(userID)
		if !found {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "unknown account"})
			return
		}
		c.Set(ctxAccountKey, a)
		c.Next()
	}
}

// authOptional resolves a bearer token when one is presented but lets the
// request through either way. Used on endpoints whose response widens for
// staff.
func authOptional(store *memoryStore, tokens *tokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.Next()
			return
		}
		if userID, valid := tokens.Validate(token, tokenKindAccess); valid {
			if a, found := store.accountByID(userID); found {
				c.Set(ctxAccountKey, a)
			}
		}
		c.Next()
	}
}

// staffRequired aborts with 403 for non-staff accounts. It must run after
// authRequired.
func staffRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if a := currentAccount(c); a == nil || !a.IsStaff {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"detail": "staff only"})
			return
		}
		c.Next()
	}
}

func currentAccount(c *gin.Context) *account {
	v, ok := c.Get(ctxAccountKey)
	if !ok {
		return nil
	}
	a, _ := v.(*account)
	return a
}
