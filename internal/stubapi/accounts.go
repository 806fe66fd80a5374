package stubapi

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

func tokenHandler(store *memoryStore, tokens *tokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body"})
			return
		}
		a, ok := store.authenticate(strings.TrimSpace(req.Username), req.Password)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "invalid credentials"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"access":  tokens.Issue(a.ID, tokenKindAccess),
			"refresh": tokens.Issue(a.ID, tokenKindRefresh),
		})
	}
}

func refreshHandler(tokens *tokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Refresh string `json:"refresh"`
		}
		if err := c.ShouldBindJSON(&req); err != nil || req.Refresh == "" {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "refresh token required"})
			return
		}
		userID, ok := tokens.Validate(req.Refresh, tokenKindRefresh)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "invalid or expired refresh token"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"access": tokens.Issue(userID, tokenKindAccess)})
	}
}

func registerHandler(logger *slog.Logger, store *memoryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Username  string `json:"username"`
			Email     string `json:"email"`
			Password  string `json:"password"`
			FirstName string `json:"first_name"`
			LastName  string `json:"last_name"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body"})
			return
		}
		req.Username = strings.TrimSpace(req.Username)
		req.Email = strings.TrimSpace(strings.ToLower(req.Email))
		if req.Username == "" || req.Email == "" {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "username and email required"})
			return
		}
		if len(req.Password) < 8 {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "password must be at least 8 characters"})
			return
		}

		a, err := store.createAccount(req.Username, req.Email, req.Password, req.FirstName, req.LastName, false)
		if err != nil {
			if errors.Is(err, errAccountExists) {
				c.JSON(http.StatusConflict, gin.H{"detail": "account already exists"})
				return
			}
			logger.Error("create account", "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "internal error"})
			return
		}
		c.JSON(http.StatusCreated, a.identity())
	}
}

func meHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, currentAccount(c).identity())
	}
}
