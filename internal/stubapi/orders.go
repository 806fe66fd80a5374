package stubapi

import (
	"log/slog"
	"net/http"
	"strconv"

	"furnistore/internal/domain"

	"github.com/gin-gonic/gin"
)

type checkoutItemRequest struct {
	ID       int64  `json:"id"`
	Quantity int    `json:"quantity"`
	Color    string `json:"color"`
}

func checkoutHandler(logger *slog.Logger, store *memoryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Items    []checkoutItemRequest `json:"items"`
			Shipping domain.Shipping       `json:"shipping"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body"})
			return
		}
		if len(req.Items) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "select at least one item"})
			return
		}

		a := currentAccount(c)
		order, ok := store.consumeCart(a, req.Items, req.Shipping)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "no matching cart items"})
			return
		}
		logger.Info("order created", "order_id", order.ID, "customer", a.Username, "total", order.Total)
		c.JSON(http.StatusCreated, order)
	}
}

func listOrdersHandler(store *memoryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, store.listOrders())
	}
}

func getOrderHandler(store *memoryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, ok := store.orderByID(pathID(c))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"detail": "order not found"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

func markOrderPaidHandler(store *memoryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, ok := store.setOrderStatus(pathID(c), domain.OrderStatusPaid)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"detail": "order not found"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

func updateOrderHandler(store *memoryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Status string `json:"status"`
		}
		if err := c.ShouldBindJSON(&req); err != nil || req.Status == "" {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "status required"})
			return
		}
		switch req.Status {
		case domain.OrderStatusPending, domain.OrderStatusPaid, domain.OrderStatusShipped:
		default:
			c.JSON(http.StatusBadRequest, gin.H{"detail": "unsupported status"})
			return
		}
		order, ok := store.setOrderStatus(pathID(c), req.Status)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"detail": "order not found"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

func pathID(c *gin.Context) int64 {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
	return id
}
