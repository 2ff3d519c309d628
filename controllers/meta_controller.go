package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type IMetaController interface {
	Index(ctx *gin.Context)
	Health(ctx *gin.Context)
	APIHealth(ctx *gin.Context)
}

type MetaController struct {
	pingStore func() bool
}

func NewMetaController(pingStore func() bool) IMetaController {
	return &MetaController{pingStore: pingStore}
}

func (c *MetaController) Index(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"message": "BlueTech Backend API",
		"version": "1.0",
		"endpoints": gin.H{
			"auth":     []string{"/api/auth/signup", "/api/auth/login"},
			"products": []string{"/api/products", "/api/products/:id"},
			"users":    []string{"/api/users", "/api/users/:id"},
			"orders":   []string{"/api/orders"},
			"health":   "/health",
		},
	})
}

func (c *MetaController) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status":    "Backend API is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// APIHealth はストア接続の状態もあわせて返す
func (c *MetaController) APIHealth(ctx *gin.Context) {
	mongodb := "disconnected"
	if c.pingStore() {
		mongodb = "connected"
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"mongodb":   mongodb,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
