package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health 存活探针
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "OK", "message": "server is running"})
}
