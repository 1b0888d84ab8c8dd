package controllers

import (
	"net/http"
	"time"

	"github.com/bdpublic/updates-api/utils"
	"github.com/gin-gonic/gin"
)

// Health is an unauthenticated liveness endpoint. It never touches the store.
func Health(server string, now func() time.Time) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": utils.ISOTime(now()),
			"server":    server,
		})
	}
}
