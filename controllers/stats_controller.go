package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Stats reports table totals, configured sources and, with redis, feed views.
func (uc *UpdateController) Stats(sourcesCount int) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		stats, err := uc.store.Stats(ctx)
		if err != nil {
			respondError(c, err)
			return
		}
		stats.SourcesCount = sourcesCount

		counts, err := uc.views.All(ctx)
		if err != nil {
			uc.log.Logf("WARN read view counts, %v", err)
		}
		stats.Views = counts

		c.JSON(http.StatusOK, gin.H{"success": true, "stats": stats})
	}
}
