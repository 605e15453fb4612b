package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/gitroast/gitroast/internal/services"
)

// TrackRequests records every API hit in the analytics log
func TrackRequests(analyticsService *services.AnalyticsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}

		analyticsService.Track("api", c.Request.Method+" "+route, "", c.Writer.Status())
	}
}
