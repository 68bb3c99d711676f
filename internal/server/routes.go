// Package server exposes report generation over HTTP.
package server

import "github.com/gin-gonic/gin"

// SetupRoutes configures all API routes.
func SetupRoutes(handlers *Handlers) *gin.Engine {
	router := gin.Default()

	router.Use(corsMiddleware())

	api := router.Group("/api")
	{
		api.GET("/catalog", handlers.CatalogHandler)
		api.POST("/generate", handlers.GenerateHandler)
		api.POST("/ocr", handlers.OCRHandler)

		reports := api.Group("/reports")
		{
			reports.GET("", handlers.ListReportsHandler)
			reports.GET("/:id", handlers.GetReportHandler)
		}
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return router
}

// corsMiddleware adds CORS headers for browser clients.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
