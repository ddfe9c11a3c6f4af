package routes

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/KeyongL/lipid-guard/config"
	"github.com/KeyongL/lipid-guard/controllers"

	"github.com/gin-gonic/gin"
)

func SetupRouter(cfg *config.Config) *gin.Engine {
	r := gin.Default()

	api := r.Group("/api")
	{
		api.GET("/health", controllers.Health)

		api.GET("/foods", controllers.ListFoods)
		api.GET("/foods/search", controllers.SearchFoods)
		api.POST("/foods", controllers.AddFood)
		api.DELETE("/foods/:id", controllers.DeleteFood)

		api.GET("/logs", controllers.ListLogs)
		api.POST("/logs", controllers.AddLog)
		api.DELETE("/logs/:id", controllers.DeleteLog)

		api.GET("/summary", controllers.GetSummary)
	}

	if cfg.IsProduction() {
		// Pre-built client assets; anything unmatched falls back to the
		// entry document so client-side routing works.
		r.Static("/assets", filepath.Join(cfg.StaticDir, "assets"))
		r.StaticFile("/favicon.ico", filepath.Join(cfg.StaticDir, "favicon.ico"))
		r.NoRoute(func(c *gin.Context) {
			if strings.HasPrefix(c.Request.URL.Path, "/api/") {
				c.JSON(http.StatusNotFound, gin.H{"error": "Not Found"})
				return
			}
			c.File(filepath.Join(cfg.StaticDir, "index.html"))
		})
	} else {
		// In development the build tool's own server handles assets.
		r.NoRoute(func(c *gin.Context) {
			c.String(http.StatusNotFound, "Not Found")
		})
	}

	return r
}
