package server

import (
	"github.com/labstack/echo/v4"

	"github.com/pinedance/datalink/internal/server/routes"
)

func RegisterRoutes(e *echo.Echo) {
	// Health check route
	e.GET("/health", func(c echo.Context) error {
		return c.String(200, "OK")
	})

	// Raw artifact routes, matching the static-site fetch paths
	e.GET("/data/*", routes.GetArtifactHandler)

	apiRoutes := e.Group("/api")

	apiRoutes.GET("/network", routes.GetNetworkHandler)
	apiRoutes.GET("/entities", routes.GetEntitiesMetaHandler)
	apiRoutes.GET("/entities/:id", routes.GetEntityHandler)
	apiRoutes.GET("/relationships", routes.GetRelationshipsHandler)
	apiRoutes.POST("/cache/reset", routes.ResetCacheHandler)
}
