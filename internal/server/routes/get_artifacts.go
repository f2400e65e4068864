package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pinedance/datalink/internal/server/middleware"
)

// GetArtifactHandler serves any compiled artifact below the data root,
// byte-for-byte as the compiler wrote it.
func GetArtifactHandler(c echo.Context) error {
	store := c.(*middleware.AppContext).App.Store

	data, err := store.Get(c.Param("*"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Artifact not found"})
	}

	return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, data)
}

// GetNetworkHandler serves the network graph payload.
func GetNetworkHandler(c echo.Context) error {
	store := c.(*middleware.AppContext).App.Store

	data, err := store.Get("network.json")
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Artifacts have not been compiled"})
	}

	return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, data)
}

// GetEntitiesMetaHandler serves the entity metadata index.
func GetEntitiesMetaHandler(c echo.Context) error {
	store := c.(*middleware.AppContext).App.Store

	data, err := store.Get("entities-meta.json")
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Artifacts have not been compiled"})
	}

	return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, data)
}

// ResetCacheHandler drops the server's artifact cache so the next request
// re-reads from disk. Useful after an out-of-band rebuild.
func ResetCacheHandler(c echo.Context) error {
	store := c.(*middleware.AppContext).App.Store
	store.Reset()
	return c.JSON(http.StatusOK, map[string]string{"message": "Cache cleared"})
}
