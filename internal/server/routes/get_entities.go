package routes

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pinedance/datalink/internal/server/middleware"
	"github.com/pinedance/datalink/pkg/catalog"
)

// GetEntityHandler serves a single entity document by id.
func GetEntityHandler(c echo.Context) error {
	type getEntityParams struct {
		ID string `param:"id" validate:"required"`
	}

	params := new(getEntityParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request params"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request params"})
	}

	store := c.(*middleware.AppContext).App.Store

	data, err := store.Get("entities/" + params.ID + ".json")
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Entity not found"})
	}

	return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, data)
}

// GetRelationshipsHandler serves the relationship index, optionally
// filtered to relationships touching one entity on either side.
func GetRelationshipsHandler(c echo.Context) error {
	type getRelationshipsParams struct {
		Entity string `query:"entity"`
	}

	params := new(getRelationshipsParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request params"})
	}

	store := c.(*middleware.AppContext).App.Store

	data, err := store.Get("relationships.json")
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Artifacts have not been compiled"})
	}

	if params.Entity == "" {
		return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, data)
	}

	var relationships []catalog.Relationship
	if err := json.Unmarshal(data, &relationships); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Corrupt relationship index"})
	}

	filtered := make([]catalog.Relationship, 0)
	for _, rel := range relationships {
		if rel.HasEndpoint(params.Entity) {
			filtered = append(filtered, rel)
		}
	}

	return c.JSON(http.StatusOK, filtered)
}
