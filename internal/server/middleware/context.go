package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/pinedance/datalink/internal/storage"
)

// App holds the shared dependencies handlers need: the artifact store owned
// by this server session.
type App struct {
	Store *storage.Store
}

// AppContext wraps the echo context with the application dependencies.
type AppContext struct {
	echo.Context
	App *App
}

// AppContextMiddleware attaches the artifact store to every request
// context.
func AppContextMiddleware(store *storage.Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cc := &AppContext{c, &App{Store: store}}
			return next(cc)
		}
	}
}
