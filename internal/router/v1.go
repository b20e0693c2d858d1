package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/dictionary-api/internal/handler"
	"github.com/deppfellow/dictionary-api/internal/middleware"
)

func registerWordRoutes(g *echo.Group, h *handler.Handlers, auth *middleware.AuthMiddleware) {
	words := g.Group("/words")
	words.GET("", handler.HandlePage(h.Word.SearchWords, http.StatusOK))
	words.GET("/:id", handler.Handle(h.Word.GetWord, http.StatusOK))
	words.POST("", handler.Handle(h.Word.CreateWord, http.StatusCreated), auth.RequireAuth)
}

func registerExampleRoutes(g *echo.Group, h *handler.Handlers, auth *middleware.AuthMiddleware) {
	examples := g.Group("/examples")
	examples.GET("", handler.HandlePage(h.Example.SearchExamples, http.StatusOK))
	examples.GET("/:id", handler.Handle(h.Example.GetExample, http.StatusOK))
	examples.POST("", handler.Handle(h.Example.CreateExample, http.StatusCreated), auth.RequireAuth)
}

// registerSearchRoutes serves lookups in the bundled JSON dictionary.
func registerSearchRoutes(g *echo.Group, h *handler.Handlers) {
	g.GET("/search/words", handler.Handle(h.Dictionary.Lookup, http.StatusOK))
}
