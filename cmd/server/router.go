package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/numconv-api/internal/api"
	apiMiddleware "github.com/phrazzld/numconv-api/internal/api/middleware"
)

// setupRouter creates the router with middleware and all routes.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(apiMiddleware.TraceMiddleware(app.logger))
	r.Use(apiMiddleware.Recoverer(api.RespondWithNormalizedError))

	// Set before Route so the subrouter inherits them.
	r.NotFound(api.NotFound)
	r.MethodNotAllowed(api.MethodNotAllowed)

	conversionHandler := api.NewConversionHandler(app.conversionService)

	r.Route(app.config.Server.BasePath, func(r chi.Router) {
		r.Post("/convertNumberToWords", conversionHandler.ConvertNumberToWords)
		r.Post("/convertNumberToDollars", conversionHandler.ConvertNumberToDollars)
	})

	r.Get("/health", api.Health)

	return r
}
