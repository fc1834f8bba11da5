package app

import (
	"net/http"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "game-admin/docs" // registers the generated API description
	"game-admin/internal/common/ratelimit"
	"game-admin/internal/middleware"
)

// SetupRoutes configures all application routes
func (app *App) SetupRoutes() *mux.Router {
	router := mux.NewRouter()

	// Global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.LoggingMiddleware)

	router.HandleFunc("/health", app.Handlers.Health).Methods(http.MethodGet)
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Every RPC function shares one route. Middleware run outermost first:
	// rate limit, function lookup, signature, session token, permission
	// gate (attached per function), handler.
	rpc := middleware.Chain(app.Handlers.Dispatch(),
		ratelimit.HTTPMiddleware(app.RateLimiter, app.ClientIP.Key),
		app.Handlers.KnownFunction,
		middleware.Signed(middleware.SignedConfig{
			Authenticator:  app.Authenticator,
			LoginFunctions: app.Handlers.LoginFunctions(),
			MaxBodyBytes:   app.Config.MaxBodyBytes,
		}),
		app.Auth.RequireToken(app.Handlers.LoginFunctions()...),
	)
	router.Handle("/rpc/{function}", rpc).Methods(http.MethodPost)

	return router
}
