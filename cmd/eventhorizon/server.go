package main

import (
	"net/http"
	"strings"

	"github.com/rs/cors"

	"eventhorizon/internal/app/artists"
	"eventhorizon/internal/app/dashboard"
	"eventhorizon/internal/app/events"
	"eventhorizon/internal/app/favorites"
	"eventhorizon/internal/app/follows"
	"eventhorizon/internal/app/reviews"
	"eventhorizon/internal/app/users"
	"eventhorizon/internal/auth"
	"eventhorizon/internal/httpapi"
	"eventhorizon/internal/store"
	"eventhorizon/shared/go/middleware"
)

func newHTTPHandler(cfg Config, dataStore *store.Store) http.Handler {
	tokens := auth.NewTokenManager(cfg.JWTSecret)

	userSvc := users.New(dataStore, tokens)
	artistSvc := artists.New(dataStore)
	eventSvc := events.New(dataStore)
	followSvc := follows.New(dataStore)
	favoriteSvc := favorites.New(dataStore)
	reviewSvc := reviews.New(dataStore)
	dashboardSvc := dashboard.New(dataStore)

	api := httpapi.New(userSvc, artistSvc, eventSvc, followSvc, favoriteSvc, reviewSvc, dashboardSvc, tokens)

	authLimiter := middleware.NewRateLimiter(cfg.AuthRateRPS, cfg.AuthRateBurst)
	handler := throttleAuthRoutes(authLimiter, api.Routes())

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           3600,
	})

	chained := middleware.RequestLogging()(
		middleware.Recovery()(
			corsHandler.Handler(handler),
		),
	)

	return chained
}

// throttleAuthRoutes rate limits the credential endpoints only; browsing the
// directory stays unthrottled.
func throttleAuthRoutes(limiter *middleware.RateLimiter, next http.Handler) http.Handler {
	limited := limiter.Middleware(next)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/v1/auth/") {
			limited.ServeHTTP(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}
