package routes

import (
	"fmt"
	"io/fs"
	"net/http"

	"github.com/D1Massacre007/York-Realty/internal/app"
	"github.com/D1Massacre007/York-Realty/internal/handler"
	"github.com/D1Massacre007/York-Realty/internal/middleware"
	"github.com/D1Massacre007/York-Realty/internal/storage"
	"github.com/D1Massacre007/York-Realty/web"
)

func SetupRoutes(a *app.App) http.Handler {
	// Handlers
	listing := handler.NewListingHandler(a.ListingService)
	auth := handler.NewAuthHandler(a.AuthService)

	mux := http.NewServeMux()

	// Uploaded images (local storage only; S3 serves its own URLs)
	local, ok := a.Storage.(*storage.LocalStorage)
	if ok {
		mux.Handle("GET /uploads/", http.StripPrefix("/uploads/", http.FileServer(http.Dir(local.Root()))))
	}

	// Health
	mux.HandleFunc("GET /healthz", handler.Healthz)

	// Listings
	mux.HandleFunc("POST /listings", listing.Create)
	mux.HandleFunc("GET /listings", listing.List)
	mux.HandleFunc("GET /listings/featured", listing.Featured)
	mux.HandleFunc("GET /listings/{id}", listing.Show)

	// Auth (rate limited)
	rateLimiter := middleware.RateLimitAuth()
	mux.HandleFunc("POST /register", rateLimiter(auth.Register))
	mux.HandleFunc("POST /login", rateLimiter(auth.Login))

	// Browser front-end. A missing static root means the embed directive and
	// the on-disk layout disagree, which no request can recover from.
	site, err := fs.Sub(web.SiteFS, "static")
	if err != nil {
		panic(fmt.Sprintf("static assets unavailable: %v", err))
	}
	mux.Handle("/", http.FileServer(http.FS(site)))

	// Global middleware - executed in order (top to bottom)
	return middleware.Chain(
		mux,
		middleware.RequestLogging,
		middleware.CORS(a.Cfg.CORSAllowOrigin),
	)
}
