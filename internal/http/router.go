package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/storekit/catalog-api/internal/http/handlers"
)

var allowedOrigins = []string{"*"}

func SetAllowedOrigins(origins []string) {
	if len(origins) > 0 {
		allowedOrigins = origins
	}
}

func NewRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.Logger)
	r.Use(Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.NotFound(handlers.RouteNotFoundHandler)
	r.MethodNotAllowed(handlers.RouteNotFoundHandler)

	r.Get("/", handlers.RootHandler)
	r.Get("/health", handlers.HealthHandler)

	// Public auth endpoints: rate limited, need the database.
	r.Group(func(r chi.Router) {
		r.Use(RateLimitMiddleware)
		r.Use(RequireReady)
		r.Post("/signup", handlers.SignupHandler)
		r.Post("/login", handlers.LoginHandler)
	})

	// Everything below requires a valid session.
	r.Group(func(r chi.Router) {
		r.Use(RequireReady)
		r.Use(AuthMiddleware)

		r.Get("/users", handlers.GetUsersHandler)
		r.Get("/user/{id}", handlers.GetUserByIDHandler)

		r.Get("/products", handlers.GetProductsHandler)
		r.Get("/product/{id}", handlers.GetProductByIDHandler)
		r.Post("/products", handlers.CreateProductsHandler)
		r.Put("/product/{id}", handlers.UpdateProductHandler)
		r.Patch("/product/{id}", handlers.PatchProductHandler)
		r.Delete("/product/{id}", handlers.DeleteProductHandler)
		r.Delete("/products", handlers.DeleteProductsHandler)
	})

	return r
}

// Recoverer converts panics into the standard 500 JSON envelope instead of
// chi's plain-text response.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil && rec != http.ErrAbortHandler {
				handlers.WriteInternalError(w, rec)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
