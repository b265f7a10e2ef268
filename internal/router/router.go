package router

import (
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	mw "socialnet/internal/middleware"
	"socialnet/internal/middleware/metrics"
	"socialnet/internal/setup"
)

// New creates and configures the router with all the routes.
func New(deps *setup.Dependencies) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: deps.Config.Server.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Accept-Language"},
	}))
	r.Use(metrics.Middleware)
	r.Use(mw.CacheControl(5 * time.Minute))

	h := deps.Handler
	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.NotFound)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/", h.Root)

		r.Route("/users", func(r chi.Router) {
			r.Get("/", h.ListUsers)
			r.Post("/", h.CreateUser)
			r.Get("/{id}", h.GetUser)
			r.Put("/{id}", h.UpdateUser)
			r.Delete("/{id}", h.DeleteUser)
		})

		r.Route("/posts", func(r chi.Router) {
			r.Get("/", h.ListPosts)
			r.Post("/", h.CreatePost)
			r.Get("/user/{id}", h.ListPostsByUser)
			r.Get("/tag/{tag}", h.ListPostsByTag)
			r.Get("/{id}", h.GetPost)
			r.Put("/{id}", h.UpdatePost)
			r.Delete("/{id}", h.DeletePost)
		})

		r.Route("/comments", func(r chi.Router) {
			r.Get("/", h.ListComments)
			r.Post("/", h.CreateComment)
			r.Get("/post/{id}", h.ListCommentsByPost)
			r.Get("/user/{id}", h.ListCommentsByUser)
			r.Delete("/{id}", h.DeleteComment)
		})

		r.Get("/tags", h.ListTags)
	})

	r.Get("/health", h.Health)
	r.Method("GET", "/metrics", promhttp.Handler())

	return r
}
