package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/FerdyAtmaja/forum-api-V2/backend/internal/setup"
	"github.com/FerdyAtmaja/forum-api-V2/shared/errors"
	mw "github.com/FerdyAtmaja/forum-api-V2/shared/middleware"
	"github.com/FerdyAtmaja/forum-api-V2/shared/middleware/metrics"
	"github.com/FerdyAtmaja/forum-api-V2/shared/utils"
)

// New builds the chi router with every route of the api.
func New(deps *setup.Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: deps.Config.Public.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		MaxAge:         300,
	}))
	r.Use(mw.SecurityHeaders(deps.Config.Public.SecureCookies))
	r.Use(metrics.Middleware)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteErrorAndStatusCode(w, errors.NotFound("route not found"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteErrorAndStatusCode(w, &errors.ErrorWithStatusCode{Message: "method not allowed", StatusCode: http.StatusMethodNotAllowed})
	})

	h := deps.Handler
	authMw := deps.AuthMiddleware

	// Ops
	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Handle("/metrics", promhttp.Handler())

	// Public
	r.Post("/users", h.RegisterUser)
	r.Route("/authentications", func(r chi.Router) {
		r.Post("/", h.Login)
		r.Put("/", h.RefreshToken)
		r.Delete("/", h.Logout)
	})
	r.Get("/threads/{threadId}", h.GetThread)

	// Logged-in user routes
	r.Group(func(r chi.Router) {
		r.Use(authMw.NeedAuth())

		r.Post("/threads", h.CreateThread)
		r.Route("/threads/{threadId}/comments", func(r chi.Router) {
			r.Post("/", h.CreateComment)
			r.Delete("/{commentId}", h.DeleteComment)
			r.Put("/{commentId}/likes", h.ToggleLike)
			r.Post("/{commentId}/replies", h.CreateReply)
			r.Delete("/{commentId}/replies/{replyId}", h.DeleteReply)
		})
	})

	return r
}
