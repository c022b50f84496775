package routes

import (
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/onamfest/scorekeeper/handlers"
	"github.com/onamfest/scorekeeper/middleware"
	"github.com/onamfest/scorekeeper/services"
)

type Config struct {
	CORSOrigins        []string
	LogoUploadsEnabled bool
}

// SetupRoutes mounts the API tree. Reads are public; every mutating route
// sits behind the authentication gate.
func SetupRoutes(
	router *chi.Mux,
	cfg Config,
	tokenService services.TokenService,
	authHandler *handlers.AuthHandler,
	teamHandler *handlers.TeamHandler,
	memberHandler *handlers.MemberHandler,
	eventHandler *handlers.EventHandler,
	resultHandler *handlers.ResultHandler,
	pointsConfigHandler *handlers.PointsConfigHandler,
	scoreboardHandler *handlers.ScoreboardHandler,
	dashboardHandler *handlers.DashboardHandler,
) {
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	authenticate := middleware.Authenticate(tokenService)

	router.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", authHandler.Login)

		r.Route("/teams", func(r chi.Router) {
			r.Get("/", teamHandler.List)

			r.Group(func(r chi.Router) {
				r.Use(authenticate)
				r.Post("/", teamHandler.Create)
				if cfg.LogoUploadsEnabled {
					r.Post("/{teamID}/logo", teamHandler.UploadLogo)
				}
			})
		})

		r.Route("/members", func(r chi.Router) {
			r.Get("/", memberHandler.List)
			r.Get("/team/{teamID}", memberHandler.ListByTeam)

			r.Group(func(r chi.Router) {
				r.Use(authenticate)
				r.Post("/", memberHandler.Create)
				r.Delete("/{memberID}", memberHandler.Delete)
			})
		})

		r.Route("/events", func(r chi.Router) {
			r.Get("/", eventHandler.List)

			r.Group(func(r chi.Router) {
				r.Use(authenticate)
				r.Post("/", eventHandler.Create)
				r.Put("/{eventID}", eventHandler.Update)
				r.Delete("/{eventID}", eventHandler.Delete)
			})
		})

		r.Route("/results", func(r chi.Router) {
			r.Get("/", resultHandler.List)

			r.Group(func(r chi.Router) {
				r.Use(authenticate)
				r.Post("/", resultHandler.Create)
			})
		})

		r.Route("/points-config", func(r chi.Router) {
			r.Get("/", pointsConfigHandler.Get)

			r.Group(func(r chi.Router) {
				r.Use(authenticate)
				r.Put("/", pointsConfigHandler.Update)
			})
		})

		r.Get("/scoreboard", scoreboardHandler.Get)
		r.Get("/dashboard", dashboardHandler.GetStats)
	})
}
