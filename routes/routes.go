package routes

import (
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"bracketpool/handlers"
	"bracketpool/middleware"
	"bracketpool/models"
)

// SetupRoutes wires the full route tree. Everything except register/login
// sits behind the JWT guard; admin mutations additionally require the
// admin role.
func SetupRoutes(
	router *chi.Mux,
	jwtSecret string,
	authHandler *handlers.AuthHandler,
	bracketHandler *handlers.BracketHandler,
	scoreboardHandler *handlers.ScoreboardHandler,
	gameHandler *handlers.GameHandler,
	teamHandler *handlers.TeamHandler,
	adminHandler *handlers.AdminHandler,
	webSocketHandler *handlers.WebSocketHandler,
) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Post("/register", authHandler.Register)
	router.Post("/login", authHandler.Login)

	router.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate([]byte(jwtSecret)))

		// WebSocket clients pass the JWT as a `token` query parameter.
		r.Get("/ws/pool", webSocketHandler.ServeWs)

		r.Get("/bracket", bracketHandler.GetBracket)
		r.Post("/submit-picks", bracketHandler.SubmitPicks)
		r.Post("/reset-picks", bracketHandler.ResetPicks)

		r.Get("/scoreboard", scoreboardHandler.GetScoreboard)
		r.Get("/games", gameHandler.UpcomingGames)
		r.Get("/teams", teamHandler.ListTeams)

		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.Authorize(models.RoleAdmin))

			r.Get("/games", adminHandler.ListGames)
			r.Put("/games/{gameID}/winner", adminHandler.ResolveWinner)
			r.Put("/teams/{teamID}/logo", adminHandler.UploadTeamLogo)
		})
	})
}
