package httpserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"squadtab-go/internal/config"
	"squadtab-go/internal/transport/httpserver/handler"
	authmw "squadtab-go/internal/transport/httpserver/middleware"
	"squadtab-go/pkg/logger"
)

func NewRouter(cfg config.Config, handlers *handler.Handlers, profiles authmw.ProfileSaver, log logger.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(authmw.NewCORS(cfg.AllowedOrigins))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.Health)

		auth := authmw.NewSupabaseAuth(cfg.Supabase, profiles, log)
		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware)

			r.Get("/auth/me", handlers.AuthMe)

			r.Get("/drinks", handlers.ListDrinks)
			r.Get("/drinks/weekly", handlers.WeeklyDrinks)
			r.Get("/drinks/recent", handlers.RecentDrinks)
			r.Post("/drinks", handlers.CreateDrink)
			r.Put("/drinks/{id}", handlers.UpdateDrink)
			r.Delete("/drinks/{id}", handlers.DeleteDrink)

			r.Get("/groups", handlers.ListGroups)
			r.Post("/groups", handlers.CreateGroup)
			r.Get("/groups/{id}", handlers.GetGroup)
			r.Delete("/groups/{id}", handlers.DeleteGroup)
			r.Post("/groups/{id}/join", handlers.JoinGroup)
			r.Post("/groups/{id}/leave", handlers.LeaveGroup)
			r.Post("/groups/{id}/invite", handlers.InviteMember)
			r.Delete("/groups/{id}/members/{user_id}", handlers.RemoveMember)
			r.Patch("/groups/{id}/budget", handlers.UpdateGroupBudget)
			r.Get("/groups/{id}/members", handlers.ListGroupMembers)
			r.Get("/groups/{id}/progress", handlers.GroupProgress)
			r.Get("/groups/{id}/members/{user_id}/streak", handlers.GroupMemberStreak)
			r.Get("/groups/{id}/complete", handlers.GroupCompleteData)
			r.Get("/groups/{id}/leaderboard", handlers.GroupLeaderboard)
			r.Get("/groups/{id}/recent-drinks", handlers.GroupRecentDrinks)

			r.Get("/objectives/me", handlers.GetObjective)
			r.Post("/objectives", handlers.CreateObjective)
			r.Patch("/objectives/{id}", handlers.UpdateObjective)

			r.Get("/stats/me", handlers.StatsMe)
			r.Get("/stats/weekly", handlers.WeeklyStats)
			r.Get("/badges", handlers.Badges)

			r.Get("/users/search", handlers.SearchUsers)
		})
	})

	return r
}
