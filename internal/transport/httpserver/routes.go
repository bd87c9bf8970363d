package httpserver

import (
	"net/http"
	"time"

	"menu-app-go/internal/config"
	"menu-app-go/internal/transport/httpserver/handler"
	authmw "menu-app-go/internal/transport/httpserver/middleware"
	"menu-app-go/pkg/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(cfg config.Config, handlers *handler.Handlers, perf *authmw.PerfRecorder, log logger.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(authmw.NewCORS(cfg.CORS.AllowedOrigins))
	if perf != nil {
		r.Use(perf.Middleware)
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.Health)
		r.Get("/public/menus/{slug}", handlers.GetPublicMenu)
		r.Get("/languages", handlers.ListLanguages)

		auth := authmw.NewSupabaseAuth(cfg.Supabase, log)
		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware)

			r.Get("/auth/me", handlers.AuthMe)

			r.Get("/menus", handlers.ListMenus)
			r.Post("/menus", handlers.UpsertMenu)
			r.Get("/menus/{slug}", handlers.GetOwnedMenu)
			r.Delete("/menus/{id}", handlers.DeleteMenu)
			r.Post("/menus/{id}/publish", handlers.PublishMenu)
			r.Post("/menus/{id}/unpublish", handlers.UnpublishMenu)
			r.Put("/menus/{id}/images/{kind}", handlers.UpdateMenuImage)
			r.Put("/menus/{id}/socials", handlers.UpdateMenuSocialLinks)
			r.Put("/menus/{id}/languages", handlers.SetMenuLanguages)

			r.Post("/menus/{id}/categories", handlers.UpsertCategory)
			r.Delete("/categories/{id}", handlers.DeleteCategory)

			r.Post("/menus/{id}/dishes", handlers.UpsertDish)
			r.Delete("/dishes/{id}", handlers.DeleteDish)
			r.Put("/dishes/{id}/picture", handlers.UpdateDishPicture)

			r.Post("/dishes/{id}/variants", handlers.UpsertVariant)
			r.Delete("/variants/{id}", handlers.DeleteVariant)

			r.Get("/metrics/response-times", handlers.ResponseTimes)
		})
	})

	return r
}
