package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	r.Use(httprate.Limit(500, time.Minute))
	r.Use(middleware.Heartbeat("/health"))
	r.Use(s.cacheControl)

	r.Mount("/static", http.FileServer(s.assets))

	r.Handle("/robots.txt", s.serveFile("static/robots.txt"))

	r.Get("/", s.HandleIndexPage)
	r.Get("/admin", s.HandleAdminPage)

	r.Route("/api", func(r chi.Router) {
		r.Get("/links", s.HandleGetLinks)
		r.Get("/theme", s.HandleGetTheme)
		r.Get("/profile", s.HandleGetProfile)

		r.Post("/login", s.HandleLogin)
		r.Post("/logout", s.HandleLogout)
		r.Get("/auth/status", s.HandleAuthStatus)

		r.Route("/admin", func(r chi.Router) {
			r.Use(s.RequireAuth)
			r.Get("/links", s.HandleAdminListLinks)
			r.Post("/links", s.HandleAdminCreateLink)
			// Registered before the {id} routes so "reorder" is never
			// captured as a link id.
			r.Put("/links/reorder", s.HandleAdminReorderLinks)
			r.Put("/links/{id}", s.HandleAdminUpdateLink)
			r.Delete("/links/{id}", s.HandleAdminDeleteLink)
			r.Get("/theme", s.HandleAdminGetTheme)
			r.Put("/theme", s.HandleAdminUpdateTheme)
			r.Get("/profile", s.HandleAdminGetProfile)
			r.Put("/profile", s.HandleAdminUpdateProfile)
			r.Get("/config", s.HandleAdminGetConfig)
			r.Put("/config", s.HandleAdminUpdateConfig)
			r.Get("/icons/search", s.HandleAdminSearchIcons)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/") {
			writeError(w, http.StatusNotFound, "Not found", CodeNotFound)
			return
		}
		http.Redirect(w, r, "/", http.StatusMovedPermanently)
	})

	return r
}
