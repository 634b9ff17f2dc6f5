package server

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"

	"github.com/ashleyjkell/craftidad-landing/internal/auth"
	"github.com/ashleyjkell/craftidad-landing/internal/models"
	"github.com/ashleyjkell/craftidad-landing/internal/store"
)

// HandleGetLinks serves the public link list: active links only, sorted by
// their order field.
func (s *Server) HandleGetLinks(w http.ResponseWriter, r *http.Request) {
	links, err := s.store.GetLinks(r.Context())
	if err != nil {
		writeStorageError(w, "load links", err)
		return
	}

	visible := make([]models.Link, 0, len(links))
	for _, l := range links {
		if l.Active {
			visible = append(visible, l)
		}
	}

	writeJSON(w, http.StatusOK, visible)
}

func (s *Server) HandleGetTheme(w http.ResponseWriter, r *http.Request) {
	theme, err := s.store.GetTheme(r.Context())
	if err != nil {
		writeStorageError(w, "load theme", err)
		return
	}
	writeJSON(w, http.StatusOK, theme)
}

func (s *Server) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := s.store.GetProfile(r.Context())
	if err != nil {
		writeStorageError(w, "load profile", err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (s *Server) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", CodeInvalidInput)
		return
	}
	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Username and password are required", CodeInvalidInput)
		return
	}

	addr := clientAddr(r)
	if !s.limiter.Attempt(addr) {
		writeError(w, http.StatusTooManyRequests, "Too many login attempts, try again later", CodeRateLimited)
		return
	}

	record, err := s.store.GetAuth(r.Context())
	if errors.Is(err, store.ErrNotFound) {
		slog.Warn("Login attempted but no admin credentials are configured")
		writeError(w, http.StatusUnauthorized, "Invalid username or password", CodeInvalidCredentials)
		return
	}
	if err != nil {
		writeStorageError(w, "load credentials", err)
		return
	}

	if req.Username != record.Username || !auth.VerifyPassword(record.PasswordHash, req.Password) {
		writeError(w, http.StatusUnauthorized, "Invalid username or password", CodeInvalidCredentials)
		return
	}

	s.limiter.Reset(addr)
	token := s.createSession(req.Username)
	http.SetCookie(w, &http.Cookie{
		Name:     "session",
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		MaxAge:   int(sessionTTL.Seconds()),
		SameSite: http.SameSiteStrictMode,
	})

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (s *Server) HandleLogout(w http.ResponseWriter, r *http.Request) {
	token := s.getSessionFromRequest(r)
	s.deleteSession(token)

	http.SetCookie(w, &http.Cookie{
		Name:     "session",
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (s *Server) HandleAuthStatus(w http.ResponseWriter, r *http.Request) {
	token := s.getSessionFromRequest(r)
	sess, ok := s.lookupSession(token)
	if !ok {
		writeJSON(w, http.StatusOK, map[string]any{"isAuthenticated": false})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"isAuthenticated": true,
		"username":        sess.username,
	})
}

func (s *Server) HandleIndexPage(w http.ResponseWriter, r *http.Request) {
	s.servePage(w, "static/index.html")
}

func (s *Server) HandleAdminPage(w http.ResponseWriter, r *http.Request) {
	s.servePage(w, "static/admin.html")
}

func (s *Server) servePage(w http.ResponseWriter, path string) {
	file, err := s.assets.Open(path)
	if err != nil {
		slog.Error("Failed to open page asset", "path", path, "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	defer func() { _ = file.Close() }()
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = io.Copy(w, file)
}

func (s *Server) serveFile(path string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		file, err := s.assets.Open(path)
		if err != nil {
			http.Error(w, "File not found", http.StatusNotFound)
			return
		}
		defer func() { _ = file.Close() }()
		_, _ = io.Copy(w, file)
	}
}

func (s *Server) cacheControl(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/static/") {
			w.Header().Set("Cache-Control", "public, max-age=86400")
			next.ServeHTTP(w, r)
			return
		}
		w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		next.ServeHTTP(w, r)
	})
}

// clientAddr keys the login limiter. RealIP middleware has already rewritten
// RemoteAddr from the forwarding headers where present.
func clientAddr(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
