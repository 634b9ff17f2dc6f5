package server

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"time"
)

const sessionTTL = 24 * time.Hour

type session struct {
	username string
	expiry   time.Time
}

func (s *Server) createSession(username string) string {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		panic("failed to generate session token: " + err.Error())
	}
	token := hex.EncodeToString(bytes)

	s.sessionsMu.Lock()
	s.sessions[token] = session{
		username: username,
		expiry:   time.Now().Add(sessionTTL),
	}
	s.sessionsMu.Unlock()

	return token
}

// lookupSession returns the live session for token. Expired sessions are
// deleted on the way out.
func (s *Server) lookupSession(token string) (session, bool) {
	s.sessionsMu.RLock()
	sess, exists := s.sessions[token]
	s.sessionsMu.RUnlock()

	if !exists {
		return session{}, false
	}

	if time.Now().After(sess.expiry) {
		s.sessionsMu.Lock()
		delete(s.sessions, token)
		s.sessionsMu.Unlock()
		return session{}, false
	}

	return sess, true
}

func (s *Server) deleteSession(token string) {
	s.sessionsMu.Lock()
	delete(s.sessions, token)
	s.sessionsMu.Unlock()
}

func (s *Server) getSessionFromRequest(r *http.Request) string {
	cookie, err := r.Cookie("session")
	if err != nil {
		return ""
	}
	return cookie.Value
}

// RequireAuth guards the admin API. The check is side-effect-free and
// independent of the login limiter; only the login endpoint is rate limited.
func (s *Server) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := s.getSessionFromRequest(r)
		if _, ok := s.lookupSession(token); !ok {
			writeError(w, http.StatusUnauthorized, "Authentication required", CodeUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}
