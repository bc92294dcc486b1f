package web

import (
	"net/http"
	"time"

	"github.com/dmitrijs2005/filevault/internal/server/auth"
	"github.com/dmitrijs2005/filevault/internal/server/models"
)

const sessionCookieName = "filevault_session"

// Session is the authenticated identity resolved from the request's session
// cookie.
type Session struct {
	UserID  string
	LoginID string
}

func (s *Server) establishSession(w http.ResponseWriter, user *models.User) error {
	token, err := auth.GenerateToken(user.ID, user.LoginID, s.secretKey, s.sessionValidity)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Expires:  time.Now().Add(s.sessionValidity),
	})
	return nil
}

func (s *Server) clearSession(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}

// sessionFrom resolves the session cookie into an authenticated identity.
// A missing, malformed or expired cookie yields a nil session.
func (s *Server) sessionFrom(r *http.Request) *Session {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return nil
	}

	userID, loginID, err := auth.ParseToken(cookie.Value, s.secretKey)
	if err != nil {
		return nil
	}

	return &Session{UserID: userID, LoginID: loginID}
}

type authedHandler func(w http.ResponseWriter, r *http.Request, sess *Session)

// requirePage gates browser navigations: an unauthenticated request is
// redirected to the login form.
func (s *Server) requirePage(next authedHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := s.sessionFrom(r)
		if sess == nil {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		next(w, r, sess)
	}
}

// requireAction gates data-mutating actions and downloads: an
// unauthenticated request gets a 401 plain-text response.
func (s *Server) requireAction(next authedHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := s.sessionFrom(r)
		if sess == nil {
			http.Error(w, "please log in", http.StatusUnauthorized)
			return
		}
		next(w, r, sess)
	}
}
