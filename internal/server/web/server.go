// Package web is the HTTP surface of FileVault: page rendering, the session
// gate, and the upload/download/delete routes.
package web

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"golang.org/x/crypto/acme/autocert"

	"github.com/dmitrijs2005/filevault/internal/logging"
	"github.com/dmitrijs2005/filevault/internal/server/config"
	"github.com/dmitrijs2005/filevault/internal/server/files"
	"github.com/dmitrijs2005/filevault/internal/server/users"
)

type Server struct {
	address         string
	logger          logging.Logger
	users           *users.Service
	files           *files.Service
	secretKey       []byte
	sessionValidity time.Duration
	autoTLSHost     string
	autoTLSCacheDir string
}

func NewServer(cfg *config.Config, l logging.Logger, us *users.Service, fs *files.Service) *Server {
	return &Server{
		address:         cfg.EndpointAddr,
		logger:          l.With("module", "web_server"),
		users:           us,
		files:           fs,
		secretKey:       []byte(cfg.SecretKey),
		sessionValidity: cfg.SessionValidityDuration,
		autoTLSHost:     cfg.AutoTLSHost,
		autoTLSCacheDir: cfg.AutoTLSCacheDir,
	}
}

// Routes builds the router with the eight user-facing operations.
func (s *Server) Routes() http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/", s.handleIndex).Methods(http.MethodGet)
	r.HandleFunc("/register", s.handleRegisterForm).Methods(http.MethodGet)
	r.HandleFunc("/register", s.handleRegister).Methods(http.MethodPost)
	r.HandleFunc("/login", s.handleLoginForm).Methods(http.MethodGet)
	r.HandleFunc("/login", s.handleLogin).Methods(http.MethodPost)
	r.HandleFunc("/dashboard", s.requirePage(s.handleDashboard)).Methods(http.MethodGet)
	r.HandleFunc("/upload", s.requireAction(s.handleUpload)).Methods(http.MethodPost)
	r.HandleFunc("/download/{fileName}", s.requireAction(s.handleDownload)).Methods(http.MethodGet)
	r.HandleFunc("/delete/{fileName}", s.requireAction(s.handleDelete)).Methods(http.MethodPost)
	r.HandleFunc("/logout", s.handleLogout).Methods(http.MethodGet)

	return r
}

func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Routes(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	var err error
	if s.autoTLSHost != "" {
		m := &autocert.Manager{
			Prompt:     autocert.AcceptTOS,
			HostPolicy: autocert.HostWhitelist(s.autoTLSHost),
			Cache:      autocert.DirCache(s.autoTLSCacheDir),
		}
		srv.TLSConfig = m.TLSConfig()

		s.logger.Info(ctx, "Starting HTTPS server", "address", s.address, "host", s.autoTLSHost)
		err = srv.ListenAndServeTLS("", "")
	} else {
		s.logger.Info(ctx, "Starting HTTP server", "address", s.address)
		err = srv.ListenAndServe()
	}

	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
