package web

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/dmitrijs2005/filevault/internal/server/models"
	"github.com/dmitrijs2005/filevault/internal/shared"
)

// 64MB memory threshold for multipart parsing
const maxMultipartMemory = 64 << 20

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, "index.gohtml", nil)
}

func (s *Server) handleRegisterForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, "register.gohtml", nil)
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	loginID := r.PostFormValue("loginId")
	password := r.PostFormValue("password")

	_, err := s.users.Register(r.Context(), loginID, password)
	if err != nil {
		if errors.Is(err, shared.ErrorAlreadyExists) {
			http.Error(w, "this login id is already taken", http.StatusBadRequest)
			return
		}
		s.logger.Error(r.Context(), "registration failed", "error", err.Error())
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	s.logger.Info(r.Context(), "registered", "login", loginID)
	http.Redirect(w, r, "/login", http.StatusFound)
}

func (s *Server) handleLoginForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, "login.gohtml", nil)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	loginID := r.PostFormValue("loginId")
	password := r.PostFormValue("password")

	user, err := s.users.Authenticate(r.Context(), loginID, password)
	if err != nil {
		if errors.Is(err, shared.ErrorInvalidLoginPassword) {
			http.Error(w, "invalid login id or password", http.StatusUnauthorized)
			return
		}
		s.logger.Error(r.Context(), "login failed", "error", err.Error())
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	if err := s.establishSession(w, user); err != nil {
		s.logger.Error(r.Context(), "session setup failed", "error", err.Error())
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	s.logger.Info(r.Context(), "logged in", "login", loginID)
	http.Redirect(w, r, "/dashboard", http.StatusFound)
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request, sess *Session) {
	list, err := s.files.List(r.Context(), sess.UserID)
	if err != nil {
		s.logger.Error(r.Context(), "listing files failed", "error", err.Error())
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	s.render(w, r, "dashboard.gohtml", struct {
		LoginID string
		Files   []models.File
	}{LoginID: sess.LoginID, Files: list})
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request, sess *Session) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		http.Error(w, "bad multipart form", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file field", http.StatusBadRequest)
		return
	}
	defer file.Close()

	name := DecodeUploadName(header.Filename)

	if _, err := s.files.Upload(r.Context(), sess.UserID, name, file); err != nil {
		s.logger.Error(r.Context(), "upload failed", "error", err.Error())
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	s.logger.Info(r.Context(), "uploaded", "login", sess.LoginID, "name", name)
	http.Redirect(w, r, "/dashboard", http.StatusFound)
}

func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request, sess *Session) {
	name := mux.Vars(r)["fileName"]

	f, rc, err := s.files.Download(r.Context(), sess.UserID, name)
	if err != nil {
		if errors.Is(err, shared.ErrorNotFound) {
			http.Error(w, "file not found", http.StatusNotFound)
			return
		}
		s.logger.Error(r.Context(), "download failed", "error", err.Error())
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	defer rc.Close()

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename*=UTF-8''%s", EncodeDownloadName(f.Name)))

	if _, err := io.Copy(w, rc); err != nil {
		s.logger.Error(r.Context(), "streaming download failed", "error", err.Error())
	}
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request, sess *Session) {
	name := mux.Vars(r)["fileName"]

	if err := s.files.Delete(r.Context(), sess.UserID, name); err != nil {
		if errors.Is(err, shared.ErrorNotFound) {
			http.Error(w, "file not found", http.StatusNotFound)
			return
		}
		s.logger.Error(r.Context(), "delete failed", "error", err.Error())
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	s.logger.Info(r.Context(), "deleted", "login", sess.LoginID, "name", name)
	http.Redirect(w, r, "/dashboard", http.StatusFound)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.clearSession(w)
	http.Redirect(w, r, "/", http.StatusFound)
}
