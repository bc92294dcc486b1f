package web

import (
	"embed"
	"html/template"
	"net/http"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.gohtml"))

func (s *Server) render(w http.ResponseWriter, r *http.Request, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.ExecuteTemplate(w, name, data); err != nil {
		s.logger.Error(r.Context(), "template render error", "template", name, "error", err.Error())
	}
}
