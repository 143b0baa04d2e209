package api

import (
	"bytes"
	"html/template"
	"net/http"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stgibson/blogly/models"
)

// Renderer executes page templates against a shared base layout. Templates
// are parsed per request into a buffer so a render error never leaves a
// half-written response.
type Renderer struct {
	dir    string
	logger zerolog.Logger
}

func NewRenderer(dir string) Renderer {
	logger := log.With().Str("handlerName", "renderer").Logger()
	return Renderer{dir: dir, logger: logger}
}

// PageData carries everything a page template can reference.
type PageData struct {
	Title string
	Flash *Flash

	User  *models.User
	Users []*models.User
	Post  *models.Post
	Posts []*models.Post
	Tag   *models.Tag
	Tags  []*models.Tag

	// Checked marks which tag ids are selected on a post form.
	Checked map[uint]bool
}

func (rn Renderer) Render(w http.ResponseWriter, r *http.Request, page string, data *PageData) {
	rn.render(w, r, page, data, http.StatusOK)
}

// NotFound renders the 404 page.
func (rn Renderer) NotFound(w http.ResponseWriter, r *http.Request) {
	rn.render(w, r, "404.html", &PageData{Title: "Page Not Found"}, http.StatusNotFound)
}

func (rn Renderer) render(w http.ResponseWriter, r *http.Request, page string, data *PageData, status int) {
	if data == nil {
		data = &PageData{}
	}
	if data.Flash == nil {
		data.Flash = popFlash(w, r)
	}

	files := []string{
		filepath.Join(rn.dir, "base.layout.html"),
		filepath.Join(rn.dir, page),
	}

	ts, err := template.ParseFiles(files...)
	if err != nil {
		rn.logger.Error().Err(err).Str("page", page).Msg("failed to parse templates")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	buf := new(bytes.Buffer)
	if err := ts.ExecuteTemplate(buf, "base", data); err != nil {
		rn.logger.Error().Err(err).Str("page", page).Msg("failed to execute template")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}
