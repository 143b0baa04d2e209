package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/stgibson/blogly/database"
	"github.com/stgibson/blogly/errs"
)

type routeHandlers struct {
	renderer    Renderer
	userHandler userHandler
	postHandler postHandler
	tagHandler  tagHandler
}

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, renderer Renderer) *routeHandlers {
	return &routeHandlers{
		renderer:    renderer,
		userHandler: newUserHandler(renderer, database.UserRepo()),
		postHandler: newPostHandler(renderer, database.PostRepo(), database.UserRepo(), database.TagRepo()),
		tagHandler:  newTagHandler(renderer, database.TagRepo()),
	}
}

// parseIDParam reads a numeric URL parameter. Anything that is not a positive
// integer cannot address an entity, so it reads as "no such page".
func parseIDParam(r *http.Request, name string) (uint, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, errs.NewNotFoundError("page not found")
	}
	return uint(id), nil
}
