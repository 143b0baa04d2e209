package api

import (
	"fmt"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stgibson/blogly/database"
	"github.com/stgibson/blogly/models"
)

type tagHandler struct {
	responder Responder
	logger    zerolog.Logger
	renderer  Renderer
	tagRepo   *database.TagRepo
}

func newTagHandler(renderer Renderer, tagRepo *database.TagRepo) tagHandler {
	logger := log.With().Str("handlerName", "tagHandler").Logger()

	return tagHandler{
		responder: NewResponder(renderer, logger),
		logger:    logger,
		renderer:  renderer,
		tagRepo:   tagRepo,
	}
}

// listTags shows all tags
func (h tagHandler) listTags() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tags, err := h.tagRepo.FindAll()
		if err != nil {
			h.responder.Error(w, r, err, "/tags")
			return
		}

		h.renderer.Render(w, r, "tags.html", &PageData{Title: "Tags", Tags: tags})
	}
}

// showAddTagForm shows the form for creating a new tag
func (h tagHandler) showAddTagForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.renderer.Render(w, r, "add-tag.html", &PageData{Title: "Add Tag"})
	}
}

// createTag adds a new tag and redirects back to the tag list. A duplicate
// name is surfaced to the user rather than leaking a constraint error.
func (h tagHandler) createTag() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form, err := parseTagForm(r)
		if err != nil {
			h.responder.Error(w, r, err, "/tags/new")
			return
		}

		tag := models.Tag{Name: form.Name}
		if err := h.tagRepo.Add(&tag); err != nil {
			h.responder.Error(w, r, err, "/tags/new")
			return
		}

		h.responder.Redirect(w, r, "/tags", "Tag has been successfully created")
	}
}

// showTag shows one tag and the posts carrying it
func (h tagHandler) showTag() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tagID, err := parseIDParam(r, "tagID")
		if err != nil {
			h.responder.Error(w, r, err, "/tags")
			return
		}

		tag, err := h.tagRepo.FindByID(tagID)
		if err != nil {
			h.responder.Error(w, r, err, "/tags")
			return
		}

		h.renderer.Render(w, r, "tag-details.html", &PageData{Title: tag.Name, Tag: tag})
	}
}

// showEditTagForm shows the form for renaming a tag
func (h tagHandler) showEditTagForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tagID, err := parseIDParam(r, "tagID")
		if err != nil {
			h.responder.Error(w, r, err, "/tags")
			return
		}

		tag, err := h.tagRepo.FindByID(tagID)
		if err != nil {
			h.responder.Error(w, r, err, "/tags")
			return
		}

		h.renderer.Render(w, r, "edit-tag.html", &PageData{Title: "Edit Tag", Tag: tag})
	}
}

// updateTag renames the tag and redirects back to the tag list
func (h tagHandler) updateTag() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tagID, err := parseIDParam(r, "tagID")
		if err != nil {
			h.responder.Error(w, r, err, "/tags")
			return
		}
		backURL := fmt.Sprintf("/tags/%d/edit", tagID)

		form, err := parseTagForm(r)
		if err != nil {
			h.responder.Error(w, r, err, backURL)
			return
		}

		tag := models.Tag{ID: tagID, Name: form.Name}
		if err := h.tagRepo.Update(&tag); err != nil {
			h.responder.Error(w, r, err, backURL)
			return
		}

		h.responder.Redirect(w, r, "/tags", "Tag has been successfully updated")
	}
}

// deleteTag removes the tag and its post associations, leaving the posts
// themselves alone.
func (h tagHandler) deleteTag() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tagID, err := parseIDParam(r, "tagID")
		if err != nil {
			h.responder.Error(w, r, err, "/tags")
			return
		}

		if err := h.tagRepo.Delete(tagID); err != nil {
			h.responder.Error(w, r, err, "/tags")
			return
		}

		h.responder.Redirect(w, r, "/tags", "")
	}
}
