package api

import (
	"fmt"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stgibson/blogly/database"
	"github.com/stgibson/blogly/models"
)

type postHandler struct {
	responder Responder
	logger    zerolog.Logger
	renderer  Renderer
	postRepo  *database.PostRepo
	userRepo  *database.UserRepo
	tagRepo   *database.TagRepo
}

func newPostHandler(renderer Renderer, postRepo *database.PostRepo, userRepo *database.UserRepo, tagRepo *database.TagRepo) postHandler {
	logger := log.With().Str("handlerName", "postHandler").Logger()

	return postHandler{
		responder: NewResponder(renderer, logger),
		logger:    logger,
		renderer:  renderer,
		postRepo:  postRepo,
		userRepo:  userRepo,
		tagRepo:   tagRepo,
	}
}

// home shows the landing page with the most recent posts first
func (h postHandler) home() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		posts, err := h.postRepo.FindRecent(0)
		if err != nil {
			h.responder.Error(w, r, err, "/")
			return
		}

		h.renderer.Render(w, r, "home.html", &PageData{Title: "Blogly Recent Posts", Posts: posts})
	}
}

// showAddPostForm shows the form for writing a new post for the given user,
// with a checkbox per tag in the system.
func (h postHandler) showAddPostForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := parseIDParam(r, "userID")
		if err != nil {
			h.responder.Error(w, r, err, "/users")
			return
		}

		user, err := h.userRepo.FindByID(userID)
		if err != nil {
			h.responder.Error(w, r, err, "/users")
			return
		}

		tags, err := h.tagRepo.FindAll()
		if err != nil {
			h.responder.Error(w, r, err, "/users")
			return
		}

		h.renderer.Render(w, r, "add-post.html", &PageData{Title: "Add Post", User: user, Tags: tags})
	}
}

// createPost adds a new post for the given user together with its selected
// tags, then redirects to the author's page. The author must exist before
// anything is written.
func (h postHandler) createPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := parseIDParam(r, "userID")
		if err != nil {
			h.responder.Error(w, r, err, "/users")
			return
		}
		backURL := fmt.Sprintf("/users/%d/posts/new", userID)

		if _, err := h.userRepo.FindByID(userID); err != nil {
			h.responder.Error(w, r, err, "/users")
			return
		}

		form, err := parsePostForm(r)
		if err != nil {
			h.responder.Error(w, r, err, backURL)
			return
		}

		post := models.Post{
			Title:   form.Title,
			Content: form.Content,
			UserID:  userID,
		}

		if err := h.postRepo.Add(&post, form.TagIDs); err != nil {
			h.responder.Error(w, r, err, backURL)
			return
		}

		h.responder.Redirect(w, r, fmt.Sprintf("/users/%d", userID), "Post has been successfully created")
	}
}

// showPost shows one post with its author and tags
func (h postHandler) showPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, err := parseIDParam(r, "postID")
		if err != nil {
			h.responder.Error(w, r, err, "/")
			return
		}

		post, err := h.postRepo.FindByID(postID)
		if err != nil {
			h.responder.Error(w, r, err, "/")
			return
		}

		h.renderer.Render(w, r, "post-details.html", &PageData{Title: post.Title, Post: post})
	}
}

// showEditPostForm shows the form for editing a post, with the post's current
// tags pre-checked.
func (h postHandler) showEditPostForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, err := parseIDParam(r, "postID")
		if err != nil {
			h.responder.Error(w, r, err, "/")
			return
		}

		post, err := h.postRepo.FindByID(postID)
		if err != nil {
			h.responder.Error(w, r, err, "/")
			return
		}

		tags, err := h.tagRepo.FindAll()
		if err != nil {
			h.responder.Error(w, r, err, "/")
			return
		}

		checked := make(map[uint]bool, len(post.Tags))
		for _, tag := range post.Tags {
			checked[tag.ID] = true
		}

		h.renderer.Render(w, r, "edit-post.html", &PageData{
			Title:   "Edit Post",
			Post:    post,
			Tags:    tags,
			Checked: checked,
		})
	}
}

// updatePost overwrites the post's title and content and replaces its tag set
// with exactly the checked tags, then redirects to the post's page.
func (h postHandler) updatePost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, err := parseIDParam(r, "postID")
		if err != nil {
			h.responder.Error(w, r, err, "/")
			return
		}
		backURL := fmt.Sprintf("/posts/%d/edit", postID)

		form, err := parsePostForm(r)
		if err != nil {
			h.responder.Error(w, r, err, backURL)
			return
		}

		post := models.Post{
			ID:      postID,
			Title:   form.Title,
			Content: form.Content,
		}

		if err := h.postRepo.Update(&post, form.TagIDs); err != nil {
			h.responder.Error(w, r, err, backURL)
			return
		}

		h.responder.Redirect(w, r, fmt.Sprintf("/posts/%d", postID), "Post has been successfully updated")
	}
}

// deletePost removes the post and returns to the owning user's page
func (h postHandler) deletePost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, err := parseIDParam(r, "postID")
		if err != nil {
			h.responder.Error(w, r, err, "/")
			return
		}

		userID, err := h.postRepo.Delete(postID)
		if err != nil {
			h.responder.Error(w, r, err, "/")
			return
		}

		h.responder.Redirect(w, r, fmt.Sprintf("/users/%d", userID), "")
	}
}
