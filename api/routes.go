package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// setupRoutes registers every page of the site. Mutating actions are plain
// form POSTs; every successful POST redirects to a canonical page.
func setupRoutes(r chi.Router, handlers *routeHandlers) {
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		// Home: most recent posts
		r.Get("/", handlers.postHandler.home())

		// User endpoints
		r.Get("/users", handlers.userHandler.listUsers())
		r.Get("/users/new", handlers.userHandler.showAddUserForm())
		r.Post("/users/new", handlers.userHandler.createUser())
		r.Get("/users/{userID}", handlers.userHandler.showUser())
		r.Get("/users/{userID}/edit", handlers.userHandler.showEditUserForm())
		r.Post("/users/{userID}/edit", handlers.userHandler.updateUser())
		r.Post("/users/{userID}/delete", handlers.userHandler.deleteUser())

		// Post endpoints
		r.Get("/users/{userID}/posts/new", handlers.postHandler.showAddPostForm())
		r.Post("/users/{userID}/posts/new", handlers.postHandler.createPost())
		r.Get("/posts/{postID}", handlers.postHandler.showPost())
		r.Get("/posts/{postID}/edit", handlers.postHandler.showEditPostForm())
		r.Post("/posts/{postID}/edit", handlers.postHandler.updatePost())
		r.Post("/posts/{postID}/delete", handlers.postHandler.deletePost())

		// Tag endpoints
		r.Get("/tags", handlers.tagHandler.listTags())
		r.Get("/tags/new", handlers.tagHandler.showAddTagForm())
		r.Post("/tags/new", handlers.tagHandler.createTag())
		r.Get("/tags/{tagID}", handlers.tagHandler.showTag())
		r.Get("/tags/{tagID}/edit", handlers.tagHandler.showEditTagForm())
		r.Post("/tags/{tagID}/edit", handlers.tagHandler.updateTag())
		r.Post("/tags/{tagID}/delete", handlers.tagHandler.deleteTag())
	})

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		handlers.renderer.NotFound(w, req)
	})
}
