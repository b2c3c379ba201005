// Package taxonomy provides HTTP handlers for the category and tag listings.
package taxonomy

import (
	"net/http"

	"blog-api/internal/handler/http/respond"
	"blog-api/internal/repository"
)

// Register registers the taxonomy handlers with the given mux.
func Register(mux *http.ServeMux, repo repository.TaxonomyRepository) {
	mux.Handle("GET /api/categories", CategoriesHandler{Repo: repo})
	mux.Handle("GET /api/tags", TagsHandler{Repo: repo})
}

type CategoriesHandler struct{ Repo repository.TaxonomyRepository }

func (h CategoriesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Repo.Categories(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	respond.OK(w, categories)
}

type TagsHandler struct{ Repo repository.TaxonomyRepository }

func (h TagsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	tags, err := h.Repo.Tags(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	respond.OK(w, tags)
}
