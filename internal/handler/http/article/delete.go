package article

import (
	"errors"
	"net/http"

	"blog-api/internal/handler/http/pathutil"
	"blog-api/internal/handler/http/respond"
	artUC "blog-api/internal/usecase/article"
)

type DeleteHandler struct{ Svc *artUC.Service }

// ServeHTTP handles DELETE /api/articles/{id}. Comments and interaction
// edges go with the article via the store's cascade.
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		respond.Error(w, http.StatusNotFound, "article not found")
		return
	}

	if err := h.Svc.Delete(r.Context(), id); err != nil {
		if errors.Is(err, artUC.ErrArticleNotFound) {
			respond.Error(w, http.StatusNotFound, "article not found")
			return
		}
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	respond.OK(w, nil)
}
