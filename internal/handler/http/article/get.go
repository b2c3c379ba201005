package article

import (
	"errors"
	"net/http"

	"blog-api/internal/handler/http/pathutil"
	"blog-api/internal/handler/http/respond"
	artUC "blog-api/internal/usecase/article"
)

type GetHandler struct{ Svc *artUC.Service }

// ServeHTTP handles GET /api/articles/{id}.
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		respond.Error(w, http.StatusNotFound, "article not found")
		return
	}

	article, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, artUC.ErrArticleNotFound) || errors.Is(err, artUC.ErrInvalidArticleID) {
			respond.Error(w, http.StatusNotFound, "article not found")
			return
		}
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	respond.OK(w, toDTO(article))
}
