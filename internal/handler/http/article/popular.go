package article

import (
	"net/http"

	"blog-api/internal/handler/http/respond"
	artUC "blog-api/internal/usecase/article"
)

type PopularHandler struct{ Svc *artUC.Service }

// ServeHTTP handles GET /api/articles/popular?timeRange=all|today|week|month.
// An overly strict window falls back to the unwindowed popular set.
func (h PopularHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	timeRange := r.URL.Query().Get("timeRange")
	if timeRange == "" {
		timeRange = artUC.TimeRangeAll
	}

	articles, err := h.Svc.Popular(r.Context(), timeRange)
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	respond.OK(w, toDTOs(articles))
}
