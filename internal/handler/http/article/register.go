package article

import (
	"log/slog"
	"net/http"

	"blog-api/internal/common/pagination"
	artUC "blog-api/internal/usecase/article"
)

// Register registers all article HTTP handlers with the given mux. The
// literal /popular pattern takes precedence over the {id} wildcard.
func Register(mux *http.ServeMux, svc *artUC.Service, paginationCfg pagination.Config, logger *slog.Logger) {
	mux.Handle("GET /api/articles", ListHandler{
		Svc:           svc,
		PaginationCfg: paginationCfg,
		Logger:        logger,
	})
	mux.Handle("GET /api/articles/popular", PopularHandler{Svc: svc})
	mux.Handle("GET /api/articles/{id}", GetHandler{Svc: svc})

	mux.Handle("POST /api/articles", CreateHandler{Svc: svc})
	mux.Handle("PUT /api/articles/{id}", UpdateHandler{Svc: svc})
	mux.Handle("DELETE /api/articles/{id}", DeleteHandler{Svc: svc})
}
