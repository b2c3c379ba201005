package article

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"blog-api/internal/common/pagination"
	"blog-api/internal/handler/http/respond"
	"blog-api/internal/observability/logging"
	artUC "blog-api/internal/usecase/article"
)

type ListHandler struct {
	Svc           *artUC.Service
	PaginationCfg pagination.Config
	Logger        *slog.Logger
}

type listResponse struct {
	Code     int    `json:"code"`
	Message  string `json:"message"`
	Data     []DTO  `json:"data"`
	Total    int64  `json:"total"`
	Page     int    `json:"page,omitempty"`
	PageSize int    `json:"pageSize,omitempty"`
}

// ServeHTTP handles GET /api/articles. Filters not present in the query are
// never compiled into the store query; total always reflects the full filter
// match regardless of limit or page.
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	startTime := time.Now()
	logger := logging.WithRequestID(ctx, h.Logger)

	query := r.URL.Query()
	params := pagination.ParseQueryParams(r, h.PaginationCfg)

	in := artUC.ListInput{
		Category: query.Get("category"),
		Search:   query.Get("search"),
		Featured: query.Get("featured") == "true",
		Page:     params.Page,
		PageSize: params.PageSize,
	}
	if s := query.Get("exclude"); s != "" {
		if id, err := strconv.ParseInt(s, 10, 64); err == nil {
			in.Exclude = &id
		}
	}
	if s := query.Get("limit"); s != "" {
		if limit, err := strconv.Atoi(s); err == nil {
			in.Limit = &limit
		}
	}

	result, err := h.Svc.List(ctx, in)
	if err != nil {
		logger.Error("failed to list articles",
			"error", err.Error(),
			"page", params.Page,
			"page_size", params.PageSize)
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	response := listResponse{
		Code:    http.StatusOK,
		Message: "success",
		Data:    toDTOs(result.Articles),
		Total:   result.Total,
	}
	if result.Paged {
		response.Page = result.Page
		response.PageSize = result.PageSize
	}

	logger.Info("article list request",
		"returned_count", len(response.Data),
		"total", result.Total,
		"duration_ms", time.Since(startTime).Milliseconds())

	respond.JSON(w, http.StatusOK, response)
}
