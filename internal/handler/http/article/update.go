package article

import (
	"encoding/json"
	"errors"
	"net/http"

	"blog-api/internal/handler/http/pathutil"
	"blog-api/internal/handler/http/respond"
	artUC "blog-api/internal/usecase/article"
)

type UpdateHandler struct{ Svc *artUC.Service }

// ServeHTTP handles PUT /api/articles/{id} with merge-patch semantics:
// fields absent from the body keep their stored values.
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		respond.Error(w, http.StatusNotFound, "article not found")
		return
	}

	var req struct {
		Title      *string   `json:"title"`
		Excerpt    *string   `json:"excerpt"`
		Content    *string   `json:"content"`
		Image      *string   `json:"image"`
		Author     *string   `json:"author"`
		Date       *string   `json:"date"`
		Views      *string   `json:"views"`
		ReadTime   *string   `json:"readTime"`
		Category   *string   `json:"category"`
		CategoryID *string   `json:"categoryId"`
		Tags       *[]string `json:"tags"`
		Featured   *bool     `json:"featured"`
		Popular    *bool     `json:"popular"`
		IsDraft    *bool     `json:"isDraft"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	article, err := h.Svc.Update(r.Context(), artUC.UpdateInput{
		ID:         id,
		Title:      req.Title,
		Excerpt:    req.Excerpt,
		Content:    req.Content,
		Image:      req.Image,
		Author:     req.Author,
		Date:       req.Date,
		Views:      req.Views,
		ReadTime:   req.ReadTime,
		Category:   req.Category,
		CategoryID: req.CategoryID,
		Tags:       req.Tags,
		Featured:   req.Featured,
		Popular:    req.Popular,
		IsDraft:    req.IsDraft,
	})
	if err != nil {
		if errors.Is(err, artUC.ErrArticleNotFound) {
			respond.Error(w, http.StatusNotFound, "article not found")
			return
		}
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	respond.OK(w, toDTO(article))
}
