// Package comment provides HTTP handlers for article comments.
package comment

import (
	"encoding/json"
	"net/http"

	"blog-api/internal/domain/entity"
	"blog-api/internal/handler/http/pathutil"
	"blog-api/internal/handler/http/respond"
	cmtUC "blog-api/internal/usecase/comment"
)

// DTO represents the JSON structure for comment data transfer.
type DTO struct {
	ID        int64  `json:"id"`
	ArticleID int64  `json:"articleId"`
	Author    string `json:"author"`
	Content   string `json:"content"`
	Date      string `json:"date"`
	Likes     int    `json:"likes"`
}

func toDTO(c *entity.Comment) DTO {
	return DTO{
		ID:        c.ID,
		ArticleID: c.ArticleID,
		Author:    c.Author,
		Content:   c.Content,
		Date:      c.Date,
		Likes:     c.Likes,
	}
}

// Register registers the comment handlers with the given mux.
func Register(mux *http.ServeMux, svc *cmtUC.Service) {
	mux.Handle("GET /api/articles/{id}/comments", ListHandler{Svc: svc})
	mux.Handle("POST /api/articles/{id}/comments", CreateHandler{Svc: svc})
}

type ListHandler struct{ Svc *cmtUC.Service }

// ServeHTTP handles GET /api/articles/{id}/comments.
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	articleID, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		respond.Error(w, http.StatusNotFound, "article not found")
		return
	}

	comments, err := h.Svc.ListByArticle(r.Context(), articleID)
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	dtos := make([]DTO, 0, len(comments))
	for _, c := range comments {
		dtos = append(dtos, toDTO(c))
	}
	respond.OK(w, dtos)
}

type CreateHandler struct{ Svc *cmtUC.Service }

// ServeHTTP handles POST /api/articles/{id}/comments. Content is required.
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	articleID, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		respond.Error(w, http.StatusNotFound, "article not found")
		return
	}

	var req struct {
		Author  string `json:"author"`
		Content string `json:"content"`
		Date    string `json:"date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.Svc.Create(r.Context(), cmtUC.CreateInput{
		ArticleID: articleID,
		Author:    req.Author,
		Content:   req.Content,
		Date:      req.Date,
	})
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	respond.Created(w, toDTO(created))
}
