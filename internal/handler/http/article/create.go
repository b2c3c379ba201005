package article

import (
	"encoding/json"
	"net/http"

	"blog-api/internal/handler/http/respond"
	artUC "blog-api/internal/usecase/article"
)

type CreateHandler struct{ Svc *artUC.Service }

// ServeHTTP handles POST /api/articles. Title and content are required;
// every other field receives a server-derived default when absent.
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title      string   `json:"title"`
		Excerpt    string   `json:"excerpt"`
		Content    string   `json:"content"`
		Image      string   `json:"image"`
		Author     string   `json:"author"`
		Date       string   `json:"date"`
		Category   string   `json:"category"`
		CategoryID string   `json:"categoryId"`
		Tags       []string `json:"tags"`
		IsDraft    bool     `json:"isDraft"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	article, err := h.Svc.Create(r.Context(), artUC.CreateInput{
		Title:      req.Title,
		Excerpt:    req.Excerpt,
		Content:    req.Content,
		Image:      req.Image,
		Author:     req.Author,
		Date:       req.Date,
		Category:   req.Category,
		CategoryID: req.CategoryID,
		Tags:       req.Tags,
		IsDraft:    req.IsDraft,
	})
	if err != nil {
		// SafeError keeps validation messages and sanitizes everything else.
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	respond.Created(w, toDTO(article))
}
