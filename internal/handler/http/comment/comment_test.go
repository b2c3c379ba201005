package comment_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"blog-api/internal/domain/entity"
	hcomment "blog-api/internal/handler/http/comment"
	cmtUC "blog-api/internal/usecase/comment"
)

type stubRepo struct {
	comments  []*entity.Comment
	createErr error
}

func (s *stubRepo) ListByArticle(_ context.Context, articleID int64) ([]*entity.Comment, error) {
	var out []*entity.Comment
	for _, c := range s.comments {
		if c.ArticleID == articleID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *stubRepo) Create(_ context.Context, c *entity.Comment) error {
	if s.createErr != nil {
		return s.createErr
	}
	c.ID = int64(len(s.comments) + 1)
	s.comments = append(s.comments, c)
	return nil
}

func newServer(repo *stubRepo) *http.ServeMux {
	mux := http.NewServeMux()
	hcomment.Register(mux, &cmtUC.Service{Repo: repo})
	return mux
}

func TestList(t *testing.T) {
	repo := &stubRepo{comments: []*entity.Comment{
		{ID: 1, ArticleID: 3, Author: "alice", Content: "first"},
		{ID: 2, ArticleID: 9, Author: "bob", Content: "other article"},
	}}
	mux := newServer(repo)

	req := httptest.NewRequest("GET", "/api/articles/3/comments", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d", rec.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	data := body["data"].([]any)
	if len(data) != 1 {
		t.Fatalf("len=%d, want only article 3's comments", len(data))
	}
	first := data[0].(map[string]any)
	if first["articleId"].(float64) != 3 {
		t.Fatalf("articleId = %v", first["articleId"])
	}
}

func TestCreate_RequiresContent(t *testing.T) {
	mux := newServer(&stubRepo{})

	req := httptest.NewRequest("POST", "/api/articles/3/comments", strings.NewReader(`{"author":"x"}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status=%d", rec.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &body)
	if body["message"] != "content is required" {
		t.Fatalf("message = %v", body["message"])
	}
}

func TestCreate(t *testing.T) {
	mux := newServer(&stubRepo{})

	req := httptest.NewRequest("POST", "/api/articles/3/comments", strings.NewReader(`{"content":"nice"}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status=%d", rec.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &body)
	data := body["data"].(map[string]any)
	if data["author"] != "Anonymous" {
		t.Fatalf("author = %v", data["author"])
	}
	if data["articleId"].(float64) != 3 {
		t.Fatalf("articleId = %v", data["articleId"])
	}
}

func TestCreate_StoreFailureSanitized(t *testing.T) {
	mux := newServer(&stubRepo{createErr: errors.New("pq: connection refused at 10.0.0.5:5432")})

	req := httptest.NewRequest("POST", "/api/articles/3/comments", strings.NewReader(`{"content":"nice"}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status=%d, want 500 for a store failure", rec.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &body)
	if body["message"] != "internal server error" {
		t.Fatalf("message = %v, store detail must not reach the caller", body["message"])
	}
}

func TestBadArticleID(t *testing.T) {
	mux := newServer(&stubRepo{})

	req := httptest.NewRequest("GET", "/api/articles/xyz/comments", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status=%d, want 404 for malformed article id", rec.Code)
	}
}
