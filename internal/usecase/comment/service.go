// Package comment provides use cases for listing and posting article
// comments.
package comment

import (
	"context"
	"fmt"
	"time"

	"blog-api/internal/domain/entity"
	"blog-api/internal/repository"
)

// CreateInput carries a new comment. Author and date default server-side.
type CreateInput struct {
	ArticleID int64
	Author    string
	Content   string
	Date      string
}

type Service struct {
	Repo repository.CommentRepository
}

var now = time.Now

// ListByArticle returns the article's comments in insertion order. An
// unknown article yields an empty list, not an error.
func (s *Service) ListByArticle(ctx context.Context, articleID int64) ([]*entity.Comment, error) {
	comments, err := s.Repo.ListByArticle(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}

// Create validates and persists a new comment. Content is required.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Comment, error) {
	if in.Content == "" {
		return nil, &entity.ValidationError{Field: "content", Message: "content is required"}
	}

	comment := &entity.Comment{
		ArticleID: in.ArticleID,
		Author:    in.Author,
		Content:   in.Content,
		Date:      in.Date,
		Likes:     0,
	}
	if comment.Author == "" {
		comment.Author = "Anonymous"
	}
	if comment.Date == "" {
		comment.Date = now().Format("2006-01-02")
	}

	if err := s.Repo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	return comment, nil
}
