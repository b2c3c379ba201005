package repository

import (
	"context"

	"blog-api/internal/domain/entity"
)

type CommentRepository interface {
	// ListByArticle returns the article's comments in insertion order.
	ListByArticle(ctx context.Context, articleID int64) ([]*entity.Comment, error)
	// Create inserts the comment and fills in its generated ID.
	Create(ctx context.Context, comment *entity.Comment) error
}
