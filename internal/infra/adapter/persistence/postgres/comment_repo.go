package postgres

import (
	"context"
	"fmt"

	"blog-api/internal/domain/entity"
	"blog-api/internal/repository"
)

type CommentRepo struct {
	db Executor
}

func NewCommentRepo(db Executor) repository.CommentRepository {
	return &CommentRepo{db: db}
}

func (repo *CommentRepo) ListByArticle(ctx context.Context, articleID int64) ([]*entity.Comment, error) {
	const query = `
SELECT id, article_id, author, content, date, likes
FROM comments
WHERE article_id = $1
ORDER BY id ASC`
	rows, err := repo.db.QueryContext(ctx, query, articleID)
	if err != nil {
		return nil, fmt.Errorf("ListByArticle: %w", err)
	}
	defer func() { _ = rows.Close() }()

	comments := make([]*entity.Comment, 0, 16)
	for rows.Next() {
		var comment entity.Comment
		if err := rows.Scan(&comment.ID, &comment.ArticleID, &comment.Author,
			&comment.Content, &comment.Date, &comment.Likes); err != nil {
			return nil, fmt.Errorf("ListByArticle: Scan: %w", err)
		}
		comments = append(comments, &comment)
	}
	return comments, rows.Err()
}

func (repo *CommentRepo) Create(ctx context.Context, comment *entity.Comment) error {
	const query = `
INSERT INTO comments (article_id, author, content, date, likes)
VALUES ($1, $2, $3, $4, $5)
RETURNING id`
	err := repo.db.QueryRowContext(ctx, query,
		comment.ArticleID, comment.Author, comment.Content, comment.Date, comment.Likes,
	).Scan(&comment.ID)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}
