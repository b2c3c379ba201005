package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"blog-api/internal/domain/entity"
	"blog-api/internal/repository"
)

const articleColumns = `id, title, excerpt, content, image, author, date, views, read_time,
category, category_id, tags, featured, popular, is_draft, created_at`

type ArticleRepo struct {
	db           Executor
	queryBuilder *ArticleQueryBuilder
}

func NewArticleRepo(db Executor) repository.ArticleRepository {
	return &ArticleRepo{
		db:           db,
		queryBuilder: NewArticleQueryBuilder(),
	}
}

func scanArticle(rows *sql.Rows) (*entity.Article, error) {
	var article entity.Article
	if err := rows.Scan(&article.ID, &article.Title, &article.Excerpt, &article.Content,
		&article.Image, &article.Author, &article.Date, &article.Views, &article.ReadTime,
		&article.Category, &article.CategoryID, pq.Array(&article.Tags),
		&article.Featured, &article.Popular, &article.IsDraft, &article.CreatedAt); err != nil {
		return nil, err
	}
	return &article, nil
}

func (repo *ArticleRepo) queryArticles(ctx context.Context, query string, args []any) ([]*entity.Article, error) {
	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	articles := make([]*entity.Article, 0, 32)
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("Scan: %w", err)
		}
		articles = append(articles, article)
	}
	return articles, rows.Err()
}

func (repo *ArticleRepo) List(ctx context.Context, f repository.ArticleFilter) ([]*entity.Article, error) {
	whereClause, args := repo.queryBuilder.BuildWhereClause(f)
	query := fmt.Sprintf(`
SELECT %s
FROM articles
%s
ORDER BY created_at DESC`, articleColumns, whereClause)

	articles, err := repo.queryArticles(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	return articles, nil
}

func (repo *ArticleRepo) ListLimited(ctx context.Context, f repository.ArticleFilter, limit int) ([]*entity.Article, error) {
	whereClause, args := repo.queryBuilder.BuildWhereClause(f)
	query := fmt.Sprintf(`
SELECT %s
FROM articles
%s
ORDER BY created_at DESC
LIMIT $%d`, articleColumns, whereClause, len(args)+1)
	args = append(args, limit)

	articles, err := repo.queryArticles(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("ListLimited: %w", err)
	}
	return articles, nil
}

// ListPaginated hands limit and offset to the store as given; a negative
// offset surfaces as a store error.
func (repo *ArticleRepo) ListPaginated(ctx context.Context, f repository.ArticleFilter, limit, offset int) ([]*entity.Article, error) {
	whereClause, args := repo.queryBuilder.BuildWhereClause(f)
	paramIndex := len(args) + 1
	query := fmt.Sprintf(`
SELECT %s
FROM articles
%s
ORDER BY created_at DESC
LIMIT $%d OFFSET $%d`, articleColumns, whereClause, paramIndex, paramIndex+1)
	args = append(args, limit, offset)

	articles, err := repo.queryArticles(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("ListPaginated: %w", err)
	}
	return articles, nil
}

func (repo *ArticleRepo) Count(ctx context.Context, f repository.ArticleFilter) (int64, error) {
	whereClause, args := repo.queryBuilder.BuildWhereClause(f)
	query := "SELECT COUNT(*) FROM articles " + whereClause

	var count int64
	if err := repo.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return count, nil
}

func (repo *ArticleRepo) Get(ctx context.Context, id int64) (*entity.Article, error) {
	query := fmt.Sprintf(`
SELECT %s
FROM articles
WHERE id = $1
LIMIT 1`, articleColumns)

	var article entity.Article
	err := repo.db.QueryRowContext(ctx, query, id).
		Scan(&article.ID, &article.Title, &article.Excerpt, &article.Content,
			&article.Image, &article.Author, &article.Date, &article.Views, &article.ReadTime,
			&article.Category, &article.CategoryID, pq.Array(&article.Tags),
			&article.Featured, &article.Popular, &article.IsDraft, &article.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return &article, nil
}

func (repo *ArticleRepo) Create(ctx context.Context, article *entity.Article) error {
	const query = `
INSERT INTO articles
       (title, excerpt, content, image, author, date, views, read_time,
        category, category_id, tags, featured, popular, is_draft, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
RETURNING id`
	err := repo.db.QueryRowContext(ctx, query,
		article.Title, article.Excerpt, article.Content, article.Image,
		article.Author, article.Date, article.Views, article.ReadTime,
		article.Category, article.CategoryID, pq.Array(article.Tags),
		article.Featured, article.Popular, article.IsDraft, article.CreatedAt,
	).Scan(&article.ID)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

// Update merges the patch into the row with one COALESCE statement; the
// store decides field by field, so concurrent patches never overwrite each
// other's untouched columns.
func (repo *ArticleRepo) Update(ctx context.Context, id int64, p repository.ArticlePatch) (*entity.Article, error) {
	query := fmt.Sprintf(`
UPDATE articles SET
       title       = COALESCE($1, title),
       excerpt     = COALESCE($2, excerpt),
       content     = COALESCE($3, content),
       image       = COALESCE($4, image),
       author      = COALESCE($5, author),
       date        = COALESCE($6, date),
       views       = COALESCE($7, views),
       read_time   = COALESCE($8, read_time),
       category    = COALESCE($9, category),
       category_id = COALESCE($10, category_id),
       tags        = COALESCE($11, tags),
       featured    = COALESCE($12, featured),
       popular     = COALESCE($13, popular),
       is_draft    = COALESCE($14, is_draft)
WHERE id = $15
RETURNING %s`, articleColumns)

	// A nil slice pointer must bind as NULL, not as an empty array.
	var tags any
	if p.Tags != nil {
		tags = pq.Array(*p.Tags)
	}

	var article entity.Article
	err := repo.db.QueryRowContext(ctx, query,
		p.Title, p.Excerpt, p.Content, p.Image,
		p.Author, p.Date, p.Views, p.ReadTime,
		p.Category, p.CategoryID, tags,
		p.Featured, p.Popular, p.IsDraft, id,
	).Scan(&article.ID, &article.Title, &article.Excerpt, &article.Content,
		&article.Image, &article.Author, &article.Date, &article.Views, &article.ReadTime,
		&article.Category, &article.CategoryID, pq.Array(&article.Tags),
		&article.Featured, &article.Popular, &article.IsDraft, &article.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Update: %w", err)
	}
	return &article, nil
}

func (repo *ArticleRepo) Delete(ctx context.Context, id int64) (bool, error) {
	const query = `DELETE FROM articles WHERE id = $1`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("Delete: %w", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}
