// Package repository defines the persistence interfaces consumed by the
// usecase layer. Implementations live under internal/infra/adapter.
package repository

import (
	"context"

	"blog-api/internal/domain/entity"
)

// ArticleFilter carries the optional listing conditions. A nil (or false)
// field means the condition was not supplied and must not be compiled into
// the query at all.
type ArticleFilter struct {
	CategoryID   *string // exact match on the category key
	Search       *string // case-insensitive substring match on title or excerpt
	Featured     bool    // filter to featured = true when set
	PopularOnly  bool    // filter to popular = true when set
	ExcludeID    *int64  // omit a single article by id
	CreatedAfter *int64  // epoch millis lower bound on created_at (exclusive)
}

// ArticlePatch is a merge-patch of one article row. A nil field keeps the
// stored value; the store applies the whole patch in a single statement.
type ArticlePatch struct {
	Title      *string
	Excerpt    *string
	Content    *string
	Image      *string
	Author     *string
	Date       *string
	Views      *string
	ReadTime   *string
	Category   *string
	CategoryID *string
	Tags       *[]string
	Featured   *bool
	Popular    *bool
	IsDraft    *bool
}

type ArticleRepository interface {
	// List retrieves all articles matching the filter, newest first.
	List(ctx context.Context, f ArticleFilter) ([]*entity.Article, error)
	// ListLimited retrieves up to limit matching articles, newest first.
	ListLimited(ctx context.Context, f ArticleFilter, limit int) ([]*entity.Article, error)
	// ListPaginated retrieves one page of matching articles, newest first.
	// The offset is handed to the store as computed; it is not clamped.
	ListPaginated(ctx context.Context, f ArticleFilter, limit, offset int) ([]*entity.Article, error)
	// Count returns the number of articles matching the filter, ignoring
	// any limit or pagination.
	Count(ctx context.Context, f ArticleFilter) (int64, error)
	// Get returns the article or nil when it does not exist.
	Get(ctx context.Context, id int64) (*entity.Article, error)
	// Create inserts the article and fills in its generated ID.
	Create(ctx context.Context, article *entity.Article) error
	// Update applies the patch atomically and returns the resulting row,
	// or nil when the article does not exist.
	Update(ctx context.Context, id int64, p ArticlePatch) (*entity.Article, error)
	// Delete removes the article and reports whether a row existed.
	Delete(ctx context.Context, id int64) (bool, error)
}
