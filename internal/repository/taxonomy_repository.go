package repository

import (
	"context"

	"blog-api/internal/domain/entity"
)

type TaxonomyRepository interface {
	// Categories returns all categories in stored order.
	Categories(ctx context.Context) ([]entity.Category, error)
	// Tags returns all tag names in stored order.
	Tags(ctx context.Context) ([]string, error)
}
