package postgres

import (
	"context"
	"fmt"

	"blog-api/internal/domain/entity"
	"blog-api/internal/repository"
)

type TaxonomyRepo struct {
	db Executor
}

func NewTaxonomyRepo(db Executor) repository.TaxonomyRepository {
	return &TaxonomyRepo{db: db}
}

func (repo *TaxonomyRepo) Categories(ctx context.Context) ([]entity.Category, error) {
	const query = `SELECT id, name FROM categories ORDER BY id`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("Categories: %w", err)
	}
	defer func() { _ = rows.Close() }()

	categories := make([]entity.Category, 0, 8)
	for rows.Next() {
		var category entity.Category
		if err := rows.Scan(&category.ID, &category.Name); err != nil {
			return nil, fmt.Errorf("Categories: Scan: %w", err)
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

func (repo *TaxonomyRepo) Tags(ctx context.Context) ([]string, error) {
	const query = `SELECT name FROM tags ORDER BY id`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("Tags: %w", err)
	}
	defer func() { _ = rows.Close() }()

	tags := make([]string, 0, 16)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("Tags: Scan: %w", err)
		}
		tags = append(tags, name)
	}
	return tags, rows.Err()
}
