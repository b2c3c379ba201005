package postgres

import (
	"context"
	"fmt"
	"strconv"

	"blog-api/internal/repository"
)

// EdgeRepo implements the toggle-count persistence for one edge table. The
// table and column names are fixed constants supplied by the constructors
// below, never caller input, so building the SQL with Sprintf is safe.
type EdgeRepo struct {
	db            Executor
	table         string
	subjectColumn string
	objectColumn  string
	numericObject bool
}

// NewLikeRepo stores (user, article) like edges.
func NewLikeRepo(db Executor) repository.EdgeRepository {
	return &EdgeRepo{db: db, table: "likes", subjectColumn: "user_id", objectColumn: "article_id", numericObject: true}
}

// NewBookmarkRepo stores (user, article) bookmark edges.
func NewBookmarkRepo(db Executor) repository.EdgeRepository {
	return &EdgeRepo{db: db, table: "bookmarks", subjectColumn: "user_id", objectColumn: "article_id", numericObject: true}
}

// NewFollowRepo stores (follower, author) follow edges.
func NewFollowRepo(db Executor) repository.EdgeRepository {
	return &EdgeRepo{db: db, table: "follows", subjectColumn: "follower_id", objectColumn: "author_id"}
}

// objectArg converts the object identifier to the column's type.
func (repo *EdgeRepo) objectArg(objectID string) (any, error) {
	if !repo.numericObject {
		return objectID, nil
	}
	id, err := strconv.ParseInt(objectID, 10, 64)
	if err != nil || id <= 0 {
		return nil, fmt.Errorf("invalid object id %q", objectID)
	}
	return id, nil
}

func (repo *EdgeRepo) Exists(ctx context.Context, objectID, subjectID string) (bool, error) {
	object, err := repo.objectArg(objectID)
	if err != nil {
		return false, err
	}
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1 AND %s = $2)`,
		repo.table, repo.subjectColumn, repo.objectColumn)
	var exists bool
	if err := repo.db.QueryRowContext(ctx, query, subjectID, object).Scan(&exists); err != nil {
		return false, fmt.Errorf("Exists: %w", err)
	}
	return exists, nil
}

func (repo *EdgeRepo) Count(ctx context.Context, objectID string) (int64, error) {
	object, err := repo.objectArg(objectID)
	if err != nil {
		return 0, err
	}
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE %s = $1`, repo.table, repo.objectColumn)
	var count int64
	if err := repo.db.QueryRowContext(ctx, query, object).Scan(&count); err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return count, nil
}

// Insert adds the edge if absent. ON CONFLICT DO NOTHING makes a duplicate
// add, including one that loses a race to the pair constraint, a no-op.
func (repo *EdgeRepo) Insert(ctx context.Context, objectID, subjectID string) error {
	object, err := repo.objectArg(objectID)
	if err != nil {
		return err
	}
	query := fmt.Sprintf(`
INSERT INTO %s (%s, %s)
VALUES ($1, $2)
ON CONFLICT (%s, %s) DO NOTHING`,
		repo.table, repo.subjectColumn, repo.objectColumn,
		repo.subjectColumn, repo.objectColumn)
	if _, err := repo.db.ExecContext(ctx, query, subjectID, object); err != nil {
		return fmt.Errorf("Insert: %w", err)
	}
	return nil
}

func (repo *EdgeRepo) Delete(ctx context.Context, objectID, subjectID string) error {
	object, err := repo.objectArg(objectID)
	if err != nil {
		return err
	}
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`,
		repo.table, repo.subjectColumn, repo.objectColumn)
	if _, err := repo.db.ExecContext(ctx, query, subjectID, object); err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	return nil
}
