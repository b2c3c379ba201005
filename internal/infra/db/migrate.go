package db

import "database/sql"

// MigrateUp creates the schema. Statements are idempotent so the migration
// can run on every start.
func MigrateUp(database *sql.DB) error {
	tables := []string{
		`CREATE TABLE IF NOT EXISTS categories (
    id   VARCHAR(50) PRIMARY KEY,
    name VARCHAR(100) NOT NULL
)`,
		`CREATE TABLE IF NOT EXISTS articles (
    id          SERIAL PRIMARY KEY,
    title       VARCHAR(500) NOT NULL,
    excerpt     TEXT,
    content     TEXT NOT NULL,
    image       VARCHAR(500),
    author      VARCHAR(100),
    date        VARCHAR(20),
    views       VARCHAR(20) DEFAULT '0',
    read_time   VARCHAR(50),
    category    VARCHAR(100),
    category_id VARCHAR(50) REFERENCES categories(id),
    tags        TEXT[],
    featured    BOOLEAN DEFAULT FALSE,
    popular     BOOLEAN DEFAULT FALSE,
    is_draft    BOOLEAN DEFAULT FALSE,
    created_at  BIGINT
)`,
		`CREATE TABLE IF NOT EXISTS comments (
    id         SERIAL PRIMARY KEY,
    article_id INTEGER REFERENCES articles(id) ON DELETE CASCADE,
    author     VARCHAR(100),
    content    TEXT NOT NULL,
    date       VARCHAR(20),
    likes      INTEGER DEFAULT 0
)`,
		`CREATE TABLE IF NOT EXISTS tags (
    id   SERIAL PRIMARY KEY,
    name VARCHAR(100) UNIQUE NOT NULL
)`,
		`CREATE TABLE IF NOT EXISTS user_profiles (
    id           SERIAL PRIMARY KEY,
    name         VARCHAR(100),
    title        VARCHAR(200),
    bio          TEXT,
    avatar       VARCHAR(500),
    skills       JSONB,
    timeline     JSONB,
    projects     JSONB,
    social_links JSONB,
    stats        JSONB
)`,
		`CREATE TABLE IF NOT EXISTS user_stats (
    id     SERIAL PRIMARY KEY,
    icon   VARCHAR(10),
    number VARCHAR(20),
    label  VARCHAR(100)
)`,
		// Edge tables. The pair primary key is what lets concurrent
		// toggle adds degrade to no-ops instead of duplicate edges.
		`CREATE TABLE IF NOT EXISTS likes (
    user_id    TEXT NOT NULL,
    article_id INTEGER NOT NULL REFERENCES articles(id) ON DELETE CASCADE,
    PRIMARY KEY (user_id, article_id)
)`,
		`CREATE TABLE IF NOT EXISTS bookmarks (
    user_id    TEXT NOT NULL,
    article_id INTEGER NOT NULL REFERENCES articles(id) ON DELETE CASCADE,
    PRIMARY KEY (user_id, article_id)
)`,
		`CREATE TABLE IF NOT EXISTS follows (
    follower_id TEXT NOT NULL,
    author_id   TEXT NOT NULL,
    PRIMARY KEY (follower_id, author_id)
)`,
	}
	for _, stmt := range tables {
		if _, err := database.Exec(stmt); err != nil {
			return err
		}
	}

	indexes := []string{
		// Listing order: ORDER BY created_at DESC on every query.
		`CREATE INDEX IF NOT EXISTS idx_articles_created_at ON articles(created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_articles_category_id ON articles(category_id)`,
		`CREATE INDEX IF NOT EXISTS idx_comments_article_id ON comments(article_id)`,
		`CREATE INDEX IF NOT EXISTS idx_likes_article_id ON likes(article_id)`,
		`CREATE INDEX IF NOT EXISTS idx_bookmarks_article_id ON bookmarks(article_id)`,
		`CREATE INDEX IF NOT EXISTS idx_follows_author_id ON follows(author_id)`,
	}
	for _, idx := range indexes {
		if _, err := database.Exec(idx); err != nil {
			return err
		}
	}

	// pg_trgm speeds up the ILIKE substring search; ignore failures when the
	// extension cannot be installed.
	_, _ = database.Exec(`CREATE EXTENSION IF NOT EXISTS pg_trgm`)
	searchIndexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_articles_title_gin ON articles USING gin(title gin_trgm_ops)`,
		`CREATE INDEX IF NOT EXISTS idx_articles_excerpt_gin ON articles USING gin(excerpt gin_trgm_ops)`,
	}
	for _, idx := range searchIndexes {
		_, _ = database.Exec(idx)
	}

	return nil
}
