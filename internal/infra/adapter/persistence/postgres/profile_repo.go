package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"blog-api/internal/domain/entity"
	"blog-api/internal/repository"
)

type ProfileRepo struct {
	db Executor
}

func NewProfileRepo(db Executor) repository.ProfileRepository {
	return &ProfileRepo{db: db}
}

func (repo *ProfileRepo) Get(ctx context.Context) (*entity.Profile, error) {
	const query = `
SELECT id, name, title, bio, avatar, skills, timeline, projects, social_links, stats
FROM user_profiles
ORDER BY id
LIMIT 1`
	var profile entity.Profile
	var skills, timeline, projects, socialLinks, stats []byte
	err := repo.db.QueryRowContext(ctx, query).
		Scan(&profile.ID, &profile.Name, &profile.Title, &profile.Bio, &profile.Avatar,
			&skills, &timeline, &projects, &socialLinks, &stats)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}

	profile.Skills = json.RawMessage(skills)
	profile.Projects = json.RawMessage(projects)
	profile.SocialLinks = json.RawMessage(socialLinks)
	profile.Stats = json.RawMessage(stats)
	if len(timeline) > 0 {
		if err := json.Unmarshal(timeline, &profile.Timeline); err != nil {
			return nil, fmt.Errorf("Get: decode timeline: %w", err)
		}
	}
	return &profile, nil
}

func (repo *ProfileRepo) UpdateTimeline(ctx context.Context, profileID int64, entries []entity.TimelineEntry) error {
	encoded, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("UpdateTimeline: encode: %w", err)
	}
	const query = `UPDATE user_profiles SET timeline = $1 WHERE id = $2`
	res, err := repo.db.ExecContext(ctx, query, encoded, profileID)
	if err != nil {
		return fmt.Errorf("UpdateTimeline: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("UpdateTimeline: no rows affected")
	}
	return nil
}

func (repo *ProfileRepo) Stats(ctx context.Context) ([]entity.StatRow, error) {
	const query = `SELECT icon, number, label FROM user_stats ORDER BY id`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("Stats: %w", err)
	}
	defer func() { _ = rows.Close() }()

	stats := make([]entity.StatRow, 0, 8)
	for rows.Next() {
		var row entity.StatRow
		if err := rows.Scan(&row.Icon, &row.Number, &row.Label); err != nil {
			return nil, fmt.Errorf("Stats: Scan: %w", err)
		}
		stats = append(stats, row)
	}
	return stats, rows.Err()
}
