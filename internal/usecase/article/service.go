package article

import (
	"context"
	"fmt"
	"time"

	"blog-api/internal/common/pagination"
	"blog-api/internal/domain/entity"
	"blog-api/internal/repository"
)

// TimeRange values accepted by the popular listing.
const (
	TimeRangeAll   = "all"
	TimeRangeToday = "today"
	TimeRangeWeek  = "week"
	TimeRangeMonth = "month"
)

const dayMillis = 24 * 60 * 60 * 1000

// ListInput carries the optional listing parameters. Limit and pagination
// are mutually exclusive result modes: when Limit is set the page parameters
// are ignored.
type ListInput struct {
	Category string
	Search   string
	Featured bool
	Exclude  *int64
	Limit    *int
	Page     int
	PageSize int
}

// ListResult is a filtered listing plus its metadata. Total always counts
// every article matching the filter, ignoring limit and pagination. Page and
// PageSize are only populated in page mode.
type ListResult struct {
	Articles []*entity.Article
	Total    int64
	Paged    bool
	Page     int
	PageSize int
}

// CreateInput represents the input for creating a new article. Optional
// fields left empty receive server-derived defaults.
type CreateInput struct {
	Title      string
	Excerpt    string
	Content    string
	Image      string
	Author     string
	Date       string
	Category   string
	CategoryID string
	Tags       []string
	IsDraft    bool
}

// UpdateInput represents a merge-patch update: fields with nil values keep
// their prior value.
type UpdateInput struct {
	ID         int64
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

// Service provides article management use cases. It compiles listing
// parameters into repository filters and delegates persistence.
type Service struct {
	Repo repository.ArticleRepository
}

// now is stubbed in tests that pin creation timestamps.
var now = time.Now

func buildFilter(in ListInput) repository.ArticleFilter {
	var f repository.ArticleFilter
	if in.Category != "" {
		f.CategoryID = &in.Category
	}
	if in.Search != "" {
		f.Search = &in.Search
	}
	f.Featured = in.Featured
	f.ExcludeID = in.Exclude
	return f
}

// List retrieves articles matching the supplied filters. With a limit it
// returns up to that many rows; otherwise it returns the requested page.
// Either way Total is computed with the same filter via a count query.
func (s *Service) List(ctx context.Context, in ListInput) (*ListResult, error) {
	f := buildFilter(in)

	total, err := s.Repo.Count(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("count articles: %w", err)
	}

	if in.Limit != nil {
		articles, err := s.Repo.ListLimited(ctx, f, *in.Limit)
		if err != nil {
			return nil, fmt.Errorf("list articles: %w", err)
		}
		return &ListResult{Articles: articles, Total: total}, nil
	}

	// Offset arithmetic is reproduced literally; non-positive page values
	// are not clamped.
	offset := pagination.CalculateOffset(in.Page, in.PageSize)
	articles, err := s.Repo.ListPaginated(ctx, f, in.PageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("list articles paginated: %w", err)
	}
	return &ListResult{
		Articles: articles,
		Total:    total,
		Paged:    true,
		Page:     in.Page,
		PageSize: in.PageSize,
	}, nil
}

// Popular retrieves popular articles, optionally restricted to a recent time
// window. When the window yields no rows and the range is not "all", the
// same filter is rerun without the window and that result is returned
// instead; the window is never widened.
func (s *Service) Popular(ctx context.Context, timeRange string) ([]*entity.Article, error) {
	f := repository.ArticleFilter{PopularOnly: true}

	var cutoff int64
	nowMillis := now().UnixMilli()
	switch timeRange {
	case TimeRangeToday:
		cutoff = nowMillis - dayMillis
	case TimeRangeWeek:
		cutoff = nowMillis - 7*dayMillis
	case TimeRangeMonth:
		cutoff = nowMillis - 30*dayMillis
	}
	if cutoff > 0 {
		f.CreatedAfter = &cutoff
	}

	articles, err := s.Repo.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list popular articles: %w", err)
	}

	if len(articles) == 0 && f.CreatedAfter != nil {
		f.CreatedAfter = nil
		articles, err = s.Repo.List(ctx, f)
		if err != nil {
			return nil, fmt.Errorf("list popular articles fallback: %w", err)
		}
	}
	return articles, nil
}

// Get retrieves a single article by its ID.
// Returns ErrArticleNotFound if the article does not exist.
func (s *Service) Get(ctx context.Context, id int64) (*entity.Article, error) {
	if id <= 0 {
		return nil, ErrInvalidArticleID
	}

	article, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if article == nil {
		return nil, ErrArticleNotFound
	}
	return article, nil
}

// Create validates the input, applies server-derived defaults and persists
// the new article. Title and content are required.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Article, error) {
	if in.Title == "" {
		return nil, &entity.ValidationError{Field: "title", Message: "title is required"}
	}
	if in.Content == "" {
		return nil, &entity.ValidationError{Field: "content", Message: "content is required"}
	}

	createdAt := now()
	article := &entity.Article{
		Title:      in.Title,
		Excerpt:    in.Excerpt,
		Content:    in.Content,
		Image:      in.Image,
		Author:     in.Author,
		Date:       in.Date,
		Views:      "0",
		ReadTime:   readTimeLabel(in.Content),
		Category:   in.Category,
		CategoryID: in.CategoryID,
		Tags:       in.Tags,
		IsDraft:    in.IsDraft,
		CreatedAt:  createdAt.UnixMilli(),
	}
	if article.Excerpt == "" {
		article.Excerpt = excerptOf(in.Content)
	}
	if article.Image == "" {
		article.Image = fmt.Sprintf("https://picsum.photos/seed/%d/800/400", createdAt.UnixMilli())
	}
	if article.Author == "" {
		article.Author = "Anonymous"
	}
	if article.Date == "" {
		article.Date = createdAt.Format("2006-01-02")
	}
	if article.Category == "" {
		article.Category = "Uncategorized"
	}
	if article.CategoryID == "" {
		article.CategoryID = "other"
	}
	if article.Tags == nil {
		article.Tags = []string{}
	}

	if err := s.Repo.Create(ctx, article); err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}
	return article, nil
}

// Update modifies an existing article; only non-nil input fields are
// changed, everything else keeps its stored value. The merge happens inside
// the store's single UPDATE statement, so the patch never races a concurrent
// writer. Returns ErrArticleNotFound if the article does not exist.
func (s *Service) Update(ctx context.Context, in UpdateInput) (*entity.Article, error) {
	if in.ID <= 0 {
		return nil, ErrInvalidArticleID
	}

	article, err := s.Repo.Update(ctx, in.ID, repository.ArticlePatch{
		Title:      in.Title,
		Excerpt:    in.Excerpt,
		Content:    in.Content,
		Image:      in.Image,
		Author:     in.Author,
		Date:       in.Date,
		Views:      in.Views,
		ReadTime:   in.ReadTime,
		Category:   in.Category,
		CategoryID: in.CategoryID,
		Tags:       in.Tags,
		Featured:   in.Featured,
		Popular:    in.Popular,
		IsDraft:    in.IsDraft,
	})
	if err != nil {
		return nil, fmt.Errorf("update article: %w", err)
	}
	if article == nil {
		return nil, ErrArticleNotFound
	}
	return article, nil
}

// Delete removes an article by its ID.
// Returns ErrArticleNotFound if no such article exists.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidArticleID
	}

	found, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	if !found {
		return ErrArticleNotFound
	}
	return nil
}

// excerptOf derives a default excerpt: the first 100 runes of the content
// followed by an ellipsis.
func excerptOf(content string) string {
	runes := []rune(content)
	if len(runes) > 100 {
		runes = runes[:100]
	}
	return string(runes) + "..."
}

// readTimeLabel estimates reading time at 500 characters per minute, with a
// minimum of one minute.
func readTimeLabel(content string) string {
	minutes := (len([]rune(content)) + 499) / 500
	if minutes < 1 {
		minutes = 1
	}
	return fmt.Sprintf("%d min", minutes)
}
