package article

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"blog-api/internal/domain/entity"
	"blog-api/internal/repository"
)

// stubRepo records the calls the service makes and plays back canned rows.
type stubRepo struct {
	rows    []*entity.Article
	total   int64
	err     error
	nextID  int64
	stored  map[int64]*entity.Article
	deleted map[int64]bool

	getCalls    int
	updateCalls int

	listFilters  []repository.ArticleFilter
	limitedCalls []struct {
		f     repository.ArticleFilter
		limit int
	}
	paginatedCalls []struct {
		f             repository.ArticleFilter
		limit, offset int
	}

	// emptyFirstList makes the first List call return no rows so the
	// popular fallback path runs.
	emptyFirstList bool
}

func newStub() *stubRepo {
	return &stubRepo{nextID: 1, stored: map[int64]*entity.Article{}, deleted: map[int64]bool{}}
}

func (s *stubRepo) List(_ context.Context, f repository.ArticleFilter) ([]*entity.Article, error) {
	s.listFilters = append(s.listFilters, f)
	if s.emptyFirstList && len(s.listFilters) == 1 {
		return nil, s.err
	}
	return s.rows, s.err
}

func (s *stubRepo) ListLimited(_ context.Context, f repository.ArticleFilter, limit int) ([]*entity.Article, error) {
	s.limitedCalls = append(s.limitedCalls, struct {
		f     repository.ArticleFilter
		limit int
	}{f, limit})
	return s.rows, s.err
}

func (s *stubRepo) ListPaginated(_ context.Context, f repository.ArticleFilter, limit, offset int) ([]*entity.Article, error) {
	s.paginatedCalls = append(s.paginatedCalls, struct {
		f             repository.ArticleFilter
		limit, offset int
	}{f, limit, offset})
	return s.rows, s.err
}

func (s *stubRepo) Count(_ context.Context, _ repository.ArticleFilter) (int64, error) {
	return s.total, s.err
}

func (s *stubRepo) Get(_ context.Context, id int64) (*entity.Article, error) {
	s.getCalls++
	return s.stored[id], s.err
}

func (s *stubRepo) Create(_ context.Context, a *entity.Article) error {
	if s.err != nil {
		return s.err
	}
	a.ID = s.nextID
	s.nextID++
	s.stored[a.ID] = a
	return nil
}

func (s *stubRepo) Update(_ context.Context, id int64, p repository.ArticlePatch) (*entity.Article, error) {
	s.updateCalls++
	if s.err != nil {
		return nil, s.err
	}
	a, ok := s.stored[id]
	if !ok {
		return nil, nil
	}
	if p.Title != nil {
		a.Title = *p.Title
	}
	if p.Excerpt != nil {
		a.Excerpt = *p.Excerpt
	}
	if p.Content != nil {
		a.Content = *p.Content
	}
	if p.Image != nil {
		a.Image = *p.Image
	}
	if p.Author != nil {
		a.Author = *p.Author
	}
	if p.Date != nil {
		a.Date = *p.Date
	}
	if p.Views != nil {
		a.Views = *p.Views
	}
	if p.ReadTime != nil {
		a.ReadTime = *p.ReadTime
	}
	if p.Category != nil {
		a.Category = *p.Category
	}
	if p.CategoryID != nil {
		a.CategoryID = *p.CategoryID
	}
	if p.Tags != nil {
		a.Tags = *p.Tags
	}
	if p.Featured != nil {
		a.Featured = *p.Featured
	}
	if p.Popular != nil {
		a.Popular = *p.Popular
	}
	if p.IsDraft != nil {
		a.IsDraft = *p.IsDraft
	}
	return a, nil
}

func (s *stubRepo) Delete(_ context.Context, id int64) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	_, ok := s.stored[id]
	delete(s.stored, id)
	s.deleted[id] = true
	return ok, nil
}

func pinNow(t *testing.T, fixed time.Time) {
	t.Helper()
	orig := now
	now = func() time.Time { return fixed }
	t.Cleanup(func() { now = orig })
}

func TestList_LimitMode(t *testing.T) {
	repo := newStub()
	repo.rows = []*entity.Article{{ID: 1}, {ID: 2}}
	repo.total = 42
	svc := &Service{Repo: repo}

	limit := 3
	got, err := svc.List(context.Background(), ListInput{Limit: &limit, Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("List err=%v", err)
	}

	if got.Paged {
		t.Fatal("limit mode must not report pagination metadata")
	}
	if got.Total != 42 {
		t.Fatalf("Total=%d, want 42", got.Total)
	}
	if len(repo.limitedCalls) != 1 || repo.limitedCalls[0].limit != 3 {
		t.Fatalf("limited calls = %+v, want one call with limit 3", repo.limitedCalls)
	}
	if len(repo.paginatedCalls) != 0 {
		t.Fatal("page query must not run in limit mode")
	}
}

func TestList_PageMode(t *testing.T) {
	repo := newStub()
	repo.total = 11
	svc := &Service{Repo: repo}

	got, err := svc.List(context.Background(), ListInput{Page: 3, PageSize: 5})
	if err != nil {
		t.Fatalf("List err=%v", err)
	}

	if !got.Paged || got.Page != 3 || got.PageSize != 5 {
		t.Fatalf("metadata = %+v, want paged page=3 pageSize=5", got)
	}
	if len(repo.paginatedCalls) != 1 {
		t.Fatalf("paginated calls = %d, want 1", len(repo.paginatedCalls))
	}
	call := repo.paginatedCalls[0]
	if call.limit != 5 || call.offset != 10 {
		t.Fatalf("limit=%d offset=%d, want 5 and 10", call.limit, call.offset)
	}
}

func TestList_FilterCompilation(t *testing.T) {
	repo := newStub()
	svc := &Service{Repo: repo}

	exclude := int64(9)
	_, err := svc.List(context.Background(), ListInput{
		Category: "frontend",
		Search:   "go",
		Featured: true,
		Exclude:  &exclude,
		Page:     1, PageSize: 10,
	})
	if err != nil {
		t.Fatalf("List err=%v", err)
	}

	f := repo.paginatedCalls[0].f
	if f.CategoryID == nil || *f.CategoryID != "frontend" {
		t.Fatalf("CategoryID=%v", f.CategoryID)
	}
	if f.Search == nil || *f.Search != "go" {
		t.Fatalf("Search=%v", f.Search)
	}
	if !f.Featured || f.ExcludeID == nil || *f.ExcludeID != 9 {
		t.Fatalf("filter=%+v", f)
	}
	if f.PopularOnly || f.CreatedAfter != nil {
		t.Fatalf("unexpected conditions compiled: %+v", f)
	}
}

func TestPopular_WindowCutoffs(t *testing.T) {
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	pinNow(t, fixed)

	tests := []struct {
		timeRange  string
		wantWindow bool
		wantCutoff int64
	}{
		{TimeRangeAll, false, 0},
		{TimeRangeToday, true, fixed.UnixMilli() - dayMillis},
		{TimeRangeWeek, true, fixed.UnixMilli() - 7*dayMillis},
		{TimeRangeMonth, true, fixed.UnixMilli() - 30*dayMillis},
		{"bogus", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.timeRange, func(t *testing.T) {
			repo := newStub()
			repo.rows = []*entity.Article{{ID: 1, Popular: true}}
			svc := &Service{Repo: repo}

			if _, err := svc.Popular(context.Background(), tt.timeRange); err != nil {
				t.Fatalf("Popular err=%v", err)
			}

			f := repo.listFilters[0]
			if !f.PopularOnly {
				t.Fatal("PopularOnly not set")
			}
			if tt.wantWindow {
				if f.CreatedAfter == nil || *f.CreatedAfter != tt.wantCutoff {
					t.Fatalf("CreatedAfter=%v, want %d", f.CreatedAfter, tt.wantCutoff)
				}
			} else if f.CreatedAfter != nil {
				t.Fatalf("CreatedAfter=%v, want nil", *f.CreatedAfter)
			}
		})
	}
}

func TestPopular_FallbackDropsWindowOnce(t *testing.T) {
	pinNow(t, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))

	repo := newStub()
	repo.emptyFirstList = true
	repo.rows = []*entity.Article{{ID: 4, Popular: true}}
	svc := &Service{Repo: repo}

	got, err := svc.Popular(context.Background(), TimeRangeWeek)
	if err != nil {
		t.Fatalf("Popular err=%v", err)
	}
	if len(got) != 1 || got[0].ID != 4 {
		t.Fatalf("got %+v, want the fallback rows", got)
	}

	if len(repo.listFilters) != 2 {
		t.Fatalf("list calls = %d, want 2", len(repo.listFilters))
	}
	if repo.listFilters[0].CreatedAfter == nil {
		t.Fatal("first call must carry the window")
	}
	if repo.listFilters[1].CreatedAfter != nil {
		t.Fatal("fallback must drop the window, not widen it")
	}
}

func TestPopular_NoFallbackForAll(t *testing.T) {
	repo := newStub()
	repo.emptyFirstList = true
	svc := &Service{Repo: repo}

	got, err := svc.Popular(context.Background(), TimeRangeAll)
	if err != nil {
		t.Fatalf("Popular err=%v", err)
	}
	if len(got) != 0 {
		t.Fatalf("got %d rows, want 0", len(got))
	}
	if len(repo.listFilters) != 1 {
		t.Fatalf("list calls = %d, want exactly 1 for all-time", len(repo.listFilters))
	}
}

func TestCreate_Defaults(t *testing.T) {
	fixed := time.Date(2026, 2, 20, 8, 30, 0, 0, time.UTC)
	pinNow(t, fixed)

	repo := newStub()
	svc := &Service{Repo: repo}

	got, err := svc.Create(context.Background(), CreateInput{
		Title:   "Hello",
		Content: "short body",
	})
	if err != nil {
		t.Fatalf("Create err=%v", err)
	}

	if got.ID != 1 {
		t.Fatalf("ID=%d, want generated 1", got.ID)
	}
	if got.Views != "0" {
		t.Fatalf("Views=%q, want \"0\"", got.Views)
	}
	if got.ReadTime != "1 min" {
		t.Fatalf("ReadTime=%q", got.ReadTime)
	}
	if got.Excerpt != "short body..." {
		t.Fatalf("Excerpt=%q", got.Excerpt)
	}
	if got.Author != "Anonymous" {
		t.Fatalf("Author=%q", got.Author)
	}
	if got.Date != "2026-02-20" {
		t.Fatalf("Date=%q", got.Date)
	}
	if got.Category != "Uncategorized" || got.CategoryID != "other" {
		t.Fatalf("category = %q/%q", got.Category, got.CategoryID)
	}
	if got.Tags == nil || len(got.Tags) != 0 {
		t.Fatalf("Tags=%v, want empty non-nil slice", got.Tags)
	}
	if got.CreatedAt != fixed.UnixMilli() {
		t.Fatalf("CreatedAt=%d, want %d", got.CreatedAt, fixed.UnixMilli())
	}
	wantImage := fmt.Sprintf("https://picsum.photos/seed/%d/800/400", fixed.UnixMilli())
	if got.Image != wantImage {
		t.Fatalf("Image=%q, want %q", got.Image, wantImage)
	}
}

func TestCreate_Validation(t *testing.T) {
	svc := &Service{Repo: newStub()}

	_, err := svc.Create(context.Background(), CreateInput{Content: "body"})
	var vErr *entity.ValidationError
	if !errors.As(err, &vErr) || vErr.Field != "title" {
		t.Fatalf("missing title: err=%v", err)
	}

	_, err = svc.Create(context.Background(), CreateInput{Title: "t"})
	if !errors.As(err, &vErr) || vErr.Field != "content" {
		t.Fatalf("missing content: err=%v", err)
	}
}

func TestCreate_ReadTimeScalesWithContent(t *testing.T) {
	pinNow(t, time.Date(2026, 2, 20, 8, 30, 0, 0, time.UTC))
	svc := &Service{Repo: newStub()}

	long := make([]rune, 1200)
	for i := range long {
		long[i] = 'x'
	}
	got, err := svc.Create(context.Background(), CreateInput{Title: "t", Content: string(long)})
	if err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if got.ReadTime != "3 min" {
		t.Fatalf("ReadTime=%q, want \"3 min\" for 1200 characters", got.ReadTime)
	}
}

func TestUpdate_MergePatch(t *testing.T) {
	repo := newStub()
	repo.stored[1] = &entity.Article{
		ID: 1, Title: "old title", Content: "old content", Views: "10",
		Tags: []string{"go"},
	}
	svc := &Service{Repo: repo}

	views := "11"
	got, err := svc.Update(context.Background(), UpdateInput{ID: 1, Views: &views})
	if err != nil {
		t.Fatalf("Update err=%v", err)
	}

	if got.Views != "11" {
		t.Fatalf("Views=%q, want patched value", got.Views)
	}
	if got.Title != "old title" || got.Content != "old content" || len(got.Tags) != 1 {
		t.Fatalf("untouched fields changed: %+v", got)
	}
}

func TestUpdate_SingleStoreCall(t *testing.T) {
	repo := newStub()
	repo.stored[1] = &entity.Article{ID: 1, Title: "old title"}
	svc := &Service{Repo: repo}

	views := "11"
	if _, err := svc.Update(context.Background(), UpdateInput{ID: 1, Views: &views}); err != nil {
		t.Fatalf("Update err=%v", err)
	}

	// The merge must reach the store as one patch, never as a read followed
	// by a full-row write.
	if repo.getCalls != 0 {
		t.Fatalf("getCalls=%d, want 0", repo.getCalls)
	}
	if repo.updateCalls != 1 {
		t.Fatalf("updateCalls=%d, want 1", repo.updateCalls)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	svc := &Service{Repo: newStub()}

	title := "t"
	_, err := svc.Update(context.Background(), UpdateInput{ID: 5, Title: &title})
	if !errors.Is(err, ErrArticleNotFound) {
		t.Fatalf("err=%v, want ErrArticleNotFound", err)
	}
}

func TestGet(t *testing.T) {
	repo := newStub()
	repo.stored[1] = &entity.Article{ID: 1, Title: "x"}
	svc := &Service{Repo: repo}

	if _, err := svc.Get(context.Background(), 1); err != nil {
		t.Fatalf("Get err=%v", err)
	}
	if _, err := svc.Get(context.Background(), 2); !errors.Is(err, ErrArticleNotFound) {
		t.Fatalf("missing: err=%v", err)
	}
	if _, err := svc.Get(context.Background(), 0); !errors.Is(err, ErrInvalidArticleID) {
		t.Fatalf("zero id: err=%v", err)
	}
}

func TestDelete(t *testing.T) {
	repo := newStub()
	repo.stored[1] = &entity.Article{ID: 1}
	svc := &Service{Repo: repo}

	if err := svc.Delete(context.Background(), 1); err != nil {
		t.Fatalf("Delete err=%v", err)
	}
	if err := svc.Delete(context.Background(), 1); !errors.Is(err, ErrArticleNotFound) {
		t.Fatalf("second delete: err=%v, want ErrArticleNotFound", err)
	}
}
