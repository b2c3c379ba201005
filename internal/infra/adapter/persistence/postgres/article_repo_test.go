package postgres_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"

	"blog-api/internal/domain/entity"
	pg "blog-api/internal/infra/adapter/persistence/postgres"
	"blog-api/internal/repository"
)

var articleCols = []string{
	"id", "title", "excerpt", "content", "image", "author", "date", "views", "read_time",
	"category", "category_id", "tags", "featured", "popular", "is_draft", "created_at",
}

func artRow(a *entity.Article) *sqlmock.Rows {
	return sqlmock.NewRows(articleCols).AddRow(
		a.ID, a.Title, a.Excerpt, a.Content, a.Image, a.Author, a.Date, a.Views, a.ReadTime,
		a.Category, a.CategoryID, "{go,web}", a.Featured, a.Popular, a.IsDraft, a.CreatedAt,
	)
}

func sampleArticle() *entity.Article {
	return &entity.Article{
		ID: 1, Title: "Getting started", Excerpt: "intro...", Content: "body",
		Image: "https://picsum.photos/seed/1/800/400", Author: "Anonymous",
		Date: "2024-02-20", Views: "0", ReadTime: "1 min",
		Category: "Frontend", CategoryID: "frontend", Tags: []string{"go", "web"},
		CreatedAt: 1708387200000,
	}
}

func TestArticleRepo_Get(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	want := sampleArticle()
	mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1")).
		WithArgs(int64(1)).
		WillReturnRows(artRow(want))

	repo := pg.NewArticleRepo(db)
	got, err := repo.Get(context.Background(), 1)
	if err != nil {
		t.Fatalf("Get err=%v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestArticleRepo_Get_Missing(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("FROM articles").
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows(articleCols))

	repo := pg.NewArticleRepo(db)
	got, err := repo.Get(context.Background(), 99)
	if err != nil {
		t.Fatalf("Get err=%v", err)
	}
	if got != nil {
		t.Fatalf("got %+v, want nil for missing article", got)
	}
}

func TestArticleRepo_List_FilterArgs(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("FROM articles").
		WithArgs("frontend").
		WillReturnRows(artRow(sampleArticle()))

	repo := pg.NewArticleRepo(db)
	category := "frontend"
	got, err := repo.List(context.Background(), repository.ArticleFilter{CategoryID: &category})
	if err != nil || len(got) != 1 {
		t.Fatalf("List err=%v len=%d", err, len(got))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestArticleRepo_ListPaginated(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta("LIMIT $1 OFFSET $2")).
		WithArgs(10, 20).
		WillReturnRows(sqlmock.NewRows(articleCols))

	repo := pg.NewArticleRepo(db)
	got, err := repo.ListPaginated(context.Background(), repository.ArticleFilter{}, 10, 20)
	if err != nil {
		t.Fatalf("ListPaginated err=%v", err)
	}
	if len(got) != 0 {
		t.Fatalf("len=%d, want 0", len(got))
	}
}

func TestArticleRepo_Count_SharesFilter(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM articles")).
		WithArgs("%go%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(7)))

	repo := pg.NewArticleRepo(db)
	search := "go"
	count, err := repo.Count(context.Background(), repository.ArticleFilter{Search: &search})
	if err != nil {
		t.Fatalf("Count err=%v", err)
	}
	if count != 7 {
		t.Fatalf("count=%d, want 7", count)
	}
}

func TestArticleRepo_Create_FillsID(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("INSERT INTO articles").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(5)))

	repo := pg.NewArticleRepo(db)
	article := sampleArticle()
	article.ID = 0
	if err := repo.Create(context.Background(), article); err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if article.ID != 5 {
		t.Fatalf("ID=%d, want 5", article.ID)
	}
}

func TestArticleRepo_Update_CoalescesAbsentFields(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	want := sampleArticle()
	want.Views = "11"
	// Absent patch fields bind as NULL so the row keeps its stored values.
	mock.ExpectQuery(regexp.QuoteMeta("views       = COALESCE($7, views)")).
		WithArgs(nil, nil, nil, nil, nil, nil, "11",
			nil, nil, nil, nil, nil, nil, nil, int64(1)).
		WillReturnRows(artRow(want))

	repo := pg.NewArticleRepo(db)
	views := "11"
	got, err := repo.Update(context.Background(), 1, repository.ArticlePatch{Views: &views})
	if err != nil {
		t.Fatalf("Update err=%v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestArticleRepo_Update_Missing(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("UPDATE articles").
		WillReturnRows(sqlmock.NewRows(articleCols))

	repo := pg.NewArticleRepo(db)
	title := "t"
	got, err := repo.Update(context.Background(), 99, repository.ArticlePatch{Title: &title})
	if err != nil {
		t.Fatalf("Update err=%v", err)
	}
	if got != nil {
		t.Fatalf("got %+v, want nil for a missing row", got)
	}
}

func TestArticleRepo_Delete(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM articles WHERE id = $1")).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM articles WHERE id = $1")).
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := pg.NewArticleRepo(db)

	found, err := repo.Delete(context.Background(), 1)
	if err != nil || !found {
		t.Fatalf("Delete(1) = (%v, %v), want (true, nil)", found, err)
	}
	found, err = repo.Delete(context.Background(), 99)
	if err != nil || found {
		t.Fatalf("Delete(99) = (%v, %v), want (false, nil)", found, err)
	}
}
