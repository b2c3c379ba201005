// Package article provides HTTP handlers for article endpoints: the
// filtered/paginated listing, the popular listing, and CRUD.
package article

import "blog-api/internal/domain/entity"

// DTO represents the JSON structure for article data transfer.
type DTO struct {
	ID         int64    `json:"id"`
	Title      string   `json:"title"`
	Excerpt    string   `json:"excerpt"`
	Content    string   `json:"content"`
	Image      string   `json:"image"`
	Author     string   `json:"author"`
	Date       string   `json:"date"`
	Views      string   `json:"views"`
	ReadTime   string   `json:"readTime"`
	Category   string   `json:"category"`
	CategoryID string   `json:"categoryId"`
	Tags       []string `json:"tags"`
	Featured   bool     `json:"featured"`
	Popular    bool     `json:"popular"`
	IsDraft    bool     `json:"isDraft"`
	CreatedAt  int64    `json:"createdAt"`
}

func toDTO(a *entity.Article) DTO {
	tags := a.Tags
	if tags == nil {
		tags = []string{}
	}
	return DTO{
		ID:         a.ID,
		Title:      a.Title,
		Excerpt:    a.Excerpt,
		Content:    a.Content,
		Image:      a.Image,
		Author:     a.Author,
		Date:       a.Date,
		Views:      a.Views,
		ReadTime:   a.ReadTime,
		Category:   a.Category,
		CategoryID: a.CategoryID,
		Tags:       tags,
		Featured:   a.Featured,
		Popular:    a.Popular,
		IsDraft:    a.IsDraft,
		CreatedAt:  a.CreatedAt,
	}
}

func toDTOs(articles []*entity.Article) []DTO {
	dtos := make([]DTO, 0, len(articles))
	for _, a := range articles {
		dtos = append(dtos, toDTO(a))
	}
	return dtos
}
