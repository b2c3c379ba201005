package entity

// Comment represents a reader comment attached to an article.
// Comments are immutable once created except for their like counter.
type Comment struct {
	ID        int64
	ArticleID int64
	Author    string
	Content   string
	Date      string
	Likes     int
}
