package blog

import "time"

type Post struct {
	ID        int       `db:"id" json:"id"`
	Title     string    `db:"title" json:"title"`
	Slug      string    `db:"slug" json:"slug"`
	Excerpt   *string   `db:"excerpt" json:"excerpt"`
	Content   string    `db:"content" json:"content"`
	Image     *string   `db:"image" json:"image"`
	Published bool      `db:"published" json:"published"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

type CreatePostRequest struct {
	Title     string  `json:"title" binding:"required"`
	Slug      string  `json:"slug" binding:"required"`
	Excerpt   *string `json:"excerpt"`
	Content   string  `json:"content" binding:"required"`
	Image     *string `json:"image"`
	Published bool    `json:"published"`
}

type UpdatePostRequest = CreatePostRequest

type SetPublishedRequest struct {
	Published *bool `json:"published" binding:"required"`
}
