package domain

import "time"

// Author is the upstream's embedded author record.
type Author struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Post mirrors the upstream record for one blog post. Content is HTML
// produced by the dashboard's rich text editor; Slug is the public lookup
// key.
type Post struct {
	ID         int       `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Thumbnail  string    `json:"thumbnail"`
	IsFeatured bool      `json:"isFeatured"`
	Tags       []string  `json:"tags"`
	Slug       string    `json:"slug"`
	Views      int       `json:"views"`
	AuthorID   int       `json:"authorId"`
	Author     *Author   `json:"author,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
