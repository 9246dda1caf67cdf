package domain

import "time"

// Book in the catalogue. The (Title, AuthorID) pair is unique so the same
// title may exist under different authors.
type Book struct {
	ID            int64
	Title         string
	AuthorID      int64
	AuthorName    string
	PublishedYear *int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
