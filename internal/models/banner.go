package models

import "github.com/google/uuid"

type Banner struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	ImageURL  string    `json:"src" db:"image_url"`
	Text      string    `json:"text" db:"text"`
	SortOrder int       `json:"-" db:"sort_order"`
}
