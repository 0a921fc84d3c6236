package models

import (
	"time"
)

type Post struct {
	ID        int64     `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Desc      string    `json:"desc" db:"description"`
	Tag       *string   `json:"tag" db:"tag"`
	ImageURL  *string   `json:"imageUrl" db:"image_url"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

type CreatePostRequest struct {
	Title string  `json:"title" validate:"required"`
	Desc  string  `json:"desc" validate:"required"`
	Tag   *string `json:"tag"`
	Image string  `json:"image"`
}
