package models

import "time"

type Artwork struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	Title    string `gorm:"column:title;not null" json:"title"`
	Artist   string `gorm:"column:artist;not null" json:"artist"`
	Price    int    `gorm:"column:price;not null" json:"price"`        // whole USD
	ImageURL string `gorm:"column:image_url;not null" json:"imageUrl"` // external URL or a path issued by the upload handler

	Description *string `gorm:"column:description" json:"description"`
	Year        *int    `gorm:"column:year" json:"year"`
	Medium      *string `gorm:"column:medium" json:"medium"`
}
