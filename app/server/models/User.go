package models

import "time"

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	Username string `gorm:"column:username;uniqueIndex;not null" json:"username"`  // login name, globally unique
	Password string `gorm:"column:password;not null" json:"-"`                     // scrypt composite, never the plaintext
	IsAdmin  bool   `gorm:"column:is_admin;not null;default:false" json:"isAdmin"` // admins may mutate artworks, everyone else only reads
}
