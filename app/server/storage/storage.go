// Package storage is the persistence boundary: CRUD over users and artworks
// with one gorm-backed implementation.
package storage

import (
	"context"
	"errors"

	"minimalist-art-gallery/app/server/models"
	"minimalist-art-gallery/app/server/types"
)

var (
	// ErrNotFound marks a mutation against an id that does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrUsernameTaken marks a user insert that violates username uniqueness.
	ErrUsernameTaken = errors.New("username already exists")
)

// Storage is the CRUD contract used by the handlers. Single-row lookups
// return (nil, nil) when the row is absent rather than an error.
type Storage interface {
	GetUser(ctx context.Context, id uint) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error

	GetArtworks(ctx context.Context) ([]models.Artwork, error)
	CreateArtwork(ctx context.Context, artwork *models.Artwork) error
	UpdateArtwork(ctx context.Context, id uint, patch *types.ArtworkUpdate) (*models.Artwork, error)
	DeleteArtwork(ctx context.Context, id uint) error
}
