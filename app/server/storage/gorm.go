package storage

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"minimalist-art-gallery/app/server/models"
	"minimalist-art-gallery/app/server/types"
)

// GormStorage implements Storage on a gorm handle. It relies on the handle
// being opened with TranslateError so unique violations surface as
// gorm.ErrDuplicatedKey regardless of driver.
type GormStorage struct {
	db *gorm.DB
}

var _ Storage = (*GormStorage)(nil)

func NewGormStorage(db *gorm.DB) *GormStorage {
	return &GormStorage{db: db}
}

func (s *GormStorage) GetUser(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}
	return &user, nil
}

func (s *GormStorage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by username: %w", err)
	}
	return &user, nil
}

func (s *GormStorage) CreateUser(ctx context.Context, user *models.User) error {
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrUsernameTaken
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (s *GormStorage) GetArtworks(ctx context.Context) ([]models.Artwork, error) {
	artworks := []models.Artwork{}
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&artworks).Error; err != nil {
		return nil, fmt.Errorf("list artworks: %w", err)
	}
	return artworks, nil
}

func (s *GormStorage) CreateArtwork(ctx context.Context, artwork *models.Artwork) error {
	if err := s.db.WithContext(ctx).Create(artwork).Error; err != nil {
		return fmt.Errorf("create artwork: %w", err)
	}
	return nil
}

func (s *GormStorage) UpdateArtwork(ctx context.Context, id uint, patch *types.ArtworkUpdate) (*models.Artwork, error) {
	var artwork models.Artwork
	if err := s.db.WithContext(ctx).First(&artwork, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get artwork %d: %w", id, err)
	}

	artworkMapFields(patch, &artwork)

	if err := s.db.WithContext(ctx).Save(&artwork).Error; err != nil {
		return nil, fmt.Errorf("update artwork %d: %w", id, err)
	}
	return &artwork, nil
}

// DeleteArtwork is idempotent: removing an id that does not exist is not an
// error.
func (s *GormStorage) DeleteArtwork(ctx context.Context, id uint) error {
	if err := s.db.WithContext(ctx).Delete(&models.Artwork{}, id).Error; err != nil {
		return fmt.Errorf("delete artwork %d: %w", id, err)
	}
	return nil
}

func artworkMapFields(patch *types.ArtworkUpdate, artwork *models.Artwork) {
	if patch.Title != nil {
		artwork.Title = *patch.Title
	}
	if patch.Artist != nil {
		artwork.Artist = *patch.Artist
	}
	if patch.Price != nil {
		artwork.Price = *patch.Price
	}
	if patch.ImageURL != nil {
		artwork.ImageURL = *patch.ImageURL
	}
	if patch.Description != nil {
		artwork.Description = patch.Description
	}
	if patch.Year != nil {
		artwork.Year = patch.Year
	}
	if patch.Medium != nil {
		artwork.Medium = patch.Medium
	}
}
