package repository

import (
	"context"

	"starcatalog/internal/domain"

	"gorm.io/gorm"
)

// FavoriteRepository persists the user-to-catalog-item join rows.
type FavoriteRepository interface {
	AddCharacter(ctx context.Context, userID, characterID int64) (*domain.FavoriteCharacter, error)
	RemoveCharacter(ctx context.Context, userID, characterID int64) (int64, error)
	CharacterExists(ctx context.Context, userID, characterID int64) (bool, error)

	AddPlanet(ctx context.Context, userID, planetID int64) (*domain.FavoritePlanet, error)
	RemovePlanet(ctx context.Context, userID, planetID int64) (int64, error)
	PlanetExists(ctx context.Context, userID, planetID int64) (bool, error)

	GetByUserID(ctx context.Context, userID int64) ([]domain.FavoriteCharacter, []domain.FavoritePlanet, error)
}

type favoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

func (r *favoriteRepository) AddCharacter(ctx context.Context, userID, characterID int64) (*domain.FavoriteCharacter, error) {
	fav := &domain.FavoriteCharacter{
		UserID:      userID,
		CharacterID: characterID,
	}
	if err := r.db.WithContext(ctx).Create(fav).Error; err != nil {
		return nil, err
	}

	// Load the linked character so callers can serialize its name.
	if err := r.db.WithContext(ctx).Preload("Character").First(fav, fav.ID).Error; err != nil {
		return nil, err
	}
	return fav, nil
}

// RemoveCharacter deletes the link row and reports how many rows went
// away; zero means there was nothing to remove.
func (r *favoriteRepository) RemoveCharacter(ctx context.Context, userID, characterID int64) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND character_id = ?", userID, characterID).
		Delete(&domain.FavoriteCharacter{})
	return result.RowsAffected, result.Error
}

func (r *favoriteRepository) CharacterExists(ctx context.Context, userID, characterID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.FavoriteCharacter{}).
		Where("user_id = ? AND character_id = ?", userID, characterID).
		Count(&count).Error
	return count > 0, err
}

func (r *favoriteRepository) AddPlanet(ctx context.Context, userID, planetID int64) (*domain.FavoritePlanet, error) {
	fav := &domain.FavoritePlanet{
		UserID:   userID,
		PlanetID: planetID,
	}
	if err := r.db.WithContext(ctx).Create(fav).Error; err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Preload("Planet").First(fav, fav.ID).Error; err != nil {
		return nil, err
	}
	return fav, nil
}

func (r *favoriteRepository) RemovePlanet(ctx context.Context, userID, planetID int64) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND planet_id = ?", userID, planetID).
		Delete(&domain.FavoritePlanet{})
	return result.RowsAffected, result.Error
}

func (r *favoriteRepository) PlanetExists(ctx context.Context, userID, planetID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.FavoritePlanet{}).
		Where("user_id = ? AND planet_id = ?", userID, planetID).
		Count(&count).Error
	return count > 0, err
}

func (r *favoriteRepository) GetByUserID(ctx context.Context, userID int64) ([]domain.FavoriteCharacter, []domain.FavoritePlanet, error) {
	var characters []domain.FavoriteCharacter
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Character").
		Find(&characters).Error; err != nil {
		return nil, nil, err
	}

	var planets []domain.FavoritePlanet
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Planet").
		Find(&planets).Error; err != nil {
		return nil, nil, err
	}

	return characters, planets, nil
}
