package repository

import (
	"context"

	"starcatalog/internal/domain"

	"gorm.io/gorm"
)

type CharacterRepository struct {
	db *gorm.DB
}

func NewCharacterRepository(db *gorm.DB) *CharacterRepository {
	return &CharacterRepository{db: db}
}

func (r *CharacterRepository) Create(ctx context.Context, c *domain.Character) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CharacterRepository) GetAll(ctx context.Context) ([]domain.Character, error) {
	var people []domain.Character
	if err := r.db.WithContext(ctx).Find(&people).Error; err != nil {
		return nil, err
	}
	return people, nil
}

func (r *CharacterRepository) GetByID(ctx context.Context, id int64) (*domain.Character, error) {
	var c domain.Character
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}
