package repository

import (
	"context"

	"starcatalog/internal/domain"

	"gorm.io/gorm"
)

type PlanetRepository struct {
	db *gorm.DB
}

func NewPlanetRepository(db *gorm.DB) *PlanetRepository {
	return &PlanetRepository{db: db}
}

func (r *PlanetRepository) Create(ctx context.Context, p *domain.Planet) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PlanetRepository) GetAll(ctx context.Context) ([]domain.Planet, error) {
	var planets []domain.Planet
	if err := r.db.WithContext(ctx).Find(&planets).Error; err != nil {
		return nil, err
	}
	return planets, nil
}

func (r *PlanetRepository) GetByID(ctx context.Context, id int64) (*domain.Planet, error) {
	var p domain.Planet
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}
