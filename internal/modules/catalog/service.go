package catalog

import (
	"context"

	"starcatalog/internal/domain"
	"starcatalog/internal/repository"
)

type Service struct {
	characterRepo *repository.CharacterRepository
	planetRepo    *repository.PlanetRepository
}

func NewService(
	characterRepo *repository.CharacterRepository,
	planetRepo *repository.PlanetRepository,
) *Service {
	return &Service{characterRepo, planetRepo}
}

func (s *Service) ListPeople(ctx context.Context) ([]domain.Character, error) {
	return s.characterRepo.GetAll(ctx)
}

func (s *Service) GetPerson(ctx context.Context, id int64) (*domain.Character, error) {
	return s.characterRepo.GetByID(ctx, id)
}

func (s *Service) ListPlanets(ctx context.Context) ([]domain.Planet, error) {
	return s.planetRepo.GetAll(ctx)
}

func (s *Service) GetPlanet(ctx context.Context, id int64) (*domain.Planet, error) {
	return s.planetRepo.GetByID(ctx, id)
}
