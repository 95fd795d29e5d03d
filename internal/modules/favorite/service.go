package favorite

import (
	"context"
	"errors"

	"starcatalog/internal/domain"
	"starcatalog/internal/repository"

	"gorm.io/gorm"
)

type Service struct {
	favoriteRepo  repository.FavoriteRepository
	userRepo      *repository.UserRepository
	characterRepo *repository.CharacterRepository
	planetRepo    *repository.PlanetRepository
}

func NewService(
	favoriteRepo repository.FavoriteRepository,
	userRepo *repository.UserRepository,
	characterRepo *repository.CharacterRepository,
	planetRepo *repository.PlanetRepository,
) *Service {
	return &Service{favoriteRepo, userRepo, characterRepo, planetRepo}
}

// checkUser verifies the acting user exists before any favorite row is
// read or written on their behalf.
func (s *Service) checkUser(ctx context.Context, userID int64) error {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}

// ListForUser returns every favorite link the user owns, with the
// linked catalog items loaded.
func (s *Service) ListForUser(ctx context.Context, userID int64) ([]domain.FavoriteCharacter, []domain.FavoritePlanet, error) {
	if err := s.checkUser(ctx, userID); err != nil {
		return nil, nil, err
	}
	return s.favoriteRepo.GetByUserID(ctx, userID)
}

// AddCharacter links a character to the user. Both sides of the link
// must exist and the character must not already be favorited.
func (s *Service) AddCharacter(ctx context.Context, userID, characterID int64) (*domain.FavoriteCharacter, error) {
	if err := s.checkUser(ctx, userID); err != nil {
		return nil, err
	}
	if _, err := s.characterRepo.GetByID(ctx, characterID); err != nil {
		return nil, err
	}

	exists, err := s.favoriteRepo.CharacterExists(ctx, userID, characterID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyFavorite
	}

	return s.favoriteRepo.AddCharacter(ctx, userID, characterID)
}

func (s *Service) RemoveCharacter(ctx context.Context, userID, characterID int64) error {
	removed, err := s.favoriteRepo.RemoveCharacter(ctx, userID, characterID)
	if err != nil {
		return err
	}
	if removed == 0 {
		return ErrFavoriteNotFound
	}
	return nil
}

func (s *Service) AddPlanet(ctx context.Context, userID, planetID int64) (*domain.FavoritePlanet, error) {
	if err := s.checkUser(ctx, userID); err != nil {
		return nil, err
	}
	if _, err := s.planetRepo.GetByID(ctx, planetID); err != nil {
		return nil, err
	}

	exists, err := s.favoriteRepo.PlanetExists(ctx, userID, planetID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyFavorite
	}

	return s.favoriteRepo.AddPlanet(ctx, userID, planetID)
}

func (s *Service) RemovePlanet(ctx context.Context, userID, planetID int64) error {
	removed, err := s.favoriteRepo.RemovePlanet(ctx, userID, planetID)
	if err != nil {
		return err
	}
	if removed == 0 {
		return ErrFavoriteNotFound
	}
	return nil
}
