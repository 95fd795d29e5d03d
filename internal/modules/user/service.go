package user

import (
	"context"

	"starcatalog/internal/domain"
	"starcatalog/internal/repository"
)

type Service struct {
	userRepo *repository.UserRepository
}

func NewService(userRepo *repository.UserRepository) *Service {
	return &Service{userRepo: userRepo}
}

func (s *Service) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.GetAll(ctx)
}
