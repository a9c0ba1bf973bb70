package service

import (
	"context"

	"recipehub/internal/api/models"
	"recipehub/internal/api/repository"
)

type FavoriteService interface {
	Add(ctx context.Context, userID string, recipeID int64) (*models.Recipe, error)
	Remove(ctx context.Context, userID string, recipeID int64) error
	// IsFavorited is false for anonymous requests (empty userID).
	IsFavorited(ctx context.Context, userID string, recipeID int64) (bool, error)
}

type favoriteService struct {
	favoriteRepo repository.FavoriteRepository
	recipeRepo   repository.RecipeRepository
}

func NewFavoriteService(favoriteRepo repository.FavoriteRepository, recipeRepo repository.RecipeRepository) FavoriteService {
	return &favoriteService{
		favoriteRepo: favoriteRepo,
		recipeRepo:   recipeRepo,
	}
}

func (s *favoriteService) Add(ctx context.Context, userID string, recipeID int64) (*models.Recipe, error) {
	recipe, err := s.recipeRepo.GetByID(ctx, recipeID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}

	if err := s.favoriteRepo.Add(ctx, userID, recipeID); err != nil {
		if repository.IsDuplicate(err) {
			return nil, ErrAlreadyFavorited
		}
		return nil, err
	}

	return recipe, nil
}

func (s *favoriteService) IsFavorited(ctx context.Context, userID string, recipeID int64) (bool, error) {
	if userID == "" {
		return false, nil
	}
	return s.favoriteRepo.Exists(ctx, userID, recipeID)
}

func (s *favoriteService) Remove(ctx context.Context, userID string, recipeID int64) error {
	if err := s.favoriteRepo.Remove(ctx, userID, recipeID); err != nil {
		if repository.IsNotFound(err) {
			return ErrNotFavorited
		}
		return err
	}
	return nil
}
