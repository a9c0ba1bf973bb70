package service

import (
	"context"
	"fmt"
	"strings"

	"recipehub/internal/api/models"
	"recipehub/internal/api/repository"
)

type ShoppingListService interface {
	AddRecipe(ctx context.Context, userID string, recipeID int64) (*models.Recipe, error)
	RemoveRecipe(ctx context.Context, userID string, recipeID int64) error
	// Contains is false for anonymous requests (empty userID).
	Contains(ctx context.Context, userID string, recipeID int64) (bool, error)
	Build(ctx context.Context, userID string) ([]repository.ShoppingListItem, error)
	Render(items []repository.ShoppingListItem) string
}

type shoppingListService struct {
	cartRepo   repository.CartRepository
	recipeRepo repository.RecipeRepository
}

func NewShoppingListService(cartRepo repository.CartRepository, recipeRepo repository.RecipeRepository) ShoppingListService {
	return &shoppingListService{
		cartRepo:   cartRepo,
		recipeRepo: recipeRepo,
	}
}

func (s *shoppingListService) AddRecipe(ctx context.Context, userID string, recipeID int64) (*models.Recipe, error) {
	recipe, err := s.recipeRepo.GetByID(ctx, recipeID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}

	// the unique constraint is the real guard, the error translation
	// closes the check-then-insert race
	if err := s.cartRepo.Add(ctx, userID, recipeID); err != nil {
		if repository.IsDuplicate(err) {
			return nil, ErrAlreadyInCart
		}
		return nil, err
	}

	return recipe, nil
}

func (s *shoppingListService) RemoveRecipe(ctx context.Context, userID string, recipeID int64) error {
	if err := s.cartRepo.Remove(ctx, userID, recipeID); err != nil {
		if repository.IsNotFound(err) {
			return ErrNotInCart
		}
		return err
	}
	return nil
}

func (s *shoppingListService) Contains(ctx context.Context, userID string, recipeID int64) (bool, error) {
	if userID == "" {
		return false, nil
	}
	return s.cartRepo.Exists(ctx, userID, recipeID)
}

// Build returns the aggregated shopping list for the user's cart,
// already ordered by total descending. An empty cart yields an empty
// slice, not an error.
func (s *shoppingListService) Build(ctx context.Context, userID string) ([]repository.ShoppingListItem, error) {
	return s.cartRepo.Aggregate(ctx, userID)
}

// Render writes one "{name} ({unit}) - {total}" line per group.
func (s *shoppingListService) Render(items []repository.ShoppingListItem) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, fmt.Sprintf("%s (%s) - %d", item.Name, item.Unit, item.Total))
	}
	return strings.Join(lines, "\n")
}
