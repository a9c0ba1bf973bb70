package service

import (
	"context"
	"strconv"

	"recipehub/internal/api/models"
	"recipehub/internal/api/repository"
)

// FollowedAuthor is one entry of the subscription listing: the author,
// a possibly truncated slice of their recipes and the true total.
type FollowedAuthor struct {
	Author       models.User
	Recipes      []models.Recipe
	RecipesCount int64
}

type SubscriptionService interface {
	Subscribe(ctx context.Context, userID, authorID string) error
	Unsubscribe(ctx context.Context, userID, authorID string) error
	// ListFollowed returns followed authors with their most recent
	// recipes. recipesLimit is the raw query value: empty means no
	// truncation, anything that does not parse as a non-negative
	// integer fails with ErrInvalidRecipesLimit.
	ListFollowed(ctx context.Context, userID, recipesLimit string, page, limit int) ([]FollowedAuthor, int64, error)
	IsSubscribed(ctx context.Context, userID, authorID string) (bool, error)
}

type subscriptionService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
	recipeRepo repository.RecipeRepository
}

func NewSubscriptionService(
	followRepo repository.FollowRepository,
	userRepo repository.UserRepository,
	recipeRepo repository.RecipeRepository,
) SubscriptionService {
	return &subscriptionService{
		followRepo: followRepo,
		userRepo:   userRepo,
		recipeRepo: recipeRepo,
	}
}

func (s *subscriptionService) Subscribe(ctx context.Context, userID, authorID string) error {
	if userID == authorID {
		return ErrSelfSubscription
	}

	if _, err := s.userRepo.FindByID(ctx, authorID); err != nil {
		if repository.IsNotFound(err) {
			return ErrUserNotFound
		}
		return err
	}

	if err := s.followRepo.Add(ctx, userID, authorID); err != nil {
		if repository.IsDuplicate(err) {
			return ErrAlreadySubscribed
		}
		return err
	}
	return nil
}

func (s *subscriptionService) Unsubscribe(ctx context.Context, userID, authorID string) error {
	if err := s.followRepo.Remove(ctx, userID, authorID); err != nil {
		if repository.IsNotFound(err) {
			return ErrNotSubscribed
		}
		return err
	}
	return nil
}

func (s *subscriptionService) ListFollowed(ctx context.Context, userID, recipesLimit string, page, limit int) ([]FollowedAuthor, int64, error) {
	// -1 disables truncation at the repository
	parsedLimit := -1
	if recipesLimit != "" {
		n, err := strconv.Atoi(recipesLimit)
		if err != nil || n < 0 {
			return nil, 0, ErrInvalidRecipesLimit
		}
		parsedLimit = n
	}

	authors, total, err := s.followRepo.ListAuthors(ctx, userID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	result := make([]FollowedAuthor, 0, len(authors))
	for _, author := range authors {
		recipes, err := s.recipeRepo.ListByAuthor(ctx, author.ID, parsedLimit)
		if err != nil {
			return nil, 0, err
		}
		count, err := s.recipeRepo.CountByAuthor(ctx, author.ID)
		if err != nil {
			return nil, 0, err
		}
		result = append(result, FollowedAuthor{
			Author:       author,
			Recipes:      recipes,
			RecipesCount: count,
		})
	}

	return result, total, nil
}

func (s *subscriptionService) IsSubscribed(ctx context.Context, userID, authorID string) (bool, error) {
	if userID == "" {
		return false, nil
	}
	return s.followRepo.Exists(ctx, userID, authorID)
}
