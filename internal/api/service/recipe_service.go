package service

import (
	"context"
	"regexp"
	"unicode/utf8"

	"recipehub/internal/api/models"
	"recipehub/internal/api/repository"
	"recipehub/internal/storage"
)

// nameRe matches latin and cyrillic letters plus whitespace, same rule
// for recipe names and person names.
var nameRe = regexp.MustCompile(`^[a-zA-Zа-яА-ЯёЁ\s]+$`)

const (
	maxNameLength  = 200
	minCookingTime = 1
	maxCookingTime = 600
)

// IngredientAmount is one (ingredient id, amount) pair of a write payload.
type IngredientAmount struct {
	ID     int64
	Amount int
}

// RecipeInput carries the full recipe write payload. Updates replace
// the ingredient and tag sets entirely, never merge them.
type RecipeInput struct {
	Name        string
	Text        string
	CookingTime int
	Image       string // base64 data URI, empty keeps the current image
	Ingredients []IngredientAmount
	TagIDs      []int64
}

type RecipeService interface {
	Create(ctx context.Context, authorID string, in RecipeInput) (*models.Recipe, error)
	Update(ctx context.Context, recipeID int64, userID string, in RecipeInput) (*models.Recipe, error)
	Get(ctx context.Context, id int64) (*models.Recipe, error)
	List(ctx context.Context, filters repository.RecipeFilters) ([]models.Recipe, int64, error)
	Delete(ctx context.Context, id int64, userID string) error
}

type recipeService struct {
	recipeRepo     repository.RecipeRepository
	ingredientRepo repository.IngredientRepository
	tagRepo        repository.TagRepository
	images         *storage.ImageStore
}

func NewRecipeService(
	recipeRepo repository.RecipeRepository,
	ingredientRepo repository.IngredientRepository,
	tagRepo repository.TagRepository,
	images *storage.ImageStore,
) RecipeService {
	return &recipeService{
		recipeRepo:     recipeRepo,
		ingredientRepo: ingredientRepo,
		tagRepo:        tagRepo,
		images:         images,
	}
}

// validate runs the field checks in a fixed order and then verifies
// that every referenced ingredient and tag exists. No write happens
// until everything passed.
func (s *recipeService) validate(ctx context.Context, in RecipeInput) error {
	if !nameRe.MatchString(in.Name) {
		return ErrInvalidName
	}
	if utf8.RuneCountInString(in.Name) > maxNameLength {
		return ErrNameTooLong
	}
	if in.CookingTime < minCookingTime || in.CookingTime > maxCookingTime {
		return ErrInvalidCookingTime
	}
	if len(in.Ingredients) == 0 {
		return ErrNoIngredients
	}

	seen := make(map[int64]bool, len(in.Ingredients))
	ids := make([]int64, 0, len(in.Ingredients))
	for _, ing := range in.Ingredients {
		if seen[ing.ID] {
			return ErrDuplicateIngredient
		}
		seen[ing.ID] = true
		if ing.Amount < 1 {
			return ErrInvalidAmount
		}
		ids = append(ids, ing.ID)
	}

	count, err := s.ingredientRepo.CountByIDs(ctx, ids)
	if err != nil {
		return err
	}
	if count != int64(len(ids)) {
		return ErrIngredientNotFound
	}

	if len(in.TagIDs) > 0 {
		tags, err := s.tagRepo.GetByIDs(ctx, in.TagIDs)
		if err != nil {
			return err
		}
		if len(tags) != len(uniqueInt64(in.TagIDs)) {
			return ErrTagNotFound
		}
	}

	return nil
}

func (s *recipeService) Create(ctx context.Context, authorID string, in RecipeInput) (*models.Recipe, error) {
	if err := s.validate(ctx, in); err != nil {
		return nil, err
	}

	imageURL := ""
	if in.Image != "" {
		url, err := s.images.SaveBase64(in.Image)
		if err != nil {
			return nil, err
		}
		imageURL = url
	}

	recipe := &models.Recipe{
		AuthorID:    &authorID,
		Name:        in.Name,
		Text:        in.Text,
		Image:       imageURL,
		CookingTime: in.CookingTime,
	}

	if err := s.recipeRepo.Create(ctx, recipe, buildLinks(in.Ingredients), in.TagIDs); err != nil {
		return nil, err
	}

	return s.recipeRepo.GetByID(ctx, recipe.ID)
}

func (s *recipeService) Update(ctx context.Context, recipeID int64, userID string, in RecipeInput) (*models.Recipe, error) {
	existing, err := s.recipeRepo.GetByID(ctx, recipeID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}
	if existing.AuthorID == nil || *existing.AuthorID != userID {
		return nil, ErrNotRecipeAuthor
	}

	if err := s.validate(ctx, in); err != nil {
		return nil, err
	}

	existing.Name = in.Name
	existing.Text = in.Text
	existing.CookingTime = in.CookingTime
	if in.Image != "" {
		url, err := s.images.SaveBase64(in.Image)
		if err != nil {
			return nil, err
		}
		existing.Image = url
	}

	// drop loaded associations so Save touches only the recipe row;
	// the repository rewrites both link sets inside its transaction
	existing.Ingredients = nil
	existing.Tags = nil

	if err := s.recipeRepo.Update(ctx, existing, buildLinks(in.Ingredients), in.TagIDs); err != nil {
		return nil, err
	}

	return s.recipeRepo.GetByID(ctx, recipeID)
}

func (s *recipeService) Get(ctx context.Context, id int64) (*models.Recipe, error) {
	recipe, err := s.recipeRepo.GetByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}
	return recipe, nil
}

func (s *recipeService) List(ctx context.Context, filters repository.RecipeFilters) ([]models.Recipe, int64, error) {
	return s.recipeRepo.List(ctx, filters)
}

func (s *recipeService) Delete(ctx context.Context, id int64, userID string) error {
	existing, err := s.recipeRepo.GetByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return ErrRecipeNotFound
		}
		return err
	}
	if existing.AuthorID == nil || *existing.AuthorID != userID {
		return ErrNotRecipeAuthor
	}
	return s.recipeRepo.Delete(ctx, id)
}

func buildLinks(ingredients []IngredientAmount) []models.RecipeIngredient {
	links := make([]models.RecipeIngredient, 0, len(ingredients))
	for _, ing := range ingredients {
		links = append(links, models.RecipeIngredient{
			IngredientID: ing.ID,
			Amount:       ing.Amount,
		})
	}
	return links
}

func uniqueInt64(ids []int64) []int64 {
	seen := make(map[int64]bool, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
