package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"recipehub/internal/api/models"
)

// RecipeFilters narrows List results. Zero values mean "no filter".
type RecipeFilters struct {
	AuthorID    string
	TagSlugs    []string
	FavoritedBy string
	InCartOf    string
	Page        int
	Limit       int
}

type RecipeRepository interface {
	Create(ctx context.Context, recipe *models.Recipe, links []models.RecipeIngredient, tagIDs []int64) error
	Update(ctx context.Context, recipe *models.Recipe, links []models.RecipeIngredient, tagIDs []int64) error
	GetByID(ctx context.Context, id int64) (*models.Recipe, error)
	List(ctx context.Context, filters RecipeFilters) ([]models.Recipe, int64, error)
	ListByAuthor(ctx context.Context, authorID string, limit int) ([]models.Recipe, error)
	CountByAuthor(ctx context.Context, authorID string) (int64, error)
	Delete(ctx context.Context, id int64) error
}

type recipeRepository struct {
	db *gorm.DB
}

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

// Create persists the recipe row, its ingredient links and tag links in
// one transaction. Any failure rolls the whole write back.
func (r *recipeRepository) Create(ctx context.Context, recipe *models.Recipe, links []models.RecipeIngredient, tagIDs []int64) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Ingredients", "Tags", "Author").Create(recipe).Error; err != nil {
			return err
		}
		if err := writeLinks(tx, recipe, links, tagIDs); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("create recipe: %w", err)
	}
	return nil
}

// Update saves the recipe fields and fully replaces both link sets
// (delete-then-recreate) in one transaction, so a concurrent reader
// never observes a recipe without its ingredients.
func (r *recipeRepository) Update(ctx context.Context, recipe *models.Recipe, links []models.RecipeIngredient, tagIDs []int64) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Ingredients", "Tags", "Author").Save(recipe).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&models.RecipeIngredient{}).Error; err != nil {
			return err
		}
		if err := writeLinks(tx, recipe, links, tagIDs); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("update recipe: %w", err)
	}
	return nil
}

func writeLinks(tx *gorm.DB, recipe *models.Recipe, links []models.RecipeIngredient, tagIDs []int64) error {
	for i := range links {
		links[i].ID = 0
		links[i].RecipeID = recipe.ID
	}
	if len(links) > 0 {
		if err := tx.Create(&links).Error; err != nil {
			return err
		}
	}

	// tag placeholders carry only IDs, the rows must already exist
	tags := make([]models.Tag, 0, len(tagIDs))
	for _, id := range tagIDs {
		tags = append(tags, models.Tag{ID: id})
	}
	if err := tx.Model(recipe).Association("Tags").Replace(&tags); err != nil {
		return err
	}
	return nil
}

func (r *recipeRepository) GetByID(ctx context.Context, id int64) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := r.db.WithContext(ctx).
		Preload("Ingredients.Ingredient").
		Preload("Tags").
		Preload("Author").
		First(&recipe, id).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) List(ctx context.Context, filters RecipeFilters) ([]models.Recipe, int64, error) {
	var recipes []models.Recipe
	var count int64

	q := r.db.WithContext(ctx).Model(&models.Recipe{})
	if filters.AuthorID != "" {
		q = q.Where("recipes.author_id = ?", filters.AuthorID)
	}
	if len(filters.TagSlugs) > 0 {
		q = q.Joins("JOIN recipe_tags rt ON rt.recipe_id = recipes.id").
			Joins("JOIN tags t ON t.id = rt.tag_id").
			Where("t.slug IN ?", filters.TagSlugs).
			Distinct("recipes.*")
	}
	if filters.FavoritedBy != "" {
		q = q.Joins("JOIN favorites f ON f.recipe_id = recipes.id").
			Where("f.user_id = ?", filters.FavoritedBy)
	}
	if filters.InCartOf != "" {
		q = q.Joins("JOIN shopping_cart_items sci ON sci.recipe_id = recipes.id").
			Where("sci.user_id = ?", filters.InCartOf)
	}

	if err := q.Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("count recipes: %w", err)
	}

	page := filters.Page
	if page < 1 {
		page = 1
	}
	limit := filters.Limit
	if limit < 1 {
		limit = 20
	}

	if err := q.
		Preload("Ingredients.Ingredient").
		Preload("Tags").
		Preload("Author").
		Order("recipes.pub_date desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&recipes).Error; err != nil {
		return nil, 0, fmt.Errorf("list recipes: %w", err)
	}

	return recipes, count, nil
}

// ListByAuthor returns the author's recipes, most recent first.
// A limit below zero means no truncation.
func (r *recipeRepository) ListByAuthor(ctx context.Context, authorID string, limit int) ([]models.Recipe, error) {
	var recipes []models.Recipe
	q := r.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("pub_date desc")
	if limit >= 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&recipes).Error; err != nil {
		return nil, fmt.Errorf("list recipes by author: %w", err)
	}
	return recipes, nil
}

func (r *recipeRepository) CountByAuthor(ctx context.Context, authorID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Recipe{}).
		Where("author_id = ?", authorID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count recipes by author: %w", err)
	}
	return count, nil
}

// Delete removes the recipe; ingredient links, tag links, favorites and
// cart rows go with it through the cascade constraints.
func (r *recipeRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Recipe{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete recipe: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
