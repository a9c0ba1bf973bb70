package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"recipehub/internal/api/models"
)

type IngredientRepository interface {
	Search(ctx context.Context, namePrefix string) ([]models.Ingredient, error)
	GetByID(ctx context.Context, id int64) (*models.Ingredient, error)
	CountByIDs(ctx context.Context, ids []int64) (int64, error)
	Create(ctx context.Context, ingredient *models.Ingredient) error
}

type ingredientRepository struct {
	db *gorm.DB
}

func NewIngredientRepository(db *gorm.DB) IngredientRepository {
	return &ingredientRepository{db: db}
}

// Search returns ingredients whose name starts with namePrefix,
// case-insensitive. An empty prefix returns the whole catalog.
func (r *ingredientRepository) Search(ctx context.Context, namePrefix string) ([]models.Ingredient, error) {
	var list []models.Ingredient
	q := r.db.WithContext(ctx).Order("name asc")
	if namePrefix != "" {
		q = q.Where("name ILIKE ?", namePrefix+"%")
	}
	if err := q.Find(&list).Error; err != nil {
		return nil, fmt.Errorf("search ingredients: %w", err)
	}
	return list, nil
}

func (r *ingredientRepository) GetByID(ctx context.Context, id int64) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&ingredient).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

// CountByIDs returns how many of the given ids exist in the catalog.
func (r *ingredientRepository) CountByIDs(ctx context.Context, ids []int64) (int64, error) {
	var count int64
	if len(ids) == 0 {
		return 0, nil
	}
	if err := r.db.WithContext(ctx).
		Model(&models.Ingredient{}).
		Where("id IN ?", ids).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count ingredients: %w", err)
	}
	return count, nil
}

func (r *ingredientRepository) Create(ctx context.Context, ingredient *models.Ingredient) error {
	if err := r.db.WithContext(ctx).Create(ingredient).Error; err != nil {
		return fmt.Errorf("create ingredient: %w", err)
	}
	return nil
}
