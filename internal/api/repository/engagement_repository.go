package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"recipehub/internal/api/models"
)

type FavoriteRepository interface {
	Add(ctx context.Context, userID string, recipeID int64) error
	Remove(ctx context.Context, userID string, recipeID int64) error
	Exists(ctx context.Context, userID string, recipeID int64) (bool, error)
}

type favoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

func (r *favoriteRepository) Add(ctx context.Context, userID string, recipeID int64) error {
	favorite := &models.Favorite{
		UserID:   userID,
		RecipeID: recipeID,
	}
	if err := r.db.WithContext(ctx).Create(favorite).Error; err != nil {
		return fmt.Errorf("add favorite: %w", err)
	}
	return nil
}

func (r *favoriteRepository) Remove(ctx context.Context, userID string, recipeID int64) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&models.Favorite{})
	if result.Error != nil {
		return fmt.Errorf("remove favorite: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *favoriteRepository) Exists(ctx context.Context, userID string, recipeID int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Favorite{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ShoppingListItem is one aggregated group of the shopping-cart export.
type ShoppingListItem struct {
	Name  string `json:"name"`
	Unit  string `json:"unit"`
	Total int    `json:"total"`
}

type CartRepository interface {
	Add(ctx context.Context, userID string, recipeID int64) error
	Remove(ctx context.Context, userID string, recipeID int64) error
	Exists(ctx context.Context, userID string, recipeID int64) (bool, error)
	Aggregate(ctx context.Context, userID string) ([]ShoppingListItem, error)
}

type cartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepository{db: db}
}

func (r *cartRepository) Add(ctx context.Context, userID string, recipeID int64) error {
	item := &models.ShoppingCartItem{
		UserID:   userID,
		RecipeID: recipeID,
	}
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return fmt.Errorf("add cart item: %w", err)
	}
	return nil
}

func (r *cartRepository) Remove(ctx context.Context, userID string, recipeID int64) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&models.ShoppingCartItem{})
	if result.Error != nil {
		return fmt.Errorf("remove cart item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *cartRepository) Exists(ctx context.Context, userID string, recipeID int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.ShoppingCartItem{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Aggregate sums ingredient amounts across every recipe in the user's
// cart, grouped by (name, unit), largest totals first. Equal totals
// order by ingredient name.
func (r *cartRepository) Aggregate(ctx context.Context, userID string) ([]ShoppingListItem, error) {
	var items []ShoppingListItem
	if err := r.db.WithContext(ctx).
		Table("recipe_ingredients AS ri").
		Select("i.name AS name, i.measurement_unit AS unit, SUM(ri.amount) AS total").
		Joins("JOIN ingredients i ON i.id = ri.ingredient_id").
		Joins("JOIN shopping_cart_items sci ON sci.recipe_id = ri.recipe_id").
		Where("sci.user_id = ?", userID).
		Group("i.name, i.measurement_unit").
		Order("total DESC, name ASC").
		Scan(&items).Error; err != nil {
		return nil, fmt.Errorf("aggregate shopping cart: %w", err)
	}
	return items, nil
}
