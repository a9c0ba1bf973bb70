package service

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"recipehub/internal/api/models"
)

// All catalog tests run with a nil cache, which behaves as a permanent
// miss, so every read goes to the repository.

func TestTagService_GetAll(t *testing.T) {
	tagRepo := new(MockTagRepository)
	svc := NewTagService(tagRepo, nil, logrus.New())

	expected := []models.Tag{{ID: 1, Name: "breakfast", Slug: "breakfast"}}
	tagRepo.On("GetAll", mock.Anything).Return(expected, nil)

	tags, err := svc.GetAll(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, expected, tags)
}

func TestTagService_Get_NotFound(t *testing.T) {
	tagRepo := new(MockTagRepository)
	svc := NewTagService(tagRepo, nil, logrus.New())

	tagRepo.On("GetByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Get(context.Background(), 404)

	assert.ErrorIs(t, err, ErrTagNotFound)
}

func TestIngredientService_Search(t *testing.T) {
	t.Run("Prefix", func(t *testing.T) {
		ingredientRepo := new(MockIngredientRepository)
		svc := NewIngredientService(ingredientRepo, nil, logrus.New())

		expected := []models.Ingredient{{ID: 1, Name: "мука", MeasurementUnit: "г"}}
		ingredientRepo.On("Search", mock.Anything, "му").Return(expected, nil)

		ingredients, err := svc.Search(context.Background(), "му")

		assert.NoError(t, err)
		assert.Equal(t, expected, ingredients)
	})

	t.Run("Unfiltered", func(t *testing.T) {
		ingredientRepo := new(MockIngredientRepository)
		svc := NewIngredientService(ingredientRepo, nil, logrus.New())

		ingredientRepo.On("Search", mock.Anything, "").Return([]models.Ingredient{}, nil)

		_, err := svc.Search(context.Background(), "")

		assert.NoError(t, err)
		ingredientRepo.AssertExpectations(t)
	})
}

func TestIngredientService_Get_NotFound(t *testing.T) {
	ingredientRepo := new(MockIngredientRepository)
	svc := NewIngredientService(ingredientRepo, nil, logrus.New())

	ingredientRepo.On("GetByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Get(context.Background(), 404)

	assert.ErrorIs(t, err, ErrIngredientNotFound)
}
