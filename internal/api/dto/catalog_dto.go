package dto

import "recipehub/internal/api/models"

// CreateTagDTO used for POST /api/tags
type CreateTagDTO struct {
	Name  string `json:"name" binding:"required"`
	Color string `json:"color" binding:"required"`
	Slug  string `json:"slug" binding:"required"`
}

func (d CreateTagDTO) ToModel() models.Tag {
	return models.Tag{
		Name:  d.Name,
		Color: d.Color,
		Slug:  d.Slug,
	}
}

type TagResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Slug  string `json:"slug"`
}

func FromTag(t models.Tag) TagResponse {
	return TagResponse{ID: t.ID, Name: t.Name, Color: t.Color, Slug: t.Slug}
}

// CreateIngredientDTO used for POST /api/ingredients
type CreateIngredientDTO struct {
	Name            string `json:"name" binding:"required"`
	MeasurementUnit string `json:"measurement_unit" binding:"required"`
}

func (d CreateIngredientDTO) ToModel() models.Ingredient {
	return models.Ingredient{
		Name:            d.Name,
		MeasurementUnit: d.MeasurementUnit,
	}
}

type IngredientResponse struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
}

func FromIngredient(i models.Ingredient) IngredientResponse {
	return IngredientResponse{ID: i.ID, Name: i.Name, MeasurementUnit: i.MeasurementUnit}
}
