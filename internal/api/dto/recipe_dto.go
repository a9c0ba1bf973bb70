package dto

import (
	"recipehub/internal/api/models"
	"recipehub/internal/api/service"
)

// IngredientAmountDTO is one (id, amount) pair of a recipe write payload.
type IngredientAmountDTO struct {
	ID     int64 `json:"id" binding:"required"`
	Amount int   `json:"amount" binding:"required"`
}

// WriteRecipeDTO used for POST /api/recipes and PATCH /api/recipes/:id.
// The image travels as a base64 data URI.
type WriteRecipeDTO struct {
	Name        string                `json:"name" binding:"required"`
	Text        string                `json:"text" binding:"required"`
	CookingTime int                   `json:"cooking_time" binding:"required"`
	Image       string                `json:"image"`
	Ingredients []IngredientAmountDTO `json:"ingredients"`
	Tags        []int64               `json:"tags"`
}

func (d WriteRecipeDTO) ToInput() service.RecipeInput {
	ingredients := make([]service.IngredientAmount, 0, len(d.Ingredients))
	for _, ing := range d.Ingredients {
		ingredients = append(ingredients, service.IngredientAmount{ID: ing.ID, Amount: ing.Amount})
	}
	return service.RecipeInput{
		Name:        d.Name,
		Text:        d.Text,
		CookingTime: d.CookingTime,
		Image:       d.Image,
		Ingredients: ingredients,
		TagIDs:      d.Tags,
	}
}

// IngredientInRecipeResponse resolves the link against the catalog.
type IngredientInRecipeResponse struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	Amount          int    `json:"amount"`
}

// RecipeResponse is the full read representation.
type RecipeResponse struct {
	ID               int64                        `json:"id"`
	Tags             []TagResponse                `json:"tags"`
	Author           *UserResponse                `json:"author"`
	Ingredients      []IngredientInRecipeResponse `json:"ingredients"`
	IsFavorited      bool                         `json:"is_favorited"`
	IsInShoppingCart bool                         `json:"is_in_shopping_cart"`
	Name             string                       `json:"name"`
	Image            string                       `json:"image,omitempty"`
	Text             string                       `json:"text"`
	CookingTime      int                          `json:"cooking_time"`
}

// RecipeFlags carries the requester-relative booleans into the response.
type RecipeFlags struct {
	IsFavorited        bool
	IsInShoppingCart   bool
	AuthorIsSubscribed bool
}

func FromRecipe(r models.Recipe, flags RecipeFlags) RecipeResponse {
	tags := make([]TagResponse, 0, len(r.Tags))
	for _, t := range r.Tags {
		tags = append(tags, FromTag(t))
	}

	ingredients := make([]IngredientInRecipeResponse, 0, len(r.Ingredients))
	for _, link := range r.Ingredients {
		resp := IngredientInRecipeResponse{
			ID:     link.IngredientID,
			Amount: link.Amount,
		}
		if link.Ingredient != nil {
			resp.Name = link.Ingredient.Name
			resp.MeasurementUnit = link.Ingredient.MeasurementUnit
		}
		ingredients = append(ingredients, resp)
	}

	var author *UserResponse
	if r.Author != nil {
		a := FromUser(*r.Author, flags.AuthorIsSubscribed)
		author = &a
	}

	return RecipeResponse{
		ID:               r.ID,
		Tags:             tags,
		Author:           author,
		Ingredients:      ingredients,
		IsFavorited:      flags.IsFavorited,
		IsInShoppingCart: flags.IsInShoppingCart,
		Name:             r.Name,
		Image:            r.Image,
		Text:             r.Text,
		CookingTime:      r.CookingTime,
	}
}

// ShortRecipeResponse is the compact representation used by favorite
// and cart actions and by the subscription listing.
type ShortRecipeResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image,omitempty"`
	CookingTime int    `json:"cooking_time"`
}

func FromRecipeShort(r models.Recipe) ShortRecipeResponse {
	return ShortRecipeResponse{
		ID:          r.ID,
		Name:        r.Name,
		Image:       r.Image,
		CookingTime: r.CookingTime,
	}
}
