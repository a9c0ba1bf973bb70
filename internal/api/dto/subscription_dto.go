package dto

import "recipehub/internal/api/service"

// FollowedAuthorResponse is one entry of GET /api/users/subscriptions.
// RecipesCount always reports the author's true total, even when the
// recipes slice is truncated by recipes_limit.
type FollowedAuthorResponse struct {
	Email        string                `json:"email"`
	ID           string                `json:"id"`
	Username     string                `json:"username"`
	FirstName    string                `json:"first_name"`
	LastName     string                `json:"last_name"`
	IsSubscribed bool                  `json:"is_subscribed"`
	Recipes      []ShortRecipeResponse `json:"recipes"`
	RecipesCount int64                 `json:"recipes_count"`
}

func FromFollowedAuthor(fa service.FollowedAuthor) FollowedAuthorResponse {
	recipes := make([]ShortRecipeResponse, 0, len(fa.Recipes))
	for _, r := range fa.Recipes {
		recipes = append(recipes, FromRecipeShort(r))
	}
	return FollowedAuthorResponse{
		Email:        fa.Author.Email,
		ID:           fa.Author.ID,
		Username:     fa.Author.Username,
		FirstName:    fa.Author.FirstName,
		LastName:     fa.Author.LastName,
		IsSubscribed: true,
		Recipes:      recipes,
		RecipesCount: fa.RecipesCount,
	}
}
