package models

import "time"

type Recipe struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	AuthorID    *string   `gorm:"type:uuid;index" json:"author_id,omitempty"`
	Name        string    `gorm:"size:200;not null" json:"name"`
	Text        string    `gorm:"type:text;not null" json:"text"`
	Image       string    `gorm:"size:255" json:"image,omitempty"`
	CookingTime int       `gorm:"not null;check:cooking_time BETWEEN 1 AND 600" json:"cooking_time"`
	PubDate     time.Time `gorm:"autoCreateTime;index" json:"pub_date"`

	// Associations
	// Recipes survive author deletion, links do not survive recipe deletion.
	Author      *User              `gorm:"foreignKey:AuthorID;constraint:OnDelete:SET NULL" json:"author,omitempty"`
	Ingredients []RecipeIngredient `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"ingredients,omitempty"`
	Tags        []Tag              `gorm:"many2many:recipe_tags;constraint:OnDelete:CASCADE" json:"tags,omitempty"`
}

func (Recipe) TableName() string {
	return "recipes"
}

// RecipeIngredient holds the amount of one ingredient within one recipe.
type RecipeIngredient struct {
	ID           int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	RecipeID     int64 `gorm:"not null;uniqueIndex:idx_recipe_ingredient" json:"recipe_id"`
	IngredientID int64 `gorm:"not null;uniqueIndex:idx_recipe_ingredient" json:"ingredient_id"`
	Amount       int   `gorm:"not null;check:amount >= 1" json:"amount"`

	Ingredient *Ingredient `gorm:"foreignKey:IngredientID;constraint:OnDelete:CASCADE" json:"ingredient,omitempty"`
}

func (RecipeIngredient) TableName() string {
	return "recipe_ingredients"
}
