package models

import "time"

// Favorite is a user's bookmark of a recipe.
type Favorite struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_favorite_edge" json:"user_id"`
	RecipeID  int64     `gorm:"not null;uniqueIndex:idx_favorite_edge" json:"recipe_id"`
	CreatedAt time.Time `json:"created_at"`

	User   *User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Recipe *Recipe `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"recipe,omitempty"`
}

func (Favorite) TableName() string {
	return "favorites"
}

// ShoppingCartItem is the membership of a recipe in a user's shopping list.
type ShoppingCartItem struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_cart_edge" json:"user_id"`
	RecipeID  int64     `gorm:"not null;uniqueIndex:idx_cart_edge" json:"recipe_id"`
	CreatedAt time.Time `json:"created_at"`

	User   *User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Recipe *Recipe `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"recipe,omitempty"`
}

func (ShoppingCartItem) TableName() string {
	return "shopping_cart_items"
}
