package service

import "errors"

// Validation errors: a field value is unacceptable. Nothing is written.
var (
	ErrInvalidName        = errors.New("name must contain only letters and whitespace")
	ErrNameTooLong        = errors.New("name must be at most 200 characters")
	ErrInvalidCookingTime = errors.New("cooking time must be between 1 and 600")
	ErrNoIngredients      = errors.New("recipe must have at least one ingredient")
	ErrDuplicateIngredient = errors.New("ingredient ids must be unique")
	ErrInvalidAmount      = errors.New("ingredient amount must be at least 1")
	ErrInvalidUsername    = errors.New("username may contain only letters, underscores and dots")
	ErrReservedUsername   = errors.New(`"me" is not allowed as a username`)
	ErrFieldTooLong       = errors.New("field exceeds the allowed length")
)

// Not-found errors: a referenced entity does not exist.
var (
	ErrRecipeNotFound     = errors.New("recipe not found")
	ErrIngredientNotFound = errors.New("ingredient not found")
	ErrTagNotFound        = errors.New("tag not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrNotFavorited       = errors.New("recipe is not favorited")
	ErrNotInCart          = errors.New("recipe is not in the shopping cart")
	ErrNotSubscribed      = errors.New("not subscribed to this author")
)

// Conflict errors: duplicate edges and self-subscription.
var (
	ErrAlreadyFavorited  = errors.New("recipe already favorited")
	ErrAlreadyInCart     = errors.New("recipe already in the shopping cart")
	ErrAlreadySubscribed = errors.New("already subscribed to this author")
	ErrSelfSubscription  = errors.New("cannot subscribe to yourself")
	ErrEmailInUse        = errors.New("email already in use")
	ErrUsernameInUse     = errors.New("username already in use")
)

// Bad-request errors: a malformed optional parameter.
var ErrInvalidRecipesLimit = errors.New("recipes_limit must be a non-negative integer")

// Permission errors.
var ErrNotRecipeAuthor = errors.New("only the author may modify this recipe")

// IsNotFound reports whether err is one of the not-found kinds.
func IsNotFound(err error) bool {
	for _, target := range []error{
		ErrRecipeNotFound, ErrIngredientNotFound, ErrTagNotFound,
		ErrUserNotFound, ErrNotFavorited, ErrNotInCart, ErrNotSubscribed,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// IsConflict reports whether err is one of the conflict kinds.
func IsConflict(err error) bool {
	for _, target := range []error{
		ErrAlreadyFavorited, ErrAlreadyInCart, ErrAlreadySubscribed,
		ErrSelfSubscription, ErrEmailInUse, ErrUsernameInUse,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// IsValidation reports whether err is one of the validation kinds.
func IsValidation(err error) bool {
	for _, target := range []error{
		ErrInvalidName, ErrNameTooLong, ErrInvalidCookingTime,
		ErrNoIngredients, ErrDuplicateIngredient, ErrInvalidAmount,
		ErrInvalidUsername, ErrReservedUsername, ErrFieldTooLong,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
