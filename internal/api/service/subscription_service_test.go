package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"recipehub/internal/api/models"
)

func newSubscriptionService(followRepo *MockFollowRepository, userRepo *MockUserRepository, recipeRepo *MockRecipeRepository) SubscriptionService {
	return NewSubscriptionService(followRepo, userRepo, recipeRepo)
}

func TestSubscriptionService_Subscribe(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		followRepo := new(MockFollowRepository)
		userRepo := new(MockUserRepository)
		recipeRepo := new(MockRecipeRepository)
		svc := newSubscriptionService(followRepo, userRepo, recipeRepo)

		userRepo.On("FindByID", mock.Anything, "author-1").
			Return(&models.User{ID: "author-1"}, nil)
		followRepo.On("Add", mock.Anything, "user-1", "author-1").Return(nil)

		err := svc.Subscribe(context.Background(), "user-1", "author-1")

		assert.NoError(t, err)
		followRepo.AssertExpectations(t)
	})

	t.Run("Self", func(t *testing.T) {
		followRepo := new(MockFollowRepository)
		userRepo := new(MockUserRepository)
		recipeRepo := new(MockRecipeRepository)
		svc := newSubscriptionService(followRepo, userRepo, recipeRepo)

		err := svc.Subscribe(context.Background(), "user-1", "user-1")

		assert.ErrorIs(t, err, ErrSelfSubscription)
		followRepo.AssertNotCalled(t, "Add")
	})

	t.Run("AuthorMissing", func(t *testing.T) {
		followRepo := new(MockFollowRepository)
		userRepo := new(MockUserRepository)
		recipeRepo := new(MockRecipeRepository)
		svc := newSubscriptionService(followRepo, userRepo, recipeRepo)

		userRepo.On("FindByID", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)

		err := svc.Subscribe(context.Background(), "user-1", "ghost")

		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("Duplicate", func(t *testing.T) {
		followRepo := new(MockFollowRepository)
		userRepo := new(MockUserRepository)
		recipeRepo := new(MockRecipeRepository)
		svc := newSubscriptionService(followRepo, userRepo, recipeRepo)

		userRepo.On("FindByID", mock.Anything, "author-1").
			Return(&models.User{ID: "author-1"}, nil)
		followRepo.On("Add", mock.Anything, "user-1", "author-1").Return(gorm.ErrDuplicatedKey)

		err := svc.Subscribe(context.Background(), "user-1", "author-1")

		assert.ErrorIs(t, err, ErrAlreadySubscribed)
	})
}

func TestSubscriptionService_Unsubscribe_NotSubscribed(t *testing.T) {
	followRepo := new(MockFollowRepository)
	userRepo := new(MockUserRepository)
	recipeRepo := new(MockRecipeRepository)
	svc := newSubscriptionService(followRepo, userRepo, recipeRepo)

	followRepo.On("Remove", mock.Anything, "user-1", "author-1").Return(gorm.ErrRecordNotFound)

	err := svc.Unsubscribe(context.Background(), "user-1", "author-1")

	assert.ErrorIs(t, err, ErrNotSubscribed)
}

func TestSubscriptionService_ListFollowed(t *testing.T) {
	t.Run("BadRecipesLimit", func(t *testing.T) {
		followRepo := new(MockFollowRepository)
		userRepo := new(MockUserRepository)
		recipeRepo := new(MockRecipeRepository)
		svc := newSubscriptionService(followRepo, userRepo, recipeRepo)

		for _, raw := range []string{"abc", "-1", "1.5"} {
			_, _, err := svc.ListFollowed(context.Background(), "user-1", raw, 1, 20)
			assert.ErrorIs(t, err, ErrInvalidRecipesLimit, "recipes_limit=%s", raw)
		}
		followRepo.AssertNotCalled(t, "ListAuthors")
	})

	t.Run("TruncatesRecipesNotCount", func(t *testing.T) {
		followRepo := new(MockFollowRepository)
		userRepo := new(MockUserRepository)
		recipeRepo := new(MockRecipeRepository)
		svc := newSubscriptionService(followRepo, userRepo, recipeRepo)

		followRepo.On("ListAuthors", mock.Anything, "user-1", 1, 20).
			Return([]models.User{{ID: "author-1", Username: "chef"}}, int64(1), nil)
		recipeRepo.On("ListByAuthor", mock.Anything, "author-1", 1).
			Return([]models.Recipe{{ID: 9, Name: "Блины"}}, nil)
		recipeRepo.On("CountByAuthor", mock.Anything, "author-1").Return(int64(7), nil)

		authors, total, err := svc.ListFollowed(context.Background(), "user-1", "1", 1, 20)

		assert.NoError(t, err)
		assert.Equal(t, int64(1), total)
		assert.Len(t, authors, 1)
		assert.Len(t, authors[0].Recipes, 1)
		assert.Equal(t, int64(7), authors[0].RecipesCount)
	})

	t.Run("NoLimit", func(t *testing.T) {
		followRepo := new(MockFollowRepository)
		userRepo := new(MockUserRepository)
		recipeRepo := new(MockRecipeRepository)
		svc := newSubscriptionService(followRepo, userRepo, recipeRepo)

		followRepo.On("ListAuthors", mock.Anything, "user-1", 1, 20).
			Return([]models.User{{ID: "author-1"}}, int64(1), nil)
		// empty recipes_limit disables truncation
		recipeRepo.On("ListByAuthor", mock.Anything, "author-1", -1).
			Return([]models.Recipe{}, nil)
		recipeRepo.On("CountByAuthor", mock.Anything, "author-1").Return(int64(0), nil)

		_, _, err := svc.ListFollowed(context.Background(), "user-1", "", 1, 20)

		assert.NoError(t, err)
		recipeRepo.AssertExpectations(t)
	})
}

func TestSubscriptionService_IsSubscribed_Anonymous(t *testing.T) {
	followRepo := new(MockFollowRepository)
	userRepo := new(MockUserRepository)
	recipeRepo := new(MockRecipeRepository)
	svc := newSubscriptionService(followRepo, userRepo, recipeRepo)

	subscribed, err := svc.IsSubscribed(context.Background(), "", "author-1")

	assert.NoError(t, err)
	assert.False(t, subscribed)
	followRepo.AssertNotCalled(t, "Exists")
}
