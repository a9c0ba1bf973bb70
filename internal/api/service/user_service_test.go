package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"recipehub/internal/api/models"
)

func validRegisterInput() RegisterInput {
	return RegisterInput{
		Email:     "chef@example.com",
		Username:  "chef",
		FirstName: "Анна",
		LastName:  "Иванова",
		Password:  "password123",
	}
}

func TestUserService_Register_Success(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := NewUserService(userRepo)

	userRepo.On("FindByEmail", mock.Anything, "chef@example.com").Return(nil, gorm.ErrRecordNotFound)
	userRepo.On("FindByUsername", mock.Anything, "chef").Return(nil, gorm.ErrRecordNotFound)
	userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
		// password is stored hashed, never verbatim
		return u.Username == "chef" && u.Password != "password123" &&
			bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("password123")) == nil
	})).Return(nil)

	user, err := svc.Register(context.Background(), validRegisterInput())

	assert.NoError(t, err)
	assert.Equal(t, "chef@example.com", user.Email)
	userRepo.AssertExpectations(t)
}

func TestUserService_Register_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*RegisterInput)
		wantErr error
	}{
		{"reserved username", func(in *RegisterInput) { in.Username = "me" }, ErrReservedUsername},
		{"username with digits", func(in *RegisterInput) { in.Username = "chef99" }, ErrInvalidUsername},
		{"username with spaces", func(in *RegisterInput) { in.Username = "the chef" }, ErrInvalidUsername},
		{"digits in first name", func(in *RegisterInput) { in.FirstName = "Anna1" }, ErrInvalidName},
		{"email too long", func(in *RegisterInput) { in.Email = strings.Repeat("a", 250) + "@x.com" }, ErrFieldTooLong},
		{"first name too long", func(in *RegisterInput) { in.FirstName = strings.Repeat("а", 151) }, ErrFieldTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := new(MockUserRepository)
			svc := NewUserService(userRepo)

			in := validRegisterInput()
			tt.mutate(&in)

			_, err := svc.Register(context.Background(), in)

			assert.ErrorIs(t, err, tt.wantErr)
			userRepo.AssertNotCalled(t, "Create")
		})
	}
}

func TestUserService_Register_Duplicates(t *testing.T) {
	t.Run("Email", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc := NewUserService(userRepo)

		userRepo.On("FindByEmail", mock.Anything, "chef@example.com").
			Return(&models.User{Email: "chef@example.com"}, nil)

		_, err := svc.Register(context.Background(), validRegisterInput())

		assert.ErrorIs(t, err, ErrEmailInUse)
	})

	t.Run("Username", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc := NewUserService(userRepo)

		userRepo.On("FindByEmail", mock.Anything, "chef@example.com").Return(nil, gorm.ErrRecordNotFound)
		userRepo.On("FindByUsername", mock.Anything, "chef").
			Return(&models.User{Username: "chef"}, nil)

		_, err := svc.Register(context.Background(), validRegisterInput())

		assert.ErrorIs(t, err, ErrUsernameInUse)
	})
}

func TestUserService_Get_NotFound(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := NewUserService(userRepo)

	userRepo.On("FindByID", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Get(context.Background(), "ghost")

	assert.ErrorIs(t, err, ErrUserNotFound)
}
