package service

import (
	"context"
	"regexp"
	"unicode/utf8"

	"recipehub/internal/api/models"
	"recipehub/internal/api/repository"
	"recipehub/internal/auth"
)

var usernameRe = regexp.MustCompile(`^[a-zA-Z_.]+$`)

const (
	maxEmailLength    = 254
	maxUserFieldLength = 150
)

// RegisterInput is the account-creation payload. Token issuance lives
// with the external auth service, this only creates the row.
type RegisterInput struct {
	Email     string
	Username  string
	FirstName string
	LastName  string
	Password  string
}

type UserService interface {
	Register(ctx context.Context, in RegisterInput) (*models.User, error)
	Get(ctx context.Context, id string) (*models.User, error)
	List(ctx context.Context, page, limit int) ([]models.User, int64, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	if err := validateRegisterInput(in); err != nil {
		return nil, err
	}

	// pre-checks give friendly errors, the unique indexes are the guard
	if _, err := s.userRepo.FindByEmail(ctx, in.Email); err == nil {
		return nil, ErrEmailInUse
	}
	if _, err := s.userRepo.FindByUsername(ctx, in.Username); err == nil {
		return nil, ErrUsernameInUse
	}

	hashed, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:     in.Email,
		Username:  in.Username,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Password:  hashed,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if repository.IsDuplicate(err) {
			return nil, ErrUsernameInUse
		}
		return nil, err
	}

	return user, nil
}

func validateRegisterInput(in RegisterInput) error {
	if in.Username == "me" {
		return ErrReservedUsername
	}
	if !usernameRe.MatchString(in.Username) {
		return ErrInvalidUsername
	}
	if !nameRe.MatchString(in.FirstName) || !nameRe.MatchString(in.LastName) {
		return ErrInvalidName
	}
	if utf8.RuneCountInString(in.Email) > maxEmailLength {
		return ErrFieldTooLong
	}
	for _, field := range []string{in.Username, in.FirstName, in.LastName, in.Password} {
		if utf8.RuneCountInString(field) > maxUserFieldLength {
			return ErrFieldTooLong
		}
	}
	return nil
}

func (s *userService) Get(ctx context.Context, id string) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) List(ctx context.Context, page, limit int) ([]models.User, int64, error) {
	return s.userRepo.List(ctx, page, limit)
}
