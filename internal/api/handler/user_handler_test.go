package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"recipehub/internal/api/dto"
	"recipehub/internal/api/handler"
	"recipehub/internal/api/models"
	"recipehub/internal/api/service"
)

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, in service.RegisterInput) (*models.User, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) Get(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) List(ctx context.Context, page, limit int) ([]models.User, int64, error) {
	args := m.Called(ctx, page, limit)
	return args.Get(0).([]models.User), args.Get(1).(int64), args.Error(2)
}

func setupUserRouter(userID string) (*gin.Engine, *MockUserService, *MockSubscriptionService) {
	gin.SetMode(gin.TestMode)
	mockUsers := new(MockUserService)
	mockSubs := new(MockSubscriptionService)
	h := handler.NewUserHandler(mockUsers, mockSubs)

	r := gin.New()
	auth := mockAuthMiddleware(userID)
	h.RegisterRoutes(r.Group("/api/users"), auth, auth)
	return r, mockUsers, mockSubs
}

func registerBody() []byte {
	body, _ := json.Marshal(dto.RegisterUserDTO{
		Email:     "chef@example.com",
		Username:  "chef",
		FirstName: "Anna",
		LastName:  "Smith",
		Password:  "password123",
	})
	return body
}

func TestUserHandler_Register(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		r, mockUsers, _ := setupUserRouter("")

		mockUsers.On("Register", mock.Anything, mock.MatchedBy(func(in service.RegisterInput) bool {
			return in.Email == "chef@example.com" && in.Username == "chef"
		})).Return(&models.User{
			ID:       "user-1",
			Email:    "chef@example.com",
			Username: "chef",
		}, nil).Once()

		req, _ := http.NewRequest(http.MethodPost, "/api/users/", bytes.NewReader(registerBody()))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var resp dto.UserResponse
		json.Unmarshal(w.Body.Bytes(), &resp)
		assert.Equal(t, "user-1", resp.ID)
		assert.False(t, resp.IsSubscribed)
		// password hash never leaves the API
		assert.NotContains(t, w.Body.String(), "password")
	})

	t.Run("ReservedUsername", func(t *testing.T) {
		r, mockUsers, _ := setupUserRouter("")

		mockUsers.On("Register", mock.Anything, mock.Anything).
			Return(nil, service.ErrReservedUsername).Once()

		req, _ := http.NewRequest(http.MethodPost, "/api/users/", bytes.NewReader(registerBody()))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("EmailConflict", func(t *testing.T) {
		r, mockUsers, _ := setupUserRouter("")

		mockUsers.On("Register", mock.Anything, mock.Anything).
			Return(nil, service.ErrEmailInUse).Once()

		req, _ := http.NewRequest(http.MethodPost, "/api/users/", bytes.NewReader(registerBody()))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("MissingFields", func(t *testing.T) {
		r, _, _ := setupUserRouter("")

		req, _ := http.NewRequest(http.MethodPost, "/api/users/", bytes.NewReader([]byte(`{"email":"x@y.com"}`)))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUserHandler_Me(t *testing.T) {
	r, mockUsers, _ := setupUserRouter("user-1")

	mockUsers.On("Get", mock.Anything, "user-1").
		Return(&models.User{ID: "user-1", Username: "chef"}, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/users/me", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.UserResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "chef", resp.Username)
}

func TestUserHandler_Get(t *testing.T) {
	r, mockUsers, mockSubs := setupUserRouter("user-1")

	mockUsers.On("Get", mock.Anything, "author-1").
		Return(&models.User{ID: "author-1", Username: "author"}, nil).Once()
	mockSubs.On("IsSubscribed", mock.Anything, "user-1", "author-1").Return(true, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/users/author-1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.UserResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.True(t, resp.IsSubscribed)
}
