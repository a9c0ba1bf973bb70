package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"recipehub/internal/api/dto"
	"recipehub/internal/api/middleware"
	"recipehub/internal/api/service"
)

type UserHandler struct {
	users         service.UserService
	subscriptions service.SubscriptionService
}

func NewUserHandler(users service.UserService, subscriptions service.SubscriptionService) *UserHandler {
	return &UserHandler{users: users, subscriptions: subscriptions}
}

func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup, requireAuth, optionalAuth gin.HandlerFunc) {
	rg.POST("/", h.Register)
	rg.GET("/", optionalAuth, h.List)
	rg.GET("/me", requireAuth, h.Me)
	rg.GET("/:user_id", optionalAuth, h.Get)
}

func (h *UserHandler) Register(c *gin.Context) {
	var in dto.RegisterUserDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	user, err := h.users.Register(ctx, in.ToInput())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromUser(*user, false))
}

func (h *UserHandler) List(c *gin.Context) {
	page, limit := parsePagination(c)

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	users, total, err := h.users.List(ctx, page, limit)
	if err != nil {
		writeError(c, err)
		return
	}

	requesterID := middleware.CurrentUserID(c)
	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		subscribed, err := h.subscriptions.IsSubscribed(ctx, requesterID, u.ID)
		if err != nil {
			writeError(c, err)
			return
		}
		resp = append(resp, dto.FromUser(u, subscribed))
	}

	c.JSON(http.StatusOK, gin.H{
		"data":       resp,
		"pagination": paginationEnvelope(page, limit, total),
	})
}

func (h *UserHandler) Me(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	user, err := h.users.Get(ctx, middleware.CurrentUserID(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromUser(*user, false))
}

func (h *UserHandler) Get(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	user, err := h.users.Get(ctx, c.Param("user_id"))
	if err != nil {
		writeError(c, err)
		return
	}

	subscribed, err := h.subscriptions.IsSubscribed(ctx, middleware.CurrentUserID(c), user.ID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromUser(*user, subscribed))
}
