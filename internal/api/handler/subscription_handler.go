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

type SubscriptionHandler struct {
	subscriptions service.SubscriptionService
}

func NewSubscriptionHandler(subscriptions service.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptions: subscriptions}
}

// RegisterRoutes attaches to the users group, next to the user routes.
func (h *SubscriptionHandler) RegisterRoutes(rg *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	rg.GET("/subscriptions", requireAuth, h.List)
	rg.POST("/:user_id/subscribe", requireAuth, h.Subscribe)
	rg.DELETE("/:user_id/subscribe", requireAuth, h.Unsubscribe)
}

func (h *SubscriptionHandler) List(c *gin.Context) {
	page, limit := parsePagination(c)

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	authors, total, err := h.subscriptions.ListFollowed(
		ctx,
		middleware.CurrentUserID(c),
		c.Query("recipes_limit"),
		page,
		limit,
	)
	if err != nil {
		writeError(c, err)
		return
	}

	resp := make([]dto.FollowedAuthorResponse, 0, len(authors))
	for _, fa := range authors {
		resp = append(resp, dto.FromFollowedAuthor(fa))
	}

	c.JSON(http.StatusOK, gin.H{
		"data":       resp,
		"pagination": paginationEnvelope(page, limit, total),
	})
}

func (h *SubscriptionHandler) Subscribe(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.subscriptions.Subscribe(ctx, middleware.CurrentUserID(c), c.Param("user_id")); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "subscribed"})
}

func (h *SubscriptionHandler) Unsubscribe(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.subscriptions.Unsubscribe(ctx, middleware.CurrentUserID(c), c.Param("user_id")); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
