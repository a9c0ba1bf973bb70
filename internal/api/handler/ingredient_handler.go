package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"recipehub/internal/api/dto"
	"recipehub/internal/api/service"
)

type IngredientHandler struct {
	ingredients service.IngredientService
}

func NewIngredientHandler(ingredients service.IngredientService) *IngredientHandler {
	return &IngredientHandler{ingredients: ingredients}
}

func (h *IngredientHandler) RegisterRoutes(rg *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	rg.GET("/", h.Search)
	rg.GET("/:ingredient_id", h.Get)
	rg.POST("/", requireAuth, h.Create)
}

// Search lists the catalog, optionally narrowed to a name prefix via
// the "name" query parameter.
func (h *IngredientHandler) Search(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	ingredients, err := h.ingredients.Search(ctx, c.Query("name"))
	if err != nil {
		writeError(c, err)
		return
	}

	resp := make([]dto.IngredientResponse, 0, len(ingredients))
	for _, ing := range ingredients {
		resp = append(resp, dto.FromIngredient(ing))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *IngredientHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("ingredient_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	ingredient, err := h.ingredients.Get(ctx, id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromIngredient(*ingredient))
}

func (h *IngredientHandler) Create(c *gin.Context) {
	var in dto.CreateIngredientDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	ingredient := in.ToModel()
	if err := h.ingredients.Create(ctx, &ingredient); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.FromIngredient(ingredient))
}
