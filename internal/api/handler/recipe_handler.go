package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"recipehub/internal/api/dto"
	"recipehub/internal/api/middleware"
	"recipehub/internal/api/models"
	"recipehub/internal/api/repository"
	"recipehub/internal/api/service"
)

type RecipeHandler struct {
	recipes       service.RecipeService
	favorites     service.FavoriteService
	shoppingList  service.ShoppingListService
	subscriptions service.SubscriptionService
}

func NewRecipeHandler(
	recipes service.RecipeService,
	favorites service.FavoriteService,
	shoppingList service.ShoppingListService,
	subscriptions service.SubscriptionService,
) *RecipeHandler {
	return &RecipeHandler{
		recipes:       recipes,
		favorites:     favorites,
		shoppingList:  shoppingList,
		subscriptions: subscriptions,
	}
}

func (h *RecipeHandler) RegisterRoutes(rg *gin.RouterGroup, requireAuth, optionalAuth gin.HandlerFunc) {
	rg.GET("/", optionalAuth, h.List)
	rg.GET("/download_shopping_cart", requireAuth, h.DownloadShoppingCart)
	rg.GET("/:recipe_id", optionalAuth, h.Get)
	rg.POST("/", requireAuth, h.Create)
	rg.PATCH("/:recipe_id", requireAuth, h.Update)
	rg.DELETE("/:recipe_id", requireAuth, h.Delete)

	rg.POST("/:recipe_id/favorite", requireAuth, h.AddFavorite)
	rg.DELETE("/:recipe_id/favorite", requireAuth, h.RemoveFavorite)
	rg.POST("/:recipe_id/shopping_cart", requireAuth, h.AddToCart)
	rg.DELETE("/:recipe_id/shopping_cart", requireAuth, h.RemoveFromCart)
}

// buildResponse resolves the requester-relative flags for one recipe.
func (h *RecipeHandler) buildResponse(ctx context.Context, userID string, recipe models.Recipe) (dto.RecipeResponse, error) {
	var flags dto.RecipeFlags
	var err error

	flags.IsFavorited, err = h.favorites.IsFavorited(ctx, userID, recipe.ID)
	if err != nil {
		return dto.RecipeResponse{}, err
	}
	flags.IsInShoppingCart, err = h.shoppingList.Contains(ctx, userID, recipe.ID)
	if err != nil {
		return dto.RecipeResponse{}, err
	}
	if recipe.Author != nil {
		flags.AuthorIsSubscribed, err = h.subscriptions.IsSubscribed(ctx, userID, recipe.Author.ID)
		if err != nil {
			return dto.RecipeResponse{}, err
		}
	}

	return dto.FromRecipe(recipe, flags), nil
}

func (h *RecipeHandler) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	userID := middleware.CurrentUserID(c)
	page, limit := parsePagination(c)

	filters := repository.RecipeFilters{
		AuthorID: c.Query("author"),
		TagSlugs: c.QueryArray("tags"),
		Page:     page,
		Limit:    limit,
	}
	// membership filters only make sense for authenticated requests
	if userID != "" {
		if c.Query("is_favorited") == "1" {
			filters.FavoritedBy = userID
		}
		if c.Query("is_in_shopping_cart") == "1" {
			filters.InCartOf = userID
		}
	}

	recipes, total, err := h.recipes.List(ctx, filters)
	if err != nil {
		writeError(c, err)
		return
	}

	resp := make([]dto.RecipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		r, err := h.buildResponse(ctx, userID, recipe)
		if err != nil {
			writeError(c, err)
			return
		}
		resp = append(resp, r)
	}

	c.JSON(http.StatusOK, gin.H{
		"data":       resp,
		"pagination": paginationEnvelope(page, limit, total),
	})
}

func (h *RecipeHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("recipe_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	recipe, err := h.recipes.Get(ctx, id)
	if err != nil {
		writeError(c, err)
		return
	}

	resp, err := h.buildResponse(ctx, middleware.CurrentUserID(c), *recipe)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *RecipeHandler) Create(c *gin.Context) {
	var in dto.WriteRecipeDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	userID := middleware.CurrentUserID(c)
	recipe, err := h.recipes.Create(ctx, userID, in.ToInput())
	if err != nil {
		writeError(c, err)
		return
	}

	resp, err := h.buildResponse(ctx, userID, *recipe)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *RecipeHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("recipe_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var in dto.WriteRecipeDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	userID := middleware.CurrentUserID(c)
	recipe, err := h.recipes.Update(ctx, id, userID, in.ToInput())
	if err != nil {
		writeError(c, err)
		return
	}

	resp, err := h.buildResponse(ctx, userID, *recipe)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *RecipeHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("recipe_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.recipes.Delete(ctx, id, middleware.CurrentUserID(c)); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *RecipeHandler) AddFavorite(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("recipe_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	recipe, err := h.favorites.Add(ctx, middleware.CurrentUserID(c), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.FromRecipeShort(*recipe))
}

func (h *RecipeHandler) RemoveFavorite(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("recipe_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.favorites.Remove(ctx, middleware.CurrentUserID(c), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *RecipeHandler) AddToCart(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("recipe_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	recipe, err := h.shoppingList.AddRecipe(ctx, middleware.CurrentUserID(c), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.FromRecipeShort(*recipe))
}

func (h *RecipeHandler) RemoveFromCart(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("recipe_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.shoppingList.RemoveRecipe(ctx, middleware.CurrentUserID(c), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DownloadShoppingCart aggregates the cart into a plain-text shopping
// list and serves it as a file attachment.
func (h *RecipeHandler) DownloadShoppingCart(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	items, err := h.shoppingList.Build(ctx, middleware.CurrentUserID(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="shopping_cart.txt"`)
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(h.shoppingList.Render(items)))
}
