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

type TagHandler struct {
	tags service.TagService
}

func NewTagHandler(tags service.TagService) *TagHandler {
	return &TagHandler{tags: tags}
}

func (h *TagHandler) RegisterRoutes(rg *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	rg.GET("/", h.List)
	rg.GET("/:tag_id", h.Get)
	rg.POST("/", requireAuth, h.Create)
}

func (h *TagHandler) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	tags, err := h.tags.GetAll(ctx)
	if err != nil {
		writeError(c, err)
		return
	}

	resp := make([]dto.TagResponse, 0, len(tags))
	for _, t := range tags {
		resp = append(resp, dto.FromTag(t))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *TagHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("tag_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	tag, err := h.tags.Get(ctx, id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromTag(*tag))
}

func (h *TagHandler) Create(c *gin.Context) {
	var in dto.CreateTagDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	tag := in.ToModel()
	if err := h.tags.Create(ctx, &tag); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.FromTag(tag))
}
