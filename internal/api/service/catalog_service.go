package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"recipehub/internal/api/models"
	"recipehub/internal/api/repository"
	"recipehub/internal/cache"
)

const (
	tagsCacheKey        = "catalog:tags"
	ingredientsCacheKey = "catalog:ingredients"
)

// TagService reads the tag catalog through the Redis cache. Reference
// data changes rarely, so cache failures only log and fall through to
// Postgres.
type TagService interface {
	GetAll(ctx context.Context) ([]models.Tag, error)
	Get(ctx context.Context, id int64) (*models.Tag, error)
	Create(ctx context.Context, tag *models.Tag) error
}

type tagService struct {
	tagRepo repository.TagRepository
	cache   *cache.Cache
	logger  *logrus.Logger
}

func NewTagService(tagRepo repository.TagRepository, c *cache.Cache, logger *logrus.Logger) TagService {
	return &tagService{tagRepo: tagRepo, cache: c, logger: logger}
}

func (s *tagService) GetAll(ctx context.Context) ([]models.Tag, error) {
	var tags []models.Tag
	if hit, err := s.cache.GetJSON(ctx, tagsCacheKey, &tags); err != nil {
		s.logger.WithError(err).Warn("tag cache read failed")
	} else if hit {
		return tags, nil
	}

	tags, err := s.tagRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetJSON(ctx, tagsCacheKey, tags); err != nil {
		s.logger.WithError(err).Warn("tag cache write failed")
	}
	return tags, nil
}

func (s *tagService) Get(ctx context.Context, id int64) (*models.Tag, error) {
	tag, err := s.tagRepo.GetByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrTagNotFound
		}
		return nil, err
	}
	return tag, nil
}

func (s *tagService) Create(ctx context.Context, tag *models.Tag) error {
	if err := s.tagRepo.Create(ctx, tag); err != nil {
		return err
	}
	if err := s.cache.Invalidate(ctx, tagsCacheKey); err != nil {
		s.logger.WithError(err).Warn("tag cache invalidation failed")
	}
	return nil
}

// IngredientService serves the ingredient catalog; only the unfiltered
// listing is cached, prefix searches always hit the database.
type IngredientService interface {
	Search(ctx context.Context, namePrefix string) ([]models.Ingredient, error)
	Get(ctx context.Context, id int64) (*models.Ingredient, error)
	Create(ctx context.Context, ingredient *models.Ingredient) error
}

type ingredientService struct {
	ingredientRepo repository.IngredientRepository
	cache          *cache.Cache
	logger         *logrus.Logger
}

func NewIngredientService(ingredientRepo repository.IngredientRepository, c *cache.Cache, logger *logrus.Logger) IngredientService {
	return &ingredientService{ingredientRepo: ingredientRepo, cache: c, logger: logger}
}

func (s *ingredientService) Search(ctx context.Context, namePrefix string) ([]models.Ingredient, error) {
	if namePrefix != "" {
		return s.ingredientRepo.Search(ctx, namePrefix)
	}

	var ingredients []models.Ingredient
	if hit, err := s.cache.GetJSON(ctx, ingredientsCacheKey, &ingredients); err != nil {
		s.logger.WithError(err).Warn("ingredient cache read failed")
	} else if hit {
		return ingredients, nil
	}

	ingredients, err := s.ingredientRepo.Search(ctx, "")
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetJSON(ctx, ingredientsCacheKey, ingredients); err != nil {
		s.logger.WithError(err).Warn("ingredient cache write failed")
	}
	return ingredients, nil
}

func (s *ingredientService) Get(ctx context.Context, id int64) (*models.Ingredient, error) {
	ingredient, err := s.ingredientRepo.GetByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrIngredientNotFound
		}
		return nil, err
	}
	return ingredient, nil
}

func (s *ingredientService) Create(ctx context.Context, ingredient *models.Ingredient) error {
	if err := s.ingredientRepo.Create(ctx, ingredient); err != nil {
		return err
	}
	if err := s.cache.Invalidate(ctx, ingredientsCacheKey); err != nil {
		s.logger.WithError(err).Warn("ingredient cache invalidation failed")
	}
	return nil
}
