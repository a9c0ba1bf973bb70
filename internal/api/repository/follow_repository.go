package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"recipehub/internal/api/models"
)

type FollowRepository interface {
	Add(ctx context.Context, userID, authorID string) error
	Remove(ctx context.Context, userID, authorID string) error
	Exists(ctx context.Context, userID, authorID string) (bool, error)
	ListAuthors(ctx context.Context, userID string, page, limit int) ([]models.User, int64, error)
}

type followRepository struct {
	db *gorm.DB
}

func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

func (r *followRepository) Add(ctx context.Context, userID, authorID string) error {
	follow := &models.Follow{
		UserID:   userID,
		AuthorID: authorID,
	}
	if err := r.db.WithContext(ctx).Create(follow).Error; err != nil {
		return fmt.Errorf("add follow: %w", err)
	}
	return nil
}

func (r *followRepository) Remove(ctx context.Context, userID, authorID string) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Delete(&models.Follow{})
	if result.Error != nil {
		return fmt.Errorf("remove follow: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *followRepository) Exists(ctx context.Context, userID, authorID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListAuthors returns the users followed by userID in subscription order.
func (r *followRepository) ListAuthors(ctx context.Context, userID string, page, limit int) ([]models.User, int64, error) {
	var authors []models.User
	var count int64

	if err := r.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("count follows: %w", err)
	}

	offset := (page - 1) * limit
	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Joins("JOIN follows ON follows.author_id = users.id").
		Where("follows.user_id = ?", userID).
		Order("follows.created_at asc").
		Offset(offset).
		Limit(limit).
		Find(&authors).Error; err != nil {
		return nil, 0, fmt.Errorf("list followed authors: %w", err)
	}

	return authors, count, nil
}
