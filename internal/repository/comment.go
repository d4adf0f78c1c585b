// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"inkwell/internal/cache"
	"inkwell/internal/models"
)

// CommentRepository defines the interface for comment operations.
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, id uint) (*models.Comment, error)
	ListByPost(ctx context.Context, postID uint) ([]*models.Comment, error)
	Delete(ctx context.Context, id uint) error
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new CommentRepository.
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateComments(ctx, comment.PostID)
	return r.db.WithContext(ctx).Preload("User").First(comment, comment.ID).Error
}

func (r *commentRepository) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.WithContext(ctx).Preload("User").First(&comment, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.NewNotFoundError("Comment")
	}
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return &comment, nil
}

func (r *commentRepository) ListByPost(ctx context.Context, postID uint) ([]*models.Comment, error) {
	var comments []*models.Comment
	err := cache.Aside(ctx, cache.CommentsKey(postID), &comments, cache.CommentsTTL, func() error {
		if err := r.db.WithContext(ctx).
			Preload("User").
			Where("post_id = ?", postID).
			Order("created_at DESC").
			Find(&comments).Error; err != nil {
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *commentRepository) Delete(ctx context.Context, id uint) error {
	comment, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Delete(&models.Comment{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateComments(ctx, comment.PostID)
	return nil
}
