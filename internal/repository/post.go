// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"inkwell/internal/middleware"
	"inkwell/internal/models"
)

// PostListOptions narrows and orders List results.
type PostListOptions struct {
	Category string
	Search   string
	Sort     string // "new" (default) or "popular"
	Limit    int
	Offset   int
}

// PostRepository defines the interface for post data operations.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	GetBySlug(ctx context.Context, slug string, incrementView bool) (*models.Post, error)
	List(ctx context.Context, opts PostListOptions) ([]*models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id uint) error
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository.
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return models.NewInternalError(err)
	}
	// Reload with the author resolved for the response.
	return r.db.WithContext(ctx).Preload("User").First(post, post.ID).Error
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	err := r.db.WithContext(ctx).Preload("User").First(&post, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.NewNotFoundError("Post")
	}
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return &post, nil
}

// GetBySlug fetches a post by slug. When incrementView is set the view
// counter is bumped with a single atomic UPDATE before the read, so
// concurrent readers never lose increments.
func (r *postRepository) GetBySlug(ctx context.Context, slug string, incrementView bool) (*models.Post, error) {
	if incrementView {
		res := r.db.WithContext(ctx).
			Model(&models.Post{}).
			Where("slug = ?", slug).
			UpdateColumn("view_count", gorm.Expr("view_count + ?", 1))
		if res.Error != nil {
			return nil, models.NewInternalError(res.Error)
		}
		if res.RowsAffected == 0 {
			return nil, models.NewNotFoundError("Post")
		}
		middleware.ViewIncrements.Inc()
	}

	var post models.Post
	err := r.db.WithContext(ctx).Preload("User").Where("slug = ?", slug).First(&post).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.NewNotFoundError("Post")
	}
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return &post, nil
}

func (r *postRepository) List(ctx context.Context, opts PostListOptions) ([]*models.Post, error) {
	var posts []*models.Post

	q := r.db.WithContext(ctx).Preload("User")
	if opts.Category != "" {
		q = q.Where("category = ?", opts.Category)
	}
	if opts.Search != "" {
		like := "%" + strings.ToLower(opts.Search) + "%"
		q = q.Where("LOWER(title) LIKE ? OR LOWER(content) LIKE ?", like, like)
	}
	switch opts.Sort {
	case "popular":
		q = q.Order("view_count DESC, created_at DESC")
	default: // "new" and anything unrecognized
		q = q.Order("created_at DESC")
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}
	if opts.Offset > 0 {
		q = q.Offset(opts.Offset)
	}

	if err := q.Find(&posts).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Save(post).Error; err != nil {
		return models.NewInternalError(err)
	}
	return r.db.WithContext(ctx).Preload("User").First(post, post.ID).Error
}

// Delete removes the post only. Comments are intentionally left in place;
// the client stops requesting them once the post is gone.
func (r *postRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Post{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
