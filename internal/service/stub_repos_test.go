package service

import (
	"context"

	"inkwell/internal/models"
	"inkwell/internal/repository"
)

// Function-field stubs so each test wires only what it needs.

type stubUserRepo struct {
	createFn     func(ctx context.Context, user *models.User) error
	getByIDFn    func(ctx context.Context, id uint) (*models.User, error)
	getByEmailFn func(ctx context.Context, email string) (*models.User, error)
}

func (s *stubUserRepo) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}

func (s *stubUserRepo) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}

func (s *stubUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}

type stubPostRepo struct {
	createFn    func(ctx context.Context, post *models.Post) error
	getByIDFn   func(ctx context.Context, id uint) (*models.Post, error)
	getBySlugFn func(ctx context.Context, slug string, incrementView bool) (*models.Post, error)
	listFn      func(ctx context.Context, opts repository.PostListOptions) ([]*models.Post, error)
	updateFn    func(ctx context.Context, post *models.Post) error
	deleteFn    func(ctx context.Context, id uint) error
}

func (s *stubPostRepo) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}

func (s *stubPostRepo) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}

func (s *stubPostRepo) GetBySlug(ctx context.Context, slug string, incrementView bool) (*models.Post, error) {
	return s.getBySlugFn(ctx, slug, incrementView)
}

func (s *stubPostRepo) List(ctx context.Context, opts repository.PostListOptions) ([]*models.Post, error) {
	return s.listFn(ctx, opts)
}

func (s *stubPostRepo) Update(ctx context.Context, post *models.Post) error {
	return s.updateFn(ctx, post)
}

func (s *stubPostRepo) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

type stubCommentRepo struct {
	createFn     func(ctx context.Context, comment *models.Comment) error
	getByIDFn    func(ctx context.Context, id uint) (*models.Comment, error)
	listByPostFn func(ctx context.Context, postID uint) ([]*models.Comment, error)
	deleteFn     func(ctx context.Context, id uint) error
}

func (s *stubCommentRepo) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}

func (s *stubCommentRepo) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}

func (s *stubCommentRepo) ListByPost(ctx context.Context, postID uint) ([]*models.Comment, error) {
	return s.listByPostFn(ctx, postID)
}

func (s *stubCommentRepo) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
