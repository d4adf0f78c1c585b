package service

import (
	"context"

	"inkwell/internal/models"
	"inkwell/internal/repository"
	"inkwell/internal/validation"
)

type PostService struct {
	postRepo repository.PostRepository
}

type CreatePostInput struct {
	UserID   uint
	Title    string
	Content  string
	Desc     string
	Tags     []string
	Category string
	Img      string
}

type UpdatePostInput struct {
	PostID   uint
	UserID   uint
	Title    string
	Content  string
	Desc     string
	Tags     []string
	Category string
	Img      string
}

func NewPostService(postRepo repository.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

func validatePostFields(title, content, desc, category string) []models.FieldError {
	var fields []models.FieldError
	if err := validation.ValidateTitle(title); err != nil {
		fields = append(fields, models.FieldError{Field: "title", Message: err.Error()})
	}
	if err := validation.ValidateContent(content); err != nil {
		fields = append(fields, models.FieldError{Field: "content", Message: err.Error()})
	}
	if err := validation.ValidateDesc(desc); err != nil {
		fields = append(fields, models.FieldError{Field: "desc", Message: err.Error()})
	}
	if err := validation.ValidateCategory(category); err != nil {
		fields = append(fields, models.FieldError{Field: "category", Message: err.Error()})
	}
	return fields
}

// CreatePost validates the input, derives the slug, and stores the post.
func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if fields := validatePostFields(in.Title, in.Content, in.Desc, in.Category); len(fields) > 0 {
		return nil, models.NewFieldValidationError(fields)
	}

	category := in.Category
	if category == "" {
		category = models.CategoryGeneral
	}
	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}

	post := &models.Post{
		UserID:   in.UserID,
		Title:    in.Title,
		Slug:     validation.Slugify(in.Title),
		Content:  in.Content,
		Desc:     in.Desc,
		Tags:     tags,
		Category: category,
		Img:      in.Img,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

// ListPosts returns posts, optionally filtered and sorted.
func (s *PostService) ListPosts(ctx context.Context, opts repository.PostListOptions) ([]*models.Post, error) {
	return s.postRepo.List(ctx, opts)
}

// GetPostBySlug fetches a post by slug, bumping the view counter unless suppressed.
func (s *PostService) GetPostBySlug(ctx context.Context, slug string, incrementView bool) (*models.Post, error) {
	return s.postRepo.GetBySlug(ctx, slug, incrementView)
}

// GetPostByID fetches a post by numeric id. Used by the owner's edit flow;
// never touches the view counter.
func (s *PostService) GetPostByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id)
}

// UpdatePost applies the stored merge policy: title and content are replaced
// outright, while empty desc/tags/category/img keep their previous values.
// The slug is recomputed only when the title actually changed.
func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return nil, err
	}

	if post.UserID != in.UserID {
		return nil, models.NewForbiddenError("You can only edit your own posts")
	}

	if fields := validatePostFields(in.Title, in.Content, in.Desc, in.Category); len(fields) > 0 {
		return nil, models.NewFieldValidationError(fields)
	}

	if in.Title != post.Title {
		post.Slug = validation.Slugify(in.Title)
	}
	post.Title = in.Title
	post.Content = in.Content
	if in.Desc != "" {
		post.Desc = in.Desc
	}
	if len(in.Tags) > 0 {
		post.Tags = in.Tags
	}
	if in.Category != "" {
		post.Category = in.Category
	}
	if in.Img != "" {
		post.Img = in.Img
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

// DeletePost removes an owned post. Comments are left behind on purpose;
// see DESIGN.md.
func (s *PostService) DeletePost(ctx context.Context, postID, userID uint) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	if post.UserID != userID {
		return models.NewForbiddenError("You can only delete your own posts")
	}

	return s.postRepo.Delete(ctx, postID)
}
