package service

import (
	"context"

	"inkwell/internal/models"
	"inkwell/internal/repository"
	"inkwell/internal/validation"
)

type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
}

type CreateCommentInput struct {
	UserID  uint
	PostID  uint
	Content string
}

func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

// CreateComment validates the content, checks the parent post exists, and
// stores the comment with the author resolved.
func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	if err := validation.ValidateCommentContent(in.Content); err != nil {
		return nil, models.NewFieldValidationError([]models.FieldError{
			{Field: "content", Message: err.Error()},
		})
	}

	if _, err := s.postRepo.GetByID(ctx, in.PostID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		Content: in.Content,
		UserID:  in.UserID,
		PostID:  in.PostID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	return comment, nil
}

// ListComments returns a post's comments newest first. A missing post yields
// an empty list, matching the non-cascading delete policy.
func (s *CommentService) ListComments(ctx context.Context, postID uint) ([]*models.Comment, error) {
	return s.commentRepo.ListByPost(ctx, postID)
}

// DeleteComment removes a comment owned by the requesting user.
func (s *CommentService) DeleteComment(ctx context.Context, commentID, userID uint) error {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}

	if comment.UserID != userID {
		return models.NewForbiddenError("You can only delete your own comments")
	}

	return s.commentRepo.Delete(ctx, commentID)
}
