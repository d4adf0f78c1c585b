package server

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"inkwell/internal/models"
	"inkwell/internal/service"
)

type createCommentRequest struct {
	Content string `json:"content"`
	PostID  uint   `json:"postId"`
}

// GetComments lists a post's comments, newest first
//
//	@Summary		List comments for a post
//	@Description	A missing post yields an empty list
//	@Tags			comments
//	@Produce		json
//	@Param			postId	path		int	true	"Post ID"
//	@Success		200		{array}		models.Comment
//	@Failure		400		{object}	models.ErrorResponse
//	@Router			/api/comments/{postId} [get]
func (s *Server) GetComments(c *fiber.Ctx) error {
	postID, err := parseID(c, "postId", "post ID")
	if err != nil {
		if errors.Is(err, errResponseWritten) {
			return nil
		}
		return err
	}

	comments, err := s.commentService.ListComments(c.UserContext(), postID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(comments)
}

// CreateComment adds a comment to an existing post
//
//	@Summary		Create a comment
//	@Tags			comments
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			body	body		createCommentRequest	true	"Comment payload"
//	@Success		201		{object}	models.Comment
//	@Failure		400		{object}	models.ErrorResponse
//	@Failure		404		{object}	models.ErrorResponse
//	@Router			/api/comments [post]
func (s *Server) CreateComment(c *fiber.Ctx) error {
	var req createCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.PostID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid post ID"))
	}

	comment, err := s.commentService.CreateComment(c.UserContext(), service.CreateCommentInput{
		UserID:  currentUserID(c),
		PostID:  req.PostID,
		Content: req.Content,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(comment)
}

// DeleteComment deletes an owned comment
//
//	@Summary		Delete a comment
//	@Tags			comments
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int	true	"Comment ID"
//	@Success		200	{object}	map[string]string
//	@Failure		403	{object}	models.ErrorResponse
//	@Failure		404	{object}	models.ErrorResponse
//	@Router			/api/comments/{id} [delete]
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	id, err := parseID(c, "id", "comment ID")
	if err != nil {
		if errors.Is(err, errResponseWritten) {
			return nil
		}
		return err
	}

	if err := s.commentService.DeleteComment(c.UserContext(), id, currentUserID(c)); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Comment deleted successfully"})
}
