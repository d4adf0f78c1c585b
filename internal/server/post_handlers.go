package server

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"inkwell/internal/models"
	"inkwell/internal/service"
)

type postRequest struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Desc     string   `json:"desc"`
	Tags     []string `json:"tags"`
	Category string   `json:"category"`
	Img      string   `json:"img"`
}

// GetPosts lists posts, newest first by default
//
//	@Summary		List posts
//	@Description	List posts with optional category, search, and sort filters
//	@Tags			posts
//	@Produce		json
//	@Param			category	query		string	false	"Filter by category"
//	@Param			search		query		string	false	"Match against title and content"
//	@Param			sort		query		string	false	"Sort order"	Enums(latest, popular)
//	@Param			limit		query		int		false	"Page size (max 100, 0 = all)"
//	@Param			offset		query		int		false	"Rows to skip"
//	@Success		200			{array}		models.Post
//	@Router			/api/posts [get]
func (s *Server) GetPosts(c *fiber.Ctx) error {
	posts, err := s.postService.ListPosts(c.UserContext(), parseListOptions(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(posts)
}

// GetPostBySlug fetches a single post and bumps its view counter
//
//	@Summary		Get a post by slug
//	@Description	Fetch a post; each call increments the view counter unless incrementView=false
//	@Tags			posts
//	@Produce		json
//	@Param			slug			path		string	true	"Post slug"
//	@Param			incrementView	query		bool	false	"Set false to skip the view counter"
//	@Success		200				{object}	models.Post
//	@Failure		404				{object}	models.ErrorResponse
//	@Router			/api/posts/{slug} [get]
func (s *Server) GetPostBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")
	incrementView := c.Query("incrementView") != "false"

	post, err := s.postService.GetPostBySlug(c.UserContext(), slug, incrementView)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(post)
}

// GetPostByID fetches a post by numeric id for the edit flow
//
//	@Summary		Get a post by id
//	@Description	Fetch a post by numeric id; never touches the view counter
//	@Tags			posts
//	@Produce		json
//	@Param			id	path		int	true	"Post ID"
//	@Success		200	{object}	models.Post
//	@Failure		404	{object}	models.ErrorResponse
//	@Router			/api/posts/id/{id} [get]
func (s *Server) GetPostByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id", "post ID")
	if err != nil {
		if errors.Is(err, errResponseWritten) {
			return nil
		}
		return err
	}

	post, err := s.postService.GetPostByID(c.UserContext(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(post)
}

// CreatePost creates a new post owned by the authenticated user
//
//	@Summary		Create a post
//	@Tags			posts
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			body	body		postRequest	true	"Post payload"
//	@Success		201		{object}	models.Post
//	@Failure		400		{object}	models.ErrorResponse
//	@Failure		401		{object}	models.ErrorResponse
//	@Router			/api/posts [post]
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req postRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.CreatePost(c.UserContext(), service.CreatePostInput{
		UserID:   currentUserID(c),
		Title:    req.Title,
		Content:  req.Content,
		Desc:     req.Desc,
		Tags:     req.Tags,
		Category: req.Category,
		Img:      req.Img,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

// UpdatePost updates an owned post
//
//	@Summary		Update a post
//	@Description	Replace title and content; empty desc/tags/category/img keep their previous values
//	@Tags			posts
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		int			true	"Post ID"
//	@Param			body	body		postRequest	true	"Post payload"
//	@Success		200		{object}	models.Post
//	@Failure		403		{object}	models.ErrorResponse
//	@Failure		404		{object}	models.ErrorResponse
//	@Router			/api/posts/{id} [put]
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	id, err := parseID(c, "id", "post ID")
	if err != nil {
		if errors.Is(err, errResponseWritten) {
			return nil
		}
		return err
	}

	var req postRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.UpdatePost(c.UserContext(), service.UpdatePostInput{
		PostID:   id,
		UserID:   currentUserID(c),
		Title:    req.Title,
		Content:  req.Content,
		Desc:     req.Desc,
		Tags:     req.Tags,
		Category: req.Category,
		Img:      req.Img,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(post)
}

// DeletePost deletes an owned post
//
//	@Summary		Delete a post
//	@Tags			posts
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int	true	"Post ID"
//	@Success		200	{object}	map[string]string
//	@Failure		403	{object}	models.ErrorResponse
//	@Failure		404	{object}	models.ErrorResponse
//	@Router			/api/posts/{id} [delete]
func (s *Server) DeletePost(c *fiber.Ctx) error {
	id, err := parseID(c, "id", "post ID")
	if err != nil {
		if errors.Is(err, errResponseWritten) {
			return nil
		}
		return err
	}

	if err := s.postService.DeletePost(c.UserContext(), id, currentUserID(c)); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Post deleted successfully"})
}
