package server

import (
	"github.com/gofiber/fiber/v2"

	"inkwell/internal/middleware"
	"inkwell/internal/models"
	"inkwell/internal/service"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token"`
}

// Register handles user registration
//
//	@Summary		Register a new user
//	@Description	Create an account and receive a session token
//	@Tags			users
//	@Accept			json
//	@Produce		json
//	@Param			body	body		registerRequest	true	"Registration payload"
//	@Success		201		{object}	authResponse
//	@Failure		400		{object}	models.ErrorResponse
//	@Failure		409		{object}	models.ErrorResponse
//	@Router			/api/users/register [post]
func (s *Server) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.Register(c.UserContext(), service.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	token, err := s.generateToken(user.ID)
	if err != nil {
		middleware.Logger.ErrorContext(c.UserContext(), "token generation failed", "error", err)
		return respondServiceError(c, models.NewInternalError(err))
	}

	return c.Status(fiber.StatusCreated).JSON(authResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Token: token,
	})
}

// Login handles user authentication
//
//	@Summary		Log in
//	@Description	Verify credentials and receive a session token
//	@Tags			users
//	@Accept			json
//	@Produce		json
//	@Param			body	body		loginRequest	true	"Login payload"
//	@Success		200		{object}	authResponse
//	@Failure		401		{object}	models.ErrorResponse
//	@Router			/api/users/login [post]
func (s *Server) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.Login(c.UserContext(), service.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	token, err := s.generateToken(user.ID)
	if err != nil {
		middleware.Logger.ErrorContext(c.UserContext(), "token generation failed", "error", err)
		return respondServiceError(c, models.NewInternalError(err))
	}

	return c.JSON(authResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Token: token,
	})
}

// GetProfile returns the authenticated user's profile
//
//	@Summary		Get own profile
//	@Tags			users
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	models.User
//	@Failure		401	{object}	models.ErrorResponse
//	@Router			/api/users/profile [get]
func (s *Server) GetProfile(c *fiber.Ctx) error {
	user, err := s.userService.GetProfile(c.UserContext(), currentUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(user)
}
