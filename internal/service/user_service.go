// Package service contains the application's business logic.
package service

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"inkwell/internal/models"
	"inkwell/internal/repository"
	"inkwell/internal/validation"
)

type UserService struct {
	userRepo repository.UserRepository
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Register creates an account after validating the input and checking for a
// duplicate email address.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	var fields []models.FieldError
	if err := validation.ValidateName(in.Name); err != nil {
		fields = append(fields, models.FieldError{Field: "name", Message: err.Error()})
	}
	if err := validation.ValidateEmail(in.Email); err != nil {
		fields = append(fields, models.FieldError{Field: "email", Message: err.Error()})
	}
	if err := validation.ValidatePassword(in.Password); err != nil {
		fields = append(fields, models.FieldError{Field: "password", Message: err.Error()})
	}
	if len(fields) > 0 {
		return nil, models.NewFieldValidationError(fields)
	}

	existing, err := s.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewConflictError("User already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Name:     in.Name,
		Email:    in.Email,
		Password: string(hashed),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login verifies credentials. The failure message is identical for an
// unknown email and a wrong password so accounts cannot be enumerated.
func (s *UserService) Login(ctx context.Context, in LoginInput) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewUnauthorizedError("Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.Password)); err != nil {
		return nil, models.NewUnauthorizedError("Invalid credentials")
	}

	return user, nil
}

// GetProfile resolves the authenticated user.
func (s *UserService) GetProfile(ctx context.Context, userID uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}
