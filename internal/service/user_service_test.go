package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"inkwell/internal/models"
)

func TestRegisterSuccess(t *testing.T) {
	repo := &stubUserRepo{
		getByEmailFn: func(ctx context.Context, email string) (*models.User, error) {
			return nil, nil
		},
		createFn: func(ctx context.Context, user *models.User) error {
			user.ID = 1
			return nil
		},
	}
	svc := NewUserService(repo)

	user, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(1), user.ID)
	assert.Equal(t, "alice@example.com", user.Email)

	// Stored password must be a bcrypt hash, not the plaintext.
	assert.NotEqual(t, "secret123", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret123")))
}

func TestRegisterValidation(t *testing.T) {
	svc := NewUserService(&stubUserRepo{})

	_, err := svc.Register(context.Background(), RegisterInput{
		Name:     "A",
		Email:    "bad",
		Password: "123",
	})
	require.Error(t, err)

	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, models.CodeValidation, appErr.Code)
	assert.Len(t, appErr.Fields, 3)

	fields := make(map[string]bool)
	for _, f := range appErr.Fields {
		fields[f.Field] = true
	}
	assert.True(t, fields["name"])
	assert.True(t, fields["email"])
	assert.True(t, fields["password"])
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := &stubUserRepo{
		getByEmailFn: func(ctx context.Context, email string) (*models.User, error) {
			return &models.User{ID: 7, Email: email}, nil
		},
	}
	svc := NewUserService(repo)

	_, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.Error(t, err)

	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, models.CodeConflict, appErr.Code)
}

func TestLoginFailureMessagesMatch(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("rightpass"), bcrypt.DefaultCost)
	require.NoError(t, err)

	repo := &stubUserRepo{
		getByEmailFn: func(ctx context.Context, email string) (*models.User, error) {
			if email == "known@example.com" {
				return &models.User{ID: 1, Email: email, Password: string(hashed)}, nil
			}
			return nil, nil
		},
	}
	svc := NewUserService(repo)

	_, unknownErr := svc.Login(context.Background(), LoginInput{
		Email: "nobody@example.com", Password: "whatever",
	})
	_, wrongPassErr := svc.Login(context.Background(), LoginInput{
		Email: "known@example.com", Password: "wrongpass",
	})
	require.Error(t, unknownErr)
	require.Error(t, wrongPassErr)

	// An attacker must not be able to tell the two failures apart.
	var e1, e2 *models.AppError
	require.True(t, errors.As(unknownErr, &e1))
	require.True(t, errors.As(wrongPassErr, &e2))
	assert.Equal(t, e1.Code, e2.Code)
	assert.Equal(t, e1.Message, e2.Message)
	assert.Equal(t, models.CodeUnauthorized, e1.Code)
}

func TestLoginSuccess(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("rightpass"), bcrypt.DefaultCost)
	require.NoError(t, err)

	repo := &stubUserRepo{
		getByEmailFn: func(ctx context.Context, email string) (*models.User, error) {
			return &models.User{ID: 3, Email: email, Password: string(hashed)}, nil
		},
	}
	svc := NewUserService(repo)

	user, err := svc.Login(context.Background(), LoginInput{
		Email: "known@example.com", Password: "rightpass",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(3), user.ID)
}
