package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/RahimovIlhom/personnel-management/internal/auth"
	autherrors "github.com/RahimovIlhom/personnel-management/internal/auth/errors"
	authMock "github.com/RahimovIlhom/personnel-management/internal/auth/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func TestService_Login(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := authMock.NewMockRepository(ctrl)
	service := auth.NewService(mockRepo)
	ctx := context.Background()

	password := "password123"
	pw, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	userID := uuid.New()
	mockUser := &auth.User{
		ID:       userID,
		Email:    "admin@example.com",
		Name:     "Admin",
		Password: string(pw),
		IsActive: true,
	}

	t.Run("Success Login", func(t *testing.T) {
		mockRepo.EXPECT().
			GetByEmail(ctx, mockUser.Email).
			Return(mockUser, nil)

		token, refreshToken, resp, err := service.Login(ctx, mockUser.Email, password)

		assert.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.NotEmpty(t, refreshToken)
		assert.Equal(t, mockUser.Email, resp.Email)
		assert.Equal(t, userID.String(), resp.ID)
	})

	t.Run("Wrong Password", func(t *testing.T) {
		mockRepo.EXPECT().
			GetByEmail(ctx, mockUser.Email).
			Return(mockUser, nil)

		_, _, _, err := service.Login(ctx, mockUser.Email, "wrongpass")
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("Unknown Email", func(t *testing.T) {
		mockRepo.EXPECT().
			GetByEmail(ctx, "ghost@example.com").
			Return(nil, errors.New("record not found"))

		_, _, _, err := service.Login(ctx, "ghost@example.com", password)
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})
}

func TestService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := authMock.NewMockRepository(ctrl)
	service := auth.NewService(mockRepo)
	ctx := context.Background()

	t.Run("Success Register", func(t *testing.T) {
		req := auth.RegisterRequest{
			Email:    "user@example.com",
			Name:     "John Doe",
			Password: "password123",
		}

		var created *auth.User
		mockRepo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, u *auth.User) error {
				created = u
				return nil
			})

		resp, err := service.Register(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, req.Email, resp.Email)
		assert.NotNil(t, created)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte(req.Password)))
	})

	t.Run("Duplicate Email", func(t *testing.T) {
		req := auth.RegisterRequest{
			Email:    "duplicate@example.com",
			Name:     "Dup",
			Password: "password123",
		}

		mockRepo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(errors.New("duplicate key error"))

		_, err := service.Register(ctx, req)
		assert.ErrorIs(t, err, autherrors.ErrEmailAlreadyRegistered)
	})
}

func TestService_GetMe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := authMock.NewMockRepository(ctrl)
	service := auth.NewService(mockRepo)
	ctx := context.Background()

	t.Run("Invalid ID", func(t *testing.T) {
		_, err := service.GetMe(ctx, "not-a-uuid")
		assert.ErrorIs(t, err, autherrors.ErrInvalidUserID)
	})

	t.Run("Found", func(t *testing.T) {
		id := uuid.New()
		mockRepo.EXPECT().
			GetByID(ctx, id).
			Return(&auth.User{ID: id, Email: "me@example.com", Name: "Me"}, nil)

		resp, err := service.GetMe(ctx, id.String())
		assert.NoError(t, err)
		assert.Equal(t, "me@example.com", resp.Email)
	})
}
