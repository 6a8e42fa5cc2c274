package auth_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/hoangson03112/VietXanh/internal/auth"
	autherrors "github.com/hoangson03112/VietXanh/internal/auth/errors"
	authMock "github.com/hoangson03112/VietXanh/internal/mock/auth"
	emailMock "github.com/hoangson03112/VietXanh/internal/mock/email"
	"github.com/hoangson03112/VietXanh/internal/shared/database/dbgen"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

type authDeps struct {
	service  *auth.Service
	repo     *authMock.MockRepository
	emailSvc *emailMock.MockService
}

func setupAuthTest(t *testing.T) *authDeps {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	ctrl := gomock.NewController(t)
	repo := authMock.NewMockRepository(ctrl)
	emailSvc := emailMock.NewMockService(ctrl)

	return &authDeps{
		service:  auth.NewService(repo, emailSvc),
		repo:     repo,
		emailSvc: emailSvc,
	}
}

func userWithPassword(t *testing.T, password string) dbgen.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)

	return dbgen.User{
		ID:       uuid.New(),
		Email:    "son@vietxanh.vn",
		Name:     "Hoàng Sơn",
		Password: string(hashed),
		Role:     "CUSTOMER",
	}
}

func TestAuthService_Login(t *testing.T) {
	deps := setupAuthTest(t)
	ctx := context.Background()

	t.Run("positive - valid credentials", func(t *testing.T) {
		user := userWithPassword(t, "secret123")
		deps.repo.EXPECT().GetByEmail(gomock.Any(), user.Email).Return(user, nil)

		res, err := deps.service.Login(ctx, user.Email, "secret123")

		assert.NoError(t, err)
		assert.NotEmpty(t, res.Token)
		assert.NotEmpty(t, res.RefreshToken)
		assert.Equal(t, user.Email, res.User.Email)
	})

	t.Run("negative - wrong password", func(t *testing.T) {
		user := userWithPassword(t, "secret123")
		deps.repo.EXPECT().GetByEmail(gomock.Any(), user.Email).Return(user, nil)

		_, err := deps.service.Login(ctx, user.Email, "wrong")
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("negative - unknown email", func(t *testing.T) {
		deps.repo.EXPECT().GetByEmail(gomock.Any(), "nobody@vietxanh.vn").Return(dbgen.User{}, sql.ErrNoRows)

		_, err := deps.service.Login(ctx, "nobody@vietxanh.vn", "whatever")
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})
}

func TestAuthService_Register(t *testing.T) {
	deps := setupAuthTest(t)
	ctx := context.Background()

	t.Run("positive - hashes password and assigns CUSTOMER role", func(t *testing.T) {
		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, arg dbgen.CreateUserParams) (dbgen.User, error) {
				assert.Equal(t, "CUSTOMER", arg.Role)
				assert.Equal(t, "Sơn Hoàng", arg.Name)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(arg.Password), []byte("secret123")))
				return dbgen.User{
					ID:    uuid.New(),
					Email: arg.Email,
					Name:  arg.Name,
					Role:  arg.Role,
				}, nil
			},
		)

		res, err := deps.service.Register(ctx, auth.RegisterRequest{
			FirstName: "Sơn",
			LastName:  "Hoàng",
			Email:     "son@vietxanh.vn",
			Password:  "secret123",
		})

		assert.NoError(t, err)
		assert.Equal(t, "CUSTOMER", res.Role)
	})

	t.Run("negative - duplicate email", func(t *testing.T) {
		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(dbgen.User{}, sql.ErrConnDone)

		_, err := deps.service.Register(ctx, auth.RegisterRequest{
			FirstName: "Sơn",
			Email:     "son@vietxanh.vn",
			Password:  "secret123",
		})
		assert.ErrorIs(t, err, autherrors.ErrEmailAlreadyRegistered)
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	deps := setupAuthTest(t)
	ctx := context.Background()

	t.Run("positive - valid refresh token rotates the pair", func(t *testing.T) {
		user := userWithPassword(t, "secret123")
		deps.repo.EXPECT().GetByEmail(gomock.Any(), user.Email).Return(user, nil)

		loginRes, err := deps.service.Login(ctx, user.Email, "secret123")
		assert.NoError(t, err)

		deps.repo.EXPECT().GetByID(gomock.Any(), user.ID).Return(user, nil)

		res, err := deps.service.RefreshToken(ctx, loginRes.RefreshToken)

		assert.NoError(t, err)
		assert.NotEmpty(t, res.Token)
		assert.Equal(t, user.ID.String(), res.User.ID)
	})

	t.Run("negative - garbage token", func(t *testing.T) {
		_, err := deps.service.RefreshToken(ctx, "not.a.jwt")
		assert.ErrorIs(t, err, autherrors.ErrInvalidRefreshToken)
	})
}

func TestAuthService_GetMe(t *testing.T) {
	deps := setupAuthTest(t)
	ctx := context.Background()

	t.Run("positive", func(t *testing.T) {
		user := userWithPassword(t, "x")
		deps.repo.EXPECT().GetByID(gomock.Any(), user.ID).Return(user, nil)

		res, err := deps.service.GetMe(ctx, user.ID.String())

		assert.NoError(t, err)
		assert.Equal(t, user.Email, res.Email)
	})

	t.Run("negative - invalid id", func(t *testing.T) {
		_, err := deps.service.GetMe(ctx, "bad-id")
		assert.ErrorIs(t, err, autherrors.ErrInvalidUserID)
	})
}

func TestAuthService_RequestPasswordReset(t *testing.T) {
	deps := setupAuthTest(t)
	ctx := context.Background()

	t.Run("positive - sends reset email", func(t *testing.T) {
		user := userWithPassword(t, "x")

		deps.repo.EXPECT().GetByEmail(gomock.Any(), user.Email).Return(user, nil)
		deps.repo.EXPECT().GetLatestPasswordResetTokenByUserID(gomock.Any(), user.ID).
			Return(dbgen.PasswordResetToken{}, sql.ErrNoRows)
		deps.repo.EXPECT().UpsertPasswordResetToken(gomock.Any(), user.ID, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)
		deps.emailSvc.EXPECT().SendResetPasswordEmail(gomock.Any(), user.Email, user.Name, gomock.Any()).
			Return(nil)

		res, err := deps.service.RequestPasswordReset(ctx, user.Email)

		assert.NoError(t, err)
		assert.True(t, res.Success)
		assert.True(t, res.EmailSent)
	})

	t.Run("positive - unknown email does not leak registration state", func(t *testing.T) {
		deps.repo.EXPECT().GetByEmail(gomock.Any(), "nobody@vietxanh.vn").
			Return(dbgen.User{}, sql.ErrNoRows)

		res, err := deps.service.RequestPasswordReset(ctx, "nobody@vietxanh.vn")

		assert.NoError(t, err)
		assert.True(t, res.Success)
		assert.False(t, res.EmailSent)
	})

	t.Run("positive - throttled when a fresh token exists", func(t *testing.T) {
		user := userWithPassword(t, "x")

		deps.repo.EXPECT().GetByEmail(gomock.Any(), user.Email).Return(user, nil)
		deps.repo.EXPECT().GetLatestPasswordResetTokenByUserID(gomock.Any(), user.ID).
			Return(dbgen.PasswordResetToken{
				UserID:    user.ID,
				Token:     "recent",
				CreatedAt: time.Now().Add(-2 * time.Minute),
				ExpiresAt: time.Now().Add(28 * time.Minute),
			}, nil)

		res, err := deps.service.RequestPasswordReset(ctx, user.Email)

		assert.NoError(t, err)
		assert.True(t, res.Success)
		assert.False(t, res.EmailSent)
	})
}

func TestAuthService_ResetPassword(t *testing.T) {
	deps := setupAuthTest(t)
	ctx := context.Background()

	t.Run("positive - updates password and burns token", func(t *testing.T) {
		userID := uuid.New()

		deps.repo.EXPECT().GetPasswordResetToken(gomock.Any(), "tok").
			Return(dbgen.PasswordResetToken{
				UserID:    userID,
				Token:     "tok",
				ExpiresAt: time.Now().Add(10 * time.Minute),
			}, nil)
		deps.repo.EXPECT().UpdateUserPassword(gomock.Any(), userID, gomock.Any()).Return(nil)
		deps.repo.EXPECT().DeletePasswordResetTokenByToken(gomock.Any(), "tok").Return(nil)

		res, err := deps.service.ResetPassword(ctx, "tok", "newpassword")

		assert.NoError(t, err)
		assert.True(t, res.Success)
	})

	t.Run("negative - expired token", func(t *testing.T) {
		deps.repo.EXPECT().GetPasswordResetToken(gomock.Any(), "old").
			Return(dbgen.PasswordResetToken{
				UserID:    uuid.New(),
				Token:     "old",
				ExpiresAt: time.Now().Add(-time.Minute),
			}, nil)
		deps.repo.EXPECT().DeletePasswordResetTokenByToken(gomock.Any(), "old").Return(nil)

		_, err := deps.service.ResetPassword(ctx, "old", "newpassword")
		assert.ErrorIs(t, err, autherrors.ErrResetTokenExpired)
	})

	t.Run("negative - unknown token", func(t *testing.T) {
		deps.repo.EXPECT().GetPasswordResetToken(gomock.Any(), "missing").
			Return(dbgen.PasswordResetToken{}, sql.ErrNoRows)

		_, err := deps.service.ResetPassword(ctx, "missing", "newpassword")
		assert.ErrorIs(t, err, autherrors.ErrResetTokenInvalid)
	})
}
