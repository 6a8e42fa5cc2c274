package auth

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"
	"time"

	autherrors "github.com/hoangson03112/VietXanh/internal/auth/errors"
	"github.com/hoangson03112/VietXanh/internal/email"
	"github.com/hoangson03112/VietXanh/internal/shared/database/dbgen"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 7 * 24 * time.Hour
)

type Service struct {
	repo     Repository
	emailSvc email.Service
}

func NewService(repo Repository, emailSvc email.Service) *Service {
	return &Service{
		repo:     repo,
		emailSvc: emailSvc,
	}
}

func (s *Service) generateToken(userID, role string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"exp":     time.Now().Add(ttl).Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

func (s *Service) Login(ctx context.Context, email, password string) (LoginResponse, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	accessToken, err := s.generateToken(user.ID.String(), user.Role, accessTokenTTL)
	if err != nil {
		return LoginResponse{}, autherrors.ErrTokenGenerationFailed
	}

	refreshToken, err := s.generateToken(user.ID.String(), user.Role, refreshTokenTTL)
	if err != nil {
		return LoginResponse{}, autherrors.ErrTokenGenerationFailed
	}

	return LoginResponse{
		Token:        accessToken,
		RefreshToken: refreshToken,
		User: AuthResponse{
			ID:    user.ID.String(),
			Email: user.Email,
			Name:  user.Name,
			Role:  user.Role,
		},
	}, nil
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (AuthResponse, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	fullName := strings.TrimSpace(req.FirstName + " " + req.LastName)

	user, err := s.repo.Create(ctx, dbgen.CreateUserParams{
		Email:    req.Email,
		Name:     fullName,
		Password: string(hashed),
		Role:     "CUSTOMER",
	})
	if err != nil {
		return AuthResponse{}, autherrors.ErrEmailAlreadyRegistered
	}

	return AuthResponse{
		ID:    user.ID.String(),
		Email: user.Email,
		Name:  user.Name,
		Role:  user.Role,
	}, nil
}

func (s *Service) RefreshToken(ctx context.Context, refreshToken string) (LoginResponse, error) {
	token, err := jwt.Parse(refreshToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, autherrors.ErrInvalidToken
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})

	if err != nil || !token.Valid {
		return LoginResponse{}, autherrors.ErrInvalidRefreshToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return LoginResponse{}, autherrors.ErrInvalidToken
	}

	userIDStr, ok := claims["user_id"].(string)
	if !ok {
		return LoginResponse{}, autherrors.ErrInvalidToken
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return LoginResponse{}, autherrors.ErrInvalidUserID
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return LoginResponse{}, autherrors.ErrUserNotFound
	}

	newAccessToken, err := s.generateToken(user.ID.String(), user.Role, accessTokenTTL)
	if err != nil {
		return LoginResponse{}, autherrors.ErrTokenGenerationFailed
	}

	newRefreshToken, err := s.generateToken(user.ID.String(), user.Role, refreshTokenTTL)
	if err != nil {
		return LoginResponse{}, autherrors.ErrTokenGenerationFailed
	}

	return LoginResponse{
		Token:        newAccessToken,
		RefreshToken: newRefreshToken,
		User: AuthResponse{
			ID:    user.ID.String(),
			Email: user.Email,
			Name:  user.Name,
			Role:  user.Role,
		},
	}, nil
}

func (s *Service) GetMe(ctx context.Context, userID string) (*AuthResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, autherrors.ErrInvalidUserID
	}

	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, autherrors.ErrUserNotFound
	}

	return &AuthResponse{
		ID:    u.ID.String(),
		Email: u.Email,
		Name:  u.Name,
		Role:  u.Role,
	}, nil
}

func (s *Service) RequestPasswordReset(ctx context.Context, userEmail string) (ActionStatusResponse, error) {
	user, err := s.repo.GetByEmail(ctx, userEmail)
	if err != nil {
		if err == sql.ErrNoRows {
			// do not reveal whether the address is registered
			return ActionStatusResponse{Success: true, EmailSent: false}, nil
		}
		return ActionStatusResponse{}, err
	}

	existingToken, err := s.repo.GetLatestPasswordResetTokenByUserID(ctx, user.ID)
	now := time.Now()
	if err == nil {
		diffMinutes := now.Sub(existingToken.CreatedAt).Minutes()
		if diffMinutes < 10 && existingToken.ExpiresAt.After(now) {
			return ActionStatusResponse{
				Success:   true,
				EmailSent: false,
				Message:   "A password reset link was recently sent. Please check your email or try again later.",
			}, nil
		}
	} else if err != sql.ErrNoRows {
		return ActionStatusResponse{}, err
	}

	resetToken := uuid.NewString()
	expiresAt := now.Add(30 * time.Minute)

	if err := s.repo.UpsertPasswordResetToken(ctx, user.ID, resetToken, expiresAt, now); err != nil {
		return ActionStatusResponse{}, err
	}

	baseURL := os.Getenv("WEBSTORE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:5173"
	}
	resetURL := fmt.Sprintf("%s/reset-password?token=%s", baseURL, resetToken)

	if err := s.emailSvc.SendResetPasswordEmail(ctx, userEmail, user.Name, resetURL); err != nil {
		return ActionStatusResponse{}, err
	}

	return ActionStatusResponse{Success: true, EmailSent: true}, nil
}

func (s *Service) ResetPassword(ctx context.Context, token, newPassword string) (ActionStatusResponse, error) {
	resetRecord, err := s.repo.GetPasswordResetToken(ctx, token)
	if err != nil {
		if err == sql.ErrNoRows {
			return ActionStatusResponse{}, autherrors.ErrResetTokenInvalid
		}
		return ActionStatusResponse{}, err
	}

	if time.Now().After(resetRecord.ExpiresAt) {
		_ = s.repo.DeletePasswordResetTokenByToken(ctx, token)
		return ActionStatusResponse{}, autherrors.ErrResetTokenExpired
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return ActionStatusResponse{}, autherrors.ErrTokenGenerationFailed
	}

	if err := s.repo.UpdateUserPassword(ctx, resetRecord.UserID, string(hashed)); err != nil {
		return ActionStatusResponse{}, err
	}

	if err := s.repo.DeletePasswordResetTokenByToken(ctx, token); err != nil {
		return ActionStatusResponse{}, err
	}

	return ActionStatusResponse{
		Success: true,
		Message: "Password has been reset successfully.",
	}, nil
}
