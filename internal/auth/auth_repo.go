package auth

import (
	"context"
	"time"

	"github.com/hoangson03112/VietXanh/internal/shared/database/dbgen"

	"github.com/google/uuid"
)

//go:generate mockgen -source=auth_repo.go -destination=../mock/auth/auth_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, arg dbgen.CreateUserParams) (dbgen.User, error)
	GetByEmail(ctx context.Context, email string) (dbgen.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (dbgen.User, error)
	UpdateUserPassword(ctx context.Context, userID uuid.UUID, password string) error

	UpsertPasswordResetToken(ctx context.Context, userID uuid.UUID, token string, expiresAt, createdAt time.Time) error
	GetPasswordResetToken(ctx context.Context, token string) (dbgen.PasswordResetToken, error)
	GetLatestPasswordResetTokenByUserID(ctx context.Context, userID uuid.UUID) (dbgen.PasswordResetToken, error)
	DeletePasswordResetTokenByToken(ctx context.Context, token string) error
}

type repository struct {
	queries *dbgen.Queries
}

func NewRepository(q *dbgen.Queries) Repository {
	return &repository{queries: q}
}

func (r *repository) Create(ctx context.Context, arg dbgen.CreateUserParams) (dbgen.User, error) {
	return r.queries.CreateUser(ctx, arg)
}

func (r *repository) GetByEmail(ctx context.Context, email string) (dbgen.User, error) {
	return r.queries.GetUserByEmail(ctx, email)
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (dbgen.User, error) {
	return r.queries.GetUserByID(ctx, id)
}

func (r *repository) UpdateUserPassword(ctx context.Context, userID uuid.UUID, password string) error {
	return r.queries.UpdateUserPassword(ctx, dbgen.UpdateUserPasswordParams{
		ID:       userID,
		Password: password,
	})
}

func (r *repository) UpsertPasswordResetToken(ctx context.Context, userID uuid.UUID, token string, expiresAt, createdAt time.Time) error {
	return r.queries.UpsertPasswordResetToken(ctx, dbgen.UpsertPasswordResetTokenParams{
		UserID:    userID,
		Token:     token,
		ExpiresAt: expiresAt,
		CreatedAt: createdAt,
	})
}

func (r *repository) GetPasswordResetToken(ctx context.Context, token string) (dbgen.PasswordResetToken, error) {
	return r.queries.GetPasswordResetToken(ctx, token)
}

func (r *repository) GetLatestPasswordResetTokenByUserID(ctx context.Context, userID uuid.UUID) (dbgen.PasswordResetToken, error) {
	return r.queries.GetLatestPasswordResetTokenByUserID(ctx, userID)
}

func (r *repository) DeletePasswordResetTokenByToken(ctx context.Context, token string) error {
	return r.queries.DeletePasswordResetTokenByToken(ctx, token)
}
