package contact

import (
	"context"
	"database/sql"

	"github.com/hoangson03112/VietXanh/internal/shared/database/dbgen"

	"github.com/google/uuid"
)

//go:generate mockgen -source=contact_repo.go -destination=../mock/contact/contact_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx dbgen.DBTX) Repository
	CreateMessage(ctx context.Context, arg dbgen.CreateContactMessageParams) (dbgen.ContactMessage, error)
	CreateItem(ctx context.Context, arg dbgen.CreateContactMessageItemParams) error
	List(ctx context.Context, arg dbgen.ListContactMessagesParams) ([]dbgen.ContactMessage, error)
	Count(ctx context.Context, status string) (int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (dbgen.ContactMessage, error)
	GetItems(ctx context.Context, contactMessageID uuid.UUID) ([]dbgen.ContactMessageItem, error)
	UpdateStatus(ctx context.Context, arg dbgen.UpdateContactMessageStatusParams) (dbgen.ContactMessage, error)
}

type repository struct {
	queries *dbgen.Queries
}

func NewRepository(q *dbgen.Queries) Repository {
	return &repository{queries: q}
}

func (r *repository) WithTx(tx dbgen.DBTX) Repository {
	if sqlTx, ok := tx.(*sql.Tx); ok {
		return &repository{
			queries: r.queries.WithTx(sqlTx),
		}
	}
	return r
}

func (r *repository) CreateMessage(ctx context.Context, arg dbgen.CreateContactMessageParams) (dbgen.ContactMessage, error) {
	return r.queries.CreateContactMessage(ctx, arg)
}

func (r *repository) CreateItem(ctx context.Context, arg dbgen.CreateContactMessageItemParams) error {
	return r.queries.CreateContactMessageItem(ctx, arg)
}

func (r *repository) List(ctx context.Context, arg dbgen.ListContactMessagesParams) ([]dbgen.ContactMessage, error) {
	return r.queries.ListContactMessages(ctx, arg)
}

func (r *repository) Count(ctx context.Context, status string) (int64, error) {
	return r.queries.CountContactMessages(ctx, status)
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (dbgen.ContactMessage, error) {
	return r.queries.GetContactMessageByID(ctx, id)
}

func (r *repository) GetItems(ctx context.Context, contactMessageID uuid.UUID) ([]dbgen.ContactMessageItem, error) {
	return r.queries.ListContactMessageItems(ctx, contactMessageID)
}

func (r *repository) UpdateStatus(ctx context.Context, arg dbgen.UpdateContactMessageStatusParams) (dbgen.ContactMessage, error) {
	return r.queries.UpdateContactMessageStatus(ctx, arg)
}
