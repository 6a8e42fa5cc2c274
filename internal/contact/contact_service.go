package contact

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	contacterrors "github.com/hoangson03112/VietXanh/internal/contact/errors"
	"github.com/hoangson03112/VietXanh/internal/outbox"
	"github.com/hoangson03112/VietXanh/internal/shared/database/dbgen"
	"github.com/hoangson03112/VietXanh/internal/shared/database/helper"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	EventContactSubmitted = "contact.submitted"
	aggregateContact      = "contact_message"
)

var contactStatuses = map[string]struct{}{
	"NEW":      {},
	"READ":     {},
	"RESOLVED": {},
}

// OrderSubmittedPayload is the outbox event body consumed by the notification
// worker.
type OrderSubmittedPayload struct {
	ContactID    string  `json:"contact_id"`
	CustomerName string  `json:"customer_name"`
	Email        string  `json:"email"`
	ItemCount    int     `json:"item_count"`
	Total        float64 `json:"total"`
}

//go:generate mockgen -source=contact_service.go -destination=../mock/contact/contact_service_mock.go -package=mock
type Service interface {
	Submit(ctx context.Context, req SubmitRequest) (ContactResponse, error)
	Checkout(ctx context.Context, req CheckoutRequest) (ContactResponse, error)

	List(ctx context.Context, req ListRequest) ([]ContactResponse, int64, error)
	Detail(ctx context.Context, contactID string) (ContactResponse, error)
	UpdateStatus(ctx context.Context, contactID string, status string) (ContactResponse, error)
}

type service struct {
	db         *sql.DB
	repo       Repository
	outboxRepo outbox.Repository
	validate   *validator.Validate
	logger     *zap.Logger
}

type Deps struct {
	DB         *sql.DB
	Repo       Repository
	OutboxRepo outbox.Repository
	Logger     *zap.Logger
}

func NewService(deps Deps) Service {
	if deps.Repo == nil {
		panic("contact repository cannot be nil")
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	return &service{
		db:         deps.DB,
		repo:       deps.Repo,
		outboxRepo: deps.OutboxRepo,
		validate:   validator.New(),
		logger:     deps.Logger,
	}
}

func toResponse(m dbgen.ContactMessage) ContactResponse {
	return ContactResponse{
		ID:        m.ID.String(),
		Name:      m.Name,
		Email:     m.Email,
		Phone:     helper.NullToString(m.Phone),
		Address:   helper.NullToString(m.Address),
		Message:   helper.NullToString(m.Message),
		Status:    m.Status,
		CreatedAt: m.CreatedAt.Format(time.RFC3339),
	}
}

func messageParams(req SubmitRequest) dbgen.CreateContactMessageParams {
	return dbgen.CreateContactMessageParams{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   helper.StringToNull(req.Phone),
		Address: helper.StringToNull(req.Address),
		Message: helper.StringToNull(req.Message),
	}
}

func (s *service) Submit(ctx context.Context, req SubmitRequest) (ContactResponse, error) {
	row, err := s.repo.CreateMessage(ctx, messageParams(req))
	if err != nil {
		s.logger.Error("failed to save contact message", zap.Error(err))
		return ContactResponse{}, contacterrors.ErrSubmitFailed
	}
	return toResponse(row), nil
}

// Checkout stores the contact message together with the cart lines and queues
// a contact.submitted outbox event in the same transaction.
func (s *service) Checkout(ctx context.Context, req CheckoutRequest) (ContactResponse, error) {
	if len(req.Products) == 0 {
		return ContactResponse{}, contacterrors.ErrEmptyOrder
	}
	for _, line := range req.Products {
		if err := s.validate.Struct(line); err != nil {
			return ContactResponse{}, contacterrors.ErrInvalidOrderLine
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("failed to begin transaction", zap.Error(err))
		return ContactResponse{}, contacterrors.ErrSubmitFailed
	}

	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	qtx := s.repo.WithTx(tx)

	row, err := qtx.CreateMessage(ctx, messageParams(req.SubmitRequest))
	if err != nil {
		s.logger.Error("failed to save order message", zap.Error(err))
		return ContactResponse{}, contacterrors.ErrSubmitFailed
	}

	var total float64
	for _, line := range req.Products {
		err = qtx.CreateItem(ctx, dbgen.CreateContactMessageItemParams{
			ContactMessageID: row.ID,
			ProductID:        line.ProductID,
			NameSnapshot:     line.Name,
			ImageSnapshot:    helper.StringToNull(line.Image),
			UnitPrice:        helper.DecimalToNumeric(helper.Float64ToDecimalExact(line.Price)),
			Quantity:         int32(line.Quantity),
		})
		if err != nil {
			s.logger.Error("failed to save order line", zap.String("product_id", line.ProductID), zap.Error(err))
			return ContactResponse{}, contacterrors.ErrSubmitFailed
		}
		total += line.Price * float64(line.Quantity)
	}

	payload, _ := json.Marshal(OrderSubmittedPayload{
		ContactID:    row.ID.String(),
		CustomerName: row.Name,
		Email:        row.Email,
		ItemCount:    len(req.Products),
		Total:        total,
	})

	err = s.outboxRepo.WithTx(tx).CreateOutboxEvent(ctx, dbgen.CreateOutboxEventParams{
		AggregateType: aggregateContact,
		AggregateID:   row.ID,
		EventType:     EventContactSubmitted,
		Payload:       payload,
	})
	if err != nil {
		s.logger.Error("failed to create outbox event", zap.Error(err))
		return ContactResponse{}, contacterrors.ErrSubmitFailed
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("failed to commit transaction", zap.Error(err))
		return ContactResponse{}, contacterrors.ErrSubmitFailed
	}
	committed = true

	s.logger.Info("order submitted",
		zap.String("contact_id", row.ID.String()),
		zap.Int("items", len(req.Products)),
		zap.Float64("total", total),
	)

	resp := toResponse(row)
	resp.Total = total
	for _, line := range req.Products {
		resp.Items = append(resp.Items, OrderLineResponse{
			ProductID: line.ProductID,
			Name:      line.Name,
			Image:     line.Image,
			UnitPrice: line.Price,
			Quantity:  int32(line.Quantity),
		})
	}
	return resp, nil
}

func (s *service) List(ctx context.Context, req ListRequest) ([]ContactResponse, int64, error) {
	if req.Status != "" {
		if _, ok := contactStatuses[req.Status]; !ok {
			return nil, 0, contacterrors.ErrInvalidStatus
		}
	}
	if req.Page < 1 {
		req.Page = 1
	}
	if req.Limit < 1 || req.Limit > 100 {
		req.Limit = 20
	}
	offset := (req.Page - 1) * req.Limit

	rows, err := s.repo.List(ctx, dbgen.ListContactMessagesParams{
		Status: req.Status,
		Limit:  int32(req.Limit),
		Offset: int32(offset),
	})
	if err != nil {
		return nil, 0, err
	}

	total, err := s.repo.Count(ctx, req.Status)
	if err != nil {
		return nil, 0, err
	}

	items := make([]ContactResponse, 0, len(rows))
	for _, row := range rows {
		items = append(items, toResponse(row))
	}
	return items, total, nil
}

func (s *service) Detail(ctx context.Context, contactID string) (ContactResponse, error) {
	id, err := uuid.Parse(contactID)
	if err != nil {
		return ContactResponse{}, contacterrors.ErrInvalidContactID
	}

	row, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return ContactResponse{}, contacterrors.ErrContactNotFound
		}
		return ContactResponse{}, err
	}

	lines, err := s.repo.GetItems(ctx, id)
	if err != nil {
		return ContactResponse{}, err
	}

	resp := toResponse(row)
	for _, line := range lines {
		price := helper.NumericToFloat64(line.UnitPrice)
		resp.Items = append(resp.Items, OrderLineResponse{
			ProductID: line.ProductID,
			Name:      line.NameSnapshot,
			Image:     helper.NullToString(line.ImageSnapshot),
			UnitPrice: price,
			Quantity:  line.Quantity,
		})
		resp.Total += price * float64(line.Quantity)
	}
	return resp, nil
}

func (s *service) UpdateStatus(ctx context.Context, contactID string, status string) (ContactResponse, error) {
	id, err := uuid.Parse(contactID)
	if err != nil {
		return ContactResponse{}, contacterrors.ErrInvalidContactID
	}
	if _, ok := contactStatuses[status]; !ok {
		return ContactResponse{}, contacterrors.ErrInvalidStatus
	}

	row, err := s.repo.UpdateStatus(ctx, dbgen.UpdateContactMessageStatusParams{
		ID:     id,
		Status: status,
	})
	if err != nil {
		if err == sql.ErrNoRows {
			return ContactResponse{}, contacterrors.ErrContactNotFound
		}
		return ContactResponse{}, err
	}
	return toResponse(row), nil
}
