package product

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/hoangson03112/VietXanh/internal/cloudinary"
	producterrors "github.com/hoangson03112/VietXanh/internal/product/errors"
	"github.com/hoangson03112/VietXanh/internal/shared/database/dbgen"
	"github.com/hoangson03112/VietXanh/internal/shared/database/helper"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// The storefront home page shows at most 4 featured products; toggling
// featured on a 5th is rejected.
const featuredLimit = 4

//go:generate mockgen -source=product_service.go -destination=../mock/product/product_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, req ListRequest) ([]ProductResponse, int64, error)
	ListFeatured(ctx context.Context) ([]ProductResponse, error)
	Detail(ctx context.Context, productID string) (ProductResponse, error)

	ListAll(ctx context.Context) ([]ProductResponse, error)
	Create(ctx context.Context, req CreateProductRequest) (ProductResponse, error)
	Update(ctx context.Context, productID string, req UpdateProductRequest) (ProductResponse, error)
	ToggleActive(ctx context.Context, productID string) (ProductResponse, error)
	ToggleFeatured(ctx context.Context, productID string) (ProductResponse, error)
	Delete(ctx context.Context, productID string) error
}

type service struct {
	repo          Repository
	cloudinarySvc cloudinary.Service
	logger        *zap.Logger
}

func NewService(repo Repository, cloudinarySvc cloudinary.Service, logger ...*zap.Logger) Service {
	l := zap.NewNop()
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("product.service")
	}
	return &service{
		repo:          repo,
		cloudinarySvc: cloudinarySvc,
		logger:        l,
	}
}

func (s *service) parseProductID(productID string) (uuid.UUID, error) {
	id, err := uuid.Parse(productID)
	if err != nil {
		return uuid.Nil, producterrors.ErrInvalidProductID
	}
	return id, nil
}

func toResponse(p dbgen.Product) ProductResponse {
	images := p.Images
	if images == nil {
		images = []string{}
	}
	return ProductResponse{
		ID:          p.ID.String(),
		Name:        p.Name,
		Description: helper.NullToString(p.Description),
		Price:       helper.NumericToFloat64(p.Price),
		Stock:       p.Stock,
		Images:      images,
		Featured:    p.Featured,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   p.UpdatedAt.Format(time.RFC3339),
	}
}

func (s *service) List(ctx context.Context, req ListRequest) ([]ProductResponse, int64, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.Limit < 1 || req.Limit > 100 {
		req.Limit = 20
	}
	offset := (req.Page - 1) * req.Limit

	rows, err := s.repo.List(ctx, dbgen.ListProductsParams{
		Search: req.Search,
		Limit:  int32(req.Limit),
		Offset: int32(offset),
	})
	if err != nil {
		return nil, 0, err
	}

	total, err := s.repo.Count(ctx, req.Search)
	if err != nil {
		return nil, 0, err
	}

	items := make([]ProductResponse, 0, len(rows))
	for _, row := range rows {
		items = append(items, toResponse(row))
	}
	return items, total, nil
}

func (s *service) ListFeatured(ctx context.Context) ([]ProductResponse, error) {
	rows, err := s.repo.ListFeatured(ctx, featuredLimit)
	if err != nil {
		return nil, err
	}

	items := make([]ProductResponse, 0, len(rows))
	for _, row := range rows {
		items = append(items, toResponse(row))
	}
	return items, nil
}

func (s *service) Detail(ctx context.Context, productID string) (ProductResponse, error) {
	id, err := s.parseProductID(productID)
	if err != nil {
		return ProductResponse{}, err
	}

	row, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return ProductResponse{}, producterrors.ErrProductNotFound
		}
		return ProductResponse{}, err
	}
	// hidden products are not served on the public detail page
	if !row.IsActive {
		return ProductResponse{}, producterrors.ErrProductNotFound
	}
	return toResponse(row), nil
}

// ListAll is the admin listing: hidden products included.
func (s *service) ListAll(ctx context.Context) ([]ProductResponse, error) {
	rows, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]ProductResponse, 0, len(rows))
	for _, row := range rows {
		items = append(items, toResponse(row))
	}
	return items, nil
}

func (s *service) Create(ctx context.Context, req CreateProductRequest) (ProductResponse, error) {
	if req.Price < 0 {
		return ProductResponse{}, producterrors.ErrInvalidPrice
	}

	urls := make([]string, 0, len(req.Images))
	for i, header := range req.Images {
		file, err := header.Open()
		if err != nil {
			return ProductResponse{}, producterrors.ErrImageUploadFailed
		}

		url, err := s.cloudinarySvc.UploadImage(ctx, file, fmt.Sprintf("product-%s-%d", uuid.NewString(), i))
		file.Close()
		if err != nil {
			s.logger.Error("image upload failed", zap.String("filename", header.Filename), zap.Error(err))
			return ProductResponse{}, producterrors.ErrImageUploadFailed
		}
		urls = append(urls, url)
	}

	row, err := s.repo.Create(ctx, dbgen.CreateProductParams{
		Name:        req.Name,
		Description: helper.StringToNull(req.Description),
		Price:       helper.DecimalToNumeric(helper.Float64ToDecimalExact(req.Price)),
		Stock:       req.Stock,
		Images:      urls,
		Featured:    req.Featured,
	})
	if err != nil {
		return ProductResponse{}, err
	}
	return toResponse(row), nil
}

func (s *service) Update(ctx context.Context, productID string, req UpdateProductRequest) (ProductResponse, error) {
	id, err := s.parseProductID(productID)
	if err != nil {
		return ProductResponse{}, err
	}
	if req.Price < 0 {
		return ProductResponse{}, producterrors.ErrInvalidPrice
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return ProductResponse{}, producterrors.ErrProductNotFound
		}
		return ProductResponse{}, err
	}

	urls := append([]string{}, req.KeptImage...)
	for i, header := range req.Images {
		file, err := header.Open()
		if err != nil {
			return ProductResponse{}, producterrors.ErrImageUploadFailed
		}

		url, err := s.cloudinarySvc.UploadImage(ctx, file, fmt.Sprintf("product-%s-%d", id.String(), i))
		file.Close()
		if err != nil {
			return ProductResponse{}, producterrors.ErrImageUploadFailed
		}
		urls = append(urls, url)
	}

	// best-effort cleanup of images the admin dropped
	kept := make(map[string]struct{}, len(req.KeptImage))
	for _, u := range req.KeptImage {
		kept[u] = struct{}{}
	}
	for _, old := range existing.Images {
		if _, ok := kept[old]; ok {
			continue
		}
		if publicID := cloudinary.ExtractPublicID(old); publicID != "" {
			if err := s.cloudinarySvc.DeleteImage(ctx, publicID); err != nil {
				s.logger.Warn("failed to delete replaced image", zap.String("url", old), zap.Error(err))
			}
		}
	}

	row, err := s.repo.Update(ctx, dbgen.UpdateProductParams{
		ID:          id,
		Name:        req.Name,
		Description: helper.StringToNull(req.Description),
		Price:       helper.DecimalToNumeric(helper.Float64ToDecimalExact(req.Price)),
		Stock:       req.Stock,
		Images:      urls,
		Featured:    req.Featured,
	})
	if err != nil {
		return ProductResponse{}, err
	}
	return toResponse(row), nil
}

// ToggleActive flips a product between shown and hidden. Hiding also drops the
// featured flag so the home page never advertises a product the customer
// cannot open.
func (s *service) ToggleActive(ctx context.Context, productID string) (ProductResponse, error) {
	id, err := s.parseProductID(productID)
	if err != nil {
		return ProductResponse{}, err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return ProductResponse{}, producterrors.ErrProductNotFound
		}
		return ProductResponse{}, err
	}

	active := !existing.IsActive
	row, err := s.repo.SetVisibility(ctx, dbgen.SetProductVisibilityParams{
		ID:       id,
		IsActive: active,
		Featured: existing.Featured && active,
	})
	if err != nil {
		return ProductResponse{}, err
	}

	s.logger.Info("product visibility toggled",
		zap.String("product_id", id.String()),
		zap.Bool("is_active", row.IsActive),
	)
	return toResponse(row), nil
}

func (s *service) ToggleFeatured(ctx context.Context, productID string) (ProductResponse, error) {
	id, err := s.parseProductID(productID)
	if err != nil {
		return ProductResponse{}, err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return ProductResponse{}, producterrors.ErrProductNotFound
		}
		return ProductResponse{}, err
	}

	if !existing.Featured {
		if !existing.IsActive {
			return ProductResponse{}, producterrors.ErrFeatureInactive
		}
		count, err := s.repo.CountFeatured(ctx)
		if err != nil {
			return ProductResponse{}, err
		}
		if count >= featuredLimit {
			return ProductResponse{}, producterrors.ErrFeaturedLimit
		}
	}

	row, err := s.repo.SetFeatured(ctx, dbgen.SetProductFeaturedParams{
		ID:       id,
		Featured: !existing.Featured,
	})
	if err != nil {
		return ProductResponse{}, err
	}
	return toResponse(row), nil
}

func (s *service) Delete(ctx context.Context, productID string) error {
	id, err := s.parseProductID(productID)
	if err != nil {
		return err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return producterrors.ErrProductNotFound
		}
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	for _, img := range existing.Images {
		if publicID := cloudinary.ExtractPublicID(img); publicID != "" {
			if err := s.cloudinarySvc.DeleteImage(ctx, publicID); err != nil {
				s.logger.Warn("failed to delete product image", zap.String("url", img), zap.Error(err))
			}
		}
	}
	return nil
}
