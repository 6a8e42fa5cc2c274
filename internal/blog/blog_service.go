package blog

import (
	"context"
	"database/sql"
	"fmt"
	"mime/multipart"
	"time"

	blogerrors "github.com/hoangson03112/VietXanh/internal/blog/errors"
	"github.com/hoangson03112/VietXanh/internal/cloudinary"
	"github.com/hoangson03112/VietXanh/internal/shared/database/dbgen"
	"github.com/hoangson03112/VietXanh/internal/shared/database/helper"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const featuredLimit = 3

//go:generate mockgen -source=blog_service.go -destination=../mock/blog/blog_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, req ListRequest) ([]BlogResponse, int64, error)
	ListFeatured(ctx context.Context) ([]BlogResponse, error)
	Detail(ctx context.Context, blogID string) (BlogResponse, error)

	ListAll(ctx context.Context) ([]BlogResponse, error)
	Create(ctx context.Context, req CreateBlogRequest) (BlogResponse, error)
	Update(ctx context.Context, blogID string, req UpdateBlogRequest) (BlogResponse, error)
	ToggleActive(ctx context.Context, blogID string) (BlogResponse, error)
	Delete(ctx context.Context, blogID string) error
}

type service struct {
	repo          Repository
	cloudinarySvc cloudinary.Service
	logger        *zap.Logger
}

func NewService(repo Repository, cloudinarySvc cloudinary.Service, logger ...*zap.Logger) Service {
	l := zap.NewNop()
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("blog.service")
	}
	return &service{
		repo:          repo,
		cloudinarySvc: cloudinarySvc,
		logger:        l,
	}
}

func (s *service) parseBlogID(blogID string) (uuid.UUID, error) {
	id, err := uuid.Parse(blogID)
	if err != nil {
		return uuid.Nil, blogerrors.ErrInvalidBlogID
	}
	return id, nil
}

func toResponse(b dbgen.Blog) BlogResponse {
	return BlogResponse{
		ID:        b.ID.String(),
		Title:     b.Title,
		Content:   b.Content,
		Author:    b.Author,
		Img:       helper.NullToString(b.Img),
		Featured:  b.Featured,
		IsActive:  b.IsActive,
		CreatedAt: b.CreatedAt.Format(time.RFC3339),
		UpdatedAt: b.UpdatedAt.Format(time.RFC3339),
	}
}

func (s *service) List(ctx context.Context, req ListRequest) ([]BlogResponse, int64, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.Limit < 1 || req.Limit > 100 {
		req.Limit = 10
	}
	offset := (req.Page - 1) * req.Limit

	rows, err := s.repo.List(ctx, dbgen.ListBlogsParams{
		Limit:  int32(req.Limit),
		Offset: int32(offset),
	})
	if err != nil {
		return nil, 0, err
	}

	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	items := make([]BlogResponse, 0, len(rows))
	for _, row := range rows {
		items = append(items, toResponse(row))
	}
	return items, total, nil
}

func (s *service) ListFeatured(ctx context.Context) ([]BlogResponse, error) {
	rows, err := s.repo.ListFeatured(ctx, featuredLimit)
	if err != nil {
		return nil, err
	}

	items := make([]BlogResponse, 0, len(rows))
	for _, row := range rows {
		items = append(items, toResponse(row))
	}
	return items, nil
}

func (s *service) Detail(ctx context.Context, blogID string) (BlogResponse, error) {
	id, err := s.parseBlogID(blogID)
	if err != nil {
		return BlogResponse{}, err
	}

	row, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return BlogResponse{}, blogerrors.ErrBlogNotFound
		}
		return BlogResponse{}, err
	}
	// hidden posts are not served publicly
	if !row.IsActive {
		return BlogResponse{}, blogerrors.ErrBlogNotFound
	}
	return toResponse(row), nil
}

// ListAll is the admin listing: hidden posts included.
func (s *service) ListAll(ctx context.Context) ([]BlogResponse, error) {
	rows, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]BlogResponse, 0, len(rows))
	for _, row := range rows {
		items = append(items, toResponse(row))
	}
	return items, nil
}

func (s *service) uploadImage(ctx context.Context, header *multipart.FileHeader, slug string) (string, error) {
	file, err := header.Open()
	if err != nil {
		return "", blogerrors.ErrImageUploadFailed
	}
	defer file.Close()

	url, err := s.cloudinarySvc.UploadImage(ctx, file, fmt.Sprintf("blog-%s", slug))
	if err != nil {
		s.logger.Error("blog image upload failed", zap.String("filename", header.Filename), zap.Error(err))
		return "", blogerrors.ErrImageUploadFailed
	}
	return url, nil
}

func (s *service) Create(ctx context.Context, req CreateBlogRequest) (BlogResponse, error) {
	var img string
	if req.Image != nil {
		url, err := s.uploadImage(ctx, req.Image, uuid.NewString())
		if err != nil {
			return BlogResponse{}, err
		}
		img = url
	}

	row, err := s.repo.Create(ctx, dbgen.CreateBlogParams{
		Title:    req.Title,
		Content:  req.Content,
		Author:   req.Author,
		Img:      helper.StringToNull(img),
		Featured: req.Featured,
	})
	if err != nil {
		return BlogResponse{}, err
	}
	return toResponse(row), nil
}

func (s *service) Update(ctx context.Context, blogID string, req UpdateBlogRequest) (BlogResponse, error) {
	id, err := s.parseBlogID(blogID)
	if err != nil {
		return BlogResponse{}, err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return BlogResponse{}, blogerrors.ErrBlogNotFound
		}
		return BlogResponse{}, err
	}

	img := helper.NullToString(existing.Img)
	if req.Image != nil {
		url, err := s.uploadImage(ctx, req.Image, id.String())
		if err != nil {
			return BlogResponse{}, err
		}
		if old := helper.NullToString(existing.Img); old != "" {
			if publicID := cloudinary.ExtractPublicID(old); publicID != "" {
				if err := s.cloudinarySvc.DeleteImage(ctx, publicID); err != nil {
					s.logger.Warn("failed to delete replaced blog image", zap.String("url", old), zap.Error(err))
				}
			}
		}
		img = url
	}

	row, err := s.repo.Update(ctx, dbgen.UpdateBlogParams{
		ID:       id,
		Title:    req.Title,
		Content:  req.Content,
		Author:   req.Author,
		Img:      helper.StringToNull(img),
		Featured: req.Featured,
	})
	if err != nil {
		return BlogResponse{}, err
	}
	return toResponse(row), nil
}

// ToggleActive flips a post between shown and hidden on the public site.
func (s *service) ToggleActive(ctx context.Context, blogID string) (BlogResponse, error) {
	id, err := s.parseBlogID(blogID)
	if err != nil {
		return BlogResponse{}, err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return BlogResponse{}, blogerrors.ErrBlogNotFound
		}
		return BlogResponse{}, err
	}

	row, err := s.repo.SetActive(ctx, dbgen.SetBlogActiveParams{
		ID:       id,
		IsActive: !existing.IsActive,
	})
	if err != nil {
		return BlogResponse{}, err
	}

	s.logger.Info("blog visibility toggled",
		zap.String("blog_id", id.String()),
		zap.Bool("is_active", row.IsActive),
	)
	return toResponse(row), nil
}

func (s *service) Delete(ctx context.Context, blogID string) error {
	id, err := s.parseBlogID(blogID)
	if err != nil {
		return err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return blogerrors.ErrBlogNotFound
		}
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if img := helper.NullToString(existing.Img); img != "" {
		if publicID := cloudinary.ExtractPublicID(img); publicID != "" {
			if err := s.cloudinarySvc.DeleteImage(ctx, publicID); err != nil {
				s.logger.Warn("failed to delete blog image", zap.String("url", img), zap.Error(err))
			}
		}
	}
	return nil
}
