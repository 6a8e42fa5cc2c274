package blog_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/hoangson03112/VietXanh/internal/blog"
	blogerrors "github.com/hoangson03112/VietXanh/internal/blog/errors"
	blogMock "github.com/hoangson03112/VietXanh/internal/mock/blog"
	cloudinaryMock "github.com/hoangson03112/VietXanh/internal/mock/cloudinary"
	"github.com/hoangson03112/VietXanh/internal/shared/database/dbgen"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type blogServiceDeps struct {
	service    blog.Service
	repo       *blogMock.MockRepository
	cloudinary *cloudinaryMock.MockService
}

func setupBlogServiceTest(t *testing.T) *blogServiceDeps {
	t.Helper()

	ctrl := gomock.NewController(t)

	repo := blogMock.NewMockRepository(ctrl)
	cloudinary := cloudinaryMock.NewMockService(ctrl)

	return &blogServiceDeps{
		service:    blog.NewService(repo, cloudinary),
		repo:       repo,
		cloudinary: cloudinary,
	}
}

func sampleBlog(id uuid.UUID) dbgen.Blog {
	return dbgen.Blog{
		ID:        id,
		Title:     "Sống xanh mỗi ngày",
		Content:   "Bắt đầu từ chiếc túi đi chợ",
		Author:    "Admin",
		Img:       sql.NullString{String: "https://res.cloudinary.com/demo/image/upload/v1/vietxanh/blog-1.jpg", Valid: true},
		Featured:  true,
		IsActive:  true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func TestBlogService_List(t *testing.T) {
	deps := setupBlogServiceTest(t)
	ctx := context.Background()

	t.Run("positive - returns mapped rows with total", func(t *testing.T) {
		id := uuid.New()

		deps.repo.EXPECT().
			List(gomock.Any(), dbgen.ListBlogsParams{Limit: 10, Offset: 0}).
			Return([]dbgen.Blog{sampleBlog(id)}, nil)
		deps.repo.EXPECT().Count(gomock.Any()).Return(int64(7), nil)

		items, total, err := deps.service.List(ctx, blog.ListRequest{Page: 1, Limit: 10})

		assert.NoError(t, err)
		assert.Equal(t, int64(7), total)
		assert.Len(t, items, 1)
		assert.Equal(t, id.String(), items[0].ID)
		assert.Equal(t, "Sống xanh mỗi ngày", items[0].Title)
	})

	t.Run("positive - out-of-range paging falls back to defaults", func(t *testing.T) {
		deps.repo.EXPECT().
			List(gomock.Any(), dbgen.ListBlogsParams{Limit: 10, Offset: 0}).
			Return([]dbgen.Blog{}, nil)
		deps.repo.EXPECT().Count(gomock.Any()).Return(int64(0), nil)

		_, _, err := deps.service.List(ctx, blog.ListRequest{Page: -2, Limit: 500})
		assert.NoError(t, err)
	})

	t.Run("negative - repo failure propagates", func(t *testing.T) {
		deps.repo.EXPECT().
			List(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("db down"))

		_, _, err := deps.service.List(ctx, blog.ListRequest{Page: 1, Limit: 10})
		assert.Error(t, err)
	})
}

func TestBlogService_Detail(t *testing.T) {
	deps := setupBlogServiceTest(t)
	ctx := context.Background()

	t.Run("positive - found", func(t *testing.T) {
		id := uuid.New()
		deps.repo.EXPECT().GetByID(gomock.Any(), id).Return(sampleBlog(id), nil)

		res, err := deps.service.Detail(ctx, id.String())

		assert.NoError(t, err)
		assert.Equal(t, "Admin", res.Author)
	})

	t.Run("negative - invalid id", func(t *testing.T) {
		_, err := deps.service.Detail(ctx, "not-a-uuid")
		assert.ErrorIs(t, err, blogerrors.ErrInvalidBlogID)
	})

	t.Run("negative - not found", func(t *testing.T) {
		id := uuid.New()
		deps.repo.EXPECT().GetByID(gomock.Any(), id).Return(dbgen.Blog{}, sql.ErrNoRows)

		_, err := deps.service.Detail(ctx, id.String())
		assert.ErrorIs(t, err, blogerrors.ErrBlogNotFound)
	})

	t.Run("negative - hidden post reads as not found", func(t *testing.T) {
		id := uuid.New()
		hidden := sampleBlog(id)
		hidden.IsActive = false
		deps.repo.EXPECT().GetByID(gomock.Any(), id).Return(hidden, nil)

		_, err := deps.service.Detail(ctx, id.String())
		assert.ErrorIs(t, err, blogerrors.ErrBlogNotFound)
	})
}

func TestBlogService_ListAll(t *testing.T) {
	deps := setupBlogServiceTest(t)
	ctx := context.Background()

	t.Run("positive - hidden posts included", func(t *testing.T) {
		shown := sampleBlog(uuid.New())
		hidden := sampleBlog(uuid.New())
		hidden.IsActive = false

		deps.repo.EXPECT().ListAll(gomock.Any()).Return([]dbgen.Blog{shown, hidden}, nil)

		items, err := deps.service.ListAll(ctx)

		assert.NoError(t, err)
		assert.Len(t, items, 2)
		assert.True(t, items[0].IsActive)
		assert.False(t, items[1].IsActive)
	})

	t.Run("negative - repo failure propagates", func(t *testing.T) {
		deps.repo.EXPECT().ListAll(gomock.Any()).Return(nil, errors.New("db down"))

		_, err := deps.service.ListAll(ctx)
		assert.Error(t, err)
	})
}

func TestBlogService_ToggleActive(t *testing.T) {
	deps := setupBlogServiceTest(t)
	ctx := context.Background()

	t.Run("positive - hides a visible post", func(t *testing.T) {
		id := uuid.New()
		existing := sampleBlog(id)

		deps.repo.EXPECT().GetByID(gomock.Any(), id).Return(existing, nil)
		deps.repo.EXPECT().SetActive(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, arg dbgen.SetBlogActiveParams) (dbgen.Blog, error) {
				assert.False(t, arg.IsActive)
				updated := existing
				updated.IsActive = arg.IsActive
				return updated, nil
			},
		)

		res, err := deps.service.ToggleActive(ctx, id.String())

		assert.NoError(t, err)
		assert.False(t, res.IsActive)
	})

	t.Run("positive - shows a hidden post again", func(t *testing.T) {
		id := uuid.New()
		existing := sampleBlog(id)
		existing.IsActive = false

		deps.repo.EXPECT().GetByID(gomock.Any(), id).Return(existing, nil)
		deps.repo.EXPECT().SetActive(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, arg dbgen.SetBlogActiveParams) (dbgen.Blog, error) {
				assert.True(t, arg.IsActive)
				updated := existing
				updated.IsActive = arg.IsActive
				return updated, nil
			},
		)

		res, err := deps.service.ToggleActive(ctx, id.String())

		assert.NoError(t, err)
		assert.True(t, res.IsActive)
	})

	t.Run("negative - invalid id", func(t *testing.T) {
		_, err := deps.service.ToggleActive(ctx, "nope")
		assert.ErrorIs(t, err, blogerrors.ErrInvalidBlogID)
	})

	t.Run("negative - not found", func(t *testing.T) {
		id := uuid.New()
		deps.repo.EXPECT().GetByID(gomock.Any(), id).Return(dbgen.Blog{}, sql.ErrNoRows)

		_, err := deps.service.ToggleActive(ctx, id.String())
		assert.ErrorIs(t, err, blogerrors.ErrBlogNotFound)
	})
}

func TestBlogService_Create(t *testing.T) {
	deps := setupBlogServiceTest(t)
	ctx := context.Background()

	t.Run("positive - without image", func(t *testing.T) {
		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, arg dbgen.CreateBlogParams) (dbgen.Blog, error) {
				assert.Equal(t, "Sống xanh mỗi ngày", arg.Title)
				assert.False(t, arg.Img.Valid)
				return sampleBlog(uuid.New()), nil
			},
		)

		_, err := deps.service.Create(ctx, blog.CreateBlogRequest{
			Title:   "Sống xanh mỗi ngày",
			Content: "Bắt đầu từ chiếc túi đi chợ",
			Author:  "Admin",
		})
		assert.NoError(t, err)
	})

	t.Run("negative - repo failure propagates", func(t *testing.T) {
		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(dbgen.Blog{}, errors.New("db down"))

		_, err := deps.service.Create(ctx, blog.CreateBlogRequest{Title: "x", Content: "y", Author: "z"})
		assert.Error(t, err)
	})
}

func TestBlogService_Update(t *testing.T) {
	deps := setupBlogServiceTest(t)
	ctx := context.Background()

	t.Run("positive - without new image keeps current cover", func(t *testing.T) {
		id := uuid.New()
		existing := sampleBlog(id)

		deps.repo.EXPECT().GetByID(gomock.Any(), id).Return(existing, nil)
		deps.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, arg dbgen.UpdateBlogParams) (dbgen.Blog, error) {
				assert.Equal(t, existing.Img.String, arg.Img.String)
				return existing, nil
			},
		)

		_, err := deps.service.Update(ctx, id.String(), blog.UpdateBlogRequest{
			Title:   existing.Title,
			Content: existing.Content,
			Author:  existing.Author,
		})
		assert.NoError(t, err)
	})

	t.Run("negative - not found", func(t *testing.T) {
		id := uuid.New()
		deps.repo.EXPECT().GetByID(gomock.Any(), id).Return(dbgen.Blog{}, sql.ErrNoRows)

		_, err := deps.service.Update(ctx, id.String(), blog.UpdateBlogRequest{})
		assert.ErrorIs(t, err, blogerrors.ErrBlogNotFound)
	})
}

func TestBlogService_Delete(t *testing.T) {
	deps := setupBlogServiceTest(t)
	ctx := context.Background()

	t.Run("positive - removes row and cover image", func(t *testing.T) {
		id := uuid.New()
		existing := sampleBlog(id)

		deps.repo.EXPECT().GetByID(gomock.Any(), id).Return(existing, nil)
		deps.repo.EXPECT().Delete(gomock.Any(), id).Return(nil)
		deps.cloudinary.EXPECT().DeleteImage(gomock.Any(), "vietxanh/blog-1").Return(nil)

		assert.NoError(t, deps.service.Delete(ctx, id.String()))
	})

	t.Run("positive - image cleanup failure is tolerated", func(t *testing.T) {
		id := uuid.New()
		existing := sampleBlog(id)

		deps.repo.EXPECT().GetByID(gomock.Any(), id).Return(existing, nil)
		deps.repo.EXPECT().Delete(gomock.Any(), id).Return(nil)
		deps.cloudinary.EXPECT().DeleteImage(gomock.Any(), gomock.Any()).Return(errors.New("cloudinary down"))

		assert.NoError(t, deps.service.Delete(ctx, id.String()))
	})

	t.Run("negative - invalid id", func(t *testing.T) {
		err := deps.service.Delete(ctx, "nope")
		assert.ErrorIs(t, err, blogerrors.ErrInvalidBlogID)
	})
}
