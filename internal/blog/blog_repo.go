package blog

import (
	"context"

	"github.com/hoangson03112/VietXanh/internal/shared/database/dbgen"

	"github.com/google/uuid"
)

//go:generate mockgen -source=blog_repo.go -destination=../mock/blog/blog_repo_mock.go -package=mock
type Repository interface {
	List(ctx context.Context, arg dbgen.ListBlogsParams) ([]dbgen.Blog, error)
	Count(ctx context.Context) (int64, error)
	ListAll(ctx context.Context) ([]dbgen.Blog, error)
	ListFeatured(ctx context.Context, limit int32) ([]dbgen.Blog, error)
	GetByID(ctx context.Context, id uuid.UUID) (dbgen.Blog, error)
	Create(ctx context.Context, arg dbgen.CreateBlogParams) (dbgen.Blog, error)
	Update(ctx context.Context, arg dbgen.UpdateBlogParams) (dbgen.Blog, error)
	SetActive(ctx context.Context, arg dbgen.SetBlogActiveParams) (dbgen.Blog, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	queries *dbgen.Queries
}

func NewRepository(q *dbgen.Queries) Repository {
	return &repository{queries: q}
}

func (r *repository) List(ctx context.Context, arg dbgen.ListBlogsParams) ([]dbgen.Blog, error) {
	return r.queries.ListBlogs(ctx, arg)
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	return r.queries.CountBlogs(ctx)
}

func (r *repository) ListAll(ctx context.Context) ([]dbgen.Blog, error) {
	return r.queries.ListAllBlogs(ctx)
}

func (r *repository) ListFeatured(ctx context.Context, limit int32) ([]dbgen.Blog, error) {
	return r.queries.ListFeaturedBlogs(ctx, limit)
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (dbgen.Blog, error) {
	return r.queries.GetBlogByID(ctx, id)
}

func (r *repository) Create(ctx context.Context, arg dbgen.CreateBlogParams) (dbgen.Blog, error) {
	return r.queries.CreateBlog(ctx, arg)
}

func (r *repository) Update(ctx context.Context, arg dbgen.UpdateBlogParams) (dbgen.Blog, error) {
	return r.queries.UpdateBlog(ctx, arg)
}

func (r *repository) SetActive(ctx context.Context, arg dbgen.SetBlogActiveParams) (dbgen.Blog, error) {
	return r.queries.SetBlogActive(ctx, arg)
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.queries.DeleteBlog(ctx, id)
}
