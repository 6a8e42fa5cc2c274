package product

import (
	"context"

	"github.com/hoangson03112/VietXanh/internal/shared/database/dbgen"

	"github.com/google/uuid"
)

//go:generate mockgen -source=product_repo.go -destination=../mock/product/product_repo_mock.go -package=mock
type Repository interface {
	List(ctx context.Context, arg dbgen.ListProductsParams) ([]dbgen.Product, error)
	Count(ctx context.Context, search string) (int64, error)
	ListAll(ctx context.Context) ([]dbgen.Product, error)
	ListFeatured(ctx context.Context, limit int32) ([]dbgen.Product, error)
	CountFeatured(ctx context.Context) (int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (dbgen.Product, error)
	Create(ctx context.Context, arg dbgen.CreateProductParams) (dbgen.Product, error)
	Update(ctx context.Context, arg dbgen.UpdateProductParams) (dbgen.Product, error)
	SetVisibility(ctx context.Context, arg dbgen.SetProductVisibilityParams) (dbgen.Product, error)
	SetFeatured(ctx context.Context, arg dbgen.SetProductFeaturedParams) (dbgen.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	queries *dbgen.Queries
}

func NewRepository(q *dbgen.Queries) Repository {
	return &repository{queries: q}
}

func (r *repository) List(ctx context.Context, arg dbgen.ListProductsParams) ([]dbgen.Product, error) {
	return r.queries.ListProducts(ctx, arg)
}

func (r *repository) Count(ctx context.Context, search string) (int64, error) {
	return r.queries.CountProducts(ctx, search)
}

func (r *repository) ListAll(ctx context.Context) ([]dbgen.Product, error) {
	return r.queries.ListAllProducts(ctx)
}

func (r *repository) ListFeatured(ctx context.Context, limit int32) ([]dbgen.Product, error) {
	return r.queries.ListFeaturedProducts(ctx, limit)
}

func (r *repository) CountFeatured(ctx context.Context) (int64, error) {
	return r.queries.CountFeaturedProducts(ctx)
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (dbgen.Product, error) {
	return r.queries.GetProductByID(ctx, id)
}

func (r *repository) Create(ctx context.Context, arg dbgen.CreateProductParams) (dbgen.Product, error) {
	return r.queries.CreateProduct(ctx, arg)
}

func (r *repository) Update(ctx context.Context, arg dbgen.UpdateProductParams) (dbgen.Product, error) {
	return r.queries.UpdateProduct(ctx, arg)
}

func (r *repository) SetVisibility(ctx context.Context, arg dbgen.SetProductVisibilityParams) (dbgen.Product, error) {
	return r.queries.SetProductVisibility(ctx, arg)
}

func (r *repository) SetFeatured(ctx context.Context, arg dbgen.SetProductFeaturedParams) (dbgen.Product, error) {
	return r.queries.SetProductFeatured(ctx, arg)
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.queries.DeleteProduct(ctx, id)
}
