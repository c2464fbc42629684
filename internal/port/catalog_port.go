package port

import (
	"context"
	"errors"

	"github.com/nikolayk812/cartkit/internal/domain"
)

var ErrProductNotFound = errors.New("product not found")

type CatalogRepository interface {
	GetProduct(ctx context.Context, name string) (domain.Product, error)
	SaveProducts(ctx context.Context, items []domain.Item) ([]domain.Product, error)
	// ListProducts returns products in the order they were first saved.
	ListProducts(ctx context.Context) ([]domain.Product, error)
	DeleteProduct(ctx context.Context, name string) (bool, error)
}
