package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/cartkit/internal/db"
	"github.com/nikolayk812/cartkit/internal/domain"
	"github.com/nikolayk812/cartkit/internal/port"
)

type catalogRepository struct {
	q    *db.Queries
	pool *pgxpool.Pool
}

func NewCatalog(pool *pgxpool.Pool) port.CatalogRepository {
	return &catalogRepository{
		q:    db.New(pool),
		pool: pool,
	}
}

func NewCatalogWithTx(tx pgx.Tx) port.CatalogRepository {
	return &catalogRepository{
		q:    db.New(tx),
		pool: nil, // use provided transaction instead
	}
}

func (r *catalogRepository) GetProduct(ctx context.Context, name string) (domain.Product, error) {
	if name == "" {
		return domain.Product{}, fmt.Errorf("name is empty")
	}

	row, err := r.q.GetProduct(ctx, name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Product{}, fmt.Errorf("product[%s]: %w", name, port.ErrProductNotFound)
		}
		return domain.Product{}, fmt.Errorf("q.GetProduct: %w", err)
	}

	return mapProductToDomain(row), nil
}

func (r *catalogRepository) SaveProducts(ctx context.Context, items []domain.Item) ([]domain.Product, error) {
	for _, item := range items {
		if item.Name == "" {
			return nil, fmt.Errorf("name is empty")
		}
	}

	products := make([]domain.Product, 0, len(items))

	err := r.inTx(ctx, func(q *db.Queries) error {
		for _, item := range items {
			row, err := q.UpsertProduct(ctx, db.UpsertProductParams{
				ID:    uuid.New(),
				Name:  item.Name,
				Price: item.Price,
			})
			if err != nil {
				return fmt.Errorf("q.UpsertProduct: %w", err)
			}

			products = append(products, mapProductToDomain(row))
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("inTx: %w", err)
	}

	return products, nil
}

func (r *catalogRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.q.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("q.ListProducts: %w", err)
	}

	return mapProductsToDomain(rows), nil
}

func (r *catalogRepository) DeleteProduct(ctx context.Context, name string) (bool, error) {
	if name == "" {
		return false, fmt.Errorf("name is empty")
	}

	rowsAffected, err := r.q.DeleteProduct(ctx, name)
	if err != nil {
		return false, fmt.Errorf("q.DeleteProduct: %w", err)
	}

	return rowsAffected > 0, nil
}

func mapProductToDomain(row db.CatalogProduct) domain.Product {
	return domain.Product{
		ID: row.ID,
		Item: domain.Item{
			Name:  row.Name,
			Price: row.Price,
		},
		CreatedAt: row.CreatedAt,
	}
}

func mapProductsToDomain(rows []db.CatalogProduct) []domain.Product {
	products := make([]domain.Product, 0, len(rows))

	for _, row := range rows {
		products = append(products, mapProductToDomain(row))
	}

	return products
}
