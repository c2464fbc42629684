package service

import (
	"context"
	"fmt"

	"github.com/nikolayk812/cartkit/internal/domain"
	"github.com/nikolayk812/cartkit/internal/port"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// CartService fills in-memory carts from the product catalog.
type CartService struct {
	catalog port.CatalogRepository
	logger  zerolog.Logger
}

type Quote struct {
	Items []domain.Item
	Count int
	Total decimal.Decimal
}

func NewCartService(catalog port.CatalogRepository, logger zerolog.Logger) *CartService {
	return &CartService{
		catalog: catalog,
		logger:  logger.With().Str("component", "cart_service").Logger(),
	}
}

// BuildCart resolves every name in the catalog and adds the products to a
// new cart in the given order. Repeated names add the product repeatedly.
func (s *CartService) BuildCart(ctx context.Context, names ...string) (*domain.Cart, error) {
	cart := &domain.Cart{}

	for _, name := range names {
		product, err := s.catalog.GetProduct(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("catalog.GetProduct: %w", err)
		}

		if err := cart.Add(product.Item); err != nil {
			s.logger.Warn().Err(err).Str("product", name).Msg("product rejected")
			return nil, fmt.Errorf("cart.Add: %w", err)
		}

		s.logger.Debug().
			Str("product", name).
			Stringer("price", product.Price.Decimal).
			Msg("product added")
	}

	return cart, nil
}

func (s *CartService) Quote(ctx context.Context, names ...string) (Quote, error) {
	cart, err := s.BuildCart(ctx, names...)
	if err != nil {
		return Quote{}, fmt.Errorf("BuildCart: %w", err)
	}

	quote := Quote{
		Items: cart.Items(),
		Count: cart.Len(),
		Total: cart.Total(),
	}

	s.logger.Info().
		Int("count", quote.Count).
		Stringer("total", quote.Total).
		Msg("cart quoted")

	return quote, nil
}
