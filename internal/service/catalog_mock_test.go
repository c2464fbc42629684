package service_test

import (
	"context"

	"github.com/nikolayk812/cartkit/internal/domain"
	"github.com/stretchr/testify/mock"
)

type catalogMock struct {
	mock.Mock
}

func (m *catalogMock) GetProduct(ctx context.Context, name string) (domain.Product, error) {
	args := m.Called(ctx, name)
	if fn, ok := args.Get(0).(func(string) (domain.Product, error)); ok {
		return fn(name)
	}
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *catalogMock) SaveProducts(ctx context.Context, items []domain.Item) ([]domain.Product, error) {
	args := m.Called(ctx, items)
	products, _ := args.Get(0).([]domain.Product)
	return products, args.Error(1)
}

func (m *catalogMock) ListProducts(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	products, _ := args.Get(0).([]domain.Product)
	return products, args.Error(1)
}

func (m *catalogMock) DeleteProduct(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}
