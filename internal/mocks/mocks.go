// Package mocks holds hand-written testify mocks for the service-layer
// interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/falvarado7/grubdash/internal/domain"
)

type DishRepository struct {
	mock.Mock
}

func (m *DishRepository) CreateDish(ctx context.Context, dish *domain.Dish) error {
	args := m.Called(ctx, dish)
	return args.Error(0)
}

func (m *DishRepository) ListDishes(ctx context.Context) ([]domain.Dish, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Dish), args.Error(1)
}

func (m *DishRepository) GetDish(ctx context.Context, dishID int) (*domain.Dish, error) {
	args := m.Called(ctx, dishID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Dish), args.Error(1)
}

func (m *DishRepository) UpdateDish(ctx context.Context, dish *domain.Dish) error {
	args := m.Called(ctx, dish)
	return args.Error(0)
}

func (m *DishRepository) DeleteDish(ctx context.Context, dishID int) error {
	args := m.Called(ctx, dishID)
	return args.Error(0)
}

type OrderRepository struct {
	mock.Mock
}

func (m *OrderRepository) CreateOrder(ctx context.Context, order *domain.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *OrderRepository) ListOrders(ctx context.Context) ([]domain.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *OrderRepository) GetOrder(ctx context.Context, orderID int) (*domain.Order, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *OrderRepository) ReplaceOrder(ctx context.Context, order *domain.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *OrderRepository) DeleteOrder(ctx context.Context, orderID int) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

type DishCache struct {
	mock.Mock
}

func (m *DishCache) GetDish(ctx context.Context, dishID int) (*domain.Dish, bool) {
	args := m.Called(ctx, dishID)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*domain.Dish), args.Bool(1)
}

func (m *DishCache) GetList(ctx context.Context) ([]domain.Dish, bool) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).([]domain.Dish), args.Bool(1)
}

func (m *DishCache) SetDish(ctx context.Context, dish *domain.Dish) {
	m.Called(ctx, dish)
}

func (m *DishCache) SetList(ctx context.Context, dishes []domain.Dish) {
	m.Called(ctx, dishes)
}

func (m *DishCache) Invalidate(ctx context.Context, dishID int) {
	m.Called(ctx, dishID)
}
