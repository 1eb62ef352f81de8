package service

import (
	"context"
	"strings"

	"github.com/falvarado7/grubdash/internal/domain"
	"github.com/falvarado7/grubdash/internal/validation"
)

type DishRepository interface {
	CreateDish(ctx context.Context, dish *domain.Dish) error
	ListDishes(ctx context.Context) ([]domain.Dish, error)
	GetDish(ctx context.Context, dishID int) (*domain.Dish, error)
	UpdateDish(ctx context.Context, dish *domain.Dish) error
	DeleteDish(ctx context.Context, dishID int) error
}

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *domain.Order) error
	ListOrders(ctx context.Context) ([]domain.Order, error)
	GetOrder(ctx context.Context, orderID int) (*domain.Order, error)
	ReplaceOrder(ctx context.Context, order *domain.Order) error
	DeleteOrder(ctx context.Context, orderID int) error
}

// DishCache is an optional read-through cache for the catalog. A nil cache
// disables caching; cache errors fall back to the repository.
type DishCache interface {
	GetDish(ctx context.Context, dishID int) (*domain.Dish, bool)
	GetList(ctx context.Context) ([]domain.Dish, bool)
	SetDish(ctx context.Context, dish *domain.Dish)
	SetList(ctx context.Context, dishes []domain.Dish)
	Invalidate(ctx context.Context, dishID int)
}

type DishServiceInterface interface {
	Create(ctx context.Context, input domain.Dish) (*domain.Dish, error)
	List(ctx context.Context) ([]domain.Dish, error)
	Get(ctx context.Context, dishID int) (*domain.Dish, error)
	Update(ctx context.Context, dishID int, input domain.Dish) (*domain.Dish, error)
	Delete(ctx context.Context, dishID int) error
}

type OrderServiceInterface interface {
	Create(ctx context.Context, input domain.Order) (*domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
	Get(ctx context.Context, orderID int) (*domain.Order, error)
	Update(ctx context.Context, orderID int, input domain.Order) (*domain.Order, error)
	Delete(ctx context.Context, orderID int) error
}

type DishService struct {
	repo  DishRepository
	cache DishCache
}

func NewDishService(repo DishRepository, cache DishCache) *DishService {
	return &DishService{repo: repo, cache: cache}
}

func (s *DishService) Create(ctx context.Context, input domain.Dish) (*domain.Dish, error) {
	dish := domain.Dish{
		Name:        input.Name,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		Price:       input.Price,
	}

	if err := validation.Dish(&dish); err != nil {
		return nil, err
	}
	if err := s.repo.CreateDish(ctx, &dish); err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx, dish.ID)
	}
	return &dish, nil
}

func (s *DishService) List(ctx context.Context) ([]domain.Dish, error) {
	if s.cache != nil {
		if dishes, ok := s.cache.GetList(ctx); ok {
			return dishes, nil
		}
	}
	dishes, err := s.repo.ListDishes(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.SetList(ctx, dishes)
	}
	return dishes, nil
}

func (s *DishService) Get(ctx context.Context, dishID int) (*domain.Dish, error) {
	if s.cache != nil {
		if dish, ok := s.cache.GetDish(ctx, dishID); ok {
			return dish, nil
		}
	}
	dish, err := s.repo.GetDish(ctx, dishID)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.SetDish(ctx, dish)
	}
	return dish, nil
}

// Update overwrites every field of an existing dish and re-validates the
// result before committing, so a failing update leaves no partial write.
func (s *DishService) Update(ctx context.Context, dishID int, input domain.Dish) (*domain.Dish, error) {
	dish, err := s.repo.GetDish(ctx, dishID)
	if err != nil {
		return nil, err
	}

	dish.Name = input.Name
	dish.Description = input.Description
	dish.ImageURL = input.ImageURL
	dish.Price = input.Price

	if err := validation.Dish(dish); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateDish(ctx, dish); err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx, dishID)
	}
	return dish, nil
}

// Delete is unconditional: orders hold independent copies of dish fields,
// so removing a catalog dish never affects them.
func (s *DishService) Delete(ctx context.Context, dishID int) error {
	if err := s.repo.DeleteDish(ctx, dishID); err != nil {
		return err
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx, dishID)
	}
	return nil
}

var _ DishServiceInterface = (*DishService)(nil)

type OrderService struct {
	repo OrderRepository
}

func NewOrderService(repo OrderRepository) *OrderService {
	return &OrderService{repo: repo}
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// createItem normalizes a submitted line item for creation: blank name
// becomes "Item", blank description and image stay empty, quantity is
// clamped to at least 1.
func createItem(in domain.OrderDish) domain.OrderDish {
	name := in.Name
	if blank(name) {
		name = "Item"
	}
	quantity := in.Quantity
	if quantity < 1 {
		quantity = 1
	}
	return domain.OrderDish{
		Name:        name,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		Price:       in.Price,
		Quantity:    quantity,
	}
}

// updateItem normalizes a submitted line item for update. Unlike creation,
// a blank description falls back to the normalized name.
func updateItem(in domain.OrderDish) domain.OrderDish {
	item := createItem(in)
	if blank(item.Description) {
		item.Description = item.Name
	}
	if blank(item.ImageURL) {
		item.ImageURL = ""
	}
	return item
}

func (s *OrderService) Create(ctx context.Context, input domain.Order) (*domain.Order, error) {
	order := domain.Order{
		DeliverTo:    input.DeliverTo,
		MobileNumber: input.MobileNumber,
		Status:       input.Status,
		Dishes:       []domain.OrderDish{},
	}
	if blank(order.Status) {
		order.Status = domain.StatusPending
	}
	for _, d := range input.Dishes {
		order.Dishes = append(order.Dishes, createItem(d))
	}

	// Status is not checked on creation; callers may omit it.
	if err := validation.Order(&order, false); err != nil {
		return nil, err
	}
	if err := s.repo.CreateOrder(ctx, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *OrderService) List(ctx context.Context) ([]domain.Order, error) {
	return s.repo.ListOrders(ctx)
}

func (s *OrderService) Get(ctx context.Context, orderID int) (*domain.Order, error) {
	return s.repo.GetOrder(ctx, orderID)
}

// Update overwrites the order's scalar fields verbatim and fully replaces
// its line items with the submitted set. Status is validated against the
// enumeration here (a blank status is a failure, not a default), but any
// valid status may replace any other: transitions are unconstrained.
func (s *OrderService) Update(ctx context.Context, orderID int, input domain.Order) (*domain.Order, error) {
	order, err := s.repo.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	order.DeliverTo = input.DeliverTo
	order.MobileNumber = input.MobileNumber
	order.Status = input.Status

	order.Dishes = order.Dishes[:0]
	for _, d := range input.Dishes {
		order.Dishes = append(order.Dishes, updateItem(d))
	}

	// Validate after normalization: quantities are already clamped, so only
	// the scalar rules and the status enumeration can fail here.
	if err := validation.Order(order, true); err != nil {
		return nil, err
	}
	if err := s.repo.ReplaceOrder(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) Delete(ctx context.Context, orderID int) error {
	return s.repo.DeleteOrder(ctx, orderID)
}

var _ OrderServiceInterface = (*OrderService)(nil)
