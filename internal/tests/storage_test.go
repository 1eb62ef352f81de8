package tests

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/falvarado7/grubdash/internal/domain"
	"github.com/falvarado7/grubdash/internal/storage"
)

func newMockRepo(t *testing.T) (*storage.PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return storage.NewPostgresRepository(db), mock
}

func TestCreateDishAssignsID(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("INSERT INTO dishes").
		WithArgs("Taco", "Crunchy", "taco.png", 3).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))

	dish := &domain.Dish{Name: "Taco", Description: "Crunchy", ImageURL: "taco.png", Price: 3}
	err := repo.CreateDish(context.Background(), dish)

	require.NoError(t, err)
	assert.Equal(t, 42, dish.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetDishNotFoundMapped(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT id, name, description, image_url, price FROM dishes").
		WithArgs(999).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "image_url", "price"}))

	_, err := repo.GetDish(context.Background(), 999)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateDishNoRowsIsNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec("UPDATE dishes SET").
		WithArgs("Taco", "Crunchy", "taco.png", 3, 999).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateDish(context.Background(), &domain.Dish{
		ID: 999, Name: "Taco", Description: "Crunchy", ImageURL: "taco.png", Price: 3,
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteDishNoRowsIsNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec("DELETE FROM dishes").
		WithArgs(999).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteDish(context.Background(), 999)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateOrderSingleTransaction(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO orders").
		WithArgs("1 Main St", "555-0100", "pending").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectQuery("INSERT INTO order_dishes").
		WithArgs(7, "Taco", "Crunchy", "taco.png", 3, 2).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(100))
	mock.ExpectQuery("INSERT INTO order_dishes").
		WithArgs(7, "Soda", "Cold", "soda.png", 1, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(101))
	mock.ExpectCommit()

	order := &domain.Order{
		DeliverTo:    "1 Main St",
		MobileNumber: "555-0100",
		Status:       domain.StatusPending,
		Dishes: []domain.OrderDish{
			{Name: "Taco", Description: "Crunchy", ImageURL: "taco.png", Price: 3, Quantity: 2},
			{Name: "Soda", Description: "Cold", ImageURL: "soda.png", Price: 1, Quantity: 1},
		},
	}
	err := repo.CreateOrder(context.Background(), order)

	require.NoError(t, err)
	assert.Equal(t, 7, order.ID)
	assert.Equal(t, 100, order.Dishes[0].ID)
	assert.Equal(t, 101, order.Dishes[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateOrderRollsBackOnItemFailure(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO orders").
		WithArgs("1 Main St", "555-0100", "pending").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectQuery("INSERT INTO order_dishes").
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	order := &domain.Order{
		DeliverTo:    "1 Main St",
		MobileNumber: "555-0100",
		Status:       domain.StatusPending,
		Dishes:       []domain.OrderDish{{Name: "Taco", Price: 3, Quantity: 1}},
	}
	err := repo.CreateOrder(context.Background(), order)

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplaceOrderClearsThenReinserts(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE orders SET").
		WithArgs("2 Oak Ave", "555-0199", "preparing", 7).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM order_dishes").
		WithArgs(7).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectQuery("INSERT INTO order_dishes").
		WithArgs(7, "Burrito", "Burrito", "", 5, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(200))
	mock.ExpectCommit()

	order := &domain.Order{
		ID:           7,
		DeliverTo:    "2 Oak Ave",
		MobileNumber: "555-0199",
		Status:       domain.StatusPreparing,
		Dishes:       []domain.OrderDish{{Name: "Burrito", Description: "Burrito", Price: 5, Quantity: 1}},
	}
	err := repo.ReplaceOrder(context.Background(), order)

	require.NoError(t, err)
	assert.Equal(t, 200, order.Dishes[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplaceOrderNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE orders SET").
		WithArgs("1 Main St", "555-0100", "pending", 999).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.ReplaceOrder(context.Background(), &domain.Order{
		ID: 999, DeliverTo: "1 Main St", MobileNumber: "555-0100", Status: domain.StatusPending,
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetOrderLoadsLineItemsInOrder(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT id, deliver_to, mobile_number, status FROM orders").
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"id", "deliver_to", "mobile_number", "status"}).
			AddRow(7, "1 Main St", "555-0100", "pending"))
	mock.ExpectQuery("SELECT id, name, description, image_url, price, quantity").
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "image_url", "price", "quantity"}).
			AddRow(100, "Taco", "Crunchy", "taco.png", 3, 2).
			AddRow(101, "Soda", "Cold", "soda.png", 1, 1))

	order, err := repo.GetOrder(context.Background(), 7)

	require.NoError(t, err)
	require.Len(t, order.Dishes, 2)
	assert.Equal(t, "Taco", order.Dishes[0].Name)
	assert.Equal(t, "Soda", order.Dishes[1].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepoGetOrderNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT id, deliver_to, mobile_number, status FROM orders").
		WithArgs(999).
		WillReturnRows(sqlmock.NewRows([]string{"id", "deliver_to", "mobile_number", "status"}))

	_, err := repo.GetOrder(context.Background(), 999)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
