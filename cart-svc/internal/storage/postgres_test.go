package storage_test

import (
	"context"
	"testing"

	"overcooked-checkout/cart-svc/internal/storage"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRepo(t *testing.T) (*storage.PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return storage.NewPostgresRepository(db), mock
}

func TestPostgresRepository_GetCart(t *testing.T) {
	repo, mock := setupRepo(t)

	mock.ExpectQuery("SELECT c.id, c.customer_id").
		WithArgs("cust-1").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "customer_id", "restaurant_id", "tax", "platform_fee", "discount",
			"name", "profile_image_url", "address_street_1", "address_city", "address_state", "address_postal_code",
		}).AddRow("c-1", "cust-1", "r-1", "2.00", "0.99", "0.00",
			"Diner", "", "1 Main St", "Springfield", "IL", "62701"))
	mock.ExpectQuery("SELECT id, name, quantity, price_per_item").
		WithArgs("c-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "quantity", "price_per_item", "image_url"}).
			AddRow("a", "Burger", 2, "10.00", "").
			AddRow("b", "Fries", 1, "4.99", "http://img/b.png"))

	cart, err := repo.GetCart(context.Background(), "cust-1")

	require.NoError(t, err)
	assert.Equal(t, "r-1", cart.RestaurantID)
	assert.Equal(t, "r-1", cart.Restaurant.ID)
	assert.Equal(t, "Springfield", cart.Restaurant.AddressCity)
	require.Len(t, cart.MenuItems, 2)
	assert.Equal(t, "4.99", cart.MenuItems[1].PricePerItem.StringFixed(2))
	assert.Equal(t, "0.99", cart.Bill.PlatformFee.StringFixed(2))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_ListWorkingHours(t *testing.T) {
	repo, mock := setupRepo(t)

	mock.ExpectQuery("SELECT day, opens, closes").
		WithArgs("r-1").
		WillReturnRows(sqlmock.NewRows([]string{"day", "opens", "closes"}).
			AddRow("MONDAY", "09:00", "17:00").
			AddRow("TUESDAY", "09:00", "17:00"))

	hours, err := repo.ListWorkingHours(context.Background(), "r-1")

	require.NoError(t, err)
	assert.Len(t, hours, 2)
	assert.Equal(t, "TUESDAY", hours[1].Day)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_RestaurantExists(t *testing.T) {
	repo, mock := setupRepo(t)

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("r-1").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.RestaurantExists(context.Background(), "r-1")

	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureSchemaExecutesStatements(t *testing.T) {
	repo, mock := setupRepo(t)

	for _, table := range []string{"restaurants", "carts", "cart_items", "working_hours"} {
		mock.ExpectExec("CREATE TABLE IF NOT EXISTS " + table).
			WillReturnResult(sqlmock.NewResult(0, 0))
	}

	require.NoError(t, repo.EnsureSchema())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureSchemaStopsOnError(t *testing.T) {
	repo, mock := setupRepo(t)

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS restaurants").WillReturnError(assert.AnError)

	err := repo.EnsureSchema()
	assert.ErrorIs(t, err, assert.AnError)
}
