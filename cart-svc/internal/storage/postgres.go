package storage

import (
	"context"
	"database/sql"
	"fmt"

	"overcooked-checkout/cart-svc/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

// GetCart loads the customer's most recent cart with its restaurant. Bill
// amounts other than gross are stored on the cart row.
func (r *PostgresRepository) GetCart(ctx context.Context, customerID string) (*domain.Cart, error) {
	var cart domain.Cart
	rest := &cart.Restaurant
	err := r.DB.QueryRowContext(ctx, `
		SELECT c.id, c.customer_id, c.restaurant_id, c.tax, c.platform_fee, c.discount,
		       r.name, COALESCE(r.profile_image_url, ''), COALESCE(r.address_street_1, ''),
		       COALESCE(r.address_city, ''), COALESCE(r.address_state, ''), COALESCE(r.address_postal_code, '')
		FROM carts c
		JOIN restaurants r ON r.id = c.restaurant_id
		WHERE c.customer_id = $1
		ORDER BY c.updated_at DESC
		LIMIT 1`, customerID).
		Scan(&cart.ID, &cart.CustomerID, &cart.RestaurantID, &cart.Bill.Tax, &cart.Bill.PlatformFee, &cart.Bill.Discount,
			&rest.Name, &rest.ProfileImageURL, &rest.AddressStreet1, &rest.AddressCity, &rest.AddressState, &rest.AddressPostal)
	if err != nil {
		return nil, err
	}
	rest.ID = cart.RestaurantID

	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, name, quantity, price_per_item, COALESCE(image_url, '')
		FROM cart_items
		WHERE cart_id = $1
		ORDER BY position`, cart.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cart.MenuItems = []domain.CartItem{}
	for rows.Next() {
		var item domain.CartItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Quantity, &item.PricePerItem, &item.ImageURL); err != nil {
			return nil, err
		}
		cart.MenuItems = append(cart.MenuItems, item)
	}
	return &cart, rows.Err()
}

func (r *PostgresRepository) ListWorkingHours(ctx context.Context, restaurantID string) ([]domain.WorkingHour, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT day, opens, closes
		FROM working_hours
		WHERE restaurant_id = $1
		ORDER BY day_index`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	hours := []domain.WorkingHour{}
	for rows.Next() {
		var h domain.WorkingHour
		if err := rows.Scan(&h.Day, &h.Opens, &h.Closes); err != nil {
			return nil, err
		}
		hours = append(hours, h)
	}
	return hours, rows.Err()
}

func (r *PostgresRepository) RestaurantExists(ctx context.Context, restaurantID string) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM restaurants WHERE id = $1)", restaurantID).Scan(&exists)
	return exists, err
}

func (r *PostgresRepository) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS restaurants (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			profile_image_url TEXT,
			address_street_1 TEXT,
			address_city TEXT,
			address_state TEXT,
			address_postal_code TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS carts (
			id TEXT PRIMARY KEY,
			customer_id TEXT NOT NULL,
			restaurant_id TEXT NOT NULL REFERENCES restaurants(id),
			tax NUMERIC(10,2) NOT NULL DEFAULT 0,
			platform_fee NUMERIC(10,2) NOT NULL DEFAULT 0,
			discount NUMERIC(10,2) NOT NULL DEFAULT 0,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS cart_items (
			id TEXT PRIMARY KEY,
			cart_id TEXT NOT NULL REFERENCES carts(id) ON DELETE CASCADE,
			position INT NOT NULL DEFAULT 0,
			name TEXT NOT NULL,
			quantity INT NOT NULL CHECK (quantity > 0),
			price_per_item NUMERIC(10,2) NOT NULL,
			image_url TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS working_hours (
			restaurant_id TEXT NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
			day TEXT NOT NULL,
			day_index INT NOT NULL,
			opens TEXT NOT NULL,
			closes TEXT NOT NULL,
			PRIMARY KEY (restaurant_id, day)
		)`,
	}
	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema `%s`: %w", stmt, err)
		}
	}
	return nil
}
