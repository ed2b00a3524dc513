package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ransara-lk/supermarket-api/internal/domain/entity"
	"github.com/ransara-lk/supermarket-api/internal/domain/repository"
)

var _ repository.CartRepository = (*CartRepo)(nil)

// CartRepo implementación de CartRepository sobre PostgreSQL
// (usable con pool o tx).
type CartRepo struct {
	q Querier
}

// NewCartRepository construye el adaptador del carrito.
func NewCartRepository(q Querier) *CartRepo {
	return &CartRepo{q: q}
}

// GetByUser obtiene el carrito del usuario con sus items, o nil si no existe.
func (r *CartRepo) GetByUser(userID string) (*entity.Cart, error) {
	query := `SELECT id, user_id, created_at, updated_at FROM carts WHERE user_id = $1`
	var c entity.Cart
	err := r.q.QueryRow(context.Background(), query, userID).Scan(
		&c.ID, &c.UserID, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cart: %w", err)
	}

	itemsQuery := `
		SELECT id, cart_id, product_id, quantity
		FROM cart_items WHERE cart_id = $1
		ORDER BY id`
	rows, err := r.q.Query(context.Background(), itemsQuery, c.ID)
	if err != nil {
		return nil, fmt.Errorf("list cart items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var it entity.CartItem
		if err := rows.Scan(&it.ID, &it.CartID, &it.ProductID, &it.Quantity); err != nil {
			return nil, fmt.Errorf("scan cart item: %w", err)
		}
		c.Items = append(c.Items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Create inserta un carrito nuevo. user_id es único: un carrito por usuario.
func (r *CartRepo) Create(cart *entity.Cart) error {
	query := `
		INSERT INTO carts (id, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $3)`
	_, err := r.q.Exec(context.Background(), query, cart.ID, cart.UserID, cart.CreatedAt)
	if err != nil {
		return fmt.Errorf("create cart: %w", err)
	}
	return nil
}

// GetItem obtiene un item del carrito por producto, o nil si no existe.
func (r *CartRepo) GetItem(cartID, productID string) (*entity.CartItem, error) {
	query := `
		SELECT id, cart_id, product_id, quantity
		FROM cart_items WHERE cart_id = $1 AND product_id = $2`
	var it entity.CartItem
	err := r.q.QueryRow(context.Background(), query, cartID, productID).Scan(
		&it.ID, &it.CartID, &it.ProductID, &it.Quantity,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cart item: %w", err)
	}
	return &it, nil
}

// CreateItem inserta un item en el carrito.
func (r *CartRepo) CreateItem(item *entity.CartItem) error {
	query := `
		INSERT INTO cart_items (id, cart_id, product_id, quantity)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query, item.ID, item.CartID, item.ProductID, item.Quantity)
	if err != nil {
		return fmt.Errorf("create cart item: %w", err)
	}
	return nil
}

// UpdateItemQuantity fija la cantidad de un item.
func (r *CartRepo) UpdateItemQuantity(itemID string, quantity int64) error {
	query := `UPDATE cart_items SET quantity = $2 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, itemID, quantity)
	if err != nil {
		return fmt.Errorf("update cart item: %w", err)
	}
	return nil
}

// DeleteItem elimina un item del carrito.
func (r *CartRepo) DeleteItem(itemID string) error {
	query := `DELETE FROM cart_items WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, itemID)
	if err != nil {
		return fmt.Errorf("delete cart item: %w", err)
	}
	return nil
}

// Delete elimina el carrito; los items caen por ON DELETE CASCADE.
func (r *CartRepo) Delete(cartID string) error {
	query := `DELETE FROM carts WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, cartID)
	if err != nil {
		return fmt.Errorf("delete cart: %w", err)
	}
	return nil
}
