package checkout

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ransara-lk/supermarket-api/internal/application/dto"
	"github.com/ransara-lk/supermarket-api/internal/domain"
	"github.com/ransara-lk/supermarket-api/internal/domain/entity"
	"github.com/ransara-lk/supermarket-api/internal/domain/repository"
)

// CheckoutUseCase convierte el carrito activo de un usuario en una orden
// pagada. Todo el flujo (crear orden, congelar precios, borrar carrito)
// ocurre en una sola transacción.
type CheckoutUseCase struct {
	txRunner  TxRunner
	cartRepo  repository.CartRepository
	orderRepo repository.OrderRepository
}

// NewCheckoutUseCase crea el caso de uso de checkout.
func NewCheckoutUseCase(txRunner TxRunner, cartRepo repository.CartRepository, orderRepo repository.OrderRepository) *CheckoutUseCase {
	return &CheckoutUseCase{txRunner: txRunner, cartRepo: cartRepo, orderRepo: orderRepo}
}

// Checkout crea la orden a partir del carrito del usuario. El carrito vacío
// o inexistente es un error de negocio, no un estado válido de checkout.
func (uc *CheckoutUseCase) Checkout(ctx context.Context, userID string) (*dto.CheckoutResponse, error) {
	var orderID string

	err := uc.txRunner.RunCheckout(ctx, func(
		cartRepo repository.CartRepository,
		orderRepo repository.OrderRepository,
		productRepo repository.ProductRepository,
	) error {
		cart, err := cartRepo.GetByUser(userID)
		if err != nil {
			return err
		}
		if cart == nil || len(cart.Items) == 0 {
			return domain.ErrEmptyCart
		}

		now := time.Now().UTC()
		order := &entity.Order{
			ID:             uuid.NewString(),
			UserID:         userID,
			TotalAmount:    decimal.Zero,
			CurrentStatus:  entity.OrderStatusPaid,
			DeliveryMethod: entity.DeliveryMethodPickup,
			CreatedAt:      now,
		}

		total := decimal.Zero
		items := make([]entity.OrderItem, 0, len(cart.Items))
		for _, ci := range cart.Items {
			product, err := productRepo.GetByID(ci.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return fmt.Errorf("producto %s del carrito: %w", ci.ProductID, domain.ErrNotFound)
			}
			items = append(items, entity.OrderItem{
				ID:              uuid.NewString(),
				OrderID:         order.ID,
				ProductID:       ci.ProductID,
				Quantity:        ci.Quantity,
				PriceAtPurchase: product.DefaultPrice,
			})
			total = total.Add(product.DefaultPrice.Mul(decimal.NewFromInt(ci.Quantity)))
		}
		order.TotalAmount = total

		if err := orderRepo.Create(order); err != nil {
			return err
		}
		for i := range items {
			if err := orderRepo.CreateItem(&items[i]); err != nil {
				return err
			}
		}
		if err := orderRepo.AppendStatusHistory(&entity.OrderStatusHistory{
			ID:        uuid.NewString(),
			OrderID:   order.ID,
			Status:    entity.OrderStatusPaid,
			ChangedAt: now,
		}); err != nil {
			return err
		}
		if err := cartRepo.Delete(cart.ID); err != nil {
			return err
		}

		orderID = order.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &dto.CheckoutResponse{
		Status:  "success",
		Message: "Order placed successfully",
		OrderID: orderID,
	}, nil
}

// GetOrder devuelve una orden con sus items.
func (uc *CheckoutUseCase) GetOrder(ctx context.Context, orderID string) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, fmt.Errorf("orden %s: %w", orderID, domain.ErrNotFound)
	}
	return dto.ToOrderResponse(order), nil
}

// ListOrders devuelve las órdenes del usuario, más recientes primero.
func (uc *CheckoutUseCase) ListOrders(ctx context.Context, userID string, page dto.PageRequest) ([]*dto.OrderResponse, error) {
	page.DefaultPage()
	orders, err := uc.orderRepo.ListByUser(userID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, dto.ToOrderResponse(o))
	}
	return out, nil
}

// UpdateStatus cambia el estado de una orden y lo registra en el historial.
func (uc *CheckoutUseCase) UpdateStatus(ctx context.Context, orderID, status string) error {
	if !entity.ValidOrderStatus(status) {
		return fmt.Errorf("estado de orden desconocido %q: %w", status, domain.ErrInvalidInput)
	}
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return fmt.Errorf("orden %s: %w", orderID, domain.ErrNotFound)
	}
	if err := uc.orderRepo.UpdateStatus(orderID, status); err != nil {
		return err
	}
	return uc.orderRepo.AppendStatusHistory(&entity.OrderStatusHistory{
		ID:        uuid.NewString(),
		OrderID:   orderID,
		Status:    status,
		ChangedAt: time.Now().UTC(),
	})
}
