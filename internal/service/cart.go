package service

import (
	"context"
	"fmt"

	"github.com/catalodge/roomboard/internal/cart"
	"github.com/catalodge/roomboard/internal/repository"
)

// CartService wraps the pure cart type with per-session persistence: every
// mutation is written through to the repository so a reload rehydrates the
// guest's order.
type CartService struct {
	repo    repository.Repository
	gateway PaymentGateway
}

// NewCartService creates a cart service backed by the given repository.
func NewCartService(repo repository.Repository, gateway PaymentGateway) *CartService {
	return &CartService{
		repo:    repo,
		gateway: gateway,
	}
}

// Get rehydrates a session's cart. A session with no stored cart gets an
// empty one.
func (s *CartService) Get(ctx context.Context, sessionID string) (*cart.Cart, error) {
	c, err := s.repo.GetCart(ctx, sessionID)
	if err != nil {
		if repository.IsNotFound(err) {
			return &cart.Cart{}, nil
		}
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	return c, nil
}

// AddItem adds one unit of an item and persists the cart.
func (s *CartService) AddItem(ctx context.Context, sessionID string, item cart.LineItem) (*cart.Cart, error) {
	c, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	c.Add(item)
	return s.persist(ctx, sessionID, c)
}

// DecrementItem removes one unit, dropping the line when it would fall below
// one, and persists the cart.
func (s *CartService) DecrementItem(ctx context.Context, sessionID, itemID string) (*cart.Cart, error) {
	c, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	c.Decrement(itemID)
	return s.persist(ctx, sessionID, c)
}

// RemoveItem deletes a line item and persists the cart.
func (s *CartService) RemoveItem(ctx context.Context, sessionID, itemID string) (*cart.Cart, error) {
	c, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	c.Remove(itemID)
	return s.persist(ctx, sessionID, c)
}

// Clear empties and removes a session's cart.
func (s *CartService) Clear(ctx context.Context, sessionID string) error {
	if err := s.repo.DeleteCart(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}

// Checkout opens a gateway transaction for the cart's subtotal and returns
// the payment reference and authorization URL. The cart is kept until the
// order is confirmed out of band.
func (s *CartService) Checkout(ctx context.Context, sessionID, email string) (string, string, error) {
	c, err := s.Get(ctx, sessionID)
	if err != nil {
		return "", "", err
	}
	if c.Len() == 0 || c.Subtotal() <= 0 {
		return "", "", ErrEmptyCart
	}

	tx, err := s.gateway.InitializeTransaction(ctx, email, c.Subtotal())
	if err != nil {
		return "", "", fmt.Errorf("payment initialization failed: %w", err)
	}
	return tx.Reference, tx.AuthorizationURL, nil
}

func (s *CartService) persist(ctx context.Context, sessionID string, c *cart.Cart) (*cart.Cart, error) {
	if err := s.repo.SaveCart(ctx, sessionID, c); err != nil {
		return nil, fmt.Errorf("failed to persist cart: %w", err)
	}
	return c, nil
}
