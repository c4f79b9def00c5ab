package service

import (
	"context"
	"errors"

	"go-shop-pos/internal/cart"
	"go-shop-pos/internal/model"
	"go-shop-pos/internal/promptpay"
	"go-shop-pos/internal/repository"
	"go-shop-pos/internal/ws"

	"github.com/google/uuid"
)

var (
	ErrEmptyCart         = errors.New("cart is empty")
	ErrOutOfStock        = errors.New("product is out of stock")
	ErrInsufficientStock = errors.New("insufficient stock remaining")
	ErrProductInactive   = errors.New("product is not for sale")
	ErrNoPromptPayID     = errors.New("PROMPTPAY_ID is not configured")
)

// PaymentQR bundles everything the payment screen needs.
type PaymentQR struct {
	Amount      float64 `json:"amount"`
	PromptPayID string  `json:"promptpay_id"`
	Payload     string  `json:"payload"`
	QRImage     []byte  `json:"qr_image"` // PNG, base64 in JSON
}

// CheckoutService owns the per-terminal cart session and the checkout
// commit. Every cart mutation is written back to the store slot so a
// reload never loses the cart.
type CheckoutService interface {
	GetCart(ctx context.Context, terminalID string) (*cart.Cart, error)
	AddItem(ctx context.Context, terminalID string, productID uuid.UUID) (*cart.Cart, error)
	DecreaseItem(ctx context.Context, terminalID string, productID uuid.UUID) (*cart.Cart, error)
	RemoveItem(ctx context.Context, terminalID string, productID uuid.UUID) (*cart.Cart, error)
	ClearCart(ctx context.Context, terminalID string) error
	PaymentQR(ctx context.Context, terminalID string) (*PaymentQR, error)
	Checkout(ctx context.Context, terminalID string) (*model.Sale, error)
}

type checkoutService struct {
	carts       cart.Store
	productRepo repository.ProductRepository
	saleRepo    repository.SaleRepository
	wsHub       *ws.Hub
	promptPayID string
}

func NewCheckoutService(
	carts cart.Store,
	pRepo repository.ProductRepository,
	sRepo repository.SaleRepository,
	hub *ws.Hub,
	promptPayID string,
) CheckoutService {
	return &checkoutService{
		carts:       carts,
		productRepo: pRepo,
		saleRepo:    sRepo,
		wsHub:       hub,
		promptPayID: promptPayID,
	}
}

func (s *checkoutService) publish(ev ws.Event) {
	if s.wsHub != nil {
		go s.wsHub.Publish(ev)
	}
}

func (s *checkoutService) GetCart(ctx context.Context, terminalID string) (*cart.Cart, error) {
	return s.carts.Load(ctx, terminalID)
}

// AddItem checks stock before touching the aggregator: selling something
// that is already out of stock should fail at the POS screen, not at
// checkout.
func (s *checkoutService) AddItem(ctx context.Context, terminalID string, productID uuid.UUID) (*cart.Cart, error) {
	product, err := s.productRepo.FindByID(productID)
	if err != nil {
		return nil, ErrProductNotFound
	}
	if !product.IsActive {
		return nil, ErrProductInactive
	}
	if product.StockQty <= 0 {
		return nil, ErrOutOfStock
	}

	c, err := s.carts.Load(ctx, terminalID)
	if err != nil {
		return nil, err
	}

	c.Add(*product)
	if err := s.carts.Save(ctx, terminalID, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *checkoutService) DecreaseItem(ctx context.Context, terminalID string, productID uuid.UUID) (*cart.Cart, error) {
	c, err := s.carts.Load(ctx, terminalID)
	if err != nil {
		return nil, err
	}

	c.Decrease(productID)
	if err := s.carts.Save(ctx, terminalID, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *checkoutService) RemoveItem(ctx context.Context, terminalID string, productID uuid.UUID) (*cart.Cart, error) {
	c, err := s.carts.Load(ctx, terminalID)
	if err != nil {
		return nil, err
	}

	c.Remove(productID)
	if err := s.carts.Save(ctx, terminalID, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *checkoutService) ClearCart(ctx context.Context, terminalID string) error {
	c, err := s.carts.Load(ctx, terminalID)
	if err != nil {
		return err
	}
	c.Clear()
	return s.carts.Save(ctx, terminalID, c)
}

// PaymentQR builds the PromptPay payload for the cart total. A
// non-positive total never reaches the generator; the payment screen
// must bounce back to the catalog instead.
func (s *checkoutService) PaymentQR(ctx context.Context, terminalID string) (*PaymentQR, error) {
	if s.promptPayID == "" {
		return nil, ErrNoPromptPayID
	}

	c, err := s.carts.Load(ctx, terminalID)
	if err != nil {
		return nil, err
	}

	total := c.TotalPrice()
	if total <= 0 {
		return nil, ErrEmptyCart
	}

	payload, err := promptpay.Payload(s.promptPayID, total)
	if err != nil {
		return nil, err
	}

	png, err := promptpay.QRImage(payload, 512)
	if err != nil {
		return nil, err
	}

	return &PaymentQR{
		Amount:      total,
		PromptPayID: s.promptPayID,
		Payload:     payload,
		QRImage:     png,
	}, nil
}

// Checkout persists the sale in a single transaction: sale header, one
// line per cart entry with the price snapshotted, then a locked stock
// decrement per product. Any failure rolls the whole sale back and the
// cart is left untouched; only full success clears it.
func (s *checkoutService) Checkout(ctx context.Context, terminalID string) (*model.Sale, error) {
	c, err := s.carts.Load(ctx, terminalID)
	if err != nil {
		return nil, err
	}
	if c.IsEmpty() {
		return nil, ErrEmptyCart
	}

	sale := &model.Sale{
		TotalAmount:   c.TotalPrice(),
		Status:        model.SaleStatusCompleted,
		PaymentMethod: model.PaymentPromptPay,
	}

	err = s.saleRepo.InTransaction(func(tx repository.CheckoutTx) error {
		if err := tx.CreateSale(sale); err != nil {
			return err
		}

		items := make([]model.SaleItem, 0, len(c.Items))
		for _, entry := range c.Items {
			items = append(items, model.SaleItem{
				SaleID:      sale.ID,
				ProductID:   entry.ID,
				Quantity:    entry.Quantity,
				PriceAtSale: entry.SellingPrice,
				Total:       entry.SellingPrice * float64(entry.Quantity),
			})
		}
		if err := tx.CreateSaleItems(items); err != nil {
			return err
		}

		for _, entry := range c.Items {
			product, err := tx.ProductForUpdate(entry.ID)
			if err != nil {
				return ErrProductNotFound
			}
			if product.StockQty < entry.Quantity {
				return ErrInsufficientStock
			}
			if err := tx.DecrementStock(entry.ID, entry.Quantity); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Full success: clear the cart. A failed clear is not fatal to the
	// sale, which is already durable.
	c.Clear()
	if err := s.carts.Save(ctx, terminalID, c); err != nil {
		return sale, err
	}

	s.publish(ws.Event{
		Type:    ws.EventSaleCompleted,
		Data:    sale,
		Message: "Sale " + sale.ShortID() + " completed",
	})
	return sale, nil
}
