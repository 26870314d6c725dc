package checkout

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/trailmarket/checkout-backend/pkg/db"
	"github.com/trailmarket/checkout-backend/pkg/db/models"
	pkgerrors "github.com/trailmarket/checkout-backend/pkg/errors"
	"github.com/trailmarket/checkout-backend/pkg/logger"
)

const defaultMaxIDAttempts = 5

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service executes checkout orchestration.
type Service interface {
	Execute(ctx context.Context, input Input) (*Receipt, error)
}

// Options tunes the checkout service.
type Options struct {
	// MaxIDAttempts bounds how many fresh identifier draws a single insert
	// may consume before the checkout fails.
	MaxIDAttempts int
}

type service struct {
	tx            txRunner
	repo          Repository
	logg          *logger.Logger
	nextID        func() int64
	maxIDAttempts int
}

// NewService builds the checkout service.
func NewService(tx txRunner, repo Repository, logg *logger.Logger, opts Options) (Service, error) {
	if tx == nil {
		return nil, fmt.Errorf("tx runner required")
	}
	if repo == nil {
		return nil, fmt.Errorf("repository required")
	}
	attempts := opts.MaxIDAttempts
	if attempts <= 0 {
		attempts = defaultMaxIDAttempts
	}
	return &service{
		tx:            tx,
		repo:          repo,
		logg:          logg,
		nextID:        RandomID,
		maxIDAttempts: attempts,
	}, nil
}

// Execute validates the cart, computes the total and persists the order, its
// delivery addresses and its items as one transaction. Addresses are written
// before any order item so an item never references an address that is not
// yet in the store; a failure at any point rolls the whole checkout back.
func (s *service) Execute(ctx context.Context, input Input) (*Receipt, error) {
	if strings.TrimSpace(input.CustomerName) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "customer name is required")
	}
	if len(input.Cart) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart is required")
	}
	if input.Fees == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "fee breakdown is required")
	}

	if !ValidateCart(ctx, input.Cart, s.repo, s.logg) {
		return nil, pkgerrors.New(pkgerrors.CodeInvalidCart, "cart failed validation")
	}

	// Fees are deliberately excluded here; see OrderTotal.
	total := OrderTotal(input.Cart)

	var receipt *Receipt
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		order := &models.Order{CustomerName: input.CustomerName, Total: total}
		if err := s.createWithFreshID(tx, func(id int64) error {
			order.ID = id
			return repo.CreateOrder(ctx, order)
		}); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persisting order")
		}

		addressIDs := make([]int64, len(input.Cart))
		for i, line := range input.Cart {
			address := newAddress(line.Address)
			if err := s.createWithFreshID(tx, func(id int64) error {
				address.ID = id
				return repo.CreateAddress(ctx, address)
			}); err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persisting delivery address")
			}
			addressIDs[i] = address.ID
		}

		for i, line := range input.Cart {
			item := &models.OrderItem{
				ProductID:         line.ProductID,
				Quantity:          line.Quantity,
				OrderID:           order.ID,
				DeliveryAddressID: addressIDs[i],
			}
			if err := s.createWithFreshID(tx, func(id int64) error {
				item.ID = id
				return repo.CreateOrderItem(ctx, item)
			}); err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persisting order item")
			}
		}

		receipt = &Receipt{
			OrderID:    order.ID,
			TotalCents: total,
			ItemCount:  len(input.Cart),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.logg != nil {
		ctx = s.logg.WithOrderID(ctx, receipt.OrderID)
		s.logg.Info(ctx, "checkout completed")
	}
	return receipt, nil
}

// createWithFreshID runs insert with a newly drawn identifier, redrawing on
// unique-key conflicts. Each attempt is fenced with a savepoint so a conflict
// does not poison the surrounding transaction.
func (s *service) createWithFreshID(tx *gorm.DB, insert func(id int64) error) error {
	var lastErr error
	for attempt := 0; attempt < s.maxIDAttempts; attempt++ {
		if err := tx.SavePoint("fresh_id").Error; err != nil {
			return err
		}
		err := insert(s.nextID())
		if err == nil {
			return nil
		}
		if !db.IsUniqueViolation(err) {
			return err
		}
		if err := tx.RollbackTo("fresh_id").Error; err != nil {
			return err
		}
		lastErr = err
	}
	return fmt.Errorf("exhausted %d identifier draws: %w", s.maxIDAttempts, lastErr)
}

func newAddress(in DeliveryAddress) *models.Address {
	return &models.Address{
		Name:    in.Name,
		Line1:   in.Line1,
		Line2:   in.Line2,
		City:    in.City,
		State:   in.State,
		ZipCode: in.ZipCode,
		Country: in.Country,
	}
}
