package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"pos/internal/model"
	"pos/internal/repository"
	"pos/pkg/clock"

	"github.com/shopspring/decimal"
)

const defaultCustomerName = "Guest"

// DTOs
type CheckoutRequest struct {
	PaymentMethod  model.PaymentMethod `json:"payment_method" binding:"required"`
	ReceivedAmount int64               `json:"received_amount"`
	CustomerName   string              `json:"customer_name"`
	CustomerPhone  string              `json:"customer_phone"`
	// TaxRate overrides the configured checkout rate when set.
	TaxRate *decimal.Decimal `json:"tax_rate,omitempty"`
}

// Totals is the priced cart before settlement.
type Totals struct {
	Subtotal int64           `json:"subtotal"`
	Tax      int64           `json:"tax"`
	TaxRate  decimal.Decimal `json:"tax_rate"`
	Total    int64           `json:"total"`
}

// CheckoutService converts the cart into a recorded transaction.
type CheckoutService interface {
	Quote(rate *decimal.Decimal) Totals
	Checkout(ctx context.Context, req CheckoutRequest) (model.Transaction, error)
	TaxRate() decimal.Decimal
}

type checkoutService struct {
	cart      *Cart
	ledger    *Ledger
	txnRepo   repository.TransactionRepository
	auditRepo repository.AuditRepository
	txManager repository.TransactionManager
	actor     Actor
	events    EventPublisher
	clock     clock.Clock
	ids       *clock.IDSequence
	taxRate   decimal.Decimal
	logger    *slog.Logger
}

func NewCheckoutService(
	cart *Cart,
	ledger *Ledger,
	txnRepo repository.TransactionRepository,
	auditRepo repository.AuditRepository,
	txManager repository.TransactionManager,
	actor Actor,
	events EventPublisher,
	clk clock.Clock,
	taxRate decimal.Decimal,
	logger *slog.Logger,
) CheckoutService {
	return &checkoutService{
		cart:      cart,
		ledger:    ledger,
		txnRepo:   txnRepo,
		auditRepo: auditRepo,
		txManager: txManager,
		actor:     actor,
		events:    orDiscard(events),
		clock:     clk,
		ids:       clock.NewIDSequence(clk),
		taxRate:   taxRate,
		logger:    logger,
	}
}

func (s *checkoutService) TaxRate() decimal.Decimal {
	return s.taxRate
}

// Quote prices the current cart without changing anything.
func (s *checkoutService) Quote(rate *decimal.Decimal) Totals {
	r := s.taxRate
	if rate != nil {
		r = *rate
	}
	return computeTotals(s.cart.Subtotal(), r)
}

func (s *checkoutService) Checkout(ctx context.Context, req CheckoutRequest) (model.Transaction, error) {
	if s.cart.IsEmpty() {
		return model.Transaction{}, ErrEmptyCart
	}
	if !req.PaymentMethod.Valid() {
		return model.Transaction{}, newValidationError("payment_method", InvalidValue)
	}
	if req.ReceivedAmount < 0 {
		return model.Transaction{}, newValidationError("received_amount", NegativeQuantity)
	}
	if req.TaxRate != nil && req.TaxRate.IsNegative() {
		return model.Transaction{}, newValidationError("tax_rate", InvalidValue)
	}

	lines := s.cart.Lines()
	totals := s.Quote(req.TaxRate)

	received, change, err := settle(req.PaymentMethod, req.ReceivedAmount, totals.Total)
	if err != nil {
		return model.Transaction{}, err
	}

	customer := strings.TrimSpace(req.CustomerName)
	if customer == "" {
		customer = defaultCustomerName
	}

	s.ids.Observe(s.ledger.LastID())
	txn := model.Transaction{
		ID:             s.ids.Next(),
		Items:          lines,
		Subtotal:       totals.Subtotal,
		Tax:            totals.Tax,
		TaxRate:        totals.TaxRate,
		Total:          totals.Total,
		PaymentMethod:  req.PaymentMethod,
		ReceivedAmount: received,
		Change:         change,
		CustomerName:   customer,
		CustomerPhone:  strings.TrimSpace(req.CustomerPhone),
		Timestamp:      s.clock.Now(),
	}
	if s.actor != nil {
		if u, ok := s.actor.Current(); ok {
			txn.CashierID = u.ID
			txn.CashierName = u.Name
		}
	}

	next := s.ledger.appended(txn)
	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.txnRepo.Save(txCtx, next); err != nil {
			return err
		}
		entry := auditEntry(s.actor, model.ActionCheckout, idString(txn.ID), customer, map[string]interface{}{
			"total":          txn.Total,
			"payment_method": txn.PaymentMethod,
			"items":          len(txn.Items),
		})
		return writeAudit(txCtx, s.auditRepo, entry)
	})
	if err != nil {
		return model.Transaction{}, fmt.Errorf("failed to record transaction: %w", err)
	}

	s.ledger.replace(next)
	s.cart.Clear()

	s.logger.Info("checkout completed", "id", txn.ID, "total", txn.Total, "payment_method", txn.PaymentMethod)
	s.events.Publish(EventTransactionCreated, txn)
	return txn, nil
}

// computeTotals applies rate to subtotal, rounding tax to the nearest whole unit.
func computeTotals(subtotal int64, rate decimal.Decimal) Totals {
	tax := decimal.NewFromInt(subtotal).Mul(rate).Round(0).IntPart()
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		TaxRate:  rate,
		Total:    subtotal + tax,
	}
}

// settle returns the recorded received amount and change for a payment.
// Non-cash payments are always exact.
func settle(method model.PaymentMethod, received, total int64) (int64, int64, error) {
	if method != model.PaymentCash {
		return total, 0, nil
	}
	if received < total {
		return 0, 0, ErrInsufficientPayment
	}
	return received, received - total, nil
}
