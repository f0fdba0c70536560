package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"Gamestore/metrics"
	"Gamestore/models/postgres"
	redis_utils "Gamestore/services/redis/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var maxAmount = decimal.New(1, 8)

// PaymentRequest is what the client declares at checkout
type PaymentRequest struct {
	Amount decimal.Decimal
	Method string
}

// ProcessPayment turns the user's cart into a completed transaction: one line
// per game at its current price, the games added to the library and the cart
// emptied. Everything happens in one database transaction
func (s *Store) ProcessPayment(ctx context.Context, id Identity, req PaymentRequest) (*postgres.Transaction, error) {
	start := time.Now()
	transaction, err := s.processPayment(ctx, id, req)

	result := "success"
	switch {
	case errors.Is(err, ErrValidation):
		result = "rejected"
	case err != nil:
		result = "error"
	}
	metrics.RecordCheckout(result, time.Since(start))
	return transaction, err
}

func (s *Store) processPayment(ctx context.Context, id Identity, req PaymentRequest) (*postgres.Transaction, error) {
	if !req.Amount.IsPositive() || strings.TrimSpace(req.Method) == "" {
		return nil, Invalid("Amount and payment method are required")
	}
	// Amounts are stored as numeric(10,2)
	if !req.Amount.Equal(req.Amount.Truncate(2)) {
		return nil, ErrAmountPrecision
	}
	if req.Amount.GreaterThanOrEqual(maxAmount) {
		return nil, ErrAmountTooLarge
	}

	if s.locker != nil {
		key := redis_utils.FormatCheckoutLockKey(id.UserID)
		token, ok, err := s.locker.TryLock(ctx, key, s.opts.CheckoutLockTTL)
		if err != nil {
			return nil, fmt.Errorf("acquiring checkout lock: %w", err)
		}
		if !ok {
			return nil, ErrCheckoutInProgress
		}
		defer func() {
			if err := s.locker.Unlock(context.WithoutCancel(ctx), key, token); err != nil {
				s.log.WithError(err).WithField("user_id", id.UserID).Warn("releasing checkout lock failed")
			}
		}()
	}

	if err := simulateGateway(ctx, s.opts.PaymentDelay); err != nil {
		return nil, err
	}

	var transaction postgres.Transaction
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var items []postgres.CartItem
		// Concurrent checkouts of the same cart wait here
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ?", id.UserID).
			Order("id").
			Find(&items).Error
		if err != nil {
			return fmt.Errorf("reading cart: %w", err)
		}
		if len(items) == 0 {
			return ErrEmptyCart
		}

		ids := make([]uint, 0, len(items))
		for _, item := range items {
			ids = append(ids, item.GameID)
		}
		ids = uniqueIDs(ids)
		games, err := s.gamesByID(ctx, tx, ids)
		if err != nil {
			return err
		}

		if s.opts.VerifyAmount {
			total := decimal.Zero
			for _, g := range games {
				total = total.Add(g.Price)
			}
			if !total.Equal(req.Amount) {
				return ErrAmountMismatch
			}
		}

		transaction = postgres.Transaction{
			Reference:     newReference(time.Now()),
			UserID:        id.UserID,
			Amount:        req.Amount,
			Status:        postgres.TransactionCompleted,
			PaymentMethod: req.Method,
		}
		if err := tx.Omit(clause.Associations).Create(&transaction).Error; err != nil {
			return fmt.Errorf("creating transaction: %w", err)
		}

		lines := make([]postgres.TransactionGame, 0, len(games))
		library := make([]postgres.UserLibrary, 0, len(games))
		for _, gameID := range ids {
			g, ok := games[gameID]
			if !ok {
				continue
			}
			lines = append(lines, postgres.TransactionGame{TransactionID: transaction.ID, GameID: g.ID, Price: g.Price})
			library = append(library, postgres.UserLibrary{UserID: id.UserID, GameID: g.ID})
		}
		if len(lines) > 0 {
			if err := tx.Omit(clause.Associations).Create(&lines).Error; err != nil {
				return fmt.Errorf("creating transaction lines: %w", err)
			}
			if err := tx.Omit(clause.Associations).Create(&library).Error; err != nil {
				return fmt.Errorf("adding games to library: %w", err)
			}
		}

		if err := tx.Where("user_id = ?", id.UserID).Delete(&postgres.CartItem{}).Error; err != nil {
			return fmt.Errorf("clearing cart: %w", err)
		}
		transaction.Games = lines
		return nil
	})
	if err != nil {
		var storeErr *Error
		if errors.As(err, &storeErr) {
			return nil, err
		}
		return nil, fmt.Errorf("processing payment: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"user_id":   id.UserID,
		"reference": transaction.Reference,
		"games":     len(transaction.Games),
	}).Info("payment processed")
	return &transaction, nil
}

// simulateGateway stands in for the round trip to a payment provider
func simulateGateway(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		return nil
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// newReference builds a sortable, unique transaction reference
func newReference(now time.Time) string {
	return now.Format("20060102150405") + "-" + uuid.NewString()
}
