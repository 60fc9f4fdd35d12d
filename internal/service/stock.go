package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/brewverse/pos/internal/database"
)

// TxBeginner starts a new database transaction.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// StockStore defines the DB methods the stock coordinator needs.
// Satisfied by *database.Queries (and its WithTx variant).
type StockStore interface {
	GetMenuItemByName(ctx context.Context, name string) (database.MenuItem, error)
	GetAddonByName(ctx context.Context, name string) (database.Addon, error)
	DecrementMenuStock(ctx context.Context, name string) (int64, error)
	DecrementAddonStock(ctx context.Context, name string) (int64, error)
}

// NewStockStore creates a StockStore from a DBTX (pool or tx).
// This allows the coordinator to create store instances from transactions.
type NewStockStore func(db database.DBTX) StockStore

// StockCoordinator validates cart stock before checkout and performs the
// decrement atomically with it.
type StockCoordinator struct {
	store    StockStore
	pool     TxBeginner
	newStore NewStockStore
}

// NewStockCoordinator creates a new StockCoordinator. store serves the
// availability reads; newStore builds the transactional store for commits.
func NewStockCoordinator(store StockStore, pool TxBeginner, newStore NewStockStore) *StockCoordinator {
	return &StockCoordinator{store: store, pool: pool, newStore: newStore}
}

// CheckAvailability re-reads current stock for every line item and selected
// add-on — not the values seen at add-to-cart time, which may be stale. It
// scans lines in cart order and add-ons in selection order, failing on the
// first insufficient entry.
func (s *StockCoordinator) CheckAvailability(ctx context.Context, lines []LineItem) error {
	for _, line := range lines {
		item, err := s.store.GetMenuItemByName(ctx, line.Product)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return fmt.Errorf("menu item %q: %w", line.Product, ErrNotFound)
			}
			return fmt.Errorf("get menu item: %w", err)
		}
		if item.Stock <= 0 {
			return &OutOfStockError{Name: line.Product}
		}

		for _, name := range line.AddOns {
			addon, err := s.store.GetAddonByName(ctx, name)
			if err != nil {
				if errors.Is(err, pgx.ErrNoRows) {
					return fmt.Errorf("add-on %q: %w", name, ErrNotFound)
				}
				return fmt.Errorf("get add-on: %w", err)
			}
			if addon.Stock <= 0 {
				return &OutOfStockError{Name: name}
			}
		}
	}
	return nil
}

// CommitDecrement decrements stock by one per line occurrence and per
// selected add-on occurrence, all inside a single transaction. Every
// decrement is conditional on stock > 0, so a concurrent sale between check
// and commit aborts the whole transaction instead of driving stock negative.
func (s *StockCoordinator) CommitDecrement(ctx context.Context, lines []LineItem) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	store := s.newStore(tx)

	for _, line := range lines {
		n, err := store.DecrementMenuStock(ctx, line.Product)
		if err != nil {
			return fmt.Errorf("decrement %q: %w", line.Product, err)
		}
		if n == 0 {
			return &OutOfStockError{Name: line.Product}
		}

		for _, name := range line.AddOns {
			n, err := store.DecrementAddonStock(ctx, name)
			if err != nil {
				return fmt.Errorf("decrement add-on %q: %w", name, err)
			}
			if n == 0 {
				return &OutOfStockError{Name: name}
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
