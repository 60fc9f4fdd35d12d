package service

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/brewverse/pos/internal/database"
	"github.com/brewverse/pos/internal/enum"
)

// --- Shared mocks for the service package tests ---

// mockTx implements pgx.Tx with only the methods we need.
// The unused methods panic so we catch accidental calls.
type mockTx struct {
	commitErr error
	committed bool
}

func (m *mockTx) Begin(ctx context.Context) (pgx.Tx, error) { panic("not implemented") }
func (m *mockTx) Commit(ctx context.Context) error {
	if m.commitErr != nil {
		return m.commitErr
	}
	m.committed = true
	return nil
}
func (m *mockTx) Rollback(ctx context.Context) error { return nil }
func (m *mockTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	panic("not implemented")
}
func (m *mockTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults {
	panic("not implemented")
}
func (m *mockTx) LargeObjects() pgx.LargeObjects { panic("not implemented") }
func (m *mockTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	panic("not implemented")
}
func (m *mockTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	panic("not implemented")
}
func (m *mockTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	panic("not implemented")
}
func (m *mockTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("not implemented")
}
func (m *mockTx) Conn() *pgx.Conn { panic("not implemented") }

// mockTxBeginner implements TxBeginner.
type mockTxBeginner struct {
	tx  pgx.Tx
	err error
}

func (m *mockTxBeginner) Begin(ctx context.Context) (pgx.Tx, error) {
	return m.tx, m.err
}

func makeNumeric(val string) pgtype.Numeric {
	var n pgtype.Numeric
	_ = n.Scan(val)
	return n
}

// mockStockStore implements StockStore with configurable behavior.
type mockStockStore struct {
	getMenuItemFn func(ctx context.Context, name string) (database.MenuItem, error)
	getAddonFn    func(ctx context.Context, name string) (database.Addon, error)
	decMenuFn     func(ctx context.Context, name string) (int64, error)
	decAddonFn    func(ctx context.Context, name string) (int64, error)
}

func (m *mockStockStore) GetMenuItemByName(ctx context.Context, name string) (database.MenuItem, error) {
	return m.getMenuItemFn(ctx, name)
}
func (m *mockStockStore) GetAddonByName(ctx context.Context, name string) (database.Addon, error) {
	return m.getAddonFn(ctx, name)
}
func (m *mockStockStore) DecrementMenuStock(ctx context.Context, name string) (int64, error) {
	return m.decMenuFn(ctx, name)
}
func (m *mockStockStore) DecrementAddonStock(ctx context.Context, name string) (int64, error) {
	return m.decAddonFn(ctx, name)
}

func stockedStore() *mockStockStore {
	return &mockStockStore{
		getMenuItemFn: func(_ context.Context, name string) (database.MenuItem, error) {
			return database.MenuItem{Name: name, Category: enum.CategoryCoffee, Stock: 10}, nil
		},
		getAddonFn: func(_ context.Context, name string) (database.Addon, error) {
			return database.Addon{Name: name, Category: enum.CategoryCoffee, Stock: 10}, nil
		},
		decMenuFn:  func(_ context.Context, _ string) (int64, error) { return 1, nil },
		decAddonFn: func(_ context.Context, _ string) (int64, error) { return 1, nil },
	}
}

func newTestCoordinator(store *mockStockStore) (*StockCoordinator, *mockTx) {
	tx := &mockTx{}
	pool := &mockTxBeginner{tx: tx}
	newStore := func(db database.DBTX) StockStore { return store }
	return NewStockCoordinator(store, pool, newStore), tx
}

func twoLatteLines() []LineItem {
	latte := LineItem{Product: "Latte", AddOns: []string{"Extra Shot"}}
	return []LineItem{latte, {Product: "Latte"}}
}

// --- CheckAvailability ---

func TestCheckAvailability_OK(t *testing.T) {
	coord, _ := newTestCoordinator(stockedStore())

	if err := coord.CheckAvailability(context.Background(), twoLatteLines()); err != nil {
		t.Fatalf("CheckAvailability: %v", err)
	}
}

func TestCheckAvailability_NamesFirstInsufficientItem(t *testing.T) {
	store := stockedStore()
	store.getMenuItemFn = func(_ context.Context, name string) (database.MenuItem, error) {
		stock := int32(10)
		if name == "Croissant" {
			stock = 0
		}
		return database.MenuItem{Name: name, Stock: stock}, nil
	}
	coord, _ := newTestCoordinator(store)

	lines := []LineItem{{Product: "Latte"}, {Product: "Croissant"}, {Product: "Mocha"}}
	err := coord.CheckAvailability(context.Background(), lines)

	var oos *OutOfStockError
	if !errors.As(err, &oos) {
		t.Fatalf("expected OutOfStockError, got: %v", err)
	}
	if oos.Name != "Croissant" {
		t.Errorf("named %q, want Croissant", oos.Name)
	}
}

func TestCheckAvailability_AddonOutOfStock(t *testing.T) {
	store := stockedStore()
	store.getAddonFn = func(_ context.Context, name string) (database.Addon, error) {
		return database.Addon{Name: name, Stock: 0}, nil
	}
	coord, _ := newTestCoordinator(store)

	err := coord.CheckAvailability(context.Background(), twoLatteLines())
	var oos *OutOfStockError
	if !errors.As(err, &oos) || oos.Name != "Extra Shot" {
		t.Fatalf("expected OutOfStockError naming Extra Shot, got: %v", err)
	}
}

func TestCheckAvailability_UnknownItem(t *testing.T) {
	store := stockedStore()
	store.getMenuItemFn = func(_ context.Context, _ string) (database.MenuItem, error) {
		return database.MenuItem{}, pgx.ErrNoRows
	}
	coord, _ := newTestCoordinator(store)

	err := coord.CheckAvailability(context.Background(), []LineItem{{Product: "Ghost"}})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

// --- CommitDecrement ---

func TestCommitDecrement_DecrementsPerOccurrence(t *testing.T) {
	store := stockedStore()
	menuCalls := map[string]int{}
	addonCalls := map[string]int{}
	store.decMenuFn = func(_ context.Context, name string) (int64, error) {
		menuCalls[name]++
		return 1, nil
	}
	store.decAddonFn = func(_ context.Context, name string) (int64, error) {
		addonCalls[name]++
		return 1, nil
	}
	coord, tx := newTestCoordinator(store)

	if err := coord.CommitDecrement(context.Background(), twoLatteLines()); err != nil {
		t.Fatalf("CommitDecrement: %v", err)
	}
	if menuCalls["Latte"] != 2 {
		t.Errorf("Latte decremented %d times, want 2", menuCalls["Latte"])
	}
	if addonCalls["Extra Shot"] != 1 {
		t.Errorf("Extra Shot decremented %d times, want 1", addonCalls["Extra Shot"])
	}
	if !tx.committed {
		t.Error("transaction was not committed")
	}
}

func TestCommitDecrement_ZeroRowsMeansSoldOut(t *testing.T) {
	store := stockedStore()
	store.decMenuFn = func(_ context.Context, _ string) (int64, error) { return 0, nil }
	coord, tx := newTestCoordinator(store)

	err := coord.CommitDecrement(context.Background(), []LineItem{{Product: "Latte"}})
	var oos *OutOfStockError
	if !errors.As(err, &oos) || oos.Name != "Latte" {
		t.Fatalf("expected OutOfStockError naming Latte, got: %v", err)
	}
	if tx.committed {
		t.Error("transaction must not commit after a failed decrement")
	}
}

func TestCommitDecrement_CommitFailure(t *testing.T) {
	store := stockedStore()
	coord, tx := newTestCoordinator(store)
	tx.commitErr = errors.New("connection lost")

	err := coord.CommitDecrement(context.Background(), []LineItem{{Product: "Latte"}})
	if err == nil || !errors.Is(err, tx.commitErr) {
		t.Fatalf("expected commit error, got: %v", err)
	}
}

func TestCommitDecrement_BeginFailure(t *testing.T) {
	store := stockedStore()
	pool := &mockTxBeginner{err: errors.New("pool exhausted")}
	coord := NewStockCoordinator(store, pool, func(db database.DBTX) StockStore { return store })

	if err := coord.CommitDecrement(context.Background(), []LineItem{{Product: "Latte"}}); err == nil {
		t.Fatal("expected error when Begin fails")
	}
}
