package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/brewverse/pos/internal/enum"
)

// mockStockController implements StockController.
type mockStockController struct {
	checkErr    error
	commitErr   error
	commitCalls int
}

func (m *mockStockController) CheckAvailability(_ context.Context, _ []LineItem) error {
	return m.checkErr
}
func (m *mockStockController) CommitDecrement(_ context.Context, _ []LineItem) error {
	if m.commitErr != nil {
		return m.commitErr
	}
	m.commitCalls++
	return nil
}

// mockLedger implements LedgerRecorder.
type mockLedger struct {
	recordErr error
	recorded  []*Order
}

func (m *mockLedger) Record(_ context.Context, order *Order) error {
	if m.recordErr != nil {
		return m.recordErr
	}
	m.recorded = append(m.recorded, order)
	return nil
}

func newTestQueue() (*OrderQueue, *mockStockController, *mockLedger) {
	stock := &mockStockController{}
	ledger := &mockLedger{}
	return NewOrderQueue(stock, ledger), stock, ledger
}

func latteLine() LineItem {
	return LineItem{
		Product:     "Latte",
		Size:        enum.SizeRegular,
		Temperature: enum.TempHot,
		UnitPrice:   decimal.NewFromInt(80),
	}
}

// --- Enqueue ---

func TestEnqueue_EmptyCart(t *testing.T) {
	queue, _, _ := newTestQueue()

	_, err := queue.Enqueue(context.Background(), nil, enum.ServiceTypeDineIn, enum.PackagingStandard)
	if !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got: %v", err)
	}
}

func TestEnqueue_NumbersOrdersFromOne(t *testing.T) {
	queue, _, _ := newTestQueue()
	ctx := context.Background()
	lines := []LineItem{latteLine()}

	for want := 1; want <= 3; want++ {
		order, err := queue.Enqueue(ctx, lines, enum.ServiceTypeDineIn, "")
		if err != nil {
			t.Fatalf("Enqueue: %v", err)
		}
		if order.CustomerNumber != want {
			t.Errorf("customer number = %d, want %d", order.CustomerNumber, want)
		}
		if order.Status != enum.OrderStatusWaiting {
			t.Errorf("status = %q, want Waiting", order.Status)
		}
	}
}

func TestEnqueue_FailureDoesNotConsumeNumber(t *testing.T) {
	queue, stock, _ := newTestQueue()
	ctx := context.Background()
	lines := []LineItem{latteLine()}

	stock.checkErr = &OutOfStockError{Name: "Latte"}
	if _, err := queue.Enqueue(ctx, lines, enum.ServiceTypeDineIn, ""); !errors.Is(err, ErrOutOfStock) {
		t.Fatalf("expected ErrOutOfStock, got: %v", err)
	}
	if stock.commitCalls != 0 {
		t.Error("stock must not be committed when the availability check fails")
	}

	stock.checkErr = nil
	order, err := queue.Enqueue(ctx, lines, enum.ServiceTypeDineIn, "")
	if err != nil {
		t.Fatalf("Enqueue: %v", err)
	}
	if order.CustomerNumber != 1 {
		t.Errorf("customer number = %d, want 1 (failed attempt must not consume it)", order.CustomerNumber)
	}
}

func TestEnqueue_PackagingRules(t *testing.T) {
	tests := []struct {
		name          string
		serviceType   string
		packagingType string
		want          string
		wantErr       error
	}{
		{"dine-in ignores packaging", enum.ServiceTypeDineIn, enum.PackagingPremium, enum.PackagingNone, nil},
		{"take-out defaults to standard", enum.ServiceTypeTakeOut, "", enum.PackagingStandard, nil},
		{"take-out premium", enum.ServiceTypeTakeOut, enum.PackagingPremium, enum.PackagingPremium, nil},
		{"unknown packaging", enum.ServiceTypeTakeOut, "Gift Wrap", "", ErrValidation},
		{"unknown service type", "Delivery", "", "", ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			queue, _, _ := newTestQueue()
			order, err := queue.Enqueue(context.Background(), []LineItem{latteLine()}, tt.serviceType, tt.packagingType)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Enqueue: %v", err)
			}
			if order.PackagingType != tt.want {
				t.Errorf("packaging = %q, want %q", order.PackagingType, tt.want)
			}
		})
	}
}

func TestEnqueue_CopiesLines(t *testing.T) {
	queue, _, _ := newTestQueue()
	lines := []LineItem{latteLine()}

	order, err := queue.Enqueue(context.Background(), lines, enum.ServiceTypeDineIn, "")
	if err != nil {
		t.Fatalf("Enqueue: %v", err)
	}

	lines[0].Product = "Mutated"
	if order.Items[0].Product != "Latte" {
		t.Error("order items must be isolated from the caller's slice")
	}
}

// --- PrepareNext ---

func TestPrepareNext_EmptyQueue(t *testing.T) {
	queue, _, _ := newTestQueue()

	if _, err := queue.PrepareNext(); !errors.Is(err, ErrEmptyQueue) {
		t.Fatalf("expected ErrEmptyQueue, got: %v", err)
	}
}

func TestPrepareNext_FIFO(t *testing.T) {
	queue, _, ledger := newTestQueue()
	ctx := context.Background()

	queue.Enqueue(ctx, []LineItem{latteLine()}, enum.ServiceTypeDineIn, "") //nolint:errcheck
	queue.Enqueue(ctx, []LineItem{latteLine()}, enum.ServiceTypeDineIn, "") //nolint:errcheck

	order, err := queue.PrepareNext()
	if err != nil {
		t.Fatalf("PrepareNext: %v", err)
	}
	if order.CustomerNumber != 1 {
		t.Errorf("prepared order #%d, want #1", order.CustomerNumber)
	}
	if order.Status != enum.OrderStatusPreparing {
		t.Errorf("status = %q, want Preparing", order.Status)
	}

	if _, err := queue.ServeOrder(ctx); err != nil {
		t.Fatalf("ServeOrder: %v", err)
	}
	order, err = queue.PrepareNext()
	if err != nil {
		t.Fatalf("PrepareNext: %v", err)
	}
	if order.CustomerNumber != 2 {
		t.Errorf("prepared order #%d, want #2", order.CustomerNumber)
	}
	if len(ledger.recorded) != 1 {
		t.Errorf("ledger should hold the served order")
	}
}

func TestPrepareNext_OnlyOneInProgress(t *testing.T) {
	queue, _, _ := newTestQueue()
	ctx := context.Background()

	queue.Enqueue(ctx, []LineItem{latteLine()}, enum.ServiceTypeDineIn, "") //nolint:errcheck
	queue.Enqueue(ctx, []LineItem{latteLine()}, enum.ServiceTypeDineIn, "") //nolint:errcheck

	if _, err := queue.PrepareNext(); err != nil {
		t.Fatalf("PrepareNext: %v", err)
	}
	if _, err := queue.PrepareNext(); !errors.Is(err, ErrOrderInProgress) {
		t.Fatalf("expected ErrOrderInProgress, got: %v", err)
	}
}

// --- ServeOrder ---

func TestServeOrder_EmptyQueue(t *testing.T) {
	queue, _, _ := newTestQueue()

	if _, err := queue.ServeOrder(context.Background()); !errors.Is(err, ErrEmptyQueue) {
		t.Fatalf("expected ErrEmptyQueue, got: %v", err)
	}
}

func TestServeOrder_NothingPreparing(t *testing.T) {
	queue, _, _ := newTestQueue()
	ctx := context.Background()

	queue.Enqueue(ctx, []LineItem{latteLine()}, enum.ServiceTypeDineIn, "") //nolint:errcheck

	if _, err := queue.ServeOrder(ctx); !errors.Is(err, ErrNoPreparingOrder) {
		t.Fatalf("expected ErrNoPreparingOrder, got: %v", err)
	}
}

func TestServeOrder_RemovesFromQueueAndBuildsReceipt(t *testing.T) {
	queue, _, _ := newTestQueue()
	ctx := context.Background()

	line := LineItem{
		Product:     "Latte",
		Size:        enum.SizeLarge,
		Temperature: enum.TempHot,
		AddOns:      []string{"Extra Shot"},
		UnitPrice:   decimal.NewFromInt(110),
	}
	queue.Enqueue(ctx, []LineItem{line}, enum.ServiceTypeTakeOut, enum.PackagingPremium) //nolint:errcheck
	queue.PrepareNext()                                                                  //nolint:errcheck

	receipt, err := queue.ServeOrder(ctx)
	if err != nil {
		t.Fatalf("ServeOrder: %v", err)
	}
	if receipt.CustomerNumber != 1 {
		t.Errorf("receipt for #%d, want #1", receipt.CustomerNumber)
	}
	if got := receipt.Items[0].Description; got != "Latte (Large) - Hot" {
		t.Errorf("description = %q", got)
	}
	if receipt.PackagingType != enum.PackagingPremium {
		t.Errorf("packaging = %q", receipt.PackagingType)
	}
	if receipt.Total.StringFixed(2) != "110.00" {
		t.Errorf("total = %s", receipt.Total.StringFixed(2))
	}
	if receipt.ServedAt.IsZero() {
		t.Error("served time not set")
	}

	if n := len(queue.Snapshot()); n != 0 {
		t.Errorf("queue still holds %d orders after serve", n)
	}
}

func TestServeOrder_LedgerFailureKeepsOrderPreparing(t *testing.T) {
	queue, _, ledger := newTestQueue()
	ctx := context.Background()

	queue.Enqueue(ctx, []LineItem{latteLine()}, enum.ServiceTypeDineIn, "") //nolint:errcheck
	queue.PrepareNext()                                                     //nolint:errcheck

	ledger.recordErr = errors.New("database down")
	if _, err := queue.ServeOrder(ctx); err == nil {
		t.Fatal("expected error from failed ledger write")
	}

	orders := queue.Snapshot()
	if len(orders) != 1 {
		t.Fatalf("order must stay queued, have %d", len(orders))
	}
	if orders[0].Status != enum.OrderStatusPreparing {
		t.Errorf("status = %q, want Preparing so the serve can be retried", orders[0].Status)
	}

	// Retry succeeds once the ledger recovers.
	ledger.recordErr = nil
	if _, err := queue.ServeOrder(ctx); err != nil {
		t.Fatalf("retry ServeOrder: %v", err)
	}
	if len(queue.Snapshot()) != 0 {
		t.Error("queue should be empty after the retried serve")
	}
}

func TestSnapshot_IsACopy(t *testing.T) {
	queue, _, _ := newTestQueue()
	ctx := context.Background()

	queue.Enqueue(ctx, []LineItem{latteLine()}, enum.ServiceTypeDineIn, "") //nolint:errcheck

	snap := queue.Snapshot()
	snap[0].Status = "Tampered"
	snap[0].Items[0].Product = "Tampered"

	fresh := queue.Snapshot()
	if fresh[0].Status != enum.OrderStatusWaiting || fresh[0].Items[0].Product != "Latte" {
		t.Error("queue state leaked through Snapshot()")
	}
}
