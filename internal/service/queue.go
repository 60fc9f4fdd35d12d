package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/brewverse/pos/internal/enum"
)

// StockController is the slice of the stock coordinator the queue uses.
type StockController interface {
	CheckAvailability(ctx context.Context, lines []LineItem) error
	CommitDecrement(ctx context.Context, lines []LineItem) error
}

// LedgerRecorder persists a served order to the sales ledger.
type LedgerRecorder interface {
	Record(ctx context.Context, order *Order) error
}

// Order is one checked-out order moving through the preparation queue.
// The queue owns it until it is served; then it belongs to the ledger.
type Order struct {
	CustomerNumber int
	Items          []LineItem
	ServiceType    string
	PackagingType  string
	Total          decimal.Decimal
	Status         string
	CreatedAt      time.Time
}

// OrderQueue holds active orders in arrival order and advances them through
// Waiting → Preparing → Served. Scans are linear; active order counts for a
// single terminal are small enough that this never matters.
type OrderQueue struct {
	stock      StockController
	ledger     LedgerRecorder
	orders     []*Order
	nextNumber int
}

// NewOrderQueue creates an empty queue. Customer numbers start at 1.
func NewOrderQueue(stock StockController, ledger LedgerRecorder) *OrderQueue {
	return &OrderQueue{stock: stock, ledger: ledger, nextNumber: 1}
}

// Enqueue turns a cart snapshot into a Waiting order at the tail of the
// queue, assigning the next customer number and committing the stock
// decrement. The lines are copied: later cart mutation cannot touch the
// order. The customer number is consumed only on success.
func (q *OrderQueue) Enqueue(ctx context.Context, lines []LineItem, serviceType, packagingType string) (*Order, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	packagingType, err := resolvePackaging(serviceType, packagingType)
	if err != nil {
		return nil, err
	}

	if err := q.stock.CheckAvailability(ctx, lines); err != nil {
		return nil, err
	}
	if err := q.stock.CommitDecrement(ctx, lines); err != nil {
		return nil, err
	}

	order := &Order{
		CustomerNumber: q.nextNumber,
		Items:          cloneLines(lines),
		ServiceType:    serviceType,
		PackagingType:  packagingType,
		Total:          linesTotal(lines),
		Status:         enum.OrderStatusWaiting,
		CreatedAt:      time.Now(),
	}
	q.nextNumber++
	q.orders = append(q.orders, order)
	return order, nil
}

// PrepareNext advances the first Waiting order (in arrival order) to
// Preparing. At most one order may be Preparing at a time; a second call
// before a serve is rejected even when another order is Waiting.
func (q *OrderQueue) PrepareNext() (*Order, error) {
	if len(q.orders) == 0 {
		return nil, ErrEmptyQueue
	}
	for _, order := range q.orders {
		if order.Status == enum.OrderStatusPreparing {
			return nil, ErrOrderInProgress
		}
	}
	for _, order := range q.orders {
		if order.Status == enum.OrderStatusWaiting {
			order.Status = enum.OrderStatusPreparing
			return order, nil
		}
	}
	return nil, ErrNoWaitingOrder
}

// ServeOrder advances the Preparing order to Served, records it to the
// sales ledger, drops it from the active queue and returns the receipt. If
// the ledger write fails the order stays Preparing in the queue; nothing is
// partially recorded.
func (q *OrderQueue) ServeOrder(ctx context.Context) (*Receipt, error) {
	if len(q.orders) == 0 {
		return nil, ErrEmptyQueue
	}

	index := -1
	for i, order := range q.orders {
		if order.Status == enum.OrderStatusPreparing {
			index = i
			break
		}
	}
	if index < 0 {
		return nil, ErrNoPreparingOrder
	}

	order := q.orders[index]
	order.Status = enum.OrderStatusServed
	if err := q.ledger.Record(ctx, order); err != nil {
		order.Status = enum.OrderStatusPreparing
		return nil, fmt.Errorf("record order #%d: %w", order.CustomerNumber, err)
	}

	q.orders = append(q.orders[:index], q.orders[index+1:]...)
	return newReceipt(order, time.Now()), nil
}

// Snapshot returns a read-only copy of the active (non-served) orders in
// arrival order.
func (q *OrderQueue) Snapshot() []Order {
	out := make([]Order, len(q.orders))
	for i, order := range q.orders {
		o := *order
		o.Items = cloneLines(order.Items)
		out[i] = o
	}
	return out
}

// resolvePackaging enforces the packaging rules: dine-in orders carry no
// packaging, take-out defaults to standard.
func resolvePackaging(serviceType, packagingType string) (string, error) {
	switch serviceType {
	case enum.ServiceTypeDineIn:
		return enum.PackagingNone, nil
	case enum.ServiceTypeTakeOut:
		switch packagingType {
		case "", enum.PackagingStandard:
			return enum.PackagingStandard, nil
		case enum.PackagingPremium:
			return enum.PackagingPremium, nil
		}
		return "", fmt.Errorf("%w: packaging %q", ErrValidation, packagingType)
	}
	return "", fmt.Errorf("%w: service type %q", ErrValidation, serviceType)
}
