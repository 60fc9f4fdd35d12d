package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"github.com/brewverse/pos/internal/database"
	"github.com/brewverse/pos/internal/enum"
)

const popularItemsLimit = 5

// LedgerStore defines the DB writes needed to record a served order.
// Satisfied by *database.Queries (and its WithTx variant).
type LedgerStore interface {
	CreateOrder(ctx context.Context, arg database.CreateOrderParams) (database.Order, error)
	CreateSaleLine(ctx context.Context, arg database.CreateSaleLineParams) (database.SalesHistory, error)
}

// ReportStore defines the DB reads behind the sales report.
type ReportStore interface {
	GetSalesSummary(ctx context.Context) (database.GetSalesSummaryRow, error)
	ListPopularItems(ctx context.Context, limit int32) ([]database.ListPopularItemsRow, error)
}

// NewLedgerStore creates a LedgerStore from a DBTX (pool or tx).
type NewLedgerStore func(db database.DBTX) LedgerStore

// SalesLedger is the append-only record of completed orders. Rows are never
// updated or deleted.
type SalesLedger struct {
	store    ReportStore
	pool     TxBeginner
	newStore NewLedgerStore
}

// NewSalesLedger creates a new SalesLedger.
func NewSalesLedger(store ReportStore, pool TxBeginner, newStore NewLedgerStore) *SalesLedger {
	return &SalesLedger{store: store, pool: pool, newStore: newStore}
}

// Record appends the order summary row and one sales_history row per line
// item, all in a single transaction. A fault leaves nothing behind.
func (l *SalesLedger) Record(ctx context.Context, order *Order) error {
	tx, err := l.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	store := l.newStore(tx)
	customer := fmt.Sprintf("#%d", order.CustomerNumber)
	saleTime := time.Now()

	names := make([]string, len(order.Items))
	addonTexts := make([]string, len(order.Items))
	for i, line := range order.Items {
		names[i] = line.Product
		if len(line.AddOns) == 0 {
			addonTexts[i] = "None"
		} else {
			addonTexts[i] = strings.Join(line.AddOns, ", ")
		}
	}

	size := pgtype.Text{}
	temperature := pgtype.Text{}
	if len(order.Items) > 0 {
		size = pgtype.Text{String: order.Items[0].Size, Valid: true}
		temperature = pgtype.Text{String: order.Items[0].Temperature, Valid: true}
	}

	summary, err := store.CreateOrder(ctx, database.CreateOrderParams{
		CustomerNumber: customer,
		OrderName:      strings.Join(names, ", "),
		AddOns:         pgtype.Text{String: strings.Join(addonTexts, ", "), Valid: true},
		Size:           size,
		Temperature:    temperature,
		ServiceType:    order.ServiceType,
		PackagingType:  order.PackagingType,
		Total:          decimalToNumeric(order.Total),
		Status:         enum.OrderStatusServed,
		OrderTime:      order.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("create order row: %w", err)
	}

	for _, line := range order.Items {
		addonName := pgtype.Text{}
		if len(line.AddOns) > 0 {
			addonName = pgtype.Text{String: strings.Join(line.AddOns, ", "), Valid: true}
		}
		_, err := store.CreateSaleLine(ctx, database.CreateSaleLineParams{
			OrderID:        summary.ID,
			CustomerNumber: customer,
			ProductName:    line.Product,
			AddonName:      addonName,
			Quantity:       1,
			UnitPrice:      decimalToNumeric(line.UnitPrice),
			TotalPrice:     decimalToNumeric(line.UnitPrice),
			ServiceType:    order.ServiceType,
			PackagingType:  order.PackagingType,
			SaleTime:       saleTime,
		})
		if err != nil {
			return fmt.Errorf("create sale line: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// SalesReport aggregates the ledger: served revenue, order count and the
// top five items by line count (first recorded wins ties).
type SalesReport struct {
	TotalRevenue decimal.Decimal
	OrderCount   int64
	PopularItems []PopularItem
}

// PopularItem is one entry of the top-items ranking.
type PopularItem struct {
	Name  string
	Count int64
}

// SalesReport runs the aggregate queries over the ledger.
func (l *SalesLedger) SalesReport(ctx context.Context) (*SalesReport, error) {
	summary, err := l.store.GetSalesSummary(ctx)
	if err != nil {
		return nil, fmt.Errorf("get sales summary: %w", err)
	}

	rows, err := l.store.ListPopularItems(ctx, popularItemsLimit)
	if err != nil {
		return nil, fmt.Errorf("list popular items: %w", err)
	}

	popular := make([]PopularItem, len(rows))
	for i, row := range rows {
		popular[i] = PopularItem{Name: row.ProductName, Count: row.SoldCount}
	}

	return &SalesReport{
		TotalRevenue: numericToDecimal(summary.TotalRevenue),
		OrderCount:   summary.OrderCount,
		PopularItems: popular,
	}, nil
}
