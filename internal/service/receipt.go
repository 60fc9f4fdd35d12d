package service

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/brewverse/pos/internal/enum"
)

// Receipt is the read-only projection of a served order handed back for
// presentation.
type Receipt struct {
	CustomerNumber int
	Items          []ReceiptLine
	ServiceType    string
	PackagingType  string
	Total          decimal.Decimal
	ServedAt       time.Time
}

// ReceiptLine is one line of the receipt: the annotated product name, its
// add-ons and the line price.
type ReceiptLine struct {
	Description string
	AddOns      []string
	Price       decimal.Decimal
}

func newReceipt(order *Order, servedAt time.Time) *Receipt {
	items := make([]ReceiptLine, len(order.Items))
	for i, line := range order.Items {
		desc := line.Product
		if line.Size != enum.SizeRegular {
			desc = fmt.Sprintf("%s (%s)", desc, line.Size)
		}
		if line.Temperature != enum.TempNA {
			desc = fmt.Sprintf("%s - %s", desc, line.Temperature)
		}
		items[i] = ReceiptLine{
			Description: desc,
			AddOns:      append([]string(nil), line.AddOns...),
			Price:       line.UnitPrice,
		}
	}
	return &Receipt{
		CustomerNumber: order.CustomerNumber,
		Items:          items,
		ServiceType:    order.ServiceType,
		PackagingType:  order.PackagingType,
		Total:          order.Total,
		ServedAt:       servedAt,
	}
}
