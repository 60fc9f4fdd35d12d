package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/brewverse/pos/internal/database"
	"github.com/brewverse/pos/internal/enum"
)

// Large drinks carry a flat surcharge on the base price.
var largeSurcharge = decimal.NewFromInt(15)

// CartStore defines the catalog reads the cart needs.
// Satisfied by *database.Queries; narrow interface for testability.
type CartStore interface {
	GetMenuItemByName(ctx context.Context, name string) (database.MenuItem, error)
	GetAddonByName(ctx context.Context, name string) (database.Addon, error)
}

// LineItem is one product selection with its chosen options. It is
// immutable once added to the cart; removal is the only mutation.
type LineItem struct {
	Product     string
	Size        string
	Temperature string
	AddOns      []string
	UnitPrice   decimal.Decimal
}

// Cart is the in-memory ordered sequence of line items the operator is
// assembling for the next order. It is session state, never persisted.
type Cart struct {
	store CartStore
	lines []LineItem
}

// NewCart creates an empty cart backed by the given catalog store.
func NewCart(store CartStore) *Cart {
	return &Cart{store: store}
}

// AddLine validates the selection against current catalog state, prices it
// and appends a line item. Add-ons that are out of stock, unknown, or do not
// belong to the item's category are dropped from the line; each drop is
// reported in the returned warnings rather than failing the whole line.
// Stock is only checked here, never decremented: checkout is authoritative.
func (c *Cart) AddLine(ctx context.Context, product, size, temperature string, addonNames []string) (LineItem, []string, error) {
	item, err := c.store.GetMenuItemByName(ctx, product)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return LineItem{}, nil, fmt.Errorf("menu item %q: %w", product, ErrNotFound)
		}
		return LineItem{}, nil, fmt.Errorf("get menu item: %w", err)
	}
	if item.Stock <= 0 {
		return LineItem{}, nil, &OutOfStockError{Name: product}
	}

	if size == "" {
		size = enum.SizeRegular
	}
	if size != enum.SizeRegular && size != enum.SizeLarge {
		return LineItem{}, nil, fmt.Errorf("%w: size %q", ErrValidation, size)
	}

	price := numericToDecimal(item.Price)
	if size == enum.SizeLarge {
		price = price.Add(largeSurcharge)
	}

	temperature, err = resolveTemperature(item.Subcategory, temperature)
	if err != nil {
		return LineItem{}, nil, err
	}

	var warnings []string
	var selected []string
	for _, name := range addonNames {
		addon, err := c.store.GetAddonByName(ctx, name)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				warnings = append(warnings, fmt.Sprintf("add-on %q is not on the menu", name))
				continue
			}
			return LineItem{}, nil, fmt.Errorf("get add-on: %w", err)
		}
		if addon.Category != item.Category {
			warnings = append(warnings, fmt.Sprintf("add-on %q is not offered for %s", name, item.Category))
			continue
		}
		if addon.Stock <= 0 {
			warnings = append(warnings, fmt.Sprintf("add-on %q is out of stock", name))
			continue
		}
		selected = append(selected, addon.Name)
		price = price.Add(numericToDecimal(addon.Price))
	}

	line := LineItem{
		Product:     item.Name,
		Size:        size,
		Temperature: temperature,
		AddOns:      selected,
		UnitPrice:   price,
	}
	c.lines = append(c.lines, line)
	return line, warnings, nil
}

// RemoveLine removes the line at the given zero-based position.
func (c *Cart) RemoveLine(index int) error {
	if index < 0 || index >= len(c.lines) {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	c.lines = append(c.lines[:index], c.lines[index+1:]...)
	return nil
}

// Clear empties the cart unconditionally.
func (c *Cart) Clear() {
	c.lines = nil
}

// Total recomputes the cart total from its lines. Empty cart totals zero.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.lines {
		total = total.Add(line.UnitPrice)
	}
	return total
}

// Lines returns a copy of the cart's lines in insertion order.
func (c *Cart) Lines() []LineItem {
	return cloneLines(c.lines)
}

// Len reports the number of lines in the cart.
func (c *Cart) Len() int {
	return len(c.lines)
}

// resolveTemperature maps the requested temperature onto what the item's
// subcategory allows. Non-drink subcategories always get N/A.
func resolveTemperature(subcategory, temperature string) (string, error) {
	if !isDrinkSubcategory(subcategory) {
		return enum.TempNA, nil
	}
	switch temperature {
	case "":
		return enum.TempHot, nil
	case enum.TempHot, enum.TempCold, enum.TempIced:
		return temperature, nil
	}
	return "", fmt.Errorf("%w: temperature %q", ErrValidation, temperature)
}

func isDrinkSubcategory(subcategory string) bool {
	for _, marker := range []string{"Coffee", "Tea", "Drinks"} {
		if strings.Contains(subcategory, marker) {
			return true
		}
	}
	return false
}

func cloneLines(lines []LineItem) []LineItem {
	out := make([]LineItem, len(lines))
	for i, line := range lines {
		line.AddOns = append([]string(nil), line.AddOns...)
		out[i] = line
	}
	return out
}

// linesTotal sums the unit prices of a snapshot of lines.
func linesTotal(lines []LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.UnitPrice)
	}
	return total
}
