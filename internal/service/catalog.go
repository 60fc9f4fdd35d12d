package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"github.com/brewverse/pos/internal/database"
)

// CatalogStore defines the DB operations behind menu administration.
// Satisfied by *database.Queries.
type CatalogStore interface {
	CreateMenuItem(ctx context.Context, arg database.CreateMenuItemParams) (database.MenuItem, error)
	UpdateMenuItem(ctx context.Context, arg database.UpdateMenuItemParams) (database.MenuItem, error)
	DeleteMenuItem(ctx context.Context, name string) error
	GetMenuItemByName(ctx context.Context, name string) (database.MenuItem, error)
	ListMenuItems(ctx context.Context) ([]database.MenuItem, error)
	ListMenuItemsByCategory(ctx context.Context, category string) ([]database.MenuItem, error)
	ListLowStockMenuItems(ctx context.Context, stock int32) ([]database.MenuItem, error)
	UpdateMenuStock(ctx context.Context, arg database.UpdateMenuStockParams) (int64, error)
	CreateAddon(ctx context.Context, arg database.CreateAddonParams) (database.Addon, error)
	DeleteAddon(ctx context.Context, name string) error
	GetAddonByName(ctx context.Context, name string) (database.Addon, error)
	ListAddonsByCategory(ctx context.Context, category string) ([]database.Addon, error)
	ListLowStockAddons(ctx context.Context, stock int32) ([]database.Addon, error)
	UpdateAddonStock(ctx context.Context, arg database.UpdateAddonStockParams) (int64, error)
}

// ImageRemover deletes a stored product image. The default image is never
// removed.
type ImageRemover interface {
	Remove(path string) error
}

// Catalog manages the menu and add-on inventory.
type Catalog struct {
	store  CatalogStore
	images ImageRemover
}

// NewCatalog creates a new Catalog.
func NewCatalog(store CatalogStore, images ImageRemover) *Catalog {
	return &Catalog{store: store, images: images}
}

func parsePrice(raw string) (pgtype.Numeric, error) {
	price, err := decimal.NewFromString(raw)
	if err != nil {
		return pgtype.Numeric{}, fmt.Errorf("%w: price must be a number", ErrValidation)
	}
	if price.IsNegative() {
		return pgtype.Numeric{}, fmt.Errorf("%w: price must not be negative", ErrValidation)
	}
	return decimalToNumeric(price), nil
}

func parseStock(raw string) (int32, error) {
	stock, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: stock must be a whole number", ErrValidation)
	}
	if stock < 0 {
		return 0, fmt.Errorf("%w: stock must not be negative", ErrValidation)
	}
	return int32(stock), nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// CreateItem adds a new menu item. Price and stock arrive as raw user input
// and are validated here.
func (c *Catalog) CreateItem(ctx context.Context, name, category, subcategory, rawPrice, rawStock, imagePath string) (database.MenuItem, error) {
	if name == "" || category == "" {
		return database.MenuItem{}, fmt.Errorf("%w: name and category are required", ErrValidation)
	}
	price, err := parsePrice(rawPrice)
	if err != nil {
		return database.MenuItem{}, err
	}
	stock, err := parseStock(rawStock)
	if err != nil {
		return database.MenuItem{}, err
	}
	image := pgtype.Text{}
	if imagePath != "" {
		image = pgtype.Text{String: imagePath, Valid: true}
	}
	item, err := c.store.CreateMenuItem(ctx, database.CreateMenuItemParams{
		Name:        name,
		Category:    category,
		Subcategory: subcategory,
		Price:       price,
		Stock:       stock,
		ImagePath:   image,
	})
	if err != nil {
		if isUniqueViolation(err) {
			return database.MenuItem{}, fmt.Errorf("%w: %s", ErrDuplicateName, name)
		}
		return database.MenuItem{}, fmt.Errorf("create menu item: %w", err)
	}
	return item, nil
}

// UpdateItem replaces the mutable fields of an existing menu item, keyed by
// name. An empty imagePath keeps the current image.
func (c *Catalog) UpdateItem(ctx context.Context, name, category, subcategory, rawPrice, rawStock, imagePath string) (database.MenuItem, error) {
	current, err := c.store.GetMenuItemByName(ctx, name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return database.MenuItem{}, fmt.Errorf("%w: menu item %q", ErrNotFound, name)
		}
		return database.MenuItem{}, fmt.Errorf("get menu item: %w", err)
	}
	price, err := parsePrice(rawPrice)
	if err != nil {
		return database.MenuItem{}, err
	}
	stock, err := parseStock(rawStock)
	if err != nil {
		return database.MenuItem{}, err
	}
	image := current.ImagePath
	if imagePath != "" {
		image = pgtype.Text{String: imagePath, Valid: true}
	}
	item, err := c.store.UpdateMenuItem(ctx, database.UpdateMenuItemParams{
		Name:        name,
		Category:    category,
		Subcategory: subcategory,
		Price:       price,
		Stock:       stock,
		ImagePath:   image,
	})
	if err != nil {
		return database.MenuItem{}, fmt.Errorf("update menu item: %w", err)
	}
	return item, nil
}

// DeleteItem removes a menu item and its stored image.
func (c *Catalog) DeleteItem(ctx context.Context, name string) error {
	item, err := c.store.GetMenuItemByName(ctx, name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%w: menu item %q", ErrNotFound, name)
		}
		return fmt.Errorf("get menu item: %w", err)
	}
	if err := c.store.DeleteMenuItem(ctx, name); err != nil {
		return fmt.Errorf("delete menu item: %w", err)
	}
	if item.ImagePath.Valid {
		if err := c.images.Remove(item.ImagePath.String); err != nil {
			return fmt.Errorf("remove image: %w", err)
		}
	}
	return nil
}

// Restock sets the absolute stock level of a menu item.
func (c *Catalog) Restock(ctx context.Context, name, rawStock string) error {
	stock, err := parseStock(rawStock)
	if err != nil {
		return err
	}
	n, err := c.store.UpdateMenuStock(ctx, database.UpdateMenuStockParams{Name: name, Stock: stock})
	if err != nil {
		return fmt.Errorf("update menu stock: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: menu item %q", ErrNotFound, name)
	}
	return nil
}

// RestockAddon sets the absolute stock level of an add-on.
func (c *Catalog) RestockAddon(ctx context.Context, name, rawStock string) error {
	stock, err := parseStock(rawStock)
	if err != nil {
		return err
	}
	n, err := c.store.UpdateAddonStock(ctx, database.UpdateAddonStockParams{Name: name, Stock: stock})
	if err != nil {
		return fmt.Errorf("update addon stock: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: addon %q", ErrNotFound, name)
	}
	return nil
}

// CreateAddon adds a new add-on under a menu category.
func (c *Catalog) CreateAddon(ctx context.Context, name, category, rawPrice, rawStock string) (database.Addon, error) {
	if name == "" || category == "" {
		return database.Addon{}, fmt.Errorf("%w: name and category are required", ErrValidation)
	}
	price, err := parsePrice(rawPrice)
	if err != nil {
		return database.Addon{}, err
	}
	stock, err := parseStock(rawStock)
	if err != nil {
		return database.Addon{}, err
	}
	addon, err := c.store.CreateAddon(ctx, database.CreateAddonParams{
		Name:     name,
		Category: category,
		Price:    price,
		Stock:    stock,
	})
	if err != nil {
		if isUniqueViolation(err) {
			return database.Addon{}, fmt.Errorf("%w: %s", ErrDuplicateName, name)
		}
		return database.Addon{}, fmt.Errorf("create addon: %w", err)
	}
	return addon, nil
}

// DeleteAddon removes an add-on.
func (c *Catalog) DeleteAddon(ctx context.Context, name string) error {
	if _, err := c.store.GetAddonByName(ctx, name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%w: addon %q", ErrNotFound, name)
		}
		return fmt.Errorf("get addon: %w", err)
	}
	if err := c.store.DeleteAddon(ctx, name); err != nil {
		return fmt.Errorf("delete addon: %w", err)
	}
	return nil
}

// Items lists the full menu, unavailable items included.
func (c *Catalog) Items(ctx context.Context) ([]database.MenuItem, error) {
	items, err := c.store.ListMenuItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("list menu items: %w", err)
	}
	return items, nil
}

// ItemsByCategory lists the in-stock items of one category.
func (c *Catalog) ItemsByCategory(ctx context.Context, category string) ([]database.MenuItem, error) {
	items, err := c.store.ListMenuItemsByCategory(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("list menu items by category: %w", err)
	}
	return items, nil
}

// AddonsForItem lists the in-stock add-ons offered for a menu item, which
// are the add-ons registered under the item's category. An empty result
// means the item has no add-ons on offer.
func (c *Catalog) AddonsForItem(ctx context.Context, itemName string) ([]database.Addon, error) {
	item, err := c.store.GetMenuItemByName(ctx, itemName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: menu item %q", ErrNotFound, itemName)
		}
		return nil, fmt.Errorf("get menu item: %w", err)
	}
	addons, err := c.store.ListAddonsByCategory(ctx, item.Category)
	if err != nil {
		return nil, fmt.Errorf("list addons by category: %w", err)
	}
	return addons, nil
}

// LowStockReport holds everything at or below the low-stock threshold.
type LowStockReport struct {
	Items  []database.MenuItem
	Addons []database.Addon
}

// LowStock lists menu items and add-ons whose stock is at or below the
// threshold, most depleted first.
func (c *Catalog) LowStock(ctx context.Context, threshold int32) (*LowStockReport, error) {
	items, err := c.store.ListLowStockMenuItems(ctx, threshold)
	if err != nil {
		return nil, fmt.Errorf("list low stock menu items: %w", err)
	}
	addons, err := c.store.ListLowStockAddons(ctx, threshold)
	if err != nil {
		return nil, fmt.Errorf("list low stock addons: %w", err)
	}
	return &LowStockReport{Items: items, Addons: addons}, nil
}
