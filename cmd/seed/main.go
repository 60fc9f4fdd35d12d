package main

import (
	"context"
	"database/sql"
	"log"

	"github.com/golang-migrate/migrate/v4"
	pgmigrate "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"

	"github.com/brewverse/pos/internal/config"
	"github.com/brewverse/pos/internal/enum"
	"github.com/brewverse/pos/migrations"
)

type menuSeed struct {
	name        string
	category    string
	subcategory string
	price       string
	stock       int
}

type addonSeed struct {
	name     string
	category string
	price    string
	stock    int
}

var menuSeeds = []menuSeed{
	{"Espresso", enum.CategoryCoffee, "Hot Coffee", "60", 100},
	{"Americano", enum.CategoryCoffee, "Hot Coffee", "70", 100},
	{"Latte", enum.CategoryCoffee, "Hot Coffee", "80", 100},
	{"Cappuccino", enum.CategoryCoffee, "Hot Coffee", "80", 100},
	{"Mocha", enum.CategoryCoffee, "Hot Coffee", "90", 100},
	{"Flat White", enum.CategoryCoffee, "Hot Coffee", "85", 100},
	{"Iced Americano", enum.CategoryCoffee, "Cold Coffee", "75", 100},
	{"Iced Latte", enum.CategoryCoffee, "Cold Coffee", "85", 100},
	{"Iced Mocha", enum.CategoryCoffee, "Cold Coffee", "95", 100},
	{"Cold Brew", enum.CategoryCoffee, "Cold Coffee", "80", 100},
	{"Frappuccino", enum.CategoryCoffee, "Cold Coffee", "120", 100},
	{"Chocolate Muffin", enum.CategorySweetTreats, "Pastry", "40", 30},
	{"Blueberry Muffin", enum.CategorySweetTreats, "Pastry", "45", 30},
	{"Croissant", enum.CategorySweetTreats, "Pastry", "35", 30},
	{"Chocolate Chip Cookie", enum.CategorySweetTreats, "Pastry", "25", 30},
	{"Brownie", enum.CategorySweetTreats, "Pastry", "50", 30},
	{"Black Tea", enum.CategoryTea, "Hot Tea", "50", 100},
	{"Green Tea", enum.CategoryTea, "Hot Tea", "50", 100},
	{"Earl Grey", enum.CategoryTea, "Hot Tea", "55", 100},
	{"Chamomile", enum.CategoryTea, "Hot Tea", "55", 100},
	{"English Breakfast", enum.CategoryTea, "Hot Tea", "60", 100},
	{"Iced Tea", enum.CategoryTea, "Cold Tea", "55", 100},
	{"Iced Green Tea", enum.CategoryTea, "Cold Tea", "55", 100},
	{"Iced Lemon Tea", enum.CategoryTea, "Cold Tea", "60", 100},
	{"Peach Iced Tea", enum.CategoryTea, "Cold Tea", "65", 100},
	{"Hot Chocolate", enum.CategoryHotBeverages, "Hot Drinks", "65", 100},
	{"Matcha Latte", enum.CategoryHotBeverages, "Hot Drinks", "95", 100},
	{"Turmeric Latte", enum.CategoryHotBeverages, "Hot Drinks", "85", 100},
	{"Bubble Tea", enum.CategoryColdBeverages, "Cold Drinks", "120", 100},
	{"Coke Float", enum.CategoryColdBeverages, "Cold Drinks", "75", 10},
	{"Ham Sandwich", enum.CategoryFood, "Sandwich", "60", 50},
	{"Chicken Sandwich", enum.CategoryFood, "Sandwich", "65", 50},
	{"Veggie Sandwich", enum.CategoryFood, "Sandwich", "55", 50},
	{"Club Sandwich", enum.CategoryFood, "Sandwich", "80", 50},
	{"Grilled Cheese", enum.CategoryFood, "Sandwich", "50", 50},
}

var addonSeeds = []addonSeed{
	{"Extra Shot", enum.CategoryCoffee, "15", 100},
	{"Whipped Cream", enum.CategoryCoffee, "10", 100},
	{"Caramel Syrup", enum.CategoryCoffee, "15", 100},
	{"Chocolate Syrup", enum.CategoryCoffee, "15", 100},
	{"Vanilla Syrup", enum.CategoryCoffee, "15", 100},
	{"Hazelnut Syrup", enum.CategoryCoffee, "15", 100},
	{"Honey", enum.CategoryTea, "5", 100},
	{"Lemon", enum.CategoryTea, "5", 100},
	{"Mint", enum.CategoryTea, "5", 100},
	{"Ginger", enum.CategoryTea, "5", 100},
	{"Extra Cheese", enum.CategoryFood, "10", 100},
	{"Bacon", enum.CategoryFood, "15", 100},
	{"Avocado", enum.CategoryFood, "20", 100},
	{"Extra Scoop", enum.CategoryColdBeverages, "15", 50},
	{"Tapioca Pearls", enum.CategoryColdBeverages, "10", 100},
}

func main() {
	cfg := config.Load()
	ctx := context.Background()

	if err := applyMigrations(cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}
	log.Println("Schema up to date")

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Unable to connect to database: %v", err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		log.Fatalf("Unable to ping database: %v", err)
	}
	log.Println("Connected to database")

	// Seed in a transaction: the full catalog or nothing.
	tx, err := pool.Begin(ctx)
	if err != nil {
		log.Fatalf("Failed to begin transaction: %v", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	const insertMenu = `
		INSERT INTO menu (name, category, subcategory, price, stock)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (name) DO NOTHING`
	for _, m := range menuSeeds {
		if _, err := tx.Exec(ctx, insertMenu, m.name, m.category, m.subcategory, m.price, m.stock); err != nil {
			log.Fatalf("Failed to seed menu item %q: %v", m.name, err)
		}
	}

	const insertAddon = `
		INSERT INTO addons (name, category, price, stock)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (name) DO NOTHING`
	for _, a := range addonSeeds {
		if _, err := tx.Exec(ctx, insertAddon, a.name, a.category, a.price, a.stock); err != nil {
			log.Fatalf("Failed to seed addon %q: %v", a.name, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		log.Fatalf("Failed to commit: %v", err)
	}

	log.Printf("Seed completed: %d menu items, %d addons", len(menuSeeds), len(addonSeeds))
}

func applyMigrations(dbURL string) error {
	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		return err
	}
	defer db.Close()

	driver, err := pgmigrate.WithInstance(db, &pgmigrate.Config{})
	if err != nil {
		return err
	}
	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return err
	}
	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	return nil
}
