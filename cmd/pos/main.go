package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/brewverse/pos/internal/auth"
	"github.com/brewverse/pos/internal/config"
	"github.com/brewverse/pos/internal/database"
	"github.com/brewverse/pos/internal/enum"
	"github.com/brewverse/pos/internal/imagestore"
	"github.com/brewverse/pos/internal/service"
)

const (
	loginAttempts     = 3
	lowStockThreshold = 10
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Unable to connect to database: %v", err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		log.Fatalf("Unable to ping database: %v", err)
	}

	images, err := imagestore.New(cfg.ImagesDir)
	if err != nil {
		log.Fatalf("Unable to prepare image store: %v", err)
	}

	authenticator, err := auth.New(cfg.BaristaUser, cfg.BaristaPassword)
	if err != nil {
		log.Fatalf("Unable to set up login: %v", err)
	}

	queries := database.New(pool)
	cart := service.NewCart(queries)
	stock := service.NewStockCoordinator(queries, pool, func(db database.DBTX) service.StockStore {
		return database.New(db)
	})
	ledger := service.NewSalesLedger(queries, pool, func(db database.DBTX) service.LedgerStore {
		return database.New(db)
	})
	queue := service.NewOrderQueue(stock, ledger)
	session := service.NewSession(cart, queue)
	catalog := service.NewCatalog(queries, images)

	in := bufio.NewScanner(os.Stdin)

	if !login(in, authenticator) {
		fmt.Println("Too many failed attempts.")
		os.Exit(1)
	}

	fmt.Println("Welcome to Brewverse POS. Type 'help' for commands.")
	repl(ctx, in, session, catalog, ledger, images)
}

func login(in *bufio.Scanner, a *auth.Authenticator) bool {
	for i := 0; i < loginAttempts; i++ {
		username := prompt(in, "Username: ")
		password := prompt(in, "Password: ")
		if err := a.Login(username, password); err == nil {
			return true
		}
		fmt.Println("Invalid credentials, try again.")
	}
	return false
}

func prompt(in *bufio.Scanner, label string) string {
	fmt.Print(label)
	if !in.Scan() {
		return ""
	}
	return strings.TrimSpace(in.Text())
}

func repl(ctx context.Context, in *bufio.Scanner, session *service.Session, catalog *service.Catalog, ledger *service.SalesLedger, images *imagestore.Store) {
	for {
		line := prompt(in, "> ")
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		cmd, args := fields[0], fields[1:]

		var err error
		switch cmd {
		case "menu":
			err = showMenu(ctx, catalog, args)
		case "add":
			err = addToCart(ctx, in, session, catalog)
		case "remove":
			err = removeFromCart(session, args)
		case "cart":
			showCart(session)
		case "clear":
			session.Cart.Clear()
			fmt.Println("Cart cleared.")
		case "service":
			err = setService(session, args)
		case "packaging":
			err = setPackaging(session, args)
		case "checkout":
			err = checkout(ctx, session)
		case "prepare":
			err = prepare(session)
		case "serve":
			err = serve(ctx, session)
		case "queue":
			showQueue(session)
		case "report":
			err = showReport(ctx, ledger)
		case "lowstock":
			err = showLowStock(ctx, catalog)
		case "restock":
			err = restock(ctx, catalog, args)
		case "additem":
			err = addItem(ctx, in, catalog, images)
		case "edititem":
			err = editItem(ctx, in, catalog, images)
		case "delitem":
			err = deleteItem(ctx, catalog, args)
		case "addaddon":
			err = addAddon(ctx, in, catalog)
		case "deladdon":
			err = deleteAddon(ctx, catalog, args)
		case "addons":
			err = showAddons(ctx, catalog, args)
		case "help":
			showHelp()
		case "quit", "exit":
			fmt.Println("Goodbye.")
			return
		default:
			fmt.Printf("Unknown command %q. Type 'help'.\n", cmd)
		}
		if err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	}
}

func showHelp() {
	fmt.Println(`Commands:
  menu [category]      list the menu, or one category's in-stock items
  add                  add an item to the cart (interactive)
  remove <n>           remove cart line n (1-based)
  cart                 show the cart
  clear                empty the cart
  service <type>       set Dine-in or Take-out
  packaging <type>     set Standard or Premium take-out packaging
  checkout             place the cart as a new order
  prepare              start preparing the next waiting order
  serve                serve the order being prepared
  queue                show pending orders
  report               sales report
  lowstock             items running low
  restock <name...> <stock>  set an item's stock level
  addons <name...>     list the add-ons offered for an item
  additem              add a menu item (interactive)
  edititem             update a menu item (interactive)
  delitem <name...>    delete a menu item and its image
  addaddon             add an add-on (interactive)
  deladdon <name...>   delete an add-on
  quit                 exit`)
}

func showMenu(ctx context.Context, catalog *service.Catalog, args []string) error {
	if len(args) > 0 {
		items, err := catalog.ItemsByCategory(ctx, strings.Join(args, " "))
		if err != nil {
			return err
		}
		for _, it := range items {
			fmt.Printf("  %-24s %8s  (stock %d)\n", it.Name, formatNumeric(it.Price), it.Stock)
		}
		return nil
	}
	items, err := catalog.Items(ctx)
	if err != nil {
		return err
	}
	category := ""
	for _, it := range items {
		if it.Category != category {
			category = it.Category
			fmt.Printf("%s:\n", category)
		}
		note := ""
		if it.Stock == 0 {
			note = "  [out of stock]"
		}
		fmt.Printf("  %-24s %8s%s\n", it.Name, formatNumeric(it.Price), note)
	}
	return nil
}

func addToCart(ctx context.Context, in *bufio.Scanner, session *service.Session, catalog *service.Catalog) error {
	name := prompt(in, "Item: ")
	if name == "" {
		return errors.New("no item given")
	}

	addons, err := catalog.AddonsForItem(ctx, name)
	if err != nil {
		return err
	}
	if len(addons) > 0 {
		fmt.Println("Add-ons:")
		for _, a := range addons {
			fmt.Printf("  %-20s %8s\n", a.Name, formatNumeric(a.Price))
		}
	}

	size := prompt(in, "Size (Regular/Large) [Regular]: ")
	temperature := prompt(in, "Temperature (Hot/Cold/Iced) [Hot]: ")
	var chosen []string
	if len(addons) > 0 {
		raw := prompt(in, "Add-ons (comma separated, empty for none): ")
		for _, part := range strings.Split(raw, ",") {
			if a := strings.TrimSpace(part); a != "" {
				chosen = append(chosen, a)
			}
		}
	}

	line, warnings, err := session.Cart.AddLine(ctx, name, size, temperature, chosen)
	if err != nil {
		return err
	}
	for _, w := range warnings {
		fmt.Printf("Note: %s\n", w)
	}
	fmt.Printf("Added %s for %s. Cart total: %s\n",
		line.Product, line.UnitPrice.StringFixed(2), session.Cart.Total().StringFixed(2))
	return nil
}

func removeFromCart(session *service.Session, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: remove <n>")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return errors.New("usage: remove <n>")
	}
	if err := session.Cart.RemoveLine(n - 1); err != nil {
		return err
	}
	fmt.Printf("Removed line %d. Cart total: %s\n", n, session.Cart.Total().StringFixed(2))
	return nil
}

func showCart(session *service.Session) {
	lines := session.Cart.Lines()
	if len(lines) == 0 {
		fmt.Println("Cart is empty.")
		return
	}
	for i, line := range lines {
		fmt.Printf("  %d. %s", i+1, describeLine(line))
		fmt.Printf("  %s\n", line.UnitPrice.StringFixed(2))
	}
	fmt.Printf("Service: %s, Packaging: %s\n", session.ServiceType(), session.PackagingType())
	fmt.Printf("Total: %s\n", session.Cart.Total().StringFixed(2))
}

func describeLine(line service.LineItem) string {
	var b strings.Builder
	b.WriteString(line.Product)
	if line.Size != "" && line.Size != enum.SizeRegular {
		fmt.Fprintf(&b, " (%s)", line.Size)
	}
	if line.Temperature != "" && line.Temperature != enum.TempNA {
		fmt.Fprintf(&b, " - %s", line.Temperature)
	}
	if len(line.AddOns) > 0 {
		fmt.Fprintf(&b, " + %s", strings.Join(line.AddOns, ", "))
	}
	return b.String()
}

func setService(session *service.Session, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: service <Dine-in|Take-out>")
	}
	serviceType := strings.Join(args, " ")
	if err := session.SetServiceType(serviceType); err != nil {
		return err
	}
	fmt.Printf("Service type set to %s.\n", serviceType)
	return nil
}

func setPackaging(session *service.Session, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: packaging <Standard|Premium>")
	}
	packaging := strings.Join(args, " ")
	if err := session.SetPackaging(packaging); err != nil {
		return err
	}
	fmt.Printf("Packaging set to %s.\n", packaging)
	return nil
}

func checkout(ctx context.Context, session *service.Session) error {
	order, err := session.Checkout(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Order #%d placed: %d item(s), total %s.\n",
		order.CustomerNumber, len(order.Items), order.Total.StringFixed(2))
	return nil
}

func prepare(session *service.Session) error {
	order, err := session.Queue.PrepareNext()
	if err != nil {
		return err
	}
	fmt.Printf("Preparing order #%d.\n", order.CustomerNumber)
	return nil
}

func serve(ctx context.Context, session *service.Session) error {
	receipt, err := session.Queue.ServeOrder(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("--- Receipt: order #%d ---\n", receipt.CustomerNumber)
	for _, item := range receipt.Items {
		desc := item.Description
		if len(item.AddOns) > 0 {
			desc += " + " + strings.Join(item.AddOns, ", ")
		}
		fmt.Printf("  %-36s %8s\n", desc, item.Price.StringFixed(2))
	}
	fmt.Printf("Service: %s, Packaging: %s\n", receipt.ServiceType, receipt.PackagingType)
	fmt.Printf("Total: %s\n", receipt.Total.StringFixed(2))
	return nil
}

func showQueue(session *service.Session) {
	orders := session.Queue.Snapshot()
	if len(orders) == 0 {
		fmt.Println("Queue is empty.")
		return
	}
	for _, o := range orders {
		fmt.Printf("  #%d  %-10s %d item(s)  %s\n",
			o.CustomerNumber, o.Status, len(o.Items), o.Total.StringFixed(2))
	}
}

func showReport(ctx context.Context, ledger *service.SalesLedger) error {
	report, err := ledger.SalesReport(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Orders served: %d\n", report.OrderCount)
	fmt.Printf("Total revenue: %s\n", report.TotalRevenue.StringFixed(2))
	if len(report.PopularItems) > 0 {
		fmt.Println("Top items:")
		for i, p := range report.PopularItems {
			fmt.Printf("  %d. %-24s sold %d\n", i+1, p.Name, p.Count)
		}
	}
	return nil
}

func showLowStock(ctx context.Context, catalog *service.Catalog) error {
	report, err := catalog.LowStock(ctx, lowStockThreshold)
	if err != nil {
		return err
	}
	if len(report.Items) == 0 && len(report.Addons) == 0 {
		fmt.Println("Nothing is running low.")
		return nil
	}
	for _, it := range report.Items {
		fmt.Printf("  %-24s stock %d\n", it.Name, it.Stock)
	}
	for _, a := range report.Addons {
		fmt.Printf("  %-24s stock %d (add-on)\n", a.Name, a.Stock)
	}
	return nil
}

func restock(ctx context.Context, catalog *service.Catalog, args []string) error {
	if len(args) < 2 {
		return errors.New("usage: restock <name...> <stock>")
	}
	name := strings.Join(args[:len(args)-1], " ")
	rawStock := args[len(args)-1]
	if err := catalog.Restock(ctx, name, rawStock); err == nil {
		fmt.Printf("Restocked %s to %s.\n", name, rawStock)
		return nil
	} else if !errors.Is(err, service.ErrNotFound) {
		return err
	}
	// Not a menu item; try the add-ons.
	if err := catalog.RestockAddon(ctx, name, rawStock); err != nil {
		return err
	}
	fmt.Printf("Restocked add-on %s to %s.\n", name, rawStock)
	return nil
}

func showAddons(ctx context.Context, catalog *service.Catalog, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: addons <name...>")
	}
	addons, err := catalog.AddonsForItem(ctx, strings.Join(args, " "))
	if err != nil {
		return err
	}
	if len(addons) == 0 {
		fmt.Println("No add-ons offered for this item.")
		return nil
	}
	for _, a := range addons {
		fmt.Printf("  %-20s %8s  (stock %d)\n", a.Name, formatNumeric(a.Price), a.Stock)
	}
	return nil
}

// saveImage stores the image at src and returns its path, or "" to keep the
// item on the default image.
func saveImage(images *imagestore.Store, src string) (string, error) {
	if src == "" {
		return "", nil
	}
	return images.Save(src)
}

func addItem(ctx context.Context, in *bufio.Scanner, catalog *service.Catalog, images *imagestore.Store) error {
	name := prompt(in, "Name: ")
	category := prompt(in, "Category: ")
	subcategory := prompt(in, "Subcategory: ")
	price := prompt(in, "Price: ")
	stock := prompt(in, "Stock: ")
	imagePath, err := saveImage(images, prompt(in, "Image file (empty for default): "))
	if err != nil {
		return err
	}

	item, err := catalog.CreateItem(ctx, name, category, subcategory, price, stock, imagePath)
	if err != nil {
		return err
	}
	fmt.Printf("Added %s to the menu.\n", item.Name)
	return nil
}

func editItem(ctx context.Context, in *bufio.Scanner, catalog *service.Catalog, images *imagestore.Store) error {
	name := prompt(in, "Name: ")
	category := prompt(in, "Category: ")
	subcategory := prompt(in, "Subcategory: ")
	price := prompt(in, "Price: ")
	stock := prompt(in, "Stock: ")
	imagePath, err := saveImage(images, prompt(in, "Image file (empty to keep current): "))
	if err != nil {
		return err
	}

	item, err := catalog.UpdateItem(ctx, name, category, subcategory, price, stock, imagePath)
	if err != nil {
		return err
	}
	fmt.Printf("Updated %s.\n", item.Name)
	return nil
}

func deleteItem(ctx context.Context, catalog *service.Catalog, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: delitem <name...>")
	}
	name := strings.Join(args, " ")
	if err := catalog.DeleteItem(ctx, name); err != nil {
		return err
	}
	fmt.Printf("Deleted %s.\n", name)
	return nil
}

func addAddon(ctx context.Context, in *bufio.Scanner, catalog *service.Catalog) error {
	name := prompt(in, "Name: ")
	category := prompt(in, "Category: ")
	price := prompt(in, "Price: ")
	stock := prompt(in, "Stock: ")

	addon, err := catalog.CreateAddon(ctx, name, category, price, stock)
	if err != nil {
		return err
	}
	fmt.Printf("Added add-on %s.\n", addon.Name)
	return nil
}

func deleteAddon(ctx context.Context, catalog *service.Catalog, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: deladdon <name...>")
	}
	name := strings.Join(args, " ")
	if err := catalog.DeleteAddon(ctx, name); err != nil {
		return err
	}
	fmt.Printf("Deleted add-on %s.\n", name)
	return nil
}

func formatNumeric(n pgtype.Numeric) string {
	v, err := n.Value()
	if err != nil {
		return "?"
	}
	s, ok := v.(string)
	if !ok {
		return "?"
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return s
	}
	return d.StringFixed(2)
}
