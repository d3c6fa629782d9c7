package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/angelmondragon/storefront/internal/cart"
	"github.com/angelmondragon/storefront/internal/catalog"
	"github.com/angelmondragon/storefront/internal/listing"
	"github.com/angelmondragon/storefront/internal/productform"
	"github.com/angelmondragon/storefront/pkg/config"
	"github.com/angelmondragon/storefront/pkg/enums"
	"github.com/angelmondragon/storefront/pkg/logger"
	"github.com/joho/godotenv"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "storefront"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "storefront",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	catalogStore := catalog.NewStore()
	loader, err := catalog.NewLoader(catalogStore, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create catalog loader", err)
		os.Exit(1)
	}

	ctx := context.Background()
	if err := loader.LoadFile(ctx, cfg.Catalog.SeedPath); err != nil {
		// the store surfaces the error flag; the shop still opens empty
		logg.Warn(ctx, "starting with an empty catalog")
	}

	cartStore := cart.NewStore()
	ctx = logg.WithSessionID(ctx, cartStore.ID().String())

	session, err := listing.NewSession(catalogStore, listing.Options{
		PageSize:       cfg.Listing.PageSize,
		ComposeFilters: cfg.Listing.ComposeFilters,
	})
	if err != nil {
		logg.Error(ctx, "failed to create listing session", err)
		os.Exit(1)
	}

	boundary, err := productform.NewBoundary(catalogStore, logg)
	if err != nil {
		logg.Error(ctx, "failed to create form boundary", err)
		os.Exit(1)
	}

	logg.Info(ctx, "storefront ready")
	repl(ctx, logg, catalogStore, cartStore, session, boundary)
}

func repl(ctx context.Context, logg *logger.Logger, catalogStore *catalog.Store, cartStore *cart.Store, session *listing.Session, boundary *productform.Boundary) {
	fmt.Println("storefront — type 'help' for commands")
	printListing(session.View())

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		cmd, arg, _ := strings.Cut(line, " ")
		arg = strings.TrimSpace(arg)

		switch cmd {
		case "help":
			printHelp()
		case "list":
			printListing(session.View())
		case "search":
			session.SetKeyword(arg)
			printListing(session.View())
		case "category":
			id, err := strconv.Atoi(arg)
			if err != nil {
				fmt.Println("usage: category <id> (0 for all)")
				continue
			}
			session.SetCategory(id)
			printListing(session.View())
		case "sort":
			mode, err := parseSortArg(arg)
			if err != nil {
				fmt.Println("usage: sort low|high|none")
				continue
			}
			session.SetSort(mode)
			printListing(session.View())
		case "page":
			page, err := strconv.Atoi(arg)
			if err != nil {
				fmt.Println("usage: page <n>")
				continue
			}
			session.SetPage(page)
			printListing(session.View())
		case "show":
			id, err := strconv.Atoi(arg)
			if err != nil {
				fmt.Println("usage: show <product id>")
				continue
			}
			printDetail(catalogStore, id)
		case "add":
			id, err := strconv.Atoi(arg)
			if err != nil {
				fmt.Println("usage: add <product id>")
				continue
			}
			product, ok := catalogStore.FindProduct(id)
			if !ok {
				fmt.Println("no such product")
				continue
			}
			cartStore.Add(product)
			fmt.Printf("%s is now waiting in your cart (%d items)\n", product.Name, cartStore.ItemCount())
		case "rm":
			id, err := strconv.Atoi(arg)
			if err != nil {
				fmt.Println("usage: rm <product id>")
				continue
			}
			cartStore.Remove(id)
			printCart(cartStore)
		case "inc", "dec":
			id, err := strconv.Atoi(arg)
			if err != nil {
				fmt.Printf("usage: %s <product id>\n", cmd)
				continue
			}
			change := enums.QuantityIncrease
			if cmd == "dec" {
				change = enums.QuantityDecrease
			}
			cartStore.ChangeQuantity(id, change)
			printCart(cartStore)
		case "cart":
			printCart(cartStore)
		case "new":
			submitForm(ctx, boundary, arg, nil)
		case "edit":
			idText, payload, _ := strings.Cut(arg, " ")
			id, err := strconv.Atoi(idText)
			if err != nil {
				fmt.Println("usage: edit <product id> <json form>")
				continue
			}
			submitForm(ctx, boundary, payload, &id)
		case "quit", "exit":
			logg.Info(ctx, "storefront closing")
			return
		default:
			fmt.Printf("unknown command %q, try 'help'\n", cmd)
		}
	}
}

func parseSortArg(arg string) (enums.SortMode, error) {
	switch arg {
	case "low":
		return enums.SortModeLowHigh, nil
	case "high":
		return enums.SortModeHighLow, nil
	case "none":
		return enums.SortModeNone, nil
	}
	return "", fmt.Errorf("unknown sort %q", arg)
}

func submitForm(ctx context.Context, boundary *productform.Boundary, payload string, editID *int) {
	form, err := productform.Decode(strings.NewReader(payload))
	if err != nil {
		fmt.Println("invalid form:", err)
		return
	}
	product, err := boundary.Submit(ctx, form, editID)
	if err != nil {
		fmt.Println("submit failed:", err)
		return
	}
	if editID == nil {
		fmt.Printf("product %d added\n", product.ID)
	} else {
		fmt.Printf("product %d updated\n", product.ID)
	}
}

func printHelp() {
	fmt.Println(`commands:
  list                       show the current listing page
  search <text>              filter by name (empty clears)
  category <id>              filter by category, 0 for all
  sort low|high|none         order by price
  page <n>                   jump to a page
  show <id>                  product detail
  add <id>                   add a product to the cart
  rm <id>                    remove a cart line
  inc <id> / dec <id>        adjust a cart line by one
  cart                       show the cart
  new <json form>            add a product via the form
  edit <id> <json form>      edit a product via the form
  quit`)
}

func printListing(view listing.Result) {
	if view.Loading {
		fmt.Println("loading products...")
	}
	if view.LoadError != "" {
		fmt.Println("catalog error:", view.LoadError)
	}
	if view.Total == 0 {
		fmt.Println("no products")
		return
	}

	for _, p := range view.Items {
		fmt.Printf("  [%d] %-20s %8s SAR\n", p.ID, p.Name, p.Price.StringFixed(2))
	}
	fmt.Printf("page %d of %d (%d products)  ", view.Page, view.TotalPages, view.Total)
	for _, b := range view.Buttons {
		if b.Ellipsis {
			fmt.Print("… ")
			continue
		}
		if b.Current {
			fmt.Printf("[%d] ", b.Page)
			continue
		}
		fmt.Printf("%d ", b.Page)
	}
	fmt.Println()
}

func printDetail(store *catalog.Store, id int) {
	product, ok := store.FindProduct(id)
	if !ok {
		// missing product renders nothing
		return
	}
	fmt.Printf("%s — %s SAR\n", product.Name, product.Price.StringFixed(2))
	if product.Description != "" {
		fmt.Println(product.Description)
	}
	if len(product.Sizes) > 0 {
		fmt.Println("sizes:", strings.Join(product.Sizes, ", "))
	}
	if len(product.Variants) > 0 {
		fmt.Println("variants:", strings.Join(product.Variants, ", "))
	}
	fmt.Printf("in stock: %d\n", product.Stock)
}

func printCart(store *cart.Store) {
	items := store.Items()
	if len(items) == 0 {
		fmt.Println("cart is empty")
		return
	}
	for _, item := range items {
		fmt.Printf("  %dx [%d] %-20s %8s SAR\n", item.Quantity, item.Product.ID, item.Product.Name, item.Product.Price.StringFixed(2))
	}
	fmt.Printf("total items: %d\n", store.ItemCount())
}
