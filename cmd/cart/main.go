package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/cartkit/internal/config"
	"github.com/nikolayk812/cartkit/internal/domain"
	"github.com/nikolayk812/cartkit/internal/geometry"
	"github.com/nikolayk812/cartkit/internal/greeting"
	"github.com/nikolayk812/cartkit/internal/logging"
	"github.com/nikolayk812/cartkit/internal/port"
	"github.com/nikolayk812/cartkit/internal/repository"
	"github.com/nikolayk812/cartkit/internal/service"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const usage = `usage: cart <command> [arguments]

commands:
  total [-remove name]... [--] name=price...
                                          total an in-memory cart; use --
                                          before items whose name starts with -
  seed name[=price]...                    save products to the catalog
  list                                    list catalog products
  delete name                             delete a catalog product
  quote name...                           total a cart of catalog products
  hello                                   print a greeting
  area width height                       rectangle area
  circle-area radius                      circle area
`

var errUsage = errors.New("invalid usage")

type app struct {
	cfg    *config.Config
	logger zerolog.Logger
	out    *message.Printer
	stdout io.Writer
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprint(os.Stderr, usage)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}

	a := &app{
		cfg:    cfg,
		logger: logging.New(stderr, cfg.App.LogLevel, cfg.App.IsDevelopment()),
		out:    message.NewPrinter(language.English),
		stdout: stdout,
	}

	if len(args) == 0 {
		return fmt.Errorf("no command: %w", errUsage)
	}

	cmd, args := args[0], args[1:]

	switch cmd {
	case "total":
		return a.total(args)
	case "seed":
		return a.withCatalog(ctx, func(catalog port.CatalogRepository) error {
			return a.seed(ctx, catalog, args)
		})
	case "list":
		return a.withCatalog(ctx, func(catalog port.CatalogRepository) error {
			return a.list(ctx, catalog)
		})
	case "delete":
		return a.withCatalog(ctx, func(catalog port.CatalogRepository) error {
			return a.delete(ctx, catalog, args)
		})
	case "quote":
		return a.withCatalog(ctx, func(catalog port.CatalogRepository) error {
			return a.quote(ctx, catalog, args)
		})
	case "hello":
		_, err := fmt.Fprintln(a.stdout, greeting.Hello())
		return err
	case "area":
		return a.area(args)
	case "circle-area":
		return a.circleArea(args)
	default:
		return fmt.Errorf("unknown command %q: %w", cmd, errUsage)
	}
}

func (a *app) total(args []string) error {
	var removes []string

	fs := flag.NewFlagSet("total", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Func("remove", "remove every item with this name", func(name string) error {
		removes = append(removes, name)
		return nil
	})

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("fs.Parse: %w", errors.Join(err, errUsage))
	}

	var cart domain.Cart

	for _, arg := range fs.Args() {
		item, err := parseItem(arg)
		if err != nil {
			return fmt.Errorf("parseItem: %w", err)
		}

		if err := cart.Add(item); err != nil {
			return fmt.Errorf("cart.Add: %w", err)
		}
	}

	for _, name := range removes {
		removed := cart.RemoveByName(name)
		a.logger.Debug().Str("item", name).Int("removed", removed).Msg("items removed")
	}

	return a.printCart(cart.Items(), cart.Len(), cart.Total())
}

func (a *app) seed(ctx context.Context, catalog port.CatalogRepository, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("no products: %w", errUsage)
	}

	items := make([]domain.Item, 0, len(args))
	for _, arg := range args {
		item, err := parseItem(arg)
		if err != nil {
			return fmt.Errorf("parseItem: %w", err)
		}
		items = append(items, item)
	}

	products, err := catalog.SaveProducts(ctx, items)
	if err != nil {
		return fmt.Errorf("catalog.SaveProducts: %w", err)
	}

	a.logger.Info().Int("count", len(products)).Msg("catalog seeded")

	return a.printProducts(products)
}

func (a *app) list(ctx context.Context, catalog port.CatalogRepository) error {
	products, err := catalog.ListProducts(ctx)
	if err != nil {
		return fmt.Errorf("catalog.ListProducts: %w", err)
	}

	return a.printProducts(products)
}

func (a *app) delete(ctx context.Context, catalog port.CatalogRepository, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("delete takes one name: %w", errUsage)
	}

	deleted, err := catalog.DeleteProduct(ctx, args[0])
	if err != nil {
		return fmt.Errorf("catalog.DeleteProduct: %w", err)
	}
	if !deleted {
		return fmt.Errorf("product[%s]: %w", args[0], port.ErrProductNotFound)
	}

	_, err = a.out.Fprintf(a.stdout, "deleted %s\n", args[0])
	return err
}

func (a *app) quote(ctx context.Context, catalog port.CatalogRepository, args []string) error {
	svc := service.NewCartService(catalog, a.logger)

	quote, err := svc.Quote(ctx, args...)
	if err != nil {
		return fmt.Errorf("svc.Quote: %w", err)
	}

	return a.printCart(quote.Items, quote.Count, quote.Total)
}

func (a *app) area(args []string) error {
	values, err := parseFloats(args, 2)
	if err != nil {
		return fmt.Errorf("parseFloats: %w", err)
	}

	_, err = fmt.Fprintln(a.stdout, formatFloat(geometry.RectangleArea(values[0], values[1])))
	return err
}

func (a *app) circleArea(args []string) error {
	values, err := parseFloats(args, 1)
	if err != nil {
		return fmt.Errorf("parseFloats: %w", err)
	}

	_, err = fmt.Fprintln(a.stdout, formatFloat(geometry.CircleArea(values[0])))
	return err
}

func (a *app) withCatalog(ctx context.Context, fn func(catalog port.CatalogRepository) error) error {
	if !a.cfg.Database.Configured() {
		return fmt.Errorf("DATABASE_URL is not set")
	}

	pool, err := pgxpool.New(ctx, a.cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("pgxpool.New: %w", err)
	}
	defer pool.Close()

	return fn(repository.NewCatalog(pool))
}

func (a *app) printCart(items []domain.Item, count int, total decimal.Decimal) error {
	for _, item := range items {
		if _, err := a.out.Fprintf(a.stdout, "%s\t%s\n", item.Name, item.Price.Decimal); err != nil {
			return err
		}
	}

	_, err := a.out.Fprintf(a.stdout, "items: %d\ntotal: %s\n", count, total)
	return err
}

func (a *app) printProducts(products []domain.Product) error {
	for _, p := range products {
		price := "-"
		if p.Price.Valid {
			price = p.Price.Decimal.String()
		}

		if _, err := a.out.Fprintf(a.stdout, "%s\t%s\t%s\n", p.ID, p.Name, price); err != nil {
			return err
		}
	}

	return nil
}

// parseItem reads "name=price". A bare name yields an unpriced item.
func parseItem(arg string) (domain.Item, error) {
	name, rawPrice, found := strings.Cut(arg, "=")
	if name == "" {
		return domain.Item{}, fmt.Errorf("item[%s] has empty name", arg)
	}

	if !found {
		return domain.NewUnpricedItem(name), nil
	}

	price, err := decimal.NewFromString(rawPrice)
	if err != nil {
		return domain.Item{}, fmt.Errorf("price[%s] is not valid: %w", rawPrice, err)
	}

	return domain.NewItem(name, price), nil
}

func parseFloats(args []string, n int) ([]float64, error) {
	if len(args) != n {
		return nil, fmt.Errorf("want %d numbers, got %d: %w", n, len(args), errUsage)
	}

	values := make([]float64, 0, n)
	for _, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("strconv.ParseFloat: %w", err)
		}
		values = append(values, v)
	}

	return values, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
