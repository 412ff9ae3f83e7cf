package main

import (
	"context"
	"fmt"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/foodorder-demo/internal/catalog"
	"github.com/nikolayk812/foodorder-demo/internal/checkout"
	"github.com/nikolayk812/foodorder-demo/internal/config"
	"github.com/nikolayk812/foodorder-demo/internal/domain"
	"github.com/nikolayk812/foodorder-demo/internal/logger"
	"github.com/nikolayk812/foodorder-demo/internal/port"
	"github.com/nikolayk812/foodorder-demo/internal/repository"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"
)

type options struct {
	user     string
	promo    string
	items    []string
	category string
	menu     bool
	history  bool
	timeout  time.Duration
}

func main() {
	opts := parseFlags(os.Args[1:])

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func parseFlags(args []string) options {
	var opts options

	fs := pflag.NewFlagSet("checkout", pflag.ExitOnError)
	fs.StringVarP(&opts.user, "user", "u", "", "signed-in user id")
	fs.StringVarP(&opts.promo, "promo", "p", "", "promo code")
	fs.StringArrayVarP(&opts.items, "item", "i", nil, `cart entry as "<food id>[=<quantity>]", repeatable`)
	fs.StringVarP(&opts.category, "category", "c", "", "menu category filter")
	fs.BoolVar(&opts.menu, "menu", false, "print the menu and exit")
	fs.BoolVar(&opts.history, "history", false, "print previous orders of the user and exit")
	fs.DurationVar(&opts.timeout, "timeout", 10*time.Second, "persistence timeout")
	_ = fs.Parse(args)

	return opts
}

func run(ctx context.Context, opts options, out io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	lg, err := logger.New(cfg.Log.Level)
	if err != nil {
		return err
	}
	defer func() { _ = lg.Sync() }()

	menu := catalog.DefaultIn(cfg.Checkout.Currency)
	if opts.menu {
		printMenu(out, menu, opts.category)
		return nil
	}

	repo, closeRepo, err := openRepository(ctx, cfg, lg)
	if err != nil {
		return err
	}
	defer closeRepo()

	submitter := checkout.NewSubmitter(repo, checkout.NewPromoCodes(cfg.Checkout.PromoCodes...),
		checkout.WithLogger(lg))

	var users port.UserProvider = port.StaticUser(opts.user)
	userID, _ := users.CurrentUserID(ctx)

	if opts.history {
		orders, err := submitter.History(ctx, userID)
		if err != nil {
			return err
		}
		printHistory(out, orders)
		return nil
	}

	cart := domain.NewCart(domain.WithTaxRate(cfg.Checkout.TaxRate), domain.WithCurrency(cfg.Checkout.Currency))
	for _, entry := range opts.items {
		id, qty, err := parseEntry(entry)
		if err != nil {
			return err
		}
		item, ok := menu.Lookup(id)
		if !ok {
			return fmt.Errorf("food[%s] is not on the menu", id)
		}
		if !cart.Contains(id) {
			if err := cart.Toggle(item); err != nil {
				return err
			}
		}
		cart.SetQuantity(id, qty)
	}

	if opts.promo != "" {
		if err := submitter.CheckPromo(opts.promo); err != nil {
			fmt.Fprintf(out, "Invalid promo code.\n")
		} else {
			fmt.Fprintf(out, "Promo code applied successfully!\n")
		}
	}

	submitCtx, cancel := context.WithTimeout(ctx, opts.timeout)
	defer cancel()

	order, err := submitter.SubmitAndClear(submitCtx, cart, userID, opts.promo)
	if err != nil {
		return fmt.Errorf("failed to place order: %w", err)
	}
	submitter.Acknowledge()

	printOrder(out, order)
	return nil
}

func openRepository(ctx context.Context, cfg *config.Config, lg *zap.Logger) (port.OrderRepository, func(), error) {
	if cfg.Database.URL == "" {
		lg.Info("DATABASE_URL not set, orders are kept in memory")
		return repository.NewMemoryOrder(), func() {}, nil
	}

	pool, err := pgxpool.New(ctx, cfg.Database.URL)
	if err != nil {
		return nil, nil, fmt.Errorf("pgxpool.New: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("pool.Ping: %w", err)
	}

	return repository.NewOrder(pool), pool.Close, nil
}

func parseEntry(entry string) (string, int, error) {
	id, qtyStr, found := strings.Cut(entry, "=")
	id = strings.TrimSpace(id)
	if !found {
		return id, 1, nil
	}

	qty, err := strconv.Atoi(strings.TrimSpace(qtyStr))
	if err != nil {
		return "", 0, fmt.Errorf("item[%s] quantity is not a number: %w", entry, err)
	}
	return id, qty, nil
}

func printMenu(out io.Writer, menu *catalog.Catalog, category string) {
	for _, item := range menu.ByCategory(category) {
		fmt.Fprintf(out, "%-16s %-8s %s\n", item.ID, item.Category, item.Price)
	}
}

func printOrder(out io.Writer, order domain.Order) {
	fmt.Fprintf(out, "Order %s placed (%s)\n", order.OrderID, order.Status)
	for _, line := range order.Lines {
		fmt.Fprintf(out, "  %s x%d - %s\n", line.FoodName, line.Quantity, line.LineTotal())
	}
	fmt.Fprintf(out, "Subtotal: %s\nTax: %s\nTotal: %s\n", order.Subtotal, order.Tax, order.Total)
	if order.PromoCode != "" {
		fmt.Fprintf(out, "Promo: %s\n", order.PromoCode)
	}
}

func printHistory(out io.Writer, orders []domain.Order) {
	if len(orders) == 0 {
		fmt.Fprintln(out, "No previous orders found")
		return
	}
	for _, order := range orders {
		fmt.Fprintf(out, "%s  %s  %s  status: %s\n",
			order.CreatedAt.Local().Format("Jan 02, 2006 15:04"), order.OrderID, order.Total, order.Status)
		for _, line := range order.Lines {
			fmt.Fprintf(out, "  %s x%d\n", line.FoodName, line.Quantity)
		}
	}
}
