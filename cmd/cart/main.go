package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/cartstate-demo/internal/backend"
	"github.com/nikolayk812/cartstate-demo/internal/cart"
	"github.com/nikolayk812/cartstate-demo/internal/config"
	"github.com/nikolayk812/cartstate-demo/internal/domain"
	"github.com/nikolayk812/cartstate-demo/internal/logger"
	"github.com/nikolayk812/cartstate-demo/internal/notify"
	"github.com/nikolayk812/cartstate-demo/internal/port"
	"github.com/nikolayk812/cartstate-demo/internal/repository"
	"github.com/nikolayk812/cartstate-demo/internal/stock"
)

const usage = `usage: cart <command> [args]

commands:
  list                  print the cart
  total                 print the cart total
  products              print the product listing
  add ID                add one unit of a product
  remove ID             remove a product from the cart
  update ID AMOUNT      set the amount of a product
  inc ID                increase the amount of a product by one
  dec ID                decrease the amount of a product by one (not below 1)
`

var errUsage = errors.New("invalid usage")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprint(os.Stderr, usage)
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}

	log := logger.New(logger.Options{Service: "cart", Env: cfg.AppEnv, Level: cfg.LogLevel, Output: stderr})

	client, err := backend.New(cfg.APIURL, nil)
	if err != nil {
		return fmt.Errorf("backend.New: %w", err)
	}

	slot, closeSlot, err := openSlot(ctx, cfg)
	if err != nil {
		return fmt.Errorf("openSlot: %w", err)
	}
	defer closeSlot()

	persistence, err := repository.NewCartBridge(slot, cfg.StorageKey, log)
	if err != nil {
		return fmt.Errorf("repository.NewCartBridge: %w", err)
	}

	notes := notify.NewChannel(16)

	store, err := cart.NewStore(ctx, cart.Options{
		Stock:       stock.NewOracle(client),
		Products:    client,
		Persistence: persistence,
		Notifier:    notify.Fanout(notes, notify.NewLog(log)),
		Currency:    cfg.Currency,
		Logger:      log,
	})
	if err != nil {
		return fmt.Errorf("cart.NewStore: %w", err)
	}

	out, err := dispatch(ctx, store, client, args)
	if err != nil {
		return err
	}

	for _, n := range notes.Drain() {
		fmt.Fprintf(stderr, "error: %s (product %d)\n", n.Message, n.ProductID)
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("json.Encode: %w", err)
	}

	return nil
}

// dispatch returns the value to print. Rejected cart operations are not
// errors here: they are reported through notifications.
func dispatch(ctx context.Context, store *cart.Store, client *backend.Client, args []string) (any, error) {
	cmd, rest := args[0], args[1:]

	switch cmd {
	case "list":
		return items(store.Cart()), nil
	case "total":
		total := store.Total()
		return map[string]string{"amount": total.Amount.StringFixed(2), "currency": total.Currency.String()}, nil
	case "products":
		products, err := client.ListProducts(ctx)
		if err != nil {
			return nil, fmt.Errorf("client.ListProducts: %w", err)
		}
		return products, nil
	}

	ids, err := parseInts(rest)
	if err != nil {
		return nil, err
	}

	switch {
	case cmd == "add" && len(ids) == 1:
		c, _ := store.AddProduct(ctx, ids[0])
		return items(c), nil
	case cmd == "remove" && len(ids) == 1:
		c, _ := store.RemoveProduct(ctx, ids[0])
		return items(c), nil
	case cmd == "update" && len(ids) == 2:
		c, _ := store.UpdateProductAmount(ctx, domain.AmountUpdate{ProductID: ids[0], Amount: ids[1]})
		return items(c), nil
	case cmd == "inc" && len(ids) == 1:
		current := store.Cart().Amount(ids[0])
		c, _ := store.UpdateProductAmount(ctx, domain.AmountUpdate{ProductID: ids[0], Amount: current + 1})
		return items(c), nil
	case cmd == "dec" && len(ids) == 1:
		current := store.Cart().Amount(ids[0])
		if current <= 1 {
			return items(store.Cart()), nil
		}
		c, _ := store.UpdateProductAmount(ctx, domain.AmountUpdate{ProductID: ids[0], Amount: current - 1})
		return items(c), nil
	}

	return nil, errUsage
}

func openSlot(ctx context.Context, cfg config.Config) (port.Slot, func(), error) {
	nop := func() {}

	switch cfg.Storage {
	case config.StorageMemory:
		return repository.NewMemorySlot(), nop, nil
	case config.StorageRedis:
		client := repository.NewRedisClient(repository.RedisOptions{
			Address:  cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		return repository.NewRedisSlot(client), func() { _ = client.Close() }, nil
	case config.StoragePostgres:
		pool, err := pgxpool.New(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, nop, fmt.Errorf("pgxpool.New: %w", err)
		}
		return repository.NewPostgresSlot(pool), pool.Close, nil
	default:
		slot, err := repository.NewFileSlot(cfg.FileDir)
		if err != nil {
			return nil, nop, fmt.Errorf("repository.NewFileSlot: %w", err)
		}
		return slot, nop, nil
	}
}

func items(c domain.Cart) []domain.CartItem {
	if c.Items == nil {
		return []domain.CartItem{}
	}
	return c.Items
}

func parseInts(args []string) ([]int, error) {
	out := make([]int, 0, len(args))
	for _, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", errUsage, a)
		}
		out = append(out, n)
	}
	return out, nil
}

