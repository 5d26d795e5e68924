package main

import (
	"bufio"
	"context"
	"log"
	"os"

	"shop-cli/config"
	"shop-cli/internal/cart"
	"shop-cli/internal/cli"
	"shop-cli/internal/service"
	"shop-cli/internal/store"
	"shop-cli/internal/util"
)

func main() {
	cfg := config.Load()

	if err := util.InitLogger(cfg.App.Env); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer util.SyncLogger()

	logger := util.GetLogger()
	logger.Info("Starting shop-cli")

	db, err := store.NewStore(cfg.Database.URL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	if err := db.InitSchema(ctx); err != nil {
		log.Fatalf("Failed to initialize schema: %v", err)
	}
	log.Println("Database ready")

	snapshots, err := newSnapshotStore(cfg, db)
	if err != nil {
		log.Fatalf("Failed to initialize cart snapshot store: %v", err)
	}
	if closer, ok := snapshots.(interface{ Close() error }); ok {
		defer closer.Close()
	}

	authService := service.NewAuthService(db)
	catalogService := service.NewCatalogService(db)
	checkoutService := service.NewCheckoutService(db)

	ui := cli.NewUI(authService, catalogService, checkoutService, snapshots,
		bufio.NewReader(os.Stdin), os.Stdout)
	ui.Run(ctx)

	log.Println("Bye")
}

func newSnapshotStore(cfg *config.Config, db *store.Store) (cart.SnapshotStore, error) {
	switch cfg.Cart.Backend {
	case "file":
		return cart.NewFileStore(cfg.Cart.Dir)
	case "redis":
		return cart.NewRedisStore(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	default:
		return cart.NewDBStore(db), nil
	}
}
