package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"
	"trendx-service/internal/database"
	"trendx-service/internal/logging"
	"trendx-service/internal/seed"
	"trendx-service/internal/service"
)

func main() {
	products := flag.Int("products", seed.DefaultCounts.Products, "number of products to generate")
	customers := flag.Int("customers", seed.DefaultCounts.Customers, "number of customers to generate")
	orders := flag.Int("orders", seed.DefaultCounts.Orders, "number of orders to generate")
	rngSeed := flag.Uint64("seed", 0, "random seed, 0 picks one from the clock")
	flag.Parse()

	cfg, err := database.LoadConfig()
	if err != nil {
		log.Fatal("failed to load config: ", err)
	}
	logger := logging.New(os.Stderr, cfg.LogLevel).With("service", "trendx-seed")

	ctx := context.Background()

	store, err := database.OpenStore(ctx, cfg, logger)
	if err != nil {
		log.Fatal("failed to open store: ", err)
	}
	defer store.Close(ctx)

	if *rngSeed == 0 {
		*rngSeed = uint64(time.Now().UnixNano())
	}
	logger.Info("seeding store", "driver", store.Driver, "seed", *rngSeed)

	counts := seed.Counts{Products: *products, Customers: *customers, Orders: *orders}
	if err := seed.Run(ctx, store.Repos, seed.NewGenerator(*rngSeed, time.Now()), counts, logger); err != nil {
		store.Close(ctx)
		log.Fatal("seeding failed: ", err)
	}

	stats, err := service.NewDashboardService(store.Repos).Stats(ctx)
	if err != nil {
		store.Close(ctx)
		log.Fatal("failed to read statistics: ", err)
	}

	rule := strings.Repeat("=", 50)
	fmt.Println(rule)
	fmt.Println("DATABASE STATISTICS")
	fmt.Println(rule)
	fmt.Printf("Total Products:  %d\n", stats.TotalProducts)
	fmt.Printf("Total Customers: %d\n", stats.TotalCustomers)
	fmt.Printf("Total Orders:    %d\n", stats.TotalOrders)
	fmt.Printf("Total Revenue:   $%s\n", stats.TotalRevenue.StringFixed(2))
	fmt.Printf("Inventory Value: $%s\n", stats.InventoryValue.StringFixed(2))
	fmt.Println(rule)
	fmt.Printf("Database seeded successfully! Start the server and visit http://localhost%s\n", cfg.HTTPAddr)
}
