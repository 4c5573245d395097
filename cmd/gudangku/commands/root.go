package commands

import (
	"fmt"
	"os"

	"gudangku-be/internal/config"
	"gudangku-be/internal/dashboard"
	"gudangku-be/internal/db"
	"gudangku-be/internal/order"
	"gudangku-be/internal/product"
	"gudangku-be/internal/supplier"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "gudangku",
	Short: "Gudangku - inventory tracking for products, suppliers and orders",
	Long: `Gudangku tracks products, suppliers and orders against a Postgres store.

It renders stock levels and low-stock alerts, records new products and
suppliers, overrides stock counts, and places orders that atomically
decrement stock.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// app bundles the wired services behind the commands.
type app struct {
	cfg       *config.Config
	db        interface{ Close() error }
	products  product.Service
	suppliers supplier.Service
	orders    order.Service
	dashboard dashboard.Service
}

func newApp() *app {
	cfg := config.LoadConfig()
	database := db.InitDB(cfg)

	productRepo := product.NewRepository(database)
	supplierRepo := supplier.NewRepository(database)
	orderRepo := order.NewRepository(database)

	return &app{
		cfg:       cfg,
		db:        database,
		products:  product.NewService(productRepo, supplierRepo),
		suppliers: supplier.NewService(supplierRepo),
		orders:    order.NewService(orderRepo),
		dashboard: dashboard.NewService(productRepo, supplierRepo, orderRepo),
	}
}

func (a *app) Close() {
	_ = a.db.Close()
}
