package commands

import (
	"fmt"

	"gudangku-be/cmd/gudangku/output"
	"gudangku-be/internal/utils"

	"github.com/spf13/cobra"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show entity totals, stock levels and low-stock alerts",
	RunE: func(cmd *cobra.Command, args []string) error {
		a := newApp()
		defer a.Close()

		ov, err := a.dashboard.Overview(cmd.Context(), a.cfg.LowStockThreshold)
		if err != nil {
			return err
		}

		output.Primary("Dashboard")
		fmt.Printf("  Total Products:  %d\n", ov.Stats.TotalProducts)
		fmt.Printf("  Total Suppliers: %d\n", ov.Stats.TotalSuppliers)
		fmt.Printf("  Total Orders:    %d\n", ov.Stats.TotalOrders)

		output.Primary("Stock Levels")
		if len(ov.StockLevels) == 0 {
			output.Muted("No products in inventory")
		} else {
			max := 0
			for _, lvl := range ov.StockLevels {
				if lvl.Quantity > max {
					max = lvl.Quantity
				}
			}
			for _, lvl := range ov.StockLevels {
				fmt.Println("  " + output.Bar(lvl.ProductName, lvl.Quantity, max, 40))
			}
		}

		output.Primary("Low Stock Alerts")
		if len(ov.LowStock) == 0 {
			output.Muted("No products are running low on stock.")
		} else {
			for _, p := range ov.LowStock {
				output.Warning("%s: %d left (supplier: %s)",
					p.Name, p.Quantity, utils.PtrStringOr(p.SupplierName, "N/A"))
			}
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}
