package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"gudangku-be/cmd/gudangku/output"
	"gudangku-be/internal/order"
	"gudangku-be/internal/utils"

	"github.com/spf13/cobra"
)

var (
	orderProductID   uint
	orderProductName string
	orderQuantity    int

	showOrderID uint
)

var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "Place and inspect orders",
}

var ordersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all orders",
	RunE: func(cmd *cobra.Command, args []string) error {
		a := newApp()
		defer a.Close()

		orders, err := a.orders.ListOrders(cmd.Context())
		if err != nil {
			return err
		}

		if len(orders) == 0 {
			output.Muted("No orders placed yet")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tREFERENCE\tDATE\tSTATUS\tTOTAL")
		for _, o := range orders {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
				o.ID,
				o.Reference,
				o.OrderDate.Format("2006-01-02 15:04"),
				o.Status,
				utils.FormatMoney(o.TotalAmount),
			)
		}
		return w.Flush()
	},
}

var ordersCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Place an order for a product, decrementing its stock",
	RunE: func(cmd *cobra.Command, args []string) error {
		a := newApp()
		defer a.Close()

		input := order.PlaceOrderInput{Quantity: orderQuantity}
		if cmd.Flags().Changed("product-id") {
			input.ProductID = &orderProductID
		}
		if orderProductName != "" {
			input.ProductName = &orderProductName
		}

		placed, err := a.orders.PlaceOrder(cmd.Context(), input)
		if err != nil {
			return err
		}

		output.Success("Order placed successfully! %s, total %s",
			placed.Reference, utils.FormatMoney(placed.TotalAmount))
		return nil
	},
}

var ordersShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show an order with its line items",
	RunE: func(cmd *cobra.Command, args []string) error {
		a := newApp()
		defer a.Close()

		o, err := a.orders.GetOrderDetail(cmd.Context(), showOrderID)
		if err != nil {
			return err
		}

		output.Primary("Order #%d  %s", o.ID, o.Reference)
		fmt.Printf("  Date:   %s\n", o.OrderDate.Format("2006-01-02 15:04"))
		fmt.Printf("  Status: %s\n", o.Status)

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "  PRODUCT\tQUANTITY\tUNIT PRICE\tLINE TOTAL")
		for _, item := range o.Items {
			fmt.Fprintf(w, "  %s\t%d\t%s\t%s\n",
				item.ProductName,
				item.Quantity,
				utils.FormatMoney(item.UnitPrice),
				utils.FormatMoney(item.LineTotal()),
			)
		}
		if err := w.Flush(); err != nil {
			return err
		}

		fmt.Printf("  Total:  %s\n", utils.FormatMoney(o.TotalAmount))
		return nil
	},
}

func init() {
	ordersCreateCmd.Flags().UintVar(&orderProductID, "product-id", 0, "product id to order")
	ordersCreateCmd.Flags().StringVar(&orderProductName, "product", "", "product name to order")
	ordersCreateCmd.Flags().IntVar(&orderQuantity, "quantity", 1, "quantity to order")

	ordersShowCmd.Flags().UintVar(&showOrderID, "id", 0, "order id (required)")
	_ = ordersShowCmd.MarkFlagRequired("id")

	ordersCmd.AddCommand(ordersListCmd)
	ordersCmd.AddCommand(ordersCreateCmd)
	ordersCmd.AddCommand(ordersShowCmd)
	rootCmd.AddCommand(ordersCmd)
}
