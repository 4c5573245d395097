package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"gudangku-be/cmd/gudangku/output"
	"gudangku-be/internal/product"
	"gudangku-be/internal/utils"

	"github.com/spf13/cobra"
)

var (
	productName        string
	productDescription string
	productQuantity    int
	productPrice       float64
	productSupplier    string

	stockProductID uint
	stockQuantity  int
)

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "Manage the product catalog",
}

var productsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all products with their supplier",
	RunE: func(cmd *cobra.Command, args []string) error {
		a := newApp()
		defer a.Close()

		products, err := a.products.ListProducts(cmd.Context())
		if err != nil {
			return err
		}

		if len(products) == 0 {
			output.Muted("No products in inventory")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tDESCRIPTION\tQUANTITY\tPRICE\tSUPPLIER")
		for _, p := range products {
			fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\t%s\n",
				p.ID,
				p.Name,
				utils.PtrString(p.Description),
				p.Quantity,
				utils.FormatMoney(p.Price),
				utils.PtrStringOr(p.SupplierName, "N/A"),
			)
		}
		return w.Flush()
	},
}

var productsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a product to the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		a := newApp()
		defer a.Close()

		input := product.NewProductInput{
			Name:     productName,
			Quantity: productQuantity,
			Price:    productPrice,
		}
		if productDescription != "" {
			input.Description = &productDescription
		}
		if productSupplier != "" {
			input.SupplierName = &productSupplier
		}

		created, err := a.products.CreateProduct(cmd.Context(), input)
		if err != nil {
			return err
		}

		output.Success("Product added successfully! (id=%d)", created.ID)
		return nil
	},
}

var productsSetStockCmd = &cobra.Command{
	Use:   "set-stock",
	Short: "Override a product's stock quantity",
	RunE: func(cmd *cobra.Command, args []string) error {
		a := newApp()
		defer a.Close()

		updated, err := a.products.UpdateStock(cmd.Context(), stockProductID, stockQuantity)
		if err != nil {
			return err
		}

		output.Success("Stock updated successfully! %s now has %d units",
			updated.Name, updated.Quantity)
		return nil
	},
}

func init() {
	productsAddCmd.Flags().StringVar(&productName, "name", "", "product name (required)")
	productsAddCmd.Flags().StringVar(&productDescription, "description", "", "product description")
	productsAddCmd.Flags().IntVar(&productQuantity, "quantity", 0, "initial stock quantity")
	productsAddCmd.Flags().Float64Var(&productPrice, "price", 0, "unit price (required)")
	productsAddCmd.Flags().StringVar(&productSupplier, "supplier", "", "supplier name (must exist)")
	_ = productsAddCmd.MarkFlagRequired("name")
	_ = productsAddCmd.MarkFlagRequired("price")

	productsSetStockCmd.Flags().UintVar(&stockProductID, "id", 0, "product id (required)")
	productsSetStockCmd.Flags().IntVar(&stockQuantity, "quantity", 0, "new stock quantity (required)")
	_ = productsSetStockCmd.MarkFlagRequired("id")
	_ = productsSetStockCmd.MarkFlagRequired("quantity")

	productsCmd.AddCommand(productsListCmd)
	productsCmd.AddCommand(productsAddCmd)
	productsCmd.AddCommand(productsSetStockCmd)
	rootCmd.AddCommand(productsCmd)
}
