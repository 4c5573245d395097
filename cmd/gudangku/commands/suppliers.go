package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"gudangku-be/cmd/gudangku/output"
	"gudangku-be/internal/supplier"
	"gudangku-be/internal/utils"

	"github.com/spf13/cobra"
)

var (
	supplierName    string
	supplierContact string
	supplierEmail   string
	supplierPhone   string
	supplierAddress string
)

var suppliersCmd = &cobra.Command{
	Use:   "suppliers",
	Short: "Manage suppliers",
}

var suppliersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all suppliers",
	RunE: func(cmd *cobra.Command, args []string) error {
		a := newApp()
		defer a.Close()

		suppliers, err := a.suppliers.ListSuppliers(cmd.Context())
		if err != nil {
			return err
		}

		if len(suppliers) == 0 {
			output.Muted("No suppliers registered")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tCONTACT\tEMAIL\tPHONE\tADDRESS")
		for _, s := range suppliers {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
				s.ID,
				s.Name,
				utils.PtrString(s.ContactPerson),
				utils.PtrString(s.Email),
				utils.PtrString(s.Phone),
				utils.PtrString(s.Address),
			)
		}
		return w.Flush()
	},
}

var suppliersAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Register a supplier",
	RunE: func(cmd *cobra.Command, args []string) error {
		a := newApp()
		defer a.Close()

		input := supplier.NewSupplierInput{Name: supplierName}
		if supplierContact != "" {
			input.ContactPerson = &supplierContact
		}
		if supplierEmail != "" {
			input.Email = &supplierEmail
		}
		if supplierPhone != "" {
			input.Phone = &supplierPhone
		}
		if supplierAddress != "" {
			input.Address = &supplierAddress
		}

		created, err := a.suppliers.CreateSupplier(cmd.Context(), input)
		if err != nil {
			return err
		}

		output.Success("Supplier added successfully! (id=%d)", created.ID)
		return nil
	},
}

func init() {
	suppliersAddCmd.Flags().StringVar(&supplierName, "name", "", "supplier name (required)")
	suppliersAddCmd.Flags().StringVar(&supplierContact, "contact", "", "contact person")
	suppliersAddCmd.Flags().StringVar(&supplierEmail, "email", "", "contact email")
	suppliersAddCmd.Flags().StringVar(&supplierPhone, "phone", "", "contact phone")
	suppliersAddCmd.Flags().StringVar(&supplierAddress, "address", "", "supplier address")
	_ = suppliersAddCmd.MarkFlagRequired("name")

	suppliersCmd.AddCommand(suppliersListCmd)
	suppliersCmd.AddCommand(suppliersAddCmd)
	rootCmd.AddCommand(suppliersCmd)
}
