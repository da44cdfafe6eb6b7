package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"stockpilot/app/forms"
	"stockpilot/app/models"
	"stockpilot/app/services"
)

var supplierFlags struct {
	search   string
	category string
	sort     string
	desc     bool
	page     int

	name        string
	contact     string
	email       string
	phone       string
	addCategory string
}

func init() {
	f := suppliersCmd.Flags()
	f.StringVar(&supplierFlags.search, "search", "", "match name, contact person or email")
	f.StringVar(&supplierFlags.category, "category", "all", "filter by category")
	f.StringVar(&supplierFlags.sort, "sort", "name", "sort field: name | contact | email | category")
	f.BoolVar(&supplierFlags.desc, "desc", false, "sort descending")
	f.IntVar(&supplierFlags.page, "page", 1, "page number")

	af := suppliersAddCmd.Flags()
	af.StringVar(&supplierFlags.name, "name", "", "supplier name")
	af.StringVar(&supplierFlags.contact, "contact", "", "contact person")
	af.StringVar(&supplierFlags.email, "email", "", "contact email")
	af.StringVar(&supplierFlags.phone, "phone", "", "contact number")
	af.StringVar(&supplierFlags.addCategory, "category", models.DefaultCategory, "category: Apparel | Footwear | Accessories")
}

func loadSuppliers(ctx context.Context) (*services.SupplierService, error) {
	client, err := boot()
	if err != nil {
		return nil, err
	}
	svc := services.NewSupplierService(client)
	if err := svc.Load(ctx); err != nil {
		return nil, err
	}
	return svc, nil
}

// stockpilot suppliers
var suppliersCmd = &cobra.Command{
	Use:   "suppliers",
	Short: "List suppliers with search, category filter, sorting and paging",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := loadSuppliers(cmd.Context())
		if err != nil {
			return err
		}

		view := svc.View()
		view.SetSearch(supplierFlags.search)
		view.SetFilter("category", supplierFlags.category)
		view.SetSort(supplierFlags.sort, supplierFlags.desc)
		view.SetPage(supplierFlags.page)

		page := view.Page()
		w := table()
		fmt.Fprintln(w, "ID\tNAME\tCONTACT\tEMAIL\tPHONE\tCATEGORY")
		for _, s := range page.Records {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				s.ID, s.Name, s.ContactPerson, s.Email, s.ContactNumber, s.Category)
		}
		if err := w.Flush(); err != nil {
			return err
		}
		pager(page)
		return nil
	},
}

// stockpilot suppliers:add
var suppliersAddCmd = &cobra.Command{
	Use:   "suppliers:add",
	Short: "Create a supplier",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := loadSuppliers(cmd.Context())
		if err != nil {
			return err
		}

		form := forms.NewSupplierForm()
		form.Name = supplierFlags.name
		form.ContactPerson = supplierFlags.contact
		form.Email = supplierFlags.email
		form.ContactNumber = supplierFlags.phone
		form.Category = supplierFlags.addCategory

		created, err := svc.Create(cmd.Context(), form)
		if err != nil {
			return err
		}
		fmt.Printf("Created supplier %s (%s)\n", created.ID, created.Name)
		return nil
	},
}

// stockpilot suppliers:rm <id>
var suppliersRmCmd = &cobra.Command{
	Use:   "suppliers:rm <id>",
	Short: "Delete a supplier",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := loadSuppliers(cmd.Context())
		if err != nil {
			return err
		}
		if err := svc.Delete(cmd.Context(), models.ID(args[0])); err != nil {
			return err
		}
		fmt.Printf("Deleted supplier %s\n", args[0])
		return nil
	},
}
