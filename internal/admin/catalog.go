package admin

import (
	"fmt"
	"io"

	"github.com/bagdasarian/club-shop/internal/domain"
	"github.com/spf13/cobra"
)

// productFlags - флаги товара. Цена не задается: она выводится сервисом.
type productFlags struct {
	name        string
	category    int64
	cost        decimalFlag
	pack        int
	tax         int
	image       string
	description string
	visible     bool
}

func bindProductFlags(cmd *cobra.Command) *productFlags {
	f := &productFlags{}
	flags := cmd.Flags()
	flags.StringVar(&f.name, "name", "", "product name")
	flags.Int64Var(&f.category, "category", 0, "category id")
	flags.Var(&f.cost, "cost", "cost of a pack excluding tax")
	flags.IntVar(&f.pack, "pack", domain.DefaultPackSize, "units per pack")
	flags.IntVar(&f.tax, "tax", int(domain.TaxRateReduced), "tax rate: 0, 9 or 21")
	flags.StringVar(&f.image, "image", "", "image path")
	flags.StringVar(&f.description, "description", "", "description")
	flags.BoolVar(&f.visible, "visible", true, "visible in the shop")
	return f
}

// apply переносит в product только явно переданные флаги
func (f *productFlags) apply(cmd *cobra.Command, product *domain.Product) {
	changed := cmd.Flags().Changed

	if changed("name") {
		product.Name = f.name
	}
	if changed("category") {
		product.CategoryID = f.category
	}
	if changed("cost") {
		product.CostExTax = f.cost.value
	}
	if changed("pack") {
		product.PackSize = f.pack
	}
	if changed("tax") {
		product.TaxRate = domain.TaxRate(f.tax)
	}
	if changed("image") {
		product.Image = f.image
	}
	if changed("description") {
		product.Description = f.description
	}
	if changed("visible") {
		product.Visible = f.visible
	}
}

func (c *Console) createProductCommand() *cobra.Command {
	var f *productFlags
	cmd := &cobra.Command{
		Use:   "create-product",
		Short: "Create a product; the price is derived from cost, tax and margin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requirePositive("category", f.category); err != nil {
				return err
			}
			if !f.cost.set {
				return domain.NewValidationError("--cost is required")
			}

			product := &domain.Product{
				PackSize: f.pack,
				TaxRate:  domain.TaxRate(f.tax),
				Visible:  f.visible,
			}
			f.apply(cmd, product)

			created, err := c.svc.Products.CreateProduct(cmd.Context(), product)
			if err != nil {
				return err
			}

			printProduct(cmd.OutOrStdout(), "created", created)
			return nil
		},
	}
	f = bindProductFlags(cmd)
	return cmd
}

func (c *Console) updateProductCommand() *cobra.Command {
	var (
		id int64
		f  *productFlags
	)
	cmd := &cobra.Command{
		Use:   "update-product",
		Short: "Update the given fields of a product and reprice it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requirePositive("id", id); err != nil {
				return err
			}

			product, err := c.svc.Products.GetProduct(cmd.Context(), id)
			if err != nil {
				return err
			}
			f.apply(cmd, product)

			updated, err := c.svc.Products.UpdateProduct(cmd.Context(), product)
			if err != nil {
				return err
			}

			printProduct(cmd.OutOrStdout(), "updated", updated)
			return nil
		},
	}
	cmd.Flags().Int64Var(&id, "id", 0, "product id")
	f = bindProductFlags(cmd)
	return cmd
}

func printProduct(out io.Writer, action string, p *domain.Product) {
	fmt.Fprintf(out, "product %d %q %s: price %s\n", p.ID, p.Name, action, p.Price.StringFixed(2))
}
