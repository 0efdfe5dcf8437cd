package admin

import (
	"fmt"
	"io"

	"github.com/bagdasarian/club-shop/internal/domain"
	"github.com/spf13/cobra"
)

// Заказы из консоли не создаются, только правятся. Каждая правка
// проводится через ledger и меняет баланс участника.

func (c *Console) addItemCommand() *cobra.Command {
	var (
		orderID   int64
		productID int64
		qty       int
	)
	cmd := &cobra.Command{
		Use:   "add-item",
		Short: "Add a line to an order at the current product price",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requirePositive("order", orderID); err != nil {
				return err
			}
			if err := requirePositive("product", productID); err != nil {
				return err
			}

			order, err := c.svc.Orders.AddItem(cmd.Context(), orderID, domain.NewOrderLine{ProductID: productID, Quantity: qty})
			if err != nil {
				return err
			}

			printOrder(cmd.OutOrStdout(), order)
			return nil
		},
	}
	cmd.Flags().Int64Var(&orderID, "order", 0, "order id")
	cmd.Flags().Int64Var(&productID, "product", 0, "product id")
	cmd.Flags().IntVar(&qty, "qty", 1, "quantity")
	return cmd
}

func (c *Console) updateItemCommand() *cobra.Command {
	var (
		id  int64
		qty int
	)
	cmd := &cobra.Command{
		Use:   "update-item",
		Short: "Change the quantity of an order line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requirePositive("id", id); err != nil {
				return err
			}

			order, err := c.svc.Orders.UpdateItemQuantity(cmd.Context(), id, qty)
			if err != nil {
				return err
			}

			printOrder(cmd.OutOrStdout(), order)
			return nil
		},
	}
	cmd.Flags().Int64Var(&id, "id", 0, "order item id")
	cmd.Flags().IntVar(&qty, "qty", 0, "new quantity")
	return cmd
}

func (c *Console) deleteItemCommand() *cobra.Command {
	var id int64
	cmd := &cobra.Command{
		Use:   "delete-item",
		Short: "Delete an order line and refund it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requirePositive("id", id); err != nil {
				return err
			}

			order, err := c.svc.Orders.DeleteItem(cmd.Context(), id)
			if err != nil {
				return err
			}

			printOrder(cmd.OutOrStdout(), order)
			return nil
		},
	}
	cmd.Flags().Int64Var(&id, "id", 0, "order item id")
	return cmd
}

func printOrder(out io.Writer, order *domain.Order) {
	fmt.Fprintf(out, "order %d: %d item(s), total %s\n", order.ID, len(order.Items), order.TotalAmount.StringFixed(2))
}
