package cli

import (
	"context"
	"fmt"

	"github.com/manohar12-max/Qkart-Ecommerce-Application/internal/model"
	"github.com/manohar12-max/Qkart-Ecommerce-Application/internal/storefront"

	"github.com/spf13/cobra"
)

type cartView struct {
	Items      []model.CartItem `json:"items"`
	TotalCount int              `json:"totalCount"`
	TotalValue int64            `json:"totalValue"`
}

func newCartView(items []model.CartItem) cartView {
	visible := storefront.Visible(items)
	return cartView{
		Items:      visible,
		TotalCount: storefront.TotalCount(visible),
		TotalValue: storefront.TotalValue(visible),
	}
}

func (a *app) printCart(items []model.CartItem) error {
	v := newCartView(items)
	if len(v.Items) == 0 && !a.out.JSON() {
		return a.out.Line(v, "Cart is empty. Add some items to the cart to checkout")
	}
	rows := make([]string, 0, len(v.Items)+1)
	for _, it := range v.Items {
		name := it.Name
		if !it.Resolved {
			name = "(unavailable)"
		}
		rows = append(rows, fmt.Sprintf("%s\t%s\t%d\t%d\t%d", it.ProductID, name, it.Qty, it.Cost, int64(it.Qty)*it.Cost))
	}
	rows = append(rows, fmt.Sprintf("\tTOTAL\t%d\t\t%d", v.TotalCount, v.TotalValue))
	return a.out.Table(v, "ID\tNAME\tQTY\tCOST\tSUBTOTAL", rows)
}

func NewCartCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "cart",
		Short: "Show the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(rootOpts, cmd)
			if err != nil {
				return err
			}
			sess, err := a.session()
			if err != nil {
				return err
			}
			cart, err := a.loadCart(cmd.Context(), sess, false)
			if err != nil {
				return err
			}
			return a.printCart(cart.Items())
		},
	}
}

type cartMutation func(ctx context.Context, cart *storefront.Cart, sess *storefront.Session, productID string) error

func newCartMutationCommand(rootOpts *RootOptions, use, short string, mutate cartMutation) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <product-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(rootOpts, cmd)
			if err != nil {
				return err
			}
			// Without a session the storefront itself warns and refuses.
			sess := a.state.Session
			var cart *storefront.Cart
			if sess.LoggedIn() {
				if cart, err = a.loadCart(cmd.Context(), sess, false); err != nil {
					return err
				}
			} else {
				cart = storefront.NewCart(a.client, a.notifier)
			}
			if err := mutate(cmd.Context(), cart, sess, args[0]); err != nil {
				return a.fail(err, "cart not updated")
			}
			return a.printCart(cart.Items())
		},
	}
}

func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	return newCartMutationCommand(rootOpts, "add", "Add a product that is not in the cart yet",
		func(ctx context.Context, c *storefront.Cart, s *storefront.Session, id string) error {
			return c.Add(ctx, s, id)
		})
}

func NewIncCommand(rootOpts *RootOptions) *cobra.Command {
	return newCartMutationCommand(rootOpts, "inc", "Increase a product's quantity by one",
		func(ctx context.Context, c *storefront.Cart, s *storefront.Session, id string) error {
			return c.Increment(ctx, s, id)
		})
}

func NewDecCommand(rootOpts *RootOptions) *cobra.Command {
	return newCartMutationCommand(rootOpts, "dec", "Decrease a product's quantity by one",
		func(ctx context.Context, c *storefront.Cart, s *storefront.Session, id string) error {
			return c.Decrement(ctx, s, id)
		})
}

func NewRemoveCommand(rootOpts *RootOptions) *cobra.Command {
	return newCartMutationCommand(rootOpts, "remove", "Remove a product from the cart",
		func(ctx context.Context, c *storefront.Cart, s *storefront.Session, id string) error {
			return c.Remove(ctx, s, id)
		})
}
