package cli

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/manohar12-max/Qkart-Ecommerce-Application/external/qkart"
	"github.com/manohar12-max/Qkart-Ecommerce-Application/internal/model"
	"github.com/manohar12-max/Qkart-Ecommerce-Application/internal/storefront"

	"github.com/spf13/cobra"
)

func NewCheckoutCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "checkout",
		Short: "Place an order for the cart using the selected address",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(rootOpts, cmd)
			if err != nil {
				return err
			}
			// The checkout guards report a missing session themselves.
			sess := a.state.Session
			var items []model.CartItem
			book := storefront.NewAddressBook(a.client, a.notifier, "")
			if sess.LoggedIn() {
				cart, err := a.loadCart(cmd.Context(), sess, true)
				if err != nil {
					return err
				}
				items = cart.Items()
				if book, err = a.addressBook(cmd.Context(), sess); err != nil {
					return err
				}
			}

			if len(storefront.Visible(items)) == 0 && sess.LoggedIn() {
				return NewExitError(ExitFailure, "cart is empty")
			}

			resp, err := storefront.NewCheckout(a.client, a.notifier).Submit(cmd.Context(), sess, items, book)
			var verr *storefront.ValidationError
			switch {
			case errors.As(err, &verr):
				return WrapExitError(ExitFailure, "checkout blocked", err)
			case qkart.StatusCode(err) == http.StatusBadRequest:
				return WrapExitError(ExitFailure, "order rejected", err)
			case err != nil:
				return a.fail(err, "order failed")
			}

			if err := a.save(); err != nil {
				return err
			}
			if a.out.JSON() {
				return a.out.Line(resp, "")
			}
			fmt.Fprintf(a.out.Writer, "Order %s placed\n", resp.OrderID)
			return a.printBalance(sess)
		},
	}
}

func NewOrdersCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "orders",
		Short: "List past orders",
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
			orders, err := a.client.Orders(cmd.Context(), sess.Token)
			if err != nil {
				return a.fail(err, "cannot fetch orders")
			}
			if len(orders) == 0 && !a.out.JSON() {
				return a.out.Line(orders, "No orders yet")
			}
			rows := make([]string, 0, len(orders))
			for _, o := range orders {
				rows = append(rows, fmt.Sprintf("%s\t%s\t%d\t%d", o.ID, o.CreatedAt.Format("2006-01-02 15:04"), len(o.Items), o.Total))
			}
			return a.out.Table(orders, "ORDER\tPLACED\tLINES\tTOTAL", rows)
		},
	}
}
