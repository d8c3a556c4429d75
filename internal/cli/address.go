package cli

import (
	"fmt"
	"strings"

	"github.com/manohar12-max/Qkart-Ecommerce-Application/internal/storefront"

	"github.com/spf13/cobra"
)

func (a *app) printAddresses(book *storefront.AddressBook) error {
	list := book.Addresses()
	if len(list) == 0 && !a.out.JSON() {
		return a.out.Line(list, "No addresses found for this account. Please add one to proceed")
	}
	rows := make([]string, 0, len(list))
	for _, addr := range list {
		mark := ""
		if addr.ID == book.Selected() {
			mark = "*"
		}
		rows = append(rows, fmt.Sprintf("%s\t%s\t%s", mark, addr.ID, addr.Address))
	}
	return a.out.Table(list, "SEL\tID\tADDRESS", rows)
}

func NewAddressCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "address",
		Short: "Manage shipping addresses",
	}
	cmd.AddCommand(newAddressListCommand(rootOpts))
	cmd.AddCommand(newAddressAddCommand(rootOpts))
	cmd.AddCommand(newAddressDeleteCommand(rootOpts))
	cmd.AddCommand(newAddressSelectCommand(rootOpts))
	return cmd
}

// withAddressBook loads the session and address book before fn.
func withAddressBook(rootOpts *RootOptions, fn func(cmd *cobra.Command, a *app, sess *storefront.Session, book *storefront.AddressBook, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, err := newApp(rootOpts, cmd)
		if err != nil {
			return err
		}
		sess, err := a.session()
		if err != nil {
			return err
		}
		book, err := a.addressBook(cmd.Context(), sess)
		if err != nil {
			return err
		}
		return fn(cmd, a, sess, book, args)
	}
}

func newAddressListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List addresses; the selected one is marked *",
		Args:  cobra.NoArgs,
		RunE: withAddressBook(rootOpts, func(cmd *cobra.Command, a *app, _ *storefront.Session, book *storefront.AddressBook, _ []string) error {
			return a.printAddresses(book)
		}),
	}
}

func newAddressAddCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "add <address...>",
		Short: "Add an address",
		Args:  cobra.MinimumNArgs(1),
		RunE: withAddressBook(rootOpts, func(cmd *cobra.Command, a *app, sess *storefront.Session, book *storefront.AddressBook, args []string) error {
			if err := book.Add(cmd.Context(), sess, strings.Join(args, " ")); err != nil {
				return a.fail(err, "address not added")
			}
			return a.printAddresses(book)
		}),
	}
}

func newAddressDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <address-id>",
		Short: "Delete an address",
		Args:  cobra.ExactArgs(1),
		RunE: withAddressBook(rootOpts, func(cmd *cobra.Command, a *app, sess *storefront.Session, book *storefront.AddressBook, args []string) error {
			if err := book.Delete(cmd.Context(), sess, args[0]); err != nil {
				return a.fail(err, "address not deleted")
			}
			if book.Selected() != a.state.SelectedAddress {
				a.state.SelectedAddress = book.Selected()
				if err := a.save(); err != nil {
					return err
				}
			}
			return a.printAddresses(book)
		}),
	}
}

func newAddressSelectCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "select <address-id>",
		Short: "Choose the shipping address for checkout",
		Args:  cobra.ExactArgs(1),
		RunE: withAddressBook(rootOpts, func(cmd *cobra.Command, a *app, _ *storefront.Session, book *storefront.AddressBook, args []string) error {
			if err := book.Select(args[0]); err != nil {
				return WrapExitError(ExitCommandError, "cannot select "+args[0], err)
			}
			a.state.SelectedAddress = book.Selected()
			if err := a.save(); err != nil {
				return err
			}
			return a.printAddresses(book)
		}),
	}
}
