package cli

import (
	"fmt"

	"github.com/manohar12-max/Qkart-Ecommerce-Application/internal/storefront"

	"github.com/spf13/cobra"
)

type balanceView struct {
	Username    string `json:"username"`
	Balance     int64  `json:"balance"`
	Provisional bool   `json:"provisional,omitempty"`
}

func (a *app) printBalance(sess *storefront.Session) error {
	text := fmt.Sprintf("Wallet balance: %d", sess.Balance)
	if sess.BalanceProvisional {
		text += " (provisional, run `qkart balance --refresh`)"
	}
	return a.out.Line(balanceView{sess.Username, sess.Balance, sess.BalanceProvisional}, text)
}

func NewBalanceCommand(rootOpts *RootOptions) *cobra.Command {
	var refresh bool

	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Show the wallet balance",
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
			if refresh {
				me, err := a.client.Me(cmd.Context(), sess.Token)
				if err != nil {
					return a.fail(err, "cannot refresh balance")
				}
				sess.Balance = me.Balance
				sess.BalanceProvisional = false
				if err := a.save(); err != nil {
					return err
				}
			}
			return a.printBalance(sess)
		},
	}

	cmd.Flags().BoolVar(&refresh, "refresh", false, "fetch the current balance from the server")
	return cmd
}

func NewTopUpCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "topup <amount>",
		Short: "Start a wallet top-up and print the payment page URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(rootOpts, cmd)
			if err != nil {
				return err
			}
			sess, err := a.session()
			if err != nil {
				return err
			}
			var amount int64
			if _, err := fmt.Sscan(args[0], &amount); err != nil || amount <= 0 {
				return NewExitError(ExitCommandError, "amount must be a positive integer")
			}
			resp, err := a.client.TopUp(cmd.Context(), sess.Token, amount)
			if err != nil {
				return a.fail(err, "top-up not started")
			}
			return a.out.Line(resp, fmt.Sprintf("Complete the payment at %s\nThe balance updates once the payment settles.", resp.RedirectURL))
		},
	}
}
