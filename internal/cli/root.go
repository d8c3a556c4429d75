package cli

import (
	"fmt"
	"os"

	"github.com/manohar12-max/Qkart-Ecommerce-Application/external/qkart"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	APIURL      string
	SessionPath string
	Verbose     bool
	Format      string // "json" | "text"
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the qkart storefront CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "qkart",
		Short: "QKART storefront client",
		Long: `Browse the QKART catalog, manage your cart and addresses, and place
orders against a QKART API server.

The session (token, username, wallet balance) and the selected shipping
address are kept in a YAML file between invocations.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			return nil
		},
	}

	apiURL := os.Getenv("QKART_API_URL")
	if apiURL == "" {
		apiURL = qkart.DefaultBaseURL
	}

	cmd.PersistentFlags().StringVar(&opts.APIURL, "api-url", apiURL, "QKART API base URL (env QKART_API_URL)")
	cmd.PersistentFlags().StringVar(&opts.SessionPath, "session-file", "", "session file (default ~/.qkart/session.yaml)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	cmd.AddCommand(NewLoginCommand(opts))
	cmd.AddCommand(NewRegisterCommand(opts))
	cmd.AddCommand(NewLogoutCommand(opts))
	cmd.AddCommand(NewProductsCommand(opts))
	cmd.AddCommand(NewProductCommand(opts))
	cmd.AddCommand(NewSearchCommand(opts))
	cmd.AddCommand(NewCartCommand(opts))
	cmd.AddCommand(NewAddCommand(opts))
	cmd.AddCommand(NewIncCommand(opts))
	cmd.AddCommand(NewDecCommand(opts))
	cmd.AddCommand(NewRemoveCommand(opts))
	cmd.AddCommand(NewAddressCommand(opts))
	cmd.AddCommand(NewCheckoutCommand(opts))
	cmd.AddCommand(NewOrdersCommand(opts))
	cmd.AddCommand(NewBalanceCommand(opts))
	cmd.AddCommand(NewTopUpCommand(opts))

	return cmd
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
