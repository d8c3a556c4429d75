package cli

import (
	"bufio"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/manohar12-max/Qkart-Ecommerce-Application/internal/model"
	"github.com/manohar12-max/Qkart-Ecommerce-Application/internal/storefront"

	"github.com/spf13/cobra"
)

func productRows(products []model.Product) []string {
	rows := make([]string, 0, len(products))
	for _, p := range products {
		rows = append(rows, fmt.Sprintf("%s\t%s\t%s\t%d\t%d", p.ID, p.Name, p.Category, p.Cost, p.Rating))
	}
	return rows
}

const productHeader = "ID\tNAME\tCATEGORY\tCOST\tRATING"

func NewProductsCommand(rootOpts *RootOptions) *cobra.Command {
	var search string
	var categories bool

	cmd := &cobra.Command{
		Use:   "products",
		Short: "List products, optionally filtered by name or category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(rootOpts, cmd)
			if err != nil {
				return err
			}
			if categories {
				list, err := a.client.Categories(cmd.Context())
				if err != nil {
					return a.fail(err, "cannot fetch categories")
				}
				return a.out.Line(list, strings.Join(list, "\n"))
			}
			catalog := storefront.NewCatalog(a.client, a.notifier)

			var products []model.Product
			if search != "" {
				products = catalog.Search(cmd.Context(), search)
			} else if products, err = catalog.Products(cmd.Context()); err != nil {
				return a.fail(err, "cannot fetch products")
			}
			if len(products) == 0 && !a.out.JSON() {
				return a.out.Line(products, "No products found")
			}
			return a.out.Table(products, productHeader, productRows(products))
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "search text")
	cmd.Flags().BoolVar(&categories, "categories", false, "list the product categories instead")
	return cmd
}

func NewProductCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "product <product-id>",
		Short: "Show one product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(rootOpts, cmd)
			if err != nil {
				return err
			}
			p, err := a.client.Product(cmd.Context(), args[0])
			if err != nil {
				return a.fail(err, "cannot fetch product "+args[0])
			}
			return a.out.Table(p, productHeader, productRows([]model.Product{*p}))
		},
	}
}

// NewSearchCommand reads search text line by line from stdin and runs a
// debounced search, printing results for the text that settled.
func NewSearchCommand(rootOpts *RootOptions) *cobra.Command {
	var delay time.Duration

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Interactive search: type text, one query per line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(rootOpts, cmd)
			if err != nil {
				return err
			}
			catalog := storefront.NewCatalog(a.client, a.notifier)
			ctx := cmd.Context()

			var mu sync.Mutex
			var printErr error
			d := storefront.NewDebouncer(delay, func(text string) {
				products := catalog.Search(ctx, text)
				mu.Lock()
				defer mu.Unlock()
				a.logger.Debug("search", "value", text, "results", len(products))
				fmt.Fprintf(a.out.Writer, "# %s\n", text)
				if err := a.out.Table(products, productHeader, productRows(products)); err != nil && printErr == nil {
					printErr = err
				}
			})
			defer d.Stop()

			sc := bufio.NewScanner(cmd.InOrStdin())
			for sc.Scan() {
				d.Trigger(strings.TrimSpace(sc.Text()))
			}
			d.Flush()

			mu.Lock()
			defer mu.Unlock()
			if err := sc.Err(); err != nil {
				return WrapExitError(ExitCommandError, "cannot read input", err)
			}
			return printErr
		},
	}

	cmd.Flags().DurationVar(&delay, "delay", storefront.DefaultSearchDelay, "debounce delay")
	return cmd
}
