package cli

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/manohar12-max/Qkart-Ecommerce-Application/external/qkart"
	"github.com/manohar12-max/Qkart-Ecommerce-Application/internal/storefront"

	"github.com/spf13/cobra"
)

// app is the per-invocation wiring shared by the commands.
type app struct {
	client   *qkart.Client
	file     storefront.SessionFile
	state    *storefront.State
	out      *OutputFormatter
	notifier storefront.Notifier
	logger   *slog.Logger
}

func newApp(opts *RootOptions, cmd *cobra.Command) (*app, error) {
	level := slog.LevelWarn
	if opts.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	path := opts.SessionPath
	if path == "" {
		p, err := storefront.DefaultSessionPath()
		if err != nil {
			return nil, WrapExitError(ExitCommandError, "cannot locate session file", err)
		}
		path = p
	}
	file := storefront.SessionFile{Path: path}
	state, err := file.Load()
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "cannot read session file", err)
	}
	logger.Debug("session loaded", "path", path, "logged_in", state.Session.LoggedIn())

	return &app{
		client:   qkart.NewClient(opts.APIURL, nil),
		file:     file,
		state:    state,
		out:      &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()},
		notifier: notifier{w: cmd.ErrOrStderr()},
		logger:   logger,
	}, nil
}

func (a *app) save() error {
	if err := a.file.Save(a.state); err != nil {
		return WrapExitError(ExitCommandError, "cannot write session file", err)
	}
	return nil
}

func (a *app) session() (*storefront.Session, error) {
	if !a.state.Session.LoggedIn() {
		return nil, NewExitError(ExitCommandError, "not logged in, run `qkart login` first")
	}
	return a.state.Session, nil
}

// fail converts a workflow error into an exit error. A 401 means the
// token expired or was revoked, so the stored session is dropped.
func (a *app) fail(err error, message string) error {
	if qkart.StatusCode(err) == http.StatusUnauthorized {
		a.logger.Debug("token rejected, clearing session")
		a.state.Session = nil
		a.state.SelectedAddress = ""
		_ = a.save()
		return NewExitError(ExitCommandError, "session expired, run `qkart login` again")
	}
	if errors.Is(err, storefront.ErrNotLoggedIn) {
		return NewExitError(ExitCommandError, "not logged in, run `qkart login` first")
	}
	return WrapExitError(ExitFailure, message, err)
}

// loadCart fetches the catalog and the cart and reconciles them. A failed
// catalog fetch leaves every item unresolved, unless strict is set: totals
// are then unknown, so checkout must not go ahead.
func (a *app) loadCart(ctx context.Context, sess *storefront.Session, strict bool) (*storefront.Cart, error) {
	products, err := storefront.NewCatalog(a.client, a.notifier).Products(ctx)
	if err != nil {
		if strict {
			return nil, a.fail(err, "cannot fetch products")
		}
		a.logger.Debug("catalog unavailable, showing unresolved items", "error", err)
	}
	cart := storefront.NewCart(a.client, a.notifier)
	cart.SetCatalog(products)
	if _, err := cart.Load(ctx, sess); err != nil {
		return nil, a.fail(err, "cannot fetch cart")
	}
	a.logger.Debug("cart loaded", "products", len(products), "items", len(cart.Items()))
	return cart, nil
}

// addressBook fetches the address list, dropping a remembered selection
// that no longer exists.
func (a *app) addressBook(ctx context.Context, sess *storefront.Session) (*storefront.AddressBook, error) {
	book := storefront.NewAddressBook(a.client, a.notifier, a.state.SelectedAddress)
	if err := book.Refresh(ctx, sess); err != nil {
		return nil, a.fail(err, "cannot fetch addresses")
	}
	if book.Selected() != a.state.SelectedAddress {
		a.state.SelectedAddress = book.Selected()
		if err := a.save(); err != nil {
			return nil, err
		}
	}
	return book, nil
}
