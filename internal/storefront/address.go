package storefront

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/manohar12-max/Qkart-Ecommerce-Application/external/qkart"
	"github.com/manohar12-max/Qkart-Ecommerce-Application/internal/model"
)

// AddressBook is the user's address list plus a locally selected id.
// The list is only ever replaced wholesale by a successful backend
// answer; the selection is cleared whenever it leaves the list.
type AddressBook struct {
	api      AddressAPI
	notifier Notifier

	mu       sync.Mutex
	list     []model.Address
	selected string
}

// NewAddressBook starts with selected as the remembered selection. It is
// kept until a refresh shows it no longer exists.
func NewAddressBook(api AddressAPI, n Notifier, selected string) *AddressBook {
	return &AddressBook{api: api, notifier: orDiscard(n), selected: selected}
}

func (b *AddressBook) Addresses() []model.Address {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]model.Address(nil), b.list...)
}

// Selected returns the selected address id, or "".
func (b *AddressBook) Selected() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.selected
}

// Select marks id as the shipping address. It does not call the backend.
func (b *AddressBook) Select(id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, a := range b.list {
		if a.ID == id {
			b.selected = id
			return nil
		}
	}
	return ErrUnknownAddress
}

func (b *AddressBook) setList(list []model.Address) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if list == nil {
		list = []model.Address{}
	}
	b.list = list
	for _, a := range list {
		if a.ID == b.selected {
			return
		}
	}
	b.selected = ""
}

func (b *AddressBook) fail(err error, action string) error {
	var apiErr *qkart.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusBadRequest {
		b.notifier.Notify(LevelError, apiErr.Message)
	} else {
		b.notifier.Notify(LevelError, MsgBackendDown)
	}
	return fmt.Errorf("%s: %w", action, err)
}

func (b *AddressBook) Refresh(ctx context.Context, sess *Session) error {
	if !sess.LoggedIn() {
		return ErrNotLoggedIn
	}
	list, err := b.api.Addresses(ctx, sess.Token)
	if err != nil {
		return b.fail(err, "fetch addresses")
	}
	b.setList(list)
	return nil
}

func (b *AddressBook) Add(ctx context.Context, sess *Session, text string) error {
	if !sess.LoggedIn() {
		return ErrNotLoggedIn
	}
	text = strings.TrimSpace(text)
	if text == "" {
		b.notifier.Notify(LevelWarning, MsgEmptyAddress)
		return ErrEmptyAddress
	}
	list, err := b.api.AddAddress(ctx, sess.Token, text)
	if err != nil {
		return b.fail(err, "add address")
	}
	b.setList(list)
	return nil
}

// Delete removes id. Deleting the selected address clears the selection.
func (b *AddressBook) Delete(ctx context.Context, sess *Session, id string) error {
	if !sess.LoggedIn() {
		return ErrNotLoggedIn
	}
	list, err := b.api.DeleteAddress(ctx, sess.Token, id)
	if err != nil {
		return b.fail(err, "delete address")
	}
	b.setList(list)
	return nil
}
