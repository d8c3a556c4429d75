package storefront

import (
	"context"
	"errors"
	"net/http"
	"unicode/utf8"

	"github.com/manohar12-max/Qkart-Ecommerce-Application/external/qkart"
)

const minCredentialLen = 6

// Authenticator validates credentials locally before calling the backend.
type Authenticator struct {
	api      AuthAPI
	notifier Notifier
}

func NewAuthenticator(api AuthAPI, n Notifier) *Authenticator {
	return &Authenticator{api: api, notifier: orDiscard(n)}
}

func (a *Authenticator) warn(err error) error {
	a.notifier.Notify(LevelWarning, err.Error())
	return err
}

// backendError shows a 400's message verbatim and a generic message for
// anything else.
func (a *Authenticator) backendError(err error) error {
	var apiErr *qkart.APIError
	if qkart.StatusCode(err) == http.StatusBadRequest && errors.As(err, &apiErr) {
		a.notifier.Notify(LevelError, apiErr.Message)
	} else {
		a.notifier.Notify(LevelError, MsgBackendDown)
	}
	return err
}

// Login returns a new session on success.
func (a *Authenticator) Login(ctx context.Context, username, password string) (*Session, error) {
	if username == "" {
		return nil, a.warn(ErrUsernameRequired)
	}
	if password == "" {
		return nil, a.warn(ErrPasswordRequired)
	}

	resp, err := a.api.Login(ctx, username, password)
	if err != nil {
		return nil, a.backendError(err)
	}
	a.notifier.Notify(LevelSuccess, MsgLoggedIn)
	return &Session{Token: resp.Token, Username: resp.Username, Balance: resp.Balance}, nil
}

func (a *Authenticator) Register(ctx context.Context, username, password, confirm string) error {
	switch {
	case username == "":
		return a.warn(ErrUsernameRequired)
	case utf8.RuneCountInString(username) < minCredentialLen:
		return a.warn(ErrUsernameTooShort)
	case password == "":
		return a.warn(ErrPasswordRequired)
	case utf8.RuneCountInString(password) < minCredentialLen:
		return a.warn(ErrPasswordTooShort)
	case password != confirm:
		return a.warn(ErrPasswordMismatch)
	}

	if err := a.api.Register(ctx, username, password); err != nil {
		return a.backendError(err)
	}
	a.notifier.Notify(LevelSuccess, MsgRegistered)
	return nil
}

// Logout revokes the token server side. The caller drops the session
// whatever the outcome; an expired token cannot be revoked and is ignored.
func (a *Authenticator) Logout(ctx context.Context, sess *Session) error {
	if !sess.LoggedIn() {
		return nil
	}
	err := a.api.Logout(ctx, sess.Token)
	if err != nil && qkart.StatusCode(err) != http.StatusUnauthorized {
		a.notifier.Notify(LevelError, MsgBackendDown)
		return err
	}
	a.notifier.Notify(LevelSuccess, MsgLoggedOut)
	return nil
}
