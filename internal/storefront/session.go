package storefront

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Session is the logged-in user's state. It is created on login, passed
// explicitly to every operation and cleared on logout.
//
// BalanceProvisional is set when Balance was deducted locally because the
// backend did not report the post-checkout balance.
type Session struct {
	Token              string `yaml:"token"`
	Username           string `yaml:"username"`
	Balance            int64  `yaml:"balance"`
	BalanceProvisional bool   `yaml:"balance_provisional,omitempty"`
}

func (s *Session) LoggedIn() bool {
	return s != nil && s.Token != ""
}

// State is what the CLI keeps between invocations.
type State struct {
	Session         *Session `yaml:"session,omitempty"`
	SelectedAddress string   `yaml:"selected_address,omitempty"`
}

// SessionFile persists State as YAML.
type SessionFile struct {
	Path string
}

// DefaultSessionPath is ~/.qkart/session.yaml.
func DefaultSessionPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".qkart", "session.yaml"), nil
}

// Load reads the state. A missing file is an empty state.
func (f SessionFile) Load() (*State, error) {
	data, err := os.ReadFile(f.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return &State{}, nil
	}
	if err != nil {
		return nil, err
	}
	var st State
	if err := yaml.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("parse %s: %w", f.Path, err)
	}
	return &st, nil
}

// Save writes st atomically with owner-only permissions; it holds a bearer
// token.
func (f SessionFile) Save(st *State) error {
	if err := os.MkdirAll(filepath.Dir(f.Path), 0o700); err != nil {
		return err
	}
	data, err := yaml.Marshal(st)
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(f.Path), ".session-*.yaml")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), f.Path)
}

// Clear removes the file. Clearing a missing file is not an error.
func (f SessionFile) Clear() error {
	err := os.Remove(f.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
