package storefront

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionFile_RoundTrip(t *testing.T) {
	f := SessionFile{Path: filepath.Join(t.TempDir(), "nested", "session.yaml")}

	st, err := f.Load()
	require.NoError(t, err)
	assert.Nil(t, st.Session)

	want := &State{
		Session:         &Session{Token: "tok", Username: "crio.do", Balance: 750, BalanceProvisional: true},
		SelectedAddress: "a1",
	}
	require.NoError(t, f.Save(want))

	info, err := os.Stat(f.Path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	got, err := f.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)

	require.NoError(t, f.Clear())
	require.NoError(t, f.Clear())
	st, err = f.Load()
	require.NoError(t, err)
	assert.False(t, st.Session.LoggedIn())
}

func TestSessionFile_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.yaml")
	require.NoError(t, os.WriteFile(path, []byte("session: [not a map"), 0o600))

	_, err := SessionFile{Path: path}.Load()
	assert.Error(t, err)
}
