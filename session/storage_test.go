package session_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sanleague/go-league-client/session"
)

func TestFileTokenRepoRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "token")
	repo, err := session.NewFileTokenRepo(path)
	require.NoError(t, err)

	token, err := repo.Load()
	require.NoError(t, err)
	require.Empty(t, token, "missing file means no persisted session")

	require.NoError(t, repo.Save("  token-xyz\n"))
	token, err = repo.Load()
	require.NoError(t, err)
	require.Equal(t, "token-xyz", token, "surrounding whitespace is trimmed on load")

	require.NoError(t, repo.Clear())
	token, err = repo.Load()
	require.NoError(t, err)
	require.Empty(t, token)

	require.NoError(t, repo.Clear(), "clearing an already empty slot is fine")
}

func TestFileTokenRepoRequiresPath(t *testing.T) {
	_, err := session.NewFileTokenRepo("")
	require.Error(t, err)
}
