package commands

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	fsrepo "PassVault/internal/cli/repo/fs"

	"github.com/stretchr/testify/require"
)

// withTempConfig переопределяет пользовательские каталоги на время теста,
// чтобы токен, логин и keystore создавались в temp.
func withTempConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if runtime.GOOS == "windows" {
		t.Setenv("APPDATA", dir)
	} else {
		t.Setenv("XDG_CONFIG_HOME", dir)
	}
	db := filepath.Join(dir, "db")
	require.NoError(t, os.MkdirAll(db, 0o700))
	t.Setenv("CLIENT_DB_PATH", db)
	return dir
}

// loginAs сохраняет токен и логин активного пользователя, как после login.
func loginAs(t *testing.T, login, token string) {
	t.Helper()
	require.NoError(t, (fsrepo.AuthFSStore{}).Save(token))
	require.NoError(t, (fsrepo.AuthFSStore{}).SaveLogin(login))
}
