package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLocalStorage_SaveAndDelete(t *testing.T) {
	dir := t.TempDir()
	ls, err := NewLocalStorage(dir, "http://localhost:8080/files/")
	require.NoError(t, err)

	url, err := ls.Save(context.Background(), "user_abc/xyz123.jpg", "image/jpeg", strings.NewReader("photo bytes"))
	require.NoError(t, err)
	require.Equal(t, "http://localhost:8080/files/user_abc/xyz123.jpg", url)

	content, err := os.ReadFile(filepath.Join(dir, "user_abc", "xyz123.jpg"))
	require.NoError(t, err)
	require.Equal(t, "photo bytes", string(content))

	require.NoError(t, ls.Delete(context.Background(), "user_abc/xyz123.jpg"))
	_, err = os.Stat(filepath.Join(dir, "user_abc", "xyz123.jpg"))
	require.True(t, os.IsNotExist(err))
}

func TestLocalStorage_DeleteMissingIsNoop(t *testing.T) {
	ls, err := NewLocalStorage(t.TempDir(), "http://localhost:8080/files")
	require.NoError(t, err)
	require.NoError(t, ls.Delete(context.Background(), "nobody/nothing.png"))
}
