package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalStorage keeps binaries on the local disk, mainly for development and
// tests. Keys are slash-separated paths (owner id / object token).
type LocalStorage struct {
	basePath  string
	publicURL string
}

func NewLocalStorage(basePath, publicURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		return nil, err
	}
	return &LocalStorage{
		basePath:  basePath,
		publicURL: strings.TrimRight(publicURL, "/"),
	}, nil
}

func (ls *LocalStorage) pathFromKey(key string) string {
	return filepath.Join(ls.basePath, filepath.FromSlash(key))
}

func (ls *LocalStorage) Save(_ context.Context, key string, _ string, data io.Reader) (string, error) {
	filePath := ls.pathFromKey(key)

	if err := os.MkdirAll(filepath.Dir(filePath), os.ModePerm); err != nil {
		return "", err
	}

	file, err := os.Create(filePath)
	if err != nil {
		return "", err
	}
	defer file.Close()

	if _, err := io.Copy(file, data); err != nil {
		return "", err
	}

	return ls.publicURL + "/" + key, nil
}

func (ls *LocalStorage) Delete(_ context.Context, key string) error {
	err := os.Remove(ls.pathFromKey(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
