package storage

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
)

// LocalStorage stores uploads on the local filesystem and serves them under a
// public path prefix (e.g. /uploads).
type LocalStorage struct {
	root       string
	publicPath string
}

// NewLocalStorage provisions the upload directory once, at startup. Per-request
// code never re-creates it.
func NewLocalStorage(root, publicPath string) (*LocalStorage, error) {
	err := os.MkdirAll(root, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	slog.Info("initialized local storage", "dir", root, "public_path", publicPath)

	return &LocalStorage{root: root, publicPath: publicPath}, nil
}

func (s *LocalStorage) Save(name string, file io.Reader) error {
	dst, err := os.Create(filepath.Join(s.root, filepath.Base(name)))
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	_, err = io.Copy(dst, file)
	if err != nil {
		_ = dst.Close()
		return fmt.Errorf("failed to write file: %w", err)
	}

	return dst.Close()
}

func (s *LocalStorage) Delete(name string) error {
	err := os.Remove(filepath.Join(s.root, filepath.Base(name)))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

func (s *LocalStorage) URL(name string) string {
	return path.Join(s.publicPath, path.Base(name))
}

// Root is the directory uploads are written to, used for static serving.
func (s *LocalStorage) Root() string {
	return s.root
}
