// Package storage keeps uploaded files on the local filesystem.
package storage

import (
	"io"
	"os"
	"path/filepath"
	"strings"
)

type FileStorage interface {
	Save(path string, data io.Reader) error
	Delete(path string) error
	Exists(path string) bool
	// URL returns the public path a stored file is served under.
	URL(path string) string
}

type fileStorage struct {
	basePath  string
	urlPrefix string
}

// NewFileStorage stores files below basePath and serves them under urlPrefix.
func NewFileStorage(basePath, urlPrefix string) FileStorage {
	return &fileStorage{
		basePath:  basePath,
		urlPrefix: "/" + strings.Trim(urlPrefix, "/"),
	}
}

func (s *fileStorage) Save(path string, data io.Reader) error {
	fullPath, err := s.resolve(path)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return err
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = io.Copy(file, data)
	return err
}

func (s *fileStorage) Delete(path string) error {
	fullPath, err := s.resolve(path)
	if err != nil {
		return err
	}

	return os.Remove(fullPath)
}

func (s *fileStorage) Exists(path string) bool {
	fullPath, err := s.resolve(path)
	if err != nil {
		return false
	}

	_, err = os.Stat(fullPath)
	return !os.IsNotExist(err)
}

func (s *fileStorage) URL(path string) string {
	return s.urlPrefix + filepath.ToSlash(filepath.Clean("/"+path))
}

func (s *fileStorage) resolve(path string) (string, error) {
	fullPath := filepath.Join(s.basePath, filepath.Clean("/"+path))
	rel, err := filepath.Rel(s.basePath, fullPath)
	if err != nil || strings.HasPrefix(rel, "..") {
		return "", ErrInvalidPath
	}

	return fullPath, nil
}
