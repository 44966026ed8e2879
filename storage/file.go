package storage

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/octabyte/smartsaas-go/utils"
)

// FileStore persists the token as a small JSON file, for CLI-style
// consumers that outlive a single process.
type FileStore struct {
	mu   sync.Mutex
	path string
}

type fileToken struct {
	AccessToken string `json:"access_token"`
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Save(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := utils.StructToBytes(fileToken{AccessToken: token})
	if err != nil {
		return fmt.Errorf("marshal token: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write token file: %w", err)
	}
	return nil
}

func (s *FileStore) Load(_ context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNoToken
		}
		return "", fmt.Errorf("read token file: %w", err)
	}

	var ft fileToken
	if err := utils.BytesToStruct(data, &ft); err != nil {
		return "", fmt.Errorf("unmarshal token file: %w", err)
	}
	if ft.AccessToken == "" {
		return "", ErrNoToken
	}
	return ft.AccessToken, nil
}

func (s *FileStore) Clear(_ context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("remove token file: %w", err)
	}
	return true, nil
}
