package session

import (
	"admin-console/internal/core/domain"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// FileStore хранит токен в JSON-файле вида {"adminToken": "..."}.
// Значение переживает перезапуск консоли.
type FileStore struct {
	path  string
	mutex sync.Mutex
}

func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		return nil, fmt.Errorf("session file path cannot be empty")
	}
	return &FileStore{path: path}, nil
}

// DefaultFilePath - файл в пользовательском каталоге конфигурации
func DefaultFilePath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve user config dir: %w", err)
	}
	return filepath.Join(dir, "admin-console", "session.json"), nil
}

func (s *FileStore) Get(ctx context.Context) (string, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	slots, err := s.read()
	if err != nil {
		return "", err
	}
	return slots[domain.SessionKey], nil
}

func (s *FileStore) Set(ctx context.Context, token string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	slots, err := s.read()
	if err != nil {
		return err
	}
	slots[domain.SessionKey] = token
	return s.write(slots)
}

func (s *FileStore) Clear(ctx context.Context) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	slots, err := s.read()
	if err != nil {
		return err
	}
	if _, ok := slots[domain.SessionKey]; !ok {
		return nil
	}
	delete(slots, domain.SessionKey)
	return s.write(slots)
}

// read возвращает пустой набор, если файла еще нет
func (s *FileStore) read() (map[string]string, error) {
	slots := make(map[string]string)
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return slots, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}
	if len(data) == 0 {
		return slots, nil
	}
	if err := json.Unmarshal(data, &slots); err != nil {
		return nil, fmt.Errorf("failed to decode session file %s: %w", s.path, err)
	}
	return slots, nil
}

// write пишет во временный файл и переименовывает его
func (s *FileStore) write(slots map[string]string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create session dir: %w", err)
	}
	data, err := json.Marshal(slots)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace session file: %w", err)
	}
	return nil
}
