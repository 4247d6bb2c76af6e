package session

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"complaintdesk/internal/domain/user"
)

var _ user.SessionStore = (*FileStore)(nil)

// FileStore keeps the session token in one file. Writes go through a temp
// file and rename so a crash never leaves a half-written slot.
type FileStore struct {
	path  string
	codec TokenCodec
}

func NewFileStore(path string, codec TokenCodec) *FileStore {
	return &FileStore{path: path, codec: codec}
}

func (s *FileStore) Load(ctx context.Context) (*user.User, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, user.ErrNoSession
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}

	token := strings.TrimSpace(string(data))
	if token == "" {
		return nil, user.ErrNoSession
	}
	return s.codec.Decode(token)
}

func (s *FileStore) Save(ctx context.Context, u *user.User) error {
	token, err := s.codec.Encode(u)
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".session-*")
	if err != nil {
		return fmt.Errorf("failed to create session temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(token); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write session file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close session file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("failed to replace session file: %w", err)
	}
	return nil
}

func (s *FileStore) Clear(ctx context.Context) error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}
	return nil
}
