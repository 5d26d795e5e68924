package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore keeps one JSON snapshot file per user id under a directory.
type FileStore struct {
	dir string
}

// NewFileStore creates the snapshot directory if needed
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create snapshot dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (f *FileStore) path(userID int64) string {
	return filepath.Join(f.dir, fmt.Sprintf("cart_%d.json", userID))
}

// Save writes the cart snapshot for a user
func (f *FileStore) Save(ctx context.Context, userID int64, c *Cart) error {
	data, err := json.Marshal(c.Items())
	if err != nil {
		return err
	}
	if err := os.WriteFile(f.path(userID), data, 0o600); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}

// Load reads the cart snapshot for a user, empty cart if none exists
func (f *FileStore) Load(ctx context.Context, userID int64) (*Cart, error) {
	data, err := os.ReadFile(f.path(userID))
	if os.IsNotExist(err) {
		return New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var items map[int64]int
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return FromItems(items), nil
}
