package cart

import (
	"os"
	"path/filepath"
)

// SlotKey is the fixed namespaced key the cart is stored under.
const SlotKey = "grubdash.cart.v1.json"

// Slot is the local key-value persistence slot the cart serializes into.
type Slot interface {
	Load() ([]byte, error)
	Save(data []byte) error
}

// FileSlot keeps the serialized cart in a single file under Dir.
type FileSlot struct {
	Dir string
}

func NewFileSlot(dir string) *FileSlot {
	return &FileSlot{Dir: dir}
}

func (s *FileSlot) path() string {
	return filepath.Join(s.Dir, SlotKey)
}

func (s *FileSlot) Load() ([]byte, error) {
	return os.ReadFile(s.path())
}

func (s *FileSlot) Save(data []byte) error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(s.path(), data, 0o644)
}
