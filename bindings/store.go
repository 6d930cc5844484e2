package bindings

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata"
)

const storeItem = "bindings"

// itemStore is the part of gdata.Manager the Store needs.
type itemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// Store persists a user's binding overrides in the platform data directory.
type Store struct {
	items itemStore
}

func OpenStore(appName string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("bindings: open store: %w", err)
	}
	return &Store{items: m}, nil
}

func (s *Store) Save(spec *Spec) error {
	data, err := Encode(spec)
	if err != nil {
		return err
	}
	if err := s.items.SaveItem(storeItem, data); err != nil {
		return fmt.Errorf("bindings: save: %w", err)
	}
	return nil
}

// Load returns the saved spec, or nil when nothing has been saved yet.
func (s *Store) Load() (*Spec, error) {
	data, err := s.items.LoadItem(storeItem)
	if err != nil {
		return nil, fmt.Errorf("bindings: load saved: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}
	return Parse(data)
}

// Source prefers the saved spec and falls back to fallback when nothing is
// saved or the saved copy cannot be read.
func (s *Store) Source(fallback Source) Source {
	return func() (*Spec, error) {
		spec, err := s.Load()
		if err != nil {
			log.Printf("Bindings: ignoring saved bindings: %v", err)
		}
		if spec != nil {
			return spec, nil
		}
		return fallback()
	}
}
