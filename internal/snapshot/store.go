package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrMalformed reports a snapshot that does not match the wire schema.
var ErrMalformed = errors.New("malformed snapshot")

// Store persists ledger documents to a single JSON file. Saves are atomic:
// the document is written to a temporary file which is then renamed over
// the old one, so a failed write never truncates prior durable content.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Save(doc Document) error {
	tmp := s.path + ".tmp"

	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("creating snapshot: %w", err)
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")

	if err := enc.Encode(doc); err != nil {
		f.Close()
		os.Remove(tmp)

		return fmt.Errorf("encoding snapshot: %w", err)
	}

	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("writing snapshot: %w", err)
	}

	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replacing snapshot: %w", err)
	}

	return nil
}

// Load reads the document back. A missing file keeps its os error in the
// chain so callers can errors.Is(err, fs.ErrNotExist) and start empty on
// first boot.
func (s *Store) Load() (Document, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("opening snapshot: %w", err)
	}
	defer f.Close()

	var doc Document
	if err := json.NewDecoder(f).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", s.path, ErrMalformed)
	}

	return doc, nil
}
