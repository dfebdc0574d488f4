// Package cas stores the compiler invocations captured by fat builds.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/weld/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.InvocationStore with one JSON file per record key.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Get retrieves the record stored under key. It returns nil, nil when no record exists.
func (s *Store) Get(root, key string) (*domain.InvocationRecord, error) {
	filename := s.filename(root, key)
	//nolint:gosec // Path is constructed from the project root and a hashed key
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.Wrap(err, domain.ErrStoreReadFailed.Error())
	}

	var record domain.InvocationRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error()), "file", filename)
	}

	return &record, nil
}

// Put stores record under its key, replacing any earlier record.
// The file is written to a temporary name first so readers never see a partial record.
func (s *Store) Put(root string, record domain.InvocationRecord) error {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error())
	}

	filename := s.filename(root, record.Key)
	if err := os.MkdirAll(filepath.Dir(filename), domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrStoreCreateFailed.Error())
	}

	tmp := filename + ".tmp"
	//nolint:gosec // Path is constructed from the project root and a hashed key
	if err := os.WriteFile(tmp, data, domain.FilePerm); err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	if err := os.Rename(tmp, filename); err != nil {
		_ = os.Remove(tmp)
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}

	return nil
}

func (s *Store) filename(root, key string) string {
	name := strconv.FormatUint(xxhash.Sum64String(key), 16)
	return filepath.Join(root, domain.DefaultStorePath(), name+".json")
}
