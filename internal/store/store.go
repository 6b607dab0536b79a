// Package store implements the application's persistence layer: a generic
// collection store over an injected key-value backend. Every collection is a
// single key holding the full JSON array of its records; mutations read the
// whole collection, change it in memory and write it all back. There is no
// cross-writer arbitration: if two writers race on the same collection the
// last full write wins.
package store

import (
	"encoding/json"
	"fmt"

	"github.com/aquihaydesarrollo/a-digital-central/internal/storage"

	"github.com/google/uuid"
)

// Record is implemented by pointers to every stored entity via model.Registro.
type Record interface {
	GetID() string
	SetID(id string)
}

// Store reads and writes named collections in a storage.KV.
type Store struct {
	kv    storage.KV
	newID func() string
}

// New wraps the given backend. IDs are fresh UUIDs.
func New(kv storage.KV) *Store {
	return &Store{kv: kv, newID: uuid.NewString}
}

// GetAll returns every record of the collection in stored order. A missing or
// unparsable collection reads as empty; only backend failures are errors.
func GetAll[T any](s *Store, collection string) ([]T, error) {
	value, ok, err := s.kv.Get(collection)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", collection, err)
	}
	if !ok {
		return nil, nil
	}
	var items []T
	if err := json.Unmarshal([]byte(value), &items); err != nil {
		// Corrupt data reads as empty so one bad key cannot take down every view.
		return nil, nil
	}
	return items, nil
}

// GetByID scans the collection for the record with the given id. Absence is
// (nil, nil), not an error.
func GetByID[T any, PT interface {
	*T
	Record
}](s *Store, collection, id string) (*T, error) {
	items, err := GetAll[T](s, collection)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if PT(&items[i]).GetID() == id {
			return &items[i], nil
		}
	}
	return nil, nil
}

// Save upserts the record. An empty id means insert: a fresh UUID is assigned
// and the record appended. A matching id replaces the stored record in place.
// A non-empty id with no match inserts keeping the caller's id. The stored
// record (with its final id) is returned; write failures propagate so callers
// never confirm a save that did not happen.
func Save[T any, PT interface {
	*T
	Record
}](s *Store, collection string, rec T) (T, error) {
	var zero T

	p := PT(&rec)
	isNew := p.GetID() == ""
	if isNew {
		p.SetID(s.newID())
	}

	encoded, err := json.Marshal(rec)
	if err != nil {
		return zero, fmt.Errorf("encode record for %s: %w", collection, err)
	}

	items, err := s.rawList(collection)
	if err != nil {
		return zero, err
	}

	replaced := false
	if !isNew {
		for i, raw := range items {
			if idOf(raw) == p.GetID() {
				items[i] = encoded
				replaced = true
				break
			}
		}
	}
	if !replaced {
		items = append(items, encoded)
	}

	if err := s.writeList(collection, items); err != nil {
		return zero, err
	}
	return rec, nil
}

// Remove filters the record with the given id out of the collection and
// rewrites it. It reports whether anything was actually removed, so callers
// can tell "deleted" from "nothing to delete".
func (s *Store) Remove(collection, id string) (bool, error) {
	items, err := s.rawList(collection)
	if err != nil {
		return false, err
	}

	kept := make([]json.RawMessage, 0, len(items))
	removed := false
	for _, raw := range items {
		if idOf(raw) == id {
			removed = true
			continue
		}
		kept = append(kept, raw)
	}

	if err := s.writeList(collection, kept); err != nil {
		return false, err
	}
	return removed, nil
}

// rawList reads a collection without decoding the records, so rewrites keep
// untouched records byte-for-byte. Missing and unparsable values read as empty.
func (s *Store) rawList(collection string) ([]json.RawMessage, error) {
	value, ok, err := s.kv.Get(collection)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", collection, err)
	}
	if !ok {
		return nil, nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal([]byte(value), &items); err != nil {
		return nil, nil
	}
	return items, nil
}

func (s *Store) writeList(collection string, items []json.RawMessage) error {
	if items == nil {
		items = []json.RawMessage{}
	}
	value, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", collection, err)
	}
	if err := s.kv.Set(collection, string(value)); err != nil {
		return fmt.Errorf("write %s: %w", collection, err)
	}
	return nil
}

// setJSON writes a singleton slot.
func (s *Store) setJSON(key string, v any) error {
	encoded, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.kv.Set(key, string(encoded)); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

type recordID struct {
	ID string `json:"id"`
}

func idOf(raw json.RawMessage) string {
	var probe recordID
	if err := json.Unmarshal(raw, &probe); err != nil {
		return ""
	}
	return probe.ID
}
