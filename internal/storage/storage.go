// Package storage abstracts the flat key-value namespace the application
// persists into. Production uses a gorm-backed table over a local SQLite file
// (or Postgres); tests inject the in-memory implementation.
package storage

// KV is a synchronous string key-value store. Get reports presence separately
// from backend failure so callers can tell "no value yet" from "storage broke".
type KV interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Delete(key string) error
}
