// Package store keeps named snapshots of digraph documents.
//
// A snapshot is the bundle encoding of a session (see package io) together
// with a few summary fields that listings show without decoding the
// document. The store is byte-level: callers encode and decode the bundle.
//
// Two backends exist:
//   - [FileStore]: one JSON file per snapshot under a directory
//   - [MongoStore]: one MongoDB document per snapshot, keyed by name
package store

import (
	"context"
	"time"

	"github.com/matzehuels/valdigraph/pkg/errors"
)

// MaxNameLength bounds snapshot names.
const MaxNameLength = 128

// Entry is a stored snapshot.
type Entry struct {
	Name      string    `json:"name" bson:"_id"`
	Type      string    `json:"type" bson:"type"`
	Actions   int       `json:"actions" bson:"actions"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
	Data      []byte    `json:"data,omitempty" bson:"data,omitempty"`
}

// Info returns the entry without its document bytes.
func (e Entry) Info() Entry {
	e.Data = nil
	return e
}

// Store persists snapshots by name.
type Store interface {
	// Put creates or replaces the snapshot e.Name. A zero UpdatedAt is set
	// to the current time.
	Put(ctx context.Context, e Entry) error

	// Get returns the snapshot, or a NOT_FOUND error.
	Get(ctx context.Context, name string) (*Entry, error)

	// List returns every snapshot sorted by name, without document bytes.
	List(ctx context.Context) ([]Entry, error)

	// Delete removes the snapshot. Deleting a missing name is not an error.
	Delete(ctx context.Context, name string) error

	// Close releases resources held by the store.
	Close() error
}

// ValidateName reports an INVALID_INPUT error unless name is 1 to
// MaxNameLength characters of letters, digits, '.', '_' and '-', not
// starting with a dot.
func ValidateName(name string) error {
	if name == "" || len(name) > MaxNameLength || name[0] == '.' {
		return errors.New(errors.ErrCodeInvalidInput, "invalid snapshot name %q", name)
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '.', r == '_', r == '-':
		default:
			return errors.New(errors.ErrCodeInvalidInput, "invalid snapshot name %q", name)
		}
	}
	return nil
}

func notFound(name string) error {
	return errors.New(errors.ErrCodeNotFound, "snapshot %q not found", name)
}

func prepare(e *Entry) error {
	if err := ValidateName(e.Name); err != nil {
		return err
	}
	if e.UpdatedAt.IsZero() {
		e.UpdatedAt = time.Now().UTC()
	}
	return nil
}
