package docstores

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
)

var (
	ErrDocNotFound = errors.New("document not found")
	ErrInvalidPath = errors.New("invalid storage path")
)

// DocStore is an embedded document store with two kinds of documents:
//
//   - Time-ordered documents, appended under a collection with a
//     server-assigned timestamp. Keys sort by timestamp, so a window query
//     is a single range scan over the half-open interval [start, end),
//     and retention is a bounded prefix delete below a cutoff.
//   - Keyed documents, addressed by a stable key (e.g. an error
//     fingerprint) and mutated through a serializable read-modify-write
//     transaction.
//
//go:generate mockgen -source=doc_store.go -destination=./mocks/doc_store_mock.go -package=mocks
type DocStore interface {
	// Append stores a time-ordered document. The timestamp becomes part of
	// the key; documents are immutable once written.
	Append(ctx context.Context, collection, id string, ts time.Time, data []byte) error

	// Scan visits every document whose timestamp falls in [start, end),
	// in ascending timestamp order.
	Scan(ctx context.Context, collection string, start, end time.Time, fn func(id string, data []byte) error) error

	// LatestBefore returns the most recent document with timestamp strictly
	// before the given instant, or ErrDocNotFound.
	LatestBefore(ctx context.Context, collection string, before time.Time) ([]byte, error)

	// DeleteOlderThan removes at most limit documents with timestamp
	// strictly before cutoff, in one transaction. Returns the number removed.
	DeleteOlderThan(ctx context.Context, collection string, cutoff time.Time, limit int) (int, error)

	// GetKeyed returns a keyed document, or ErrDocNotFound.
	GetKeyed(ctx context.Context, collection, key string) ([]byte, error)

	// UpdateKeyed runs fn inside a transaction. fn receives the current
	// document (nil when absent) and returns the replacement. Returning
	// nil data leaves the document unchanged.
	UpdateKeyed(ctx context.Context, collection, key string, fn func(old []byte) ([]byte, error)) error

	Close() error
}

// Config holds document store configuration.
type Config struct {
	Path     string
	InMemory bool
}

type docStore struct {
	db *badger.DB
}

// New opens a badger-backed DocStore.
func New(cfg Config) (DocStore, error) {
	if !cfg.InMemory && cfg.Path == "" {
		return nil, fmt.Errorf("%w: path is required for on-disk storage", ErrInvalidPath)
	}

	opts := badger.DefaultOptions(cfg.Path)
	if cfg.InMemory {
		opts = opts.WithInMemory(true)
	}
	// Telemetry documents are small JSON blobs; keep them in the LSM tree
	// and cap value log files well below the 2GB default.
	opts = opts.
		WithNumVersionsToKeep(1).
		WithValueThreshold(1024).
		WithValueLogFileSize(64 << 20).
		WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open document store: %w", err)
	}

	return &docStore{db: db}, nil
}

func (s *docStore) Append(ctx context.Context, collection, id string, ts time.Time, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	key := timeKey(collection, ts, id)
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, data)
	})
	if err != nil {
		return fmt.Errorf("failed to append to %s: %w", collection, err)
	}
	return nil
}

func (s *docStore) Scan(ctx context.Context, collection string, start, end time.Time, fn func(id string, data []byte) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	prefix := timePrefix(collection)
	startKey := append(clone(prefix), encodeNanos(start)...)
	endKey := append(clone(prefix), encodeNanos(end)...)

	return s.db.View(func(txn *badger.Txn) error {
		iterOpts := badger.DefaultIteratorOptions
		iterOpts.Prefix = prefix
		it := txn.NewIterator(iterOpts)
		defer it.Close()

		for it.Seek(startKey); it.Valid(); it.Next() {
			item := it.Item()
			key := item.Key()
			// Keys with timestamp == end sort at or above endKey: excluded,
			// which makes the scanned interval half-open.
			if bytes.Compare(key, endKey) >= 0 {
				break
			}
			id := idFromTimeKey(collection, key)
			if err := item.Value(func(val []byte) error {
				return fn(id, val)
			}); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *docStore) LatestBefore(ctx context.Context, collection string, before time.Time) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	prefix := timePrefix(collection)
	// Reverse seek lands on the greatest key <= seekKey. Keys at exactly
	// `before` carry an id suffix and sort above the bare bound, so the
	// lookup is strict.
	seekKey := append(clone(prefix), encodeNanos(before)...)

	var data []byte
	err := s.db.View(func(txn *badger.Txn) error {
		iterOpts := badger.DefaultIteratorOptions
		iterOpts.Prefix = prefix
		iterOpts.Reverse = true
		it := txn.NewIterator(iterOpts)
		defer it.Close()

		it.Seek(seekKey)
		if !it.Valid() {
			return ErrDocNotFound
		}
		return it.Item().Value(func(val []byte) error {
			data = clone(val)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *docStore) DeleteOlderThan(ctx context.Context, collection string, cutoff time.Time, limit int) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	prefix := timePrefix(collection)
	cutoffKey := append(clone(prefix), encodeNanos(cutoff)...)

	// Collect candidate keys first, then delete them in one transaction so
	// a single sweep is all-or-nothing.
	var keys [][]byte
	err := s.db.View(func(txn *badger.Txn) error {
		iterOpts := badger.DefaultIteratorOptions
		iterOpts.Prefix = prefix
		iterOpts.PrefetchValues = false
		it := txn.NewIterator(iterOpts)
		defer it.Close()

		for it.Rewind(); it.Valid() && len(keys) < limit; it.Next() {
			key := it.Item().KeyCopy(nil)
			if bytes.Compare(key, cutoffKey) >= 0 {
				break
			}
			keys = append(keys, key)
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to scan %s for sweep: %w", collection, err)
	}
	if len(keys) == 0 {
		return 0, nil
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		for _, key := range keys {
			if err := txn.Delete(key); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to sweep %s: %w", collection, err)
	}
	return len(keys), nil
}

func (s *docStore) GetKeyed(ctx context.Context, collection, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var data []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(keyedKey(collection, key))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return ErrDocNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			data = clone(val)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *docStore) UpdateKeyed(ctx context.Context, collection, key string, fn func(old []byte) ([]byte, error)) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	fullKey := keyedKey(collection, key)
	return s.db.Update(func(txn *badger.Txn) error {
		var old []byte
		item, err := txn.Get(fullKey)
		if err == nil {
			old, err = item.ValueCopy(nil)
			if err != nil {
				return err
			}
		} else if !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}

		updated, err := fn(old)
		if err != nil {
			return err
		}
		if updated == nil {
			return nil
		}
		return txn.Set(fullKey, updated)
	})
}

func (s *docStore) Close() error {
	return s.db.Close()
}

// Key layout:
//
//	t:<collection>:<8-byte big-endian unix nanos><id>  time-ordered
//	k:<collection>:<key>                               keyed
//
// Big-endian nanos sort lexicographically, so badger's ordered iteration
// yields documents in timestamp order.
func timePrefix(collection string) []byte {
	return []byte("t:" + collection + ":")
}

func timeKey(collection string, ts time.Time, id string) []byte {
	key := append(timePrefix(collection), encodeNanos(ts)...)
	return append(key, id...)
}

func idFromTimeKey(collection string, key []byte) string {
	offset := len(timePrefix(collection)) + 8
	if len(key) <= offset {
		return ""
	}
	return string(key[offset:])
}

func keyedKey(collection, key string) []byte {
	return []byte("k:" + collection + ":" + key)
}

func encodeNanos(t time.Time) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, uint64(t.UTC().UnixNano()))
	return buf
}

func clone(b []byte) []byte {
	return append([]byte(nil), b...)
}
