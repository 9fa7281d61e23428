package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"api/database"
)

// Key prefixes, one per collection plus the unique-index keyspaces.
const (
	prefixUser     = "user:"
	prefixPost     = "post:"
	prefixComment  = "comment:"
	prefixRequest  = "request:"
	prefixSession  = "session:"
	prefixUsername = "username:"
	prefixEmail    = "email:"
)

// putDoc marshals v and writes it under key in its own transaction.
func putDoc(ctx context.Context, db *database.DB, key string, v any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	return db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), raw)
	})
}

// getDoc reads the document under key into v. Returns badger.ErrKeyNotFound
// untouched so callers can classify it per entity.
func getDoc(ctx context.Context, db *database.DB, key string, v any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, v)
		})
	})
}

// deleteDoc removes the document under key. Deleting a missing key is a no-op.
func deleteDoc(ctx context.Context, db *database.DB, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
}

// scanDocs unmarshals every document in a collection. Filtering, sorting and
// pagination happen in the callers; collections here are small enough that a
// full prefix scan is the query plan.
func scanDocs[T any](ctx context.Context, db *database.DB, prefix string) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var out []T
	err := db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(prefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var doc T
				if err := json.Unmarshal(val, &doc); err != nil {
					return fmt.Errorf("unmarshal %s: %w", it.Item().Key(), err)
				}
				out = append(out, doc)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
