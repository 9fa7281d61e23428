package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/dgraph-io/badger/v4"

	"api/database"
	"api/errs"
	"api/models"
)

type sessionRepository struct {
	db *database.DB
}

func NewSessionRepository(db *database.DB) SessionRepository {
	return &sessionRepository{db: db}
}

// Put stores a bearer token for the user. Expiry is handled by the store's
// own TTL support, so stale sessions never need a sweep.
func (r *sessionRepository) Put(ctx context.Context, token string, user models.ID, ttl time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		entry := badger.NewEntry([]byte(prefixSession+token), []byte(user)).WithTTL(ttl)
		return txn.SetEntry(entry)
	})
}

func (r *sessionRepository) GetUser(ctx context.Context, token string) (models.ID, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var user models.ID
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(prefixSession + token))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			user = models.ID(val)
			return nil
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return "", errs.New(errs.KindUnauthorized, "invalid or expired session")
	}
	if err != nil {
		return "", err
	}
	return user, nil
}

func (r *sessionRepository) Delete(ctx context.Context, token string) error {
	return deleteDoc(ctx, r.db, prefixSession+token)
}
