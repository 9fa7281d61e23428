package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"api/database"
	"api/errs"
	"api/models"
)

type userRepository struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) UserRepository {
	return &userRepository{db: db}
}

// Create stores the user together with its username and email index keys.
// Both indexes are checked and claimed in the same transaction, so duplicate
// usernames and emails surface as a Conflict rather than a silent overwrite.
func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("marshal user: %w", err)
	}
	return r.db.Update(func(txn *badger.Txn) error {
		if err := claimIndex(txn, prefixUsername+user.Username, user.ID); err != nil {
			return errs.Wrap(errs.KindConflict, "username already taken", err)
		}
		if err := claimIndex(txn, prefixEmail+user.Email, user.ID); err != nil {
			return errs.Wrap(errs.KindConflict, "email already registered", err)
		}
		return txn.Set([]byte(prefixUser+string(user.ID)), raw)
	})
}

func (r *userRepository) GetByID(ctx context.Context, id models.ID) (*models.User, error) {
	var user models.User
	err := getDoc(ctx, r.db, prefixUser+string(id), &user)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, errs.New(errs.KindNotFound, "user not found")
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var id models.ID
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(prefixUsername + username))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			id = models.ID(val)
			return nil
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, errs.New(errs.KindNotFound, "user not found")
	}
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// Update rewrites the user document and moves the username/email index keys
// when either changed.
func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("marshal user: %w", err)
	}
	return r.db.Update(func(txn *badger.Txn) error {
		var stored models.User
		item, err := txn.Get([]byte(prefixUser + string(user.ID)))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return errs.New(errs.KindNotFound, "user not found")
		}
		if err != nil {
			return err
		}
		if err := item.Value(func(val []byte) error { return json.Unmarshal(val, &stored) }); err != nil {
			return err
		}
		if stored.Username != user.Username {
			if err := claimIndex(txn, prefixUsername+user.Username, user.ID); err != nil {
				return errs.Wrap(errs.KindConflict, "username already taken", err)
			}
			if err := txn.Delete([]byte(prefixUsername + stored.Username)); err != nil {
				return err
			}
		}
		if stored.Email != user.Email {
			if err := claimIndex(txn, prefixEmail+user.Email, user.ID); err != nil {
				return errs.Wrap(errs.KindConflict, "email already registered", err)
			}
			if err := txn.Delete([]byte(prefixEmail + stored.Email)); err != nil {
				return err
			}
		}
		return txn.Set([]byte(prefixUser+string(user.ID)), raw)
	})
}

func (r *userRepository) Delete(ctx context.Context, id models.ID) error {
	user, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		if err := txn.Delete([]byte(prefixUsername + user.Username)); err != nil {
			return err
		}
		if err := txn.Delete([]byte(prefixEmail + user.Email)); err != nil {
			return err
		}
		return txn.Delete([]byte(prefixUser + string(id)))
	})
}

func (r *userRepository) All(ctx context.Context) ([]models.User, error) {
	return scanDocs[models.User](ctx, r.db, prefixUser)
}

// claimIndex sets key to id, failing if the key already belongs to someone.
func claimIndex(txn *badger.Txn, key string, id models.ID) error {
	_, err := txn.Get([]byte(key))
	if err == nil {
		return errors.New("index key taken")
	}
	if !errors.Is(err, badger.ErrKeyNotFound) {
		return err
	}
	return txn.Set([]byte(key), []byte(id))
}
