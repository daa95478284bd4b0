package store

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/focusboard/internal/osutil"
)

const appDataBucket = "appdata"

// BoltBackend stores values in a BoltDB file. The file lock held while the
// database is open keeps a second instance out.
type BoltBackend struct {
	db *bolt.DB
}

// NewBoltBackend creates or opens the database at dbPath.
func NewBoltBackend(dbPath string) (*BoltBackend, error) {
	err := os.MkdirAll(filepath.Dir(dbPath), osutil.DirPermission)
	if err != nil {
		return nil, errOpenStore.Fmt("bolt", dbPath).Wrap(err)
	}

	db, err := bolt.Open(
		dbPath,
		osutil.FilePermission,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrDatabaseOpen) ||
			errors.Is(err, bolt.ErrTimeout) {
			return nil, errAlreadyRunning
		}

		return nil, errOpenStore.Fmt("bolt", dbPath).Wrap(err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(appDataBucket))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &BoltBackend{
		db: db,
	}, nil
}

func (b *BoltBackend) Get(key string) ([]byte, error) {
	var value []byte

	err := b.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(appDataBucket)).Get([]byte(key))
		if v == nil {
			return ErrKeyNotFound
		}

		// v is only valid for the life of the transaction
		value = append([]byte(nil), v...)

		return nil
	})

	return value, err
}

func (b *BoltBackend) Put(key string, value []byte) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(appDataBucket)).Put([]byte(key), value)
	})
}

func (b *BoltBackend) Close() error {
	return b.db.Close()
}
