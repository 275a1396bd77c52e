package store

import (
	"errors"
	"fmt"
	"os"
	"sync/atomic"

	"github.com/dgraph-io/badger/v4"
	"github.com/mmcdole/pagemark/internal/domain"
)

// BadgerStore implements domain.SlotStore using BadgerDB.
type BadgerStore struct {
	db     *badger.DB
	closed atomic.Bool
}

// NewBadgerStore opens (or creates) a badger directory at dir.
// An empty dir runs badger in memory.
func NewBadgerStore(dir string) (*BadgerStore, error) {
	var opts badger.Options
	if dir == "" {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
		opts = badger.DefaultOptions(dir)
	}
	// Badger logs to stderr by default, which would draw over the TUI
	opts = opts.WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger db: %w", err)
	}
	return &BadgerStore{db: db}, nil
}

func (s *BadgerStore) Close() error {
	if s.closed.Swap(true) {
		return nil
	}
	return s.db.Close()
}

func (s *BadgerStore) Get(key string) ([]byte, bool, error) {
	if s.closed.Load() {
		return nil, false, domain.ErrStoreClosed
	}

	var data []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read slot %s: %w", key, err)
	}
	if data == nil {
		data = []byte{}
	}
	return data, true, nil
}

func (s *BadgerStore) Put(key string, data []byte) error {
	if s.closed.Load() {
		return domain.ErrStoreClosed
	}

	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), clone(data))
	})
	if err != nil {
		return fmt.Errorf("write slot %s: %w", key, err)
	}
	return nil
}
