package database

import (
	"github.com/dgraph-io/badger/v4"
)

// DB wraps the embedded badger store that holds booking records.
type DB struct{ Badger *badger.DB }

func New(dir string) (*DB, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil
	b, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &DB{Badger: b}, nil
}

func (d *DB) Close() error { return d.Badger.Close() }
