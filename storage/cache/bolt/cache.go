package boltcache

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"go.etcd.io/bbolt"

	"github.com/absedu/campus/core/sheet"
	"github.com/absedu/campus/core/user"
)

var bucket = []byte("cache")

// Cache persists the identity table in a bbolt file so it survives restarts
// of a single-node deployment.
type Cache struct {
	db  *bbolt.DB
	key []byte
}

var _ user.TableCache = (*Cache)(nil) // interface compliance check

// Open opens (or creates) the cache file.
func Open(path, key string) (*Cache, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, errors.Wrap(err, "creating cache dir")
	}
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, errors.Wrap(err, "opening bolt db")
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "creating bucket")
	}
	return &Cache{db: db, key: []byte(key)}, nil
}

func (c *Cache) Get(_ context.Context) (sheet.Grid, bool, error) {
	var data []byte
	err := c.db.View(func(tx *bbolt.Tx) error {
		if v := tx.Bucket(bucket).Get(c.key); v != nil {
			data = append([]byte(nil), v...) // v is only valid inside the tx
		}
		return nil
	})
	if err != nil {
		return nil, false, errors.Wrap(err, "reading bolt cache")
	}
	if data == nil {
		return nil, false, nil
	}
	var grid sheet.Grid
	if err = json.Unmarshal(data, &grid); err != nil {
		return nil, false, errors.Wrap(err, "decoding cached grid")
	}
	return grid, true, nil
}

func (c *Cache) Set(_ context.Context, grid sheet.Grid) error {
	data, err := json.Marshal(grid)
	if err != nil {
		return errors.Wrap(err, "encoding grid")
	}
	return c.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucket).Put(c.key, data)
	})
}

func (c *Cache) Invalidate(_ context.Context) error {
	return c.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucket).Delete(c.key)
	})
}

func (c *Cache) Close() error {
	return c.db.Close()
}
