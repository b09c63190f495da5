package inmemcache

import (
	"context"
	"sync"

	"github.com/absedu/campus/core/sheet"
	"github.com/absedu/campus/core/user"
)

// Cache keeps the identity table for the lifetime of the process.
type Cache struct {
	mu   sync.RWMutex
	grid sheet.Grid
	set  bool
}

var _ user.TableCache = (*Cache)(nil) // interface compliance check

func New() *Cache {
	return &Cache{}
}

func (c *Cache) Get(_ context.Context) (sheet.Grid, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.set {
		return nil, false, nil
	}
	return clone(c.grid), true, nil
}

func (c *Cache) Set(_ context.Context, grid sheet.Grid) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.grid = clone(grid)
	c.set = true
	return nil
}

func (c *Cache) Invalidate(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.grid = nil
	c.set = false
	return nil
}

func clone(grid sheet.Grid) sheet.Grid {
	cp := make(sheet.Grid, len(grid))
	for i, row := range grid {
		cp[i] = append([]string(nil), row...)
	}
	return cp
}
