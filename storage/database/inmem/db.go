package inmemdb

import (
	"sync"

	"github.com/absedu/campus/core/push"
)

type (
	// DB keeps tables in process memory; contents are lost on restart.
	DB struct {
		push *pushTable
	}

	pushTable struct {
		t     map[string]*push.Token // {token: row}
		mutex sync.RWMutex
	}
)

func Open() *DB {
	return &DB{
		push: &pushTable{t: make(map[string]*push.Token)},
	}
}
