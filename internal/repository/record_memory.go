package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/rocketscienceinc/tictactoe-pro/internal/apperror"
)

type memoryRecords struct {
	mu      sync.RWMutex
	records map[string][]byte
}

// NewMemoryRecordStore keeps records for the lifetime of the process only.
func NewMemoryRecordStore() RecordStore {
	return &memoryRecords{
		records: make(map[string][]byte),
	}
}

func (that *memoryRecords) Load(_ context.Context, key string) ([]byte, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	value, ok := that.records[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperror.ErrRecordNotFound, key)
	}

	return append([]byte(nil), value...), nil
}

func (that *memoryRecords) Save(_ context.Context, key string, value []byte) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.records[key] = append([]byte(nil), value...)

	return nil
}
