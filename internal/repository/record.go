package repository

import "context"

// RecordStore keeps whole serialized records by key. Load returns
// apperror.ErrRecordNotFound when the key was never saved.
type RecordStore interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
}
