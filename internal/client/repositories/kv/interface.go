// Package kv provides the durable key-value surface every store persists
// through. Values are JSON text; a missing key reads as (nil, nil).
package kv

import (
	"context"
)

type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
