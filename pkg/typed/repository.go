// Package typed provides type-safe access to blobs stored in a core.KV.
package typed

import (
	"context"
	"errors"
	"fmt"

	"github.com/aretw0/quire/pkg/core"
)

// ErrDecode marks a blob that exists but cannot be decoded into the target type.
var ErrDecode = errors.New("blob decode failed")

// Blob binds one key of a core.KV to a Go type T.
// It acts as an Application Layer adapter, converting between raw bytes and typed values.
type Blob[T any] struct {
	kv    core.KV
	key   string
	codec Codec
}

// NewBlob creates a typed view of key. A nil codec means JSON.
func NewBlob[T any](kv core.KV, key string, codec Codec) *Blob[T] {
	if codec == nil {
		codec = JSONCodec{}
	}
	return &Blob[T]{kv: kv, key: key, codec: codec}
}

// Key returns the storage key, including the codec extension.
func (b *Blob[T]) Key() string {
	return b.key
}

// Get reads and decodes the blob.
// found is false (and err nil) when the key has never been written.
// A present but undecodable blob returns an error wrapping ErrDecode.
func (b *Blob[T]) Get(ctx context.Context) (value T, found bool, err error) {
	data, err := b.kv.Get(ctx, b.key)
	if errors.Is(err, core.ErrKeyNotFound) {
		return value, false, nil
	}
	if err != nil {
		return value, false, err
	}

	if err := b.codec.Unmarshal(data, &value); err != nil {
		var zero T
		return zero, true, fmt.Errorf("%w: %s into %T: %w", ErrDecode, b.key, zero, err)
	}
	return value, true, nil
}

// Put encodes value and replaces the blob.
func (b *Blob[T]) Put(ctx context.Context, value T) error {
	data, err := b.codec.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", b.key, err)
	}
	return b.kv.Put(ctx, b.key, data)
}

// Delete removes the blob.
func (b *Blob[T]) Delete(ctx context.Context) error {
	return b.kv.Delete(ctx, b.key)
}
