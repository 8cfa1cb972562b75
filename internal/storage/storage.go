// Package storage provides the key-value persistence the cart is saved to.
// It mirrors a browser's local storage: string keys and string values,
// grouped into namespaces so each visitor gets an isolated view.
package storage

import (
	"context"
	"errors"
	"regexp"
)

// KV is a single namespace of string keys and values.
type KV interface {
	// Get returns the stored value and whether the key exists.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores the value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Remove deletes the key. Removing a missing key is not an error.
	Remove(ctx context.Context, key string) error
}

// Backend hands out namespaces.
type Backend interface {
	Namespace(name string) (KV, error)
}

// LocalNamespace is used by single-user front ends such as the CLI.
const LocalNamespace = "local"

// ErrInvalidNamespace is returned for namespace names that cannot be used as
// file names or table keys.
var ErrInvalidNamespace = errors.New("invalid storage namespace")

var namespacePattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// ValidNamespace reports whether name is usable as a namespace.
func ValidNamespace(name string) bool {
	return namespacePattern.MatchString(name)
}
