package jwtx

import (
	"errors"
	"fmt"
	"sync"
)

var (
	ErrNoKey    = errors.New("jwtx: key not found")
	ErrEmptySet = errors.New("jwtx: no usable keys in set")
)

// KeySet holds the issuer's public verification keys. It is safe for
// concurrent use; the refresher swaps keys while requests verify.
type KeySet struct {
	mu  sync.RWMutex
	jks JWKS
	pub map[string]any
}

// NewKeySet returns an empty KeySet.
func NewKeySet() *KeySet {
	return &KeySet{pub: make(map[string]any)}
}

// AddJWK parses j and adds it to the set.
func (k *KeySet) AddJWK(j JWK) error {
	if j.Kid == "" {
		return errors.New("jwtx: jwk has no kid")
	}
	key, err := j.publicKey()
	if err != nil {
		return err
	}

	k.mu.Lock()
	defer k.mu.Unlock()
	k.pub[j.Kid] = key
	k.jks.Keys = append(k.jks.Keys, j)
	return nil
}

// Get returns the public key for kid.
func (k *KeySet) Get(kid string) (any, error) {
	k.mu.RLock()
	defer k.mu.RUnlock()
	if pk, ok := k.pub[kid]; ok {
		return pk, nil
	}
	return nil, ErrNoKey
}

// JWKS returns a snapshot of the loaded keys.
func (k *KeySet) JWKS() JWKS {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return JWKS{Keys: append([]JWK(nil), k.jks.Keys...)}
}

// Len reports how many keys are loaded.
func (k *KeySet) Len() int {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return len(k.pub)
}

// IsReady reports whether at least one key is loaded.
func (k *KeySet) IsReady() bool {
	return k.Len() > 0
}

// Reset replaces every key with the usable keys of set. Keys of unsupported
// types are skipped. If nothing usable remains the current keys are kept and
// ErrEmptySet is returned.
func (k *KeySet) Reset(set JWKS) (skipped int, err error) {
	pub := make(map[string]any, len(set.Keys))
	kept := make([]JWK, 0, len(set.Keys))
	for _, j := range set.Keys {
		key, perr := j.publicKey()
		if perr != nil || j.Kid == "" {
			skipped++
			continue
		}
		pub[j.Kid] = key
		kept = append(kept, j)
	}

	if len(pub) == 0 {
		return skipped, fmt.Errorf("%w (%d skipped)", ErrEmptySet, skipped)
	}

	k.mu.Lock()
	defer k.mu.Unlock()
	k.pub = pub
	k.jks = JWKS{Keys: kept}
	return skipped, nil
}
