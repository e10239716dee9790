// Package ledger is the single source of truth for all routine state. Facts
// live in a flat string-keyed store; a synchronous in-memory mirror backs
// every derivation so a completed write is immediately visible to the next
// read. Values cross this boundary typed: booleans and integers are parsed
// on read and serialized on write, with malformed stored values degrading to
// zero/absent instead of failing derivations.
package ledger

import (
	"context"
	"strconv"
)

type Ledger struct {
	store  Store
	mirror map[string]string
}

// Load opens a ledger over store and fills the mirror from it.
func Load(ctx context.Context, store Store) (*Ledger, error) {
	all, err := store.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	mirror := make(map[string]string, len(all))
	for k, v := range all {
		if InNamespace(k) {
			mirror[k] = v
		}
	}
	return &Ledger{store: store, mirror: mirror}, nil
}

// Get reads from the mirror. A miss means the fact is absent.
func (l *Ledger) Get(key string) (string, bool) {
	v, ok := l.mirror[key]
	return v, ok
}

// Set persists the fact, then updates the mirror. On store failure the
// mirror is left alone so it never diverges from persisted truth.
func (l *Ledger) Set(ctx context.Context, key, value string) error {
	if err := l.store.Set(ctx, key, value); err != nil {
		return err
	}
	l.mirror[key] = value
	return nil
}

func (l *Ledger) Remove(ctx context.Context, key string) error {
	if err := l.store.Remove(ctx, key); err != nil {
		return err
	}
	delete(l.mirror, key)
	return nil
}

func (l *Ledger) RemoveMany(ctx context.Context, keys []string) error {
	if err := l.store.RemoveMany(ctx, keys); err != nil {
		return err
	}
	for _, k := range keys {
		delete(l.mirror, k)
	}
	return nil
}

// Keys returns every mirrored key, for clear-all and export.
func (l *Ledger) Keys() []string {
	out := make([]string, 0, len(l.mirror))
	for k := range l.mirror {
		out = append(out, k)
	}
	return out
}

// Snapshot copies the mirror. Export and analytics iterate over this rather
// than the live map.
func (l *Ledger) Snapshot() map[string]string {
	out := make(map[string]string, len(l.mirror))
	for k, v := range l.mirror {
		out[k] = v
	}
	return out
}

// Bool reads a "0"/"1" fact; anything else counts as false.
func (l *Ledger) Bool(key string) bool {
	return l.mirror[key] == "1"
}

// SetBool writes a boolean fact as "0"/"1".
func (l *Ledger) SetBool(ctx context.Context, key string, v bool) error {
	s := "0"
	if v {
		s = "1"
	}
	return l.Set(ctx, key, s)
}

// Int reads an integer fact. Malformed or absent values report ok=false.
func (l *Ledger) Int(key string) (int, bool) {
	raw, ok := l.mirror[key]
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return n, true
}

// SetInt writes an integer fact.
func (l *Ledger) SetInt(ctx context.Context, key string, n int) error {
	return l.Set(ctx, key, strconv.Itoa(n))
}
