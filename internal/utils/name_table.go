package utils

import (
	"github.com/kettlegym/zenithgen/internal/errors"
)

// NameTable is a string keyed table whose keys pass a validator chain before
// they are stored. It is filled by a single builder and is not safe for
// concurrent writes.
type NameTable[V any] struct {
	label string
	items map[string]V
	keys  *ValidatorChain[string]
}

// NewNameTable creates an empty table. label names the table in errors.
func NewNameTable[V any](label string, keys ...Validator[string]) *NameTable[V] {
	return &NameTable[V]{
		label: label,
		items: make(map[string]V),
		keys:  NewValidatorChain(keys...),
	}
}

// Put stores value under name, replacing any previous value
func (t *NameTable[V]) Put(name string, value V) error {
	if err := t.check(name); err != nil {
		return err
	}
	t.items[name] = value
	return nil
}

// PutIfAbsent stores value only when name is free and reports whether it did
func (t *NameTable[V]) PutIfAbsent(name string, value V) (bool, error) {
	if _, taken := t.items[name]; taken {
		return false, nil
	}
	if err := t.Put(name, value); err != nil {
		return false, err
	}
	return true, nil
}

func (t *NameTable[V]) Lookup(name string) (V, bool) {
	v, ok := t.items[name]
	return v, ok
}

func (t *NameTable[V]) Len() int { return len(t.items) }

// Snapshot copies the table into a plain map the caller owns
func (t *NameTable[V]) Snapshot() map[string]V {
	out := make(map[string]V, len(t.items))
	for k, v := range t.items {
		out[k] = v
	}
	return out
}

func (t *NameTable[V]) check(name string) error {
	if err := t.keys.Validate(name); err != nil {
		return errors.Wrapf(errors.ValidationErrorCode, err, "%s table rejected '%s'", t.label, name)
	}
	return nil
}
