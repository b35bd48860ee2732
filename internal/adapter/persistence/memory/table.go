// Package memory keeps every entity in process memory. Contents are lost on
// restart. Each store operation holds the store lock for its whole duration,
// so no caller observes a partial write.
package memory

import "sync"

// table is an insertion ordered collection keyed by id. Rows are cloned on
// the way in and out so callers never share slices with the store.
type table[T any] struct {
	mu    sync.RWMutex
	rows  []T
	id    func(T) string
	clone func(T) T
}

func newTable[T any](id func(T) string, clone func(T) T) *table[T] {
	if clone == nil {
		clone = func(v T) T { return v }
	}
	return &table[T]{id: id, clone: clone}
}

func (t *table[T]) insert(v T) T {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rows = append(t.rows, t.clone(v))
	return t.clone(v)
}

// insertUnless stores v unless a stored row conflicts with it. The check and
// the insert happen under one lock. ok is false when a conflict was found.
func (t *table[T]) insertUnless(v T, conflicts func(stored, v T) bool) (T, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.conflictLocked("", v, conflicts) {
		var zero T
		return zero, false
	}
	t.rows = append(t.rows, t.clone(v))
	return t.clone(v), true
}

func (t *table[T]) get(id string) T {
	return t.first(func(v T) bool { return t.id(v) == id })
}

func (t *table[T]) first(match func(T) bool) T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for _, v := range t.rows {
		if match(v) {
			return t.clone(v)
		}
	}
	var zero T
	return zero
}

func (t *table[T]) filter(match func(T) bool) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := []T{}
	for _, v := range t.rows {
		if match == nil || match(v) {
			out = append(out, t.clone(v))
		}
	}
	return out
}

// update runs fn on the stored row with the given id. A missing id is a
// no-op and returns the zero value. fn may report false to skip the write.
func (t *table[T]) update(id string, fn func(*T) bool) T {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i := range t.rows {
		if t.id(t.rows[i]) != id {
			continue
		}
		row := t.clone(t.rows[i])
		if !fn(&row) {
			var zero T
			return zero
		}
		t.rows[i] = row
		return t.clone(row)
	}
	var zero T
	return zero
}

// mutate is update for callers whose change can fail. An error from fn
// leaves the row untouched and is returned.
func (t *table[T]) mutate(id string, fn func(*T) error) (T, error) {
	var fnErr error
	v := t.update(id, func(row *T) bool {
		fnErr = fn(row)
		return fnErr == nil
	})
	return v, fnErr
}

// updateUnless is update with a uniqueness check against every other row,
// evaluated on the changed row before it is stored. ok is false when a
// conflict blocked the write.
func (t *table[T]) updateUnless(id string, fn func(*T) bool, conflicts func(stored, next T) bool) (T, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	var zero T
	for i := range t.rows {
		if t.id(t.rows[i]) != id {
			continue
		}
		row := t.clone(t.rows[i])
		if !fn(&row) {
			return zero, true
		}
		if t.conflictLocked(id, row, conflicts) {
			return zero, false
		}
		t.rows[i] = row
		return t.clone(row), true
	}
	return zero, true
}

// conflictLocked reports whether a row other than skipID conflicts with v.
// The caller holds the lock.
func (t *table[T]) conflictLocked(skipID string, v T, conflicts func(stored, v T) bool) bool {
	for _, stored := range t.rows {
		if skipID != "" && t.id(stored) == skipID {
			continue
		}
		if conflicts(stored, v) {
			return true
		}
	}
	return false
}

func (t *table[T]) remove(match func(T) bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	kept := t.rows[:0]
	for _, v := range t.rows {
		if !match(v) {
			kept = append(kept, v)
		}
	}
	t.rows = kept
}
