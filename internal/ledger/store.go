package ledger

import "sort"

// store is a generic keyed container mapping id -> entity, one instance per
// entity kind. Iteration order over the map is not meaningful; ids() sorts
// for callers that need a stable order.
type store[T any] struct {
	records map[uint64]T
}

func newStore[T any]() *store[T] {
	return &store[T]{records: make(map[uint64]T)}
}

// insert stores the entity under the given id, overwriting any prior value.
func (s *store[T]) insert(id uint64, rec T) {
	s.records[id] = rec
}

// get returns the entity and whether it was present. Absence is not an
// error here; the operation handler decides NotFound semantics.
func (s *store[T]) get(id uint64) (T, bool) {
	rec, ok := s.records[id]
	return rec, ok
}

// update applies mutate to the entity in place if present, and returns the
// updated value.
func (s *store[T]) update(id uint64, mutate func(*T)) (T, bool) {
	rec, ok := s.records[id]
	if !ok {
		var zero T
		return zero, false
	}
	mutate(&rec)
	s.records[id] = rec
	return rec, true
}

// remove deletes the entity and returns its prior value.
func (s *store[T]) remove(id uint64) (T, bool) {
	rec, ok := s.records[id]
	if !ok {
		var zero T
		return zero, false
	}
	delete(s.records, id)
	return rec, true
}

// size returns the number of stored entities.
func (s *store[T]) size() int {
	return len(s.records)
}

// ids returns all keys sorted ascending.
func (s *store[T]) ids() []uint64 {
	out := make([]uint64, 0, len(s.records))
	for id := range s.records {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// page returns the window of ids for the given page and pageSize. Pages
// past the end, or a zero pageSize, yield an empty slice.
func page(ids []uint64, pageNum, pageSize uint64) []uint64 {
	if pageSize == 0 {
		return nil
	}
	start := pageNum * pageSize
	if start >= uint64(len(ids)) {
		return nil
	}
	end := start + pageSize
	if end > uint64(len(ids)) {
		end = uint64(len(ids))
	}
	return ids[start:end]
}
