package tracker

var _ Tracker[int] = (*Set[int])(nil)

// Set is a Tracker that rejects duplicates. List order is unspecified.
type Set[T comparable] struct {
	items    map[T]struct{}
	capacity int
}

// NewSet creates a Set holding items. Repeated items fail with ErrDuplicate.
func NewSet[T comparable](capacity int, items ...T) (*Set[T], error) {
	if err := validateCapacity(capacity); err != nil {
		return nil, err
	}
	if len(items) > capacity {
		return nil, tooManyItems(capacity, len(items))
	}

	s := &Set[T]{items: make(map[T]struct{}, capacity), capacity: capacity}
	for _, item := range items {
		if err := s.Append(item); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// SetFactory adapts NewSet to Factory
func SetFactory[T comparable](capacity int, items ...T) (Tracker[T], error) {
	s, err := NewSet(capacity, items...)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Append adds item. A duplicate is reported before a full set.
func (s *Set[T]) Append(item T) error {
	if _, ok := s.items[item]; ok {
		return duplicate(item)
	}
	if s.IsFull() {
		return tooManyItems(s.capacity, len(s.items)+1)
	}
	s.items[item] = struct{}{}
	return nil
}

func (s *Set[T]) List() []T {
	out := make([]T, 0, len(s.items))
	for item := range s.items {
		out = append(out, item)
	}
	return out
}

func (s *Set[T]) Count() int    { return len(s.items) }
func (s *Set[T]) Capacity() int { return s.capacity }
func (s *Set[T]) IsEmpty() bool { return len(s.items) == 0 }
func (s *Set[T]) IsFull() bool  { return len(s.items) == s.capacity }

func (s *Set[T]) Contains(item T) bool {
	_, ok := s.items[item]
	return ok
}
