package tracker

var _ Tracker[int] = (*Array[int])(nil)

// Array is a slot-backed Tracker. Duplicates are allowed and List keeps
// insertion order.
type Array[T comparable] struct {
	slots []T
	count int
}

// NewArray creates an Array holding items
func NewArray[T comparable](capacity int, items ...T) (*Array[T], error) {
	if err := validateCapacity(capacity); err != nil {
		return nil, err
	}
	if len(items) > capacity {
		return nil, tooManyItems(capacity, len(items))
	}

	a := &Array[T]{slots: make([]T, capacity)}
	a.count = copy(a.slots, items)
	return a, nil
}

// ArrayFactory adapts NewArray to Factory
func ArrayFactory[T comparable](capacity int, items ...T) (Tracker[T], error) {
	a, err := NewArray(capacity, items...)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// Append writes item to the first free slot
func (a *Array[T]) Append(item T) error {
	if a.IsFull() {
		return tooManyItems(len(a.slots), a.count+1)
	}
	a.slots[a.count] = item
	a.count++
	return nil
}

func (a *Array[T]) List() []T {
	out := make([]T, a.count)
	copy(out, a.slots[:a.count])
	return out
}

func (a *Array[T]) Count() int    { return a.count }
func (a *Array[T]) Capacity() int { return len(a.slots) }
func (a *Array[T]) IsEmpty() bool { return a.count == 0 }
func (a *Array[T]) IsFull() bool  { return a.count == len(a.slots) }

func (a *Array[T]) Contains(item T) bool {
	for _, v := range a.slots[:a.count] {
		if v == item {
			return true
		}
	}
	return false
}
