package dft

// Cache memoizes transforms by length for the duration of one operation.
// It is not safe for concurrent use and is not meant to outlive the call
// that created it.
type Cache[T Complex] struct {
	planner Planner[T]
	plans   map[int]Transform[T]
}

// NewCache returns an empty cache drawing transforms from planner.
func NewCache[T Complex](planner Planner[T]) *Cache[T] {
	return &Cache[T]{
		planner: planner,
		plans:   make(map[int]Transform[T]),
	}
}

// Get returns the transform for length n, planning it on first use.
func (c *Cache[T]) Get(n int) (Transform[T], error) {
	if t, ok := c.plans[n]; ok {
		return t, nil
	}

	t, err := c.planner(n)
	if err != nil {
		return nil, err
	}

	c.plans[n] = t
	return t, nil
}

// Len returns the number of distinct lengths planned so far.
func (c *Cache[T]) Len() int {
	return len(c.plans)
}
