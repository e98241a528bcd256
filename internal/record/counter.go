package record

// Counter is a non-negative tally.
type Counter struct {
	count int64
}

type counterFields struct {
	Count int64 `json:"count" validate:"gte=0"`
}

// NewCounter starts a counter at count, which must not be negative.
func NewCounter(count int64) (*Counter, error) {
	return construct("counter", counterFields{Count: count},
		func(f counterFields) *Counter {
			return &Counter{count: f.Count}
		})
}

// Increment raises the count by one. It is refused with ErrOverflow only
// when the count already sits at math.MaxInt64.
func (c *Counter) Increment() error {
	if !fits(c.count, 1) {
		return ErrOverflow
	}
	c.count++
	return nil
}

// Decrement lowers the count by one, or returns ErrBelowZero when the count
// is already 0.
func (c *Counter) Decrement() error {
	if c.count == 0 {
		return ErrBelowZero
	}
	c.count--
	return nil
}

// Count returns the current count.
func (c *Counter) Count() int64 { return c.count }
