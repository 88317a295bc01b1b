// Package debounce filters repeated triggers of the same key that arrive
// faster than a minimum interval.
package debounce

import "time"

// DefaultInterval is the minimum time between two accepted triggers of a key.
const DefaultInterval = 50 * time.Millisecond

// Debouncer tracks the last accepted trigger per key.
// It is not safe for concurrent use.
type Debouncer struct {
	interval time.Duration
	now      func() time.Time
	last     map[string]time.Time
}

// Option configures a Debouncer.
type Option func(*Debouncer)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(d *Debouncer) {
		d.now = now
	}
}

// New returns a Debouncer. An interval <= 0 accepts every trigger.
func New(interval time.Duration, opts ...Option) *Debouncer {
	d := &Debouncer{
		interval: interval,
		now:      time.Now,
		last:     make(map[string]time.Time),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Interval returns the configured minimum interval.
func (d *Debouncer) Interval() time.Duration {
	return d.interval
}

// Allow reports whether a trigger of key should be accepted now.
// Only accepted triggers restart the interval.
func (d *Debouncer) Allow(key string) bool {
	now := d.now()
	if d.interval > 0 {
		if last, ok := d.last[key]; ok && now.Sub(last) < d.interval {
			return false
		}
	}
	d.last[key] = now
	return true
}

// Reset forgets the last trigger of key.
func (d *Debouncer) Reset(key string) {
	delete(d.last, key)
}
