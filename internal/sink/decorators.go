package sink

import (
	"reflect"
	"time"

	"github.com/congo-pay/paylink/internal/clock"
	"github.com/congo-pay/paylink/internal/metrics"
)

// FridayGate forwards messages to its inner sink only on Fridays. On any
// other day messages are dropped without error; nothing is buffered.
type FridayGate struct {
	inner ErrorSink
	clock clock.Clock
}

// NewFridayGate wraps inner. The day is read from c at call time; a nil
// clock means the wall clock.
func NewFridayGate(inner ErrorSink, c clock.Clock) (*FridayGate, error) {
	if isNil(inner) {
		return nil, ErrMissingInner
	}
	if c == nil {
		c = clock.System{}
	}
	return &FridayGate{inner: inner, clock: c}, nil
}

// WriteError validates the message, then forwards it if today is Friday.
func (g *FridayGate) WriteError(message string) error {
	if message == "" {
		return ErrMissingMessage
	}
	if g.clock.Now().Weekday() != time.Friday {
		return nil
	}
	return g.inner.WriteError(message)
}

// FanOut delivers every message to an ordered list of sinks. Delivery is
// sequential and stops at the first failing sink, whose error is returned.
type FanOut struct {
	sinks []ErrorSink
}

// NewFanOut builds a composite over sinks, in order. Calling it with no
// sinks at all (a nil list) fails with ErrMissingLoggers; an explicitly
// empty list is accepted. Nil elements, including typed nil pointers, fail
// with ErrMissingInner.
func NewFanOut(sinks ...ErrorSink) (*FanOut, error) {
	if sinks == nil {
		return nil, ErrMissingLoggers
	}
	for _, s := range sinks {
		if isNil(s) {
			return nil, ErrMissingInner
		}
	}
	owned := make([]ErrorSink, len(sinks))
	copy(owned, sinks)
	return &FanOut{sinks: owned}, nil
}

// WriteError forwards message to each sink in order.
func (f *FanOut) WriteError(message string) error {
	if message == "" {
		return ErrMissingMessage
	}
	for _, s := range f.sinks {
		if err := s.WriteError(message); err != nil {
			return err
		}
	}
	return nil
}

// Counting records delivery outcomes of its inner sink in Prometheus
// counters labelled with name. Errors pass through unchanged.
type Counting struct {
	name    string
	inner   ErrorSink
	metrics *metrics.Metrics
}

// NewCounting wraps inner. A nil metrics set disables counting.
func NewCounting(name string, inner ErrorSink, m *metrics.Metrics) (*Counting, error) {
	if isNil(inner) {
		return nil, ErrMissingInner
	}
	return &Counting{name: name, inner: inner, metrics: m}, nil
}

// WriteError forwards message and counts the result.
func (c *Counting) WriteError(message string) error {
	if message == "" {
		return ErrMissingMessage
	}
	err := c.inner.WriteError(message)
	if c.metrics == nil {
		return err
	}
	if err != nil {
		c.metrics.SinkFailed.WithLabelValues(c.name).Inc()
		return err
	}
	c.metrics.SinkDelivered.WithLabelValues(c.name).Inc()
	return nil
}

// isNil reports whether s is nil or an interface holding a nil pointer.
func isNil(s ErrorSink) bool {
	if s == nil {
		return true
	}
	v := reflect.ValueOf(s)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}
