package status

import (
	"fmt"
	"sync/atomic"
)

// Registry groups the runner's metrics by value type
// Writers cache the pointers at startup; the status bar and exit log read them
type Registry struct {
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

func NewRegistry() *Registry {
	return &Registry{
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// Entry is one formatted metric
type Entry struct {
	Key   string
	Value string
}

// Entries formats every metric, strings first, then ints, then floats, each in key order
func (r *Registry) Entries() []Entry {
	out := make([]Entry, 0, r.Len())
	r.Strings.Range(func(k string, v *AtomicString) {
		out = append(out, Entry{k, v.Load()})
	})
	r.Ints.Range(func(k string, v *atomic.Int64) {
		out = append(out, Entry{k, fmt.Sprintf("%d", v.Load())})
	})
	r.Floats.Range(func(k string, v *AtomicFloat) {
		out = append(out, Entry{k, fmt.Sprintf("%.1f", v.Get())})
	})
	return out
}

func (r *Registry) Len() int {
	return r.Ints.Len() + r.Floats.Len() + r.Strings.Len()
}
