// Package observe holds values owned by one part of the program and watched
// by others, such as the selected account and the current network.
package observe

import "sync"

type Value[T any] struct {
	mu   sync.Mutex
	v    T
	subs map[int]func(T)
	next int
}

func NewValue[T any](v T) *Value[T] {
	return &Value[T]{
		v:    v,
		subs: map[int]func(T){},
	}
}

func (o *Value[T]) Get() T {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.v
}

// Set stores v and calls every subscriber with it. Subscribers run on the
// caller's goroutine, outside the lock, in no particular order.
func (o *Value[T]) Set(v T) {
	o.mu.Lock()
	o.v = v
	subs := make([]func(T), 0, len(o.subs))
	for _, fn := range o.subs {
		subs = append(subs, fn)
	}
	o.mu.Unlock()

	for _, fn := range subs {
		fn(v)
	}
}

// Subscribe registers fn for future changes and returns a func removing it.
func (o *Value[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	o.mu.Lock()
	defer o.mu.Unlock()
	id := o.next
	o.next++
	o.subs[id] = fn
	return func() {
		o.mu.Lock()
		defer o.mu.Unlock()
		delete(o.subs, id)
	}
}
