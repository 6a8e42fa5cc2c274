package cart

import "sync"

// Bus broadcasts "cart under this key changed" to every interested observer.
// One interface covers both transports: in-process delivery and redis pub/sub
// fan-out across instances.
type Bus interface {
	// Subscribe registers fn and returns its unsubscribe func.
	Subscribe(fn func(key string)) func()
	Publish(key string)
}

// LocalBus notifies subscribers in the same process, synchronously. No two
// cart mutations interleave their notifications within one process.
type LocalBus struct {
	mu          sync.Mutex
	nextID      int
	subscribers map[int]func(key string)
}

func NewLocalBus() *LocalBus {
	return &LocalBus{subscribers: make(map[int]func(key string))}
}

func (b *LocalBus) Subscribe(fn func(key string)) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.subscribers[id] = fn

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subscribers, id)
	}
}

func (b *LocalBus) Publish(key string) {
	b.mu.Lock()
	fns := make([]func(key string), 0, len(b.subscribers))
	for _, fn := range b.subscribers {
		fns = append(fns, fn)
	}
	b.mu.Unlock()

	for _, fn := range fns {
		fn(key)
	}
}
