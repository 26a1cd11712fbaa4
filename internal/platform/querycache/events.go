package querycache

import (
	"context"
	"strings"
)

const subscriberBuffer = 64

// EventType describes what happened to a key.
type EventType int

const (
	EventUpdated EventType = iota + 1
	EventInvalidated
	EventRemoved
	EventFetchFailed
)

func (t EventType) String() string {
	switch t {
	case EventUpdated:
		return "updated"
	case EventInvalidated:
		return "invalidated"
	case EventRemoved:
		return "removed"
	case EventFetchFailed:
		return "fetch_failed"
	default:
		return "unknown"
	}
}

// Event is delivered to subscribers of Key. Err is set for EventFetchFailed.
type Event struct {
	Type EventType
	Key  string
	Err  error
}

// Subscribe returns a channel of events for key. The channel is closed when
// ctx is done or the cache is closed. Publishing never blocks: a subscriber
// that falls more than a buffer behind misses events, which is harmless
// because every event only says "read the key again".
//
// A key with at least one subscriber is refetched in the background after
// Invalidate and is never garbage collected.
func (c *Cache) Subscribe(ctx context.Context, key string) <-chan Event {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		ch := make(chan Event)
		close(ch)
		return ch
	}

	ch := make(chan Event, subscriberBuffer)
	set, ok := c.subs[key]
	if !ok {
		set = make(map[chan Event]struct{})
		c.subs[key] = set
	}
	set[ch] = struct{}{}

	go func() {
		select {
		case <-ctx.Done():
		case <-c.ctx.Done():
		}

		c.mu.Lock()
		defer c.mu.Unlock()

		// Close may already have closed and dropped the channel.
		set, ok := c.subs[key]
		if !ok {
			return
		}
		if _, ok := set[ch]; !ok {
			return
		}
		delete(set, ch)
		close(ch)
		if len(set) == 0 {
			delete(c.subs, key)
		}
	}()

	return ch
}

// SubscriberCount returns the number of live subscriptions for key.
func (c *Cache) SubscriberCount(key string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.subs[key])
}

func (c *Cache) publishLocked(ev Event) {
	for ch := range c.subs[ev.Key] {
		select {
		case ch <- ev:
		default:
		}
	}
}

// Scoped prefixes key with scope so several sessions can share one cache.
// An empty scope returns key unchanged.
func Scoped(scope, key string) string {
	if scope == "" {
		return key
	}
	return scope + "/" + key
}

// KeyKind strips the scope and any ":id" suffix from key, leaving a
// low-cardinality label such as "todos", "todo" or "me".
func KeyKind(key string) string {
	if i := strings.LastIndexByte(key, '/'); i >= 0 {
		key = key[i+1:]
	}
	if i := strings.IndexByte(key, ':'); i >= 0 {
		key = key[:i]
	}
	return key
}
