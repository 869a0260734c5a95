// Package memory contains the volatile, process-lifetime implementation of the persistence layer.
// Each entity kind lives in its own mutex-guarded collection; values are cloned on the way in
// and on the way out so callers never hold a reference into stored state.
package memory

import (
	"slices"
	"sync"
	"time"

	"agriassist/config"
	"agriassist/internal/domain/entity"

	"github.com/google/uuid"
)

// Store is the entity store shared by every repository in this package.
type Store struct {
	clock *clock

	users        *collection[entity.User]
	crops        *collection[entity.Crop]
	diseases     *collection[entity.Disease]
	diagnoses    *collection[entity.Diagnosis]
	experts      *collection[entity.Expert]
	alerts       *collection[entity.Alert]
	chatMessages *collection[entity.ChatMessage]
	feedback     *collection[entity.Feedback]
}

// Option customizes a Store.
type Option func(*storeOptions)

type storeOptions struct {
	now  func() time.Time
	seed bool
}

// WithClock replaces time.Now as the source of timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *storeOptions) {
		o.now = now
	}
}

// WithSeed controls whether reference crops, experts and alerts are loaded at construction.
func WithSeed(seed bool) Option {
	return func(o *storeOptions) {
		o.seed = seed
	}
}

// New creates a store. Reference data is seeded unless WithSeed(false) is given.
func New(opts ...Option) *Store {
	options := storeOptions{now: time.Now, seed: true}
	for _, opt := range opts {
		opt(&options)
	}

	store := &Store{
		clock:        &clock{now: options.now},
		users:        newCollection(cloneUser),
		crops:        newCollection(cloneCrop),
		diseases:     newCollection(cloneDisease),
		diagnoses:    newCollection(cloneDiagnosis),
		experts:      newCollection(cloneExpert),
		alerts:       newCollection(cloneAlert),
		chatMessages: newCollection(cloneChatMessage),
		feedback:     newCollection(cloneFeedback),
	}

	if options.seed {
		seed(store)
	}

	return store
}

// NewFromConfig builds the process-wide store from configuration.
func NewFromConfig(cfg *config.Config) *Store {
	return New(WithSeed(!cfg.Store.DisableSeed))
}

func newID() string {
	return uuid.NewString()
}

// clock hands out creation stamps that strictly increase across the whole store,
// so ordering by timestamp never ties even when the wall clock does.
type clock struct {
	mu   sync.Mutex
	now  func() time.Time
	last time.Time
}

func (c *clock) stamp() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	t := c.now()
	if !t.After(c.last) {
		t = c.last.Add(time.Nanosecond)
	}
	c.last = t

	return t
}

// current reads the wall clock without reserving a stamp.
func (c *clock) current() time.Time {
	return c.now()
}

// collection is an insertion-ordered map of one entity kind.
type collection[T any] struct {
	mu    sync.RWMutex
	items map[string]T
	order []string
	clone func(T) T
}

func newCollection[T any](clone func(T) T) *collection[T] {
	return &collection[T]{
		items: make(map[string]T),
		clone: clone,
	}
}

func (c *collection[T]) insert(id string, item T) *T {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.insertLocked(id, item)
}

// insertUnless stores item only if no existing item satisfies conflict.
func (c *collection[T]) insertUnless(id string, item T, conflict func(*T) bool) (*T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, key := range c.order {
		existing := c.items[key]
		if conflict(&existing) {
			return nil, false
		}
	}

	return c.insertLocked(id, item), true
}

func (c *collection[T]) insertLocked(id string, item T) *T {
	c.items[id] = c.clone(item)
	c.order = append(c.order, id)

	out := c.clone(item)

	return &out
}

func (c *collection[T]) get(id string) (*T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	item, ok := c.items[id]
	if !ok {
		return nil, false
	}

	out := c.clone(item)

	return &out, true
}

// find returns the first item, in insertion order, satisfying keep.
func (c *collection[T]) find(keep func(*T) bool) (*T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, id := range c.order {
		item := c.items[id]
		if keep(&item) {
			out := c.clone(item)

			return &out, true
		}
	}

	return nil, false
}

// filter returns clones of the items satisfying keep, in insertion order.
// A nil keep selects everything.
func (c *collection[T]) filter(keep func(*T) bool) []*T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]*T, 0, len(c.order))
	for _, id := range c.order {
		item := c.items[id]
		if keep != nil && !keep(&item) {
			continue
		}
		cloned := c.clone(item)
		out = append(out, &cloned)
	}

	return out
}

func (c *collection[T]) size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.items)
}

// sortByTime orders items by the extracted timestamp. Ties keep insertion order.
func sortByTime[T any](items []*T, at func(*T) time.Time, descending bool) {
	slices.SortStableFunc(items, func(a, b *T) int {
		cmp := at(a).Compare(at(b))
		if descending {
			return -cmp
		}

		return cmp
	})
}
