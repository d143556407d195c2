// Package cache keeps constructed keyboards keyed by their identity so that
// toggling between modes does not repeat the expensive materialization. The
// host drives eviction explicitly through Purge (memory pressure) or Delete;
// an evicted entry is indistinguishable from a miss and is transparently
// rebuilt on next lookup.
package cache

import (
	"runtime"
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/text/language"

	"github.com/softkbd/softkbd/keyboard"
	"github.com/softkbd/softkbd/log"
)

// buildAttempts bounds the construction retry loop. A garbage-collection
// pass runs between attempts so an allocation failure gets a chance to
// recover.
const buildAttempts = 5

// BuildFunc constructs a keyboard for an identity on a cache miss.
type BuildFunc func(id keyboard.Identity) (*keyboard.Keyboard, error)

// LocaleSwapFunc switches the process-wide locale context for the duration
// of a construction and returns the restore function.
type LocaleSwapFunc func(loc language.Tag) (restore func())

// Cache maps keyboard identities to constructed keyboards.
type Cache struct {
	mu      sync.Mutex
	entries map[keyboard.Identity]*keyboard.Keyboard

	build      BuildFunc
	swapLocale LocaleSwapFunc
	logger     *log.Logger

	// Refresh, when set, runs on every keyboard Get returns, hit or miss,
	// so the owner can reset transient display state before the keyboard
	// is shown again.
	Refresh func(*keyboard.Keyboard)
}

// New creates an empty cache. swapLocale may be nil when construction does
// not depend on a process locale context.
func New(build BuildFunc, swapLocale LocaleSwapFunc, logger *log.Logger) *Cache {
	if logger == nil {
		logger = log.NewNullLogger()
	}
	return &Cache{
		entries:    make(map[keyboard.Identity]*keyboard.Keyboard),
		build:      build,
		swapLocale: swapLocale,
		logger:     logger,
	}
}

// Get returns the cached keyboard for id, constructing and storing one on a
// miss. Construction failures are returned after the bounded retry loop is
// exhausted; the cache is left unchanged so the caller can keep whatever it
// was displaying.
func (c *Cache) Get(id keyboard.Identity) (*keyboard.Keyboard, error) {
	c.mu.Lock()
	kbd, ok := c.entries[id]
	if !ok {
		c.mu.Unlock()
		built, err := c.construct(id)
		if err != nil {
			return nil, err
		}
		if id.ShiftLockEnabled {
			built.EnableShiftLock()
		}
		c.mu.Lock()
		c.entries[id] = built
		kbd = built
		c.logger.Debugf("Cache:get", "cache size=%d: MISS id=%s", len(c.entries), id)
	} else {
		c.logger.Debugf("Cache:get", "cache size=%d: HIT id=%s", len(c.entries), id)
	}
	c.mu.Unlock()

	if c.Refresh != nil {
		c.Refresh(kbd)
	}
	return kbd, nil
}

func (c *Cache) construct(id keyboard.Identity) (*keyboard.Keyboard, error) {
	if c.swapLocale != nil {
		restore := c.swapLocale(id.Locale)
		defer restore()
	}

	var lastErr error
	for attempt := 0; attempt < buildAttempts; attempt++ {
		if attempt > 0 {
			runtime.GC()
		}
		kbd, err := c.build(id)
		if err == nil {
			return kbd, nil
		}
		lastErr = err
		c.logger.Warnf("Cache:construct", "keyboard construction failed (attempt %d of %d): %v",
			attempt+1, buildAttempts, err)
	}
	return nil, errors.Wrapf(lastErr, "constructing keyboard %s after %d attempts", id, buildAttempts)
}

// Delete drops the entry for id, if any. Returns true if it was present.
func (c *Cache) Delete(id keyboard.Identity) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, found := c.entries[id]
	delete(c.entries, id)
	return found
}

// Purge drops every entry. Hosts call it under memory pressure; subsequent
// lookups rebuild on demand.
func (c *Cache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := len(c.entries)
	c.entries = make(map[keyboard.Identity]*keyboard.Keyboard)
	c.logger.Debugf("Cache:purge", "dropped %d entries", n)
}

// Entries returns the number of cached keyboards.
func (c *Cache) Entries() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
