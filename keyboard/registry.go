package keyboard

import (
	"fmt"
	"sync"
)

//nolint:gochecknoglobals
var (
	layouts = make(map[LayoutKind]Layout)
	mu      sync.RWMutex
)

// LayoutFor returns the layout template registered for kind.
func LayoutFor(kind LayoutKind) (Layout, bool) {
	mu.RLock()
	defer mu.RUnlock()
	l, ok := layouts[kind]
	return l, ok
}

// Register the given layout template under kind.
// This function panics if a layout with the same kind is already registered.
func register(kind LayoutKind, rows [][]Definition) {
	mu.Lock()
	defer mu.Unlock()

	if _, ok := layouts[kind]; ok {
		panic(fmt.Sprintf("keyboard layout already registered: %s", kind))
	}
	layouts[kind] = Layout{
		Kind: kind,
		Rows: rows,
	}
}
