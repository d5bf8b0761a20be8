package loader

import "sync"

// The active loader is the process-wide resolution context, set once during
// hand-off and readable by any code that needs the live locator set.
var (
	activeMu sync.RWMutex
	active   *Loader
)

// SetActive installs l as the process-wide resolution context.
func SetActive(l *Loader) {
	activeMu.Lock()
	defer activeMu.Unlock()
	active = l
}

// Active returns the process-wide loader, or nil before hand-off.
func Active() *Loader {
	activeMu.RLock()
	defer activeMu.RUnlock()
	return active
}
