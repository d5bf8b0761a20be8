// Package loader holds the dynamic loader: the mutable, append-only set of
// loadable locators the runtime consults, plus the by-name entry registry
// through which the application's entry point is resolved.
//
// The loading mechanism itself is out of scope here. Application packages
// make themselves loadable by registering an entry factory (typically from
// init), and the bootstrapper resolves a well-known name at hand-off. The
// loader only guarantees what the bootstrap sequence needs: locators are
// appended in order, never removed or reordered, and appends are safe under
// concurrent callers.
package loader

import (
	"sync"

	"github.com/stagehand-dev/stagehand/pkg/logging"
	"github.com/stagehand-dev/stagehand/pkg/registry"
	"github.com/stagehand-dev/stagehand/pkg/types"
)

var log = logging.GetLogger("loader")

// DefaultEntryName is the well-known name the bootstrapper resolves when no
// other entry name is configured.
const DefaultEntryName = "main"

// entries is the process-wide entry registry populated by application
// packages at init time
var entries = registry.New[types.EntryFactory]()

// RegisterEntry registers an application entry factory under name.
func RegisterEntry(name string, factory types.EntryFactory) error {
	return entries.Register(name, factory)
}

// MustRegisterEntry registers an entry factory and panics on failure.
// Intended for init() functions, where a collision is a programming error.
func MustRegisterEntry(name string, factory types.EntryFactory) {
	registry.MustRegister(entries, name, factory)
}

// Loader is the dynamic loader instance. Created once after initial
// assembly, seeded with the assembled locator list, and mutated for the
// remainder of the process via Add.
type Loader struct {
	mu       sync.Mutex
	locators []types.Locator
	entries  registry.Registry[types.EntryFactory]
}

// New creates a loader seeded with the initial locator list, resolving
// entries from the process-wide registry.
func New(initial []types.Locator) *Loader {
	return NewWithEntries(initial, entries)
}

// NewWithEntries creates a loader with an explicit entry registry. Tests use
// this to avoid touching process-wide state.
func NewWithEntries(initial []types.Locator, reg registry.Registry[types.EntryFactory]) *Loader {
	l := &Loader{entries: reg}
	l.locators = append(l.locators, initial...)
	return l
}

// Add appends one locator to the live set. Existing entries are never
// removed or reordered.
func (l *Loader) Add(loc types.Locator) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.locators = append(l.locators, loc)
	log.Debug().Str("locator", loc.URL).Msg("locator added")
}

// Locators returns a snapshot of the locator list in append order.
func (l *Loader) Locators() []types.Locator {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]types.Locator, len(l.locators))
	copy(out, l.locators)
	return out
}

// Count returns the number of registered locators.
func (l *Loader) Count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locators)
}

// Resolve returns the entry factory registered under name.
func (l *Loader) Resolve(name string) (types.EntryFactory, error) {
	return l.entries.Get(name)
}

// Entries returns the names of all registered entry points.
func (l *Loader) Entries() []string {
	return l.entries.List()
}
