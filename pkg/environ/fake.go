package environ

import "sync"

// Fake is a map-backed Environment for tests. The zero value is not usable;
// construct with NewFake.
type Fake struct {
	mu     sync.Mutex
	values map[string]string
	cwd    string
	osName string
}

// NewFake creates a fake environment reporting the given OS name and working
// directory.
func NewFake(osName, cwd string) *Fake {
	return &Fake{
		values: make(map[string]string),
		cwd:    cwd,
		osName: osName,
	}
}

func (f *Fake) Get(key string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values[key]
}

func (f *Fake) Lookup(key string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.values[key]
	return v, ok
}

func (f *Fake) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[key] = value
	return nil
}

func (f *Fake) Getwd() (string, error) {
	return f.cwd, nil
}

func (f *Fake) OSName() string {
	return f.osName
}
