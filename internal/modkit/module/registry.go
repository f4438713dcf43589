package module

import "sync"

// Process-global registry used during bootstrap to cross-wire ports
// between modules (installations publishing its lister, activity and
// summary picking it up). Single-process composition only
var (
	mu  sync.RWMutex
	reg = map[string]any{}
)

// Register stores a port set under a module name, replacing any prior entry
func Register(name string, ports any) {
	mu.Lock()
	reg[name] = ports
	mu.Unlock()
}

// PortsAs fetches the port set registered under name and asserts it to T.
// ok=false when the name is unknown or the stored value is not a T
func PortsAs[T any](name string) (T, bool) {
	mu.RLock()
	v, ok := reg[name]
	mu.RUnlock()
	if !ok {
		var zero T
		return zero, false
	}
	out, ok := v.(T)
	return out, ok
}

// Reset clears the registry for tests
func Reset() {
	mu.Lock()
	reg = map[string]any{}
	mu.Unlock()
}
