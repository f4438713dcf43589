package module

import "reflect"

// PortSet is a marker for module defined port sets
// modules define their own concrete interface types and return them from Ports
type PortSet = any

// PortsOf extracts an interface T from a module's Ports() bundle without
// going through the registry. The payload may be the interface itself or a
// struct whose exported fields carry the ports; unexported fields are
// skipped. ok=false means nothing in the bundle implements T
func PortsOf[T any](m Module) (t T, ok bool) {
	p := m.Ports()
	if p == nil {
		return t, false
	}
	if v, hit := p.(T); hit {
		return v, true
	}
	rv := reflect.ValueOf(p)
	if rv.Kind() != reflect.Struct {
		return t, false
	}
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if !f.CanInterface() {
			continue
		}
		if v, hit := f.Interface().(T); hit {
			return v, true
		}
	}
	return t, false
}

// MustPortsOf is PortsOf for wiring paths where a missing port is a
// programming error, e.g. activity pulling the installation lister
func MustPortsOf[T any](m Module) T {
	if v, ok := PortsOf[T](m); ok {
		return v
	}
	panic("module: requested port not found on module " + m.Name())
}
