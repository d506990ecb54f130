package backend

import (
	"fmt"
	"strings"
	"sync"
)

// Factory constructs an engine. The native automation engine, when
// built for a platform that has one, registers its factory at init
// time through RegisterNative.
type Factory func() (Engine, error)

var (
	nativeMu      sync.RWMutex
	nativeFactory Factory
)

// RegisterNative installs the factory for the platform's native
// automation engine. Calling it again replaces the previous factory.
func RegisterNative(f Factory) {
	nativeMu.Lock()
	nativeFactory = f
	nativeMu.Unlock()
}

func native() Factory {
	nativeMu.RLock()
	defer nativeMu.RUnlock()
	return nativeFactory
}

// Available reports which engines this build can construct. The hwpx
// engine is always present.
func Available() map[string]bool {
	return map[string]bool{
		"hwpx":   true,
		"native": native() != nil,
	}
}

// New constructs an engine by preference. An empty preference or
// "auto" picks the native engine when one is registered and falls
// back to the pure hwpx engine otherwise. Asking for "native" on a
// build without one is an error.
func New(preference string) (Engine, error) {
	switch strings.ToLower(preference) {
	case "", "auto":
		if f := native(); f != nil {
			return f()
		}
		return NewHWPX(), nil
	case "hwpx":
		return NewHWPX(), nil
	case "native":
		f := native()
		if f == nil {
			return nil, fmt.Errorf("%w: no native engine on this platform", ErrUnsupported)
		}
		return f()
	default:
		return nil, fmt.Errorf("backend: unknown engine %q", preference)
	}
}
