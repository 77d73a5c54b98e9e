package core

import (
	"fmt"
	"plugin"

	"github.com/user-none/minarch/internal/mnerr"
)

// Loader resolves a Module from a dynamically loaded shared object, the Go
// standard library's nearest equivalent to the dlopen/dlsym pair libretro
// cores are normally loaded through. A core built against this package's
// Module interface exports a single symbol, NewModule, returning one.
type Loader struct{}

// NewModuleFunc is the symbol every core .so must export.
type NewModuleFunc = func() Module

// Load opens path and resolves NewModuleFunc, wrapping failures into the
// "Emulator module" error kind: failure to open or resolve any required
// symbol is fatal to the caller, never silently ignored.
func (Loader) Load(path string) (Module, error) {
	p, err := plugin.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", mnerr.ErrCoreSymbol, path, err)
	}
	sym, err := p.Lookup("NewModule")
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", mnerr.ErrCoreSymbol, path, err)
	}
	ctor, ok := sym.(func() Module)
	if !ok {
		return nil, fmt.Errorf("%w: %s: NewModule has unexpected signature", mnerr.ErrCoreSymbol, path)
	}
	return ctor(), nil
}
