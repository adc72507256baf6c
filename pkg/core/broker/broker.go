// Package broker implements the plug-in ABI of spec.md §4.6/§6: a broker
// is an opaque handle that reports which single kind (problem or solver)
// it wraps and hands out a typed reference to it. Grounded on
// itohio-EasyRobot's pkg/core/plugin package (Registry/Builder) for the
// in-process registration half, and on stdlib plugin.Open/plugin.Lookup
// for the dynamic-shared-object half that spec.md's "unmangled factory
// symbol" requirement demands.
package broker

import (
	"sync"

	"github.com/itohio/gridsolve/pkg/core/coreerr"
)

// Kind is the single capability a broker exposes.
type Kind int

const (
	KindProblem Kind = iota
	KindSolver
)

// Brocker is the ABI-facing handle every plug-in factory returns. The name
// matches the exported symbol spec.md §6 mandates (getBrocker), kept
// un-anglicized to stay recognizable against the original interface.
type Brocker interface {
	CanCastTo(kind Kind) bool
	GetInterfaceImpl(kind Kind) interface{}
	Release() error
}

// Static is the in-process Brocker a plug-in's GetBrocker constructs: it
// wraps exactly one typed implementation under one Kind.
type Static struct {
	kind Kind
	impl interface{}
}

// NewStatic wraps impl under kind. impl must not be nil.
func NewStatic(kind Kind, impl interface{}) (*Static, error) {
	if impl == nil {
		return nil, coreerr.New(coreerr.WrongArg, "implementation is nil")
	}
	return &Static{kind: kind, impl: impl}, nil
}

func (s *Static) CanCastTo(kind Kind) bool { return kind == s.kind }

func (s *Static) GetInterfaceImpl(kind Kind) interface{} {
	if kind != s.kind {
		return nil
	}
	return s.impl
}

func (s *Static) Release() error {
	s.impl = nil
	return nil
}

// GetBrockerFunc is the signature every plug-in's exported factory symbol
// must satisfy.
type GetBrockerFunc func() Brocker

// Builder constructs a Brocker for an in-process (non-dynamically-loaded)
// plug-in registration, mirroring itohio-EasyRobot's plugin.Builder.
type Builder func() (Brocker, error)

// Registry is an in-process name→Builder table for plug-ins linked
// directly into the host binary, grounded on itohio-EasyRobot's
// pkg/core/plugin.Registry.
type Registry struct {
	mu       sync.RWMutex
	builders map[string]Builder
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{builders: make(map[string]Builder)}
}

// Global is the process-wide registry in-process plug-ins register into.
var Global = NewRegistry()

// Register adds a named builder. It fails if the name is already taken.
func (r *Registry) Register(name string, b Builder) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.builders[name]; ok {
		return coreerr.New(coreerr.WrongArg, "plug-in name already registered: "+name)
	}
	r.builders[name] = b
	return nil
}

// Unregister removes a named builder, if present.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.builders, name)
}

// New constructs the broker a named builder produces.
func (r *Registry) New(name string) (Brocker, error) {
	r.mu.RLock()
	b, ok := r.builders[name]
	r.mu.RUnlock()
	if !ok {
		return nil, coreerr.New(coreerr.WrongArg, "unknown plug-in: "+name)
	}
	return b()
}
