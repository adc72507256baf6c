package broker

import (
	"plugin"

	"github.com/itohio/gridsolve/pkg/core/coreerr"
)

// factorySymbol is the unmangled factory name spec.md §6 requires every
// shared module to export.
const factorySymbol = "GetBrocker"

// Load opens the shared object at path and invokes its exported GetBrocker
// factory. Go plugin symbols must be exported identifiers, so the spec's
// lowerCamelCase getBrocker is exposed here as GetBrocker; the ABI
// contract (no arguments, opaque handle back) is unchanged. On failure,
// the underlying loader diagnostic is wrapped and returned.
func Load(path string) (Brocker, error) {
	p, err := plugin.Open(path)
	if err != nil {
		return nil, coreerr.Wrap(coreerr.AnyOther, "failed to load plug-in "+path, err)
	}
	sym, err := p.Lookup(factorySymbol)
	if err != nil {
		return nil, coreerr.Wrap(coreerr.AnyOther, "plug-in "+path+" does not export "+factorySymbol, err)
	}
	factory, ok := sym.(func() Brocker)
	if !ok {
		return nil, coreerr.New(coreerr.AnyOther, "plug-in "+path+"'s "+factorySymbol+" has the wrong signature")
	}
	b := factory()
	if b == nil {
		return nil, coreerr.New(coreerr.AnyOther, "plug-in "+path+" returned a nil broker")
	}
	return b, nil
}
