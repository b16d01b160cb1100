package blocks

import (
	"fmt"

	"github.com/benbjohnson/immutable"
	"github.com/pkg/errors"
)

// Registry holds block signatures by name. Registries are owned by
// whoever constructs them, never global, so independent compiler
// sessions cannot interfere. Registration happens before compilation
// begins; afterwards the registry is read-only and safe to share
// across concurrent compile calls.
type Registry struct {
	sigs *immutable.SortedMap
}

func NewRegistry() *Registry {
	return &Registry{sigs: immutable.NewSortedMap(nil)}
}

// Register adds a signature. A duplicate name is a programmer error
// and fails without touching the existing registration.
func (r *Registry) Register(sig Sig) error {
	if _, ok := r.sigs.Get(sig.Name()); ok {
		return errors.Errorf("block %q is already registered", sig.Name())
	}
	r.sigs = r.sigs.Set(sig.Name(), sig)
	return nil
}

// MustRegister panics on a duplicate name. For startup registration.
func (r *Registry) MustRegister(sig Sig) {
	if err := r.Register(sig); err != nil {
		panic(fmt.Sprintf("blocks: %v", err))
	}
}

// Lookup returns the signature registered under name.
func (r *Registry) Lookup(name string) (Sig, bool) {
	v, ok := r.sigs.Get(name)
	if !ok {
		return nil, false
	}
	return v.(Sig), true
}

// Names returns every registered name in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, r.sigs.Len())
	iter := r.sigs.Iterator()
	for !iter.Done() {
		k, _ := iter.Next()
		names = append(names, k.(string))
	}
	return names
}

// Len is the number of registered signatures.
func (r *Registry) Len() int {
	return r.sigs.Len()
}
