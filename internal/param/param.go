package param

import (
	"fmt"
	"maps"
	"slices"

	"github.com/san-kum/pencil/internal/namelist"
)

// Param holds the parameters of one simulation. Parameters unique to one
// module are stored flat; names defined differently by several modules are
// stored per module in groups. A Param is filled once by Read and not
// modified afterwards.
type Param struct {
	values    map[string]namelist.Value
	groups    map[string]map[string]namelist.Value
	conflicts []namelist.Conflict
}

func newParam() *Param {
	return &Param{
		values: make(map[string]namelist.Value),
		groups: make(map[string]map[string]namelist.Value),
	}
}

// Get returns a flat parameter.
func (p *Param) Get(name string) (namelist.Value, bool) {
	v, ok := p.values[name]
	return v, ok
}

// GroupValue returns a parameter nested under module.
func (p *Param) GroupValue(module, name string) (namelist.Value, bool) {
	g, ok := p.groups[module]
	if !ok {
		return namelist.Value{}, false
	}
	v, ok := g[name]
	return v, ok
}

// Group returns a copy of the parameters nested under module.
func (p *Param) Group(module string) (map[string]namelist.Value, bool) {
	g, ok := p.groups[module]
	if !ok {
		return nil, false
	}
	return maps.Clone(g), true
}

// Keys returns the flat parameter names, sorted.
func (p *Param) Keys() []string {
	return slices.Sorted(maps.Keys(p.values))
}

// Groups returns the names of modules holding nested parameters, sorted.
func (p *Param) Groups() []string {
	return slices.Sorted(maps.Keys(p.groups))
}

// GroupKeys returns the parameter names nested under module, sorted.
func (p *Param) GroupKeys(module string) []string {
	return slices.Sorted(maps.Keys(p.groups[module]))
}

// Conflicts returns the name conflicts found while reading.
func (p *Param) Conflicts() []namelist.Conflict {
	return slices.Clone(p.conflicts)
}

// Float returns a flat numeric parameter.
func (p *Param) Float(name string) (float64, error) {
	v, ok := p.values[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	f, ok := v.AsFloat()
	if !ok {
		return 0, fmt.Errorf("%w: %s is %v", ErrNotNumeric, name, v.Kind())
	}
	return f, nil
}

// Map returns the parameters as plain maps: flat values keyed by name and
// one nested map per group.
func (p *Param) Map() map[string]any {
	out := make(map[string]any, len(p.values)+len(p.groups))
	for k, v := range p.values {
		out[k] = v
	}
	for module, g := range p.groups {
		out[module] = maps.Clone(g)
	}
	return out
}

func (p *Param) set(name string, v namelist.Value) {
	p.values[name] = v
}
