package param

import (
	"maps"

	"github.com/sirupsen/logrus"

	"github.com/san-kum/pencil/internal/namelist"
)

// assemble decides which parameters are nested and builds the Param.
//
// Only names that conflict between modules are nested: modules without any
// conflict are not kept as groups, kept groups are pruned to the conflicting
// names, and those names are removed from the flat mapping.
func assemble(res *namelist.Result, opts Options, log logrus.FieldLogger) *Param {
	conflicts := res.ConflictList()

	subkeys := make(map[string]bool)
	for _, c := range conflicts {
		subkeys[c.Name] = true
	}

	flat := maps.Clone(res.Flat)
	groups := make(map[string]map[string]namelist.Value)
	for _, module := range res.Modules {
		delete(flat, module)
		if _, ok := res.Conflicts[module]; !ok {
			continue
		}
		g := make(map[string]namelist.Value)
		for name, v := range res.Nested[module] {
			if subkeys[name] {
				g[name] = v
			}
		}
		groups[module] = g
	}
	for name := range subkeys {
		delete(flat, name)
	}

	if !opts.ConflictsQuiet {
		for _, c := range conflicts {
			log.WithFields(logrus.Fields{
				"module": c.Module,
				"param":  c.Name,
				"other":  c.Other,
			}).Info(c.String())
		}
	}

	p := newParam()
	for name, v := range flat {
		p.set(name, v)
	}
	for _, module := range res.Modules {
		g, ok := groups[module]
		if !ok {
			continue
		}
		p.groups[module] = g
		if opts.Quiet {
			continue
		}
		for _, name := range p.GroupKeys(module) {
			log.WithFields(logrus.Fields{"module": module, "param": name}).
				Infof("%s is nested under %s", name, module)
		}
	}
	p.conflicts = conflicts

	log.WithFields(logrus.Fields{
		"flat":   len(p.values),
		"groups": len(p.groups),
	}).Debug("parameters assembled")
	return p
}
