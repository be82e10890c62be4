package namelist

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/sirupsen/logrus"
)

// Suffixes cut from a block header, in order, to obtain the module name.
var moduleSuffixes = []string{"_pars", "_init", "_run"}

// Reserved pseudo-modules for the init and run parameter blocks. Their
// parameters are only ever kept flat.
const (
	ModuleInit = "init"
	ModuleRun  = "run"
)

// Conflict records a parameter defined with different values by two modules.
type Conflict struct {
	Module     string
	Name       string
	Value      Value
	Other      string
	OtherValue Value
}

func (c Conflict) String() string {
	return fmt.Sprintf("%s as %v in %s conflicts with %v in %s",
		c.Name, c.Value, c.Module, c.OtherValue, c.Other)
}

// Result accumulates the contents of one or more namelist files.
type Result struct {
	// Flat holds every assignment; later ones win.
	Flat map[string]Value
	// Nested holds assignments per module when nesting is requested.
	Nested map[string]map[string]Value
	// Modules lists the declared modules in order of first appearance,
	// without the reserved pseudo-modules.
	Modules []string
	// Names lists every assigned name in order, duplicates included.
	Names []string
	// Conflicts is keyed by module, then parameter name.
	Conflicts map[string]map[string]Conflict

	Logger logrus.FieldLogger
}

// NewResult returns an empty Result that logs to the standard logrus logger.
func NewResult() *Result {
	return &Result{
		Flat:      make(map[string]Value),
		Nested:    make(map[string]map[string]Value),
		Conflicts: make(map[string]map[string]Conflict),
		Logger:    logrus.StandardLogger(),
	}
}

// ModuleName derives the module name from a block header such as
// "&hydro_init_pars".
func ModuleName(header string) string {
	name := strings.TrimSpace(header)
	name = strings.TrimPrefix(name, "&")
	if f := strings.Fields(name); len(f) > 0 {
		name = f[0]
	}
	name = strings.ToLower(name)
	for _, suffix := range moduleSuffixes {
		name, _, _ = strings.Cut(name, suffix)
	}
	return name
}

func isReserved(module string) bool {
	return module == ModuleInit || module == ModuleRun
}

func isHeader(line string) bool {
	return strings.HasPrefix(line, "&") || (len(line) > 1 && line[1] == '&')
}

// ReadFile reads one namelist file into r. A missing file is reported as
// ErrFileNotFound before anything is parsed.
func (r *Result) ReadFile(path string, nest bool) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return fmt.Errorf("%w: %w", ErrRead, err)
	}
	defer f.Close()

	if err := r.Read(f, nest); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// Read parses namelist text from src into r. With nest set, assignments are
// also recorded under their module and cross-module conflicts are checked
// once the whole input has been read.
func (r *Result) Read(src io.Reader, nest bool) error {
	lines, err := Reassemble(src)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRead, err)
	}

	log := r.logger()
	module := ""
	for n, line := range lines {
		if isHeader(line) {
			module = ModuleName(line)
			if nest && !isReserved(module) {
				if _, ok := r.Nested[module]; !ok {
					r.Nested[module] = make(map[string]Value)
					r.Modules = append(r.Modules, module)
				}
			}
			continue
		}

		text := strings.TrimSpace(line)
		if text == "/" {
			continue
		}
		lhs, rhs, ok := strings.Cut(text, "=")
		if !ok {
			log.WithError(&LineError{Line: n + 1, Text: line, Wrapped: errNoAssignment}).
				Debug("skipping namelist line")
			continue
		}

		name := strings.ToLower(strings.ReplaceAll(lhs, " ", ""))
		value, err := tokenize(rhs)
		if err != nil {
			log.WithError(&LineError{Line: n + 1, Text: line, Wrapped: err}).
				Debug("repeat count not expanded")
		}
		r.Flat[name] = value
		r.Names = append(r.Names, name)
		if nest && module != "" && !isReserved(module) {
			r.Nested[module][name] = value
		}
	}

	if nest {
		r.detectConflicts()
	}
	return nil
}

// detectConflicts compares every ordered pair of modules on the names they
// share. A conflict is stored under the first module of the pair, so a name
// defined differently by two modules is recorded under both. The ledger is
// rebuilt from the merged values on every call.
func (r *Result) detectConflicts() {
	r.Conflicts = make(map[string]map[string]Conflict)
	for _, module := range r.Modules {
		for _, alt := range r.Modules {
			if alt == module {
				continue
			}
			for name, v := range r.Nested[module] {
				ov, ok := r.Nested[alt][name]
				if !ok || v.Equal(ov) {
					continue
				}
				if r.Conflicts[module] == nil {
					r.Conflicts[module] = make(map[string]Conflict)
				}
				r.Conflicts[module][name] = Conflict{
					Module:     module,
					Name:       name,
					Value:      v,
					Other:      alt,
					OtherValue: ov,
				}
			}
		}
	}
}

// ConflictList returns all recorded conflicts ordered by module declaration
// order, then parameter name.
func (r *Result) ConflictList() []Conflict {
	var out []Conflict
	for _, module := range r.Modules {
		if len(r.Conflicts[module]) == 0 {
			continue
		}
		names := make([]string, 0, len(r.Conflicts[module]))
		for name := range r.Conflicts[module] {
			names = append(names, name)
		}
		slices.Sort(names)
		for _, name := range names {
			out = append(out, r.Conflicts[module][name])
		}
	}
	return out
}

func (r *Result) logger() logrus.FieldLogger {
	if r.Logger == nil {
		return logrus.StandardLogger()
	}
	return r.Logger
}
