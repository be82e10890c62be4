package param

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/san-kum/pencil/internal/namelist"
	"github.com/san-kum/pencil/internal/storage"
)

// Options selects what Read loads and reports.
type Options struct {
	// Param1 reads only the start parameters (param.nml).
	Param1 bool
	// Param2 reads only the run parameters (param2.nml).
	Param2 bool
	// Quiet suppresses the report of nesting decisions.
	Quiet bool
	// ConflictsQuiet suppresses the report of name conflicts.
	ConflictsQuiet bool
	// AsDict builds the parameters from a mapping. It must be true.
	AsDict bool
	// NestDict nests parameters whose names conflict between modules.
	NestDict bool
	// AppendUnits derives dimensional units from the code units.
	AppendUnits bool

	Logger logrus.FieldLogger
}

// DefaultOptions reads both files, nests conflicting names, derives units
// and reports conflicts but not nesting.
func DefaultOptions() Options {
	return Options{
		Quiet:       true,
		AsDict:      true,
		NestDict:    true,
		AppendUnits: true,
	}
}

// Read loads the parameters of the simulation whose data directory is
// dataDir. Files are read in order so run parameters override start
// parameters of the same name.
func Read(dataDir string, opts Options) (*Param, error) {
	log := opts.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	dir, err := expandHome(dataDir)
	if err != nil {
		return nil, err
	}

	files, err := storage.New(dir).ParamFiles(opts.Param1, opts.Param2)
	if err != nil {
		return nil, err
	}

	if !opts.AsDict {
		return nil, ErrConverterUnavailable
	}

	res := namelist.NewResult()
	res.Logger = log
	for _, f := range files {
		log.WithField("file", f).Debug("reading namelist")
		if err := res.ReadFile(f, opts.NestDict); err != nil {
			return nil, err
		}
	}

	p := assemble(res, opts, log)

	if opts.AppendUnits {
		if err := deriveUnits(p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func expandHome(dir string) (string, error) {
	if dir != "~" && !strings.HasPrefix(dir, "~/") {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("param: expanding %s: %w", dir, err)
	}
	return filepath.Join(home, strings.TrimPrefix(dir, "~")), nil
}
