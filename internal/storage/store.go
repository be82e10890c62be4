package storage

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/san-kum/pencil/internal/namelist"
)

// File names inside a Pencil Code data directory.
const (
	ParamFile      = "param.nml"
	Param2File     = "param2.nml"
	TimeSeriesFile = "time_series.dat"
)

var (
	ErrNoHeader          = errors.New("storage: time series has no column header")
	ErrUnknownDiagnostic = errors.New("storage: unknown diagnostic")
)

// Store gives access to the files of one data directory.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Dir() string {
	return s.baseDir
}

func (s *Store) Path(name string) string {
	return filepath.Join(s.baseDir, name)
}

// ParamFiles lists the namelist files to read. param1 selects only the start
// parameters, param2 only the run parameters; otherwise param.nml is
// followed by param2.nml when the latter exists. Every returned file is
// checked to exist.
func (s *Store) ParamFiles(param1, param2 bool) ([]string, error) {
	var files []string
	switch {
	case param1:
		files = []string{s.Path(ParamFile)}
	case param2:
		files = []string{s.Path(Param2File)}
	default:
		files = []string{s.Path(ParamFile)}
		if exists(s.Path(Param2File)) {
			files = append(files, s.Path(Param2File))
		}
	}

	for _, f := range files {
		if !exists(f) {
			return nil, fmt.Errorf("%w: %s", namelist.ErrFileNotFound, f)
		}
	}
	return files, nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// TimeSeries holds the diagnostics written to time_series.dat, one row per
// output step.
type TimeSeries struct {
	Names []string
	Rows  [][]float64
}

// Column returns the values of one diagnostic over time.
func (ts *TimeSeries) Column(name string) ([]float64, error) {
	idx := -1
	for i, n := range ts.Names {
		if n == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDiagnostic, name)
	}

	col := make([]float64, len(ts.Rows))
	for i, row := range ts.Rows {
		col[i] = row[idx]
	}
	return col, nil
}

// LoadTimeSeries reads time_series.dat. The first comment line names the
// columns, e.g. "#--it-----t-----dt----urms--"; later comment lines are
// ignored. Rows with the wrong number of fields or unparsable numbers are
// skipped.
func (s *Store) LoadTimeSeries() (*TimeSeries, error) {
	path := s.Path(TimeSeriesFile)
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	ts := &TimeSeries{}
	sc := bufio.NewScanner(file)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") {
			if ts.Names == nil {
				ts.Names = parseHeader(line)
			}
			continue
		}
		if ts.Names == nil {
			return nil, fmt.Errorf("%w: %s", ErrNoHeader, path)
		}

		row, ok := parseRow(line, len(ts.Names))
		if !ok {
			continue
		}
		ts.Rows = append(ts.Rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if ts.Names == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoHeader, path)
	}
	return ts, nil
}

func parseHeader(line string) []string {
	return strings.FieldsFunc(strings.TrimLeft(line, "#"), func(r rune) bool {
		return r == '-' || r == ' '
	})
}

func parseRow(line string, width int) ([]float64, bool) {
	fields := strings.Fields(line)
	if len(fields) != width {
		return nil, false
	}
	row := make([]float64, width)
	for i, f := range fields {
		// Fortran double precision exponents
		f = strings.NewReplacer("D", "E", "d", "e").Replace(f)
		val, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, false
		}
		row[i] = val
	}
	return row, true
}
