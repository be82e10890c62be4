package storage

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Mapper is implemented by parameter sets that can be viewed as plain maps.
type Mapper interface {
	Map() map[string]any
}

// Export formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

func ExportJSON(w io.Writer, m Mapper) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(m.Map())
}

func ExportYAML(w io.Writer, m Mapper) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(m.Map()); err != nil {
		return err
	}
	return encoder.Close()
}

// Export writes m to w in the given format.
func Export(w io.Writer, format string, m Mapper) error {
	switch format {
	case FormatJSON:
		return ExportJSON(w, m)
	case FormatYAML:
		return ExportYAML(w, m)
	default:
		return fmt.Errorf("storage: unknown export format %q", format)
	}
}

// ExportFile writes m to a new file at path.
func ExportFile(path, format string, m Mapper) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := Export(file, format, m); err != nil {
		return err
	}
	return file.Close()
}
