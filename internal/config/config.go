package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/pencil/internal/param"
)

const (
	DefaultDataDir    = "./data"
	DefaultLogLevel   = "info"
	DefaultPlotWidth  = 80
	DefaultPlotHeight = 10
)

type Config struct {
	DataDir  string     `yaml:"data_dir"`
	LogLevel string     `yaml:"log_level"`
	Read     ReadConfig `yaml:"read"`
	Plot     PlotConfig `yaml:"plot"`
}

// ReadConfig mirrors param.Options.
type ReadConfig struct {
	Param1         bool `yaml:"param1"`
	Param2         bool `yaml:"param2"`
	Quiet          bool `yaml:"quiet"`
	ConflictsQuiet bool `yaml:"conflicts_quiet"`
	NestDict       bool `yaml:"nest_dict"`
	AppendUnits    bool `yaml:"append_units"`
}

type PlotConfig struct {
	Width       int      `yaml:"width"`
	Height      int      `yaml:"height"`
	Diagnostics []string `yaml:"diagnostics,omitempty"`
}

func DefaultConfig() *Config {
	opts := param.DefaultOptions()
	return &Config{
		DataDir:  DefaultDataDir,
		LogLevel: DefaultLogLevel,
		Read: ReadConfig{
			Param1:         opts.Param1,
			Param2:         opts.Param2,
			Quiet:          opts.Quiet,
			ConflictsQuiet: opts.ConflictsQuiet,
			NestDict:       opts.NestDict,
			AppendUnits:    opts.AppendUnits,
		},
		Plot: PlotConfig{
			Width:  DefaultPlotWidth,
			Height: DefaultPlotHeight,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Options converts the read settings to param.Options.
func (r ReadConfig) Options() param.Options {
	opts := param.DefaultOptions()
	opts.Param1 = r.Param1
	opts.Param2 = r.Param2
	opts.Quiet = r.Quiet
	opts.ConflictsQuiet = r.ConflictsQuiet
	opts.NestDict = r.NestDict
	opts.AppendUnits = r.AppendUnits
	return opts
}
