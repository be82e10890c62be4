package config

import "sort"

// Presets are named read settings.
var Presets = map[string]ReadConfig{
	"merged": {Quiet: true, NestDict: true, AppendUnits: true},
	"start":  {Param1: true, Quiet: true, NestDict: true, AppendUnits: true},
	"run":    {Param2: true, Quiet: true, NestDict: true, AppendUnits: true},
	"flat":   {Quiet: true, NestDict: false, AppendUnits: true},
	"raw":    {Quiet: true, NestDict: true, AppendUnits: false},
	"loud":   {Quiet: false, NestDict: true, AppendUnits: true},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *ReadConfig {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	return &p
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
