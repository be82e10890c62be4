package param

import (
	"fmt"
	"math"

	"github.com/san-kum/pencil/internal/namelist"
)

// Names of the code-unit parameters units are derived from.
const (
	UnitLength      = "unit_length"
	UnitVelocity    = "unit_velocity"
	UnitDensity     = "unit_density"
	UnitTemperature = "unit_temperature"
	UnitMagnetic    = "unit_magnetic"
	Mu0             = "mu0"
)

// unit reads a base parameter needed for a derived unit.
func (p *Param) unit(name string) (float64, error) {
	f, err := p.Float(name)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrMissingUnitBase, err)
	}
	return f, nil
}

// deriveUnits sets unit_time, unit_mass, unit_flux, unit_energy,
// unit_energy_density and unit_entropy, plus unit_current when mu0 is set.
func deriveUnits(p *Param) error {
	var (
		length, velocity, density, temperature float64
		err                                    error
	)
	for _, b := range []struct {
		name string
		dst  *float64
	}{
		{UnitLength, &length},
		{UnitVelocity, &velocity},
		{UnitDensity, &density},
		{UnitTemperature, &temperature},
	} {
		if *b.dst, err = p.unit(b.name); err != nil {
			return err
		}
	}

	tm := length / velocity
	mass := density * math.Pow(length, 3)
	p.set("unit_time", namelist.Float(tm))
	p.set("unit_mass", namelist.Float(mass))
	p.set("unit_flux", namelist.Float(mass/math.Pow(tm, 3)))
	p.set("unit_energy", namelist.Float(mass*velocity*velocity))
	p.set("unit_energy_density", namelist.Float(density*velocity*velocity))
	p.set("unit_entropy", namelist.Float(velocity*velocity/temperature))

	if _, ok := p.Get(Mu0); !ok {
		return nil
	}
	return deriveCurrent(p)
}

// deriveCurrent sets unit_current from unit_magnetic, unit_length and mu0.
func deriveCurrent(p *Param) error {
	mu0, err := p.unit(Mu0)
	if err != nil {
		return err
	}
	magnetic, err := p.unit(UnitMagnetic)
	if err != nil {
		return err
	}
	length, err := p.unit(UnitLength)
	if err != nil {
		return err
	}
	p.set("unit_current", namelist.Float(magnetic*length/mu0))
	return nil
}
