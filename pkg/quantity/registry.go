package quantity

import (
	_ "embed"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/text/cases"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/physkit/pkg/dimension"
)

//go:embed catalog.yaml
var catalogYAML []byte

type catalogFile struct {
	Units []catalogEntry `yaml:"units"`
}

type catalogEntry struct {
	Name       string           `yaml:"name"`
	Symbol     string           `yaml:"symbol"`
	Dimension  catalogDimension `yaml:"dimension"`
	Multiplier float64          `yaml:"multiplier"`
}

type catalogDimension struct {
	Length      int `yaml:"length"`
	Time        int `yaml:"time"`
	Mass        int `yaml:"mass"`
	Temperature int `yaml:"temperature"`
	Current     int `yaml:"current"`
	Substance   int `yaml:"substance"`
	Luminosity  int `yaml:"luminosity"`
}

func (d catalogDimension) dimension() dimension.Dimension {
	return dimension.New(d.Length, d.Time, d.Mass, d.Temperature, d.Current, d.Substance, d.Luminosity)
}

// registry is built once and only read afterwards.
type registry struct {
	bySymbol map[string]Unit
	byName   map[string]Unit
}

var (
	registryOnce sync.Once
	units        *registry
)

func defaultRegistry() *registry {
	registryOnce.Do(func() {
		r, err := buildRegistry(catalogYAML)
		if err != nil {
			// catalog.yaml is embedded, so this only trips on a broken build
			panic(err)
		}
		units = r
	})
	return units
}

func buildRegistry(catalog []byte) (*registry, error) {
	r := &registry{
		bySymbol: make(map[string]Unit),
		byName:   make(map[string]Unit),
	}
	for _, b := range builtinUnits {
		r.add(b.name, b.unit)
	}

	var file catalogFile
	if err := yaml.Unmarshal(catalog, &file); err != nil {
		return nil, errors.Join(ErrInvalidUnit, err)
	}
	for _, e := range file.Units {
		if e.Symbol == "" || e.Name == "" {
			return nil, fmt.Errorf("%w: catalog entry %q without symbol or name", ErrInvalidUnit, e.Name)
		}
		u, err := NewUnit(e.Symbol, e.Dimension.dimension(), e.Multiplier)
		if err != nil {
			return nil, err
		}
		r.add(e.Name, u)
	}
	return r, nil
}

func (r *registry) add(name string, u Unit) {
	if _, ok := r.bySymbol[u.symbol]; !ok {
		r.bySymbol[u.symbol] = u
	}
	r.byName[foldName(name)] = u
}

func foldName(name string) string {
	return cases.Fold().String(name)
}

// LookupUnit returns the registered unit with the given symbol, e.g. "N" or "km/h".
func LookupUnit(symbol string) (Unit, bool) {
	u, ok := defaultRegistry().bySymbol[symbol]
	return u, ok
}

// UnitByName returns the registered unit with the given name.
// Names are matched case-insensitively, e.g. "Newton" or "kilometre per hour".
func UnitByName(name string) (Unit, error) {
	u, ok := defaultRegistry().byName[foldName(name)]
	if !ok {
		return Unit{}, fmt.Errorf("%w: %q", ErrUnknownUnit, name)
	}
	return u, nil
}
