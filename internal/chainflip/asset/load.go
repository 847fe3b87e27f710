package asset

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type fileEntry struct {
	Symbol string `yaml:"symbol"`
	Scale  *int   `yaml:"scale"`
}

type file struct {
	Assets []fileEntry `yaml:"assets"`
}

// LoadFile reads asset scale overrides from a YAML document of the form
//
//	assets:
//	  - symbol: ARB
//	    scale: 18
func LoadFile(path string) (map[Symbol]uint8, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read assets file: %w", err)
	}
	return Parse(raw)
}

// Parse decodes asset scale overrides from YAML.
func Parse(raw []byte) (map[Symbol]uint8, error) {
	var f file
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("decode assets: %w", err)
	}

	out := make(map[Symbol]uint8, len(f.Assets))
	for i, e := range f.Assets {
		symbol := Normalize(e.Symbol)
		if symbol == "" {
			return nil, fmt.Errorf("asset #%d: 'symbol' is required", i)
		}
		if e.Scale == nil {
			return nil, fmt.Errorf("asset %s: 'scale' is required", symbol)
		}
		if *e.Scale < 0 || *e.Scale > 77 {
			return nil, fmt.Errorf("asset %s: scale %d out of range [0, 77]", symbol, *e.Scale)
		}
		if _, dup := out[symbol]; dup {
			return nil, fmt.Errorf("asset %s: duplicate entry", symbol)
		}
		out[symbol] = uint8(*e.Scale)
	}
	return out, nil
}
