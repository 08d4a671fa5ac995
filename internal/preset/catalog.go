package preset

import (
	"errors"
	"fmt"

	"github.com/xtding233/packsim/internal/product"
)

var ErrUnknownPreset = errors.New("unknown preset")

// Catalog is an immutable, ordered set of presets keyed by name.
type Catalog struct {
	presets []product.Preset
	index   map[string]int
}

// NewCatalog builds a catalog; a later preset with the same name replaces an
// earlier one in place.
func NewCatalog(presets ...product.Preset) *Catalog {
	c := &Catalog{index: make(map[string]int, len(presets))}
	for _, p := range presets {
		p = clonePreset(p)
		if i, ok := c.index[p.Name]; ok {
			c.presets[i] = p
			continue
		}
		c.index[p.Name] = len(c.presets)
		c.presets = append(c.presets, p)
	}
	return c
}

// BuiltinCatalog holds only the shipped presets.
func BuiltinCatalog() *Catalog { return NewCatalog(Builtin()...) }

// Lookup returns a copy of the named preset.
func (c *Catalog) Lookup(name string) (product.Preset, error) {
	i, ok := c.index[name]
	if !ok {
		return product.Preset{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return clonePreset(c.presets[i]), nil
}

// All returns copies of every preset in catalog order.
func (c *Catalog) All() []product.Preset {
	out := make([]product.Preset, len(c.presets))
	for i, p := range c.presets {
		out[i] = clonePreset(p)
	}
	return out
}

func (c *Catalog) Len() int { return len(c.presets) }

func clonePreset(p product.Preset) product.Preset {
	p.Payload = p.Payload.Clone()
	return p
}
