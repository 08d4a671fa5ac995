package preset

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xtding233/packsim/internal/product"
)

var ErrInvalidCatalog = errors.New("preset catalog validation failed")

// ValidateCatalog checks that every preset is named and would load into a
// valid form on its own.
func ValidateCatalog(presets []product.Preset) error {
	var errs []string
	seen := make(map[string]bool, len(presets))

	for i, p := range presets {
		name := p.Name
		if name == "" {
			errs = append(errs, fmt.Sprintf("presets[%d].name is required", i))
			name = fmt.Sprintf("presets[%d]", i)
		} else if seen[name] {
			errs = append(errs, fmt.Sprintf("presets[%d].name %q is duplicated", i, name))
		}
		seen[p.Name] = true

		if len(p.Payload.Slots) == 0 {
			errs = append(errs, fmt.Sprintf("%s: payload.slots must hold at least one slot", name))
		}
		// Validate what the form would hold after loading, not the raw payload.
		form := product.NewForm(p.Payload)
		form.LoadPreset(p)
		for _, fe := range form.Validate().Errors {
			errs = append(errs, fmt.Sprintf("%s: payload.%s %s", name, fe.Field, fe.Message))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidCatalog, strings.Join(errs, "; "))
	}
	return nil
}
