package product

import "errors"

var ErrInvalidSlotType = errors.New("invalid slot type")

// Placeholder content for slots appended with AddSlot.
const (
	NewSlotLabel = "New slot"
	NewSlotOdds  = "1:?? packs"
	NewSlotNotes = "Describe when this slot fires and what it replaces."
)

// Preset is a named, read-only payload that can bulk-populate a Form.
// A nil Payload.SlotTypesEnabled means every slot type is enabled.
type Preset struct {
	Name    string `json:"name" yaml:"name"`
	Summary string `json:"summary" yaml:"summary"`
	Payload Config `json:"payload" yaml:"payload"`
}

// Form owns one mutable Config and the set of fields the user has touched.
//
// Mutators keep two invariants: at least one slot, and at least one enabled
// slot type. An operation that would break either is a no-op and reports
// false. Form is not safe for concurrent use.
type Form struct {
	cfg Config

	touched     map[string]bool
	slotTouched []map[string]bool // parallel to cfg.Slots
}

// NewForm starts a form from initial. An empty enabled set falls back to all
// slot types and an empty slot list gets one base slot.
func NewForm(initial Config) *Form {
	f := &Form{cfg: initial.Clone(), touched: make(map[string]bool)}
	f.cfg.SlotTypesEnabled = enabledOrAll(f.cfg.SlotTypesEnabled)
	if len(f.cfg.Slots) == 0 {
		f.cfg.Slots = []Slot{newSlot(SlotBase)}
	}
	f.resetSlotTouched()
	return f
}

// Snapshot returns a deep copy of the current model.
func (f *Form) Snapshot() Config { return f.cfg.Clone() }

// SetField assigns value to the field at path and marks it touched.
// Nothing is validated beyond decoding the value into the field's type; on
// error the model is left unchanged.
func (f *Form) SetField(path string, value any) error {
	ref, err := parsePath(path)
	if err != nil {
		return err
	}
	next := f.cfg.Clone()
	dst, err := target(&next, ref, path)
	if err != nil {
		return err
	}
	if err := decodeInto(dst, value); err != nil {
		return err
	}
	f.cfg = next
	f.touch(ref, path)
	return nil
}

// ToggleSlotType enables t if absent and disables it if present. Disabling
// the last enabled type is refused.
func (f *Form) ToggleSlotType(t SlotType) bool {
	if !t.Valid() {
		return false
	}
	cur := f.cfg.SlotTypesEnabled
	next := make([]SlotType, 0, len(cur)+1)
	found := false
	for _, s := range cur {
		if s == t {
			found = true
			continue
		}
		next = append(next, s)
	}
	if !found {
		next = append(next, t)
	}
	if len(next) == 0 {
		return false
	}
	f.cfg.SlotTypesEnabled = next
	f.touched[FieldSlotTypesEnabled] = true
	return true
}

// AddSlot appends a placeholder slot of type t that replaces its own type,
// and returns its index. An empty t means base.
func (f *Form) AddSlot(t SlotType) (int, error) {
	if t == "" {
		t = SlotBase
	}
	if !t.Valid() {
		return -1, ErrInvalidSlotType
	}
	f.cfg.Slots = append(f.cfg.Slots, newSlot(t))
	f.slotTouched = append(f.slotTouched, map[string]bool{})
	return len(f.cfg.Slots) - 1, nil
}

// RemoveSlot deletes the slot at i. The last remaining slot is never removed.
func (f *Form) RemoveSlot(i int) bool {
	if len(f.cfg.Slots) <= 1 || i < 0 || i >= len(f.cfg.Slots) {
		return false
	}
	f.cfg.Slots = append(f.cfg.Slots[:i:i], f.cfg.Slots[i+1:]...)
	f.slotTouched = append(f.slotTouched[:i:i], f.slotTouched[i+1:]...)
	return true
}

// ReplaceAllSlots swaps the whole slot list in one step. An empty list is
// refused. Slots without a replaces type default to base.
func (f *Form) ReplaceAllSlots(slots []Slot) bool {
	if len(slots) == 0 {
		return false
	}
	next := make([]Slot, len(slots))
	for i, s := range slots {
		if s.Replaces == "" {
			s.Replaces = SlotBase
		}
		next[i] = s
	}
	f.cfg.Slots = next
	f.resetSlotTouched()
	return true
}

// LoadPreset overwrites every field with the preset payload.
func (f *Form) LoadPreset(p Preset) {
	pl := p.Payload
	f.cfg.ProductName = pl.ProductName
	f.cfg.RandomSeed = pl.RandomSeed
	f.cfg.BoxesPerCase = pl.BoxesPerCase
	f.cfg.PacksPerBox = pl.PacksPerBox
	f.cfg.CardsPerPack = pl.CardsPerPack
	f.cfg.ChecklistSize = pl.ChecklistSize
	f.cfg.PrintStrategy = pl.PrintStrategy
	f.cfg.SlotTypesEnabled = enabledOrAll(pl.SlotTypesEnabled)
	f.cfg.Guarantees = pl.Guarantees
	f.cfg.Simulation = pl.Simulation
	f.ReplaceAllSlots(pl.Slots)
}

// Validate runs the validator over the current model.
func (f *Form) Validate() Result { return Validate(f.cfg) }

func (f *Form) Footprint() CaseFootprint { return ComputeFootprint(f.cfg) }

func (f *Form) Readiness() []ReadinessCheck { return ComputeReadiness(f.cfg) }

// MarkAllTouched reveals every field's violations at once.
func (f *Form) MarkAllTouched() {
	for _, name := range topFields {
		f.touched[name] = true
	}
	for _, m := range f.slotTouched {
		m[""] = true
	}
}

// Touched reports whether the field at path, or its enclosing group, has
// been touched.
func (f *Form) Touched(path string) bool {
	ref, err := parsePath(path)
	if err != nil {
		return false
	}
	if ref.top == FieldSlots && ref.index >= 0 {
		if ref.index >= len(f.slotTouched) {
			return false
		}
		m := f.slotTouched[ref.index]
		return m[""] || m[ref.sub]
	}
	return f.touched[ref.top] || f.touched[path]
}

// VisibleErrors returns the violations on touched fields only.
func (f *Form) VisibleErrors() []FieldError {
	var out []FieldError
	for _, e := range f.Validate().Errors {
		if f.Touched(e.Field) {
			out = append(out, e)
		}
	}
	return out
}

func (f *Form) touch(ref fieldRef, path string) {
	if ref.top == FieldSlots && ref.index >= 0 && ref.index < len(f.slotTouched) {
		f.slotTouched[ref.index][ref.sub] = true
		return
	}
	f.touched[path] = true
}

func (f *Form) resetSlotTouched() {
	f.slotTouched = make([]map[string]bool, len(f.cfg.Slots))
	for i := range f.slotTouched {
		f.slotTouched[i] = map[string]bool{}
	}
}

func newSlot(t SlotType) Slot {
	return Slot{Label: NewSlotLabel, Type: t, Odds: NewSlotOdds, Replaces: t, Notes: NewSlotNotes}
}

// enabledOrAll drops duplicates, keeping first-seen order, and falls back to
// every slot type when nothing is left.
func enabledOrAll(in []SlotType) []SlotType {
	seen := make(map[SlotType]bool, len(in))
	out := make([]SlotType, 0, len(in))
	for _, t := range in {
		if seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	if len(out) == 0 {
		return AllSlotTypes()
	}
	return out
}
