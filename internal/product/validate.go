package product

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	MaxProductNameLen = 120
	MaxSlotLabelLen   = 80
)

// Rule names the constraint a field failed.
type Rule string

const (
	RuleRequired  Rule = "required"
	RuleMaxLength Rule = "maxLength"
	RuleMin       Rule = "min"
	RuleOneOf     Rule = "oneOf"
)

// FieldError is one violation on one field path, e.g. "slots[1].odds".
type FieldError struct {
	Field   string `json:"field"`
	Rule    Rule   `json:"rule"`
	Message string `json:"message"`
}

func (e FieldError) String() string { return e.Field + ": " + e.Message }

// Result holds every violation found, in field order.
type Result struct {
	Errors  []FieldError `json:"errors"`
	Invalid bool         `json:"invalid"`
}

// Valid reports whether the field at path passed all of its rules.
func (r Result) Valid(path string) bool {
	for _, e := range r.Errors {
		if e.Field == path {
			return false
		}
	}
	return true
}

// For returns the violations recorded for path.
func (r Result) For(path string) []FieldError {
	var out []FieldError
	for _, e := range r.Errors {
		if e.Field == path {
			out = append(out, e)
		}
	}
	return out
}

// Summary joins all violations into one line; empty when valid.
func (r Result) Summary() string {
	parts := make([]string, len(r.Errors))
	for i, e := range r.Errors {
		parts[i] = e.String()
	}
	return strings.Join(parts, "; ")
}

type collector struct{ errs []FieldError }

func (c *collector) add(field string, rule Rule, format string, args ...any) {
	c.errs = append(c.errs, FieldError{Field: field, Rule: rule, Message: fmt.Sprintf(format, args...)})
}

func (c *collector) text(field, v string, max int) {
	if v == "" {
		c.add(field, RuleRequired, "is required")
		return
	}
	if max > 0 && utf8.RuneCountInString(v) > max {
		c.add(field, RuleMaxLength, "must be at most %d characters", max)
	}
}

func (c *collector) atLeast(field string, v, min int) {
	if v < min {
		c.add(field, RuleMin, "must be >= %d", min)
	}
}

func (c *collector) slotType(field string, t SlotType) {
	if t == "" {
		c.add(field, RuleRequired, "is required")
		return
	}
	if !t.Valid() {
		c.add(field, RuleOneOf, "must be one of: base, insert, hit")
	}
}

// Validate checks every field of cfg and reports all violations at once.
// It never mutates cfg.
func Validate(cfg Config) Result {
	var c collector

	c.text(FieldProductName, cfg.ProductName, MaxProductNameLen)
	c.text(FieldRandomSeed, cfg.RandomSeed, 0)
	c.atLeast(FieldBoxesPerCase, cfg.BoxesPerCase, 1)
	c.atLeast(FieldPacksPerBox, cfg.PacksPerBox, 1)
	c.atLeast(FieldCardsPerPack, cfg.CardsPerPack, 1)
	c.atLeast(FieldChecklistSize, cfg.ChecklistSize, 1)

	switch {
	case cfg.PrintStrategy == "":
		c.add(FieldPrintStrategy, RuleRequired, "is required")
	case !cfg.PrintStrategy.Valid():
		c.add(FieldPrintStrategy, RuleOneOf, "must be one of: print-run, odds-first")
	}

	for i, t := range cfg.SlotTypesEnabled {
		if !t.Valid() {
			c.add(fmt.Sprintf("%s[%d]", FieldSlotTypesEnabled, i), RuleOneOf, "must be one of: base, insert, hit")
		}
	}

	for i, s := range cfg.Slots {
		c.text(SlotField(i, "label"), s.Label, MaxSlotLabelLen)
		c.slotType(SlotField(i, "type"), s.Type)
		c.text(SlotField(i, "odds"), s.Odds, 0)
		c.slotType(SlotField(i, "replaces"), s.Replaces)
	}

	c.atLeast(FieldAutosPerBox, cfg.Guarantees.AutosPerBox, 0)
	c.atLeast(FieldCaseHitsPerCase, cfg.Guarantees.CaseHitsPerCase, 0)
	c.atLeast(FieldLowSerialCapPerBox, cfg.Guarantees.LowSerialCapPerBox, 0)
	c.atLeast(FieldCasesToSimulate, cfg.Simulation.CasesToSimulate, 1)

	return Result{Errors: c.errs, Invalid: len(c.errs) > 0}
}
