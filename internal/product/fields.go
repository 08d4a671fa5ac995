package product

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Field paths, as used by SetField and reported by Validate.
const (
	FieldProductName      = "productName"
	FieldRandomSeed       = "randomSeed"
	FieldBoxesPerCase     = "boxesPerCase"
	FieldPacksPerBox      = "packsPerBox"
	FieldCardsPerPack     = "cardsPerPack"
	FieldChecklistSize    = "checklistSize"
	FieldPrintStrategy    = "printStrategy"
	FieldSlotTypesEnabled = "slotTypesEnabled"
	FieldSlots            = "slots"
	FieldGuarantees       = "guarantees"
	FieldSimulation       = "simulation"

	FieldAutosPerBox        = "guarantees.autosPerBox"
	FieldCaseHitsPerCase    = "guarantees.caseHitsPerCase"
	FieldLowSerialCapPerBox = "guarantees.lowSerialCapPerBox"
	FieldCasesToSimulate    = "simulation.casesToSimulate"
	FieldReseedEachCase     = "simulation.reseedEachCase"
	FieldVarianceControl    = "simulation.varianceControl"
)

var (
	ErrUnknownField = errors.New("unknown field")
	// ErrCollectionField is returned when SetField targets a collection that
	// has its own guarded operations.
	ErrCollectionField = errors.New("field is managed by collection operations")
	ErrFieldValue      = errors.New("invalid field value")
)

// topFields lists the top-level paths that can be touched, in form order.
var topFields = []string{
	FieldProductName, FieldRandomSeed,
	FieldBoxesPerCase, FieldPacksPerBox, FieldCardsPerPack, FieldChecklistSize,
	FieldPrintStrategy, FieldSlotTypesEnabled,
	FieldGuarantees, FieldSimulation,
}

// SlotField builds the path of a sub-field of the slot at index i.
func SlotField(i int, sub string) string {
	return fmt.Sprintf("%s[%d].%s", FieldSlots, i, sub)
}

// fieldRef is a parsed path. index is -1 for non-slot paths.
type fieldRef struct {
	top   string
	index int
	sub   string
}

func parsePath(path string) (fieldRef, error) {
	ref := fieldRef{index: -1}
	head, sub, _ := strings.Cut(path, ".")
	ref.sub = sub

	if open := strings.IndexByte(head, '['); open >= 0 {
		if !strings.HasSuffix(head, "]") {
			return ref, fmt.Errorf("%w: %q", ErrUnknownField, path)
		}
		n, err := strconv.Atoi(head[open+1 : len(head)-1])
		if err != nil || n < 0 {
			return ref, fmt.Errorf("%w: %q", ErrUnknownField, path)
		}
		head, ref.index = head[:open], n
	}
	ref.top = head
	if ref.top == "" {
		return ref, fmt.Errorf("%w: %q", ErrUnknownField, path)
	}
	return ref, nil
}

// target resolves ref to a pointer into cfg that a JSON value can decode into.
func target(cfg *Config, ref fieldRef, path string) (any, error) {
	unknown := fmt.Errorf("%w: %q", ErrUnknownField, path)

	if ref.top == FieldSlots {
		if ref.index < 0 {
			return nil, fmt.Errorf("%w: %q", ErrCollectionField, path)
		}
		if ref.index >= len(cfg.Slots) {
			return nil, fmt.Errorf("%w: slot index %d out of range", ErrUnknownField, ref.index)
		}
		s := &cfg.Slots[ref.index]
		switch ref.sub {
		case "":
			return s, nil
		case "label":
			return &s.Label, nil
		case "type":
			return &s.Type, nil
		case "odds":
			return &s.Odds, nil
		case "replaces":
			return &s.Replaces, nil
		case "notes":
			return &s.Notes, nil
		}
		return nil, unknown
	}
	if ref.index >= 0 {
		return nil, unknown
	}

	switch ref.top {
	case FieldGuarantees:
		g := &cfg.Guarantees
		switch ref.sub {
		case "":
			return g, nil
		case "autosPerBox":
			return &g.AutosPerBox, nil
		case "caseHitsPerCase":
			return &g.CaseHitsPerCase, nil
		case "lowSerialCapPerBox":
			return &g.LowSerialCapPerBox, nil
		}
		return nil, unknown
	case FieldSimulation:
		s := &cfg.Simulation
		switch ref.sub {
		case "":
			return s, nil
		case "casesToSimulate":
			return &s.CasesToSimulate, nil
		case "reseedEachCase":
			return &s.ReseedEachCase, nil
		case "varianceControl":
			return &s.VarianceControl, nil
		}
		return nil, unknown
	}

	if ref.sub != "" {
		return nil, unknown
	}
	switch ref.top {
	case FieldProductName:
		return &cfg.ProductName, nil
	case FieldRandomSeed:
		return &cfg.RandomSeed, nil
	case FieldBoxesPerCase:
		return &cfg.BoxesPerCase, nil
	case FieldPacksPerBox:
		return &cfg.PacksPerBox, nil
	case FieldCardsPerPack:
		return &cfg.CardsPerPack, nil
	case FieldChecklistSize:
		return &cfg.ChecklistSize, nil
	case FieldPrintStrategy:
		return &cfg.PrintStrategy, nil
	case FieldSlotTypesEnabled:
		return nil, fmt.Errorf("%w: %q", ErrCollectionField, path)
	}
	return nil, unknown
}

// decodeInto assigns value to dst through its JSON form. Group fields are
// patched: keys absent from value keep their current content.
func decodeInto(dst any, value any) error {
	raw, ok := value.(json.RawMessage)
	if !ok {
		b, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrFieldValue, err)
		}
		raw = b
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: %v", ErrFieldValue, err)
	}
	return nil
}
