package preset

import "github.com/xtding233/packsim/internal/product"

const (
	HobbyBalanced = "Hobby balanced"
	RetailLight   = "Retail light"
	HitChase      = "Hit chase"
)

// Builtin returns the presets that ship with the service. Each call builds
// fresh values so callers can never alter the table.
func Builtin() []product.Preset {
	return []product.Preset{
		{
			Name:    HobbyBalanced,
			Summary: "Classic 12-box case with seeded autos and a modest hit slot.",
			Payload: product.Config{
				ProductName:      "2025 Apex Baseball — Hobby",
				RandomSeed:       "seed-2025",
				BoxesPerCase:     12,
				PacksPerBox:      24,
				CardsPerPack:     8,
				ChecklistSize:    200,
				PrintStrategy:    product.PrintRun,
				SlotTypesEnabled: []product.SlotType{product.SlotBase, product.SlotInsert, product.SlotHit},
				Slots: []product.Slot{
					{Label: "Base commons", Type: product.SlotBase, Odds: "every pack", Replaces: product.SlotBase, Notes: "Even checklist spread across the case."},
					{Label: "Insert slot", Type: product.SlotInsert, Odds: "1:6 packs", Replaces: product.SlotBase, Notes: "Rotate by theme; avoid dupes in a pack."},
					{Label: "Hit / auto", Type: product.SlotHit, Odds: "1:12 packs", Replaces: product.SlotInsert, Notes: "Respect box guarantees before shuffling."},
				},
				Guarantees: product.Guarantees{AutosPerBox: 1, CaseHitsPerCase: 1, LowSerialCapPerBox: 2},
				Simulation: product.SimulationSettings{CasesToSimulate: 25, ReseedEachCase: false, VarianceControl: true},
			},
		},
		{
			Name:    RetailLight,
			Summary: "Lower box count, gentler odds, no box autos guaranteed.",
			Payload: product.Config{
				ProductName:      "2025 Apex Baseball — Retail",
				RandomSeed:       "seed-retail",
				BoxesPerCase:     10,
				PacksPerBox:      20,
				CardsPerPack:     10,
				ChecklistSize:    180,
				PrintStrategy:    product.OddsFirst,
				SlotTypesEnabled: []product.SlotType{product.SlotBase, product.SlotInsert},
				Slots: []product.Slot{
					{Label: "Base commons", Type: product.SlotBase, Odds: "every pack", Replaces: product.SlotBase, Notes: "Even checklist spread across the case."},
					{Label: "Themed insert", Type: product.SlotInsert, Odds: "1:8 packs", Replaces: product.SlotBase, Notes: "One insert replaces a base card occasionally."},
				},
				Guarantees: product.Guarantees{AutosPerBox: 0, CaseHitsPerCase: 1, LowSerialCapPerBox: 1},
				Simulation: product.SimulationSettings{CasesToSimulate: 50, ReseedEachCase: true, VarianceControl: true},
			},
		},
		{
			Name:    HitChase,
			Summary: "Aggressive hit slot with tighter low-serial cap.",
			Payload: product.Config{
				ProductName:      "2025 Apex Black Label — Hobby",
				RandomSeed:       "seed-black-label",
				BoxesPerCase:     8,
				PacksPerBox:      18,
				CardsPerPack:     6,
				ChecklistSize:    120,
				PrintStrategy:    product.PrintRun,
				SlotTypesEnabled: []product.SlotType{product.SlotBase, product.SlotInsert, product.SlotHit},
				Slots: []product.Slot{
					{Label: "Base tier", Type: product.SlotBase, Odds: "every pack", Replaces: product.SlotBase, Notes: "Weighted toward top rookies."},
					{Label: "Foil insert", Type: product.SlotInsert, Odds: "1:4 packs", Replaces: product.SlotBase, Notes: "Rotates across themes; avoid duplicate players in a pack."},
					{Label: "Hit / auto", Type: product.SlotHit, Odds: "1:6 packs", Replaces: product.SlotInsert, Notes: "Guarantee one auto per box before shuffle."},
				},
				Guarantees: product.Guarantees{AutosPerBox: 1, CaseHitsPerCase: 2, LowSerialCapPerBox: 1},
				Simulation: product.SimulationSettings{CasesToSimulate: 10, ReseedEachCase: false, VarianceControl: true},
			},
		},
	}
}

// DefaultConfig is the model a fresh form starts from.
func DefaultConfig() product.Config {
	return Builtin()[0].Payload
}
