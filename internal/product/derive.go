package product

import (
	"fmt"
	"math"
	"strconv"
)

// ComputeFootprint derives packs, cards and checklist coverage for one case.
func ComputeFootprint(cfg Config) CaseFootprint {
	packs := cfg.BoxesPerCase * cfg.PacksPerBox
	cards := packs * cfg.CardsPerPack

	coverage := 0
	if cfg.ChecklistSize > 0 {
		pct := math.Round(float64(cards) / float64(cfg.ChecklistSize) * 100)
		coverage = int(math.Min(100, pct))
	}
	return CaseFootprint{
		PacksPerCase:             packs,
		CardsPerCase:             cards,
		ChecklistCoveragePercent: coverage,
	}
}

// GuaranteedHits is the number of hits a case must fund up front.
func GuaranteedHits(cfg Config) int {
	return cfg.Guarantees.AutosPerBox*cfg.BoxesPerCase + cfg.Guarantees.CaseHitsPerCase
}

// ComputeReadiness returns the three advisory checks, in display order:
//   - guarantees fit inside the cards of one case
//   - at least one slot per enabled slot type
//   - print-run strategy keeps variants replacing base cards
func ComputeReadiness(cfg Config) []ReadinessCheck {
	return []ReadinessCheck{
		guaranteeCheck(cfg),
		slotCountCheck(cfg),
		variantCheck(cfg),
	}
}

func guaranteeCheck(cfg Config) ReadinessCheck {
	hits := GuaranteedHits(cfg)
	cards := ComputeFootprint(cfg).CardsPerCase

	c := ReadinessCheck{Title: "Print runs cover guarantees"}
	if hits <= cards {
		count := "all"
		if hits != 0 {
			count = strconv.Itoa(hits)
		}
		c.Status = StatusOK
		c.Detail = fmt.Sprintf("Pools can fund %s guaranteed hits across %d boxes.", count, cfg.BoxesPerCase)
		return c
	}
	c.Status = StatusWarn
	c.Detail = "Guarantees exceed the available cards; trim guarantees or increase the print run."
	return c
}

func slotCountCheck(cfg Config) ReadinessCheck {
	n := len(cfg.Slots)
	plural := "s"
	if n == 1 {
		plural = ""
	}
	status := StatusOK
	if n < len(cfg.SlotTypesEnabled) {
		status = StatusWarn
	}
	return ReadinessCheck{
		Title:  "Slot odds add up",
		Detail: fmt.Sprintf("%d slot%s defined; replace base slots instead of stacking odds.", n, plural),
		Status: status,
	}
}

func variantCheck(cfg Config) ReadinessCheck {
	status := StatusInfo
	if cfg.PrintStrategy == PrintRun {
		status = StatusOK
	}
	return ReadinessCheck{
		Title:  "Variants replace base",
		Detail: "Slots marked insert / hit should replace the base slot rather than stack more cards per pack.",
		Status: status,
	}
}
