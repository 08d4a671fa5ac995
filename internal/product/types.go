// types.go
package product

// SlotType is the category a pack slot draws from.
type SlotType string

const (
	SlotBase   SlotType = "base"
	SlotInsert SlotType = "insert"
	SlotHit    SlotType = "hit"
)

// AllSlotTypes lists every SlotType in display order.
func AllSlotTypes() []SlotType {
	return []SlotType{SlotBase, SlotInsert, SlotHit}
}

func (t SlotType) Valid() bool {
	switch t {
	case SlotBase, SlotInsert, SlotHit:
		return true
	}
	return false
}

// PrintStrategy decides whether print runs or slot odds drive the simulation.
type PrintStrategy string

const (
	PrintRun  PrintStrategy = "print-run"
	OddsFirst PrintStrategy = "odds-first"
)

func (s PrintStrategy) Valid() bool {
	return s == PrintRun || s == OddsFirst
}

// Slot describes one position in a pack.
type Slot struct {
	Label    string   `json:"label" yaml:"label"`
	Type     SlotType `json:"type" yaml:"type"`
	Odds     string   `json:"odds" yaml:"odds"`         // free text, e.g. "1:6 packs"
	Replaces SlotType `json:"replaces" yaml:"replaces"` // category displaced when this slot fires
	Notes    string   `json:"notes" yaml:"notes"`
}

type Guarantees struct {
	AutosPerBox        int `json:"autosPerBox" yaml:"autosPerBox"`
	CaseHitsPerCase    int `json:"caseHitsPerCase" yaml:"caseHitsPerCase"`
	LowSerialCapPerBox int `json:"lowSerialCapPerBox" yaml:"lowSerialCapPerBox"`
}

type SimulationSettings struct {
	CasesToSimulate int  `json:"casesToSimulate" yaml:"casesToSimulate"`
	ReseedEachCase  bool `json:"reseedEachCase" yaml:"reseedEachCase"`
	VarianceControl bool `json:"varianceControl" yaml:"varianceControl"`
}

// Config is the full simulation request payload.
type Config struct {
	ProductName      string             `json:"productName" yaml:"productName"`
	RandomSeed       string             `json:"randomSeed" yaml:"randomSeed"`
	BoxesPerCase     int                `json:"boxesPerCase" yaml:"boxesPerCase"`
	PacksPerBox      int                `json:"packsPerBox" yaml:"packsPerBox"`
	CardsPerPack     int                `json:"cardsPerPack" yaml:"cardsPerPack"`
	ChecklistSize    int                `json:"checklistSize" yaml:"checklistSize"`
	PrintStrategy    PrintStrategy      `json:"printStrategy" yaml:"printStrategy"`
	SlotTypesEnabled []SlotType         `json:"slotTypesEnabled,omitempty" yaml:"slotTypesEnabled,omitempty"`
	Slots            []Slot             `json:"slots" yaml:"slots"`
	Guarantees       Guarantees         `json:"guarantees" yaml:"guarantees"`
	Simulation       SimulationSettings `json:"simulation" yaml:"simulation"`
}

// Clone returns a deep copy; slices are never shared with the receiver.
func (c Config) Clone() Config {
	out := c
	if c.SlotTypesEnabled != nil {
		out.SlotTypesEnabled = append([]SlotType(nil), c.SlotTypesEnabled...)
	}
	if c.Slots != nil {
		out.Slots = append([]Slot(nil), c.Slots...)
	}
	return out
}

// ReadinessStatus grades an advisory check.
type ReadinessStatus string

const (
	StatusOK   ReadinessStatus = "ok"
	StatusWarn ReadinessStatus = "warn"
	StatusInfo ReadinessStatus = "info"
)

// ReadinessCheck is an advisory diagnostic. It never blocks submission.
type ReadinessCheck struct {
	Title  string          `json:"title"`
	Detail string          `json:"detail"`
	Status ReadinessStatus `json:"status"`
}

// CaseFootprint summarizes what one case holds.
type CaseFootprint struct {
	PacksPerCase             int `json:"packsPerCase"`
	CardsPerCase             int `json:"cardsPerCase"`
	ChecklistCoveragePercent int `json:"checklistCoveragePercent"` // 0..100
}
