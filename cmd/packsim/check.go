package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/xtding233/packsim/internal/preset"
	"github.com/xtding233/packsim/internal/product"
	"github.com/xtding233/packsim/internal/submit"
	"gopkg.in/yaml.v3"
)

var (
	checkPreset string
	checkFile   string
	checkSubmit bool
)

var errInvalidPayload = errors.New("payload failed validation")

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate a payload and print its case footprint and readiness checks",
	Long: `Loads a payload from --file (YAML, Config-shaped) or a catalog preset
from --preset (default "Hobby balanced"), then prints the case footprint,
readiness checks and every validation error. With --submit an accepted
payload is emitted to the log sink. Exits non-zero when the payload is invalid.`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVarP(&checkPreset, "preset", "p", preset.HobbyBalanced, "catalog preset to check")
	checkCmd.Flags().StringVarP(&checkFile, "file", "f", "", "YAML payload file to check instead of a preset")
	checkCmd.Flags().BoolVar(&checkSubmit, "submit", false, "emit the payload when it is valid")
}

func runCheck(cmd *cobra.Command, args []string) error {
	p, err := resolvePayload()
	if err != nil {
		return err
	}
	if len(p.Payload.Slots) == 0 {
		return fmt.Errorf("%w: payload defines no slots", errInvalidPayload)
	}
	form := product.NewForm(p.Payload)
	form.LoadPreset(p)

	out := cmd.OutOrStdout()
	writeReport(out, p.Name, form)

	if form.Validate().Invalid {
		return errInvalidPayload
	}
	if checkSubmit {
		gate, err := submit.NewGate(submit.NewLogSink(log), log)
		if err != nil {
			return err
		}
		res := gate.Submit(cmd.Context(), form)
		fmt.Fprintf(out, "submitted %s\n", res.Submission.ID)
	}
	return nil
}

func resolvePayload() (product.Preset, error) {
	if checkFile != "" {
		b, err := os.ReadFile(checkFile)
		if err != nil {
			return product.Preset{}, err
		}
		var cfg product.Config
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return product.Preset{}, fmt.Errorf("parse %s: %w", checkFile, err)
		}
		return product.Preset{Name: checkFile, Payload: cfg}, nil
	}
	cat, err := preset.NewLoader(cfg.Presets.File).Load()
	if err != nil {
		return product.Preset{}, err
	}
	return cat.Lookup(checkPreset)
}

func writeReport(w io.Writer, name string, form *product.Form) {
	snap := form.Snapshot()
	fp := form.Footprint()

	fmt.Fprintf(w, "%s (%s)\n", snap.ProductName, name)
	fmt.Fprintf(w, "  packs/case: %d  cards/case: %d  checklist coverage: %d%%\n",
		fp.PacksPerCase, fp.CardsPerCase, fp.ChecklistCoveragePercent)

	fmt.Fprintln(w, "readiness:")
	for _, c := range form.Readiness() {
		fmt.Fprintf(w, "  [%s] %s: %s\n", c.Status, c.Title, c.Detail)
	}

	res := form.Validate()
	if !res.Invalid {
		fmt.Fprintln(w, "valid")
		return
	}
	fmt.Fprintf(w, "invalid (%d):\n", len(res.Errors))
	for _, e := range res.Errors {
		fmt.Fprintf(w, "  %s\n", e)
	}
}
