package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xtding233/packsim/internal/preset"
)

// runCLI executes the root command with fresh flag values.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	configPath, logMode, presetsFile = "", "prod", ""
	checkPreset, checkFile, checkSubmit = preset.HobbyBalanced, "", false

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(append([]string{}, args...))
	err := rootCmd.Execute()
	return buf.String(), err
}

const payloadYAML = `productName: Test run
randomSeed: s
boxesPerCase: %BOXES%
packsPerBox: 10
cardsPerPack: 5
checklistSize: 100
printStrategy: odds-first
slots:
  - label: Base
    type: base
    odds: every pack
guarantees:
  autosPerBox: 0
  caseHitsPerCase: 0
  lowSerialCapPerBox: 0
simulation:
  casesToSimulate: 1
`

func writePayload(t *testing.T, boxes string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "payload.yaml")
	require.NoError(t, os.WriteFile(p, []byte(strings.ReplaceAll(payloadYAML, "%BOXES%", boxes)), 0o644))
	return p
}

func TestPresetsCommand(t *testing.T) {
	out, err := runCLI(t, "presets", "--log-mode", "prod")
	require.NoError(t, err)
	for _, name := range []string{preset.HobbyBalanced, preset.RetailLight, preset.HitChase} {
		assert.Contains(t, out, name)
	}
}

func TestCheckPreset(t *testing.T) {
	out, err := runCLI(t, "check", "--log-mode", "prod", "--preset", preset.HitChase)
	require.NoError(t, err)
	assert.Contains(t, out, "2025 Apex Black Label — Hobby (Hit chase)")
	assert.Contains(t, out, "packs/case: 144  cards/case: 864  checklist coverage: 100%")
	assert.Contains(t, out, "[ok] Print runs cover guarantees: Pools can fund 10 guaranteed hits across 8 boxes.")
	assert.NotContains(t, out, "invalid")
	assert.True(t, strings.HasSuffix(out, "valid\n"), out)
}

func TestCheckUnknownPreset(t *testing.T) {
	_, err := runCLI(t, "check", "--log-mode", "prod", "--preset", "Mystery")
	require.ErrorIs(t, err, preset.ErrUnknownPreset)
}

func TestCheckFile(t *testing.T) {
	out, err := runCLI(t, "check", "--log-mode", "prod", "--file", writePayload(t, "4"))
	require.NoError(t, err)
	assert.Contains(t, out, "packs/case: 40  cards/case: 200  checklist coverage: 100%")
	assert.Contains(t, out, "[ok] Print runs cover guarantees: Pools can fund all guaranteed hits across 4 boxes.")
	assert.Contains(t, out, "[info] Variants replace base")
}

func TestCheckInvalidFile(t *testing.T) {
	out, err := runCLI(t, "check", "--log-mode", "prod", "--file", writePayload(t, "0"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errInvalidPayload))
	assert.Contains(t, out, "invalid (1):")
	assert.Contains(t, out, "boxesPerCase")
}

func TestCheckSubmit(t *testing.T) {
	out, err := runCLI(t, "check", "--log-mode", "prod", "--file", writePayload(t, "2"), "--submit")
	require.NoError(t, err)
	assert.Contains(t, out, "submitted ")
}
