package preset

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xtding233/packsim/internal/logger"
	"github.com/xtding233/packsim/internal/product"
	"go.uber.org/goleak"
)

const extraCatalog = `version: "1"
presets:
  - name: Retail light
    summary: Retail with a hit slot.
    payload:
      productName: 2025 Apex Baseball — Retail+
      randomSeed: seed-retail-plus
      boxesPerCase: 10
      packsPerBox: 20
      cardsPerPack: 10
      checklistSize: 180
      printStrategy: odds-first
      slots:
        - label: Base commons
          type: base
          odds: every pack
        - label: Retail hit
          type: hit
          odds: 1:48 packs
          replaces: base
      guarantees:
        autosPerBox: 0
        caseHitsPerCase: 1
        lowSerialCapPerBox: 0
      simulation:
        casesToSimulate: 5
        reseedEachCase: true
        varianceControl: false
  - name: Jumbo
    summary: Big packs.
    payload:
      productName: Jumbo
      randomSeed: j
      boxesPerCase: 6
      packsPerBox: 10
      cardsPerPack: 40
      checklistSize: 300
      printStrategy: print-run
      slotTypesEnabled: [base]
      slots:
        - label: Base
          type: base
          odds: every pack
          replaces: base
      guarantees:
        autosPerBox: 2
        caseHitsPerCase: 0
        lowSerialCapPerBox: 1
      simulation:
        casesToSimulate: 3
`

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoaderWithoutFileIsBuiltin(t *testing.T) {
	cat, err := NewLoader("").Load()
	require.NoError(t, err)
	assert.Equal(t, 3, cat.Len())

	cat, err = NewLoader(filepath.Join(t.TempDir(), "missing.yaml")).Load()
	require.NoError(t, err)
	assert.Equal(t, 3, cat.Len())
}

func TestLoaderMergesFileOverBuiltins(t *testing.T) {
	path := writeFile(t, t.TempDir(), "presets.yaml", extraCatalog)
	cat, err := NewLoader(path).Load()
	require.NoError(t, err)
	require.Equal(t, 4, cat.Len())

	retail, err := cat.Lookup(RetailLight)
	require.NoError(t, err)
	assert.Equal(t, "Retail with a hit slot.", retail.Summary)
	assert.Nil(t, retail.Payload.SlotTypesEnabled)

	form := product.NewForm(DefaultConfig())
	form.LoadPreset(retail)
	snap := form.Snapshot()
	assert.Equal(t, product.AllSlotTypes(), snap.SlotTypesEnabled)
	assert.Equal(t, product.SlotBase, snap.Slots[0].Replaces, "omitted replaces defaults to base")

	jumbo, err := cat.Lookup("Jumbo")
	require.NoError(t, err)
	assert.Equal(t, []product.SlotType{product.SlotBase}, jumbo.Payload.SlotTypesEnabled)
	assert.Equal(t, 2400, product.ComputeFootprint(jumbo.Payload).CardsPerCase)
}

func TestLoaderRejectsInvalidCatalog(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bad.yaml", `presets:
  - name: Broken
    payload:
      productName: ""
      boxesPerCase: 0
`)
	_, err := NewLoader(path).Load()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidCatalog))
}

func TestLoaderCachesUntilInvalidated(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "presets.yaml", extraCatalog)
	l := NewLoader(path)

	first, err := l.Load()
	require.NoError(t, err)

	writeFile(t, dir, "presets.yaml", "presets: []\n")
	cached, err := l.Load()
	require.NoError(t, err)
	assert.Same(t, first, cached)

	l.Invalidate()
	fresh, err := l.Load()
	require.NoError(t, err)
	assert.Equal(t, 3, fresh.Len())
}

func TestStoreReloadKeepsPreviousOnError(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "presets.yaml", extraCatalog)
	s, err := NewStore(NewLoader(path), logger.Nop())
	require.NoError(t, err)
	require.Equal(t, 4, s.Catalog().Len())

	writeFile(t, dir, "presets.yaml", "presets: [ {name: \"\"} ]\n")
	require.Error(t, s.Reload())
	assert.Equal(t, 4, s.Catalog().Len())

	writeFile(t, dir, "presets.yaml", "presets: []\n")
	require.NoError(t, s.Reload())
	assert.Equal(t, 3, s.Catalog().Len())
}

func TestFileWatcherReportsChanges(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	path := writeFile(t, dir, "presets.yaml", "presets: []\n")
	writeFile(t, dir, "other.yaml", "x: 1\n")

	changed := make(chan string, 8)
	w, err := NewFileWatcher(path, logger.Nop(), func(p string) {
		select {
		case changed <- p:
		default:
		}
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx))
	defer w.Stop()

	writeFile(t, dir, "other.yaml", "x: 2\n")
	writeFile(t, dir, "presets.yaml", extraCatalog)

	select {
	case got := <-changed:
		assert.Equal(t, filepath.Clean(path), got)
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported for the catalog file")
	}
}

func TestFileWatcherStopsOnContext(t *testing.T) {
	defer goleak.VerifyNone(t)

	w, err := NewFileWatcher(filepath.Join(t.TempDir(), "presets.yaml"), nil, nil)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, w.Start(ctx))

	cancel()
	select {
	case <-w.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
	w.Stop()
}
